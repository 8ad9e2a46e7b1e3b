// SPDX-License-Identifier: MIT
// Package: gridmap/obstacle
//
// budget.go - the shared obstacle counter.

package obstacle

import "sync"

// Budget counts the obstacles still to be placed. It is shared by every
// placing worker; each access is serialized by mu.
type Budget struct {
	mu        sync.Mutex
	remaining int
}

// NewBudget returns a Budget holding n obstacles. Negative n is treated as 0.
func NewBudget(n int) *Budget {
	if n < 0 {
		n = 0
	}
	return &Budget{remaining: n}
}

// Take reserves one obstacle. It returns false once the budget is exhausted.
// Complexity: O(1); holds the lock only for the check and decrement.
func (b *Budget) Take() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.remaining <= 0 {
		return false
	}
	b.remaining--
	return true
}

// Remaining returns the number of obstacles not yet reserved.
func (b *Budget) Remaining() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.remaining
}
