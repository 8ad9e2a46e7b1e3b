// SPDX-License-Identifier: MIT
// Package: gridmap/obstacle
//
// rng.go - deterministic random streams for placing workers.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Never share one across placers.
//   - deriveRNG hands every extra worker its own stream from the base seed.

package obstacle

import "math/rand"

// defaultRNGSeed is used when no seed or RNG was configured.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id with a SplitMix64-style
// finalizer so that neighbouring stream ids yield unrelated seeds.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveRNG creates an independent stream from base and a stream id.
// base.Int63() is consumed once so that repeated derivations differ.
// Call during setup, before workers start; base is not safe for concurrent use.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultRNGSeed
	if base != nil {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// nonZero draws from rng.Intn(n) until the value is positive. Ranges
// without a positive value (n ≤ 1) resolve to 1.
func nonZero(rng *rand.Rand, n int) int {
	if n <= 1 {
		return 1
	}
	for {
		if v := rng.Intn(n); v > 0 {
			return v
		}
	}
}
