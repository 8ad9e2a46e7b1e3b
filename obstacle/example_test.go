package obstacle_test

import (
	"fmt"

	"github.com/katalvlaran/gridmap/grid"
	"github.com/katalvlaran/gridmap/obstacle"
)

// ExamplePlacer_Place shares one budget of 12 obstacles between three
// concurrent placers on a 16×16 grid.
func ExamplePlacer_Place() {
	g, err := grid.New(16, 16)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	budget := obstacle.NewBudget(12)
	p, err := obstacle.NewPlacer(g, 4, budget, obstacle.WithSeed(2024), obstacle.WithPlacers(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("placed:", p.Place())
	fmt.Println("remaining:", budget.Remaining())
	fmt.Println("top-left open:", g.At(0, 0) == grid.Open)
	// Output:
	// placed: 12
	// remaining: 0
	// top-left open: true
}
