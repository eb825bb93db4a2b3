// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/solvey/heatcal/caldate"
	"github.com/solvey/heatcal/grid"
)

// ExampleResolveRange resolves a range with an explicit start and the
// end defaulting to "today".
func ExampleResolveRange() {
	today := caldate.MustParse("2024-06-15")
	r := grid.ResolveRange(grid.ResolveOptions{StartText: "2024-06-01"}, nil, today)
	fmt.Println(r.Start, "..", r.End)

	// Output:
	// 2024-06-01 .. 2024-06-15
}

// ExampleMapDate places a date on the week/day matrix and projects it
// through both orientations.
func ExampleMapDate() {
	r := grid.Range{
		Start: caldate.MustParse("2024-01-01"),
		End:   caldate.MustParse("2024-03-31"),
	}
	c := grid.MapDate(r, caldate.MustParse("2024-01-10"), caldate.WeekStartSunday)
	fmt.Println("day:", c.Day, "week:", c.Week)
	fmt.Println("horizontal:", grid.Horizontal.Position(c))
	fmt.Println("vertical:  ", grid.Vertical.Position(c))

	// Output:
	// day: 3 week: 2
	// horizontal: {4 2}
	// vertical:   {2 4}
}

// ExampleMonthLabels prints the label spans of a two-month range.
func ExampleMonthLabels() {
	r := grid.Range{
		Start: caldate.MustParse("2024-01-01"),
		End:   caldate.MustParse("2024-02-29"),
	}
	for _, sp := range grid.MonthLabels(r, caldate.WeekStartSunday) {
		fmt.Printf("%s: weeks %d..%d\n", sp.Name, sp.Start, sp.End)
	}

	// Output:
	// Jan: weeks 1..5
	// Feb: weeks 5..10
}
