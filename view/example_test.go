// File: view/example_test.go
package view_test

import (
	"fmt"

	"github.com/solvey/heatcal/caldate"
	"github.com/solvey/heatcal/dataset"
	"github.com/solvey/heatcal/view"
)

// ExampleBuild runs a complete render pass over three records and prints
// the resolved state of each cell in a one-week range.
func ExampleBuild() {
	records := []dataset.Record{
		{DateText: "2024-01-01", Value: ptr(2.0), Kind: dataset.KindNumber},
		{DateText: "2024-01-03", Value: ptr(8.0), Kind: dataset.KindNumber},
		{DateText: "2024-01-05", Kind: dataset.KindUnsupported},
	}
	cfg := view.DefaultConfig()
	cfg.StartText = "2024-01-01"
	cfg.EndText = "2024-01-05"

	v, _ := view.Build(records, cfg, caldate.MustParse("2024-06-15"), true)
	for _, c := range v.Cells {
		var kind string
		switch c.State.Kind {
		case view.CellEmpty:
			kind = "empty"
		case view.CellZero:
			kind = "zero"
		case view.CellFilled:
			kind = fmt.Sprintf("filled %.2f", c.State.Intensity)
		}
		fmt.Printf("%s week=%d day=%d %s\n", c.Date, c.Coord.Week, c.Coord.Day, kind)
	}

	// Output:
	// 2024-01-01 week=1 day=1 filled 0.00
	// 2024-01-02 week=1 day=2 empty
	// 2024-01-03 week=1 day=3 filled 1.00
	// 2024-01-04 week=1 day=4 empty
	// 2024-01-05 week=1 day=5 zero
}

func ptr(v float64) *float64 { return &v }
