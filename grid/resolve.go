package grid

import (
	"github.com/solvey/heatcal/caldate"
)

// ResolveRange determines the visualized range from the host's explicit
// bounds, the dataset's dates, and today's date.
//
// Algorithm:
//  1. End: the explicit end text when it parses, else today.
//  2. Start: the explicit start text when it parses, else the earliest
//     dataset date, else January 1 of the resolved end's year.
//
// An explicit bound that fails to parse falls back silently to its
// default — deliberate lenience toward hand-typed settings, not an
// error path (worth revisiting if range configuration ever grows a
// validation surface). A start after the end is passed through
// unchanged; the grid layer renders it as zero weeks.
func ResolveRange(opts ResolveOptions, datasetDates []caldate.Date, today caldate.Date) Range {
	end, err := caldate.Parse(opts.EndText)
	if err != nil {
		end = today
	}

	start, err := caldate.Parse(opts.StartText)
	if err != nil {
		var ok bool
		start, ok = caldate.Min(datasetDates)
		if !ok {
			start = caldate.Date{Year: end.Year, Month: 1, Day: 1}
		}
	}

	return Range{Start: start, End: end}
}
