package dataset

import (
	"github.com/solvey/heatcal/caldate"
)

// Process folds an ordered record sequence into a Processed snapshot.
//
// Algorithm:
//  1. Per record: parse the date (drop and count failures), derive the
//     entry value (nil for unsupported kinds), and fold into the map
//     under the duplicate policy: higher non-null value wins, non-null
//     beats nil, first write wins when both are nil.
//  2. HasNumeric flips on the first non-null value outside {0,1} seen in
//     record order, replaced duplicates included.
//  3. Aggregate count/min/max over the final entries' non-null values.
//  4. Normalize degenerate stats: no values → {0,1}; a single distinct
//     positive value → min forced to 0, so the lone value renders at
//     partial intensity against an assumed zero baseline.
func Process(records []Record) *Processed {
	p := &Processed{
		Entries: make(map[caldate.Date]Entry, len(records)),
		total:   len(records),
	}

	for _, r := range records {
		d, err := caldate.Parse(r.DateText)
		if err != nil {
			p.Dropped++
			continue
		}

		v := r.Value
		if r.Kind == KindUnsupported {
			p.Unsupported++
			v = nil
		}
		if v != nil && (*v != 0 && *v != 1) {
			p.Stats.HasNumeric = true
		}

		incoming := Entry{Date: d, Value: v, DisplayText: r.DisplayText, SourceRef: r.SourceRef}
		existing, ok := p.Entries[d]
		if !ok {
			p.Entries[d] = incoming
			continue
		}
		switch {
		case incoming.Value == nil:
			// keep existing, whether valued or the first null writer
		case existing.Value == nil, *incoming.Value > *existing.Value:
			p.Entries[d] = incoming
		}
	}

	p.Stats = accumulate(p.Entries, p.Stats.HasNumeric)

	return p
}

// accumulate computes count/min/max over the final entries and applies
// the degenerate-range normalization.
func accumulate(entries map[caldate.Date]Entry, hasNumeric bool) Stats {
	s := Stats{HasNumeric: hasNumeric}
	for _, e := range entries {
		if e.Value == nil {
			continue
		}
		v := *e.Value
		if s.Count == 0 {
			s.Min, s.Max = v, v
		} else {
			if v < s.Min {
				s.Min = v
			}
			if v > s.Max {
				s.Max = v
			}
		}
		s.Count++
	}

	if s.Count == 0 {
		s.Min, s.Max = 0, 1
	} else if s.Min == s.Max && s.Min > 0 {
		s.Min = 0
	}

	return s
}
