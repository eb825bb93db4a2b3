// Package dataset defines the record/entry types and dataset-level
// classification for the dataset subpackage of github.com/solvey/heatcal.
package dataset

import (
	"github.com/solvey/heatcal/caldate"
)

// ValueKind tags how a record's raw value was classified upstream.
type ValueKind int

const (
	// KindBoolean marks a value already resolved to 0 or 1 by the host.
	KindBoolean ValueKind = iota
	// KindNumber marks a plain numeric value.
	KindNumber
	// KindUnsupported marks a record whose value cannot be interpreted;
	// the record still occupies its date with a nil value.
	KindUnsupported
)

// Record is one raw observation handed over by the host's query layer.
// DateText is the externally-resolved date string (empty or unparseable
// means the record carries no resolvable date). Value is nil when the
// record has no usable numeric/boolean signal. SourceRef is an opaque
// handle owned by the host and never dereferenced here.
type Record struct {
	DateText    string
	Value       *float64
	Kind        ValueKind
	DisplayText string
	SourceRef   any
}

// Entry is one folded observation keyed by calendar date.
// Value stays nil for "a record exists for this date but carries no
// usable signal", which is distinct from the date having no entry at all.
type Entry struct {
	Date        caldate.Date
	Value       *float64
	DisplayText string
	SourceRef   any
}

// Stats aggregates the non-null values of a processed dataset.
// Min ≤ Max always holds, degenerate cases included.
type Stats struct {
	Min        float64
	Max        float64
	Count      int
	HasNumeric bool
}

// WithOverrides replaces Min/Max with host-supplied bounds when present.
// Overrides apply before normalization; no reordering or validation
// happens here beyond what the normalizer tolerates.
func (s Stats) WithOverrides(min, max *float64) Stats {
	if min != nil {
		s.Min = *min
	}
	if max != nil {
		s.Max = *max
	}
	return s
}

// State classifies a whole dataset once, ahead of any cell-level work.
type State int

const (
	// StateOK: at least one dated entry with a usable value exists.
	StateOK State = iota
	// StateEmpty: the host supplied no records at all.
	StateEmpty
	// StateNoDatedEntries: records exist but none carried a resolvable date.
	StateNoDatedEntries
	// StateUnsupportedValues: dated entries exist but every one of them
	// carried an uninterpretable value.
	StateUnsupportedValues
)

// String names the classification for host-facing empty states.
func (s State) String() string {
	switch s {
	case StateOK:
		return "ok"
	case StateEmpty:
		return "empty dataset"
	case StateNoDatedEntries:
		return "no dated entries"
	case StateUnsupportedValues:
		return "unsupported value type"
	default:
		return "unknown"
	}
}

// Processed is the immutable per-render snapshot: unique-keyed entries
// plus their aggregate stats and fold bookkeeping.
type Processed struct {
	Entries map[caldate.Date]Entry
	Stats   Stats

	// Dropped counts records discarded for lacking a resolvable date.
	Dropped int
	// Unsupported counts dated records whose value kind was unsupported.
	Unsupported int

	total int // records seen, for State classification
}

// Dates returns the entry keys in unspecified order.
func (p *Processed) Dates() []caldate.Date {
	out := make([]caldate.Date, 0, len(p.Entries))
	for d := range p.Entries {
		out = append(out, d)
	}
	return out
}

// State reports the dataset-level classification, computed across the
// whole dataset rather than cell-by-cell.
func (p *Processed) State() State {
	switch {
	case p.total == 0:
		return StateEmpty
	case len(p.Entries) == 0:
		return StateNoDatedEntries
	case p.Stats.Count == 0 && p.Unsupported > 0:
		return StateUnsupportedValues
	default:
		return StateOK
	}
}
