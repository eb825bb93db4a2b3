package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/solvey/heatcal/dataset"
)

// rawRecord is one element of the records file: a date string plus a
// free-typed value. The value's JSON type decides its kind — bool,
// number, or anything else (string, null, absent) as unsupported.
type rawRecord struct {
	Date  string          `json:"date"`
	Value json.RawMessage `json:"value"`
	Text  string          `json:"text"`
}

// loadRecords reads a JSON array of rawRecords and adapts each into the
// core's closed record shape. Host-side type sniffing happens here, at
// the boundary; the core only ever sees the resolved kind.
func loadRecords(path string) ([]dataset.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}

	var raw []rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse records %s: %w", path, err)
	}

	records := make([]dataset.Record, 0, len(raw))
	for i, r := range raw {
		rec := adaptRecord(r)
		if rec.DisplayText == "" {
			rec.DisplayText = fmt.Sprintf("record %d", i+1)
		}
		records = append(records, rec)
	}
	return records, nil
}

// adaptRecord classifies one raw value into the core's tagged shape.
func adaptRecord(r rawRecord) dataset.Record {
	rec := dataset.Record{
		DateText:    r.Date,
		DisplayText: r.Text,
		SourceRef:   r.Date,
		Kind:        dataset.KindUnsupported,
	}

	if len(r.Value) == 0 || string(r.Value) == "null" {
		return rec
	}

	var b bool
	if err := json.Unmarshal(r.Value, &b); err == nil {
		v := 0.0
		if b {
			v = 1.0
		}
		rec.Kind = dataset.KindBoolean
		rec.Value = &v
		return rec
	}

	var n float64
	if err := json.Unmarshal(r.Value, &n); err == nil {
		rec.Kind = dataset.KindNumber
		rec.Value = &n
		return rec
	}

	return rec
}
