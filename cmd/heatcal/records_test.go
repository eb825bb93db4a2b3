package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvey/heatcal/dataset"
)

// TestAdaptRecord_KindSniffing pins the boundary type mapping: JSON bool
// → boolean kind, JSON number → numeric kind, everything else →
// unsupported with a nil value.
func TestAdaptRecord_KindSniffing(t *testing.T) {
	cases := []struct {
		name     string
		value    string
		wantKind dataset.ValueKind
		wantVal  *float64
	}{
		{"True", `true`, dataset.KindBoolean, fp(1)},
		{"False", `false`, dataset.KindBoolean, fp(0)},
		{"Number", `3.5`, dataset.KindNumber, fp(3.5)},
		{"Zero", `0`, dataset.KindNumber, fp(0)},
		{"String", `"busy"`, dataset.KindUnsupported, nil},
		{"Null", `null`, dataset.KindUnsupported, nil},
		{"Absent", ``, dataset.KindUnsupported, nil},
		{"Object", `{"a":1}`, dataset.KindUnsupported, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := rawRecord{Date: "2024-01-01", Text: "x"}
			if tc.value != "" {
				r.Value = []byte(tc.value)
			}
			rec := adaptRecord(r)
			assert.Equal(t, tc.wantKind, rec.Kind)
			if tc.wantVal == nil {
				assert.Nil(t, rec.Value)
			} else {
				require.NotNil(t, rec.Value)
				assert.Equal(t, *tc.wantVal, *rec.Value)
			}
			assert.Equal(t, "2024-01-01", rec.DateText)
		})
	}
}

func fp(v float64) *float64 { return &v }

// TestLoadRecords_File round-trips a records file through the adapter.
func TestLoadRecords_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	body := `[
		{"date": "2024-01-01", "value": 5, "text": "five"},
		{"date": "2024-01-02", "value": true},
		{"date": "", "value": "unparseable"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	records, err := loadRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, dataset.KindNumber, records[0].Kind)
	assert.Equal(t, "five", records[0].DisplayText)
	assert.Equal(t, dataset.KindBoolean, records[1].Kind)
	assert.Equal(t, "record 2", records[1].DisplayText, "missing text falls back to an ordinal")
	assert.Equal(t, dataset.KindUnsupported, records[2].Kind)
}

// TestLoadRecords_Errors covers the two fatal cases: missing file and
// malformed JSON.
func TestLoadRecords_Errors(t *testing.T) {
	_, err := loadRecords(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))
	_, err = loadRecords(path)
	assert.Error(t, err)
}

// TestResolveScheme covers id lookup, overrides and boundary validation.
func TestResolveScheme(t *testing.T) {
	zero, max, err := resolveScheme("github", "", "")
	require.NoError(t, err)
	assert.Equal(t, "#161b22", zero)
	assert.Equal(t, "#39d353", max)

	zero, max, err = resolveScheme("github", "222222", "#AABBCC")
	require.NoError(t, err)
	assert.Equal(t, "#222222", zero)
	assert.Equal(t, "#aabbcc", max, "overrides normalize to lowercase canonical hex")

	_, _, err = resolveScheme("neon", "", "")
	assert.Error(t, err, "unknown scheme id")

	_, _, err = resolveScheme("github", "#zzzzzz", "")
	assert.Error(t, err, "malformed override is caught at the boundary")
}
