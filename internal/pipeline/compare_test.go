package pipeline

import (
	"testing"

	"github.com/FadhilAufa5/kfa-validation-sub001/constants"
)

func TestCompareAllMatched(t *testing.T) {
	uploaded := map[string]float64{"A": 500, "B": 0, "C": 1200}
	source := map[string]float64{"A": 500, "C": 1000}

	res := Compare(uploaded, source, 1000.01)

	if len(res.Invalid) != 0 {
		t.Fatalf("expected no invalid groups, got %d", len(res.Invalid))
	}
	if len(res.Matched) != 3 {
		t.Fatalf("expected 3 matched groups, got %d", len(res.Matched))
	}

	notes := map[string]string{}
	for _, g := range res.Matched {
		notes[g.Connector] = g.Note
	}
	if notes["A"] != string(constants.NoteSumMatched) {
		t.Errorf("A: note = %q, want sum_matched", notes["A"])
	}
	if notes["B"] != string(constants.NoteReturNotRecorded) {
		t.Errorf("B: note = %q, want retur_not_recorded", notes["B"])
	}
	if notes["C"] != string(constants.NoteRounding) {
		t.Errorf("C: note = %q, want rounding", notes["C"])
	}
}

func TestCompareCategories(t *testing.T) {
	tests := []struct {
		name      string
		uploaded  map[string]float64
		source    map[string]float64
		tolerance float64

		wantCategory string
		wantNote     string
	}{
		{
			name:         "key absent with nonzero total",
			uploaded:     map[string]float64{"X": 300},
			source:       map[string]float64{},
			tolerance:    1000.01,
			wantCategory: string(constants.MismatchKeyNotFound),
		},
		{
			name:         "uploaded zero but key present in source",
			uploaded:     map[string]float64{"X": 0},
			source:       map[string]float64{"X": 900},
			tolerance:    1000.01,
			wantCategory: string(constants.MismatchMissingValue),
		},
		{
			name:         "source zero but uploaded nonzero",
			uploaded:     map[string]float64{"X": 900},
			source:       map[string]float64{"X": 0},
			tolerance:    1000.01,
			wantCategory: string(constants.MismatchMissingValue),
		},
		{
			name:         "difference beyond tolerance",
			uploaded:     map[string]float64{"X": 5000},
			source:       map[string]float64{"X": 1000},
			tolerance:    1000.01,
			wantCategory: string(constants.MismatchDiscrepancy),
		},
		{
			name:      "difference exactly at tolerance matches",
			uploaded:  map[string]float64{"X": 2000.01},
			source:    map[string]float64{"X": 1000},
			tolerance: 1000.01,
			wantNote:  string(constants.NoteRounding),
		},
		{
			name:      "negative difference within tolerance",
			uploaded:  map[string]float64{"X": 500},
			source:    map[string]float64{"X": 1200},
			tolerance: 1000.01,
			wantNote:  string(constants.NoteRounding),
		},
		{
			name:      "identical totals",
			uploaded:  map[string]float64{"X": 750.50},
			source:    map[string]float64{"X": 750.50},
			tolerance: 0,
			wantNote:  string(constants.NoteSumMatched),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Compare(tt.uploaded, tt.source, tt.tolerance)
			if tt.wantCategory != "" {
				if len(res.Invalid) != 1 || len(res.Matched) != 0 {
					t.Fatalf("got %d invalid / %d matched, want 1 invalid", len(res.Invalid), len(res.Matched))
				}
				if got := res.Invalid[0].Category; got != tt.wantCategory {
					t.Errorf("category = %q, want %q", got, tt.wantCategory)
				}
			} else {
				if len(res.Matched) != 1 || len(res.Invalid) != 0 {
					t.Fatalf("got %d matched / %d invalid, want 1 matched", len(res.Matched), len(res.Invalid))
				}
				if got := res.Matched[0].Note; got != tt.wantNote {
					t.Errorf("note = %q, want %q", got, tt.wantNote)
				}
			}
		})
	}
}

func TestCompareKeyNotFoundDiscrepancyValue(t *testing.T) {
	res := Compare(map[string]float64{"X": 300}, nil, 1000.01)
	if len(res.Invalid) != 1 {
		t.Fatalf("expected 1 invalid group, got %d", len(res.Invalid))
	}
	g := res.Invalid[0]
	if g.DiscrepancyValue != 300 {
		t.Errorf("discrepancy = %v, want full uploaded total 300", g.DiscrepancyValue)
	}
	if g.SourceTotal != 0 {
		t.Errorf("source total = %v, want 0", g.SourceTotal)
	}
}

func TestCompareSourceOnlyKeysIgnored(t *testing.T) {
	// keys present only in the source side are out of scope for the upload
	res := Compare(map[string]float64{"A": 100}, map[string]float64{"A": 100, "B": 999}, 0)
	if len(res.Matched)+len(res.Invalid) != 1 {
		t.Fatalf("expected exactly 1 classified group, got %d", len(res.Matched)+len(res.Invalid))
	}
}

func TestCompareOrderDeterministic(t *testing.T) {
	uploaded := map[string]float64{"b": 1, "a": 2, "c": 3}
	res := Compare(uploaded, map[string]float64{}, 0)
	if len(res.Invalid) != 3 {
		t.Fatalf("expected 3 invalid groups, got %d", len(res.Invalid))
	}
	for i, want := range []string{"a", "b", "c"} {
		if res.Invalid[i].Connector != want {
			t.Errorf("invalid[%d] = %q, want %q", i, res.Invalid[i].Connector, want)
		}
	}
}
