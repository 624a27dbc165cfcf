package mapping

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{in: "1000", want: 1000, wantOK: true},
		{in: "1000.50", want: 1000.50, wantOK: true},
		{in: "Rp 1.234.567,89", want: 1234567.89, wantOK: true},
		{in: "1,234,567.89", want: 1234567.89, wantOK: true},
		{in: "1.234.567", want: 1234.567, wantOK: true},
		{in: "-2500", want: -2500, wantOK: true},
		{in: "  750  ", want: 750, wantOK: true},
		{in: "IDR 10,000", want: 10, wantOK: true}, // trailing separator reads as decimal
		{in: "0", want: 0, wantOK: true},
		{in: "0,00", want: 0, wantOK: true},
		{in: "", wantOK: false},
		{in: "-", wantOK: false},
		{in: "abc", wantOK: false},
		{in: "n/a", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseAmount(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ParseAmount(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseAmountMinusOnlyLeading(t *testing.T) {
	got, ok := ParseAmount("10-20")
	if !ok {
		t.Fatal("expected interior minus to be dropped, not fail")
	}
	if got != 1020 {
		t.Errorf("ParseAmount(\"10-20\") = %v, want 1020", got)
	}
}
