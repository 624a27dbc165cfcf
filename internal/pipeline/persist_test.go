package pipeline

import "testing"

func TestComputeScore(t *testing.T) {
	tests := []struct {
		name    string
		matched int
		total   int
		want    float64
	}{
		{name: "all matched", matched: 3, total: 3, want: 100.00},
		{name: "none matched", matched: 0, total: 4, want: 0.00},
		{name: "two thirds", matched: 2, total: 3, want: 66.67},
		{name: "one third", matched: 1, total: 3, want: 33.33},
		{name: "empty upload", matched: 0, total: 0, want: 100.00},
		{name: "seven of eight", matched: 7, total: 8, want: 87.50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeScore(tt.matched, tt.total); got != tt.want {
				t.Errorf("ComputeScore(%d, %d) = %v, want %v", tt.matched, tt.total, got, tt.want)
			}
		})
	}
}
