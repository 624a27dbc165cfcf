package server

import "testing"

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name       string
		page       int32
		pageSize   int32
		wantLimit  int
		wantOffset int
		wantPage   int32
		wantSize   int32
	}{
		{name: "defaults", page: 0, pageSize: 0, wantLimit: 10, wantOffset: 0, wantPage: 1, wantSize: 10},
		{name: "first page explicit", page: 1, pageSize: 25, wantLimit: 25, wantOffset: 0, wantPage: 1, wantSize: 25},
		{name: "third page", page: 3, pageSize: 20, wantLimit: 20, wantOffset: 40, wantPage: 3, wantSize: 20},
		{name: "negative page", page: -2, pageSize: 10, wantLimit: 10, wantOffset: 0, wantPage: 1, wantSize: 10},
		{name: "oversized page size clamped", page: 2, pageSize: 5000, wantLimit: 100, wantOffset: 100, wantPage: 2, wantSize: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset, page, size := normalizePage(tt.page, tt.pageSize)
			if limit != tt.wantLimit || offset != tt.wantOffset || page != tt.wantPage || size != tt.wantSize {
				t.Errorf("normalizePage(%d, %d) = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					tt.page, tt.pageSize, limit, offset, page, size,
					tt.wantLimit, tt.wantOffset, tt.wantPage, tt.wantSize)
			}
		})
	}
}
