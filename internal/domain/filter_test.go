package domain

import "testing"

func TestWordFilter_Normalize(t *testing.T) {
	t.Parallel()

	f := WordFilter{}
	f.Normalize()
	if f.Page != 1 {
		t.Errorf("Page = %d, want 1", f.Page)
	}
	if f.PageSize != DefaultPageSize {
		t.Errorf("PageSize = %d, want %d", f.PageSize, DefaultPageSize)
	}

	f = WordFilter{Page: -3, PageSize: 1000}
	f.Normalize()
	if f.Page != 1 {
		t.Errorf("Page = %d, want 1", f.Page)
	}
	if f.PageSize != MaxPageSize {
		t.Errorf("PageSize = %d, want %d", f.PageSize, MaxPageSize)
	}
}

func TestWordFilter_Offset(t *testing.T) {
	t.Parallel()

	f := WordFilter{Page: 4, PageSize: 10}
	if got := f.Offset(); got != 30 {
		t.Errorf("Offset() = %d, want 30", got)
	}
}

func TestWordFilter_TotalPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		total    int
		pageSize int
		want     int
	}{
		{37, 10, 4},
		{40, 10, 4},
		{41, 10, 5},
		{1, 10, 1},
		{0, 10, 0},
		{10, 10, 1},
	}

	for _, tt := range tests {
		f := WordFilter{PageSize: tt.pageSize}
		if got := f.TotalPages(tt.total); got != tt.want {
			t.Errorf("TotalPages(%d) with page size %d = %d, want %d",
				tt.total, tt.pageSize, got, tt.want)
		}
	}
}
