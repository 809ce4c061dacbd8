package domain

// Pagination defaults and bounds for word search.
const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// WordFilter contains filtering and pagination parameters for word searches.
// Pages are 1-indexed.
type WordFilter struct {
	// WordPart filters by substring match on the word text. nil means no filter.
	WordPart *string
	// Language filters by exact language code. nil means no filter.
	Language *string

	Page     int
	PageSize int
}

// Normalize applies defaults and clamps pagination values.
func (f *WordFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
}

// Offset returns the row offset of the requested page window.
func (f *WordFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// TotalPages computes ceil(total / pageSize) for a result count.
func (f *WordFilter) TotalPages(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + f.PageSize - 1) / f.PageSize
}
