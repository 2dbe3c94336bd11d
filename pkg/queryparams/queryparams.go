package queryparams

import "time"

const (
	DefaultPage    = 1
	DefaultPerPage = 9
	MaxPerPage     = 100
)

// ListParams carries the optional filters a listing endpoint accepts.
// Zero values mean "no filter".
type ListParams struct {
	Page      int    `query:"page"`
	PerPage   int    `query:"per_page"`
	Search    string `query:"search"`
	Type      string `query:"type"`
	Category  string `query:"category"`
	StartDate string `query:"start_date"` // YYYY-MM-DD
	EndDate   string `query:"end_date"`   // YYYY-MM-DD
}

// DefaultListParams returns params for the first page of perPage items.
func DefaultListParams(perPage int) ListParams {
	return ListParams{Page: DefaultPage, PerPage: perPage}
}

// Validate normalizes page and per_page into usable bounds.
func (p *ListParams) Validate(defaultPerPage int) {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = defaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
}

// ClampPage pulls an out-of-range page back to the nearest valid page
// for the given total. A total of zero keeps page 1.
func (p *ListParams) ClampPage(total int64) {
	last := TotalPages(total, p.PerPage)
	if p.Page > last {
		p.Page = last
	}
	if p.Page < 1 {
		p.Page = DefaultPage
	}
}

// CalculateOffset returns the row offset for the current page.
func (p ListParams) CalculateOffset() int {
	return (p.Page - 1) * p.PerPage
}

// DateRange parses the optional start/end date filters. Malformed or
// empty values yield nil, matching "filter not supplied".
func (p ListParams) DateRange() (start, end *time.Time) {
	if t, err := time.Parse("2006-01-02", p.StartDate); err == nil {
		start = &t
	}
	if t, err := time.Parse("2006-01-02", p.EndDate); err == nil {
		end = &t
	}
	return start, end
}

// TotalPages returns the page count for total rows at perPage per page,
// never less than 1.
func TotalPages(total int64, perPage int) int {
	if perPage < 1 {
		return 1
	}
	pages := int((total + int64(perPage) - 1) / int64(perPage))
	if pages < 1 {
		return 1
	}
	return pages
}

// PaginationMeta describes the slice a listing returned.
type PaginationMeta struct {
	Total       int64 `json:"total"`
	Pages       int   `json:"pages"`
	Current     int   `json:"current"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// PaginatedResult bundles one page of rows with its pagination meta for
// rendering.
type PaginatedResult struct {
	Data interface{}
	Meta PaginationMeta
}

// NewPaginationMeta builds the meta block for the given page/total pair.
func NewPaginationMeta(total int64, page, perPage int) PaginationMeta {
	pages := TotalPages(total, perPage)
	return PaginationMeta{
		Total:       total,
		Pages:       pages,
		Current:     page,
		HasNext:     page < pages,
		HasPrevious: page > 1,
	}
}
