package queryparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateNormalizesBounds(t *testing.T) {
	p := ListParams{Page: -3, PerPage: 0}
	p.Validate(9)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 9, p.PerPage)

	p = ListParams{Page: 2, PerPage: 5000}
	p.Validate(9)
	assert.Equal(t, MaxPerPage, p.PerPage)
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		total int64
		want  int
	}{
		{"in range", 2, 30, 2},
		{"past the end", 9, 30, 3},
		{"last page exactly", 3, 30, 3},
		{"empty result keeps page one", 4, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ListParams{Page: tt.page, PerPage: 10}
			p.ClampPage(tt.total)
			assert.Equal(t, tt.want, p.Page)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 1, TotalPages(5, 0))
}

func TestCalculateOffset(t *testing.T) {
	p := ListParams{Page: 3, PerPage: 12}
	assert.Equal(t, 24, p.CalculateOffset())
}

func TestDateRangeParsing(t *testing.T) {
	p := ListParams{StartDate: "2025-01-15", EndDate: "not-a-date"}
	start, end := p.DateRange()
	assert.NotNil(t, start)
	assert.Equal(t, "2025-01-15", start.Format("2006-01-02"))
	assert.Nil(t, end)
}

func TestNewPaginationMeta(t *testing.T) {
	meta := NewPaginationMeta(25, 2, 10)
	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, 3, meta.Pages)
	assert.Equal(t, 2, meta.Current)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrevious)

	meta = NewPaginationMeta(0, 1, 10)
	assert.Equal(t, 1, meta.Pages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrevious)
}
