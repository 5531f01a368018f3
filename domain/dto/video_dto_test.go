package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"videotube/domain/dto"
)

func TestNewListVideosRequest_Defaults(t *testing.T) {
	req := dto.NewListVideosRequest()

	assert.Equal(t, 1, req.Page)
	assert.Equal(t, 10, req.Limit)
	assert.Equal(t, dto.SortByDesc, req.SortBy)
	assert.Equal(t, dto.SortTypeDate, req.SortType)
	assert.Empty(t, req.Query)
	assert.Empty(t, req.UserID)
}

func TestNewPagination(t *testing.T) {
	cases := []struct {
		name    string
		page    int
		limit   int
		total   int64
		pages   int64
		hasPrev bool
		hasNext bool
	}{
		{"empty result set", 1, 10, 0, 0, false, false},
		{"single partial page", 1, 10, 7, 1, false, false},
		{"exact page boundary", 1, 10, 20, 2, false, true},
		{"one over the boundary", 1, 10, 21, 3, false, true},
		{"middle page", 2, 10, 35, 4, true, true},
		{"last page", 4, 10, 35, 4, true, false},
		{"page past the end", 9, 10, 35, 4, true, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := dto.NewPagination(tc.page, tc.limit, tc.total)

			assert.Equal(t, tc.page, p.CurrentPage)
			assert.Equal(t, tc.total, p.TotalVideos)
			assert.Equal(t, tc.pages, p.TotalPages)
			assert.Equal(t, tc.hasPrev, p.HasPrevPage)
			assert.Equal(t, tc.hasNext, p.HasNextPage)
		})
	}
}
