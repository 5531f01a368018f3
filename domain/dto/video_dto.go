package dto

import "videotube/domain/model"

// Accepted sort parameter literals for video listing.
const (
	SortByAsc  = "asc"
	SortByDesc = "desc"

	SortTypeDate  = "date"
	SortTypeViews = "views"
)

// ListVideosRequest carries the listing query parameters. Defaults are applied
// by NewListVideosRequest; validation happens in the usecase.
type ListVideosRequest struct {
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
	Query    string `json:"query,omitempty"`
	SortBy   string `json:"sortBy"`   // asc | desc
	SortType string `json:"sortType"` // date | views
	UserID   string `json:"userId,omitempty"`
}

// NewListVideosRequest returns a request with the documented defaults:
// page 1, limit 10, newest first by creation date.
func NewListVideosRequest() ListVideosRequest {
	return ListVideosRequest{
		Page:     1,
		Limit:    10,
		SortBy:   SortByDesc,
		SortType: SortTypeDate,
	}
}

// Pagination reports page geometry for a listing result.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalVideos int64 `json:"totalVideos"`
	TotalPages  int64 `json:"totalPages"`
	HasPrevPage bool  `json:"hasPrevPage"`
	HasNextPage bool  `json:"hasNextPage"`
}

// NewPagination computes the pagination block for a page of size limit out of
// total records. totalPages is zero when there are no records; an empty page
// past the end reports hasNextPage false.
func NewPagination(page, limit int, total int64) Pagination {
	var totalPages int64
	if total > 0 {
		totalPages = (total + int64(limit) - 1) / int64(limit)
	}
	return Pagination{
		CurrentPage: page,
		TotalVideos: total,
		TotalPages:  totalPages,
		HasPrevPage: page > 1,
		HasNextPage: int64(page) < totalPages,
	}
}

// ListVideosResponse is the listing payload: one page of enriched videos plus
// the pagination block.
type ListVideosResponse struct {
	Videos     []model.VideoWithOwner `json:"videos"`
	Pagination Pagination             `json:"pagination"`
}

type PublishVideoRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	VideoFile   string  `json:"videoFile" binding:"required"`
	Thumbnail   string  `json:"thumbnail" binding:"required"`
	Duration    float64 `json:"duration"`
}

type UpdateVideoRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Thumbnail   *string `json:"thumbnail,omitempty"`
}
