package dto

import "videotube/domain/model"

type ReqComment struct {
	Content string `json:"content" binding:"required"`
}

type ListCommentsResponse struct {
	Comments   []model.CommentWithOwner `json:"comments"`
	Pagination Pagination               `json:"pagination"`
}
