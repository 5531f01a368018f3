package dto

type ReqTweet struct {
	Content string `json:"content" binding:"required"`
}
