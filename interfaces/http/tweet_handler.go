package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"videotube/domain/dto"
	"videotube/infrastructure/logger"
	"videotube/usecase"
)

type ITweetHandler interface {
	CreateTweet(c *gin.Context)
	GetUserTweets(c *gin.Context)
	UpdateTweet(c *gin.Context)
	DeleteTweet(c *gin.Context)
}

type TweetHandler struct {
	tweetUsecase usecase.ITweetUsecase
}

func NewTweetHandler(tweetUsecase usecase.ITweetUsecase) ITweetHandler {
	return &TweetHandler{tweetUsecase: tweetUsecase}
}

func (tweetHandler *TweetHandler) CreateTweet(c *gin.Context) {
	var req dto.ReqTweet
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		respondBindError(c, err)
		return
	}

	tweet, err := tweetHandler.tweetUsecase.CreateTweet(c.Request.Context(), callerID(c), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Res{ResponseCode: "201", ResponseMessage: "Created", Data: tweet})
}

func (tweetHandler *TweetHandler) GetUserTweets(c *gin.Context) {
	tweets, err := tweetHandler.tweetUsecase.GetUserTweets(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(tweets))
}

func (tweetHandler *TweetHandler) UpdateTweet(c *gin.Context) {
	var req dto.ReqTweet
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		respondBindError(c, err)
		return
	}

	tweet, err := tweetHandler.tweetUsecase.UpdateTweet(c.Request.Context(), c.Param("tweetId"), callerID(c), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(tweet))
}

func (tweetHandler *TweetHandler) DeleteTweet(c *gin.Context) {
	if err := tweetHandler.tweetUsecase.DeleteTweet(c.Request.Context(), c.Param("tweetId"), callerID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(nil))
}
