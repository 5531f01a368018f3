package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"videotube/domain/dto"
	"videotube/usecase"
)

type ILikeHandler interface {
	ToggleVideoLike(c *gin.Context)
	ToggleCommentLike(c *gin.Context)
	ToggleTweetLike(c *gin.Context)
	GetLikedVideos(c *gin.Context)
}

type LikeHandler struct {
	likeUsecase usecase.ILikeUsecase
}

func NewLikeHandler(likeUsecase usecase.ILikeUsecase) ILikeHandler {
	return &LikeHandler{likeUsecase: likeUsecase}
}

func (likeHandler *LikeHandler) ToggleVideoLike(c *gin.Context) {
	res, err := likeHandler.likeUsecase.ToggleVideoLike(c.Request.Context(), c.Param("videoId"), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(res))
}

func (likeHandler *LikeHandler) ToggleCommentLike(c *gin.Context) {
	res, err := likeHandler.likeUsecase.ToggleCommentLike(c.Request.Context(), c.Param("commentId"), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(res))
}

func (likeHandler *LikeHandler) ToggleTweetLike(c *gin.Context) {
	res, err := likeHandler.likeUsecase.ToggleTweetLike(c.Request.Context(), c.Param("tweetId"), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(res))
}

func (likeHandler *LikeHandler) GetLikedVideos(c *gin.Context) {
	videos, err := likeHandler.likeUsecase.GetLikedVideos(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(videos))
}
