package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"videotube/domain/dto"
	"videotube/infrastructure/logger"
	"videotube/usecase"
)

type ICommentHandler interface {
	ListComments(c *gin.Context)
	AddComment(c *gin.Context)
	UpdateComment(c *gin.Context)
	DeleteComment(c *gin.Context)
}

type CommentHandler struct {
	commentUsecase usecase.ICommentUsecase
}

func NewCommentHandler(commentUsecase usecase.ICommentUsecase) ICommentHandler {
	return &CommentHandler{commentUsecase: commentUsecase}
}

func (commentHandler *CommentHandler) ListComments(c *gin.Context) {
	page, limit := 1, 10
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page = n
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	res, err := commentHandler.commentUsecase.ListComments(c.Request.Context(), c.Param("videoId"), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(res))
}

func (commentHandler *CommentHandler) AddComment(c *gin.Context) {
	var req dto.ReqComment
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		respondBindError(c, err)
		return
	}

	comment, err := commentHandler.commentUsecase.AddComment(c.Request.Context(), c.Param("videoId"), callerID(c), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Res{ResponseCode: "201", ResponseMessage: "Created", Data: comment})
}

func (commentHandler *CommentHandler) UpdateComment(c *gin.Context) {
	var req dto.ReqComment
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		respondBindError(c, err)
		return
	}

	comment, err := commentHandler.commentUsecase.UpdateComment(c.Request.Context(), c.Param("commentId"), callerID(c), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(comment))
}

func (commentHandler *CommentHandler) DeleteComment(c *gin.Context) {
	if err := commentHandler.commentUsecase.DeleteComment(c.Request.Context(), c.Param("commentId"), callerID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(nil))
}
