package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"videotube/domain/dto"
	"videotube/infrastructure/logger"
	"videotube/usecase"
)

type IVideoHandler interface {
	ListVideos(c *gin.Context)
	PublishVideo(c *gin.Context)
	GetVideoByID(c *gin.Context)
	UpdateVideo(c *gin.Context)
	DeleteVideo(c *gin.Context)
	TogglePublishStatus(c *gin.Context)
}

type VideoHandler struct {
	videoUsecase usecase.IVideoUsecase
}

func NewVideoHandler(videoUsecase usecase.IVideoUsecase) IVideoHandler {
	return &VideoHandler{videoUsecase: videoUsecase}
}

func (videoHandler *VideoHandler) ListVideos(c *gin.Context) {
	req := dto.NewListVideosRequest()
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			req.Page = n
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			req.Limit = n
		}
	}
	req.Query = c.Query("query")
	if v := c.Query("sortBy"); v != "" {
		req.SortBy = v
	}
	if v := c.Query("sortType"); v != "" {
		req.SortType = v
	}
	req.UserID = c.Query("userId")

	res, err := videoHandler.videoUsecase.ListVideos(c.Request.Context(), req)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while listing videos")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(res))
}

func (videoHandler *VideoHandler) PublishVideo(c *gin.Context) {
	var req dto.PublishVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		respondBindError(c, err)
		return
	}

	video, err := videoHandler.videoUsecase.PublishVideo(c.Request.Context(), callerID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Res{ResponseCode: "201", ResponseMessage: "Created", Data: video})
}

func (videoHandler *VideoHandler) GetVideoByID(c *gin.Context) {
	video, err := videoHandler.videoUsecase.GetVideoByID(c.Request.Context(), c.Param("videoId"), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(video))
}

func (videoHandler *VideoHandler) UpdateVideo(c *gin.Context) {
	var req dto.UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		respondBindError(c, err)
		return
	}

	video, err := videoHandler.videoUsecase.UpdateVideo(c.Request.Context(), c.Param("videoId"), callerID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(video))
}

func (videoHandler *VideoHandler) DeleteVideo(c *gin.Context) {
	if err := videoHandler.videoUsecase.DeleteVideo(c.Request.Context(), c.Param("videoId"), callerID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(nil))
}

func (videoHandler *VideoHandler) TogglePublishStatus(c *gin.Context) {
	video, err := videoHandler.videoUsecase.TogglePublishStatus(c.Request.Context(), c.Param("videoId"), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(video))
}
