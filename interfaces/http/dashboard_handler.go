package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"videotube/domain/dto"
	"videotube/usecase"
)

type IDashboardHandler interface {
	GetChannelStats(c *gin.Context)
	GetChannelVideos(c *gin.Context)
}

type DashboardHandler struct {
	dashboardUsecase usecase.IDashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.IDashboardUsecase) IDashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

func (dashboardHandler *DashboardHandler) GetChannelStats(c *gin.Context) {
	stats, err := dashboardHandler.dashboardUsecase.GetChannelStats(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(stats))
}

func (dashboardHandler *DashboardHandler) GetChannelVideos(c *gin.Context) {
	videos, err := dashboardHandler.dashboardUsecase.GetChannelVideos(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(videos))
}
