package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"videotube/domain/dto"
)

type IHealthHandler interface {
	Healthz(c *gin.Context)
}

type HealthHandler struct {
	client *mongo.Client
}

func NewHealthHandler(client *mongo.Client) IHealthHandler {
	return &HealthHandler{client: client}
}

// Healthz reports liveness and pings the database for readiness.
func (healthHandler *HealthHandler) Healthz(c *gin.Context) {
	if err := healthHandler.client.Ping(c.Request.Context(), nil); err != nil {
		c.JSON(http.StatusServiceUnavailable, dto.Res{
			ResponseCode:    "503",
			ResponseMessage: "database unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, dto.OK(gin.H{"status": "ok"}))
}
