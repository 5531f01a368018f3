package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"videotube/domain/dto"
	"videotube/usecase"
)

type ISubscriptionHandler interface {
	ToggleSubscription(c *gin.Context)
	GetChannelSubscribers(c *gin.Context)
	GetSubscribedChannels(c *gin.Context)
}

type SubscriptionHandler struct {
	subscriptionUsecase usecase.ISubscriptionUsecase
}

func NewSubscriptionHandler(subscriptionUsecase usecase.ISubscriptionUsecase) ISubscriptionHandler {
	return &SubscriptionHandler{subscriptionUsecase: subscriptionUsecase}
}

func (subscriptionHandler *SubscriptionHandler) ToggleSubscription(c *gin.Context) {
	res, err := subscriptionHandler.subscriptionUsecase.ToggleSubscription(c.Request.Context(), c.Param("channelId"), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(res))
}

func (subscriptionHandler *SubscriptionHandler) GetChannelSubscribers(c *gin.Context) {
	subscribers, err := subscriptionHandler.subscriptionUsecase.GetChannelSubscribers(c.Request.Context(), c.Param("channelId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(subscribers))
}

func (subscriptionHandler *SubscriptionHandler) GetSubscribedChannels(c *gin.Context) {
	channels, err := subscriptionHandler.subscriptionUsecase.GetSubscribedChannels(c.Request.Context(), c.Param("subscriberId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(channels))
}
