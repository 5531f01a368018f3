package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/infrastructure/logger"
	"videotube/usecase"
)

type IUserHandler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	RefreshToken(c *gin.Context)
	Logout(c *gin.Context)
	CurrentUser(c *gin.Context)
	ChangePassword(c *gin.Context)
	UpdateAccount(c *gin.Context)
	GetChannelProfile(c *gin.Context)
	GetWatchHistory(c *gin.Context)
}

type UserHandler struct {
	userUsecase usecase.IUserUsecase
}

func NewUserHandler(userUsecase usecase.IUserUsecase) IUserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

func (userHandler *UserHandler) Register(c *gin.Context) {
	var req model.ReqRegister
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		respondBindError(c, err)
		return
	}

	user, err := userHandler.userUsecase.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Res{ResponseCode: "201", ResponseMessage: "Created", Data: user})
}

func (userHandler *UserHandler) Login(c *gin.Context) {
	var req model.ReqLogin
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		respondBindError(c, err)
		return
	}

	res, err := userHandler.userUsecase.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(res))
}

func (userHandler *UserHandler) RefreshToken(c *gin.Context) {
	var req dto.ReqRefreshToken
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		respondBindError(c, err)
		return
	}

	res, err := userHandler.userUsecase.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(res))
}

func (userHandler *UserHandler) Logout(c *gin.Context) {
	if err := userHandler.userUsecase.Logout(c.Request.Context(), callerID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(nil))
}

func (userHandler *UserHandler) CurrentUser(c *gin.Context) {
	user, err := userHandler.userUsecase.CurrentUser(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(user))
}

func (userHandler *UserHandler) ChangePassword(c *gin.Context) {
	var req dto.ReqChangePassword
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		respondBindError(c, err)
		return
	}

	if err := userHandler.userUsecase.ChangePassword(c.Request.Context(), callerID(c), req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(nil))
}

func (userHandler *UserHandler) UpdateAccount(c *gin.Context) {
	var req dto.ReqUpdateAccount
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		respondBindError(c, err)
		return
	}

	user, err := userHandler.userUsecase.UpdateAccount(c.Request.Context(), callerID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(user))
}

func (userHandler *UserHandler) GetChannelProfile(c *gin.Context) {
	profile, err := userHandler.userUsecase.GetChannelProfile(c.Request.Context(), c.Param("username"), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(profile))
}

func (userHandler *UserHandler) GetWatchHistory(c *gin.Context) {
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

	history, err := userHandler.userUsecase.GetWatchHistory(c.Request.Context(), callerID(c), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(history))
}
