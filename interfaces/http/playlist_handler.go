package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"videotube/domain/dto"
	"videotube/infrastructure/logger"
	"videotube/usecase"
)

type IPlaylistHandler interface {
	CreatePlaylist(c *gin.Context)
	GetPlaylist(c *gin.Context)
	GetUserPlaylists(c *gin.Context)
	UpdatePlaylist(c *gin.Context)
	AddVideoToPlaylist(c *gin.Context)
	RemoveVideoFromPlaylist(c *gin.Context)
	DeletePlaylist(c *gin.Context)
}

type PlaylistHandler struct {
	playlistUsecase usecase.IPlaylistUsecase
}

func NewPlaylistHandler(playlistUsecase usecase.IPlaylistUsecase) IPlaylistHandler {
	return &PlaylistHandler{playlistUsecase: playlistUsecase}
}

func (playlistHandler *PlaylistHandler) CreatePlaylist(c *gin.Context) {
	var req dto.ReqPlaylist
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		respondBindError(c, err)
		return
	}

	playlist, err := playlistHandler.playlistUsecase.CreatePlaylist(c.Request.Context(), callerID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Res{ResponseCode: "201", ResponseMessage: "Created", Data: playlist})
}

func (playlistHandler *PlaylistHandler) GetPlaylist(c *gin.Context) {
	playlist, err := playlistHandler.playlistUsecase.GetPlaylist(c.Request.Context(), c.Param("playlistId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(playlist))
}

func (playlistHandler *PlaylistHandler) GetUserPlaylists(c *gin.Context) {
	playlists, err := playlistHandler.playlistUsecase.GetUserPlaylists(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(playlists))
}

func (playlistHandler *PlaylistHandler) UpdatePlaylist(c *gin.Context) {
	var req dto.ReqUpdatePlaylist
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		respondBindError(c, err)
		return
	}

	playlist, err := playlistHandler.playlistUsecase.UpdatePlaylist(c.Request.Context(), c.Param("playlistId"), callerID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(playlist))
}

func (playlistHandler *PlaylistHandler) AddVideoToPlaylist(c *gin.Context) {
	playlist, err := playlistHandler.playlistUsecase.AddVideoToPlaylist(c.Request.Context(), c.Param("playlistId"), c.Param("videoId"), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(playlist))
}

func (playlistHandler *PlaylistHandler) RemoveVideoFromPlaylist(c *gin.Context) {
	playlist, err := playlistHandler.playlistUsecase.RemoveVideoFromPlaylist(c.Request.Context(), c.Param("playlistId"), c.Param("videoId"), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(playlist))
}

func (playlistHandler *PlaylistHandler) DeletePlaylist(c *gin.Context) {
	if err := playlistHandler.playlistUsecase.DeletePlaylist(c.Request.Context(), c.Param("playlistId"), callerID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(nil))
}
