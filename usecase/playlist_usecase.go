package usecase

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
)

type IPlaylistUsecase interface {
	CreatePlaylist(ctx context.Context, callerID string, req dto.ReqPlaylist) (model.Playlist, error)
	GetPlaylist(ctx context.Context, playlistID string) (model.Playlist, error)
	GetUserPlaylists(ctx context.Context, userID string) ([]model.Playlist, error)
	UpdatePlaylist(ctx context.Context, playlistID, callerID string, req dto.ReqUpdatePlaylist) (model.Playlist, error)
	AddVideoToPlaylist(ctx context.Context, playlistID, videoID, callerID string) (model.Playlist, error)
	RemoveVideoFromPlaylist(ctx context.Context, playlistID, videoID, callerID string) (model.Playlist, error)
	DeletePlaylist(ctx context.Context, playlistID, callerID string) error
}

type playlistUsecase struct {
	playlistRepo repository.IPlaylist
	videoRepo    repository.IVideo
}

func NewPlaylistUsecase(playlistRepo repository.IPlaylist, videoRepo repository.IVideo) IPlaylistUsecase {
	return &playlistUsecase{playlistRepo: playlistRepo, videoRepo: videoRepo}
}

func (u *playlistUsecase) CreatePlaylist(ctx context.Context, callerID string, req dto.ReqPlaylist) (model.Playlist, error) {
	caller, err := bson.ObjectIDFromHex(callerID)
	if err != nil {
		return model.Playlist{}, fmt.Errorf("%w: malformed user id", model.ErrInvalidArgument)
	}
	return u.playlistRepo.Insert(ctx, model.Playlist{
		Name:        req.Name,
		Description: req.Description,
		Owner:       caller,
	})
}

func (u *playlistUsecase) GetPlaylist(ctx context.Context, playlistID string) (model.Playlist, error) {
	id, err := bson.ObjectIDFromHex(playlistID)
	if err != nil {
		return model.Playlist{}, fmt.Errorf("%w: malformed playlist id", model.ErrInvalidArgument)
	}
	return u.playlistRepo.GetByID(ctx, id)
}

func (u *playlistUsecase) GetUserPlaylists(ctx context.Context, userID string) ([]model.Playlist, error) {
	id, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed user id", model.ErrInvalidArgument)
	}
	return u.playlistRepo.GetByOwner(ctx, id)
}

func (u *playlistUsecase) UpdatePlaylist(ctx context.Context, playlistID, callerID string, req dto.ReqUpdatePlaylist) (model.Playlist, error) {
	id, err := u.ownedPlaylist(ctx, playlistID, callerID)
	if err != nil {
		return model.Playlist{}, err
	}

	updates := bson.M{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(updates) == 0 {
		return model.Playlist{}, fmt.Errorf("%w: no fields to update", model.ErrInvalidArgument)
	}
	return u.playlistRepo.Update(ctx, id, updates)
}

func (u *playlistUsecase) AddVideoToPlaylist(ctx context.Context, playlistID, videoID, callerID string) (model.Playlist, error) {
	id, err := u.ownedPlaylist(ctx, playlistID, callerID)
	if err != nil {
		return model.Playlist{}, err
	}
	video, err := bson.ObjectIDFromHex(videoID)
	if err != nil {
		return model.Playlist{}, fmt.Errorf("%w: malformed video id", model.ErrInvalidArgument)
	}
	if _, err := u.videoRepo.GetByID(ctx, video); err != nil {
		return model.Playlist{}, err
	}
	return u.playlistRepo.AddVideo(ctx, id, video)
}

func (u *playlistUsecase) RemoveVideoFromPlaylist(ctx context.Context, playlistID, videoID, callerID string) (model.Playlist, error) {
	id, err := u.ownedPlaylist(ctx, playlistID, callerID)
	if err != nil {
		return model.Playlist{}, err
	}
	video, err := bson.ObjectIDFromHex(videoID)
	if err != nil {
		return model.Playlist{}, fmt.Errorf("%w: malformed video id", model.ErrInvalidArgument)
	}
	return u.playlistRepo.RemoveVideo(ctx, id, video)
}

func (u *playlistUsecase) DeletePlaylist(ctx context.Context, playlistID, callerID string) error {
	id, err := u.ownedPlaylist(ctx, playlistID, callerID)
	if err != nil {
		return err
	}
	return u.playlistRepo.Delete(ctx, id)
}

func (u *playlistUsecase) ownedPlaylist(ctx context.Context, playlistID, callerID string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(playlistID)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("%w: malformed playlist id", model.ErrInvalidArgument)
	}
	caller, err := bson.ObjectIDFromHex(callerID)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("%w: malformed user id", model.ErrInvalidArgument)
	}

	playlist, err := u.playlistRepo.GetByID(ctx, id)
	if err != nil {
		return bson.ObjectID{}, err
	}
	if playlist.Owner != caller {
		return bson.ObjectID{}, fmt.Errorf("%w: only the owner can modify a playlist", model.ErrForbidden)
	}
	return id, nil
}
