package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
	"videotube/infrastructure/pubsub"
	"videotube/infrastructure/utils"
)

type IVideoUsecase interface {
	ListVideos(ctx context.Context, req dto.ListVideosRequest) (dto.ListVideosResponse, error)
	PublishVideo(ctx context.Context, ownerID string, req dto.PublishVideoRequest) (model.Video, error)
	GetVideoByID(ctx context.Context, videoID, viewerID string) (model.VideoWithOwner, error)
	UpdateVideo(ctx context.Context, videoID, callerID string, req dto.UpdateVideoRequest) (model.Video, error)
	DeleteVideo(ctx context.Context, videoID, callerID string) error
	TogglePublishStatus(ctx context.Context, videoID, callerID string) (model.Video, error)
}

type videoUsecase struct {
	videoRepo   repository.IVideo
	userRepo    repository.IUser
	commentRepo repository.IComment
	likeRepo    repository.ILike
	events      pubsub.IEventPublisher
}

func NewVideoUsecase(
	videoRepo repository.IVideo,
	userRepo repository.IUser,
	commentRepo repository.IComment,
	likeRepo repository.ILike,
	events pubsub.IEventPublisher,
) IVideoUsecase {
	return &videoUsecase{
		videoRepo:   videoRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		events:      events,
	}
}

// ListVideos validates the listing parameters, resolves the optional owner
// filter, runs the data and count queries and composes the pagination block.
// A listing with zero matches is a success with an empty page.
func (u *videoUsecase) ListVideos(ctx context.Context, req dto.ListVideosRequest) (dto.ListVideosResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 {
		req.Limit = 10
	}

	if req.SortBy != dto.SortByAsc && req.SortBy != dto.SortByDesc {
		return dto.ListVideosResponse{}, fmt.Errorf("%w: sortBy must be %q or %q", model.ErrInvalidArgument, dto.SortByAsc, dto.SortByDesc)
	}
	if req.SortType != dto.SortTypeDate && req.SortType != dto.SortTypeViews {
		return dto.ListVideosResponse{}, fmt.Errorf("%w: sortType must be %q or %q", model.ErrInvalidArgument, dto.SortTypeDate, dto.SortTypeViews)
	}

	var owner *bson.ObjectID
	if req.UserID != "" {
		id, err := bson.ObjectIDFromHex(req.UserID)
		if err != nil {
			return dto.ListVideosResponse{}, fmt.Errorf("%w: malformed user id %q", model.ErrInvalidArgument, req.UserID)
		}
		if _, err := u.userRepo.GetByID(ctx, id); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return dto.ListVideosResponse{}, fmt.Errorf("%w: no user with id %q", model.ErrInvalidArgument, req.UserID)
			}
			logger.GetLogger().WithField("error", err).Error("Error while resolving owner filter")
			return dto.ListVideosResponse{}, model.ErrQueryExecutionFailed
		}
		owner = &id
	}

	videos, total, err := u.videoRepo.List(ctx, req, owner)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while listing videos")
		return dto.ListVideosResponse{}, model.ErrQueryExecutionFailed
	}

	return dto.ListVideosResponse{
		Videos:     videos,
		Pagination: dto.NewPagination(req.Page, req.Limit, total),
	}, nil
}

func (u *videoUsecase) PublishVideo(ctx context.Context, ownerID string, req dto.PublishVideoRequest) (model.Video, error) {
	owner, err := bson.ObjectIDFromHex(ownerID)
	if err != nil {
		return model.Video{}, fmt.Errorf("%w: malformed user id", model.ErrInvalidArgument)
	}

	video, err := u.videoRepo.Insert(ctx, model.Video{
		Title:       req.Title,
		Description: req.Description,
		VideoFile:   req.VideoFile,
		Thumbnail:   req.Thumbnail,
		Duration:    req.Duration,
		IsPublished: true,
		Owner:       owner,
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while publishing video")
		return model.Video{}, model.ErrQueryExecutionFailed
	}

	u.publishEvent(ctx, pubsub.EventVideoPublished, video)
	return video, nil
}

// GetVideoByID bumps the view counter on every fetch, with no per-caller
// dedup, then returns the video with its owner summary and records the view
// in the caller's watch history.
func (u *videoUsecase) GetVideoByID(ctx context.Context, videoID, viewerID string) (model.VideoWithOwner, error) {
	id, err := bson.ObjectIDFromHex(videoID)
	if err != nil {
		return model.VideoWithOwner{}, fmt.Errorf("%w: malformed video id", model.ErrInvalidArgument)
	}

	if err := u.videoRepo.IncrementViews(ctx, id); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while incrementing views")
		return model.VideoWithOwner{}, model.ErrQueryExecutionFailed
	}

	video, err := u.videoRepo.GetByIDWithOwner(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.VideoWithOwner{}, err
		}
		logger.GetLogger().WithField("error", err).Error("Error while fetching video")
		return model.VideoWithOwner{}, model.ErrQueryExecutionFailed
	}

	if viewer, err := bson.ObjectIDFromHex(viewerID); err == nil {
		if err := u.userRepo.AddToWatchHistory(ctx, viewer, id); err != nil {
			logger.GetLogger().WithField("error", err).Warn("Error while recording watch history")
		}
	}
	return video, nil
}

func (u *videoUsecase) UpdateVideo(ctx context.Context, videoID, callerID string, req dto.UpdateVideoRequest) (model.Video, error) {
	id, err := u.ownedVideo(ctx, videoID, callerID)
	if err != nil {
		return model.Video{}, err
	}

	updates := bson.M{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Thumbnail != nil {
		updates["thumbnail"] = *req.Thumbnail
	}
	if len(updates) == 0 {
		return model.Video{}, fmt.Errorf("%w: no fields to update", model.ErrInvalidArgument)
	}

	video, err := u.videoRepo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Video{}, err
		}
		logger.GetLogger().WithField("error", err).Error("Error while updating video")
		return model.Video{}, model.ErrQueryExecutionFailed
	}
	return video, nil
}

// DeleteVideo removes the video and cascades its comments and likes.
func (u *videoUsecase) DeleteVideo(ctx context.Context, videoID, callerID string) error {
	id, err := u.ownedVideo(ctx, videoID, callerID)
	if err != nil {
		return err
	}

	video, err := u.videoRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := u.videoRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		logger.GetLogger().WithField("error", err).Error("Error while deleting video")
		return model.ErrQueryExecutionFailed
	}
	if err := u.commentRepo.DeleteByVideo(ctx, id); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Error while cascading comment delete")
	}
	if err := u.likeRepo.DeleteByVideo(ctx, id); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Error while cascading like delete")
	}

	u.publishEvent(ctx, pubsub.EventVideoDeleted, video)
	return nil
}

func (u *videoUsecase) TogglePublishStatus(ctx context.Context, videoID, callerID string) (model.Video, error) {
	id, err := u.ownedVideo(ctx, videoID, callerID)
	if err != nil {
		return model.Video{}, err
	}

	video, err := u.videoRepo.GetByID(ctx, id)
	if err != nil {
		return model.Video{}, err
	}

	updated, err := u.videoRepo.Update(ctx, id, bson.M{"isPublished": !video.IsPublished})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while toggling publish status")
		return model.Video{}, model.ErrQueryExecutionFailed
	}
	return updated, nil
}

// ownedVideo parses both ids and verifies the caller owns the video.
func (u *videoUsecase) ownedVideo(ctx context.Context, videoID, callerID string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(videoID)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("%w: malformed video id", model.ErrInvalidArgument)
	}
	caller, err := bson.ObjectIDFromHex(callerID)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("%w: malformed user id", model.ErrInvalidArgument)
	}

	video, err := u.videoRepo.GetByID(ctx, id)
	if err != nil {
		return bson.ObjectID{}, err
	}
	if video.Owner != caller {
		return bson.ObjectID{}, fmt.Errorf("%w: only the owner can modify a video", model.ErrForbidden)
	}
	return id, nil
}

func (u *videoUsecase) publishEvent(ctx context.Context, event string, video model.Video) {
	if u.events == nil {
		return
	}
	err := u.events.PublishVideoEvent(ctx, pubsub.VideoEvent{
		Event:      event,
		VideoID:    video.ID.Hex(),
		OwnerID:    video.Owner.Hex(),
		OccurredAt: utils.GetCurrentTime(),
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Error while publishing video event")
	}
}
