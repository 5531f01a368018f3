package usecase

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"videotube/domain/model"
	"videotube/domain/repository"
)

type ToggleLikeResult struct {
	Liked      bool  `json:"liked"`
	TotalLikes int64 `json:"totalLikes"`
}

type ILikeUsecase interface {
	ToggleVideoLike(ctx context.Context, videoID, callerID string) (ToggleLikeResult, error)
	ToggleCommentLike(ctx context.Context, commentID, callerID string) (ToggleLikeResult, error)
	ToggleTweetLike(ctx context.Context, tweetID, callerID string) (ToggleLikeResult, error)
	GetLikedVideos(ctx context.Context, callerID string) ([]model.VideoWithOwner, error)
}

type likeUsecase struct {
	likeRepo repository.ILike
}

func NewLikeUsecase(likeRepo repository.ILike) ILikeUsecase {
	return &likeUsecase{likeRepo: likeRepo}
}

func (u *likeUsecase) ToggleVideoLike(ctx context.Context, videoID, callerID string) (ToggleLikeResult, error) {
	return u.toggle(ctx, repository.LikeTargetVideo, videoID, callerID)
}

func (u *likeUsecase) ToggleCommentLike(ctx context.Context, commentID, callerID string) (ToggleLikeResult, error) {
	return u.toggle(ctx, repository.LikeTargetComment, commentID, callerID)
}

func (u *likeUsecase) ToggleTweetLike(ctx context.Context, tweetID, callerID string) (ToggleLikeResult, error) {
	return u.toggle(ctx, repository.LikeTargetTweet, tweetID, callerID)
}

func (u *likeUsecase) toggle(ctx context.Context, target repository.LikeTarget, targetID, callerID string) (ToggleLikeResult, error) {
	id, err := bson.ObjectIDFromHex(targetID)
	if err != nil {
		return ToggleLikeResult{}, fmt.Errorf("%w: malformed %s id", model.ErrInvalidArgument, target)
	}
	caller, err := bson.ObjectIDFromHex(callerID)
	if err != nil {
		return ToggleLikeResult{}, fmt.Errorf("%w: malformed user id", model.ErrInvalidArgument)
	}

	liked, err := u.likeRepo.Toggle(ctx, target, id, caller)
	if err != nil {
		return ToggleLikeResult{}, err
	}
	total, err := u.likeRepo.CountByTarget(ctx, target, id)
	if err != nil {
		return ToggleLikeResult{}, err
	}
	return ToggleLikeResult{Liked: liked, TotalLikes: total}, nil
}

func (u *likeUsecase) GetLikedVideos(ctx context.Context, callerID string) ([]model.VideoWithOwner, error) {
	caller, err := bson.ObjectIDFromHex(callerID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed user id", model.ErrInvalidArgument)
	}
	return u.likeRepo.GetLikedVideos(ctx, caller)
}
