package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"videotube/domain/model"
)

// LikeTarget selects which entity a like refers to.
type LikeTarget string

const (
	LikeTargetVideo   LikeTarget = "video"
	LikeTargetComment LikeTarget = "comment"
	LikeTargetTweet   LikeTarget = "tweet"
)

type ILike interface {
	// Toggle creates the like when absent and removes it when present.
	// It reports whether the target is liked after the call.
	Toggle(ctx context.Context, target LikeTarget, targetID, likedBy bson.ObjectID) (bool, error)
	CountByTarget(ctx context.Context, target LikeTarget, targetID bson.ObjectID) (int64, error)
	GetLikedVideos(ctx context.Context, likedBy bson.ObjectID) ([]model.VideoWithOwner, error)
	DeleteByVideo(ctx context.Context, videoID bson.ObjectID) error
}
