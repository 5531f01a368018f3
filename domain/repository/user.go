package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"videotube/domain/model"
)

// IUser defines user persistence operations.
type IUser interface {
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	GetByID(ctx context.Context, id bson.ObjectID) (model.User, error)
	GetByUserName(ctx context.Context, userName string) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	UpdateUser(ctx context.Context, id bson.ObjectID, updates bson.M) (model.User, error)
	UpdatePassword(ctx context.Context, id bson.ObjectID, hashed string) error
	AddToWatchHistory(ctx context.Context, userID, videoID bson.ObjectID) error
	GetWatchHistory(ctx context.Context, userID bson.ObjectID, page, limit int) ([]model.VideoWithOwner, error)
	GetChannelProfile(ctx context.Context, userName string, viewerID bson.ObjectID) (model.ChannelProfile, error)
}
