package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"videotube/domain/model"
)

type IPlaylist interface {
	Insert(ctx context.Context, playlist model.Playlist) (model.Playlist, error)
	GetByID(ctx context.Context, id bson.ObjectID) (model.Playlist, error)
	GetByOwner(ctx context.Context, ownerID bson.ObjectID) ([]model.Playlist, error)
	Update(ctx context.Context, id bson.ObjectID, updates bson.M) (model.Playlist, error)
	AddVideo(ctx context.Context, id, videoID bson.ObjectID) (model.Playlist, error)
	RemoveVideo(ctx context.Context, id, videoID bson.ObjectID) (model.Playlist, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}
