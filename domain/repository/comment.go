package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"videotube/domain/model"
)

type IComment interface {
	ListByVideo(ctx context.Context, videoID bson.ObjectID, page, limit int) ([]model.CommentWithOwner, int64, error)
	Insert(ctx context.Context, comment model.Comment) (model.Comment, error)
	GetByID(ctx context.Context, id bson.ObjectID) (model.Comment, error)
	UpdateContent(ctx context.Context, id bson.ObjectID, content string) (model.Comment, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	DeleteByVideo(ctx context.Context, videoID bson.ObjectID) error
}
