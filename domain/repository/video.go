package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"videotube/domain/dto"
	"videotube/domain/model"
)

// IVideo defines video persistence operations. List executes the data and
// count aggregation pipelines and returns one page of enriched videos plus
// the total matching count.
type IVideo interface {
	List(ctx context.Context, req dto.ListVideosRequest, owner *bson.ObjectID) ([]model.VideoWithOwner, int64, error)
	Insert(ctx context.Context, video model.Video) (model.Video, error)
	GetByID(ctx context.Context, id bson.ObjectID) (model.Video, error)
	GetByIDWithOwner(ctx context.Context, id bson.ObjectID) (model.VideoWithOwner, error)
	Update(ctx context.Context, id bson.ObjectID, updates bson.M) (model.Video, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	IncrementViews(ctx context.Context, id bson.ObjectID) error
}
