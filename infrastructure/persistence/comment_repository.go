package persistence

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"golang.org/x/sync/errgroup"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
)

type CommentRepository struct {
	comments *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) repository.IComment {
	return &CommentRepository{comments: db.Collection("comments")}
}

// ListByVideo returns one page of comments for a video, newest first, with
// the author summary joined in, plus the total comment count.
func (r *CommentRepository) ListByVideo(ctx context.Context, videoID bson.ObjectID, page, limit int) ([]model.CommentWithOwner, int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "video", Value: videoID}}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		bson.D{{Key: "$skip", Value: int64(page-1) * int64(limit)}},
		bson.D{{Key: "$limit", Value: int64(limit)}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "users"},
			{Key: "localField", Value: "owner"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "owner"},
			{Key: "pipeline", Value: mongo.Pipeline{
				bson.D{{Key: "$project", Value: bson.D{
					{Key: "username", Value: 1},
					{Key: "fullName", Value: 1},
					{Key: "avatar", Value: 1},
				}}},
			}},
		}}},
		bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "owner", Value: bson.D{{Key: "$first", Value: "$owner"}}},
		}}},
	}

	var (
		comments []model.CommentWithOwner
		total    int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cursor, err := r.comments.Aggregate(gctx, pipeline)
		if err != nil {
			return err
		}
		defer func() {
			if err := cursor.Close(gctx); err != nil {
				logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
			}
		}()
		return cursor.All(gctx, &comments)
	})
	g.Go(func() error {
		n, err := r.comments.CountDocuments(gctx, bson.D{{Key: "video", Value: videoID}})
		if err != nil {
			return err
		}
		total = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	if comments == nil {
		comments = []model.CommentWithOwner{}
	}
	return comments, total, nil
}

func (r *CommentRepository) Insert(ctx context.Context, comment model.Comment) (model.Comment, error) {
	now := time.Now().UTC()
	comment.ID = bson.NewObjectID()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	if _, err := r.comments.InsertOne(ctx, comment); err != nil {
		return model.Comment{}, err
	}
	return comment, nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.Comment, error) {
	var comment model.Comment
	err := r.comments.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&comment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Comment{}, model.ErrNotFound
	}
	if err != nil {
		return model.Comment{}, err
	}
	return comment, nil
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (model.Comment, error) {
	res := r.comments.FindOneAndUpdate(
		ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "content", Value: content},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var comment model.Comment
	err := res.Decode(&comment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Comment{}, model.ErrNotFound
	}
	if err != nil {
		return model.Comment{}, err
	}
	return comment, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.comments.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *CommentRepository) DeleteByVideo(ctx context.Context, videoID bson.ObjectID) error {
	_, err := r.comments.DeleteMany(ctx, bson.D{{Key: "video", Value: videoID}})
	return err
}
