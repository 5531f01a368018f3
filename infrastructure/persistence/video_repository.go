package persistence

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"golang.org/x/sync/errgroup"
	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
)

type VideoRepository struct {
	videos *mongo.Collection
}

func NewVideoRepository(db *mongo.Database) repository.IVideo {
	return &VideoRepository{videos: db.Collection("videos")}
}

// List runs the data and count pipelines concurrently and waits for both.
// Either failure fails the whole operation; no partial result is returned.
func (r *VideoRepository) List(ctx context.Context, req dto.ListVideosRequest, owner *bson.ObjectID) ([]model.VideoWithOwner, int64, error) {
	dataPipeline, countPipeline := BuildVideoListPipelines(req, owner)

	var (
		videos []model.VideoWithOwner
		total  int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cursor, err := r.videos.Aggregate(gctx, dataPipeline)
		if err != nil {
			return err
		}
		defer func() {
			if err := cursor.Close(gctx); err != nil {
				logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
			}
		}()
		return cursor.All(gctx, &videos)
	})
	g.Go(func() error {
		cursor, err := r.videos.Aggregate(gctx, countPipeline)
		if err != nil {
			return err
		}
		defer func() {
			if err := cursor.Close(gctx); err != nil {
				logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
			}
		}()
		var counts []struct {
			TotalVideos int64 `bson:"totalVideos"`
		}
		if err := cursor.All(gctx, &counts); err != nil {
			return err
		}
		// $count emits no document for an empty match; that is zero, not an error.
		if len(counts) > 0 {
			total = counts[0].TotalVideos
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	if videos == nil {
		videos = []model.VideoWithOwner{}
	}
	return videos, total, nil
}

func (r *VideoRepository) Insert(ctx context.Context, video model.Video) (model.Video, error) {
	now := time.Now().UTC()
	video.ID = bson.NewObjectID()
	video.CreatedAt = now
	video.UpdatedAt = now

	if _, err := r.videos.InsertOne(ctx, video); err != nil {
		return model.Video{}, err
	}
	return video, nil
}

func (r *VideoRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.Video, error) {
	var video model.Video
	err := r.videos.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&video)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Video{}, model.ErrNotFound
	}
	if err != nil {
		return model.Video{}, err
	}
	return video, nil
}

// GetByIDWithOwner fetches a single video with the owner summary joined in,
// using the same lookup/collapse shape as the listing pipeline.
func (r *VideoRepository) GetByIDWithOwner(ctx context.Context, id bson.ObjectID) (model.VideoWithOwner, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
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

	cursor, err := r.videos.Aggregate(ctx, pipeline)
	if err != nil {
		return model.VideoWithOwner{}, err
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
		}
	}()

	var results []model.VideoWithOwner
	if err := cursor.All(ctx, &results); err != nil {
		return model.VideoWithOwner{}, err
	}
	if len(results) == 0 {
		return model.VideoWithOwner{}, model.ErrNotFound
	}
	return results[0], nil
}

func (r *VideoRepository) Update(ctx context.Context, id bson.ObjectID, updates bson.M) (model.Video, error) {
	updates["updatedAt"] = time.Now().UTC()

	res := r.videos.FindOneAndUpdate(
		ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: updates}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var video model.Video
	err := res.Decode(&video)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Video{}, model.ErrNotFound
	}
	if err != nil {
		return model.Video{}, err
	}
	return video, nil
}

func (r *VideoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.videos.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

// IncrementViews bumps the view counter by one. Fired on every fetch-by-id,
// with no per-caller dedup.
func (r *VideoRepository) IncrementViews(ctx context.Context, id bson.ObjectID) error {
	_, err := r.videos.UpdateOne(
		ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "views", Value: 1}}}},
	)
	return err
}
