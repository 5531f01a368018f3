package persistence

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"golang.org/x/sync/errgroup"
	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
)

type DashboardRepository struct {
	videos        *mongo.Collection
	likes         *mongo.Collection
	subscriptions *mongo.Collection
}

func NewDashboardRepository(db *mongo.Database) repository.IDashboard {
	return &DashboardRepository{
		videos:        db.Collection("videos"),
		likes:         db.Collection("likes"),
		subscriptions: db.Collection("subscriptions"),
	}
}

// GetChannelStats gathers the dashboard counters with independent queries run
// concurrently.
func (r *DashboardRepository) GetChannelStats(ctx context.Context, channelID bson.ObjectID) (dto.ChannelStats, error) {
	var stats dto.ChannelStats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		pipeline := mongo.Pipeline{
			bson.D{{Key: "$match", Value: bson.D{{Key: "owner", Value: channelID}}}},
			bson.D{{Key: "$group", Value: bson.D{
				{Key: "_id", Value: nil},
				{Key: "totalVideos", Value: bson.D{{Key: "$sum", Value: 1}}},
				{Key: "totalViews", Value: bson.D{{Key: "$sum", Value: "$views"}}},
			}}},
		}
		cursor, err := r.videos.Aggregate(gctx, pipeline)
		if err != nil {
			return err
		}
		defer func() {
			if err := cursor.Close(gctx); err != nil {
				logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
			}
		}()
		var rows []struct {
			TotalVideos int64 `bson:"totalVideos"`
			TotalViews  int64 `bson:"totalViews"`
		}
		if err := cursor.All(gctx, &rows); err != nil {
			return err
		}
		if len(rows) > 0 {
			stats.TotalVideos = rows[0].TotalVideos
			stats.TotalViews = rows[0].TotalViews
		}
		return nil
	})
	g.Go(func() error {
		// Likes on any of the channel's videos.
		pipeline := mongo.Pipeline{
			bson.D{{Key: "$match", Value: bson.D{{Key: "video", Value: bson.D{{Key: "$exists", Value: true}}}}}},
			bson.D{{Key: "$lookup", Value: bson.D{
				{Key: "from", Value: "videos"},
				{Key: "localField", Value: "video"},
				{Key: "foreignField", Value: "_id"},
				{Key: "as", Value: "video"},
			}}},
			bson.D{{Key: "$unwind", Value: "$video"}},
			bson.D{{Key: "$match", Value: bson.D{{Key: "video.owner", Value: channelID}}}},
			bson.D{{Key: "$count", Value: "totalLikes"}},
		}
		cursor, err := r.likes.Aggregate(gctx, pipeline)
		if err != nil {
			return err
		}
		defer func() {
			if err := cursor.Close(gctx); err != nil {
				logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
			}
		}()
		var rows []struct {
			TotalLikes int64 `bson:"totalLikes"`
		}
		if err := cursor.All(gctx, &rows); err != nil {
			return err
		}
		if len(rows) > 0 {
			stats.TotalLikes = rows[0].TotalLikes
		}
		return nil
	})
	g.Go(func() error {
		n, err := r.subscriptions.CountDocuments(gctx, bson.D{{Key: "channel", Value: channelID}})
		if err != nil {
			return err
		}
		stats.TotalSubscribers = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return dto.ChannelStats{}, err
	}

	return stats, nil
}

// GetChannelVideos returns all of the channel's own videos, published or not,
// newest first.
func (r *DashboardRepository) GetChannelVideos(ctx context.Context, channelID bson.ObjectID) ([]model.Video, error) {
	cursor, err := r.videos.Find(
		ctx,
		bson.D{{Key: "owner", Value: channelID}},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
		}
	}()

	var videos []model.Video
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	if videos == nil {
		videos = []model.Video{}
	}
	return videos, nil
}
