package persistence

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
)

type LikeRepository struct {
	likes *mongo.Collection
}

func NewLikeRepository(db *mongo.Database) repository.ILike {
	return &LikeRepository{likes: db.Collection("likes")}
}

func targetFilter(target repository.LikeTarget, targetID, likedBy bson.ObjectID) bson.D {
	filter := bson.D{{Key: string(target), Value: targetID}}
	if !likedBy.IsZero() {
		filter = append(filter, bson.E{Key: "likedBy", Value: likedBy})
	}
	return filter
}

// Toggle removes an existing like or creates one, and reports the state after
// the call.
func (r *LikeRepository) Toggle(ctx context.Context, target repository.LikeTarget, targetID, likedBy bson.ObjectID) (bool, error) {
	filter := targetFilter(target, targetID, likedBy)

	res, err := r.likes.DeleteOne(ctx, filter)
	if err != nil {
		return false, err
	}
	if res.DeletedCount > 0 {
		return false, nil
	}

	like := model.Like{
		ID:        bson.NewObjectID(),
		LikedBy:   likedBy,
		CreatedAt: time.Now().UTC(),
	}
	switch target {
	case repository.LikeTargetVideo:
		like.Video = &targetID
	case repository.LikeTargetComment:
		like.Comment = &targetID
	case repository.LikeTargetTweet:
		like.Tweet = &targetID
	default:
		return false, errors.New("unknown like target: " + string(target))
	}

	if _, err := r.likes.InsertOne(ctx, like); err != nil {
		return false, err
	}
	return true, nil
}

func (r *LikeRepository) CountByTarget(ctx context.Context, target repository.LikeTarget, targetID bson.ObjectID) (int64, error) {
	return r.likes.CountDocuments(ctx, bson.D{{Key: string(target), Value: targetID}})
}

// GetLikedVideos returns the videos the user has liked, enriched with owner
// summaries, most recently liked first.
func (r *LikeRepository) GetLikedVideos(ctx context.Context, likedBy bson.ObjectID) ([]model.VideoWithOwner, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "likedBy", Value: likedBy},
			{Key: "video", Value: bson.D{{Key: "$exists", Value: true}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "videos"},
			{Key: "localField", Value: "video"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "video"},
		}}},
		bson.D{{Key: "$unwind", Value: "$video"}},
		bson.D{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: "$video"}}}},
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

	cursor, err := r.likes.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
		}
	}()

	var videos []model.VideoWithOwner
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	if videos == nil {
		videos = []model.VideoWithOwner{}
	}
	return videos, nil
}

func (r *LikeRepository) DeleteByVideo(ctx context.Context, videoID bson.ObjectID) error {
	_, err := r.likes.DeleteMany(ctx, bson.D{{Key: "video", Value: videoID}})
	return err
}
