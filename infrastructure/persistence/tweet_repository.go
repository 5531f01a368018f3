package persistence

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
)

type TweetRepository struct {
	tweets *mongo.Collection
}

func NewTweetRepository(db *mongo.Database) repository.ITweet {
	return &TweetRepository{tweets: db.Collection("tweets")}
}

func (r *TweetRepository) Insert(ctx context.Context, tweet model.Tweet) (model.Tweet, error) {
	now := time.Now().UTC()
	tweet.ID = bson.NewObjectID()
	tweet.CreatedAt = now
	tweet.UpdatedAt = now

	if _, err := r.tweets.InsertOne(ctx, tweet); err != nil {
		return model.Tweet{}, err
	}
	return tweet, nil
}

func (r *TweetRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.Tweet, error) {
	var tweet model.Tweet
	err := r.tweets.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&tweet)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Tweet{}, model.ErrNotFound
	}
	if err != nil {
		return model.Tweet{}, err
	}
	return tweet, nil
}

func (r *TweetRepository) GetByOwner(ctx context.Context, ownerID bson.ObjectID) ([]model.Tweet, error) {
	cursor, err := r.tweets.Find(
		ctx,
		bson.D{{Key: "owner", Value: ownerID}},
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

	var tweets []model.Tweet
	if err := cursor.All(ctx, &tweets); err != nil {
		return nil, err
	}
	if tweets == nil {
		tweets = []model.Tweet{}
	}
	return tweets, nil
}

func (r *TweetRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (model.Tweet, error) {
	res := r.tweets.FindOneAndUpdate(
		ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "content", Value: content},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var tweet model.Tweet
	err := res.Decode(&tweet)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Tweet{}, model.ErrNotFound
	}
	if err != nil {
		return model.Tweet{}, err
	}
	return tweet, nil
}

func (r *TweetRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.tweets.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}
