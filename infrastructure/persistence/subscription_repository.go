package persistence

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
)

type SubscriptionRepository struct {
	subscriptions *mongo.Collection
}

func NewSubscriptionRepository(db *mongo.Database) repository.ISubscription {
	return &SubscriptionRepository{subscriptions: db.Collection("subscriptions")}
}

// Toggle unsubscribes when a subscription exists, otherwise subscribes, and
// reports the state after the call.
func (r *SubscriptionRepository) Toggle(ctx context.Context, subscriberID, channelID bson.ObjectID) (bool, error) {
	filter := bson.D{
		{Key: "subscriber", Value: subscriberID},
		{Key: "channel", Value: channelID},
	}

	res, err := r.subscriptions.DeleteOne(ctx, filter)
	if err != nil {
		return false, err
	}
	if res.DeletedCount > 0 {
		return false, nil
	}

	sub := model.Subscription{
		ID:         bson.NewObjectID(),
		Subscriber: subscriberID,
		Channel:    channelID,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := r.subscriptions.InsertOne(ctx, sub); err != nil {
		return false, err
	}
	return true, nil
}

func (r *SubscriptionRepository) GetChannelSubscribers(ctx context.Context, channelID bson.ObjectID) ([]model.UserSummary, error) {
	return r.resolveUsers(ctx, bson.D{{Key: "channel", Value: channelID}}, "subscriber")
}

func (r *SubscriptionRepository) GetSubscribedChannels(ctx context.Context, subscriberID bson.ObjectID) ([]model.UserSummary, error) {
	return r.resolveUsers(ctx, bson.D{{Key: "subscriber", Value: subscriberID}}, "channel")
}

// resolveUsers joins the given side of the subscription edge to user
// summaries.
func (r *SubscriptionRepository) resolveUsers(ctx context.Context, match bson.D, localField string) ([]model.UserSummary, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "users"},
			{Key: "localField", Value: localField},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "user"},
			{Key: "pipeline", Value: mongo.Pipeline{
				bson.D{{Key: "$project", Value: bson.D{
					{Key: "username", Value: 1},
					{Key: "fullName", Value: 1},
					{Key: "avatar", Value: 1},
				}}},
			}},
		}}},
		bson.D{{Key: "$unwind", Value: "$user"}},
		bson.D{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: "$user"}}}},
	}

	cursor, err := r.subscriptions.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
		}
	}()

	var users []model.UserSummary
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []model.UserSummary{}
	}
	return users, nil
}

func (r *SubscriptionRepository) CountSubscribers(ctx context.Context, channelID bson.ObjectID) (int64, error) {
	return r.subscriptions.CountDocuments(ctx, bson.D{{Key: "channel", Value: channelID}})
}
