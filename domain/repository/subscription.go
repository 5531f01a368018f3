package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"videotube/domain/model"
)

type ISubscription interface {
	// Toggle subscribes when no subscription exists and unsubscribes otherwise.
	// It reports whether the subscriber follows the channel after the call.
	Toggle(ctx context.Context, subscriberID, channelID bson.ObjectID) (bool, error)
	GetChannelSubscribers(ctx context.Context, channelID bson.ObjectID) ([]model.UserSummary, error)
	GetSubscribedChannels(ctx context.Context, subscriberID bson.ObjectID) ([]model.UserSummary, error)
	CountSubscribers(ctx context.Context, channelID bson.ObjectID) (int64, error)
}
