package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"videotube/domain/dto"
	"videotube/domain/model"
)

type IDashboard interface {
	GetChannelStats(ctx context.Context, channelID bson.ObjectID) (dto.ChannelStats, error)
	GetChannelVideos(ctx context.Context, channelID bson.ObjectID) ([]model.Video, error)
}
