package usecase

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
)

type IDashboardUsecase interface {
	GetChannelStats(ctx context.Context, callerID string) (dto.ChannelStats, error)
	GetChannelVideos(ctx context.Context, callerID string) ([]model.Video, error)
}

type dashboardUsecase struct {
	dashboardRepo repository.IDashboard
}

func NewDashboardUsecase(dashboardRepo repository.IDashboard) IDashboardUsecase {
	return &dashboardUsecase{dashboardRepo: dashboardRepo}
}

func (u *dashboardUsecase) GetChannelStats(ctx context.Context, callerID string) (dto.ChannelStats, error) {
	id, err := bson.ObjectIDFromHex(callerID)
	if err != nil {
		return dto.ChannelStats{}, fmt.Errorf("%w: malformed user id", model.ErrInvalidArgument)
	}

	stats, err := u.dashboardRepo.GetChannelStats(ctx, id)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while computing channel stats")
		return dto.ChannelStats{}, model.ErrQueryExecutionFailed
	}
	return stats, nil
}

func (u *dashboardUsecase) GetChannelVideos(ctx context.Context, callerID string) ([]model.Video, error) {
	id, err := bson.ObjectIDFromHex(callerID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed user id", model.ErrInvalidArgument)
	}

	videos, err := u.dashboardRepo.GetChannelVideos(ctx, id)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while listing channel videos")
		return nil, model.ErrQueryExecutionFailed
	}
	return videos, nil
}
