package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"videotube/domain/model"
	"videotube/domain/repository"
)

type ToggleSubscriptionResult struct {
	Subscribed       bool  `json:"subscribed"`
	TotalSubscribers int64 `json:"totalSubscribers"`
}

type ISubscriptionUsecase interface {
	ToggleSubscription(ctx context.Context, channelID, callerID string) (ToggleSubscriptionResult, error)
	GetChannelSubscribers(ctx context.Context, channelID string) ([]model.UserSummary, error)
	GetSubscribedChannels(ctx context.Context, subscriberID string) ([]model.UserSummary, error)
}

type subscriptionUsecase struct {
	subscriptionRepo repository.ISubscription
	userRepo         repository.IUser
}

func NewSubscriptionUsecase(subscriptionRepo repository.ISubscription, userRepo repository.IUser) ISubscriptionUsecase {
	return &subscriptionUsecase{subscriptionRepo: subscriptionRepo, userRepo: userRepo}
}

func (u *subscriptionUsecase) ToggleSubscription(ctx context.Context, channelID, callerID string) (ToggleSubscriptionResult, error) {
	channel, err := bson.ObjectIDFromHex(channelID)
	if err != nil {
		return ToggleSubscriptionResult{}, fmt.Errorf("%w: malformed channel id", model.ErrInvalidArgument)
	}
	caller, err := bson.ObjectIDFromHex(callerID)
	if err != nil {
		return ToggleSubscriptionResult{}, fmt.Errorf("%w: malformed user id", model.ErrInvalidArgument)
	}
	if channel == caller {
		return ToggleSubscriptionResult{}, fmt.Errorf("%w: cannot subscribe to your own channel", model.ErrInvalidArgument)
	}

	if _, err := u.userRepo.GetByID(ctx, channel); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return ToggleSubscriptionResult{}, fmt.Errorf("%w: no channel with id %q", model.ErrInvalidArgument, channelID)
		}
		return ToggleSubscriptionResult{}, err
	}

	subscribed, err := u.subscriptionRepo.Toggle(ctx, caller, channel)
	if err != nil {
		return ToggleSubscriptionResult{}, err
	}
	total, err := u.subscriptionRepo.CountSubscribers(ctx, channel)
	if err != nil {
		return ToggleSubscriptionResult{}, err
	}
	return ToggleSubscriptionResult{Subscribed: subscribed, TotalSubscribers: total}, nil
}

func (u *subscriptionUsecase) GetChannelSubscribers(ctx context.Context, channelID string) ([]model.UserSummary, error) {
	channel, err := bson.ObjectIDFromHex(channelID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed channel id", model.ErrInvalidArgument)
	}
	return u.subscriptionRepo.GetChannelSubscribers(ctx, channel)
}

func (u *subscriptionUsecase) GetSubscribedChannels(ctx context.Context, subscriberID string) ([]model.UserSummary, error) {
	subscriber, err := bson.ObjectIDFromHex(subscriberID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed user id", model.ErrInvalidArgument)
	}
	return u.subscriptionRepo.GetSubscribedChannels(ctx, subscriber)
}
