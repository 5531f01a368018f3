package usecase

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"videotube/domain/model"
	"videotube/domain/repository"
)

type ITweetUsecase interface {
	CreateTweet(ctx context.Context, callerID, content string) (model.Tweet, error)
	GetUserTweets(ctx context.Context, userID string) ([]model.Tweet, error)
	UpdateTweet(ctx context.Context, tweetID, callerID, content string) (model.Tweet, error)
	DeleteTweet(ctx context.Context, tweetID, callerID string) error
}

type tweetUsecase struct {
	tweetRepo repository.ITweet
}

func NewTweetUsecase(tweetRepo repository.ITweet) ITweetUsecase {
	return &tweetUsecase{tweetRepo: tweetRepo}
}

func (u *tweetUsecase) CreateTweet(ctx context.Context, callerID, content string) (model.Tweet, error) {
	caller, err := bson.ObjectIDFromHex(callerID)
	if err != nil {
		return model.Tweet{}, fmt.Errorf("%w: malformed user id", model.ErrInvalidArgument)
	}
	return u.tweetRepo.Insert(ctx, model.Tweet{Content: content, Owner: caller})
}

func (u *tweetUsecase) GetUserTweets(ctx context.Context, userID string) ([]model.Tweet, error) {
	id, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed user id", model.ErrInvalidArgument)
	}
	return u.tweetRepo.GetByOwner(ctx, id)
}

func (u *tweetUsecase) UpdateTweet(ctx context.Context, tweetID, callerID, content string) (model.Tweet, error) {
	id, err := u.ownedTweet(ctx, tweetID, callerID)
	if err != nil {
		return model.Tweet{}, err
	}
	return u.tweetRepo.UpdateContent(ctx, id, content)
}

func (u *tweetUsecase) DeleteTweet(ctx context.Context, tweetID, callerID string) error {
	id, err := u.ownedTweet(ctx, tweetID, callerID)
	if err != nil {
		return err
	}
	return u.tweetRepo.Delete(ctx, id)
}

func (u *tweetUsecase) ownedTweet(ctx context.Context, tweetID, callerID string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(tweetID)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("%w: malformed tweet id", model.ErrInvalidArgument)
	}
	caller, err := bson.ObjectIDFromHex(callerID)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("%w: malformed user id", model.ErrInvalidArgument)
	}

	tweet, err := u.tweetRepo.GetByID(ctx, id)
	if err != nil {
		return bson.ObjectID{}, err
	}
	if tweet.Owner != caller {
		return bson.ObjectID{}, fmt.Errorf("%w: only the author can modify a tweet", model.ErrForbidden)
	}
	return id, nil
}
