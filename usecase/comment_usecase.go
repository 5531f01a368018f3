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

type ICommentUsecase interface {
	ListComments(ctx context.Context, videoID string, page, limit int) (dto.ListCommentsResponse, error)
	AddComment(ctx context.Context, videoID, callerID, content string) (model.Comment, error)
	UpdateComment(ctx context.Context, commentID, callerID, content string) (model.Comment, error)
	DeleteComment(ctx context.Context, commentID, callerID string) error
}

type commentUsecase struct {
	commentRepo repository.IComment
	videoRepo   repository.IVideo
}

func NewCommentUsecase(commentRepo repository.IComment, videoRepo repository.IVideo) ICommentUsecase {
	return &commentUsecase{commentRepo: commentRepo, videoRepo: videoRepo}
}

func (u *commentUsecase) ListComments(ctx context.Context, videoID string, page, limit int) (dto.ListCommentsResponse, error) {
	id, err := bson.ObjectIDFromHex(videoID)
	if err != nil {
		return dto.ListCommentsResponse{}, fmt.Errorf("%w: malformed video id", model.ErrInvalidArgument)
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	comments, total, err := u.commentRepo.ListByVideo(ctx, id, page, limit)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while listing comments")
		return dto.ListCommentsResponse{}, model.ErrQueryExecutionFailed
	}

	return dto.ListCommentsResponse{
		Comments:   comments,
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

func (u *commentUsecase) AddComment(ctx context.Context, videoID, callerID, content string) (model.Comment, error) {
	id, err := bson.ObjectIDFromHex(videoID)
	if err != nil {
		return model.Comment{}, fmt.Errorf("%w: malformed video id", model.ErrInvalidArgument)
	}
	caller, err := bson.ObjectIDFromHex(callerID)
	if err != nil {
		return model.Comment{}, fmt.Errorf("%w: malformed user id", model.ErrInvalidArgument)
	}

	// The video must exist; commenting on a deleted video is a client error.
	if _, err := u.videoRepo.GetByID(ctx, id); err != nil {
		return model.Comment{}, err
	}

	return u.commentRepo.Insert(ctx, model.Comment{
		Content: content,
		Video:   id,
		Owner:   caller,
	})
}

func (u *commentUsecase) UpdateComment(ctx context.Context, commentID, callerID, content string) (model.Comment, error) {
	id, err := u.ownedComment(ctx, commentID, callerID)
	if err != nil {
		return model.Comment{}, err
	}
	return u.commentRepo.UpdateContent(ctx, id, content)
}

func (u *commentUsecase) DeleteComment(ctx context.Context, commentID, callerID string) error {
	id, err := u.ownedComment(ctx, commentID, callerID)
	if err != nil {
		return err
	}
	return u.commentRepo.Delete(ctx, id)
}

func (u *commentUsecase) ownedComment(ctx context.Context, commentID, callerID string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(commentID)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("%w: malformed comment id", model.ErrInvalidArgument)
	}
	caller, err := bson.ObjectIDFromHex(callerID)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("%w: malformed user id", model.ErrInvalidArgument)
	}

	comment, err := u.commentRepo.GetByID(ctx, id)
	if err != nil {
		return bson.ObjectID{}, err
	}
	if comment.Owner != caller {
		return bson.ObjectID{}, fmt.Errorf("%w: only the author can modify a comment", model.ErrForbidden)
	}
	return id, nil
}
