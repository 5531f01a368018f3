package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"videotube/domain/model"
	"videotube/usecase"
)

func TestCommentUsecase_ListComments_Pagination(t *testing.T) {
	videoID := bson.NewObjectID()

	mockCommentRepo := new(MockCommentRepository)
	mockCommentRepo.On("ListByVideo", mock.Anything, videoID, 2, 10).
		Return([]model.CommentWithOwner{}, int64(25), nil).
		Once()

	commentUsecase := usecase.NewCommentUsecase(mockCommentRepo, new(MockVideoRepository))

	res, err := commentUsecase.ListComments(context.Background(), videoID.Hex(), 2, 10)

	require.NoError(t, err)
	assert.Equal(t, int64(25), res.Pagination.TotalVideos)
	assert.Equal(t, int64(3), res.Pagination.TotalPages)
	assert.True(t, res.Pagination.HasPrevPage)
	assert.True(t, res.Pagination.HasNextPage)
	mockCommentRepo.AssertExpectations(t)
}

func TestCommentUsecase_AddComment_VideoMustExist(t *testing.T) {
	videoID := bson.NewObjectID()
	caller := bson.NewObjectID()

	mockVideoRepo := new(MockVideoRepository)
	mockVideoRepo.On("GetByID", mock.Anything, videoID).
		Return(model.Video{}, model.ErrNotFound).
		Once()

	commentUsecase := usecase.NewCommentUsecase(new(MockCommentRepository), mockVideoRepo)

	_, err := commentUsecase.AddComment(context.Background(), videoID.Hex(), caller.Hex(), "nice video")

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrNotFound)
	mockVideoRepo.AssertExpectations(t)
}

func TestCommentUsecase_UpdateComment_ForbiddenForNonAuthor(t *testing.T) {
	commentID := bson.NewObjectID()
	author := bson.NewObjectID()
	intruder := bson.NewObjectID()

	mockCommentRepo := new(MockCommentRepository)
	mockCommentRepo.On("GetByID", mock.Anything, commentID).
		Return(model.Comment{ID: commentID, Owner: author}, nil).
		Once()

	commentUsecase := usecase.NewCommentUsecase(mockCommentRepo, new(MockVideoRepository))

	_, err := commentUsecase.UpdateComment(context.Background(), commentID.Hex(), intruder.Hex(), "edited")

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrForbidden)
	mockCommentRepo.AssertExpectations(t)
}

func TestCommentUsecase_DeleteComment_ByAuthor(t *testing.T) {
	commentID := bson.NewObjectID()
	author := bson.NewObjectID()

	mockCommentRepo := new(MockCommentRepository)
	mockCommentRepo.On("GetByID", mock.Anything, commentID).
		Return(model.Comment{ID: commentID, Owner: author}, nil).
		Once()
	mockCommentRepo.On("Delete", mock.Anything, commentID).
		Return(nil).
		Once()

	commentUsecase := usecase.NewCommentUsecase(mockCommentRepo, new(MockVideoRepository))

	err := commentUsecase.DeleteComment(context.Background(), commentID.Hex(), author.Hex())

	require.NoError(t, err)
	mockCommentRepo.AssertExpectations(t)
}
