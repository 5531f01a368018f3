package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/usecase"
)

// Mock implementations

type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) List(ctx context.Context, req dto.ListVideosRequest, owner *bson.ObjectID) ([]model.VideoWithOwner, int64, error) {
	args := m.Called(ctx, req, owner)
	var videos []model.VideoWithOwner
	if args.Get(0) != nil {
		videos = args.Get(0).([]model.VideoWithOwner)
	}
	return videos, args.Get(1).(int64), args.Error(2)
}

func (m *MockVideoRepository) Insert(ctx context.Context, video model.Video) (model.Video, error) {
	args := m.Called(ctx, video)
	return args.Get(0).(model.Video), args.Error(1)
}

func (m *MockVideoRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.Video, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Video), args.Error(1)
}

func (m *MockVideoRepository) GetByIDWithOwner(ctx context.Context, id bson.ObjectID) (model.VideoWithOwner, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.VideoWithOwner), args.Error(1)
}

func (m *MockVideoRepository) Update(ctx context.Context, id bson.ObjectID, updates bson.M) (model.Video, error) {
	args := m.Called(ctx, id, updates)
	return args.Get(0).(model.Video), args.Error(1)
}

func (m *MockVideoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVideoRepository) IncrementViews(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) GetByUserName(ctx context.Context, userName string) (model.User, error) {
	args := m.Called(ctx, userName)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, id bson.ObjectID, updates bson.M) (model.User, error) {
	args := m.Called(ctx, id, updates)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id bson.ObjectID, hashed string) error {
	args := m.Called(ctx, id, hashed)
	return args.Error(0)
}

func (m *MockUserRepository) AddToWatchHistory(ctx context.Context, userID, videoID bson.ObjectID) error {
	args := m.Called(ctx, userID, videoID)
	return args.Error(0)
}

func (m *MockUserRepository) GetWatchHistory(ctx context.Context, userID bson.ObjectID, page, limit int) ([]model.VideoWithOwner, error) {
	args := m.Called(ctx, userID, page, limit)
	var videos []model.VideoWithOwner
	if args.Get(0) != nil {
		videos = args.Get(0).([]model.VideoWithOwner)
	}
	return videos, args.Error(1)
}

func (m *MockUserRepository) GetChannelProfile(ctx context.Context, userName string, viewerID bson.ObjectID) (model.ChannelProfile, error) {
	args := m.Called(ctx, userName, viewerID)
	return args.Get(0).(model.ChannelProfile), args.Error(1)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) ListByVideo(ctx context.Context, videoID bson.ObjectID, page, limit int) ([]model.CommentWithOwner, int64, error) {
	args := m.Called(ctx, videoID, page, limit)
	var comments []model.CommentWithOwner
	if args.Get(0) != nil {
		comments = args.Get(0).([]model.CommentWithOwner)
	}
	return comments, args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentRepository) Insert(ctx context.Context, comment model.Comment) (model.Comment, error) {
	args := m.Called(ctx, comment)
	return args.Get(0).(model.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.Comment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Comment), args.Error(1)
}

func (m *MockCommentRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (model.Comment, error) {
	args := m.Called(ctx, id, content)
	return args.Get(0).(model.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommentRepository) DeleteByVideo(ctx context.Context, videoID bson.ObjectID) error {
	args := m.Called(ctx, videoID)
	return args.Error(0)
}

type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Toggle(ctx context.Context, target repository.LikeTarget, targetID, likedBy bson.ObjectID) (bool, error) {
	args := m.Called(ctx, target, targetID, likedBy)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) CountByTarget(ctx context.Context, target repository.LikeTarget, targetID bson.ObjectID) (int64, error) {
	args := m.Called(ctx, target, targetID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeRepository) GetLikedVideos(ctx context.Context, likedBy bson.ObjectID) ([]model.VideoWithOwner, error) {
	args := m.Called(ctx, likedBy)
	var videos []model.VideoWithOwner
	if args.Get(0) != nil {
		videos = args.Get(0).([]model.VideoWithOwner)
	}
	return videos, args.Error(1)
}

func (m *MockLikeRepository) DeleteByVideo(ctx context.Context, videoID bson.ObjectID) error {
	args := m.Called(ctx, videoID)
	return args.Error(0)
}

func newVideoUsecase(videoRepo *MockVideoRepository, userRepo *MockUserRepository) usecase.IVideoUsecase {
	return usecase.NewVideoUsecase(videoRepo, userRepo, new(MockCommentRepository), new(MockLikeRepository), nil)
}

func TestVideoUsecase_ListVideos_InvalidSortBy(t *testing.T) {
	videoUsecase := newVideoUsecase(new(MockVideoRepository), new(MockUserRepository))

	req := dto.NewListVideosRequest()
	req.SortBy = "upwards"

	_, err := videoUsecase.ListVideos(context.Background(), req)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestVideoUsecase_ListVideos_InvalidSortType(t *testing.T) {
	videoUsecase := newVideoUsecase(new(MockVideoRepository), new(MockUserRepository))

	req := dto.NewListVideosRequest()
	req.SortType = "likes"

	_, err := videoUsecase.ListVideos(context.Background(), req)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestVideoUsecase_ListVideos_MalformedOwnerID(t *testing.T) {
	videoUsecase := newVideoUsecase(new(MockVideoRepository), new(MockUserRepository))

	req := dto.NewListVideosRequest()
	req.UserID = "not-a-hex-id"

	_, err := videoUsecase.ListVideos(context.Background(), req)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestVideoUsecase_ListVideos_UnknownOwner(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	owner := bson.NewObjectID()
	mockUserRepo.On("GetByID", mock.Anything, owner).
		Return(model.User{}, model.ErrNotFound).
		Once()

	videoUsecase := newVideoUsecase(new(MockVideoRepository), mockUserRepo)

	req := dto.NewListVideosRequest()
	req.UserID = owner.Hex()

	_, err := videoUsecase.ListVideos(context.Background(), req)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
	mockUserRepo.AssertExpectations(t)
}

func TestVideoUsecase_ListVideos_OwnerLookupFailure(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	owner := bson.NewObjectID()
	mockUserRepo.On("GetByID", mock.Anything, owner).
		Return(model.User{}, assert.AnError).
		Once()

	videoUsecase := newVideoUsecase(new(MockVideoRepository), mockUserRepo)

	req := dto.NewListVideosRequest()
	req.UserID = owner.Hex()

	_, err := videoUsecase.ListVideos(context.Background(), req)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrQueryExecutionFailed)
	mockUserRepo.AssertExpectations(t)
}

func TestVideoUsecase_ListVideos_QueryExecutionFailure(t *testing.T) {
	mockVideoRepo := new(MockVideoRepository)
	mockVideoRepo.On("List", mock.Anything, mock.Anything, (*bson.ObjectID)(nil)).
		Return(nil, int64(0), assert.AnError).
		Once()

	videoUsecase := newVideoUsecase(mockVideoRepo, new(MockUserRepository))

	_, err := videoUsecase.ListVideos(context.Background(), dto.NewListVideosRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrQueryExecutionFailed)
	mockVideoRepo.AssertExpectations(t)
}

func TestVideoUsecase_ListVideos_EmptyResultIsSuccess(t *testing.T) {
	mockVideoRepo := new(MockVideoRepository)
	mockVideoRepo.On("List", mock.Anything, mock.Anything, (*bson.ObjectID)(nil)).
		Return([]model.VideoWithOwner{}, int64(0), nil).
		Once()

	videoUsecase := newVideoUsecase(mockVideoRepo, new(MockUserRepository))

	res, err := videoUsecase.ListVideos(context.Background(), dto.NewListVideosRequest())

	require.NoError(t, err)
	assert.Empty(t, res.Videos)
	assert.Equal(t, int64(0), res.Pagination.TotalVideos)
	assert.Equal(t, int64(0), res.Pagination.TotalPages)
	assert.False(t, res.Pagination.HasPrevPage)
	assert.False(t, res.Pagination.HasNextPage)
	mockVideoRepo.AssertExpectations(t)
}

func TestVideoUsecase_ListVideos_NormalizesPageAndLimit(t *testing.T) {
	mockVideoRepo := new(MockVideoRepository)
	mockVideoRepo.On("List", mock.Anything, mock.MatchedBy(func(req dto.ListVideosRequest) bool {
		return req.Page == 1 && req.Limit == 10
	}), (*bson.ObjectID)(nil)).
		Return([]model.VideoWithOwner{}, int64(0), nil).
		Once()

	videoUsecase := newVideoUsecase(mockVideoRepo, new(MockUserRepository))

	req := dto.NewListVideosRequest()
	req.Page = -3
	req.Limit = 0

	_, err := videoUsecase.ListVideos(context.Background(), req)

	require.NoError(t, err)
	mockVideoRepo.AssertExpectations(t)
}

func TestVideoUsecase_ListVideos_PaginationMath(t *testing.T) {
	mockVideoRepo := new(MockVideoRepository)
	videos := []model.VideoWithOwner{{ID: bson.NewObjectID(), Title: "A"}}
	mockVideoRepo.On("List", mock.Anything, mock.Anything, (*bson.ObjectID)(nil)).
		Return(videos, int64(35), nil).
		Once()

	videoUsecase := newVideoUsecase(mockVideoRepo, new(MockUserRepository))

	req := dto.NewListVideosRequest()
	req.Page = 2

	res, err := videoUsecase.ListVideos(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, videos, res.Videos)
	assert.Equal(t, int64(35), res.Pagination.TotalVideos)
	assert.Equal(t, int64(4), res.Pagination.TotalPages)
	assert.True(t, res.Pagination.HasPrevPage)
	assert.True(t, res.Pagination.HasNextPage)
	mockVideoRepo.AssertExpectations(t)
}

func TestVideoUsecase_ListVideos_OwnerFilterPassedThrough(t *testing.T) {
	owner := bson.NewObjectID()

	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("GetByID", mock.Anything, owner).
		Return(model.User{ID: owner}, nil).
		Once()

	mockVideoRepo := new(MockVideoRepository)
	mockVideoRepo.On("List", mock.Anything, mock.Anything, &owner).
		Return([]model.VideoWithOwner{}, int64(0), nil).
		Once()

	videoUsecase := newVideoUsecase(mockVideoRepo, mockUserRepo)

	req := dto.NewListVideosRequest()
	req.UserID = owner.Hex()

	_, err := videoUsecase.ListVideos(context.Background(), req)

	require.NoError(t, err)
	mockUserRepo.AssertExpectations(t)
	mockVideoRepo.AssertExpectations(t)
}

func TestVideoUsecase_GetVideoByID_IncrementsViewsBeforeFetch(t *testing.T) {
	videoID := bson.NewObjectID()
	viewerID := bson.NewObjectID()

	mockVideoRepo := new(MockVideoRepository)
	mockVideoRepo.On("IncrementViews", mock.Anything, videoID).
		Return(nil).
		Once()
	mockVideoRepo.On("GetByIDWithOwner", mock.Anything, videoID).
		Return(model.VideoWithOwner{ID: videoID, Views: 8}, nil).
		Once()

	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("AddToWatchHistory", mock.Anything, viewerID, videoID).
		Return(nil).
		Once()

	videoUsecase := newVideoUsecase(mockVideoRepo, mockUserRepo)

	video, err := videoUsecase.GetVideoByID(context.Background(), videoID.Hex(), viewerID.Hex())

	require.NoError(t, err)
	assert.Equal(t, videoID, video.ID)
	mockVideoRepo.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}

func TestVideoUsecase_UpdateVideo_ForbiddenForNonOwner(t *testing.T) {
	videoID := bson.NewObjectID()
	owner := bson.NewObjectID()
	intruder := bson.NewObjectID()

	mockVideoRepo := new(MockVideoRepository)
	mockVideoRepo.On("GetByID", mock.Anything, videoID).
		Return(model.Video{ID: videoID, Owner: owner}, nil).
		Once()

	videoUsecase := newVideoUsecase(mockVideoRepo, new(MockUserRepository))

	title := "new title"
	_, err := videoUsecase.UpdateVideo(context.Background(), videoID.Hex(), intruder.Hex(), dto.UpdateVideoRequest{Title: &title})

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrForbidden)
	mockVideoRepo.AssertExpectations(t)
}

func TestVideoUsecase_UpdateVideo_NoFields(t *testing.T) {
	videoID := bson.NewObjectID()
	owner := bson.NewObjectID()

	mockVideoRepo := new(MockVideoRepository)
	mockVideoRepo.On("GetByID", mock.Anything, videoID).
		Return(model.Video{ID: videoID, Owner: owner}, nil).
		Once()

	videoUsecase := newVideoUsecase(mockVideoRepo, new(MockUserRepository))

	_, err := videoUsecase.UpdateVideo(context.Background(), videoID.Hex(), owner.Hex(), dto.UpdateVideoRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestVideoUsecase_DeleteVideo_CascadesCommentsAndLikes(t *testing.T) {
	videoID := bson.NewObjectID()
	owner := bson.NewObjectID()

	mockVideoRepo := new(MockVideoRepository)
	mockVideoRepo.On("GetByID", mock.Anything, videoID).
		Return(model.Video{ID: videoID, Owner: owner}, nil).
		Twice()
	mockVideoRepo.On("Delete", mock.Anything, videoID).
		Return(nil).
		Once()

	mockCommentRepo := new(MockCommentRepository)
	mockCommentRepo.On("DeleteByVideo", mock.Anything, videoID).
		Return(nil).
		Once()

	mockLikeRepo := new(MockLikeRepository)
	mockLikeRepo.On("DeleteByVideo", mock.Anything, videoID).
		Return(nil).
		Once()

	videoUsecase := usecase.NewVideoUsecase(mockVideoRepo, new(MockUserRepository), mockCommentRepo, mockLikeRepo, nil)

	err := videoUsecase.DeleteVideo(context.Background(), videoID.Hex(), owner.Hex())

	require.NoError(t, err)
	mockVideoRepo.AssertExpectations(t)
	mockCommentRepo.AssertExpectations(t)
	mockLikeRepo.AssertExpectations(t)
}
