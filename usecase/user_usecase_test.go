package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/infrastructure/utils"
	"videotube/usecase"
)

type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) Save(ctx context.Context, userID, token string, ttl time.Duration) error {
	args := m.Called(ctx, userID, token, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) Get(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockTokenStore) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func TestUserUsecase_Register_UserNameTaken(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("GetByUserName", mock.Anything, "gopher").
		Return(model.User{ID: bson.NewObjectID(), UserName: "gopher"}, nil).
		Once()

	userUsecase := usecase.NewUserUsecase(mockUserRepo, new(MockTokenStore))

	_, err := userUsecase.Register(context.Background(), model.ReqRegister{
		UserName: "gopher",
		Email:    "gopher@example.com",
		FullName: "Go Pher",
		Password: "correct-horse",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
	mockUserRepo.AssertExpectations(t)
}

func TestUserUsecase_Register_HashesPassword(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("GetByUserName", mock.Anything, "gopher").
		Return(model.User{}, model.ErrNotFound).
		Once()
	mockUserRepo.On("GetByEmail", mock.Anything, "gopher@example.com").
		Return(model.User{}, model.ErrNotFound).
		Once()
	mockUserRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(user model.User) bool {
		return user.Password != "correct-horse" && utils.CheckPassword(user.Password, "correct-horse")
	})).
		Return(model.User{ID: bson.NewObjectID(), UserName: "gopher"}, nil).
		Once()

	userUsecase := usecase.NewUserUsecase(mockUserRepo, new(MockTokenStore))

	user, err := userUsecase.Register(context.Background(), model.ReqRegister{
		UserName: "gopher",
		Email:    "gopher@example.com",
		FullName: "Go Pher",
		Password: "correct-horse",
	})

	require.NoError(t, err)
	assert.Equal(t, "gopher", user.UserName)
	mockUserRepo.AssertExpectations(t)
}

func TestUserUsecase_Login_WrongPassword(t *testing.T) {
	hashed, err := utils.HashPassword("the-real-password")
	require.NoError(t, err)

	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("GetByUserName", mock.Anything, "gopher").
		Return(model.User{ID: bson.NewObjectID(), UserName: "gopher", Password: hashed}, nil).
		Once()

	userUsecase := usecase.NewUserUsecase(mockUserRepo, new(MockTokenStore))

	_, err = userUsecase.Login(context.Background(), model.ReqLogin{UserName: "gopher", Password: "a-guess"})

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnauthorized)
	mockUserRepo.AssertExpectations(t)
}

func TestUserUsecase_Login_UnknownUser(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("GetByUserName", mock.Anything, "nobody").
		Return(model.User{}, model.ErrNotFound).
		Once()

	userUsecase := usecase.NewUserUsecase(mockUserRepo, new(MockTokenStore))

	_, err := userUsecase.Login(context.Background(), model.ReqLogin{UserName: "nobody", Password: "whatever"})

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnauthorized)
	mockUserRepo.AssertExpectations(t)
}

func TestUserUsecase_Login_IssuesTokenPair(t *testing.T) {
	hashed, err := utils.HashPassword("the-real-password")
	require.NoError(t, err)
	userID := bson.NewObjectID()

	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("GetByUserName", mock.Anything, "gopher").
		Return(model.User{ID: userID, UserName: "gopher", Password: hashed}, nil).
		Once()

	mockTokenStore := new(MockTokenStore)
	mockTokenStore.On("Save", mock.Anything, userID.Hex(), mock.AnythingOfType("string"), mock.AnythingOfType("time.Duration")).
		Return(nil).
		Once()

	userUsecase := usecase.NewUserUsecase(mockUserRepo, mockTokenStore)

	res, err := userUsecase.Login(context.Background(), model.ReqLogin{UserName: "gopher", Password: "the-real-password"})

	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
	mockUserRepo.AssertExpectations(t)
	mockTokenStore.AssertExpectations(t)
}

func TestUserUsecase_ChangePassword_WrongOldPassword(t *testing.T) {
	hashed, err := utils.HashPassword("the-real-password")
	require.NoError(t, err)
	userID := bson.NewObjectID()

	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("GetByID", mock.Anything, userID).
		Return(model.User{ID: userID, Password: hashed}, nil).
		Once()

	userUsecase := usecase.NewUserUsecase(mockUserRepo, new(MockTokenStore))

	err = userUsecase.ChangePassword(context.Background(), userID.Hex(), dto.ReqChangePassword{
		OldPassword: "a-guess",
		NewPassword: "something-new-123",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnauthorized)
	mockUserRepo.AssertExpectations(t)
}

func TestUserUsecase_UpdateAccount_NoFields(t *testing.T) {
	userUsecase := usecase.NewUserUsecase(new(MockUserRepository), new(MockTokenStore))

	_, err := userUsecase.UpdateAccount(context.Background(), bson.NewObjectID().Hex(), dto.ReqUpdateAccount{})

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}
