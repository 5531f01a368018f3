package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"go.mongodb.org/mongo-driver/v2/bson"
	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/cache"
	"videotube/infrastructure/configuration"
	"videotube/infrastructure/logger"
	"videotube/infrastructure/utils"
)

type IUserUsecase interface {
	Register(ctx context.Context, req model.ReqRegister) (model.User, error)
	Login(ctx context.Context, req model.ReqLogin) (dto.ResLogin, error)
	RefreshToken(ctx context.Context, refreshToken string) (dto.ResLogin, error)
	Logout(ctx context.Context, userID string) error
	CurrentUser(ctx context.Context, userID string) (model.User, error)
	ChangePassword(ctx context.Context, userID string, req dto.ReqChangePassword) error
	UpdateAccount(ctx context.Context, userID string, req dto.ReqUpdateAccount) (model.User, error)
	GetChannelProfile(ctx context.Context, userName, viewerID string) (model.ChannelProfile, error)
	GetWatchHistory(ctx context.Context, userID string, page, limit int) ([]model.VideoWithOwner, error)
}

type userUsecase struct {
	userRepo   repository.IUser
	tokenStore cache.ITokenStore
}

func NewUserUsecase(userRepo repository.IUser, tokenStore cache.ITokenStore) IUserUsecase {
	return &userUsecase{userRepo: userRepo, tokenStore: tokenStore}
}

func (u *userUsecase) Register(ctx context.Context, req model.ReqRegister) (model.User, error) {
	if _, err := u.userRepo.GetByUserName(ctx, req.UserName); err == nil {
		return model.User{}, fmt.Errorf("%w: username %q already taken", model.ErrInvalidArgument, req.UserName)
	} else if !errors.Is(err, model.ErrNotFound) {
		logger.GetLogger().WithField("error", err).Error("Error while checking username")
		return model.User{}, model.ErrQueryExecutionFailed
	}
	if _, err := u.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return model.User{}, fmt.Errorf("%w: email %q already registered", model.ErrInvalidArgument, req.Email)
	} else if !errors.Is(err, model.ErrNotFound) {
		logger.GetLogger().WithField("error", err).Error("Error while checking email")
		return model.User{}, model.ErrQueryExecutionFailed
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return model.User{}, err
	}

	user, err := u.userRepo.CreateUser(ctx, model.User{
		UserName:   req.UserName,
		Email:      req.Email,
		FullName:   req.FullName,
		Avatar:     req.Avatar,
		CoverImage: req.CoverImage,
		Password:   hashed,
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while creating user")
		return model.User{}, model.ErrQueryExecutionFailed
	}
	return user, nil
}

func (u *userUsecase) Login(ctx context.Context, req model.ReqLogin) (dto.ResLogin, error) {
	user, err := u.userRepo.GetByUserName(ctx, req.UserName)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return dto.ResLogin{}, fmt.Errorf("%w: unknown user or wrong password", model.ErrUnauthorized)
		}
		logger.GetLogger().WithField("error", err).Error("Error while fetching user")
		return dto.ResLogin{}, model.ErrQueryExecutionFailed
	}
	if !utils.CheckPassword(user.Password, req.Password) {
		return dto.ResLogin{}, fmt.Errorf("%w: unknown user or wrong password", model.ErrUnauthorized)
	}

	return u.issueTokens(ctx, user)
}

// RefreshToken rotates the token pair. The presented token must match the one
// stored for the user; anything else is treated as a revoked session.
func (u *userUsecase) RefreshToken(ctx context.Context, refreshToken string) (dto.ResLogin, error) {
	var claims model.UserClaims
	token, err := jwt.ParseWithClaims(refreshToken, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(configuration.C.App.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return dto.ResLogin{}, fmt.Errorf("%w: invalid refresh token", model.ErrUnauthorized)
	}

	stored, err := u.tokenStore.Get(ctx, claims.Issuer)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while reading refresh token")
		return dto.ResLogin{}, model.ErrQueryExecutionFailed
	}
	if stored == "" || stored != refreshToken {
		return dto.ResLogin{}, fmt.Errorf("%w: refresh token revoked", model.ErrUnauthorized)
	}

	id, err := bson.ObjectIDFromHex(claims.Issuer)
	if err != nil {
		return dto.ResLogin{}, fmt.Errorf("%w: invalid refresh token", model.ErrUnauthorized)
	}
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return dto.ResLogin{}, fmt.Errorf("%w: user no longer exists", model.ErrUnauthorized)
		}
		return dto.ResLogin{}, model.ErrQueryExecutionFailed
	}

	return u.issueTokens(ctx, user)
}

func (u *userUsecase) issueTokens(ctx context.Context, user model.User) (dto.ResLogin, error) {
	app := configuration.C.App
	now := utils.GetCurrentTime()

	accessToken, err := utils.GenerateToken(map[string]interface{}{
		"userName": user.UserName,
		"iss":      user.ID.Hex(),
		"iat":      now.Unix(),
		"exp":      now.Add(time.Duration(app.AccessTokenTTL) * time.Minute).Unix(),
	}, app.SecretKey)
	if err != nil {
		return dto.ResLogin{}, err
	}

	refreshTTL := time.Duration(app.RefreshTokenTTL) * time.Minute
	refreshToken, err := utils.GenerateToken(map[string]interface{}{
		"userName": user.UserName,
		"iss":      user.ID.Hex(),
		"iat":      now.Unix(),
		"exp":      now.Add(refreshTTL).Unix(),
	}, app.SecretKey)
	if err != nil {
		return dto.ResLogin{}, err
	}

	if err := u.tokenStore.Save(ctx, user.ID.Hex(), refreshToken, refreshTTL); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Error while storing refresh token")
	}

	return dto.ResLogin{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

func (u *userUsecase) Logout(ctx context.Context, userID string) error {
	return u.tokenStore.Delete(ctx, userID)
}

func (u *userUsecase) CurrentUser(ctx context.Context, userID string) (model.User, error) {
	id, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return model.User{}, fmt.Errorf("%w: malformed user id", model.ErrInvalidArgument)
	}
	return u.userRepo.GetByID(ctx, id)
}

func (u *userUsecase) ChangePassword(ctx context.Context, userID string, req dto.ReqChangePassword) error {
	id, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return fmt.Errorf("%w: malformed user id", model.ErrInvalidArgument)
	}

	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !utils.CheckPassword(user.Password, req.OldPassword) {
		return fmt.Errorf("%w: old password does not match", model.ErrUnauthorized)
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return u.userRepo.UpdatePassword(ctx, id, hashed)
}

func (u *userUsecase) UpdateAccount(ctx context.Context, userID string, req dto.ReqUpdateAccount) (model.User, error) {
	id, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return model.User{}, fmt.Errorf("%w: malformed user id", model.ErrInvalidArgument)
	}

	updates := bson.M{}
	if req.FullName != nil {
		updates["fullName"] = *req.FullName
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}
	if req.CoverImage != nil {
		updates["coverImage"] = *req.CoverImage
	}
	if len(updates) == 0 {
		return model.User{}, fmt.Errorf("%w: no fields to update", model.ErrInvalidArgument)
	}

	return u.userRepo.UpdateUser(ctx, id, updates)
}

func (u *userUsecase) GetChannelProfile(ctx context.Context, userName, viewerID string) (model.ChannelProfile, error) {
	if userName == "" {
		return model.ChannelProfile{}, fmt.Errorf("%w: username required", model.ErrInvalidArgument)
	}
	viewer, _ := bson.ObjectIDFromHex(viewerID)
	return u.userRepo.GetChannelProfile(ctx, userName, viewer)
}

func (u *userUsecase) GetWatchHistory(ctx context.Context, userID string, page, limit int) ([]model.VideoWithOwner, error) {
	id, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed user id", model.ErrInvalidArgument)
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return u.userRepo.GetWatchHistory(ctx, id, page, limit)
}
