package service

import (
	"Socialens/internal/api/dto"
	"Socialens/internal/model"
	"Socialens/internal/pkg/authgate"
	"Socialens/internal/pkg/consts"
	"Socialens/internal/pkg/redis"
	"Socialens/internal/pkg/security"
	"Socialens/internal/repository"
	"context"
	"time"
)

type UserService interface {
	SignIn(ctx context.Context, signInDTO *dto.SignInDTO) (*dto.SignInResultDTO, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, id uint64) (*model.User, error)
	UpdateUserInfo(ctx context.Context, id uint64, updateDTO *dto.UserUpdateDTO) (*model.User, error)
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
	verifier authgate.TokenVerifier
}

func NewUserService(userRepo repository.UserRepo, verifier authgate.TokenVerifier) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		verifier: verifier,
	}
}

// SignIn 校验外部 id token，首次登录时创建用户，之后签发会话 Token
func (s *UserServiceImpl) SignIn(ctx context.Context, signInDTO *dto.SignInDTO) (*dto.SignInResultDTO, error) {
	identity, err := s.verifier.VerifyIDToken(ctx, signInDTO.IDToken)
	if err != nil {
		return nil, ErrAuthTokenInvalid
	}

	user, err := s.userRepo.GetUserByAuthUID(ctx, identity.AuthUID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		// 同邮箱的老账号绑定外部身份
		user, err = s.userRepo.GetUserByEmail(ctx, identity.Email)
		if err != nil {
			return nil, err
		}
		if user != nil && user.AuthUID != nil && *user.AuthUID != identity.AuthUID {
			return nil, ErrUserEmailExist
		}
	}

	firstLogin := false
	if user == nil {
		firstLogin = true
		newUser := &model.User{
			Email:   identity.Email,
			AuthUID: &identity.AuthUID,
		}
		if identity.Name != "" {
			newUser.DisplayName = &identity.Name
		}
		if identity.Picture != "" {
			newUser.PhotoURL = &identity.Picture
		}

		user, err = s.userRepo.CreateUser(ctx, newUser)
		if err != nil {
			return nil, err
		}
	} else {
		now := time.Now()
		isFirstLogin := false
		user, err = s.userRepo.UpdateUser(ctx, user.ID, &model.UserUpdate{
			AuthUID:      &identity.AuthUID,
			LastLogin:    &now,
			IsFirstLogin: &isFirstLogin,
		})
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, ErrUserNotFound
		}
	}

	token, err := security.GenerateToken(user.ID, user.IsPro)
	if err != nil {
		return nil, err
	}

	return &dto.SignInResultDTO{
		Token:        token,
		UserID:       user.ID,
		Email:        user.Email,
		IsPro:        user.IsPro,
		IsFirstLogin: firstLogin,
	}, nil
}

// Logout 将 Token 签名拉黑，有效期与 Token 一致
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return ErrAuthTokenInvalid
	}
	return redis.SetWithExpiration(ctx, consts.TokenBlacklistKey+signature, "1", security.JWTExpirationTime)
}

func (s *UserServiceImpl) GetUserInfo(ctx context.Context, id uint64) (*model.User, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserServiceImpl) UpdateUserInfo(ctx context.Context, id uint64, updateDTO *dto.UserUpdateDTO) (*model.User, error) {
	user, err := s.userRepo.UpdateUser(ctx, id, &model.UserUpdate{
		DisplayName: updateDTO.DisplayName,
		PhotoURL:    updateDTO.PhotoURL,
	})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
