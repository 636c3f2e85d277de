package service

import (
	"Socialens/internal/api/dto"
	"Socialens/internal/model"
	"Socialens/internal/pkg/authgate"
	"Socialens/internal/pkg/security"
	"Socialens/internal/repository"
	"context"
	"errors"
	"testing"
)

// fakeVerifier 按 token 查表返回身份，替代外部登录服务
type fakeVerifier struct {
	identities map[string]*authgate.Identity
}

func (s *fakeVerifier) VerifyIDToken(ctx context.Context, idToken string) (*authgate.Identity, error) {
	identity, ok := s.identities[idToken]
	if !ok {
		return nil, errors.New("未知的 id token")
	}
	return identity, nil
}

func newUserService(identities map[string]*authgate.Identity) (UserService, repository.UserRepo) {
	userRepo := repository.NewUserRepo()
	return NewUserService(userRepo, &fakeVerifier{identities: identities}), userRepo
}

func TestUserServiceSignInCreatesUser(t *testing.T) {
	svc, userRepo := newUserService(map[string]*authgate.Identity{
		"token-1": {AuthUID: "uid-1", Email: "a@example.com", Name: "Alice"},
	})
	ctx := context.Background()

	result, err := svc.SignIn(ctx, &dto.SignInDTO{IDToken: "token-1"})
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if !result.IsFirstLogin {
		t.Error("first sign-in should be flagged")
	}
	if result.Email != "a@example.com" {
		t.Errorf("unexpected email %q", result.Email)
	}
	if result.IsPro {
		t.Error("new user should not be pro")
	}

	claims, err := security.ValidateToken(result.Token)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if claims.UserID != result.UserID {
		t.Errorf("token user id %d != %d", claims.UserID, result.UserID)
	}

	user, _ := userRepo.GetUserByAuthUID(ctx, "uid-1")
	if user == nil {
		t.Fatal("user not persisted")
	}
	if user.DisplayName == nil || *user.DisplayName != "Alice" {
		t.Error("display name not taken from identity")
	}
}

func TestUserServiceSignInExistingUser(t *testing.T) {
	svc, userRepo := newUserService(map[string]*authgate.Identity{
		"token-1": {AuthUID: "uid-1", Email: "a@example.com"},
	})
	ctx := context.Background()

	first, err := svc.SignIn(ctx, &dto.SignInDTO{IDToken: "token-1"})
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	second, err := svc.SignIn(ctx, &dto.SignInDTO{IDToken: "token-1"})
	if err != nil {
		t.Fatalf("second SignIn: %v", err)
	}
	if second.UserID != first.UserID {
		t.Errorf("second sign-in created a new user: %d vs %d", second.UserID, first.UserID)
	}
	if second.IsFirstLogin {
		t.Error("second sign-in should not be flagged as first login")
	}

	user, _ := userRepo.GetUserById(ctx, first.UserID)
	if user.IsFirstLogin {
		t.Error("first-login mark should be cleared after repeat sign-in")
	}
}

func TestUserServiceSignInBindsLegacyEmailAccount(t *testing.T) {
	svc, userRepo := newUserService(map[string]*authgate.Identity{
		"token-1": {AuthUID: "uid-1", Email: "legacy@example.com"},
	})
	ctx := context.Background()

	// 老账号没有外部身份，登录时按邮箱绑定
	legacy, _ := userRepo.CreateUser(ctx, &model.User{Email: "legacy@example.com"})

	result, err := svc.SignIn(ctx, &dto.SignInDTO{IDToken: "token-1"})
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if result.UserID != legacy.ID {
		t.Errorf("expected binding to user %d, got %d", legacy.ID, result.UserID)
	}

	user, _ := userRepo.GetUserById(ctx, legacy.ID)
	if user.AuthUID == nil || *user.AuthUID != "uid-1" {
		t.Error("auth uid not bound to legacy account")
	}
}

func TestUserServiceSignInConflictingEmail(t *testing.T) {
	svc, userRepo := newUserService(map[string]*authgate.Identity{
		"token-1": {AuthUID: "uid-new", Email: "taken@example.com"},
	})
	ctx := context.Background()

	otherUID := "uid-other"
	userRepo.CreateUser(ctx, &model.User{Email: "taken@example.com", AuthUID: &otherUID})

	if _, err := svc.SignIn(ctx, &dto.SignInDTO{IDToken: "token-1"}); !errors.Is(err, ErrUserEmailExist) {
		t.Errorf("expected ErrUserEmailExist, got %v", err)
	}
}

func TestUserServiceSignInInvalidToken(t *testing.T) {
	svc, _ := newUserService(nil)

	if _, err := svc.SignIn(context.Background(), &dto.SignInDTO{IDToken: "bogus"}); !errors.Is(err, ErrAuthTokenInvalid) {
		t.Errorf("expected ErrAuthTokenInvalid, got %v", err)
	}
}

func TestUserServiceGetAndUpdateUserInfo(t *testing.T) {
	svc, userRepo := newUserService(nil)
	ctx := context.Background()

	created, _ := userRepo.CreateUser(ctx, &model.User{Email: "u@example.com"})

	user, err := svc.GetUserInfo(ctx, created.ID)
	if err != nil || user.Email != "u@example.com" {
		t.Fatalf("GetUserInfo = %+v, %v", user, err)
	}
	if _, err := svc.GetUserInfo(ctx, 999); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}

	name := "Bob"
	user, err = svc.UpdateUserInfo(ctx, created.ID, &dto.UserUpdateDTO{DisplayName: &name})
	if err != nil {
		t.Fatalf("UpdateUserInfo: %v", err)
	}
	if user.DisplayName == nil || *user.DisplayName != "Bob" {
		t.Errorf("display name not updated: %+v", user.DisplayName)
	}
	if _, err := svc.UpdateUserInfo(ctx, 999, &dto.UserUpdateDTO{DisplayName: &name}); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
