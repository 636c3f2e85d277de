package repository

import (
	"Socialens/internal/model"
	"Socialens/internal/pkg/memdb"
	"context"
	"time"
)

type UserRepo interface {
	GetUserById(ctx context.Context, id uint64) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByAuthUID(ctx context.Context, authUID string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	UpdateUser(ctx context.Context, id uint64, upd *model.UserUpdate) (*model.User, error)
}

type UserRepoImpl struct {
	users *memdb.Collection[*model.User]
}

func NewUserRepo() UserRepo {
	return &UserRepoImpl{users: memdb.NewCollection[*model.User]()}
}

func (s *UserRepoImpl) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	user, ok := s.users.Get(id)
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (s *UserRepoImpl) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user, ok := s.users.Find(func(u *model.User) bool {
		return u.Email == email
	})
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (s *UserRepoImpl) GetUserByAuthUID(ctx context.Context, authUID string) (*model.User, error) {
	user, ok := s.users.Find(func(u *model.User) bool {
		return u.AuthUID != nil && *u.AuthUID == authUID
	})
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	now := time.Now()
	created := s.users.Insert(func(id uint64) *model.User {
		u := *user
		u.ID = id
		u.IsPro = false
		u.LastLogin = now
		u.IsFirstLogin = true
		u.CreatedAt = now
		return &u
	})
	return created, nil
}

func (s *UserRepoImpl) UpdateUser(ctx context.Context, id uint64, upd *model.UserUpdate) (*model.User, error) {
	user, ok := s.users.Get(id)
	if !ok {
		return nil, nil
	}

	merged := *user
	if upd.Email != nil {
		merged.Email = *upd.Email
	}
	if upd.AuthUID != nil {
		merged.AuthUID = upd.AuthUID
	}
	if upd.DisplayName != nil {
		merged.DisplayName = upd.DisplayName
	}
	if upd.PhotoURL != nil {
		merged.PhotoURL = upd.PhotoURL
	}
	if upd.IsPro != nil {
		merged.IsPro = *upd.IsPro
	}
	if upd.LastLogin != nil {
		merged.LastLogin = *upd.LastLogin
	}
	if upd.IsFirstLogin != nil {
		merged.IsFirstLogin = *upd.IsFirstLogin
	}

	s.users.Replace(id, &merged)
	return &merged, nil
}
