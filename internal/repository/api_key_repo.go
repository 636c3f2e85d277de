package repository

import (
	"Socialens/internal/model"
	"Socialens/internal/pkg/memdb"
	"context"
)

type ApiKeyRepo interface {
	GetApiKeysByUserId(ctx context.Context, userID uint64) (*model.ApiKey, error)
	SaveApiKeys(ctx context.Context, apiKey *model.ApiKey) (*model.ApiKey, error)
	UpdateApiKeys(ctx context.Context, userID uint64, upd *model.ApiKeyUpdate) (*model.ApiKey, error)
}

type ApiKeyRepoImpl struct {
	keys *memdb.Collection[*model.ApiKey]
}

func NewApiKeyRepo() ApiKeyRepo {
	return &ApiKeyRepoImpl{keys: memdb.NewCollection[*model.ApiKey]()}
}

func (s *ApiKeyRepoImpl) GetApiKeysByUserId(ctx context.Context, userID uint64) (*model.ApiKey, error) {
	apiKey, ok := s.keys.Find(func(k *model.ApiKey) bool {
		return k.UserID == userID
	})
	if !ok {
		return nil, nil
	}
	return apiKey, nil
}

func (s *ApiKeyRepoImpl) SaveApiKeys(ctx context.Context, apiKey *model.ApiKey) (*model.ApiKey, error) {
	created := s.keys.Insert(func(id uint64) *model.ApiKey {
		k := *apiKey
		k.ID = id
		return &k
	})
	return created, nil
}

func (s *ApiKeyRepoImpl) UpdateApiKeys(ctx context.Context, userID uint64, upd *model.ApiKeyUpdate) (*model.ApiKey, error) {
	apiKey, ok := s.keys.Find(func(k *model.ApiKey) bool {
		return k.UserID == userID
	})
	if !ok {
		return nil, nil
	}

	merged := *apiKey
	if upd.YoutubeApiKey != nil {
		merged.YoutubeApiKey = upd.YoutubeApiKey
	}
	if upd.InstagramToken != nil {
		merged.InstagramToken = upd.InstagramToken
	}
	if upd.TwitterApiKey != nil {
		merged.TwitterApiKey = upd.TwitterApiKey
	}
	if upd.FacebookToken != nil {
		merged.FacebookToken = upd.FacebookToken
	}

	s.keys.Replace(apiKey.ID, &merged)
	return &merged, nil
}
