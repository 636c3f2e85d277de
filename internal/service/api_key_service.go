package service

import (
	"Socialens/internal/api/dto"
	"Socialens/internal/model"
	"Socialens/internal/repository"
	"context"
)

type ApiKeyService interface {
	GetApiKeys(ctx context.Context, userID uint64) (*model.ApiKey, error)
	SaveApiKeys(ctx context.Context, userID uint64, keysDTO *dto.ApiKeysDTO) (*model.ApiKey, error)
	UpdateApiKeys(ctx context.Context, userID uint64, keysDTO *dto.ApiKeysDTO) (*model.ApiKey, error)
}

type ApiKeyServiceImpl struct {
	apiKeyRepo repository.ApiKeyRepo
}

func NewApiKeyService(apiKeyRepo repository.ApiKeyRepo) ApiKeyService {
	return &ApiKeyServiceImpl{apiKeyRepo: apiKeyRepo}
}

func (s *ApiKeyServiceImpl) GetApiKeys(ctx context.Context, userID uint64) (*model.ApiKey, error) {
	apiKey, err := s.apiKeyRepo.GetApiKeysByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}
	if apiKey == nil {
		return nil, ErrApiKeysNotFound
	}
	return apiKey, nil
}

// SaveApiKeys 每个用户只允许一条凭据记录，重复保存交给 Update
func (s *ApiKeyServiceImpl) SaveApiKeys(ctx context.Context, userID uint64, keysDTO *dto.ApiKeysDTO) (*model.ApiKey, error) {
	existing, err := s.apiKeyRepo.GetApiKeysByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrApiKeysExist
	}

	return s.apiKeyRepo.SaveApiKeys(ctx, &model.ApiKey{
		UserID:         userID,
		YoutubeApiKey:  keysDTO.YoutubeApiKey,
		InstagramToken: keysDTO.InstagramToken,
		TwitterApiKey:  keysDTO.TwitterApiKey,
		FacebookToken:  keysDTO.FacebookToken,
	})
}

func (s *ApiKeyServiceImpl) UpdateApiKeys(ctx context.Context, userID uint64, keysDTO *dto.ApiKeysDTO) (*model.ApiKey, error) {
	apiKey, err := s.apiKeyRepo.UpdateApiKeys(ctx, userID, &model.ApiKeyUpdate{
		YoutubeApiKey:  keysDTO.YoutubeApiKey,
		InstagramToken: keysDTO.InstagramToken,
		TwitterApiKey:  keysDTO.TwitterApiKey,
		FacebookToken:  keysDTO.FacebookToken,
	})
	if err != nil {
		return nil, err
	}
	if apiKey == nil {
		return nil, ErrApiKeysNotFound
	}
	return apiKey, nil
}
