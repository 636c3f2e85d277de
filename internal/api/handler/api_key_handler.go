package handler

import (
	"Socialens/internal/api/dto"
	"Socialens/internal/pkg/response"
	"Socialens/internal/service"

	"github.com/gin-gonic/gin"
)

type ApiKeyHandler struct {
	apiKeySvc service.ApiKeyService
}

func NewApiKeyHandler(apiKeySvc service.ApiKeyService) *ApiKeyHandler {
	return &ApiKeyHandler{
		apiKeySvc: apiKeySvc,
	}
}

func (s *ApiKeyHandler) GetApiKeys(c *gin.Context) {
	userID := c.GetUint64("user_id")

	apiKeys, err := s.apiKeySvc.GetApiKeys(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, apiKeys)
}

func (s *ApiKeyHandler) SaveApiKeys(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var keysDTO dto.ApiKeysDTO
	if err := c.ShouldBindJSON(&keysDTO); err != nil {
		response.Error(c, err)
		return
	}

	apiKeys, err := s.apiKeySvc.SaveApiKeys(c.Request.Context(), userID, &keysDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, apiKeys)
}

func (s *ApiKeyHandler) UpdateApiKeys(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var keysDTO dto.ApiKeysDTO
	if err := c.ShouldBindJSON(&keysDTO); err != nil {
		response.Error(c, err)
		return
	}

	apiKeys, err := s.apiKeySvc.UpdateApiKeys(c.Request.Context(), userID, &keysDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, apiKeys)
}
