package handler

import (
	"Socialens/internal/api/dto"
	"Socialens/internal/pkg/response"
	"Socialens/internal/service"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subscriptionSvc service.SubscriptionService
}

func NewSubscriptionHandler(subscriptionSvc service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionSvc: subscriptionSvc,
	}
}

func (s *SubscriptionHandler) GetSubscription(c *gin.Context) {
	userID := c.GetUint64("user_id")

	sub, err := s.subscriptionSvc.GetSubscription(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, sub)
}

func (s *SubscriptionHandler) Activate(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var activateDTO dto.ActivateSubscriptionDTO
	if err := c.ShouldBindJSON(&activateDTO); err != nil {
		response.Error(c, err)
		return
	}

	sub, err := s.subscriptionSvc.Activate(c.Request.Context(), userID, &activateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, sub)
}

func (s *SubscriptionHandler) Cancel(c *gin.Context) {
	userID := c.GetUint64("user_id")

	sub, err := s.subscriptionSvc.Cancel(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, sub)
}
