package service

import (
	"Socialens/internal/api/dto"
	"Socialens/internal/model"
	"Socialens/internal/pkg/consts"
	"Socialens/internal/repository"
	"context"
	"time"
)

type SubscriptionService interface {
	GetSubscription(ctx context.Context, userID uint64) (*model.Subscription, error)
	Activate(ctx context.Context, userID uint64, activateDTO *dto.ActivateSubscriptionDTO) (*model.Subscription, error)
	Cancel(ctx context.Context, userID uint64) (*model.Subscription, error)
}

type SubscriptionServiceImpl struct {
	subscriptionRepo repository.SubscriptionRepo
	userRepo         repository.UserRepo
}

func NewSubscriptionService(subscriptionRepo repository.SubscriptionRepo, userRepo repository.UserRepo) SubscriptionService {
	return &SubscriptionServiceImpl{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
	}
}

func (s *SubscriptionServiceImpl) GetSubscription(ctx context.Context, userID uint64) (*model.Subscription, error) {
	sub, err := s.subscriptionRepo.GetSubscriptionByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrSubscriptionNotFound
	}
	return sub, nil
}

// Activate 消费支付回执，开通或续期订阅并点亮 Pro 标记。
// 支付本身由收银台组件完成，这里只认回执。
func (s *SubscriptionServiceImpl) Activate(ctx context.Context, userID uint64, activateDTO *dto.ActivateSubscriptionDTO) (*model.Subscription, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	planID := activateDTO.PlanID
	if planID == "" {
		planID = consts.DefaultPlanID
	}
	status := model.SubscriptionStatusActive
	periodEnd := time.Now().AddDate(0, 1, 0)

	sub, err := s.subscriptionRepo.GetSubscriptionByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}

	if sub == nil {
		sub, err = s.subscriptionRepo.CreateSubscription(ctx, &model.Subscription{
			UserID:           userID,
			PlanID:           planID,
			Status:           status,
			PaymentID:        &activateDTO.PaymentID,
			CurrentPeriodEnd: periodEnd,
		})
	} else {
		sub, err = s.subscriptionRepo.UpdateSubscription(ctx, sub.ID, &model.SubscriptionUpdate{
			PlanID:           &planID,
			Status:           &status,
			PaymentID:        &activateDTO.PaymentID,
			CurrentPeriodEnd: &periodEnd,
		})
	}
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrSubscriptionNotFound
	}

	isPro := true
	if _, err = s.userRepo.UpdateUser(ctx, userID, &model.UserUpdate{IsPro: &isPro}); err != nil {
		return nil, err
	}

	return sub, nil
}

func (s *SubscriptionServiceImpl) Cancel(ctx context.Context, userID uint64) (*model.Subscription, error) {
	sub, err := s.subscriptionRepo.GetSubscriptionByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrSubscriptionNotFound
	}

	status := model.SubscriptionStatusCancelled
	sub, err = s.subscriptionRepo.UpdateSubscription(ctx, sub.ID, &model.SubscriptionUpdate{Status: &status})
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrSubscriptionNotFound
	}

	isPro := false
	if _, err = s.userRepo.UpdateUser(ctx, userID, &model.UserUpdate{IsPro: &isPro}); err != nil {
		return nil, err
	}

	return sub, nil
}
