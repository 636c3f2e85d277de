package repository

import (
	"Socialens/internal/model"
	"Socialens/internal/pkg/memdb"
	"context"
	"time"
)

type SubscriptionRepo interface {
	GetSubscriptionByUserId(ctx context.Context, userID uint64) (*model.Subscription, error)
	CreateSubscription(ctx context.Context, sub *model.Subscription) (*model.Subscription, error)
	UpdateSubscription(ctx context.Context, id uint64, upd *model.SubscriptionUpdate) (*model.Subscription, error)
}

type SubscriptionRepoImpl struct {
	subs *memdb.Collection[*model.Subscription]
}

func NewSubscriptionRepo() SubscriptionRepo {
	return &SubscriptionRepoImpl{subs: memdb.NewCollection[*model.Subscription]()}
}

func (s *SubscriptionRepoImpl) GetSubscriptionByUserId(ctx context.Context, userID uint64) (*model.Subscription, error) {
	sub, ok := s.subs.Find(func(v *model.Subscription) bool {
		return v.UserID == userID
	})
	if !ok {
		return nil, nil
	}
	return sub, nil
}

func (s *SubscriptionRepoImpl) CreateSubscription(ctx context.Context, sub *model.Subscription) (*model.Subscription, error) {
	now := time.Now()
	created := s.subs.Insert(func(id uint64) *model.Subscription {
		v := *sub
		v.ID = id
		v.CreatedAt = now
		return &v
	})
	return created, nil
}

func (s *SubscriptionRepoImpl) UpdateSubscription(ctx context.Context, id uint64, upd *model.SubscriptionUpdate) (*model.Subscription, error) {
	sub, ok := s.subs.Get(id)
	if !ok {
		return nil, nil
	}

	merged := *sub
	if upd.PlanID != nil {
		merged.PlanID = *upd.PlanID
	}
	if upd.Status != nil {
		merged.Status = *upd.Status
	}
	if upd.PaymentID != nil {
		merged.PaymentID = upd.PaymentID
	}
	if upd.CurrentPeriodEnd != nil {
		merged.CurrentPeriodEnd = *upd.CurrentPeriodEnd
	}

	s.subs.Replace(id, &merged)
	return &merged, nil
}
