package model

import (
	"time"
)

const (
	SubscriptionStatusActive    = "active"
	SubscriptionStatusCancelled = "cancelled"
	SubscriptionStatusExpired   = "expired"
)

type Subscription struct {
	ID               uint64    `json:"id"`
	UserID           uint64    `json:"user_id"`
	PlanID           string    `json:"plan_id"`
	Status           string    `json:"status"`
	PaymentID        *string   `json:"payment_id"`
	CurrentPeriodEnd time.Time `json:"current_period_end"`
	CreatedAt        time.Time `json:"created_at"`
}

// SubscriptionUpdate 订阅部分更新载体，nil 字段跳过
type SubscriptionUpdate struct {
	PlanID           *string
	Status           *string
	PaymentID        *string
	CurrentPeriodEnd *time.Time
}
