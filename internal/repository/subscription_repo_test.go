package repository

import (
	"Socialens/internal/model"
	"context"
	"testing"
	"time"
)

func TestSubscriptionRepoCreateAndGet(t *testing.T) {
	repo := NewSubscriptionRepo()
	ctx := context.Background()

	paymentID := "pay-1"
	created, err := repo.CreateSubscription(ctx, &model.Subscription{
		UserID:           3,
		PlanID:           "pro_monthly",
		Status:           model.SubscriptionStatusActive,
		PaymentID:        &paymentID,
		CurrentPeriodEnd: time.Now().AddDate(0, 1, 0),
	})
	if err != nil {
		t.Fatalf("CreateSubscription: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected id 1, got %d", created.ID)
	}
	if created.CreatedAt.IsZero() {
		t.Error("created_at should be set on create")
	}

	got, err := repo.GetSubscriptionByUserId(ctx, 3)
	if err != nil {
		t.Fatalf("GetSubscriptionByUserId: %v", err)
	}
	if got == nil || got.PlanID != "pro_monthly" || got.Status != model.SubscriptionStatusActive {
		t.Fatalf("unexpected subscription: %+v", got)
	}

	missing, err := repo.GetSubscriptionByUserId(ctx, 4)
	if err != nil || missing != nil {
		t.Errorf("unknown user should yield nil, got %+v, %v", missing, err)
	}
}

func TestSubscriptionRepoUpdate(t *testing.T) {
	repo := NewSubscriptionRepo()
	ctx := context.Background()

	created, _ := repo.CreateSubscription(ctx, &model.Subscription{
		UserID: 3,
		PlanID: "pro_monthly",
		Status: model.SubscriptionStatusActive,
	})

	status := model.SubscriptionStatusCancelled
	updated, err := repo.UpdateSubscription(ctx, created.ID, &model.SubscriptionUpdate{Status: &status})
	if err != nil {
		t.Fatalf("UpdateSubscription: %v", err)
	}
	if updated.Status != model.SubscriptionStatusCancelled {
		t.Errorf("status not updated: %q", updated.Status)
	}
	if updated.PlanID != "pro_monthly" {
		t.Error("plan_id should be untouched")
	}

	got, err := repo.UpdateSubscription(ctx, 999, &model.SubscriptionUpdate{Status: &status})
	if err != nil || got != nil {
		t.Errorf("update of unknown id should yield nil, got %+v, %v", got, err)
	}
}
