package dto

// ActivateSubscriptionDTO 支付完成后的订阅激活请求
type ActivateSubscriptionDTO struct {
	PaymentID string `json:"payment_id" binding:"required"`
	PlanID    string `json:"plan_id" binding:"omitempty,max=50"`
}
