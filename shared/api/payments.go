package api

import "time"

// Money amounts are DRF decimals and arrive as strings ("19.99").

type Transaction struct {
	ID                    int64      `json:"id"`
	User                  int64      `json:"user"`
	Course                *int64     `json:"course"`
	CourseTitle           string     `json:"course_title"`
	Amount                string     `json:"amount"`
	Currency              string     `json:"currency"`
	Status                string     `json:"status"` // pending, completed, failed, refunded
	StripePaymentIntentID string     `json:"stripe_payment_intent_id"`
	StripeChargeID        string     `json:"stripe_charge_id"`
	CreatedAt             time.Time  `json:"created_at"`
	CompletedAt           *time.Time `json:"completed_at"`
}

type Coupon struct {
	ID                int64     `json:"id"`
	Code              string    `json:"code"`
	DiscountType      string    `json:"discount_type"` // percentage, fixed
	DiscountValue     string    `json:"discount_value"`
	ValidFrom         time.Time `json:"valid_from"`
	ValidUntil        time.Time `json:"valid_until"`
	MaxUses           int       `json:"max_uses"`
	CurrentUses       int       `json:"current_uses"`
	IsActive          bool      `json:"is_active"`
	ApplicableCourses []int64   `json:"applicable_courses"`
}

type CouponRequest struct {
	Code     string `json:"code" validate:"required,max=50"`
	CourseID int64  `json:"course_id,omitempty"`
}

type PaymentIntentRequest struct {
	CourseID   int64  `json:"course_id" validate:"required"`
	CouponCode string `json:"coupon_code,omitempty"`
}

// PaymentIntent carries the Stripe client secret the page confirms the card
// payment with.
type PaymentIntent struct {
	ClientSecret  string `json:"client_secret"`
	TransactionID int64  `json:"transaction_id"`
}

type ConfirmPaymentRequest struct {
	TransactionID   int64  `json:"transaction_id" validate:"required"`
	PaymentIntentID string `json:"payment_intent_id" validate:"required"`
}

type PaymentResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SubscriptionRequest struct {
	Plan string `json:"plan" validate:"required,oneof=monthly yearly"`
}

type SubscriptionResult struct {
	Status         string `json:"status"`
	SubscriptionID string `json:"subscription_id"`
}
