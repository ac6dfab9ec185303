package apiclient

import (
	"context"

	"github.com/learnsphere-dev/learnsphere/shared/api"
)

func (c *Client) MyTransactions(ctx context.Context, token string) ([]api.Transaction, error) {
	return fetchList[api.Transaction](ctx, c, "/payments/my-transactions/", token)
}

// ValidateCoupon answers 400 with {"error": ...} for unknown, expired or
// exhausted codes and for codes not valid for req.CourseID.
func (c *Client) ValidateCoupon(ctx context.Context, req api.CouponRequest, token string) (*api.Coupon, error) {
	return submit[api.Coupon](ctx, c, "/payments/validate-coupon/", req, token, "coupon")
}

// CreatePaymentIntent opens a pending transaction for a paid course.
func (c *Client) CreatePaymentIntent(ctx context.Context, req api.PaymentIntentRequest, token string) (*api.PaymentIntent, error) {
	return submit[api.PaymentIntent](ctx, c, "/payments/create-payment-intent/", req, token, "payment intent")
}

// ConfirmPayment enrolls the user once Stripe reports the intent succeeded.
func (c *Client) ConfirmPayment(ctx context.Context, req api.ConfirmPaymentRequest, token string) (*api.PaymentResult, error) {
	return submit[api.PaymentResult](ctx, c, "/payments/confirm-payment/", req, token, "payment result")
}

func (c *Client) CreateSubscription(ctx context.Context, plan, token string) (*api.SubscriptionResult, error) {
	return submit[api.SubscriptionResult](ctx, c, "/payments/create-subscription/", api.SubscriptionRequest{Plan: plan}, token, "subscription")
}
