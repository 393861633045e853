package billing

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"

	"carebridge/models"
)

// StripeChargeExecutor captures charges through Stripe payment intents using
// the customer's stored default payment method. With DryRun set it computes
// and returns a simulated result without touching the payment rail.
type StripeChargeExecutor struct {
	DryRun bool
	Logger *zap.Logger
}

// Charge captures req.Amount against the customer referenced by req.PayerRef.
func (e *StripeChargeExecutor) Charge(ctx context.Context, req models.ChargeRequest) (*models.ChargeResult, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("invalid charge amount: %v", req.Amount)
	}
	if req.PayerRef == "" {
		return &models.ChargeResult{Success: false, ErrorKind: models.ChargeErrNoPaymentMethod},
			fmt.Errorf("%w: no payment method on file", ErrChargeFailed)
	}

	if e.DryRun {
		e.Logger.Info("dry-run charge simulated",
			zap.Float64("amount", req.Amount), zap.String("payerRef", req.PayerRef))
		return &models.ChargeResult{
			Success:     true,
			ReferenceID: "sim_" + uuid.New().String(),
			Simulated:   true,
		}, nil
	}

	params := &stripe.PaymentIntentParams{
		Amount:     stripe.Int64(int64(math.Round(req.Amount * 100))),
		Currency:   stripe.String(req.Currency),
		Customer:   stripe.String(req.PayerRef),
		Confirm:    stripe.Bool(true),
		OffSession: stripe.Bool(true),
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		kind := classifyStripeError(err)
		e.Logger.Warn("stripe capture failed",
			zap.String("payerRef", req.PayerRef), zap.String("kind", kind), zap.Error(err))
		return &models.ChargeResult{Success: false, ErrorKind: kind},
			fmt.Errorf("%w: %v", ErrChargeFailed, err)
	}
	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return &models.ChargeResult{Success: false, ErrorKind: models.ChargeErrDeclined},
			fmt.Errorf("%w: payment intent status %s", ErrChargeFailed, intent.Status)
	}

	e.Logger.Info("charge captured",
		zap.String("paymentIntent", intent.ID), zap.Float64("amount", req.Amount))
	return &models.ChargeResult{Success: true, ReferenceID: intent.ID}, nil
}

func classifyStripeError(err error) string {
	if stripeErr, ok := err.(*stripe.Error); ok {
		switch {
		case stripeErr.Code == stripe.ErrorCodeCardDeclined:
			return models.ChargeErrDeclined
		case stripeErr.Type == stripe.ErrorTypeInvalidRequest:
			return models.ChargeErrNoPaymentMethod
		}
	}
	return models.ChargeErrProviderError
}
