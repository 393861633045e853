package billing

import (
	"context"
	"errors"

	"carebridge/models"
)

// ErrChargeFailed wraps any capture that did not complete; the booking's
// monetary state must not be updated when it is returned.
var ErrChargeFailed = errors.New("charge failed")

// ChargeExecutor is the charge-execution sink: given an amount, perform the
// capture against the client's stored payment method and report the outcome.
type ChargeExecutor interface {
	Charge(ctx context.Context, req models.ChargeRequest) (*models.ChargeResult, error)
}

// PayrollSink receives provider payout instructions. Payroll execution lives
// outside this engine.
type PayrollSink interface {
	SubmitPayout(ctx context.Context, instruction models.PayoutInstruction) error
}
