package billing

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"

	"carebridge/models"
)

func TestStripeChargeExecutorDryRun(t *testing.T) {
	e := &StripeChargeExecutor{DryRun: true, Logger: zap.NewNop()}

	result, err := e.Charge(context.Background(), models.ChargeRequest{
		Amount: 30, Currency: "CAD", PayerRef: "cus_123",
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, result.Simulated)
	assert.True(t, strings.HasPrefix(result.ReferenceID, "sim_"))
}

func TestStripeChargeExecutorMissingPayerRef(t *testing.T) {
	e := &StripeChargeExecutor{DryRun: true, Logger: zap.NewNop()}

	result, err := e.Charge(context.Background(), models.ChargeRequest{
		Amount: 30, Currency: "CAD",
	})
	assert.ErrorIs(t, err, ErrChargeFailed)
	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Equal(t, models.ChargeErrNoPaymentMethod, result.ErrorKind)
}

func TestStripeChargeExecutorRejectsNonPositiveAmount(t *testing.T) {
	e := &StripeChargeExecutor{DryRun: true, Logger: zap.NewNop()}

	_, err := e.Charge(context.Background(), models.ChargeRequest{
		Amount: 0, Currency: "CAD", PayerRef: "cus_123",
	})
	assert.Error(t, err)
}

func TestClassifyStripeError(t *testing.T) {
	declined := &stripe.Error{Code: stripe.ErrorCodeCardDeclined}
	assert.Equal(t, models.ChargeErrDeclined, classifyStripeError(declined))

	invalid := &stripe.Error{Type: stripe.ErrorTypeInvalidRequest}
	assert.Equal(t, models.ChargeErrNoPaymentMethod, classifyStripeError(invalid))

	other := &stripe.Error{Type: stripe.ErrorTypeAPI}
	assert.Equal(t, models.ChargeErrProviderError, classifyStripeError(other))

	assert.Equal(t, models.ChargeErrProviderError, classifyStripeError(assert.AnError))
}
