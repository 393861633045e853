package billing

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	providerRepo "carebridge/database/repository/provider"
	"carebridge/models"
	"carebridge/services/pricing"
)

// OvertimeBillingService settles post-shift overtime: it quantizes the
// overtime into billable minutes, charges the client at the billing rate and
// forwards the provider's payout computed from their own payout rate. The
// two flows share billable minutes but never rates.
type OvertimeBillingService struct {
	Providers providerRepo.ProviderRepository
	Executor  ChargeExecutor
	Payroll   PayrollSink
	Currency  string
	Logger    *zap.Logger
}

// SettleOvertime assesses and applies the overtime charge for one completed
// shift. The assessment's Charged flag only becomes true after a confirmed,
// non-simulated capture; any failure leaves the shift's monetary state
// untouched. A grace-period outcome still returns an assessment so the
// caller can record the event.
func (s *OvertimeBillingService) SettleOvertime(ctx context.Context, shift models.ShiftCompletion) (*models.OvertimeAssessment, error) {
	if shift.OvertimeMinutes < 0 {
		return nil, fmt.Errorf("overtime minutes must be non-negative, got %d", shift.OvertimeMinutes)
	}
	if shift.ClientHourlyRate <= 0 {
		return nil, fmt.Errorf("client hourly rate must be positive, got %v", shift.ClientHourlyRate)
	}

	billable, clientCharge := pricing.ComputeOvertimeCharge(shift.OvertimeMinutes, shift.ClientHourlyRate)

	assessment := &models.OvertimeAssessment{
		ShiftID:         shift.ShiftID,
		OvertimeMinutes: shift.OvertimeMinutes,
		BillableMinutes: billable,
		ClientCharge:    clientCharge,
		Currency:        s.Currency,
		AssessedAt:      time.Now(),
	}

	if billable == 0 {
		// Within the grace period: nothing to capture, nothing to pay out.
		return assessment, nil
	}

	provider, err := s.Providers.GetByID(ctx, shift.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load provider %s: %w", shift.ProviderID, err)
	}
	assessment.ProviderPayout = pricing.RoundToCents(float64(billable) / 60 * provider.PayoutHourlyRate)

	result, err := s.Executor.Charge(ctx, models.ChargeRequest{
		Amount:   clientCharge,
		Currency: s.Currency,
		PayerRef: shift.ClientRef,
		Metadata: map[string]string{
			"shiftId": shift.ShiftID,
			"kind":    "overtime",
		},
	})
	if result != nil {
		assessment.Simulated = result.Simulated
		assessment.ChargeRef = result.ReferenceID
	}
	if err != nil || result == nil || !result.Success {
		if err == nil {
			err = fmt.Errorf("%w: %s", ErrChargeFailed, result.ErrorKind)
		}
		return assessment, err
	}

	assessment.Charged = !result.Simulated

	if assessment.Charged {
		payout := models.PayoutInstruction{
			ShiftID:         shift.ShiftID,
			ProviderID:      shift.ProviderID,
			BillableMinutes: billable,
			Amount:          assessment.ProviderPayout,
			Currency:        s.Currency,
		}
		if err := s.Payroll.SubmitPayout(ctx, payout); err != nil {
			// The client capture already succeeded; payroll owns retries.
			s.Logger.Error("failed to forward overtime payout",
				zap.String("shiftId", shift.ShiftID), zap.Error(err))
		}
	}

	return assessment, nil
}

// LogPayrollSink records payout instructions for the external payroll system
// to pick up.
type LogPayrollSink struct {
	Logger *zap.Logger
}

func (p *LogPayrollSink) SubmitPayout(ctx context.Context, instruction models.PayoutInstruction) error {
	p.Logger.Info("overtime payout forwarded",
		zap.String("shiftId", instruction.ShiftID),
		zap.String("providerId", instruction.ProviderID),
		zap.Int("billableMinutes", instruction.BillableMinutes),
		zap.Float64("amount", instruction.Amount),
		zap.String("currency", instruction.Currency))
	return nil
}
