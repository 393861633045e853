package models

import "time"

// Charge failure kinds reported by the charge executor.
const (
	ChargeErrNoPaymentMethod = "no_payment_method"
	ChargeErrDeclined        = "declined"
	ChargeErrProviderError   = "provider_error"
)

// ChargeRequest instructs the charge-execution sink to capture an amount
// against the client's stored payment method.
type ChargeRequest struct {
	Amount   float64           `json:"amount"`
	Currency string            `json:"currency"`
	PayerRef string            `json:"payerRef"` // Stripe customer reference
	Metadata map[string]string `json:"metadata,omitempty"`
}

// ChargeResult is the outcome of a capture attempt. Simulated results come
// from dry-run mode and never touched a live payment rail.
type ChargeResult struct {
	Success     bool   `json:"success"`
	ReferenceID string `json:"referenceId,omitempty"`
	Simulated   bool   `json:"simulated,omitempty"`
	ErrorKind   string `json:"errorKind,omitempty"`
}

// ShiftCompletion is the event a finished shift emits into overtime billing.
type ShiftCompletion struct {
	ShiftID          string  `json:"shiftId"`
	ClientRef        string  `json:"clientRef"` // payment reference of the client being billed
	ProviderID       string  `json:"providerId"`
	OvertimeMinutes  int     `json:"overtimeMinutes"`
	ClientHourlyRate float64 `json:"clientHourlyRate"`
}

// PayoutInstruction is the provider-side monetary flow of an overtime
// settlement, forwarded to payroll. It is computed from the provider's
// payout rate, never from the client billing rate.
type PayoutInstruction struct {
	ShiftID         string  `json:"shiftId"`
	ProviderID      string  `json:"providerId"`
	BillableMinutes int     `json:"billableMinutes"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
}

// OvertimeAssessment is the derived outcome of settling overtime for a shift.
// The client charge and provider payout share BillableMinutes but are
// computed from different rates.
type OvertimeAssessment struct {
	ShiftID         string    `bson:"shiftId" json:"shiftId"`
	OvertimeMinutes int       `bson:"overtimeMinutes" json:"overtimeMinutes"`
	BillableMinutes int       `bson:"billableMinutes" json:"billableMinutes"`
	ClientCharge    float64   `bson:"clientCharge" json:"clientCharge"`
	ProviderPayout  float64   `bson:"providerPayout" json:"providerPayout"`
	Currency        string    `bson:"currency" json:"currency"`
	Charged         bool      `bson:"charged" json:"charged"`
	ChargeRef       string    `bson:"chargeRef,omitempty" json:"chargeRef,omitempty"`
	Simulated       bool      `bson:"simulated,omitempty" json:"simulated,omitempty"`
	AssessedAt      time.Time `bson:"assessedAt" json:"assessedAt"`
}
