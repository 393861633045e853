package pricing

import "math"

// Overtime billing tiers: a grace period, two fixed blocks, then full-hour
// quantization.
const (
	OvertimeGraceMinutes = 14
	overtimeHalfBlock    = 30
	overtimeFullBlock    = 60
)

// BillableOvertimeMinutes quantizes raw overtime minutes into the minutes
// actually billed.
func BillableOvertimeMinutes(overtimeMinutes int) int {
	switch {
	case overtimeMinutes <= OvertimeGraceMinutes:
		return 0
	case overtimeMinutes <= overtimeHalfBlock:
		return overtimeHalfBlock
	case overtimeMinutes <= overtimeFullBlock:
		return overtimeFullBlock
	default:
		blocks := (overtimeMinutes + overtimeFullBlock - 1) / overtimeFullBlock
		return blocks * overtimeFullBlock
	}
}

// ComputeOvertimeCharge returns the billable minutes and the monetary charge
// for overtime at the given hourly rate. The charge keeps full precision
// through the computation and is rounded to cents only at the end.
func ComputeOvertimeCharge(overtimeMinutes int, hourlyRate float64) (billableMinutes int, charge float64) {
	billableMinutes = BillableOvertimeMinutes(overtimeMinutes)
	if billableMinutes == 0 {
		return 0, 0
	}
	charge = RoundToCents(float64(billableMinutes) / 60 * hourlyRate)
	return billableMinutes, charge
}

// RoundToCents rounds half-up to the currency's minor unit.
func RoundToCents(amount float64) float64 {
	return math.Floor(amount*100+0.5) / 100
}
