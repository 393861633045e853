package pricing

import (
	"time"

	"carebridge/models"
)

// IsASAPEligible reports whether a booking qualifies for the rush premium:
// the requested start must lie within leadTimeMinutes of now. A start in the
// past is never eligible; rejecting it outright is the caller's job.
func IsASAPEligible(requestedStart, now time.Time, leadTimeMinutes int) bool {
	if requestedStart.Before(now) {
		return false
	}
	return requestedStart.Sub(now) <= time.Duration(leadTimeMinutes)*time.Minute
}

// FinalRate composes the base rate with the surge multiplier and, when the
// policy is enabled and the booking is eligible, the rush multiplier.
func FinalRate(baseRate, surgeMultiplier float64, policy models.RushPolicy, eligible bool) float64 {
	rate := baseRate * surgeMultiplier
	if policy.Enabled && eligible && policy.Multiplier >= 1 {
		rate *= policy.Multiplier
	}
	return rate
}
