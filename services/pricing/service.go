package pricing

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	rulesRepo "carebridge/database/repository/rules"
	"carebridge/services/settings"
)

// RateQuote is the priced outcome of a booking request.
type RateQuote struct {
	BaseRate        float64 `json:"baseRate"`
	SurgeMultiplier float64 `json:"surgeMultiplier"`
	ASAPApplied     bool    `json:"asapApplied"`
	ASAPMultiplier  float64 `json:"asapMultiplier"`
	FinalRate       float64 `json:"finalRate"`
}

// PricingService quotes the chargeable hourly rate for a booking.
type PricingService interface {
	QuoteRate(ctx context.Context, baseRate float64, requestedStart, now time.Time) (*RateQuote, error)
}

// DefaultPricingService reads the current rules and rush policy at quote
// time; configuration is never cached across requests, so admin edits take
// effect immediately.
type DefaultPricingService struct {
	RuleRepo rulesRepo.SurgeRuleRepository
	Settings *settings.Service
	Logger   *zap.Logger
}

// QuoteRate evaluates surge rules against the requested start time, applies
// the rush policy and returns the full multiplier chain.
func (s *DefaultPricingService) QuoteRate(ctx context.Context, baseRate float64, requestedStart, now time.Time) (*RateQuote, error) {
	if baseRate <= 0 {
		return nil, fmt.Errorf("base rate must be positive, got %v", baseRate)
	}

	rules, err := s.RuleRepo.ListEnabled(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load surge rules: %w", err)
	}

	surge := EvaluateSurgeMultiplier(rules, requestedStart)
	policy := s.Settings.RushPolicy(ctx)
	eligible := IsASAPEligible(requestedStart, now, policy.LeadTimeMinutes)
	asapApplied := policy.Enabled && eligible

	quote := &RateQuote{
		BaseRate:        baseRate,
		SurgeMultiplier: surge,
		ASAPApplied:     asapApplied,
		ASAPMultiplier:  1,
		FinalRate:       RoundToCents(FinalRate(baseRate, surge, policy, eligible)),
	}
	if asapApplied {
		quote.ASAPMultiplier = policy.Multiplier
	}

	s.Logger.Debug("rate quoted",
		zap.Float64("baseRate", baseRate),
		zap.Float64("surge", surge),
		zap.Bool("asap", asapApplied),
		zap.Float64("finalRate", quote.FinalRate))
	return quote, nil
}
