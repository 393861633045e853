package settings

import (
	"context"
	"fmt"
	"strconv"

	"carebridge/config"
	"carebridge/models"
	"carebridge/utils"
)

// Service exposes typed views over the raw settings store. Readers always
// hit the store at computation time; missing or malformed values fall back
// to safe defaults rather than failing a price or coverage computation.
type Service struct {
	Store Store
}

// RushPolicy reads the current ASAP pricing policy.
func (s *Service) RushPolicy(ctx context.Context) models.RushPolicy {
	policy := models.RushPolicy{
		Enabled:         false,
		Multiplier:      1,
		LeadTimeMinutes: 0,
	}
	if v, err := s.Store.Get(ctx, utils.SettingASAPEnabled); err == nil {
		policy.Enabled = v == "true"
	}
	if v, err := s.Store.Get(ctx, utils.SettingASAPMultiplier); err == nil {
		if m, err := strconv.ParseFloat(v, 64); err == nil && m >= 1 {
			policy.Multiplier = m
		}
	}
	if v, err := s.Store.Get(ctx, utils.SettingASAPLeadTimeMinutes); err == nil {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			policy.LeadTimeMinutes = n
		}
	}
	return policy
}

// SetRushPolicy validates and stores the ASAP pricing policy.
func (s *Service) SetRushPolicy(ctx context.Context, policy models.RushPolicy) error {
	if err := policy.Validate(); err != nil {
		return err
	}
	if err := s.Store.Set(ctx, utils.SettingASAPEnabled, strconv.FormatBool(policy.Enabled)); err != nil {
		return err
	}
	if err := s.Store.Set(ctx, utils.SettingASAPMultiplier, strconv.FormatFloat(policy.Multiplier, 'f', -1, 64)); err != nil {
		return err
	}
	return s.Store.Set(ctx, utils.SettingASAPLeadTimeMinutes, strconv.Itoa(policy.LeadTimeMinutes))
}

// ActiveRadiusKm reads the current service-area radius. Readers trust the
// stored value; bounding and snapping happen on the write path.
func (s *Service) ActiveRadiusKm(ctx context.Context) int {
	v, err := s.Store.Get(ctx, utils.SettingActiveServiceRadius)
	if err != nil {
		return config.AppConfig.DefaultServiceRadiusKm
	}
	radius, err := strconv.Atoi(v)
	if err != nil || radius <= 0 {
		return config.AppConfig.DefaultServiceRadiusKm
	}
	return radius
}

// SetActiveRadiusKm clamps the requested radius to the configured bounds,
// snaps it to the configured increment and stores it.
func (s *Service) SetActiveRadiusKm(ctx context.Context, radiusKm int) (int, error) {
	snapped := SnapRadius(radiusKm,
		config.AppConfig.MinServiceRadiusKm,
		config.AppConfig.MaxServiceRadiusKm,
		config.AppConfig.RadiusIncrementKm,
	)
	if err := s.Store.Set(ctx, utils.SettingActiveServiceRadius, strconv.Itoa(snapped)); err != nil {
		return 0, fmt.Errorf("failed to store service radius: %w", err)
	}
	return snapped, nil
}

// SnapRadius clamps radius to [min, max] and rounds it to the nearest
// multiple of increment.
func SnapRadius(radius, min, max, increment int) int {
	if increment > 0 {
		radius = ((radius + increment/2) / increment) * increment
	}
	if radius < min {
		radius = min
	}
	if radius > max {
		radius = max
	}
	return radius
}
