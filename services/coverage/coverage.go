package coverage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	providerRepo "carebridge/database/repository/provider"
	"carebridge/models"
	"carebridge/services/geo"
	"carebridge/services/settings"
)

// Query identifies the client location to check. A known coordinate skips
// geocoding entirely.
type Query struct {
	PostalCode string             `json:"postalCode,omitempty"`
	Freeform   string             `json:"address,omitempty"`
	Coordinate *models.Coordinate `json:"coordinate,omitempty"`
}

// CoverageService decides whether a client location is inside the operating
// service area.
type CoverageService interface {
	CheckCoverage(ctx context.Context, q Query) (*models.CoverageResult, error)
}

// DefaultCoverageService resolves the client coordinate, then measures
// great-circle distance against every approved provider. It performs no
// mutation; recording unserved requests from the result is the caller's job.
type DefaultCoverageService struct {
	Resolver  geo.Resolver
	Providers providerRepo.ProviderRepository
	Settings  *settings.Service
	Logger    *zap.Logger
}

// CheckCoverage reports whether the location is serviceable, the nearest
// approved provider and its distance. The reason field distinguishes a
// failed geocode from a verified-but-out-of-range result, and an empty
// supply from supply that is simply too far away.
func (s *DefaultCoverageService) CheckCoverage(ctx context.Context, q Query) (*models.CoverageResult, error) {
	radiusKm := float64(s.Settings.ActiveRadiusKm(ctx))

	coord := q.Coordinate
	if coord == nil {
		resolved, err := s.Resolver.Resolve(ctx, q.PostalCode, q.Freeform)
		if err != nil {
			s.Logger.Warn("coverage geocode failed",
				zap.String("postalCode", q.PostalCode), zap.Error(err))
		}
		if resolved == nil {
			return &models.CoverageResult{
				WithinCoverage: false,
				Reason:         models.CoverageUnresolved,
			}, nil
		}
		coord = resolved
	}
	if err := models.ValidateCoordinate(*coord); err != nil {
		return nil, err
	}

	providers, err := s.Providers.ListApproved(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved providers: %w", err)
	}

	var (
		closest   *float64
		nearestID *string
		found     int
	)
	for _, p := range providers {
		if !p.Approved() || p.Coordinate == nil {
			continue
		}
		found++
		d := geo.Haversine(*coord, *p.Coordinate)
		if closest == nil || d < *closest {
			dist := d
			id := p.ID
			closest = &dist
			nearestID = &id
		}
	}

	if closest == nil {
		return &models.CoverageResult{
			WithinCoverage: false,
			Reason:         models.CoverageNoSupply,
		}, nil
	}

	result := &models.CoverageResult{
		ClosestDistanceKm: closest,
		NearestProviderID: nearestID,
		ProvidersFound:    found,
	}
	if *closest <= radiusKm {
		result.WithinCoverage = true
		result.Reason = models.CoverageInRange
	} else {
		result.Reason = models.CoverageOutOfRange
	}
	return result, nil
}
