package geo

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"googlemaps.github.io/maps"

	"carebridge/config"
	"carebridge/models"
	"carebridge/utils"
)

// Resolver turns a postal code or free-text address into a coordinate.
// A clean miss returns (nil, nil); only transport failures return an error.
type Resolver interface {
	Resolve(ctx context.Context, postalCode, freeform string) (*models.Coordinate, error)
}

// geocodeClient is the slice of the Google Maps client the resolver needs;
// *maps.Client satisfies it.
type geocodeClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// TwoTierResolver tries the static FSA table first (free, neighbourhood
// precision) and falls back to the Google Geocoding API (precise,
// quota-limited). The remote tier is throttled on the batch path only.
type TwoTierResolver struct {
	remote  geocodeClient
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewTwoTierResolver builds the production resolver. With an empty API key
// the remote tier is disabled and only the FSA table is consulted.
func NewTwoTierResolver(logger *zap.Logger) (*TwoTierResolver, error) {
	r := &TwoTierResolver{
		limiter: rate.NewLimiter(rate.Every(utils.GeocodeMinInterval), 1),
		logger:  logger,
	}
	if key := config.AppConfig.GoogleAPIKey; key != "" {
		client, err := maps.NewClient(maps.WithAPIKey(key))
		if err != nil {
			return nil, fmt.Errorf("failed to create maps client: %w", err)
		}
		r.remote = client
	}
	return r, nil
}

// NewResolverWithClient wires a custom remote client; used by tests.
func NewResolverWithClient(remote geocodeClient, logger *zap.Logger) *TwoTierResolver {
	return &TwoTierResolver{
		remote:  remote,
		limiter: rate.NewLimiter(rate.Every(utils.GeocodeMinInterval), 1),
		logger:  logger,
	}
}

// NormalizeFSA extracts the upper-cased forward sortation area from a postal
// code, tolerating spacing and case.
func NormalizeFSA(postalCode string) string {
	cleaned := strings.ToUpper(strings.ReplaceAll(postalCode, " ", ""))
	if len(cleaned) < 3 {
		return ""
	}
	return cleaned[:3]
}

// Resolve performs a single lookup with no artificial delay.
func (r *TwoTierResolver) Resolve(ctx context.Context, postalCode, freeform string) (*models.Coordinate, error) {
	return r.resolve(ctx, postalCode, freeform, false)
}

func (r *TwoTierResolver) resolve(ctx context.Context, postalCode, freeform string, throttled bool) (*models.Coordinate, error) {
	if coord, ok := LookupFSA(postalCode); ok {
		return &coord, nil
	}

	if r.remote == nil {
		return nil, nil
	}

	query := buildSearchString(postalCode, freeform)
	if query == "" {
		return nil, nil
	}

	if throttled {
		if err := r.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	results, err := r.remote.Geocode(ctx, &maps.GeocodingRequest{
		Address: query,
		Region:  "ca",
	})
	if err != nil {
		return nil, fmt.Errorf("geocoding api error: %w", err)
	}
	if len(results) == 0 {
		r.logger.Debug("geocode miss", zap.String("query", query))
		return nil, nil
	}

	loc := results[0].Geometry.Location
	coord := models.Coordinate{Latitude: loc.Lat, Longitude: loc.Lng}
	if err := models.ValidateCoordinate(coord); err != nil {
		return nil, err
	}
	return &coord, nil
}

// buildSearchString assembles the best available search string from the
// pieces we have.
func buildSearchString(postalCode, freeform string) string {
	parts := make([]string, 0, 2)
	if postalCode != "" {
		parts = append(parts, postalCode)
	}
	if freeform != "" {
		parts = append(parts, freeform)
	}
	if len(parts) == 0 {
		return ""
	}
	parts = append(parts, "Canada")
	return strings.Join(parts, ", ")
}
