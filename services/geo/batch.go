package geo

import (
	"context"

	"go.uber.org/zap"

	clientsRepo "carebridge/database/repository/clients"
	"carebridge/models"
)

// BatchResult summarizes one batch-geocode run.
type BatchResult struct {
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// BatchGeocoder fills in coordinates for client addresses that lack them.
// Rows are processed serially so the resolver's remote-tier throttle holds;
// each success is persisted immediately so partial progress survives a
// mid-run failure or cancellation.
type BatchGeocoder struct {
	Resolver  *TwoTierResolver
	Addresses clientsRepo.ClientAddressRepository
	Logger    *zap.Logger
}

// Run geocodes every address currently missing a coordinate.
func (b *BatchGeocoder) Run(ctx context.Context) (BatchResult, error) {
	rows, err := b.Addresses.ListMissingCoordinates(ctx)
	if err != nil {
		return BatchResult{}, err
	}
	return b.GeocodeRows(ctx, rows)
}

// GeocodeRows processes the given rows. Rows with neither a postal code nor
// a city are skipped; rows that already carry a coordinate are never
// overwritten. Returns the partial result alongside ctx.Err() when the run
// is abandoned.
func (b *BatchGeocoder) GeocodeRows(ctx context.Context, rows []models.ClientAddress) (BatchResult, error) {
	var result BatchResult
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if row.Coordinate != nil {
			result.Skipped++
			continue
		}
		if row.PostalCode == "" && row.City == "" {
			result.Skipped++
			continue
		}

		coord, err := b.Resolver.resolve(ctx, row.PostalCode, freeformOf(row), true)
		if err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			b.Logger.Warn("batch geocode failed",
				zap.String("addressId", row.ID), zap.Error(err))
			result.Failed++
			continue
		}
		if coord == nil {
			result.Failed++
			continue
		}

		if err := b.Addresses.SetCoordinate(ctx, row.ID, *coord); err != nil {
			b.Logger.Warn("failed to persist geocoded coordinate",
				zap.String("addressId", row.ID), zap.Error(err))
			result.Failed++
			continue
		}
		result.Updated++
	}
	return result, nil
}

func freeformOf(row models.ClientAddress) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{row.City, row.Region, row.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += ", " + p
	}
	return out
}
