package geo

import (
	"fmt"
	"math"

	"carebridge/models"
)

const earthRadiusKm = 6371

// Haversine returns the great-circle distance in kilometres between two
// coordinates.
func Haversine(a, b models.Coordinate) float64 {
	dLat := (b.Latitude - a.Latitude) * (math.Pi / 180)
	dLon := (b.Longitude - a.Longitude) * (math.Pi / 180)
	lat1Rad := a.Latitude * (math.Pi / 180)
	lat2Rad := b.Latitude * (math.Pi / 180)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

// FormatDistance renders a distance for display: metres below 1 km,
// otherwise kilometres with one decimal.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%d m", int(math.Round(km*1000)))
	}
	return fmt.Sprintf("%.1f km", km)
}
