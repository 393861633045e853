package models

import (
	"errors"
	"fmt"
)

// Coordinate represents a geographic point.
type Coordinate struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

var ErrInvalidCoordinates = errors.New("invalid coordinates")

// ValidateCoordinate checks that a coordinate is within standard ranges.
func ValidateCoordinate(c Coordinate) error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("%w: latitude must be between -90 and 90", ErrInvalidCoordinates)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: longitude must be between -180 and 180", ErrInvalidCoordinates)
	}
	return nil
}
