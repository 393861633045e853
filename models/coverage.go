package models

import "time"

// Coverage reasons. Geocoding failure is deliberately distinguishable from a
// verified-but-out-of-range result, and "no supply" from "supply too far".
const (
	CoverageInRange    = "in_range"
	CoverageOutOfRange = "out_of_range"
	CoverageNoSupply   = "no_supply"
	CoverageUnresolved = "unresolved_location"
)

// CoverageResult reports whether a client location is serviceable and the
// nearest approved provider's distance when it could be computed.
type CoverageResult struct {
	WithinCoverage    bool     `json:"withinCoverage"`
	ClosestDistanceKm *float64 `json:"closestDistanceKm,omitempty"`
	NearestProviderID *string  `json:"nearestProviderId,omitempty"`
	ProvidersFound    int      `json:"providersFound"`
	Reason            string   `json:"reason"`
}

// UnservedRequest records a coverage check that could not be served, for
// expansion planning.
type UnservedRequest struct {
	ID             string    `bson:"id" json:"id,omitempty"`
	City           string    `bson:"city" json:"city,omitempty"`
	FSA            string    `bson:"fsa" json:"fsa,omitempty"`
	ProvidersFound int       `bson:"providersFound" json:"providersFound"`
	Reason         string    `bson:"reason" json:"reason"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}
