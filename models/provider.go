package models

import "time"

// Provider approval statuses.
const (
	ProviderStatusPending  = "pending"
	ProviderStatusApproved = "approved"
	ProviderStatusRejected = "rejected"
)

// Provider is a personal support worker. Only approved providers with a
// resolved home coordinate participate in coverage determination.
type Provider struct {
	ID               string      `bson:"id" json:"id,omitempty"`
	Name             string      `bson:"name" json:"name"`
	Email            string      `bson:"email" json:"email,omitempty"`
	PhoneNumber      string      `bson:"phoneNumber" json:"phoneNumber,omitempty"`
	Status           string      `bson:"status" json:"status"`
	Coordinate       *Coordinate `bson:"coordinate,omitempty" json:"coordinate,omitempty"`
	PostalCode       string      `bson:"postalCode" json:"postalCode,omitempty"`
	City             string      `bson:"city" json:"city,omitempty"`
	PayoutHourlyRate float64     `bson:"payoutHourlyRate" json:"payoutHourlyRate"`
	CreatedAt        time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// Approved reports whether the provider counts toward service coverage.
func (p Provider) Approved() bool {
	return p.Status == ProviderStatusApproved
}
