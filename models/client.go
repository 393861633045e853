package models

import "time"

// ClientAddress is a client's service address. Coordinate stays nil until a
// geocoding pass resolves it; an existing coordinate is never overwritten.
type ClientAddress struct {
	ID         string      `bson:"id" json:"id,omitempty"`
	ClientID   string      `bson:"clientId" json:"clientId"`
	Street     string      `bson:"street" json:"street,omitempty"`
	City       string      `bson:"city" json:"city,omitempty"`
	Region     string      `bson:"region" json:"region,omitempty"`
	Country    string      `bson:"country" json:"country,omitempty"`
	PostalCode string      `bson:"postalCode" json:"postalCode,omitempty"`
	Coordinate *Coordinate `bson:"coordinate,omitempty" json:"coordinate,omitempty"`
	CreatedAt  time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// FSA returns the forward sortation area (first three characters) of the
// postal code, upper-cased by the caller's storage convention.
func (a ClientAddress) FSA() string {
	if len(a.PostalCode) < 3 {
		return ""
	}
	return a.PostalCode[:3]
}
