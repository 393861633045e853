// File: utils/constants.go
package utils

import "time"

// Settings keys consumed by the pricing and coverage engines.
const (
	SettingASAPEnabled         = "asap_pricing_enabled"
	SettingASAPMultiplier      = "asap_multiplier"
	SettingASAPLeadTimeMinutes = "asap_lead_time_minutes"
	SettingActiveServiceRadius = "active_service_radius"
)

// SettingsChannel is the Redis pub/sub channel settings changes are published on.
const SettingsChannel = "settings:changed"

// GeocodeMinInterval is the minimum delay between consecutive remote
// geocoding calls within a batch run (external service usage policy).
const GeocodeMinInterval = 1100 * time.Millisecond
