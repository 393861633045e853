package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	m, err := ParseClock("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	m, err = ParseClock("17:30")
	require.NoError(t, err)
	assert.Equal(t, 17*60+30, m)

	m, err = ParseClock("23:59")
	require.NoError(t, err)
	assert.Equal(t, 23*60+59, m)

	_, err = ParseClock("24:00")
	assert.Error(t, err)
	_, err = ParseClock("5pm")
	assert.Error(t, err)
}

func TestParseMonthDay(t *testing.T) {
	k, err := ParseMonthDay("01-02")
	require.NoError(t, err)
	assert.Equal(t, 102, k)

	k, err = ParseMonthDay("12-31")
	require.NoError(t, err)
	assert.Equal(t, 1231, k)

	_, err = ParseMonthDay("13-01")
	assert.Error(t, err)
	_, err = ParseMonthDay("Dec 20")
	assert.Error(t, err)
}

func TestSurgeRuleValidate(t *testing.T) {
	valid := SurgeRule{
		Name: "weekend evenings", Multiplier: 1.2,
		DateRange:  &DateRange{Start: "06-01", End: "08-31"},
		TimeRange:  &TimeRange{Start: "17:00", End: "21:00"},
		DaysOfWeek: []int{0, 6},
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(r *SurgeRule)
	}{
		{"missing name", func(r *SurgeRule) { r.Name = "" }},
		{"multiplier below one", func(r *SurgeRule) { r.Multiplier = 0.9 }},
		{"bad date start", func(r *SurgeRule) { r.DateRange.Start = "June 1" }},
		{"bad date end", func(r *SurgeRule) { r.DateRange.End = "13-40" }},
		{"bad time start", func(r *SurgeRule) { r.TimeRange.Start = "25:00" }},
		{"bad time end", func(r *SurgeRule) { r.TimeRange.End = "9pm" }},
		{"weekday above range", func(r *SurgeRule) { r.DaysOfWeek = []int{7} }},
		{"weekday below range", func(r *SurgeRule) { r.DaysOfWeek = []int{-1} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := SurgeRule{
				Name: "r", Multiplier: 1.2,
				DateRange: &DateRange{Start: "06-01", End: "08-31"},
				TimeRange: &TimeRange{Start: "17:00", End: "21:00"},
			}
			tt.mutate(&rule)
			assert.ErrorIs(t, rule.Validate(), ErrInvalidRule)
		})
	}
}

func TestRushPolicyValidate(t *testing.T) {
	assert.NoError(t, RushPolicy{Enabled: true, Multiplier: 1.25, LeadTimeMinutes: 30}.Validate())
	assert.NoError(t, RushPolicy{Enabled: false, Multiplier: 1, LeadTimeMinutes: 0}.Validate())
	assert.ErrorIs(t, RushPolicy{Multiplier: 0.9}.Validate(), ErrInvalidRule)
	assert.ErrorIs(t, RushPolicy{Multiplier: 1.25, LeadTimeMinutes: -1}.Validate(), ErrInvalidRule)
}

func TestValidateCoordinate(t *testing.T) {
	assert.NoError(t, ValidateCoordinate(Coordinate{Latitude: 43.65, Longitude: -79.38}))
	assert.NoError(t, ValidateCoordinate(Coordinate{Latitude: 90, Longitude: 180}))
	assert.ErrorIs(t, ValidateCoordinate(Coordinate{Latitude: 90.1, Longitude: 0}), ErrInvalidCoordinates)
	assert.ErrorIs(t, ValidateCoordinate(Coordinate{Latitude: 0, Longitude: -180.1}), ErrInvalidCoordinates)
}
