package models

import (
	"errors"
	"fmt"
	"time"
)

// DateRange is an inclusive calendar-date window, year-independent.
// Dates are "MM-DD" strings; End < Start means the range wraps the year
// boundary (e.g. 12-20 .. 01-03).
type DateRange struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// TimeRange is a clock-time window [Start, End); End < Start wraps midnight
// (e.g. 22:00 .. 02:00). Times are "HH:MM" strings on the local clock.
type TimeRange struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// SurgeRule is a named, independently toggleable pricing adjustment.
// A rule with no predicates matches unconditionally whenever enabled.
type SurgeRule struct {
	ID         string     `bson:"id" json:"id,omitempty"`
	Name       string     `bson:"name" json:"name"`
	Enabled    bool       `bson:"enabled" json:"enabled"`
	Multiplier float64    `bson:"multiplier" json:"multiplier"`
	DateRange  *DateRange `bson:"dateRange,omitempty" json:"dateRange,omitempty"`
	TimeRange  *TimeRange `bson:"timeRange,omitempty" json:"timeRange,omitempty"`
	DaysOfWeek []int      `bson:"daysOfWeek,omitempty" json:"daysOfWeek,omitempty"` // 0=Sunday .. 6=Saturday
	Stackable  bool       `bson:"stackable" json:"stackable"`
	CreatedAt  time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// RushPolicy is the ASAP-booking premium: bookings whose requested start is
// within LeadTimeMinutes of now qualify for the multiplier.
type RushPolicy struct {
	Enabled         bool    `json:"enabled"`
	Multiplier      float64 `json:"multiplier"`
	LeadTimeMinutes int     `json:"leadTimeMinutes"`
}

var ErrInvalidRule = errors.New("invalid surge rule")

// ParseClock parses an "HH:MM" string into minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ParseMonthDay parses an "MM-DD" string into a sortable month*100+day key.
func ParseMonthDay(s string) (int, error) {
	t, err := time.Parse("01-02", s)
	if err != nil {
		return 0, fmt.Errorf("invalid calendar date %q: %w", s, err)
	}
	return int(t.Month())*100 + t.Day(), nil
}

// Validate checks the rule's own invariants. It is enforced at write time by
// the admin surface; the pricing engine additionally skips rules that fail it.
func (r SurgeRule) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRule)
	}
	if r.Multiplier < 1 {
		return fmt.Errorf("%w: multiplier must be >= 1, got %v", ErrInvalidRule, r.Multiplier)
	}
	if r.DateRange != nil {
		if _, err := ParseMonthDay(r.DateRange.Start); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidRule, err)
		}
		if _, err := ParseMonthDay(r.DateRange.End); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidRule, err)
		}
	}
	if r.TimeRange != nil {
		if _, err := ParseClock(r.TimeRange.Start); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidRule, err)
		}
		if _, err := ParseClock(r.TimeRange.End); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidRule, err)
		}
	}
	for _, d := range r.DaysOfWeek {
		if d < 0 || d > 6 {
			return fmt.Errorf("%w: weekday index %d out of range 0..6", ErrInvalidRule, d)
		}
	}
	return nil
}

// Validate checks policy invariants at write time.
func (p RushPolicy) Validate() error {
	if p.Multiplier < 1 {
		return fmt.Errorf("%w: rush multiplier must be >= 1, got %v", ErrInvalidRule, p.Multiplier)
	}
	if p.LeadTimeMinutes < 0 {
		return fmt.Errorf("%w: lead time must be non-negative", ErrInvalidRule)
	}
	return nil
}
