package pricing

import (
	"time"

	"carebridge/models"
)

// EvaluateSurgeMultiplier evaluates the configured surge rules against the
// given moment and returns the combined multiplier, always >= 1.
//
// Matching stackable rules multiply together (commutative, no ordering
// concerns). Non-stackable rules are mutually exclusive: when several match
// at once the highest multiplier wins, so the outcome never depends on rule
// storage order. A rule that fails its own invariants is ignored rather than
// failing the whole computation.
func EvaluateSurgeMultiplier(rules []models.SurgeRule, at time.Time) float64 {
	stacked := 1.0
	exclusive := 1.0

	for _, rule := range rules {
		if !rule.Enabled || rule.Multiplier < 1 {
			continue
		}
		if !ruleMatches(rule, at) {
			continue
		}
		if rule.Stackable {
			stacked *= rule.Multiplier
		} else if rule.Multiplier > exclusive {
			exclusive = rule.Multiplier
		}
	}

	return stacked * exclusive
}

// ruleMatches reports whether every predicate the rule carries holds at the
// given moment. A rule with no predicates matches unconditionally.
func ruleMatches(rule models.SurgeRule, at time.Time) bool {
	if rule.DateRange != nil && !dateInRange(*rule.DateRange, at) {
		return false
	}
	if rule.TimeRange != nil && !timeInRange(*rule.TimeRange, at) {
		return false
	}
	if len(rule.DaysOfWeek) > 0 && !weekdayIn(rule.DaysOfWeek, at) {
		return false
	}
	return true
}

// dateInRange tests the calendar date against an inclusive [start, end]
// window. End before start means the window wraps the year boundary
// (e.g. Dec 20 .. Jan 3), so the test becomes date >= start OR date <= end.
func dateInRange(r models.DateRange, at time.Time) bool {
	start, err := models.ParseMonthDay(r.Start)
	if err != nil {
		return false
	}
	end, err := models.ParseMonthDay(r.End)
	if err != nil {
		return false
	}
	d := int(at.Month())*100 + at.Day()

	if start <= end {
		return d >= start && d <= end
	}
	return d >= start || d <= end
}

// timeInRange tests the clock time against a half-open [start, end) window.
// End before start wraps midnight (e.g. 22:00 .. 02:00).
func timeInRange(r models.TimeRange, at time.Time) bool {
	start, err := models.ParseClock(r.Start)
	if err != nil {
		return false
	}
	end, err := models.ParseClock(r.End)
	if err != nil {
		return false
	}
	m := at.Hour()*60 + at.Minute()

	if start <= end {
		return m >= start && m < end
	}
	return m >= start || m < end
}

func weekdayIn(days []int, at time.Time) bool {
	wd := int(at.Weekday()) // 0=Sunday .. 6=Saturday
	for _, d := range days {
		if d == wd {
			return true
		}
	}
	return false
}
