// Package gameday decides which calendar date a new score belongs to.
// All rules evaluate in a fixed zone; the machine-local timezone never
// leaks into date formatting.
package gameday

import (
	"time"
	_ "time/tzdata" // keep the fixed zone loadable without system tzdata
)

const (
	zoneName = "America/New_York"

	// Saturday evenings the group starts the next day's puzzles early.
	saturdayRolloverHour = 18
	// Late at night any score counts toward the next day.
	nightlyRolloverHour = 22

	// DateFormat is the wire format for all dates, with no time component.
	DateFormat = "2006-01-02"
)

var location = mustLoadLocation()

func mustLoadLocation() *time.Location {
	loc, err := time.LoadLocation(zoneName)
	if err != nil {
		panic("gameday: load " + zoneName + ": " + err.Error())
	}
	return loc
}

// Location returns the fixed zone all game-day math uses.
func Location() *time.Location {
	return location
}

// Resolve maps now to the game day a new score should be recorded
// against. Saturday at 18:00 or later, and 22:00 or later on any day,
// roll over to the next calendar date (boundaries inclusive).
func Resolve(now time.Time) string {
	local := now.In(location)
	rollover := local.Hour() >= nightlyRolloverHour ||
		(local.Weekday() == time.Saturday && local.Hour() >= saturdayRolloverHour)
	if rollover {
		local = local.AddDate(0, 0, 1)
	}
	return local.Format(DateFormat)
}

// Today returns the plain calendar date in the fixed zone, without any
// rollover. Used for "not in the future" validation.
func Today(now time.Time) string {
	return now.In(location).Format(DateFormat)
}
