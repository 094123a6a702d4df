// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package utilities

import (
	"math"
	"time"
)

const (
	// DefaultStartYear is the year whose 1st January is day 0
	DefaultStartYear = 1600

	// hoursAtMidday is the time of day every date is pinned to, so that
	// zone offsets never move a date across a day boundary
	hoursAtMidday = 12

	// millisPerDay is the length of the day-count step
	millisPerDay = int64(24 * time.Hour / time.Millisecond)

	// daysInNonLeapYear is the length of a common year
	daysInNonLeapYear = 365

	// MinDays and MaxDays bound the day-counts the calendar converts
	// exactly, about 5.8 million years either side of the epoch. Counts
	// outside this range overflow the millisecond arithmetic.
	MinDays = math.MinInt32
	MaxDays = math.MaxInt32
)

// midday returns noon UTC on the given date. Out-of-range months and days
// are normalised, so 29 February of a common year becomes 1 March.
func midday(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, hoursAtMidday, 0, 0, 0, time.UTC)
}

// daysEncode converts a Unix millisecond timestamp to a day-count
func daysEncode(startMillis, millis int64) int {
	return int((millis - startMillis) / millisPerDay)
}

// daysDecode converts a day-count to a Unix millisecond timestamp. days
// must lie within MinDays and MaxDays.
func daysDecode(startMillis int64, days int) int64 {
	return startMillis + int64(days)*millisPerDay
}
