// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package utilities

import (
	"maps"
	"sync"
	"time"

	"golang.org/x/text/language"

	"github.com/complex-gh/utilities_go/lang"
)

// Config selects the epoch, locale, zone and default layout of a Calendar.
// Zero fields take the values from DefaultConfig.
type Config struct {
	// StartYear is the year whose 1st January, at midday, is day 0
	StartYear int

	// Lang selects the month-name table
	Lang language.Tag

	// Location is the zone dates are read in and returned in
	Location *time.Location

	// Layout is the Go reference layout used by FormatDate and ParseDate
	Layout string
}

// DefaultConfig returns the configuration of the Default calendar
func DefaultConfig() Config {
	return Config{
		StartYear: DefaultStartYear,
		Lang:      language.English,
		Location:  time.UTC,
		Layout:    DefaultLayout,
	}
}

// Calendar converts between dates and day-counts. It keeps the last date it
// operated on as scratch state; all methods are safe for concurrent use.
// The zero value behaves like a calendar made from DefaultConfig.
type Calendar struct {
	mu sync.Mutex

	startYear   int
	startMillis int64
	location    *time.Location
	layout      string
	lang        *lang.Language
	months      map[string]int

	// current is the last date operated on, at midday UTC
	current time.Time
}

// New creates a calendar from cfg
func New(cfg Config) *Calendar {
	c := &Calendar{}
	c.configure(cfg)
	return c
}

// configure fills zero fields of cfg with defaults and applies it
func (c *Calendar) configure(cfg Config) {
	def := DefaultConfig()
	if cfg.StartYear == 0 {
		cfg.StartYear = def.StartYear
	}
	if cfg.Location == nil {
		cfg.Location = def.Location
	}
	if cfg.Layout == "" {
		cfg.Layout = def.Layout
	}
	if cfg.Lang == language.Und {
		cfg.Lang = def.Lang
	}

	start := midday(cfg.StartYear, time.January, 1)
	l := lang.Match(cfg.Lang)

	c.startYear = cfg.StartYear
	c.startMillis = start.UnixMilli()
	c.location = cfg.Location
	c.layout = cfg.Layout
	c.lang = l
	c.months = l.ShortNames()
	c.current = start
}

// lock acquires c.mu, configuring a zero Calendar on first use
func (c *Calendar) lock() {
	c.mu.Lock()
	if c.location == nil {
		c.configure(DefaultConfig())
	}
}

// StartYear returns the year of the epoch
func (c *Calendar) StartYear() int {
	c.lock()
	defer c.mu.Unlock()
	return c.startYear
}

// Location returns the zone dates are read and returned in
func (c *Calendar) Location() *time.Location {
	c.lock()
	defer c.mu.Unlock()
	return c.location
}

// Layout returns the default layout
func (c *Calendar) Layout() string {
	c.lock()
	defer c.mu.Unlock()
	return c.layout
}

// Lang returns the month-name table in use
func (c *Calendar) Lang() *lang.Language {
	c.lock()
	defer c.mu.Unlock()
	return c.lang
}

// Months returns a copy of the abbreviated month-name table
func (c *Calendar) Months() map[string]int {
	c.lock()
	defer c.mu.Unlock()
	return maps.Clone(c.months)
}

// Last returns the last date the calendar operated on, at midday
func (c *Calendar) Last() time.Time {
	c.lock()
	defer c.mu.Unlock()
	return c.currentDate()
}

// The helpers below expect c.mu to be held.

// setDays expects days within MinDays and MaxDays
func (c *Calendar) setDays(days int) {
	c.current = time.UnixMilli(daysDecode(c.startMillis, days)).UTC()
}

func (c *Calendar) setDate(t time.Time) {
	y, m, d := t.In(c.location).Date()
	c.current = midday(y, m, d)
}

func (c *Calendar) currentDays() int {
	return daysEncode(c.startMillis, c.current.UnixMilli())
}

func (c *Calendar) currentDate() time.Time {
	y, m, d := c.current.Date()
	return time.Date(y, m, d, hoursAtMidday, 0, 0, 0, c.location)
}

func (c *Calendar) currentSQLDate() SQLDate {
	y, m, d := c.current.Date()
	return SQLDate{time.Date(y, m, d, 0, 0, 0, 0, c.location)}
}

func (c *Calendar) dateToDaysLocked(t time.Time) int {
	c.setDate(t)
	return c.currentDays()
}

func (c *Calendar) daysToDateLocked(days int) time.Time {
	c.setDays(days)
	return c.currentDate()
}

func (c *Calendar) daysToYearLocked(days int) int {
	c.setDays(days)
	return c.current.Year()
}

// DateToDays returns the number of days from the epoch to the date of t in
// the calendar's location. The time of day is ignored.
func (c *Calendar) DateToDays(t time.Time) int {
	c.lock()
	defer c.mu.Unlock()
	return c.dateToDaysLocked(t)
}

// YMDToDays returns the number of days from the epoch to the given date.
// month is zero-based. Out-of-range months and days roll over into the
// neighbouring months and years.
func (c *Calendar) YMDToDays(year, month, day int) int {
	c.lock()
	defer c.mu.Unlock()
	c.current = midday(year, time.Month(month+1), day)
	return c.currentDays()
}

// DaysToDate returns the date days after the epoch, at midday in the
// calendar's location. days must lie within MinDays and MaxDays.
func (c *Calendar) DaysToDate(days int) time.Time {
	c.lock()
	defer c.mu.Unlock()
	return c.daysToDateLocked(days)
}

// DaysToSQLDate returns the date days after the epoch as an SQLDate
func (c *Calendar) DaysToSQLDate(days int) SQLDate {
	c.lock()
	defer c.mu.Unlock()
	c.setDays(days)
	return c.currentSQLDate()
}

// DateToSQLDate returns the date of t as an SQLDate
func (c *Calendar) DateToSQLDate(t time.Time) SQLDate {
	c.lock()
	defer c.mu.Unlock()
	c.setDays(c.dateToDaysLocked(t))
	return c.currentSQLDate()
}

// DaysToDay returns the day of the month, from 1
func (c *Calendar) DaysToDay(days int) int {
	c.lock()
	defer c.mu.Unlock()
	c.setDays(days)
	return c.current.Day()
}

// DaysToMonth returns the month, from 0 for January
func (c *Calendar) DaysToMonth(days int) int {
	c.lock()
	defer c.mu.Unlock()
	c.setDays(days)
	return int(c.current.Month()) - 1
}

// DaysToYear returns the year
func (c *Calendar) DaysToYear(days int) int {
	c.lock()
	defer c.mu.Unlock()
	return c.daysToYearLocked(days)
}

// DateToDay returns the day of the month of t, from 1
func (c *Calendar) DateToDay(t time.Time) int {
	c.lock()
	defer c.mu.Unlock()
	c.setDate(t)
	return c.current.Day()
}

// DateToMonth returns the month of t, from 1 for January. Unlike
// DaysToMonth, which counts from 0.
func (c *Calendar) DateToMonth(t time.Time) int {
	c.lock()
	defer c.mu.Unlock()
	c.setDate(t)
	return int(c.current.Month())
}

// DateToYear returns the year of t
func (c *Calendar) DateToYear(t time.Time) int {
	c.lock()
	defer c.mu.Unlock()
	c.setDate(t)
	return c.current.Year()
}

// IsLeapYear reports whether year has more than 365 days
func (c *Calendar) IsLeapYear(year int) bool {
	c.lock()
	defer c.mu.Unlock()
	c.current = midday(year, time.January, 1)
	lastDay := midday(year, time.December, 31)
	return lastDay.YearDay() > daysInNonLeapYear
}

func (c *Calendar) addYearsLocked(days, years int) int {
	c.setDays(days)
	y, m, d := c.current.Date()
	c.current = midday(y+years, m, d)
	return c.currentDays()
}

// AddYears adds years to a day-count. A 29 February that lands in a common
// year becomes 1 March.
func (c *Calendar) AddYears(days, years int) int {
	c.lock()
	defer c.mu.Unlock()
	return c.addYearsLocked(days, years)
}

// SubtractYears subtracts years from a day-count
func (c *Calendar) SubtractYears(days, years int) int {
	c.lock()
	defer c.mu.Unlock()
	return c.addYearsLocked(days, -years)
}

// AddDays returns the date days after t, at midday
func (c *Calendar) AddDays(t time.Time, days int) time.Time {
	c.lock()
	defer c.mu.Unlock()
	return c.daysToDateLocked(c.dateToDaysLocked(t) + days)
}

// DifferenceInDays returns days2 - days1, which is positive when the first
// date is the earlier one
func (c *Calendar) DifferenceInDays(days1, days2 int) int {
	return days2 - days1
}

// DateDifferenceInDays returns the number of days from t1 to t2
func (c *Calendar) DateDifferenceInDays(t1, t2 time.Time) int {
	c.lock()
	defer c.mu.Unlock()
	return c.dateDifferenceInDaysLocked(t1, t2)
}

func (c *Calendar) dateDifferenceInDaysLocked(t1, t2 time.Time) int {
	days1 := c.dateToDaysLocked(t1)
	days2 := c.dateToDaysLocked(t2)
	return c.DifferenceInDays(days1, days2)
}

// DifferenceInCalendarYears returns the difference between the year numbers
// of two day-counts. Months and days are ignored.
func (c *Calendar) DifferenceInCalendarYears(days1, days2 int) int {
	c.lock()
	defer c.mu.Unlock()
	return c.differenceInCalendarYearsLocked(days1, days2)
}

func (c *Calendar) differenceInCalendarYearsLocked(days1, days2 int) int {
	year1 := c.daysToYearLocked(days1)
	year2 := c.daysToYearLocked(days2)
	return year2 - year1
}

// DateDifferenceInCalendarYears returns the difference between the year
// numbers of t1 and t2
func (c *Calendar) DateDifferenceInCalendarYears(t1, t2 time.Time) int {
	c.lock()
	defer c.mu.Unlock()
	days1 := c.dateToDaysLocked(t1)
	days2 := c.dateToDaysLocked(t2)
	return c.differenceInCalendarYearsLocked(days1, days2)
}

// DifferenceInYears returns the year of the date lying as many days after
// the epoch as t2 lies after t1, minus the start year.
//
// This differs from DateDifferenceInCalendarYears near year boundaries and
// for negative spans; it is kept for callers relying on the old results.
func (c *Calendar) DifferenceInYears(t1, t2 time.Time) int {
	c.lock()
	defer c.mu.Unlock()
	elapsed := c.dateDifferenceInDaysLocked(t1, t2)
	return c.daysToYearLocked(elapsed) - c.startYear
}
