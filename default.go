// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package utilities

import (
	"sync"
	"time"
)

var (
	defaultOnce     sync.Once
	defaultCalendar *Calendar
)

// Default returns the process-wide calendar, built from DefaultConfig on
// first use. The package-level date functions all operate on it.
func Default() *Calendar {
	defaultOnce.Do(func() {
		defaultCalendar = New(DefaultConfig())
	})
	return defaultCalendar
}

// DateToDays calls Default().DateToDays
func DateToDays(t time.Time) int {
	return Default().DateToDays(t)
}

// YMDToDays calls Default().YMDToDays; month is zero-based
func YMDToDays(year, month, day int) int {
	return Default().YMDToDays(year, month, day)
}

// DaysToDate calls Default().DaysToDate
func DaysToDate(days int) time.Time {
	return Default().DaysToDate(days)
}

// DaysToSQLDate calls Default().DaysToSQLDate
func DaysToSQLDate(days int) SQLDate {
	return Default().DaysToSQLDate(days)
}

// DateToSQLDate calls Default().DateToSQLDate
func DateToSQLDate(t time.Time) SQLDate {
	return Default().DateToSQLDate(t)
}

// DaysToDay calls Default().DaysToDay
func DaysToDay(days int) int {
	return Default().DaysToDay(days)
}

// DaysToMonth calls Default().DaysToMonth; the result is zero-based
func DaysToMonth(days int) int {
	return Default().DaysToMonth(days)
}

// DaysToYear calls Default().DaysToYear
func DaysToYear(days int) int {
	return Default().DaysToYear(days)
}

// DateToDay calls Default().DateToDay
func DateToDay(t time.Time) int {
	return Default().DateToDay(t)
}

// DateToMonth calls Default().DateToMonth; the result is one-based
func DateToMonth(t time.Time) int {
	return Default().DateToMonth(t)
}

// DateToYear calls Default().DateToYear
func DateToYear(t time.Time) int {
	return Default().DateToYear(t)
}

// IsLeapYear calls Default().IsLeapYear
func IsLeapYear(year int) bool {
	return Default().IsLeapYear(year)
}

// AddYears calls Default().AddYears
func AddYears(days, years int) int {
	return Default().AddYears(days, years)
}

// SubtractYears calls Default().SubtractYears
func SubtractYears(days, years int) int {
	return Default().SubtractYears(days, years)
}

// AddDays calls Default().AddDays
func AddDays(t time.Time, days int) time.Time {
	return Default().AddDays(t, days)
}

// DifferenceInDays returns days2 - days1
func DifferenceInDays(days1, days2 int) int {
	return Default().DifferenceInDays(days1, days2)
}

// DateDifferenceInDays calls Default().DateDifferenceInDays
func DateDifferenceInDays(t1, t2 time.Time) int {
	return Default().DateDifferenceInDays(t1, t2)
}

// DifferenceInCalendarYears calls Default().DifferenceInCalendarYears
func DifferenceInCalendarYears(days1, days2 int) int {
	return Default().DifferenceInCalendarYears(days1, days2)
}

// DateDifferenceInCalendarYears calls Default().DateDifferenceInCalendarYears
func DateDifferenceInCalendarYears(t1, t2 time.Time) int {
	return Default().DateDifferenceInCalendarYears(t1, t2)
}

// DifferenceInYears calls Default().DifferenceInYears
func DifferenceInYears(t1, t2 time.Time) int {
	return Default().DifferenceInYears(t1, t2)
}

// DaysToString calls Default().DaysToString
func DaysToString(days int) string {
	return Default().DaysToString(days)
}

// FormatDate calls Default().FormatDate
func FormatDate(t time.Time) string {
	return Default().FormatDate(t)
}

// FormatDateLayout calls Default().FormatDateLayout
func FormatDateLayout(t time.Time, layout string) string {
	return Default().FormatDateLayout(t, layout)
}

// ParseDate calls Default().ParseDate
func ParseDate(s string) (time.Time, error) {
	return Default().ParseDate(s)
}

// ParseDateLayout calls Default().ParseDateLayout
func ParseDateLayout(s, layout string) (time.Time, error) {
	return Default().ParseDateLayout(s, layout)
}

// StringToSQLDate calls Default().StringToSQLDate
func StringToSQLDate(s string) (SQLDate, error) {
	return Default().StringToSQLDate(s)
}
