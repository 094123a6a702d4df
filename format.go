// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package utilities

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	// DefaultLayout renders dates as day, abbreviated month and year,
	// e.g. "01 Jan 1600"
	DefaultLayout = "02 Jan 2006"

	// layout elements rendered from the month-name table
	stdMonth     = "Jan"
	stdLongMonth = "January"
)

// utf8NFC converts a UTF8 string to the composed canonical form (NFC)
func utf8NFC(str string) string {
	return norm.NFC.String(str)
}

// indexOfMonth looks a month name up in the abbreviated-name table, then in
// the full language table
func (c *Calendar) indexOfMonth(name string) (int, error) {
	if idx, ok := c.months[name]; ok {
		return idx, nil
	}
	if idx := c.lang.FindMonth(name); idx >= 0 {
		return idx, nil
	}
	return 0, fmt.Errorf("%w: %s", StatusErrMonth, name)
}

// parseFields splits s into day, zero-based month and year
func (c *Calendar) parseFields(s string) (int, int, int, error) {
	fields := strings.Fields(utf8NFC(s))
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: %q: want day, month and year", StatusErrFormat, s)
	}

	day, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q: bad day: %w", StatusErrFormat, s, err)
	}
	month, err := c.indexOfMonth(fields[1])
	if err != nil {
		return 0, 0, 0, err
	}
	year, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q: bad year: %w", StatusErrFormat, s, err)
	}

	return day, month, year, nil
}

// formatLocked renders t with layout, taking month names from the
// calendar's language
func (c *Calendar) formatLocked(t time.Time, layout string) string {
	t = t.In(c.location)
	month := int(t.Month()) - 1

	var b strings.Builder
	for len(layout) > 0 {
		i := strings.Index(layout, stdMonth)
		if i < 0 {
			b.WriteString(t.Format(layout))
			break
		}
		if i > 0 {
			b.WriteString(t.Format(layout[:i]))
		}
		layout = layout[i:]
		if strings.HasPrefix(layout, stdLongMonth) {
			b.WriteString(c.lang.LongName(month))
			layout = layout[len(stdLongMonth):]
		} else {
			layout = layout[len(stdMonth):]
			name := c.lang.ShortName(month)
			if strings.HasPrefix(layout, ".") {
				name = strings.TrimSuffix(name, ".")
			}
			b.WriteString(name)
		}
	}
	return b.String()
}

// anglicize replaces month names of the calendar's language in s with the
// English names time.Parse understands. An abbreviation dot in s is kept
// when layout writes its own dot after Jan. It fails with StatusErrMonth
// when s holds fewer month names than layout has month elements.
func (c *Calendar) anglicize(s, layout string) (string, error) {
	long := strings.Contains(layout, stdLongMonth)
	layoutDot := strings.Contains(layout, stdMonth+".")
	want := strings.Count(layout, stdMonth)

	var b strings.Builder
	found := 0
	for rest := s; len(rest) > 0; {
		r, size := utf8.DecodeRuneInString(rest)
		if !unicode.IsLetter(r) {
			b.WriteString(rest[:size])
			rest = rest[size:]
			continue
		}

		end := strings.IndexFunc(rest, func(r rune) bool { return !unicode.IsLetter(r) })
		if end < 0 {
			end = len(rest)
		}
		word := rest[:end]

		idx := c.lang.FindMonth(word)
		if idx >= 0 && !layoutDot && strings.HasPrefix(rest[end:], ".") {
			end++
		}

		switch {
		case idx < 0:
			b.WriteString(word)
		case long:
			b.WriteString(time.Month(idx + 1).String())
		default:
			b.WriteString(time.Month(idx + 1).String()[:3])
		}
		if idx >= 0 {
			found++
		}
		rest = rest[end:]
	}

	if found < want {
		return "", fmt.Errorf("%w: %q", StatusErrMonth, s)
	}
	return b.String(), nil
}

// parseLayoutLocked parses s with a Go reference layout
func (c *Calendar) parseLayoutLocked(s, layout string) (time.Time, error) {
	value := utf8NFC(s)
	if strings.Contains(layout, stdMonth) {
		var err error
		if value, err = c.anglicize(value, layout); err != nil {
			return time.Time{}, err
		}
	}

	t, err := time.ParseInLocation(layout, value, c.location)
	if err != nil {
		var perr *time.ParseError
		if errors.As(err, &perr) && (perr.LayoutElem == stdMonth || perr.LayoutElem == stdLongMonth) {
			return time.Time{}, fmt.Errorf("%w: %q: %w", StatusErrMonth, s, err)
		}
		return time.Time{}, fmt.Errorf("%w: %w", StatusErrFormat, err)
	}

	c.setDate(t)
	return t, nil
}

// parseLocked parses s with layout, using the field parser for the default
// layout. Dates come back at midnight in the calendar's location.
func (c *Calendar) parseLocked(s, layout string) (time.Time, error) {
	if layout != DefaultLayout {
		return c.parseLayoutLocked(s, layout)
	}

	day, month, year, err := c.parseFields(s)
	if err != nil {
		return time.Time{}, err
	}
	c.current = midday(year, time.Month(month+1), day)
	return c.currentSQLDate().Time, nil
}

// DaysToString formats the date days after the epoch with the default layout
func (c *Calendar) DaysToString(days int) string {
	c.lock()
	defer c.mu.Unlock()
	return c.formatLocked(c.daysToDateLocked(days), c.layout)
}

// FormatDate formats t with the default layout
func (c *Calendar) FormatDate(t time.Time) string {
	return c.FormatDateLayout(t, c.layout)
}

// FormatDateLayout formats t with a Go reference layout. Jan and January
// are written in the calendar's language.
func (c *Calendar) FormatDateLayout(t time.Time, layout string) string {
	c.lock()
	defer c.mu.Unlock()
	c.setDate(t)
	return c.formatLocked(t, layout)
}

// ParseDate parses a date written with the default layout
func (c *Calendar) ParseDate(s string) (time.Time, error) {
	return c.ParseDateLayout(s, c.layout)
}

// ParseDateLayout parses a date written with a Go reference layout. Month
// names are read in the calendar's language; unknown names give
// StatusErrMonth and other mismatches StatusErrFormat.
func (c *Calendar) ParseDateLayout(s, layout string) (time.Time, error) {
	c.lock()
	defer c.mu.Unlock()
	return c.parseLocked(s, layout)
}

// StringToSQLDate parses a string such as those made by DaysToString
func (c *Calendar) StringToSQLDate(s string) (SQLDate, error) {
	c.lock()
	defer c.mu.Unlock()

	day, month, year, err := c.parseFields(s)
	if err != nil {
		return SQLDate{}, err
	}
	c.current = midday(year, time.Month(month+1), day)
	return c.currentSQLDate(), nil
}
