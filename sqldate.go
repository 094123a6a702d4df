// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package utilities

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// SQLDate is a date without a time of day, stored as midnight in the zone
// it was created in. It can be written to and scanned from SQL DATE columns.
type SQLDate struct {
	time.Time
}

// NewSQLDate returns the date of t at midnight in t's location
func NewSQLDate(t time.Time) SQLDate {
	y, m, d := t.Date()
	return SQLDate{time.Date(y, m, d, 0, 0, 0, 0, t.Location())}
}

// String formats the date as YYYY-MM-DD
func (d SQLDate) String() string {
	return d.Format(time.DateOnly)
}

// Value implements driver.Valuer
func (d SQLDate) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

// Scan implements sql.Scanner
func (d *SQLDate) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = SQLDate{}
	case time.Time:
		*d = NewSQLDate(v)
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("%w: cannot scan %T into SQLDate", StatusErrFormat, src)
	}
	return nil
}

func (d *SQLDate) scanString(s string) error {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return fmt.Errorf("%w: %w", StatusErrFormat, err)
	}
	*d = SQLDate{t}
	return nil
}
