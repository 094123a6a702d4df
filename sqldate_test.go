// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package utilities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSQLDateDropsTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	d := NewSQLDate(time.Date(2001, time.March, 15, 23, 59, 0, 0, loc))

	assert.Equal(t, time.Date(2001, time.March, 15, 0, 0, 0, 0, loc), d.Time)
	assert.Equal(t, "2001-03-15", d.String())
}

func TestSQLDateValue(t *testing.T) {
	v, err := SQLDate{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	d := DaysToSQLDate(0)
	v, err = d.Value()
	require.NoError(t, err)
	assert.Equal(t, time.Date(1600, time.January, 1, 0, 0, 0, 0, time.UTC), v)
}

func TestSQLDateScan(t *testing.T) {
	want := time.Date(2001, time.March, 15, 0, 0, 0, 0, time.UTC)

	for _, src := range []any{
		"2001-03-15",
		[]byte("2001-03-15"),
		time.Date(2001, time.March, 15, 18, 30, 0, 0, time.UTC),
	} {
		var d SQLDate
		require.NoError(t, d.Scan(src), "%T", src)
		assert.Equal(t, want, d.Time, "%T", src)
	}

	d := DaysToSQLDate(1)
	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.ErrorIs(t, d.Scan(42), StatusErrFormat)
	assert.ErrorIs(t, d.Scan("15 Mar 2001"), StatusErrFormat)
}
