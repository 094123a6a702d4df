// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package utilities provides small standalone helpers: an iterator over a
// copied slice that supports removal, bit access within a byte, and a
// Calendar converting between dates and day-counts since 1st January 1600.
//
// Day-counts pin every date to midday, so conversions in either direction
// are exact. The package-level date functions use the shared Default
// calendar; use New for another start year, locale or time zone.
package utilities
