// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package main

import (
	"fmt"

	"golang.org/x/text/language"

	utilities "github.com/complex-gh/utilities_go"
)

func main() {
	// Day-counts on the default calendar (epoch 1 Jan 1600, English names)
	leapDay := utilities.YMDToDays(2000, 1, 29)
	fmt.Printf("29 Feb 2000 is day %d: %s\n", leapDay, utilities.DaysToString(leapDay))

	nextYear := utilities.AddYears(leapDay, 1)
	fmt.Printf("One year later: %s\n", utilities.DaysToString(nextYear))

	// Parse a date and fail on an unknown month
	date, err := utilities.ParseDate("11 Jan 2000")
	if err != nil {
		panic(err)
	}
	fmt.Printf("Parsed: %s (day %d)\n", utilities.FormatDate(date), utilities.DateToDays(date))

	if _, err := utilities.ParseDate("11 Foo 2000"); err != nil {
		fmt.Printf("Error parsing: %v\n", err)
	}

	// A separate calendar with German month names
	de := utilities.New(utilities.Config{Lang: language.German})
	fmt.Printf("German: %s\n", de.DaysToString(leapDay))

	// Iterate and remove
	it := utilities.NewArrayIterator([]string{"a", "b", "c"})
	for v := range it.All() {
		if v == "b" {
			if err := it.Remove(); err != nil {
				panic(err)
			}
		}
	}
	fmt.Printf("After removal: %q\n", it.Elements())

	// Bits
	b := utilities.WriteBit(0, true, 3)
	fmt.Printf("Bit 3 of %#02x set: %t\n", b, utilities.ReadBit(b, 3))
}
