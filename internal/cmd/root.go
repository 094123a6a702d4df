// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	utilities "github.com/complex-gh/utilities_go"
	"github.com/complex-gh/utilities_go/internal/version"
)

// options holds the persistent flags shared by the date commands
type options struct {
	startYear int
	lang      string
	tz        string
	layout    string
}

// calendar builds a Calendar from the flags
func (o *options) calendar() (*utilities.Calendar, error) {
	cfg := utilities.DefaultConfig()
	cfg.StartYear = o.startYear
	cfg.Layout = o.layout

	if o.lang != "" {
		tag, err := language.Parse(o.lang)
		if err != nil {
			return nil, fmt.Errorf("invalid --lang %q: %w", o.lang, err)
		}
		cfg.Lang = tag
	}
	if o.tz != "" {
		loc, err := time.LoadLocation(o.tz)
		if err != nil {
			return nil, fmt.Errorf("invalid --tz %q: %w", o.tz, err)
		}
		cfg.Location = loc
	}

	return utilities.New(cfg), nil
}

// NewRootCmd creates the root dayconv command with all subcommands attached
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "dayconv",
		Short: "dayconv - convert between dates and day-counts",
		Long: `dayconv converts between calendar dates and day-counts, the number of
days elapsed since midday on 1st January of a start year (1600 unless
--start-year says otherwise).

Dates are written as day, abbreviated month and year, e.g. "01 Jan 1600",
unless --layout gives another Go reference layout. Month names follow --lang.

Commands that take dates or day-counts read one per line from standard
input when no arguments are given and input is not a terminal.`,
		Version:      version.GetFullVersion(),
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().IntVar(&opts.startYear, "start-year", utilities.DefaultStartYear, "Year whose 1st January is day 0")
	rootCmd.PersistentFlags().StringVar(&opts.lang, "lang", "en", "BCP 47 tag selecting month names (en, de, fr)")
	rootCmd.PersistentFlags().StringVar(&opts.tz, "tz", "UTC", "IANA time zone dates are read in")
	rootCmd.PersistentFlags().StringVar(&opts.layout, "layout", utilities.DefaultLayout, "Go reference layout for dates")

	groupDates := "dates"
	groupBits := "bits"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupDates,
		Title: "Date Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupBits,
		Title: "Bit Commands",
	})

	dateCmds := []*cobra.Command{
		NewDaysCmd(opts),
		NewDateCmd(opts),
		NewLeapCmd(opts),
		NewAddYearsCmd(opts),
		NewAddDaysCmd(opts),
		NewDiffCmd(opts),
	}
	for _, c := range dateCmds {
		c.GroupID = groupDates
		rootCmd.AddCommand(c)
	}

	bitsCmd := NewBitsCmd()
	bitsCmd.GroupID = groupBits
	rootCmd.AddCommand(bitsCmd)

	return rootCmd
}
