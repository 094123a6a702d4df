// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewDaysCmd creates the days subcommand, which turns dates into day-counts
func NewDaysCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "days [DATE...]",
		Short: "Convert dates to day-counts",
		Long: `Convert each DATE to the number of days elapsed since the start of the
start year. Quote dates containing spaces: dayconv days "29 Feb 2000"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := opts.calendar()
			if err != nil {
				return err
			}
			return convertEach(cmd, args, func(s string) (string, error) {
				date, err := cal.ParseDate(s)
				if err != nil {
					return "", err
				}
				return strconv.Itoa(cal.DateToDays(date)), nil
			})
		},
	}
}

// NewDateCmd creates the date subcommand, which turns day-counts into dates
func NewDateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "date [DAYS...]",
		Short: "Convert day-counts to dates",
		Long: `Convert each day-count DAYS to a date written with --layout. Negative
day-counts must follow "--": dayconv date -- -1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := opts.calendar()
			if err != nil {
				return err
			}
			return convertEach(cmd, args, func(s string) (string, error) {
				days, err := strconv.Atoi(s)
				if err != nil {
					return "", fmt.Errorf("invalid day-count %q: %w", s, err)
				}
				return cal.DaysToString(days), nil
			})
		},
	}
}
