// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

const (
	unitDays          = "days"
	unitYears         = "years"
	unitCalendarYears = "calendar-years"
)

// NewLeapCmd creates the leap subcommand
func NewLeapCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "leap YEAR...",
		Short: "Report whether years are leap years",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := opts.calendar()
			if err != nil {
				return err
			}
			return convertEach(cmd, args, func(s string) (string, error) {
				year, err := strconv.Atoi(s)
				if err != nil {
					return "", fmt.Errorf("invalid year %q: %w", s, err)
				}
				return fmt.Sprintf("%d %t", year, cal.IsLeapYear(year)), nil
			})
		},
	}
}

// NewAddYearsCmd creates the add-years subcommand, which works on day-counts
func NewAddYearsCmd(opts *options) *cobra.Command {
	var subtract bool

	cmd := &cobra.Command{
		Use:   "add-years DAYS YEARS",
		Short: "Add years to a day-count",
		Long: `Add YEARS to the date represented by the day-count DAYS and print the
resulting day-count. 29 February moves to 1 March in common years.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := opts.calendar()
			if err != nil {
				return err
			}
			days, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid day-count %q: %w", args[0], err)
			}
			years, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid year count %q: %w", args[1], err)
			}

			var result int
			if subtract {
				result = cal.SubtractYears(days, years)
			} else {
				result = cal.AddYears(days, years)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&subtract, "subtract", false, "Subtract YEARS instead of adding them")

	return cmd
}

// NewAddDaysCmd creates the add-days subcommand, which works on dates
func NewAddDaysCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "add-days DATE DAYS",
		Short: "Add days to a date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := opts.calendar()
			if err != nil {
				return err
			}
			date, err := cal.ParseDate(args[0])
			if err != nil {
				return err
			}
			days, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid day count %q: %w", args[1], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), cal.FormatDate(cal.AddDays(date, days)))
			return nil
		},
	}
}

// NewDiffCmd creates the diff subcommand
func NewDiffCmd(opts *options) *cobra.Command {
	var unit string

	cmd := &cobra.Command{
		Use:   "diff DATE1 DATE2",
		Short: "Difference between two dates",
		Long: `Print DATE2 minus DATE1. The result is positive when DATE1 is earlier.

Units:
  days            elapsed days
  years           year of the elapsed day-count, less the start year
  calendar-years  difference of the year numbers`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := opts.calendar()
			if err != nil {
				return err
			}
			date1, err := cal.ParseDate(args[0])
			if err != nil {
				return err
			}
			date2, err := cal.ParseDate(args[1])
			if err != nil {
				return err
			}

			var result int
			switch unit {
			case unitDays:
				result = cal.DateDifferenceInDays(date1, date2)
			case unitYears:
				result = cal.DifferenceInYears(date1, date2)
			case unitCalendarYears:
				result = cal.DateDifferenceInCalendarYears(date1, date2)
			default:
				return fmt.Errorf("unknown unit %q, want %s, %s or %s", unit, unitDays, unitYears, unitCalendarYears)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&unit, "unit", "u", unitDays, "Unit of the difference: days, years or calendar-years")

	return cmd
}
