// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package cmd

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	utilities "github.com/complex-gh/utilities_go"
)

// run executes the root command with args and stdin, returning stdout and
// stderr
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestCommands(t *testing.T) {
	leapDay := utilities.YMDToDays(2000, 1, 29)

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "days",
			args:     []string{"days", "01 Jan 1600", "01 Jan 2000"},
			expected: "0\n146097\n",
		},
		{
			name:     "date",
			args:     []string{"date", "0", "146097"},
			expected: "01 Jan 1600\n01 Jan 2000\n",
		},
		{
			name:     "negative date",
			args:     []string{"date", "--", "-1"},
			expected: "31 Dec 1599\n",
		},
		{
			name:     "german date",
			args:     []string{"--lang", "de", "date", "0"},
			expected: "01 Jan. 1600\n",
		},
		{
			name:     "start year",
			args:     []string{"--start-year", "2000", "days", "01 Jan 2000"},
			expected: "0\n",
		},
		{
			name:     "layout",
			args:     []string{"--layout", "2006-01-02", "date", "1"},
			expected: "1600-01-02\n",
		},
		{
			name:     "leap",
			args:     []string{"leap", "1900", "2000"},
			expected: "1900 false\n2000 true\n",
		},
		{
			name:     "add years",
			args:     []string{"add-years", strconv.Itoa(leapDay), "1"},
			expected: strconv.Itoa(utilities.YMDToDays(2001, 2, 1)) + "\n",
		},
		{
			name:     "subtract years",
			args:     []string{"add-years", "--subtract", strconv.Itoa(leapDay), "4"},
			expected: strconv.Itoa(utilities.YMDToDays(1996, 1, 29)) + "\n",
		},
		{
			name:     "add days",
			args:     []string{"add-days", "28 Feb 2000", "2"},
			expected: "01 Mar 2000\n",
		},
		{
			name:     "diff days",
			args:     []string{"diff", "01 Jan 2000", "11 Jan 2000"},
			expected: "10\n",
		},
		{
			name:     "diff calendar years",
			args:     []string{"diff", "--unit", "calendar-years", "31 Dec 1999", "01 Jan 2000"},
			expected: "1\n",
		},
		{
			name:     "diff years",
			args:     []string{"diff", "-u", "years", "01 Jan 2000", "01 Jan 2001"},
			expected: "1\n",
		},
		{
			name:     "bits",
			args:     []string{"bits", "0x0a", "--set", "0", "--clear", "3"},
			expected: "00000011 0x03 3\n",
		},
		{
			name:     "bits binary",
			args:     []string{"bits", "0b10000000"},
			expected: "10000000 0x80 128\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown month", []string{"days", "01 Foo 2000"}},
		{"bad day-count", []string{"date", "soon"}},
		{"bad lang", []string{"--lang", "!!", "date", "0"}},
		{"bad zone", []string{"--tz", "Nowhere/Special", "date", "0"}},
		{"bad unit", []string{"diff", "--unit", "weeks", "01 Jan 2000", "02 Jan 2000"}},
		{"bit out of range", []string{"bits", "1", "--set", "8"}},
		{"byte out of range", []string{"bits", "256"}},
		{"missing args", []string{"add-days", "01 Jan 2000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, "", tt.args...)
			assert.Error(t, err)
		})
	}

	_, _, err := run(t, "", "days", "01 Foo 2000")
	assert.ErrorIs(t, err, utilities.StatusErrMonth)
}

func TestStdinBatch(t *testing.T) {
	out, errOut, err := run(t, "01 Jan 2000\n\nbad\n11 Jan 2000\n", "days")
	assert.Error(t, err)
	assert.Equal(t, "146097\n146107\n", out)
	assert.Contains(t, errOut, "skipping line 3")

	out, _, err = run(t, "0\n1\n", "date")
	require.NoError(t, err)
	assert.Equal(t, "01 Jan 1600\n02 Jan 1600\n", out)
}

func TestFormatBits(t *testing.T) {
	assert.Equal(t, "00000000", formatBits(0))
	assert.Equal(t, "10100101", formatBits(0xa5))
}
