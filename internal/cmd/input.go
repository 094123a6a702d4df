// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNoInput = errors.New("no arguments given and standard input is a terminal")

// convertEach applies convert to every argument, or to every non-blank line
// of standard input when there are no arguments. Failing arguments abort;
// failing lines are logged and skipped.
func convertEach(cmd *cobra.Command, args []string, convert func(string) (string, error)) error {
	out := cmd.OutOrStdout()

	if len(args) > 0 {
		for _, arg := range args {
			result, err := convert(arg)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, result)
		}
		return nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return errNoInput
	}

	logger := log.New(cmd.ErrOrStderr(), cmd.Root().Name()+": ", 0)
	scanner := bufio.NewScanner(in)
	lineNo, failed := 0, 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		result, err := convert(line)
		if err != nil {
			logger.Printf("skipping line %d: %v", lineNo, err)
			failed++
			continue
		}
		fmt.Fprintln(out, result)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d lines could not be converted", failed, lineNo)
	}
	return nil
}
