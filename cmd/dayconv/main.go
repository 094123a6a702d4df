// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Command dayconv converts between dates and day-counts and edits bits of
// a byte from the shell.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/complex-gh/utilities_go/internal/cmd"
)

func main() {
	if err := fang.Execute(context.Background(), cmd.NewRootCmd()); err != nil {
		os.Exit(1)
	}
}
