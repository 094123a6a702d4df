// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package cmd implements the dayconv subcommands on top of the utilities
// package. Each subcommand has its own constructor returning a
// *cobra.Command; NewRootCmd wires them together.
package cmd
