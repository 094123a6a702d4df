// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	utilities "github.com/complex-gh/utilities_go"
)

// NewBitsCmd creates the bits subcommand
func NewBitsCmd() *cobra.Command {
	var set, unset []uint

	cmd := &cobra.Command{
		Use:   "bits VALUE",
		Short: "Show and edit the bits of a byte",
		Long: `Print the bits of VALUE, most significant first, after setting the
positions given with --set and then clearing those given with --clear.
Position 0 is the least significant bit. VALUE may be written in decimal,
hex (0x), octal (0o) or binary (0b).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseUint(args[0], 0, 8)
			if err != nil {
				return fmt.Errorf("invalid byte %q: %w", args[0], err)
			}
			b := byte(v)

			for _, p := range set {
				if p >= utilities.BitsPerByte {
					return fmt.Errorf("bit position %d out of range 0-7", p)
				}
				b = utilities.WriteBit(b, true, p)
			}
			for _, p := range unset {
				if p >= utilities.BitsPerByte {
					return fmt.Errorf("bit position %d out of range 0-7", p)
				}
				b = utilities.WriteBit(b, false, p)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s 0x%02x %d\n", formatBits(b), b, b)
			return nil
		},
	}

	cmd.Flags().UintSliceVar(&set, "set", nil, "Bit positions to set")
	cmd.Flags().UintSliceVar(&unset, "clear", nil, "Bit positions to clear")

	return cmd
}

// formatBits renders b most significant bit first
func formatBits(b byte) string {
	var sb strings.Builder
	for p := utilities.BitsPerByte - 1; p >= 0; p-- {
		if utilities.ReadBit(b, uint(p)) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
