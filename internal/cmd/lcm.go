package cmd

import (
	"fmt"
	"log/slog"

	"github.com/gcd-cli/gcd/internal/euclid"
	"github.com/gcd-cli/gcd/internal/output"
	"github.com/gcd-cli/gcd/internal/parse"
	"github.com/gcd-cli/gcd/internal/style"
	"github.com/spf13/cobra"
)

// LCMResult is the structured form of an lcm computation.
type LCMResult struct {
	Inputs []uint64 `json:"inputs" toon:"inputs"`
	LCM    uint64   `json:"lcm" toon:"lcm"`
}

var lcmCmd = &cobra.Command{
	Use:   "lcm <UINT>...",
	Short: "Compute the least common multiple of unsigned integers",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLCM(args)
	},
}

func runLCM(args []string) error {
	nums, err := parse.Uints(args)
	if err != nil {
		return &ExitError{Code: 2, Message: style.Render(style.Err, err.Error())}
	}
	if len(nums) == 0 {
		return &ExitError{Code: 1, Message: "Usage: gcd lcm <UINT>+"}
	}

	m, err := euclid.ReduceLCM(nums)
	if err != nil {
		return &ExitError{Code: 2, Message: style.Render(style.Err, err.Error())}
	}
	slog.Debug("reduced sequence", "count", len(nums), "lcm", m)

	if format := output.ResolveFormat(formatFlag); format != output.FormatText {
		return output.PrintFormatted(LCMResult{Inputs: nums, LCM: m}, format)
	}
	fmt.Printf("The least common multiple of %s is %d\n", formatSequence(nums), m)
	return nil
}
