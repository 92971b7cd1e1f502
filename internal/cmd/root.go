// Package cmd implements the gcd command tree.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/gcd-cli/gcd/internal/euclid"
	"github.com/gcd-cli/gcd/internal/output"
	"github.com/gcd-cli/gcd/internal/parse"
	"github.com/gcd-cli/gcd/internal/style"
	"github.com/spf13/cobra"
)

// usageLine is the exact message printed when no arguments are given.
const usageLine = "Usage: gcd <UINT>+"

var (
	formatFlag  string
	verboseFlag bool
)

// Result is the structured form of a computation, rendered by the json
// and toon formats.
type Result struct {
	Inputs []uint64 `json:"inputs" toon:"inputs"`
	GCD    uint64   `json:"gcd" toon:"gcd"`
}

var rootCmd = &cobra.Command{
	Use:   "gcd <UINT>...",
	Short: "Compute the greatest common divisor of unsigned integers",
	Long: `gcd parses its arguments as base-10 unsigned 64-bit integers and folds
them left to right through the Euclidean algorithm, printing the
greatest common divisor of the whole sequence.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging(verboseFlag)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGCD(args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "",
		"output format: text, json, or toon (or set GCD_OUTPUT_FORMAT)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"enable debug logging on stderr")
	rootCmd.AddCommand(lcmCmd)
	rootCmd.AddCommand(versionCmd)
}

// signLeading matches tokens like "-3" that are intended as numeric
// arguments but that pflag would claim as flags.
var signLeading = regexp.MustCompile(`^-[0-9]`)

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	return execute(os.Args[1:])
}

func execute(args []string) int {
	// pflag consumes any "-..." token before positional dispatch, so a
	// signed number like -3 would surface as an unknown-flag error and
	// never reach the collector. Signed input is a parse failure, not a
	// usage error: catch those tokens up front and report them the way
	// the collector would.
	for _, arg := range args {
		if signLeading.MatchString(arg) {
			_, err := parse.Uints([]string{arg})
			fmt.Fprintln(os.Stderr, style.Render(style.Err, err.Error()))
			return 2
		}
	}

	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			return exitErr.Code
		}
		fmt.Fprintln(os.Stderr, style.Render(style.Err, err.Error()))
		return 1
	}
	return 0
}

func runGCD(args []string) error {
	nums, err := parse.Uints(args)
	if err != nil {
		// Fail fast: nothing is printed to stdout on a bad argument.
		return &ExitError{Code: 2, Message: style.Render(style.Err, err.Error())}
	}
	if len(nums) == 0 {
		return &ExitError{Code: 1, Message: usageLine}
	}

	d := euclid.Reduce(nums)
	slog.Debug("reduced sequence", "count", len(nums), "gcd", d)

	if format := output.ResolveFormat(formatFlag); format != output.FormatText {
		return output.PrintFormatted(Result{Inputs: nums, GCD: d}, format)
	}
	// The exact wording of this line is part of the CLI contract.
	fmt.Printf("The greatest common divisor of %s is %d\n", formatSequence(nums), d)
	return nil
}

// formatSequence renders nums as "[2, 4, 6]".
func formatSequence(nums []uint64) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, n := range nums {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", n)
	}
	sb.WriteByte(']')
	return sb.String()
}

func configureLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
