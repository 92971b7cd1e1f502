// Package parse turns command-line arguments into the unsigned integer
// sequence the reducer consumes.
package parse

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
)

// ErrParse marks an argument that is not a base-10 unsigned 64-bit
// integer. The message text is part of the CLI contract.
var ErrParse = errors.New("Error parsing the argument")

// Uints parses each argument as a base-10 unsigned 64-bit integer,
// preserving argument order. Parsing is fail-fast: the first bad
// argument (non-numeric, overflow, empty) aborts the whole parse and
// nothing is returned. No arguments is not an error; the caller owns
// the emptiness check.
func Uints(args []string) ([]uint64, error) {
	nums := make([]uint64, 0, len(args))
	for _, arg := range args {
		n, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrParse, arg, errors.Unwrap(err))
		}
		slog.Debug("parsed argument", "arg", arg, "value", n)
		nums = append(nums, n)
	}
	return nums, nil
}
