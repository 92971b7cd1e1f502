// Package output selects and renders the machine-readable output
// formats of the gcd CLI.
package output

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	toon "github.com/toon-format/toon-go"
)

// Format identifies a rendering of command results.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatTOON Format = "toon"
)

// EnvFormat is consulted when no --format flag is given.
const EnvFormat = "GCD_OUTPUT_FORMAT"

// ResolveFormat picks the output format. An explicit flag value wins,
// then the environment, then the default of text. Matching is case
// insensitive; unrecognized values fall through.
func ResolveFormat(flag string) Format {
	if f, ok := parseFormat(flag); ok {
		return f
	}
	if f, ok := parseFormat(os.Getenv(EnvFormat)); ok {
		slog.Debug("output format from environment", "var", EnvFormat)
		return f
	}
	return FormatText
}

func parseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text":
		return FormatText, true
	case "json":
		return FormatJSON, true
	case "toon":
		return FormatTOON, true
	}
	return "", false
}

// PrintJSON writes v to stdout as indented JSON.
func PrintJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// PrintTOON writes v to stdout in TOON form.
func PrintTOON(v any) error {
	data, err := toon.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal toon: %w", err)
	}
	fmt.Println(strings.TrimRight(string(data), "\n"))
	return nil
}

// PrintFormatted renders v in the given structured format. FormatText
// is not handled here: text rendering is command-specific and owned by
// the caller.
func PrintFormatted(v any, format Format) error {
	switch format {
	case FormatJSON:
		return PrintJSON(v)
	case FormatTOON:
		return PrintTOON(v)
	default:
		return fmt.Errorf("no structured renderer for format %q", format)
	}
}
