// gcd computes the greatest common divisor of its integer arguments.
package main

import (
	"os"

	"github.com/gcd-cli/gcd/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
