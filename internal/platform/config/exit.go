package config

import (
	"fmt"
	"os"
)

// Exitf writes a formatted message to stderr and terminates with exit code 1.
// Entry points use it for startup failures that leave nothing to clean up.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
