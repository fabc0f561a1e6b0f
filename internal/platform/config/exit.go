package config

import (
	"fmt"
	"os"
)

// Exitf prints a formatted fatal message to stderr and exits with status 1.
// Entry points use it for failures that happen before a logger exists.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
