package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Global flags (set from the cmd package)
var (
	quiet   bool
	noColor bool
)

// SetGlobalFlags sets the global flag values from the cmd package
func SetGlobalFlags(q, nc bool) {
	quiet = q
	noColor = nc
	if nc {
		color.NoColor = true
	}
}

// PrintSuccess prints a success message unless quiet mode is enabled
func PrintSuccess(format string, args ...interface{}) {
	if quiet {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if noColor {
		fmt.Printf("OK: %s\n", msg)
		return
	}
	fmt.Printf("%s %s\n", color.GreenString("✓"), msg)
}

// PrintInfo prints an info message unless quiet mode is enabled
func PrintInfo(format string, args ...interface{}) {
	if quiet {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if noColor {
		fmt.Printf("INFO: %s\n", msg)
		return
	}
	fmt.Printf("%s %s\n", color.CyanString("ℹ"), msg)
}

// PrintWarning prints a warning message to stderr
func PrintWarning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if noColor {
		fmt.Fprintf(os.Stderr, "WARNING: %s\n", msg)
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", color.YellowString("⚠"), msg)
}

// PrintError prints an error message to stderr
func PrintError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if noColor {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", msg)
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString("✗"), msg)
}
