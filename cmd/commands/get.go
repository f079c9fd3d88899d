package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/buger/jsonparser"
	"github.com/spf13/cobra"

	"github.com/bricklayer25/jsoncrack.com/internal/cli"
	"github.com/bricklayer25/jsoncrack.com/pkg/document"
	"github.com/bricklayer25/jsoncrack.com/pkg/jsonpath"
)

var getCopy bool

// NewGetCommand creates the get command
func NewGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Print the value at a path",
		Long: `Print the value addressed by a path expression.

Paths use the bracketed form shown in the TUI, or a dotted shorthand:

  $["users"][0]["name"]
  users.0.name

YAML files are converted to JSON before the lookup.

Examples:
  # Read a nested value
  jsoncrack get data.json '$["users"][0]["name"]'

  # Dotted shorthand
  jsoncrack get data.json users.0.name

  # Copy the value to the clipboard
  jsoncrack get data.json users.0.name --copy`,
		Args: cobra.ExactArgs(2),
		RunE: runGet,
	}

	cmd.Flags().BoolVarP(&getCopy, "copy", "c", false, "Copy the value to the clipboard")

	return cmd
}

func runGet(cmd *cobra.Command, args []string) error {
	doc, _, err := document.LoadFile(args[0])
	if err != nil {
		return err
	}

	path, err := jsonpath.Parse(args[1])
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", args[1], err)
	}

	out := doc
	if len(path) > 0 {
		value, _, _, err := jsonparser.Get(doc, jsonpath.Keys(path)...)
		if err != nil {
			return fmt.Errorf("path %s: %w", jsonpath.Display(path), err)
		}
		out = value
	}

	if getCopy {
		if err := clipboard.WriteAll(string(out)); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		cli.PrintSuccess("Copied %s", jsonpath.Display(path))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
