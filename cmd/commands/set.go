package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bricklayer25/jsoncrack.com/internal/cli"
	"github.com/bricklayer25/jsoncrack.com/pkg/document"
	"github.com/bricklayer25/jsoncrack.com/pkg/editor"
	"github.com/bricklayer25/jsoncrack.com/pkg/jsonpath"
)

var (
	setReplace bool
	setStdout  bool
)

// NewSetCommand creates the set command
func NewSetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <file> <path> <value>",
		Short: "Write a value at a path",
		Long: `Write a value at the addressed path, rewriting only the bytes of
that value. Everything else in the file - key order, indentation,
sibling formatting - is left as it was.

The value is interpreted the same way the TUI's edit buffer is: JSON
first, then number, boolean, or null, and finally a plain string. When
both the existing value and the new value are objects they are merged
key by key; pass --replace to overwrite instead.

Examples:
  # Update a nested scalar
  jsoncrack set data.json users.0.name '"Ada"'

  # Merge keys into an object
  jsoncrack set data.json users.0 '{"active": true}'

  # Replace the object wholesale
  jsoncrack set data.json users.0 '{"name": "Ada"}' --replace

  # Print the result instead of writing the file
  jsoncrack set data.json users.0.name Ada --stdout`,
		Args: cobra.ExactArgs(3),
		RunE: runSet,
	}

	cmd.Flags().BoolVar(&setReplace, "replace", false, "Replace objects instead of merging")
	cmd.Flags().BoolVar(&setStdout, "stdout", false, "Print the result instead of writing the file")

	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	doc, converted, err := document.LoadFile(args[0])
	if err != nil {
		return err
	}
	if converted {
		return fmt.Errorf("%s: in-place edits only support JSON files", args[0])
	}

	path, err := jsonpath.Parse(args[1])
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", args[1], err)
	}

	outcome := editor.ParseValue(args[2])
	value := outcome.Value
	if !setReplace {
		decision := editor.Resolve(doc, path, outcome.Value)
		value = decision.Value
	}

	settings, err := document.LoadSettings(document.SettingsFile)
	if err != nil {
		return err
	}
	format := document.FormatFor(doc, settings)

	patched, err := document.Patch(doc, path, value, format)
	if err != nil {
		return fmt.Errorf("path %s: %w", jsonpath.Display(path), err)
	}

	if setStdout {
		fmt.Fprint(cmd.OutOrStdout(), string(patched))
		return nil
	}

	if err := document.SaveFile(args[0], patched); err != nil {
		return err
	}
	cli.PrintSuccess("Updated %s at %s", args[0], jsonpath.Display(path))
	return nil
}
