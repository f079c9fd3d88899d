package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bricklayer25/jsoncrack.com/internal/cli"
	"github.com/bricklayer25/jsoncrack.com/pkg/document"
)

var convertOutput string

// NewConvertCommand creates the convert command
func NewConvertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert between JSON and YAML",
		Long: `Convert a YAML file to JSON, or a JSON file to YAML. The direction
is picked from the input extension.

Examples:
  # YAML to JSON, printed to stdout
  jsoncrack convert config.yaml

  # JSON to YAML, written to a file
  jsoncrack convert data.json -o data.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: runConvert,
	}

	cmd.Flags().StringVarP(&convertOutput, "output-file", "o", "", "Write the result to a file instead of stdout")

	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	var out []byte
	if document.IsYAMLPath(args[0]) {
		out, err = document.YAMLToJSON(data)
	} else {
		out, err = document.JSONToYAML(data)
	}
	if err != nil {
		return fmt.Errorf("convert %s: %w", args[0], err)
	}

	if convertOutput == "" {
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	}

	if err := document.SaveFile(convertOutput, out); err != nil {
		return err
	}
	cli.PrintSuccess("Wrote %s", convertOutput)
	return nil
}
