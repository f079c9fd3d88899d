package commands

import (
	"fmt"
	"os"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/spf13/cobra"

	"github.com/bricklayer25/jsoncrack.com/internal/cli"
	"github.com/bricklayer25/jsoncrack.com/pkg/document"
)

var (
	patchMerge  bool
	patchStdout bool
)

// NewPatchCommand creates the patch command
func NewPatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patch <file> <patch-file>",
		Short: "Apply a JSON patch to a file",
		Long: `Apply an RFC 6902 JSON Patch, or with --merge an RFC 7386 merge
patch, to the file. Unlike set, this rewrites the whole document in
canonical indentation.

Examples:
  # Apply a patch document
  jsoncrack patch data.json changes.json

  # Apply a merge patch
  jsoncrack patch data.json overlay.json --merge`,
		Args: cobra.ExactArgs(2),
		RunE: runPatch,
	}

	cmd.Flags().BoolVar(&patchMerge, "merge", false, "Treat the patch as an RFC 7386 merge patch")
	cmd.Flags().BoolVar(&patchStdout, "stdout", false, "Print the result instead of writing the file")

	return cmd
}

func runPatch(cmd *cobra.Command, args []string) error {
	doc, converted, err := document.LoadFile(args[0])
	if err != nil {
		return err
	}
	if converted {
		return fmt.Errorf("%s: patching only supports JSON files", args[0])
	}

	patchData, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}

	var result []byte
	if patchMerge {
		result, err = jsonpatch.MergePatch(doc, patchData)
		if err != nil {
			return fmt.Errorf("merge patch: %w", err)
		}
	} else {
		patch, err := jsonpatch.DecodePatch(patchData)
		if err != nil {
			return fmt.Errorf("decode patch: %w", err)
		}
		result, err = patch.ApplyIndent(doc, "  ")
		if err != nil {
			return fmt.Errorf("apply patch: %w", err)
		}
	}

	if patchStdout {
		fmt.Fprintln(cmd.OutOrStdout(), string(result))
		return nil
	}

	if err := document.SaveFile(args[0], result); err != nil {
		return err
	}
	cli.PrintSuccess("Patched %s", args[0])
	return nil
}
