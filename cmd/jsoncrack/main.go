package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bricklayer25/jsoncrack.com/cmd/commands"
	"github.com/bricklayer25/jsoncrack.com/internal/cli"
	"github.com/bricklayer25/jsoncrack.com/pkg/document"
	"github.com/bricklayer25/jsoncrack.com/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	flagQuiet   bool
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "jsoncrack [file]",
	Short: "Terminal-based JSON explorer and node editor",
	Long: `jsoncrack renders a JSON document as a navigable tree of nodes and
lets you edit any node in place. Edits rewrite only the bytes of the
value you changed; the rest of the file keeps its formatting.

YAML files are converted to JSON on load. With no file argument the
document is read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			text     string
			filePath string
		)

		if len(args) == 1 {
			data, converted, err := document.LoadFile(args[0])
			if err != nil {
				return err
			}
			text = string(data)
			filePath = args[0]
			if converted {
				// Saves would clobber the YAML source with JSON.
				filePath = ""
				cli.PrintWarning("%s was converted to JSON; edits stay in memory", args[0])
			}
		} else {
			stat, _ := os.Stdin.Stat()
			if stat == nil || stat.Mode()&os.ModeCharDevice != 0 {
				return fmt.Errorf("no file argument and nothing on stdin")
			}
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			text = string(data)
		}

		settings, err := document.LoadSettings(document.SettingsFile)
		if err != nil {
			return err
		}

		app := tui.NewApp(text, filePath, settings)
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("start the terminal user interface: %w", err)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("jsoncrack version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress success output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	cobra.OnInitialize(func() {
		cli.SetGlobalFlags(flagQuiet, flagNoColor)
	})

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewGetCommand())
	rootCmd.AddCommand(commands.NewSetCommand())
	rootCmd.AddCommand(commands.NewPatchCommand())
	rootCmd.AddCommand(commands.NewConvertCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
