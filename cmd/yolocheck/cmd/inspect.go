package cmd

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"yolocheck/internal/adapters/editor"
	"yolocheck/internal/adapters/report"
	"yolocheck/internal/adapters/tui"
	"yolocheck/internal/application/commands"
)

var applyRemovals bool

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Browse the validation report and issues in a terminal UI",
	Long: `Run a validation and open the report in an interactive viewer.

Nothing is deleted unless --apply is given.

Examples:
  yolocheck inspect -d ~/datasets/cones
  yolocheck inspect --apply`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		history, err := openHistory()
		if err != nil {
			return err
		}
		if history != nil {
			defer history.Close()
		}

		validate := commands.NewValidateCommand(store, decoder, history, datasetPath, names)
		validate.DryRun = !applyRemovals
		validate.Logger = logger

		result, err := validate.Execute(context.Background())
		if err != nil {
			return err
		}

		var text strings.Builder
		if err := report.WriteText(&text, result.BaseDir, result.Stats, report.Options{Verbose: true}); err != nil {
			return err
		}

		title := "yolocheck"
		if result.Stats.DryRun {
			title += " (dry run)"
		}
		app := tui.NewApp(title, text.String(), result.Stats, editor.NewOpener())
		if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
			return fmt.Errorf("terminal UI failed: %w", err)
		}
		return nil
	},
}

func init() {
	inspectCmd.Flags().BoolVar(&applyRemovals, "apply", false, "delete invalid files instead of a dry run")
	rootCmd.AddCommand(inspectCmd)
}
