package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"yolocheck/internal/adapters/chart"
	"yolocheck/internal/adapters/report"
	"yolocheck/internal/application/commands"
)

var (
	dryRun       bool
	outputFormat string
	colorOutput  bool
	verbose      bool
	chartPath    string
	showProgress bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the dataset and delete invalid files",
	Long: `Validate every image/label pair in the train and test splits.

A pair is removed when one side is missing, the image cannot be decoded,
or the label file has a malformed annotation line. Use --dry-run to see
what would be removed without deleting anything.

Examples:
  yolocheck validate -d ~/datasets/cones
  yolocheck validate --dry-run --verbose
  yolocheck validate --data data.yaml --format json
  yolocheck validate --chart classes.png`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	addValidateFlags(validateCmd)
	rootCmd.AddCommand(validateCmd)
}

func addValidateFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.BoolVar(&dryRun, "dry-run", false, "report what would be removed without deleting")
	f.StringVar(&outputFormat, "format", "text", "report format (text, json)")
	f.BoolVar(&colorOutput, "color", isatty.IsTerminal(os.Stdout.Fd()), "style the text report")
	f.BoolVarP(&verbose, "verbose", "V", false, "list every recorded issue")
	f.StringVar(&chartPath, "chart", "", "write a class distribution chart (.png, .svg, .pdf, .jpg)")
	f.BoolVar(&showProgress, "progress", false, "show a progress bar per split on stderr")
}

func runValidate(cmd *cobra.Command, args []string) error {
	if outputFormat != "text" && outputFormat != "json" {
		return fmt.Errorf("unknown format %q (use text or json)", outputFormat)
	}
	chartFormat := ""
	if chartPath != "" {
		var err error
		if chartFormat, err = chart.FormatFromPath(chartPath); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	history, err := openHistory()
	if err != nil {
		return err
	}
	if history != nil {
		defer history.Close()
	}

	validate := commands.NewValidateCommand(store, decoder, history, datasetPath, names)
	validate.DryRun = dryRun
	validate.Logger = logger
	if showProgress {
		progress := newProgressObserver(os.Stderr)
		defer progress.finish()
		validate.Observer = progress
	}

	result, err := validate.Execute(ctx)
	if err != nil {
		if result != nil && result.Stats != nil && errors.Is(err, context.Canceled) {
			// Print what was done before the interrupt
			_ = writeReport(cmd.OutOrStdout(), result)
		}
		return err
	}

	if err := writeReport(cmd.OutOrStdout(), result); err != nil {
		return err
	}

	if chartPath != "" {
		if err := writeChart(result, chartFormat); err != nil {
			return err
		}
		logger.Info().Str("path", chartPath).Msg("chart written")
	}

	logger.Info().Str("run_id", result.RunID).Msg(result.Message)
	return nil
}

func writeReport(w io.Writer, result *commands.ValidateResult) error {
	if outputFormat == "json" {
		return report.WriteJSON(w, report.NewDocument(result.RunID, result.BaseDir, result.Stats))
	}
	return report.WriteText(w, result.BaseDir, result.Stats, report.Options{
		Styled:  colorOutput,
		Verbose: verbose,
	})
}

func writeChart(result *commands.ValidateResult, format string) error {
	f, err := os.Create(chartPath)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	if err := chart.Write(f, result.Stats, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
