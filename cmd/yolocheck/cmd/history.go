package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"yolocheck/internal/adapters/sqlite"
	"yolocheck/internal/application/commands"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past validation runs",
	Long: `List recorded runs, most recent first. Runs are read from --history-db,
or from the default database that --record writes to.

Examples:
  yolocheck validate --record && yolocheck history
  YOLOCHECK_HISTORY=runs.db yolocheck history --limit 5`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		history, err := sqlite.Open(historyPath())
		if err != nil {
			return fmt.Errorf("failed to open history: %w", err)
		}
		defer history.Close()

		list := commands.NewHistoryCommand(history, historyLimit)
		runs, err := list.Execute(context.Background())
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No runs recorded.")
			return nil
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "STARTED\tMODE\tVALID\tOBJECTS\tREMOVED\tCORRUPT\tMISSING\tRECLAIMED\tDATASET")
		for _, r := range runs {
			mode := "apply"
			if r.DryRun {
				mode = "dry-run"
			}
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d/%d\t%d\t%d\t%s\t%s\n",
				humanize.Time(r.StartedAt), mode, r.ValidImages, r.ValidObjects,
				r.RemovedImages, r.RemovedLabels, r.CorruptedFiles, r.MissingPairs,
				humanize.IBytes(uint64(r.BytesRemoved)), r.BaseDir)
		}
		return tw.Flush()
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of runs to show (0 for all)")
	rootCmd.AddCommand(historyCmd)
}
