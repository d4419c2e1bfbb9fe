package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "Print the effective class vocabulary",
	Long: `Print the class names used to validate label files, one per line
with its class ID. The list comes from --data, --classes or
YOLOCHECK_CLASSES, in that order, and falls back to the built-in default.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for i, name := range names {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", i, name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classesCmd)
}
