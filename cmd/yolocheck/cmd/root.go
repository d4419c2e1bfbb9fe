package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"yolocheck/internal/adapters/filesystem"
	"yolocheck/internal/adapters/imagecheck"
	"yolocheck/internal/adapters/sqlite"
	"yolocheck/internal/config"
	"yolocheck/internal/domain"
	"yolocheck/internal/ports"
)

var (
	datasetPath string
	classList   string
	dataYAML    string
	logLevel    string
	historyDB   string
	recordRuns  bool

	logger  zerolog.Logger
	store   ports.DatasetStore
	decoder ports.ImageDecoder
	names   []string
)

var rootCmd = &cobra.Command{
	Use:   "yolocheck",
	Short: "Validate and clean YOLO object-detection datasets",
	Long: `yolocheck checks a YOLO dataset laid out as images/{train,test} and
labels/{train,test}. Orphaned files, undecodable images and malformed
label files are deleted, and a report with image sizes, class
distribution and totals is printed.

Run without a subcommand it behaves like "yolocheck validate".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		level, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
			Level(level).
			With().Timestamp().Logger()

		datasetPath = filesystem.ExpandHome(datasetPath)
		store = filesystem.NewOSStore()
		decoder = imagecheck.NewDecoder(true)

		names, err = resolveClassNames()
		return err
	},
	RunE: runValidate,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&datasetPath, "dataset", "d", config.DatasetPath(), "dataset base directory (env YOLOCHECK_DATASET)")
	rootCmd.PersistentFlags().StringVar(&classList, "classes", "", "comma-separated class names (env YOLOCHECK_CLASSES)")
	rootCmd.PersistentFlags().StringVar(&dataYAML, "data", "", "YOLO data.yaml to read class names from")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&historyDB, "history-db", config.HistoryPath(), "SQLite run history database (env YOLOCHECK_HISTORY)")
	rootCmd.PersistentFlags().BoolVar(&recordRuns, "record", false, "record runs in the history database, by default "+sqlite.DefaultPath())

	addValidateFlags(rootCmd)
}

// resolveClassNames picks the vocabulary: --data, then --classes, then the environment default
func resolveClassNames() ([]string, error) {
	switch {
	case dataYAML != "":
		return config.LoadClassNames(afero.NewOsFs(), filesystem.ExpandHome(dataYAML))
	case classList != "":
		list := domain.ParseClassList(classList)
		if err := domain.ValidateClassNames(list); err != nil {
			return nil, fmt.Errorf("--classes: %w", err)
		}
		return list, nil
	default:
		return config.ClassNames(), nil
	}
}

// historyPath is --history-db, or the XDG default when it is unset
func historyPath() string {
	if historyDB != "" {
		return filesystem.ExpandHome(historyDB)
	}
	return sqlite.DefaultPath()
}

// openHistory opens the run ledger when --history-db or --record is set; both results are nil otherwise
func openHistory() (ports.RunHistory, error) {
	if historyDB == "" && !recordRuns {
		return nil, nil
	}
	h, err := sqlite.Open(historyPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	return h, nil
}
