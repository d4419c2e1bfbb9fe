package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"yolocheck/internal/application"
	"yolocheck/internal/domain"
	"yolocheck/internal/ports"
)

// ValidateResult contains the result of a validation run
type ValidateResult struct {
	RunID     string
	BaseDir   string
	StartedAt time.Time
	Stats     *domain.RunStatistics
	Message   string
}

// ValidateCommand validates (and cleans) a dataset directory
type ValidateCommand struct {
	store   ports.DatasetStore
	decoder ports.ImageDecoder
	history ports.RunHistory // optional

	BaseDir    string
	ClassNames []string
	DryRun     bool
	Logger     zerolog.Logger
	Observer   application.Observer
}

// NewValidateCommand creates a new ValidateCommand. history may be nil.
func NewValidateCommand(store ports.DatasetStore, decoder ports.ImageDecoder, history ports.RunHistory, baseDir string, classNames []string) *ValidateCommand {
	return &ValidateCommand{
		store:      store,
		decoder:    decoder,
		history:    history,
		BaseDir:    baseDir,
		ClassNames: classNames,
		Logger:     zerolog.Nop(),
	}
}

// Validate checks if the command inputs are valid
func (c *ValidateCommand) Validate() error {
	if err := application.ValidateRequired("baseDir", c.BaseDir); err != nil {
		return err
	}
	return application.ValidateVocabulary("classNames", c.ClassNames)
}

// Execute runs the validation. The statistics are returned even when the run
// was interrupted; err is then the context error.
func (c *ValidateCommand) Execute(ctx context.Context) (*ValidateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	result := &ValidateResult{
		RunID:     uuid.NewString(),
		BaseDir:   c.BaseDir,
		StartedAt: time.Now().UTC(),
	}
	log := c.Logger.With().Str("run_id", result.RunID).Logger()

	opts := []application.Option{
		application.WithLogger(log),
		application.WithDryRun(c.DryRun),
	}
	if c.Observer != nil {
		opts = append(opts, application.WithObserver(c.Observer))
	}
	validator := application.NewValidator(c.store, c.decoder, c.ClassNames, opts...)

	stats, err := validator.Run(ctx, domain.NewDatasetRoot(c.BaseDir))
	result.Stats = stats
	if err != nil {
		return result, fmt.Errorf("validation of %s interrupted: %w", c.BaseDir, err)
	}

	if c.history != nil {
		record := domain.NewRunRecord(result.RunID, c.BaseDir, result.StartedAt, stats)
		if err := c.history.Record(ctx, record); err != nil {
			// The dataset has already been cleaned; losing the ledger entry is not fatal
			log.Warn().Err(err).Msg("failed to record run history")
		}
	}

	result.Message = summarize(stats)
	return result, nil
}

func summarize(stats *domain.RunStatistics) string {
	verb := "removed"
	if stats.DryRun {
		verb = "would remove"
	}
	return fmt.Sprintf("%d valid pairs (%d objects); %s %d images and %d labels",
		stats.ValidImages, stats.ValidObjects, verb, stats.RemovedImages, stats.RemovedLabels)
}
