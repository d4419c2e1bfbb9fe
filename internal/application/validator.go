package application

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"yolocheck/internal/domain"
	"yolocheck/internal/ports"
)

// Observer receives progress notifications while a run walks a split
type Observer interface {
	SplitStarted(split string, candidates int)
	PairDone(split string, pair domain.FilePair)
}

// Option configures a Validator
type Option func(*Validator)

// WithLogger sets the diagnostic logger
func WithLogger(logger zerolog.Logger) Option {
	return func(v *Validator) { v.log = logger }
}

// WithDryRun reports removals without touching the filesystem
func WithDryRun(dryRun bool) Option {
	return func(v *Validator) { v.dryRun = dryRun }
}

// WithObserver registers a progress observer
func WithObserver(o Observer) Option {
	return func(v *Validator) { v.observer = o }
}

// Validator checks image/label pairs of a YOLO dataset and removes invalid ones
type Validator struct {
	store      ports.DatasetStore
	decoder    ports.ImageDecoder
	classNames []string
	dryRun     bool
	log        zerolog.Logger
	observer   Observer
}

// NewValidator creates a validator for the given class vocabulary.
// The vocabulary length bounds valid class indices.
func NewValidator(store ports.DatasetStore, decoder ports.ImageDecoder, classNames []string, opts ...Option) *Validator {
	v := &Validator{
		store:      store,
		decoder:    decoder,
		classNames: classNames,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Run validates every split of root in order and returns the accumulated
// statistics. Per-file failures never stop the run; only a cancelled ctx does,
// in which case the partial statistics are returned with ctx.Err().
func (v *Validator) Run(ctx context.Context, root domain.DatasetRoot) (*domain.RunStatistics, error) {
	stats := domain.NewRunStatistics(v.classNames)
	stats.DryRun = v.dryRun

	for _, split := range root.Splits {
		if err := v.processSplit(ctx, split, stats); err != nil {
			return stats, err
		}
	}

	v.log.Info().
		Int("valid_images", stats.ValidImages).
		Int("removed_images", stats.RemovedImages).
		Int("removed_labels", stats.RemovedLabels).
		Bool("dry_run", v.dryRun).
		Msg("validation finished")
	return stats, nil
}

func (v *Validator) processSplit(ctx context.Context, split domain.Split, stats *domain.RunStatistics) error {
	log := v.log.With().Str("split", split.Name).Logger()
	counts := stats.Split(split.Name)

	imageNames, labelNames, err := v.listSplit(split)
	if err != nil {
		counts.Skipped = true
		log.Warn().Err(err).Msg("skipping split")
		stats.AddIssue(domain.Issue{
			Kind:   domain.IssueSplitMissing,
			Split:  split.Name,
			Detail: err.Error(),
		})
		return nil
	}

	pairs := domain.PairFiles(split.ImageDir, split.LabelDir, imageNames, labelNames)
	counts.Candidates = len(pairs)
	log.Info().Int("candidates", len(pairs)).Msg("processing split")
	if v.observer != nil {
		v.observer.SplitStarted(split.Name, len(pairs))
	}

	for _, pair := range pairs {
		if err := ctx.Err(); err != nil {
			return err
		}
		v.processPair(split.Name, pair, stats)
		if v.observer != nil {
			v.observer.PairDone(split.Name, pair)
		}
	}
	return nil
}

// listSplit returns a *SplitError when either directory is absent or unreadable
func (v *Validator) listSplit(split domain.Split) (images, labels []string, err error) {
	splitErr := &SplitError{Split: split.Name, ImageDir: split.ImageDir, LabelDir: split.LabelDir}

	imgOK, err := v.store.DirExists(split.ImageDir)
	if err != nil {
		splitErr.Err = err
		return nil, nil, splitErr
	}
	lblOK, err := v.store.DirExists(split.LabelDir)
	if err != nil {
		splitErr.Err = err
		return nil, nil, splitErr
	}
	if !imgOK || !lblOK {
		return nil, nil, splitErr
	}

	if images, err = v.store.ListFiles(split.ImageDir); err != nil {
		splitErr.Err = err
		return nil, nil, splitErr
	}
	if labels, err = v.store.ListFiles(split.LabelDir); err != nil {
		splitErr.Err = err
		return nil, nil, splitErr
	}
	return images, labels, nil
}

func (v *Validator) processPair(split string, pair domain.FilePair, stats *domain.RunStatistics) {
	log := v.log.With().Str("split", split).Str("basename", pair.Basename).Logger()

	if pair.IsOrphan() {
		issue := domain.Issue{Kind: domain.IssueOrphan, Split: split, Basename: pair.Basename}
		if pair.HasImage() {
			issue.Path, issue.Detail = pair.ImagePath, "image without label"
		} else {
			issue.Path, issue.Detail = pair.LabelPath, "label without image"
		}
		log.Debug().Str("path", issue.Path).Msg(issue.Detail)
		stats.AddIssue(issue)
		v.removePair(split, pair, stats)
		stats.MissingPairs = append(stats.MissingPairs, pair.Basename)
		return
	}

	size, err := v.checkImage(pair.ImagePath)
	if err != nil {
		log.Debug().Err(err).Msg("corrupt image")
		stats.CorruptedFiles = append(stats.CorruptedFiles, pair.ImagePath)
		stats.AddIssue(domain.Issue{
			Kind:     domain.IssueCorruptImage,
			Split:    split,
			Basename: pair.Basename,
			Path:     pair.ImagePath,
			Detail:   errorDetail(err),
		})
		v.removePair(split, pair, stats)
		return
	}
	// Recorded before the label is checked so size statistics cover every
	// decodable image, whatever its annotations look like.
	stats.ImageSizes = append(stats.ImageSizes, size)

	annotations, err := v.checkLabel(pair.LabelPath)
	if err != nil {
		log.Debug().Err(err).Msg("malformed annotation")
		stats.CorruptedFiles = append(stats.CorruptedFiles, pair.LabelPath)
		stats.AddIssue(domain.Issue{
			Kind:     domain.IssueMalformedAnnotation,
			Split:    split,
			Basename: pair.Basename,
			Path:     pair.LabelPath,
			Detail:   err.Error(),
		})
		v.removePair(split, pair, stats)
		return
	}

	stats.CreditLabel(split, annotations)
	log.Debug().Int("objects", len(annotations)).Msg("valid pair")
}

func (v *Validator) checkImage(path string) (domain.ImageSize, error) {
	f, err := v.store.Open(path)
	if err != nil {
		return domain.ImageSize{}, &ImageError{Path: path, Err: err}
	}
	defer f.Close()

	w, h, err := v.decoder.Decode(f)
	if err != nil {
		return domain.ImageSize{}, &ImageError{Path: path, Err: err}
	}
	return domain.ImageSize{Width: w, Height: h}, nil
}

func (v *Validator) checkLabel(path string) ([]domain.Annotation, error) {
	f, err := v.store.Open(path)
	if err != nil {
		return nil, &domain.AnnotationError{Reason: err.Error()}
	}
	defer f.Close()

	return domain.ParseLabel(f, len(v.classNames))
}

// removePair removes both sides of a pair independently; a failure on one
// side is logged and recorded and does not stop the other.
func (v *Validator) removePair(split string, pair domain.FilePair, stats *domain.RunStatistics) {
	counts := stats.Split(split)

	if pair.HasImage() {
		if res := v.removeFile(pair.ImagePath); v.account(split, pair, res, stats) {
			stats.RemovedImages++
			counts.RemovedImages++
		}
	}
	if pair.HasLabel() {
		if res := v.removeFile(pair.LabelPath); v.account(split, pair, res, stats) {
			stats.RemovedLabels++
			counts.RemovedLabels++
		}
	}
}

// account logs a removal outcome and reports whether a file was removed
func (v *Validator) account(split string, pair domain.FilePair, res DeleteResult, stats *domain.RunStatistics) bool {
	if res.Err != nil {
		v.log.Warn().Err(res.Err).Str("split", split).Str("path", res.Path).Msg("failed to remove file")
		stats.AddIssue(domain.Issue{
			Kind:     domain.IssueDeleteFailed,
			Split:    split,
			Basename: pair.Basename,
			Path:     res.Path,
			Detail:   res.Err.Error(),
		})
		return false
	}
	if !res.Removed {
		return false
	}
	stats.BytesRemoved += res.Bytes
	v.log.Debug().Str("path", res.Path).Bool("dry_run", v.dryRun).Msg("removed file")
	return true
}

// errorDetail drops the path prefix already carried by the issue
func errorDetail(err error) string {
	var imgErr *ImageError
	if errors.As(err, &imgErr) {
		return imgErr.Err.Error()
	}
	return err.Error()
}
