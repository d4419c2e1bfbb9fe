package domain

import "time"

// RunRecord is the persisted summary of one validation run
type RunRecord struct {
	ID             string    `json:"id"`
	StartedAt      time.Time `json:"started_at"`
	BaseDir        string    `json:"base_dir"`
	DryRun         bool      `json:"dry_run"`
	ValidImages    int       `json:"valid_images"`
	ValidLabels    int       `json:"valid_labels"`
	ValidObjects   int       `json:"valid_objects"`
	RemovedImages  int       `json:"removed_images"`
	RemovedLabels  int       `json:"removed_labels"`
	BytesRemoved   int64     `json:"bytes_removed"`
	MissingPairs   int       `json:"missing_pairs"`
	CorruptedFiles int       `json:"corrupted_files"`
}

// NewRunRecord summarises finished statistics for the history ledger
func NewRunRecord(id, baseDir string, startedAt time.Time, stats *RunStatistics) RunRecord {
	return RunRecord{
		ID:             id,
		StartedAt:      startedAt,
		BaseDir:        baseDir,
		DryRun:         stats.DryRun,
		ValidImages:    stats.ValidImages,
		ValidLabels:    stats.ValidLabels,
		ValidObjects:   stats.ValidObjects,
		RemovedImages:  stats.RemovedImages,
		RemovedLabels:  stats.RemovedLabels,
		BytesRemoved:   stats.BytesRemoved,
		MissingPairs:   len(stats.MissingPairs),
		CorruptedFiles: len(stats.CorruptedFiles),
	}
}
