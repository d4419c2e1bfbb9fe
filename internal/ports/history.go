package ports

import (
	"context"

	"yolocheck/internal/domain"
)

// RunHistory persists summaries of past validation runs
type RunHistory interface {
	Record(ctx context.Context, record domain.RunRecord) error
	List(ctx context.Context, limit int) ([]domain.RunRecord, error)
	Close() error
}
