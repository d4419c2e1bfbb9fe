package commands

import (
	"context"
	"fmt"

	"yolocheck/internal/application"
	"yolocheck/internal/domain"
	"yolocheck/internal/ports"
)

// HistoryCommand lists past validation runs
type HistoryCommand struct {
	history ports.RunHistory
	Limit   int
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(history ports.RunHistory, limit int) *HistoryCommand {
	return &HistoryCommand{history: history, Limit: limit}
}

// Validate checks if the history command is valid
func (c *HistoryCommand) Validate() error {
	if c.history == nil {
		return &application.ValidationError{
			Field:   "historyDB",
			Message: "history database is required",
		}
	}
	if c.Limit < 0 {
		return &application.ValidationError{
			Field:   "limit",
			Message: fmt.Sprintf("limit must not be negative, got %d", c.Limit),
		}
	}
	return nil
}

// Execute runs the history command
func (c *HistoryCommand) Execute(ctx context.Context) ([]domain.RunRecord, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	records, err := c.history.List(ctx, c.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return records, nil
}
