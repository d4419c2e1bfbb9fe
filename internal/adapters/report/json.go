package report

import (
	"io"

	"github.com/goccy/go-json"

	"yolocheck/internal/domain"
)

// Document is the machine-readable form of a run
type Document struct {
	RunID        string                `json:"run_id,omitempty"`
	BaseDir      string                `json:"base_dir"`
	Sizes        *domain.SizeSummary   `json:"sizes"`
	Distribution []domain.ClassShare   `json:"class_distribution"`
	Stats        *domain.RunStatistics `json:"stats"`
}

// NewDocument derives the JSON document for a finished run
func NewDocument(runID, baseDir string, stats *domain.RunStatistics) Document {
	doc := Document{
		RunID:        runID,
		BaseDir:      baseDir,
		Distribution: stats.ClassDistribution(),
		Stats:        stats,
	}
	if summary, ok := stats.SizeSummary(); ok {
		doc.Sizes = &summary
	}
	return doc
}

// WriteJSON writes the document as indented JSON
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
