package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yolocheck/internal/domain"
)

func sampleStats() *domain.RunStatistics {
	stats := domain.NewRunStatistics(domain.DefaultClassNames)
	stats.CreditLabel(domain.SplitTrain, []domain.Annotation{{Class: 0}, {Class: 1}})
	stats.ImageSizes = append(stats.ImageSizes, domain.ImageSize{Width: 200, Height: 100}, domain.ImageSize{Width: 201, Height: 100})
	stats.RemovedImages = 1
	stats.BytesRemoved = 2048
	stats.MissingPairs = append(stats.MissingPairs, "b")
	stats.CorruptedFiles = append(stats.CorruptedFiles, "/ds/labels/train/c.txt")
	stats.Split(domain.SplitTest).Skipped = true
	stats.AddIssue(domain.Issue{Kind: domain.IssueOrphan, Split: "train", Basename: "b", Path: "/ds/images/train/b.png", Detail: "image without label"})
	return stats
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, "/ds", sampleStats(), Options{Verbose: true}))
	out := buf.String()

	for _, want := range []string{
		"Dataset validation: /ds",
		"Image Size Analysis:",
		"  Min Width: 200, Max Width: 201",
		"  Min Height: 100, Max Height: 100",
		"  Avg Width: 200.50, Avg Height: 100.00",
		"Class Distribution:",
		"  pistol: 1 (50.00%)",
		"  smartphone: 1 (50.00%)",
		"  card: 0 (0.00%)",
		"Valid images: 1",
		"Valid objects: 2",
		"Removed images: 1",
		"Reclaimed: 2.0 KiB",
		"Corrupted files: 1 removed",
		"test: skipped",
		"[orphan] train: image without label (/ds/images/train/b.png)",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "\x1b[", "unstyled output must not contain escape codes")
	assert.NotContains(t, out, "Dry run")
}

func TestWriteText_EmptyRun(t *testing.T) {
	var buf bytes.Buffer
	stats := domain.NewRunStatistics([]string{"a", "b"})
	stats.DryRun = true
	require.NoError(t, WriteText(&buf, "/ds", stats, Options{}))
	out := buf.String()

	assert.Contains(t, out, "No image sizes found.")
	assert.Contains(t, out, "  a: 0 (0.00%)")
	assert.Contains(t, out, "  b: 0 (0.00%)")
	assert.Contains(t, out, "Dry run")
	assert.NotContains(t, out, "Corrupted files")
	assert.NotContains(t, out, "Issues:")
	assert.False(t, strings.Contains(out, "NaN"))
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, NewDocument("run-1", "/ds", sampleStats())))

	var decoded struct {
		RunID string `json:"run_id"`
		Sizes struct {
			MeanWidth float64 `json:"mean_width"`
		} `json:"sizes"`
		Distribution []domain.ClassShare `json:"class_distribution"`
		Stats        struct {
			ValidObjects int `json:"valid_objects"`
			Issues       []struct {
				Kind string `json:"kind"`
			} `json:"issues"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "run-1", decoded.RunID)
	assert.InDelta(t, 200.5, decoded.Sizes.MeanWidth, 1e-9)
	assert.Len(t, decoded.Distribution, len(domain.DefaultClassNames))
	assert.Equal(t, 2, decoded.Stats.ValidObjects)
	require.Len(t, decoded.Stats.Issues, 1)
	assert.Equal(t, "orphan", decoded.Stats.Issues[0].Kind)
}

func TestWriteJSON_NoSizes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, NewDocument("", "/ds", domain.NewRunStatistics([]string{"a"}))))
	assert.Contains(t, buf.String(), `"sizes": null`)
	assert.NotContains(t, buf.String(), "run_id")
}
