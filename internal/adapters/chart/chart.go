package chart

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"yolocheck/internal/domain"
)

const (
	chartWidth  = 8 * vg.Inch
	chartHeight = 4 * vg.Inch
)

// supported output formats, keyed by file extension
var formats = map[string]bool{"png": true, "svg": true, "pdf": true, "jpg": true, "jpeg": true}

// ClassDistribution builds a bar chart of valid objects per class
func ClassDistribution(stats *domain.RunStatistics) (*plot.Plot, error) {
	if len(stats.ClassNames) == 0 {
		return nil, fmt.Errorf("no classes to plot")
	}

	values := make(plotter.Values, len(stats.ClassCounts))
	for i, c := range stats.ClassCounts {
		values[i] = float64(c)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Class distribution (%d objects)", stats.TotalClassObjects())
	p.Y.Label.Text = "Objects"
	p.Y.Min = 0

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return nil, fmt.Errorf("failed to build bar chart: %w", err)
	}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(stats.ClassNames...)

	return p, nil
}

// Write renders the class chart to w in the given format (png, svg, pdf, jpg)
func Write(w io.Writer, stats *domain.RunStatistics, format string) error {
	format = strings.ToLower(format)
	if !formats[format] {
		return fmt.Errorf("unsupported chart format %q", format)
	}

	p, err := ClassDistribution(stats)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(chartWidth, chartHeight, format)
	if err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	return nil
}

// FormatFromPath derives the chart format from a file extension
func FormatFromPath(path string) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if !formats[ext] {
		return "", fmt.Errorf("unsupported chart extension %q (use .png, .svg, .pdf or .jpg)", filepath.Ext(path))
	}
	return ext, nil
}
