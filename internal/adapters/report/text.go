package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"yolocheck/internal/adapters/tui/styles"
	"yolocheck/internal/domain"
)

// Options controls text rendering
type Options struct {
	Styled  bool // apply lipgloss styles (terminal output)
	Verbose bool // list every recorded issue
}

// errWriter keeps the first write error so rendering code stays linear
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

type renderer struct {
	ew   *errWriter
	opts Options
}

func (r *renderer) style(s lipgloss.Style, text string) string {
	if !r.opts.Styled {
		return text
	}
	return s.Render(text)
}

func (r *renderer) section(title string) {
	r.ew.printf("\n%s\n", r.style(styles.Section, title+":"))
}

func (r *renderer) line(label string, format string, args ...any) {
	r.ew.printf("  %s %s\n", r.style(styles.Label, label+":"), r.style(styles.Value, fmt.Sprintf(format, args...)))
}

// WriteText renders the human-readable report for a finished run
func WriteText(w io.Writer, baseDir string, stats *domain.RunStatistics, opts Options) error {
	r := &renderer{ew: &errWriter{w: w}, opts: opts}

	r.ew.printf("%s\n", r.style(styles.Title, "Dataset validation: "+baseDir))
	if stats.DryRun {
		r.ew.printf("%s\n", r.style(styles.WarningMsg, "Dry run: nothing was deleted, removal counts are what would be removed."))
	}

	r.writeSizes(stats)
	r.writeClasses(stats)
	r.writeTotals(stats)
	r.writeSplits(stats)
	if opts.Verbose {
		r.writeIssues(stats)
	}
	return r.ew.err
}

func (r *renderer) writeSizes(stats *domain.RunStatistics) {
	summary, ok := stats.SizeSummary()
	if !ok {
		r.ew.printf("\n%s\n", r.style(styles.MutedText, "No image sizes found."))
		return
	}
	r.section("Image Size Analysis")
	r.ew.printf("  Min Width: %d, Max Width: %d\n", summary.MinWidth, summary.MaxWidth)
	r.ew.printf("  Min Height: %d, Max Height: %d\n", summary.MinHeight, summary.MaxHeight)
	r.ew.printf("  Avg Width: %.2f, Avg Height: %.2f\n", summary.MeanWidth, summary.MeanHeight)
}

func (r *renderer) writeClasses(stats *domain.RunStatistics) {
	r.section("Class Distribution")
	for _, share := range stats.ClassDistribution() {
		r.ew.printf("  %s: %d (%.2f%%)\n", share.Name, share.Count, share.Percent)
	}
}

func (r *renderer) writeTotals(stats *domain.RunStatistics) {
	r.section("Final Report")
	r.line("Valid images", "%d", stats.ValidImages)
	r.line("Valid labels", "%d", stats.ValidLabels)
	r.line("Valid objects", "%d", stats.ValidObjects)
	r.line("Removed images", "%d", stats.RemovedImages)
	r.line("Removed labels", "%d", stats.RemovedLabels)
	r.line("Reclaimed", "%s", humanize.IBytes(uint64(stats.BytesRemoved)))
	if len(stats.MissingPairs) > 0 {
		r.line("Missing pairs", "%d", len(stats.MissingPairs))
	}

	if n := len(stats.CorruptedFiles); n > 0 {
		verb := "removed"
		if stats.DryRun {
			verb = "to remove"
		}
		r.ew.printf("\n%s\n", r.style(styles.ErrorMsg, fmt.Sprintf("Corrupted files: %d %s", n, verb)))
	}
}

func (r *renderer) writeSplits(stats *domain.RunStatistics) {
	r.section("Splits")
	for _, name := range []string{domain.SplitTrain, domain.SplitTest} {
		counts, ok := stats.Splits[name]
		if !ok {
			continue
		}
		if counts.Skipped {
			r.ew.printf("  %s: %s\n", name, r.style(styles.WarningMsg, "skipped"))
			continue
		}
		r.ew.printf("  %s: %d candidates, %d valid pairs, %d objects, %d images and %d labels removed\n",
			name, counts.Candidates, counts.ValidImages, counts.ValidObjects, counts.RemovedImages, counts.RemovedLabels)
	}
}

func (r *renderer) writeIssues(stats *domain.RunStatistics) {
	if len(stats.Issues) == 0 {
		return
	}
	r.section("Issues")
	for _, issue := range stats.Issues {
		kind := r.style(styles.IssueStyle(issue.Kind), "["+issue.Kind.String()+"]")
		switch {
		case issue.Path != "":
			r.ew.printf("  %s %s: %s (%s)\n", kind, issue.Split, issue.Detail, issue.Path)
		default:
			r.ew.printf("  %s %s: %s\n", kind, issue.Split, issue.Detail)
		}
	}
}
