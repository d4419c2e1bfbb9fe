package cmd

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"

	"yolocheck/internal/application"
	"yolocheck/internal/domain"
)

// progressObserver draws one progress bar per split
type progressObserver struct {
	out io.Writer
	bar *progressbar.ProgressBar
}

var _ application.Observer = (*progressObserver)(nil)

func newProgressObserver(out io.Writer) *progressObserver {
	return &progressObserver{out: out}
}

func (p *progressObserver) SplitStarted(split string, candidates int) {
	p.finish()
	p.bar = progressbar.NewOptions(candidates,
		progressbar.OptionSetWriter(p.out),
		progressbar.OptionSetDescription(fmt.Sprintf("%-5s", split)),
		progressbar.OptionShowCount(),
		progressbar.OptionSetItsString("pairs"),
		progressbar.OptionShowIts(),
		progressbar.OptionClearOnFinish(),
	)
}

func (p *progressObserver) PairDone(string, domain.FilePair) {
	if p.bar != nil {
		_ = p.bar.Add(1)
	}
}

func (p *progressObserver) finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
		p.bar = nil
	}
}
