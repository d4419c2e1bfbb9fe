package domain

// IssueKind classifies a non-valid outcome of a validation run
type IssueKind int

const (
	IssueSplitMissing IssueKind = iota
	IssueOrphan
	IssueCorruptImage
	IssueMalformedAnnotation
	IssueDeleteFailed
)

func (k IssueKind) String() string {
	switch k {
	case IssueSplitMissing:
		return "split_missing"
	case IssueOrphan:
		return "orphan"
	case IssueCorruptImage:
		return "corrupt_image"
	case IssueMalformedAnnotation:
		return "malformed_annotation"
	case IssueDeleteFailed:
		return "delete_failed"
	default:
		return "unknown"
	}
}

// MarshalText renders the kind by name in JSON output
func (k IssueKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Issue records one recovered failure
type Issue struct {
	Kind     IssueKind `json:"kind"`
	Split    string    `json:"split"`
	Basename string    `json:"basename,omitempty"`
	Path     string    `json:"path,omitempty"`
	Detail   string    `json:"detail,omitempty"`
}

// ImageSize is the decoded size of an image in pixels
type ImageSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// SplitCounts holds the per-split share of the run totals
type SplitCounts struct {
	Skipped       bool `json:"skipped"`
	Candidates    int  `json:"candidates"`
	ValidImages   int  `json:"valid_images"`
	ValidLabels   int  `json:"valid_labels"`
	ValidObjects  int  `json:"valid_objects"`
	RemovedImages int  `json:"removed_images"`
	RemovedLabels int  `json:"removed_labels"`
}

// RunStatistics accumulates the outcome of one validation run
type RunStatistics struct {
	ClassNames     []string                `json:"class_names"`
	DryRun         bool                    `json:"dry_run"`
	ValidImages    int                     `json:"valid_images"`
	ValidLabels    int                     `json:"valid_labels"`
	ValidObjects   int                     `json:"valid_objects"`
	RemovedImages  int                     `json:"removed_images"`
	RemovedLabels  int                     `json:"removed_labels"`
	BytesRemoved   int64                   `json:"bytes_removed"`
	ClassCounts    []int                   `json:"class_counts"` // indexed by class
	MissingPairs   []string                `json:"missing_pairs"`
	CorruptedFiles []string                `json:"corrupted_files"`
	ImageSizes     []ImageSize             `json:"image_sizes"`
	Splits         map[string]*SplitCounts `json:"splits"`
	Issues         []Issue                 `json:"issues"`
}

// NewRunStatistics creates an empty accumulator with every class seeded to zero
func NewRunStatistics(classNames []string) *RunStatistics {
	names := make([]string, len(classNames))
	copy(names, classNames)
	return &RunStatistics{
		ClassNames:     names,
		ClassCounts:    make([]int, len(names)),
		MissingPairs:   []string{},
		CorruptedFiles: []string{},
		ImageSizes:     []ImageSize{},
		Splits:         make(map[string]*SplitCounts),
		Issues:         []Issue{},
	}
}

// Split returns the counters for a split, creating them on first use
func (s *RunStatistics) Split(name string) *SplitCounts {
	counts, ok := s.Splits[name]
	if !ok {
		counts = &SplitCounts{}
		s.Splits[name] = counts
	}
	return counts
}

// CreditLabel adds a fully valid pair to the totals
func (s *RunStatistics) CreditLabel(split string, annotations []Annotation) {
	counts := s.Split(split)
	for _, a := range annotations {
		s.ClassCounts[a.Class]++
	}
	s.ValidObjects += len(annotations)
	s.ValidImages++
	s.ValidLabels++
	counts.ValidObjects += len(annotations)
	counts.ValidImages++
	counts.ValidLabels++
}

// AddIssue appends a recovered failure to the run log
func (s *RunStatistics) AddIssue(issue Issue) {
	s.Issues = append(s.Issues, issue)
}

// TotalClassObjects sums the per-class counts
func (s *RunStatistics) TotalClassObjects() int {
	total := 0
	for _, c := range s.ClassCounts {
		total += c
	}
	return total
}

// SizeSummary describes the spread of recorded image sizes
type SizeSummary struct {
	Count      int     `json:"count"`
	MinWidth   int     `json:"min_width"`
	MaxWidth   int     `json:"max_width"`
	MinHeight  int     `json:"min_height"`
	MaxHeight  int     `json:"max_height"`
	MeanWidth  float64 `json:"mean_width"`
	MeanHeight float64 `json:"mean_height"`
}

// SizeSummary computes min/max/mean over all recorded sizes.
// ok is false when no image was recorded.
func (s *RunStatistics) SizeSummary() (summary SizeSummary, ok bool) {
	if len(s.ImageSizes) == 0 {
		return SizeSummary{}, false
	}

	first := s.ImageSizes[0]
	summary = SizeSummary{
		Count:     len(s.ImageSizes),
		MinWidth:  first.Width,
		MaxWidth:  first.Width,
		MinHeight: first.Height,
		MaxHeight: first.Height,
	}
	var sumW, sumH float64
	for _, size := range s.ImageSizes {
		summary.MinWidth = min(summary.MinWidth, size.Width)
		summary.MaxWidth = max(summary.MaxWidth, size.Width)
		summary.MinHeight = min(summary.MinHeight, size.Height)
		summary.MaxHeight = max(summary.MaxHeight, size.Height)
		sumW += float64(size.Width)
		sumH += float64(size.Height)
	}
	summary.MeanWidth = sumW / float64(len(s.ImageSizes))
	summary.MeanHeight = sumH / float64(len(s.ImageSizes))
	return summary, true
}

// ClassShare is one row of the class distribution
type ClassShare struct {
	Class   int     `json:"class"`
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// ClassDistribution lists every class in configured order with its share of
// all valid objects. Percentages are zero when there are no objects.
func (s *RunStatistics) ClassDistribution() []ClassShare {
	total := s.TotalClassObjects()
	shares := make([]ClassShare, len(s.ClassNames))
	for i, name := range s.ClassNames {
		share := ClassShare{Class: i, Name: name, Count: s.ClassCounts[i]}
		if total > 0 {
			share.Percent = float64(share.Count) / float64(total) * 100
		}
		shares[i] = share
	}
	return shares
}
