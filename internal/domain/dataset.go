package domain

import (
	"path/filepath"
	"slices"
	"strings"
)

// Split names, in processing order
const (
	SplitTrain = "train"
	SplitTest  = "test"
)

// LabelExtension is the only accepted annotation file extension (case-sensitive)
const LabelExtension = ".txt"

// ImageExtensions lists accepted image extensions in resolution order
var ImageExtensions = []string{".png", ".jpg", ".jpeg"}

// Split is one independent partition of the dataset
type Split struct {
	Name     string // e.g., "train"
	ImageDir string // <base>/images/<name>
	LabelDir string // <base>/labels/<name>
}

// DatasetRoot is the base directory of a YOLO dataset and its splits
type DatasetRoot struct {
	BaseDir string
	Splits  []Split
}

// NewDatasetRoot derives the train and test splits from a base directory
func NewDatasetRoot(baseDir string) DatasetRoot {
	root := DatasetRoot{BaseDir: baseDir}
	for _, name := range []string{SplitTrain, SplitTest} {
		root.Splits = append(root.Splits, Split{
			Name:     name,
			ImageDir: filepath.Join(baseDir, "images", name),
			LabelDir: filepath.Join(baseDir, "labels", name),
		})
	}
	return root
}

// FilePair joins an image and its label by basename. Either side may be empty.
type FilePair struct {
	Basename  string
	ImagePath string
	LabelPath string
}

// HasImage reports whether an image was resolved for the basename
func (p FilePair) HasImage() bool { return p.ImagePath != "" }

// HasLabel reports whether a label was resolved for the basename
func (p FilePair) HasLabel() bool { return p.LabelPath != "" }

// IsOrphan reports whether only one side of the pair is present
func (p FilePair) IsOrphan() bool { return !p.HasImage() || !p.HasLabel() }

// IsImageFile reports whether name has an accepted image extension, ignoring case
func IsImageFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range ImageExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// IsLabelFile reports whether name ends with the exact label extension
func IsLabelFile(name string) bool {
	return strings.HasSuffix(name, LabelExtension)
}

// Basename strips the final extension from a file name
func Basename(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// imageRank orders image extensions for resolution; lower wins.
func imageRank(name string) int {
	ext := filepath.Ext(name)
	for i, allowed := range ImageExtensions {
		if ext == allowed {
			return i
		}
	}
	// Upper or mixed case variants rank after every exact match
	lower := strings.ToLower(ext)
	for i, allowed := range ImageExtensions {
		if lower == allowed {
			return len(ImageExtensions) + i
		}
	}
	return -1
}

// PairFiles builds one FilePair per candidate basename from directory listings.
// imageNames and labelNames are plain file names; the result is sorted by basename.
// Image extensions match case-insensitively, so a.PNG pairs with a.txt on any filesystem.
// When several images share a basename the one with the preferred extension wins.
func PairFiles(imageDir, labelDir string, imageNames, labelNames []string) []FilePair {
	images := make(map[string]string)
	for _, name := range imageNames {
		if !IsImageFile(name) {
			continue
		}
		base := Basename(name)
		if current, ok := images[base]; ok && imageRank(current) <= imageRank(name) {
			continue
		}
		images[base] = name
	}

	labels := make(map[string]string)
	for _, name := range labelNames {
		if IsLabelFile(name) {
			labels[Basename(name)] = name
		}
	}

	seen := make(map[string]struct{}, len(images)+len(labels))
	var bases []string
	for base := range images {
		seen[base] = struct{}{}
		bases = append(bases, base)
	}
	for base := range labels {
		if _, ok := seen[base]; !ok {
			bases = append(bases, base)
		}
	}
	slices.Sort(bases)

	pairs := make([]FilePair, 0, len(bases))
	for _, base := range bases {
		pair := FilePair{Basename: base}
		if name, ok := images[base]; ok {
			pair.ImagePath = filepath.Join(imageDir, name)
		}
		if name, ok := labels[base]; ok {
			pair.LabelPath = filepath.Join(labelDir, name)
		}
		pairs = append(pairs, pair)
	}
	return pairs
}
