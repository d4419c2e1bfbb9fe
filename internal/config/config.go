package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"yolocheck/internal/domain"
)

const DefaultDatasetPath = "dataset"

// DatasetPath returns the dataset path from YOLOCHECK_DATASET env var,
// falling back to DefaultDatasetPath.
func DatasetPath() string {
	if env := os.Getenv("YOLOCHECK_DATASET"); env != "" {
		return env
	}
	return DefaultDatasetPath
}

// ClassNames returns the class vocabulary from YOLOCHECK_CLASSES
// (comma-separated), falling back to domain.DefaultClassNames.
func ClassNames() []string {
	if env := os.Getenv("YOLOCHECK_CLASSES"); env != "" {
		if names := domain.ParseClassList(env); len(names) > 0 {
			return names
		}
	}
	names := make([]string, len(domain.DefaultClassNames))
	copy(names, domain.DefaultClassNames)
	return names
}

// HistoryPath returns the run history database from YOLOCHECK_HISTORY, or "" when unset
func HistoryPath() string {
	return os.Getenv("YOLOCHECK_HISTORY")
}

// datasetYAML is the subset of a YOLO data.yaml that carries the vocabulary.
// names is either a list or an index-to-name mapping.
type datasetYAML struct {
	NC    *int      `yaml:"nc"`
	Names yaml.Node `yaml:"names"`
}

// LoadClassNames reads the ordered class list from a YOLO data.yaml
func LoadClassNames(fs afero.Fs, path string) ([]string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc datasetYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	names, err := decodeNames(&doc.Names)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if doc.NC != nil && *doc.NC != len(names) {
		return nil, fmt.Errorf("%s: nc is %d but %d names are listed", path, *doc.NC, len(names))
	}
	if err := domain.ValidateClassNames(names); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return names, nil
}

func decodeNames(node *yaml.Node) ([]string, error) {
	switch node.Kind {
	case yaml.SequenceNode:
		var names []string
		if err := node.Decode(&names); err != nil {
			return nil, fmt.Errorf("invalid names list: %w", err)
		}
		return names, nil

	case yaml.MappingNode:
		var byIndex map[int]string
		if err := node.Decode(&byIndex); err != nil {
			return nil, fmt.Errorf("invalid names mapping: %w", err)
		}
		indices := make([]int, 0, len(byIndex))
		for i := range byIndex {
			indices = append(indices, i)
		}
		sort.Ints(indices)
		names := make([]string, len(indices))
		for pos, i := range indices {
			if i != pos {
				return nil, fmt.Errorf("names mapping is missing class %d", pos)
			}
			names[pos] = byIndex[i]
		}
		return names, nil

	case 0:
		return nil, fmt.Errorf("no names defined")

	default:
		return nil, fmt.Errorf("names must be a list or a mapping")
	}
}
