package config

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"remapper/internal/match"
)

// ThresholdTable is the YAML form of match.Thresholds.
type ThresholdTable []match.Bucket

type bucketYAML struct {
	MinSize int     `yaml:"min_size"`
	Percent float64 `yaml:"percent"`
}

// UnmarshalYAML accepts either a size -> percent mapping or a list of
// {min_size, percent} entries. The table is sorted by size; validation is
// left to Validate.
func (t *ThresholdTable) UnmarshalYAML(node *yaml.Node) error {
	var out ThresholdTable

	switch node.Kind {
	case yaml.MappingNode:
		var table map[int]float64

		err := node.Decode(&table)
		if err != nil {
			return err
		}

		for size, pct := range table {
			out = append(out, match.Bucket{MinSize: size, Percent: pct})
		}

	case yaml.SequenceNode:
		var list []bucketYAML

		err := node.Decode(&list)
		if err != nil {
			return err
		}

		for _, b := range list {
			out = append(out, match.Bucket{MinSize: b.MinSize, Percent: b.Percent})
		}

	default:
		return fmt.Errorf("line %d: expected mapping or list of thresholds", node.Line)
	}

	slices.SortStableFunc(out, func(a, b match.Bucket) int { return a.MinSize - b.MinSize })

	if out == nil {
		out = ThresholdTable{}
	}

	*t = out

	return nil
}

// MarshalYAML writes the table as a list.
func (t ThresholdTable) MarshalYAML() (any, error) {
	list := make([]bucketYAML, len(t))
	for i, b := range t {
		list[i] = bucketYAML{MinSize: b.MinSize, Percent: b.Percent}
	}

	return list, nil
}
