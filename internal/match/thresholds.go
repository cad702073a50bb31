package match

import (
	"errors"
	"fmt"
	"sort"

	"remapper/internal/common"
)

// Bucket requires Percent similarity for methods whose larger instruction
// list has at least MinSize instructions.
type Bucket struct {
	MinSize int
	Percent float64
}

// Thresholds is a step function from method size to required similarity,
// sorted by ascending MinSize. Smaller methods should require more.
type Thresholds []Bucket

// ErrEmptyThresholds is returned for a threshold table without buckets.
var ErrEmptyThresholds = errors.New("threshold table has no buckets")

// NewThresholds builds a sorted table from size -> percent pairs.
func NewThresholds(table map[int]float64) (Thresholds, error) {
	if len(table) == 0 {
		return nil, ErrEmptyThresholds
	}

	out := make(Thresholds, 0, len(table))
	for size, pct := range table {
		out = append(out, Bucket{MinSize: size, Percent: pct})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].MinSize < out[j].MinSize })

	if err := out.Validate(); err != nil {
		return nil, err
	}

	return out, nil
}

// Validate checks ordering and ranges.
func (t Thresholds) Validate() error {
	if len(t) == 0 {
		return ErrEmptyThresholds
	}

	for i, b := range t {
		if b.MinSize < 0 {
			return fmt.Errorf("bucket %d: negative size %d", i, b.MinSize)
		}

		if !common.IsInRange(0, b.Percent, 100) {
			return fmt.Errorf("bucket %d: percent %v outside [0, 100]", i, b.Percent)
		}

		if i > 0 && t[i-1].MinSize >= b.MinSize {
			return fmt.Errorf("bucket %d: size %d not above previous size %d", i, b.MinSize, t[i-1].MinSize)
		}
	}

	return nil
}

// For returns the required similarity for a method whose larger instruction
// list has size instructions: the bucket with the largest MinSize not above
// size wins. When every bucket is larger than size the first bucket applies.
// A size equal to a bucket key already gets that bucket.
func (t Thresholds) For(size int) float64 {
	if len(t) == 0 {
		return 100
	}

	pct := t[0].Percent
	for _, b := range t {
		if b.MinSize > size {
			break
		}

		pct = b.Percent
	}

	return pct
}

// DefaultThresholds is used when no table is configured.
func DefaultThresholds() Thresholds {
	return Thresholds{
		{MinSize: 0, Percent: 100},
		{MinSize: 10, Percent: 95},
		{MinSize: 25, Percent: 90},
		{MinSize: 100, Percent: 85},
		{MinSize: 500, Percent: 80},
	}
}
