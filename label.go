package viral

import (
	"fmt"
	"sort"
)

// Median returns the statistical median of values: the middle element
// for odd-length input, the average of the two middle elements for
// even-length input. The input slice is not modified.
//
// Returns ErrEmptyDataset for empty input.
func Median(values []float64) (float64, error) {
	n := len(values)
	if n == 0 {
		return 0, ErrEmptyDataset
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	if n%2 == 1 {
		return sorted[n/2], nil
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2, nil
}

// Labels derives the binary virality label for every record:
//
//	label = 1  iff  count ≥ median(counts)
//
// The median is computed once over the full input and is fixed for all
// records. Labels come back in input order, so labels[i] always pairs
// with counts[i].
func Labels(counts []float64) ([]int, float64, error) {
	median, err := Median(counts)
	if err != nil {
		return nil, 0, fmt.Errorf("building labels: %w", err)
	}

	labels := make([]int, len(counts))
	for i, c := range counts {
		if c >= median {
			labels[i] = 1
		}
	}
	return labels, median, nil
}

// LabelCounts tallies the two classes.
func LabelCounts(labels []int) (viral, notViral int) {
	for _, l := range labels {
		if l == 1 {
			viral++
		} else {
			notViral++
		}
	}
	return viral, notViral
}
