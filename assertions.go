package viral

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// AssertionConfig contains tolerances for pipeline properties.
type AssertionConfig struct {
	// Maximum distance from 0 for a standardized column mean
	MeanTolerance float64

	// Maximum distance from 1 for a standardized column stddev
	StdDevTolerance float64
}

// DefaultAssertionConfig returns floating-point tolerances suitable
// for datasets up to a few hundred thousand rows.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		MeanTolerance:   1e-9,
		StdDevTolerance: 1e-9,
	}
}

// AssertStandardized verifies every column of X has mean ≈ 0 and
// population standard deviation ≈ 1.
//
// Mathematical property:
//
//	mean((x−μ)/σ) = 0 and popstddev((x−μ)/σ) = 1
//
// for any column with non-zero variance.
func AssertStandardized(t testing.TB, X *mat.Dense, cfg AssertionConfig) {
	t.Helper()

	rows, cols := X.Dims()
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, X)
		mean := stat.Mean(col, nil)
		sd := stat.PopStdDev(col, nil)

		if math.Abs(mean) > cfg.MeanTolerance {
			t.Errorf("Column %d (%s) not centered: mean = %.3e (tolerance: %.1e)",
				j, columnName(j), mean, cfg.MeanTolerance)
		}
		if math.Abs(sd-1) > cfg.StdDevTolerance {
			t.Errorf("Column %d (%s) not unit variance: stddev = %.12f (tolerance: %.1e)",
				j, columnName(j), sd, cfg.StdDevTolerance)
		}
	}

	t.Logf("✓ Standardized: %d columns centered and scaled over %d rows", cols, rows)
}

// AssertRowCorrespondence verifies the split is a pure row permutation
// of (X, y): every (vector, label) pair in the partitions appears in
// the original pairing exactly as often, and nothing is lost or
// invented. This catches features and labels shuffled independently.
func AssertRowCorrespondence(t testing.TB, s Split, X *mat.Dense, y []int) {
	t.Helper()

	rows, _ := X.Dims()
	if rows != len(y) {
		t.Fatalf("Malformed input: %d feature rows but %d labels", rows, len(y))
	}

	original := make(map[string]int, rows)
	for i := 0; i < rows; i++ {
		original[pairKey(X, i, y[i])]++
	}

	splitRows := 0
	consume := func(side string, M *mat.Dense, labels []int) {
		n, _ := M.Dims()
		splitRows += n
		for i := 0; i < n; i++ {
			key := pairKey(M, i, labels[i])
			if original[key] == 0 {
				t.Errorf("❌ %s row %d: pair %s not in original pairing "+
					"(features and labels shuffled independently?)", side, i, key)
				continue
			}
			original[key]--
		}
	}
	consume("train", s.XTrain, s.YTrain)
	consume("test", s.XTest, s.YTest)

	if splitRows != rows {
		t.Errorf("❌ Split covers %d rows, dataset has %d", splitRows, rows)
	}
	for key, left := range original {
		if left != 0 {
			t.Errorf("❌ Pair %s appears %d more time(s) in the dataset than in the split", key, left)
		}
	}

	t.Logf("✓ Row correspondence: %d (vector, label) pairs preserved across the split", rows)
}

// AssertIdenticalSeries verifies two sweep outputs are exactly equal,
// point for point. Two runs with the same seed and data must satisfy
// this (idempotence).
func AssertIdenticalSeries(t testing.TB, a, b []KAccuracy) {
	t.Helper()

	if len(a) != len(b) {
		t.Fatalf("Series lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("❌ Point %d differs: (k=%d, %.6f) vs (k=%d, %.6f)",
				i, a[i].K, a[i].Accuracy, b[i].K, b[i].Accuracy)
		}
	}

	t.Logf("✓ Idempotent: %d sweep points identical across runs", len(a))
}

// pairKey fingerprints one (feature vector, label) pair.
func pairKey(M *mat.Dense, row, label int) string {
	_, cols := M.Dims()
	key := fmt.Sprintf("%d|", label)
	for j := 0; j < cols; j++ {
		key += fmt.Sprintf("%.12g,", M.At(row, j))
	}
	return key
}
