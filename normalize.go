package viral

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ColumnStats holds the per-column statistics used for standardization.
type ColumnStats struct {
	Mean   []float64 // μ per column
	StdDev []float64 // population σ per column (divide by N)
}

// Standardize rescales every column of X to zero mean and unit
// variance: each entry becomes (x − μ) / σ with μ and σ computed over
// ALL rows of X.
//
// σ is the population standard deviation (divide by N, not N−1). The
// statistics deliberately cover train and test rows together, before
// any split, to match the source analysis exactly. That is a known
// data-leakage pattern; see the package documentation.
//
// X is not modified. Returns ErrDegenerateColumn when any column has
// σ = 0, since the division is undefined for a constant column.
func Standardize(X *mat.Dense) (*mat.Dense, ColumnStats, error) {
	rows, cols := X.Dims()
	if rows == 0 {
		return nil, ColumnStats{}, fmt.Errorf("standardize: %w", ErrEmptyDataset)
	}

	stats := ColumnStats{
		Mean:   make([]float64, cols),
		StdDev: make([]float64, cols),
	}

	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, X)
		stats.Mean[j] = stat.Mean(col, nil)
		stats.StdDev[j] = stat.PopStdDev(col, nil)
		if stats.StdDev[j] == 0 {
			return nil, ColumnStats{}, fmt.Errorf("column %d (%s): %w",
				j, columnName(j), ErrDegenerateColumn)
		}
	}

	Z := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			Z.Set(i, j, (X.At(i, j)-stats.Mean[j])/stats.StdDev[j])
		}
	}
	return Z, stats, nil
}

func columnName(j int) string {
	if j >= 0 && j < len(FeatureNames) {
		return FeatureNames[j]
	}
	return "unknown"
}
