package viral

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Split holds the disjoint train/test partitions. Row i of XTrain
// pairs with YTrain[i] (and likewise for the test side): the shuffle
// permutes whole (vector, label) rows, never features and labels
// independently.
type Split struct {
	XTrain *mat.Dense
	YTrain []int
	XTest  *mat.Dense
	YTest  []int
}

// TrainTestSplit shuffles the rows of X (and y, in lockstep) with a
// deterministic seeded permutation and partitions them into a test set
// of ceil(N·testRatio) rows and a training set of the remainder.
//
// The same seed over the same data always produces the same partition.
// The split is static once drawn: the returned matrices are copies,
// detached from X.
func TrainTestSplit(X *mat.Dense, y []int, testRatio float64, seed int64) (Split, error) {
	rows, cols := X.Dims()
	if rows == 0 {
		return Split{}, fmt.Errorf("split: %w", ErrEmptyDataset)
	}
	if rows != len(y) {
		return Split{}, fmt.Errorf("split: %d feature rows but %d labels", rows, len(y))
	}
	if testRatio <= 0 || testRatio >= 1 {
		return Split{}, fmt.Errorf("split: test ratio %.3f outside (0, 1)", testRatio)
	}

	nTest := int(math.Ceil(float64(rows) * testRatio))
	nTrain := rows - nTest
	if nTrain < 1 {
		return Split{}, fmt.Errorf("split: test ratio %.3f leaves no training rows", testRatio)
	}

	perm := rand.New(rand.NewSource(seed)).Perm(rows)

	s := Split{
		XTrain: mat.NewDense(nTrain, cols, nil),
		YTrain: make([]int, nTrain),
		XTest:  mat.NewDense(nTest, cols, nil),
		YTest:  make([]int, nTest),
	}

	row := make([]float64, cols)
	for i, src := range perm[:nTest] {
		mat.Row(row, src, X)
		s.XTest.SetRow(i, row)
		s.YTest[i] = y[src]
	}
	for i, src := range perm[nTest:] {
		mat.Row(row, src, X)
		s.XTrain.SetRow(i, row)
		s.YTrain[i] = y[src]
	}

	return s, nil
}
