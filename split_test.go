package viral

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func numberedMatrix(rows int) (*mat.Dense, []int) {
	X := mat.NewDense(rows, 3, nil)
	y := make([]int, rows)
	for i := 0; i < rows; i++ {
		X.SetRow(i, []float64{float64(i), float64(i * 10), float64(i * 100)})
		y[i] = i % 2
	}
	return X, y
}

func TestTrainTestSplit_PartitionSizes(t *testing.T) {
	X, y := numberedMatrix(10)

	s, err := TrainTestSplit(X, y, 0.2, 1)
	if err != nil {
		t.Fatalf("TrainTestSplit failed: %v", err)
	}

	trainRows, _ := s.XTrain.Dims()
	testRows, _ := s.XTest.Dims()
	if trainRows != 8 || testRows != 2 {
		t.Errorf("❌ Partition is %d/%d, want 8/2 for ratio 0.2 over 10 rows", trainRows, testRows)
	}
	if len(s.YTrain) != trainRows || len(s.YTest) != testRows {
		t.Errorf("❌ Label slices (%d/%d) do not match partition sizes", len(s.YTrain), len(s.YTest))
	}
}

func TestTrainTestSplit_RowCorrespondence(t *testing.T) {
	X, y := numberedMatrix(37)

	s, err := TrainTestSplit(X, y, 0.2, 1)
	if err != nil {
		t.Fatalf("TrainTestSplit failed: %v", err)
	}

	AssertRowCorrespondence(t, s, X, y)
}

func TestTrainTestSplit_DeterministicForFixedSeed(t *testing.T) {
	X, y := numberedMatrix(25)

	a, err := TrainTestSplit(X, y, 0.2, 1)
	if err != nil {
		t.Fatalf("first split failed: %v", err)
	}
	b, err := TrainTestSplit(X, y, 0.2, 1)
	if err != nil {
		t.Fatalf("second split failed: %v", err)
	}

	if !mat.Equal(a.XTrain, b.XTrain) || !mat.Equal(a.XTest, b.XTest) {
		t.Errorf("❌ Same seed drew different feature partitions")
	}
	for i := range a.YTrain {
		if a.YTrain[i] != b.YTrain[i] {
			t.Fatalf("❌ Same seed drew different training labels at row %d", i)
		}
	}
	for i := range a.YTest {
		if a.YTest[i] != b.YTest[i] {
			t.Fatalf("❌ Same seed drew different test labels at row %d", i)
		}
	}
	t.Logf("✓ Split is a pure function of (data, ratio, seed)")
}

func TestTrainTestSplit_DetachedFromSource(t *testing.T) {
	X, y := numberedMatrix(10)

	s, err := TrainTestSplit(X, y, 0.2, 1)
	if err != nil {
		t.Fatalf("TrainTestSplit failed: %v", err)
	}

	before := mat.DenseCopyOf(s.XTrain)
	X.Set(0, 0, 9999)
	if !mat.Equal(s.XTrain, before) {
		t.Errorf("❌ Mutating the source matrix changed the drawn split")
	}
}

func TestTrainTestSplit_InvalidInputs(t *testing.T) {
	X, y := numberedMatrix(10)

	if _, err := TrainTestSplit(X, y[:5], 0.2, 1); err == nil {
		t.Errorf("❌ Mismatched feature/label lengths accepted")
	}
	if _, err := TrainTestSplit(X, y, 0, 1); err == nil {
		t.Errorf("❌ Ratio 0 accepted")
	}
	if _, err := TrainTestSplit(X, y, 1, 1); err == nil {
		t.Errorf("❌ Ratio 1 accepted (no training rows)")
	}

	empty := &mat.Dense{}
	if _, err := TrainTestSplit(empty, nil, 0.2, 1); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("❌ Empty matrix: error = %v, want ErrEmptyDataset", err)
	}
}
