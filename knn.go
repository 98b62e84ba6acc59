package viral

import (
	"fmt"
	"strconv"

	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/evaluation"
	"github.com/sjwhitworth/golearn/knn"

	"gonum.org/v1/gonum/mat"
)

// classAttrName is the label column name inside golearn instances.
const classAttrName = "is_viral"

// EvaluateK fits a K-Nearest-Neighbor classifier on the training
// partition and returns its accuracy on the test partition:
//
//	accuracy = correct predictions / total test predictions
//
// Each call builds a fresh classifier value (Euclidean distance,
// majority vote among the k nearest training points, golearn's own
// deterministic tie-break). Nothing is shared or reused between calls,
// so repeated evaluation of the same k returns the same score.
//
// Returns ErrInvalidK when k reaches or exceeds the number of training
// rows.
func EvaluateK(s Split, k int) (float64, error) {
	trainRows, _ := s.XTrain.Dims()
	if k < 1 {
		return 0, fmt.Errorf("k=%d: %w", k, ErrInvalidK)
	}
	if k >= trainRows {
		return 0, fmt.Errorf("k=%d with %d training rows: %w", k, trainRows, ErrInvalidK)
	}

	trainInst, err := instances(s.XTrain, s.YTrain)
	if err != nil {
		return 0, fmt.Errorf("building training instances: %w", err)
	}
	testInst, err := instances(s.XTest, s.YTest)
	if err != nil {
		return 0, fmt.Errorf("building test instances: %w", err)
	}

	cls := knn.NewKnnClassifier("euclidean", "linear", k)
	if err := cls.Fit(trainInst); err != nil {
		return 0, fmt.Errorf("fitting k=%d: %w", k, err)
	}

	predictions, err := cls.Predict(testInst)
	if err != nil {
		return 0, fmt.Errorf("predicting k=%d: %w", k, err)
	}

	confusion, err := evaluation.GetConfusionMatrix(testInst, predictions)
	if err != nil {
		return 0, fmt.Errorf("scoring k=%d: %w", k, err)
	}
	return evaluation.GetAccuracy(confusion), nil
}

// instances converts a feature matrix and its label vector into a
// golearn DenseInstances grid, preserving row order.
func instances(X *mat.Dense, y []int) (*base.DenseInstances, error) {
	rows, cols := X.Dims()
	if rows != len(y) {
		return nil, fmt.Errorf("%d feature rows but %d labels", rows, len(y))
	}

	inst := base.NewDenseInstances()

	featSpecs := make([]base.AttributeSpec, cols)
	for j := 0; j < cols; j++ {
		featSpecs[j] = inst.AddAttribute(base.NewFloatAttribute(columnName(j)))
	}

	classAttr := base.NewCategoricalAttribute()
	classAttr.SetName(classAttrName)
	classSpec := inst.AddAttribute(classAttr)
	if err := inst.AddClassAttribute(classAttr); err != nil {
		return nil, fmt.Errorf("class attribute: %w", err)
	}

	// Register both class values up front so the categorical index
	// mapping never depends on row order.
	classAttr.GetSysValFromString("0")
	classAttr.GetSysValFromString("1")

	if err := inst.Extend(rows); err != nil {
		return nil, fmt.Errorf("allocating %d rows: %w", rows, err)
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			inst.Set(featSpecs[j], i, base.PackFloatToBytes(X.At(i, j)))
		}
		inst.Set(classSpec, i, classAttr.GetSysValFromString(strconv.Itoa(y[i])))
	}

	return inst, nil
}
