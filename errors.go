package viral

import "errors"

// Error taxonomy for the pipeline. Every error is terminal for the run:
// there is no retry or partial-failure path, the analysis either
// completes or stops at the failing step.
var (
	// ErrEmptyDataset means the median (and therefore the label) is
	// undefined because there are zero records.
	ErrEmptyDataset = errors.New("empty dataset: median undefined")

	// ErrMissingField means a record lacks the nested user object or
	// one of its counters. Missing fields fail loudly instead of
	// propagating a silent zero.
	ErrMissingField = errors.New("missing field")

	// ErrDegenerateColumn means a feature column has zero variance,
	// so the z-score division is undefined.
	ErrDegenerateColumn = errors.New("degenerate column: zero variance")

	// ErrInvalidK means the requested neighbor count is at or beyond
	// the training-set size.
	ErrInvalidK = errors.New("invalid k: neighbor count reaches training set size")
)
