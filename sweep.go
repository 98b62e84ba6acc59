package viral

import (
	"errors"
	"fmt"
	"log/slog"
)

// KAccuracy is one point on the accuracy curve.
type KAccuracy struct {
	K        int
	Accuracy float64
}

// SweepConfig controls the k range of the sweep.
type SweepConfig struct {
	MinK   int          // First neighbor count to evaluate
	MaxK   int          // Last neighbor count to evaluate (inclusive)
	Logger *slog.Logger // Destination for skipped-k reports (nil = slog default)
}

// DefaultSweepConfig covers k = 1..199 inclusive.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		MinK: 1,
		MaxK: 199,
	}
}

// Sweep evaluates every k in [MinK, MaxK] against the split and
// returns the (k, accuracy) series in increasing k order.
//
// A k at or beyond the training-set size is reported through the
// logger and skipped rather than aborting the sweep; the point simply
// does not appear in the output. Any other classifier failure is
// terminal.
func Sweep(s Split, cfg SweepConfig) ([]KAccuracy, error) {
	if cfg.MinK < 1 || cfg.MaxK < cfg.MinK {
		return nil, fmt.Errorf("sweep: bad k range [%d, %d]", cfg.MinK, cfg.MaxK)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	points := make([]KAccuracy, 0, cfg.MaxK-cfg.MinK+1)
	for k := cfg.MinK; k <= cfg.MaxK; k++ {
		accuracy, err := EvaluateK(s, k)
		if errors.Is(err, ErrInvalidK) {
			logger.Warn("skipping degenerate neighbor count", "k", k, "err", err)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("sweep at k=%d: %w", k, err)
		}
		points = append(points, KAccuracy{K: k, Accuracy: accuracy})
	}

	return points, nil
}

// BestK returns the sweep point with the highest accuracy. The first k
// wins ties, so the answer is deterministic for a deterministic sweep.
func BestK(points []KAccuracy) (KAccuracy, bool) {
	if len(points) == 0 {
		return KAccuracy{}, false
	}
	best := points[0]
	for _, p := range points[1:] {
		if p.Accuracy > best.Accuracy {
			best = p
		}
	}
	return best, true
}

// AccuracyAt finds the sweep point for an exact k.
func AccuracyAt(points []KAccuracy, k int) (KAccuracy, bool) {
	for _, p := range points {
		if p.K == k {
			return p, true
		}
	}
	return KAccuracy{}, false
}
