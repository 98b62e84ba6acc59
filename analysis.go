package viral

import (
	"fmt"
	"log/slog"

	"github.com/go-gota/gota/dataframe"
)

// Config controls the full analysis run.
type Config struct {
	TestRatio float64      // Fraction of rows held out for testing
	Seed      int64        // Shuffle seed for the train/test split
	MinK      int          // First neighbor count in the sweep
	MaxK      int          // Last neighbor count in the sweep (inclusive)
	ReportK   int          // Single k highlighted in the printed summary
	Logger    *slog.Logger // Pipeline log destination (nil = slog default)
}

// DefaultConfig mirrors the source analysis: 80/20 split, seed 1,
// k swept over 1..199, k=5 highlighted in the summary.
func DefaultConfig() Config {
	return Config{
		TestRatio: 0.2,
		Seed:      1,
		MinK:      1,
		MaxK:      199,
		ReportK:   5,
	}
}

// Analysis is the complete result of one pipeline run. Everything is
// derived in a single pass and read-only afterwards.
type Analysis struct {
	Records       int
	Median        float64 // Median retweet count over the full dataset
	ViralCount    int     // Records labeled 1
	NotViralCount int     // Records labeled 0

	Stats       ColumnStats          // Standardization statistics per column
	FirstVector [NumFeatures]float64 // First row after standardization
	Frame       dataframe.DataFrame  // Raw feature columns, for the summary table

	Points         []KAccuracy // Ordered (k, accuracy) series
	ReportK        int
	ReportAccuracy float64   // Accuracy at ReportK (0 when skipped)
	Best           KAccuracy // Highest-accuracy sweep point
}

// Run executes the whole pipeline: label by median, extract features,
// standardize, split, sweep. Any step's error aborts the remainder.
func Run(tweets []Tweet, cfg Config) (*Analysis, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	counts, err := RetweetCounts(tweets)
	if err != nil {
		return nil, err
	}

	labels, median, err := Labels(counts)
	if err != nil {
		return nil, err
	}
	viralCount, notViralCount := LabelCounts(labels)
	logger.Info("labels built",
		"records", len(tweets), "median", median,
		"viral", viralCount, "not_viral", notViralCount)

	X, err := FeatureMatrix(tweets)
	if err != nil {
		return nil, err
	}

	Z, stats, err := Standardize(X)
	if err != nil {
		return nil, err
	}

	split, err := TrainTestSplit(Z, labels, cfg.TestRatio, cfg.Seed)
	if err != nil {
		return nil, err
	}
	trainRows, _ := split.XTrain.Dims()
	testRows, _ := split.XTest.Dims()
	logger.Info("split drawn",
		"train", trainRows, "test", testRows, "seed", cfg.Seed)

	points, err := Sweep(split, SweepConfig{MinK: cfg.MinK, MaxK: cfg.MaxK, Logger: logger})
	if err != nil {
		return nil, err
	}

	a := &Analysis{
		Records:       len(tweets),
		Median:        median,
		ViralCount:    viralCount,
		NotViralCount: notViralCount,
		Stats:         stats,
		Frame:         FeatureFrame(X),
		Points:        points,
		ReportK:       cfg.ReportK,
	}
	copy(a.FirstVector[:], Z.RawRowView(0))

	if p, ok := AccuracyAt(points, cfg.ReportK); ok {
		a.ReportAccuracy = p.Accuracy
	} else {
		logger.Warn("report k not in sweep output", "k", cfg.ReportK)
	}
	if best, ok := BestK(points); ok {
		a.Best = best
		logger.Info("sweep complete",
			"points", len(points), "best_k", best.K,
			"best_accuracy", fmt.Sprintf("%.4f", best.Accuracy))
	}

	return a, nil
}
