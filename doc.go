// Package viral predicts tweet virality from simple metadata with a
// K-Nearest-Neighbor classifier.
//
// # Overview
//
// viral answers one question over a static tweet dataset: can three
// cheap signals (tweet length, follower count, friend count) predict
// whether a tweet's retweet count lands at or above the dataset median?
// The median defines the binary label:
//
//	is_viral = 1  iff  retweet_count ≥ median(retweet_count)
//
// The package runs a single linear pipeline:
//
//	load NDJSON → label by median → extract features → standardize →
//	split 80/20 → sweep KNN over k = 1..199 → report accuracy curve
//
// # Quick Start
//
// Run the whole pipeline with defaults:
//
//	tweets, err := viral.LoadTweetsFile("tweets.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	analysis, err := viral.Run(tweets, viral.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	analysis.WriteSummary(os.Stdout)
//	viral.SavePlot(analysis.Points, "accuracy.png")
//
// # The Sweep
//
// For each k the sweep fits a fresh classifier (majority vote among the
// k nearest training points under Euclidean distance on the three
// standardized features) and scores accuracy on the held-out 20%:
//
//	accuracy(k) = correct test predictions / total test predictions
//
// The output is an ordered (k, accuracy) series. A k that reaches the
// training-set size is degenerate (every training point is a neighbor):
// the sweep reports it and moves on, while EvaluateK returns ErrInvalidK.
//
// # Standardization And Leakage
//
// Standardize computes per-column mean μ and population standard
// deviation σ (divide by N, not N−1) over ALL rows, train and test
// combined, then rescales each entry to (x−μ)/σ. Computing the
// statistics before the split leaks test-set information into the
// scaling. The source analysis does exactly this, and output parity
// matters more than methodological hygiene here, so the behavior is
// preserved rather than fixed. Treat the resulting accuracy figures
// accordingly.
//
// # Errors
//
// Every failure mode is terminal for the run:
//
//   - ErrEmptyDataset: median undefined over zero records
//   - ErrMissingField: tweet without a user object or its counters
//   - ErrDegenerateColumn: a feature column with zero variance
//   - ErrInvalidK: neighbor count at or beyond the training-set size
//
// # Testing
//
// Assertion helpers validate the pipeline's structural properties:
//
//	func TestMyPipeline(t *testing.T) {
//	    normalized, _, _ := viral.Standardize(features)
//
//	    // Each column has mean ≈ 0 and population stddev ≈ 1
//	    viral.AssertStandardized(t, normalized, viral.DefaultAssertionConfig())
//
//	    // Row i of features still pairs with label i after the split
//	    viral.AssertRowCorrespondence(t, split, normalized, labels)
//	}
//
// # Philosophy
//
// This is exploratory analysis, not a serving system: one pass, one
// fixed seed, nothing persisted, nothing concurrent. The value is in
// the curve (where accuracy peaks over k), not in the classifier.
package viral
