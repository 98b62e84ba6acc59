package viral

import (
	"io"
	"log/slog"
	"testing"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSweep_OrderedSeries(t *testing.T) {
	s := separableSplit()

	points, err := Sweep(s, SweepConfig{MinK: 1, MaxK: 9, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}

	if len(points) != 9 {
		t.Fatalf("❌ Got %d points, want 9 (one per k)", len(points))
	}
	for i, p := range points {
		if p.K != i+1 {
			t.Errorf("❌ points[%d].K = %d, want %d (increasing k order)", i, p.K, i+1)
		}
		if p.Accuracy < 0 || p.Accuracy > 1 {
			t.Errorf("❌ points[%d] accuracy %.4f outside [0, 1]", i, p.Accuracy)
		}
	}
	t.Logf("✓ Sweep produced %d points in increasing k order", len(points))
}

func TestSweep_SkipsDegenerateK(t *testing.T) {
	s := separableSplit() // 10 training rows

	points, err := Sweep(s, SweepConfig{MinK: 1, MaxK: 12, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}

	// k = 10, 11, 12 reach the training-set size: reported and skipped,
	// never fatal for the sweep.
	if len(points) != 9 {
		t.Fatalf("❌ Got %d points, want 9 (k ≥ 10 skipped)", len(points))
	}
	if last := points[len(points)-1].K; last != 9 {
		t.Errorf("❌ Last point k = %d, want 9", last)
	}
	t.Logf("✓ Degenerate neighbor counts skipped without aborting the sweep")
}

func TestSweep_Idempotent(t *testing.T) {
	s := separableSplit()
	cfg := SweepConfig{MinK: 1, MaxK: 9, Logger: quietLogger()}

	first, err := Sweep(s, cfg)
	if err != nil {
		t.Fatalf("first sweep failed: %v", err)
	}
	second, err := Sweep(s, cfg)
	if err != nil {
		t.Fatalf("second sweep failed: %v", err)
	}

	AssertIdenticalSeries(t, first, second)
}

func TestSweep_BadRange(t *testing.T) {
	s := separableSplit()

	if _, err := Sweep(s, SweepConfig{MinK: 0, MaxK: 5, Logger: quietLogger()}); err == nil {
		t.Errorf("❌ MinK=0 accepted")
	}
	if _, err := Sweep(s, SweepConfig{MinK: 5, MaxK: 1, Logger: quietLogger()}); err == nil {
		t.Errorf("❌ Inverted range accepted")
	}
}

func TestBestK_FirstWinsTies(t *testing.T) {
	points := []KAccuracy{
		{K: 1, Accuracy: 0.55},
		{K: 2, Accuracy: 0.61},
		{K: 3, Accuracy: 0.61},
		{K: 4, Accuracy: 0.58},
	}

	best, ok := BestK(points)
	if !ok {
		t.Fatal("BestK found nothing")
	}
	if best.K != 2 {
		t.Errorf("❌ Best k = %d, want 2 (first of the tied maxima)", best.K)
	}

	if _, ok := BestK(nil); ok {
		t.Errorf("❌ BestK over empty series reported a winner")
	}
}

func TestAccuracyAt(t *testing.T) {
	points := []KAccuracy{{K: 1, Accuracy: 0.5}, {K: 5, Accuracy: 0.59}}

	p, ok := AccuracyAt(points, 5)
	if !ok || p.Accuracy != 0.59 {
		t.Errorf("❌ AccuracyAt(5) = (%+v, %v), want (k=5 acc=0.59, true)", p, ok)
	}
	if _, ok := AccuracyAt(points, 7); ok {
		t.Errorf("❌ AccuracyAt(7) found a point that was never swept")
	}
}
