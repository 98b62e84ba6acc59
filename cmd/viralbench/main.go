// Command viralbench runs the tweet-virality KNN analysis end to end:
// load the NDJSON dataset, sweep k=1..199, print the summary, and save
// the accuracy plot.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	viral "github.com/homotechno/twitter-classification"
)

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))
}

func main() {
	input := flag.String("input", "tweets.json", "newline-delimited JSON tweet dataset")
	plotPath := flag.String("plot", "accuracy.png", "output path for the accuracy curve PNG")
	flag.Parse()

	tweets, err := viral.LoadTweetsFile(*input)
	if err != nil {
		slog.Error("loading dataset failed", "err", err)
		os.Exit(1)
	}

	analysis, err := viral.Run(tweets, viral.DefaultConfig())
	if err != nil {
		slog.Error("analysis failed", "err", err)
		os.Exit(1)
	}

	if err := analysis.WriteSummary(os.Stdout); err != nil {
		slog.Error("writing summary failed", "err", err)
		os.Exit(1)
	}

	if err := viral.SavePlot(analysis.Points, *plotPath); err != nil {
		slog.Error("saving plot failed", "err", err)
		os.Exit(1)
	}

	slog.Info("analysis complete",
		"records", analysis.Records,
		"best_k", analysis.Best.K,
		"plot", *plotPath)
}
