package viral

import (
	"bufio"
	"fmt"
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// FeatureFrame wraps the raw feature matrix in a dataframe so the
// summary can print per-column descriptive statistics.
func FeatureFrame(X *mat.Dense) dataframe.DataFrame {
	_, cols := X.Dims()
	columns := make([]series.Series, cols)
	for j := 0; j < cols; j++ {
		columns[j] = series.New(mat.Col(nil, j, X), series.Float, columnName(j))
	}
	return dataframe.New(columns...)
}

// WriteSummary prints the human-readable run summary: record count,
// median, label counts, the feature table, the first normalized
// vector, and the highlighted accuracy scores.
func (a *Analysis) WriteSummary(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "records:               %d\n", a.Records)
	fmt.Fprintf(bw, "median retweet_count:  %.1f\n", a.Median)
	fmt.Fprintf(bw, "label counts:          viral=%d not_viral=%d\n", a.ViralCount, a.NotViralCount)
	fmt.Fprintf(bw, "\nfeature summary:\n%v\n", a.Frame.Describe())
	fmt.Fprintf(bw, "first normalized vector: [%.3f, %.3f, %.3f]\n",
		a.FirstVector[0], a.FirstVector[1], a.FirstVector[2])
	fmt.Fprintf(bw, "accuracy at k=%d:       %.4f\n", a.ReportK, a.ReportAccuracy)
	fmt.Fprintf(bw, "best k:                %d (accuracy %.4f)\n", a.Best.K, a.Best.Accuracy)

	return bw.Flush()
}

// SavePlot renders the accuracy curve (k on the x-axis, accuracy on
// the y-axis over [0, 1]) as a PNG line plot.
func SavePlot(points []KAccuracy, path string) error {
	if len(points) == 0 {
		return fmt.Errorf("plot: %w", ErrEmptyDataset)
	}

	xys := make(plotter.XYs, len(points))
	for i, p := range points {
		xys[i].X = float64(p.K)
		xys[i].Y = p.Accuracy
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}

	p := plot.New()
	p.Title.Text = "KNN accuracy by neighbor count"
	p.X.Label.Text = "k"
	p.Y.Label.Text = "accuracy"
	p.Y.Min, p.Y.Max = 0, 1
	p.Add(plotter.NewGrid(), line)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving plot: %w", err)
	}
	return nil
}
