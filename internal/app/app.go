// Package app runs the analysis pipeline: dependency guard, load, summary
// report, plots.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/KaramelBytes/eda-cli/internal/analysis"
	"github.com/KaramelBytes/eda-cli/internal/config"
	"github.com/KaramelBytes/eda-cli/internal/dataset"
	"github.com/KaramelBytes/eda-cli/internal/plots"
	"github.com/KaramelBytes/eda-cli/internal/utils"
)

// requiredModules are named in the guidance printed when the plotting
// backend cannot start.
var requiredModules = []string{
	"gonum.org/v1/plot",
	"gonum.org/v1/gonum",
	"github.com/go-gota/gota",
}

// App holds everything one run needs.
type App struct {
	cfg    *config.Global
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	probe  func() error
}

// New builds an App that prints the report to outW and logs and
// diagnostics to errW.
func New(cfg *config.Global, outW, errW io.Writer) *App {
	return &App{
		cfg:    cfg,
		outW:   outW,
		errW:   errW,
		logger: NewLogger(errW),
		probe:  plots.Probe,
	}
}

// Run executes the pipeline once. A missing plotting backend, a missing
// input file and an unparseable input file are reported and end the run
// with a nil error; only failures after a successful load are returned.
func (a *App) Run() error {
	if dump, err := a.cfg.YAML(); err == nil {
		a.logger.Info("configuration", "config", dump)
	}

	if err := a.probe(); err != nil {
		fmt.Fprintln(a.outW, "Missing dependencies required to run the analysis.")
		fmt.Fprintf(a.outW, "Fetch them with:\n    go mod download %s\n", strings.Join(requiredModules, " "))
		fmt.Fprintln(a.outW, "Error:", err)
		return nil
	}

	path := a.cfg.InputPath()
	opt := dataset.DefaultOptions()
	opt.Fallback = a.cfg.Fallback()
	ds, err := dataset.Load(path, opt)
	if err != nil {
		var perr *dataset.ParseError
		switch {
		case errors.Is(err, dataset.ErrNotFound):
			fmt.Fprintf(a.outW, "Input file not found: %s\n", path)
			return nil
		case errors.As(err, &perr):
			fmt.Fprintln(a.errW, "Error reading the CSV. Diagnostic trace:")
			fmt.Fprint(a.errW, perr.Trace())
			return nil
		default:
			return fmt.Errorf("load dataset: %w", err)
		}
	}
	rows, cols := ds.Shape()
	a.logger.Info("dataset loaded", "path", path, "rows", rows, "columns", cols, "delimiter", string(ds.Delimiter))

	outDir := a.cfg.OutputPath()
	if err := utils.EnsureDir(outDir); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	rep := analysis.Build(ds, analysis.Options{
		HeadRows:            a.cfg.HeadRows,
		DuplicateSampleRows: a.cfg.DuplicateSampleRows,
		TopValues:           a.cfg.TopValues,
	})
	fmt.Fprint(a.outW, rep.Text())

	written, err := a.renderPlots(ds, rep, outDir)
	if err != nil {
		return err
	}
	a.logger.Info("analysis complete", "output_dir", outDir, "images", written)
	fmt.Fprintf(a.outW, "\nAnalysis complete. Output files in: %s\n", outDir)
	return nil
}

func (a *App) renderPlots(ds *dataset.Dataset, rep *analysis.Report, outDir string) (int, error) {
	numeric := ds.ColumnsOf(dataset.KindNumeric)
	if len(numeric) == 0 {
		fmt.Fprintln(a.outW, "\nNo numeric columns detected; skipping plots.")
		return 0, nil
	}

	r := plots.NewRenderer(outDir)
	written := 0
	fmt.Fprintf(a.outW, "\nGenerating histograms and boxplots for numeric columns (saved to %s)\n", outDir)
	for _, c := range numeric {
		vals := ds.Floats(c.Index)
		hist, err := r.Histogram(c.Name, vals)
		if err != nil {
			return written, err
		}
		written++
		a.logger.Info("wrote plot", "kind", "histogram", "column", c.Name, "path", hist)

		box, err := r.BoxPlot(c.Name, vals)
		if err != nil {
			return written, err
		}
		written++
		a.logger.Info("wrote plot", "kind", "boxplot", "column", c.Name, "path", box)
	}

	if rep.Corr != nil {
		fmt.Fprintf(a.outW, "Generating correlation heatmap (saved to %s)\n", r.CorrelationPath())
		path, err := r.Heatmap(rep.Corr)
		if err != nil {
			return written, err
		}
		written++
		a.logger.Info("wrote plot", "kind", "heatmap", "columns", len(rep.Corr.Columns), "path", path)
		a.logStrongestPairs(rep.Corr)
	}
	return written, nil
}

// logStrongestPairs logs the three correlation pairs with the largest |r|.
func (a *App) logStrongestPairs(m *analysis.CorrMatrix) {
	pairs := m.Pairs()
	kept := pairs[:0]
	for _, p := range pairs {
		if !math.IsNaN(p.R) {
			kept = append(kept, p)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool { return math.Abs(kept[i].R) > math.Abs(kept[j].R) })
	for i, p := range kept {
		if i == 3 {
			break
		}
		a.logger.Info("strong correlation", "a", p.A, "b", p.B, "r", p.R)
	}
}
