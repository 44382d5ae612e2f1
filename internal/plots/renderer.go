package plots

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/KaramelBytes/eda-cli/internal/analysis"
)

// CorrelationFile is the heatmap file name.
const CorrelationFile = "correlation_matrix.png"

var (
	barFill   = color.RGBA{R: 76, G: 114, B: 176, A: 255}
	curveLine = color.RGBA{R: 31, G: 58, B: 110, A: 255}
	nanCell   = color.Gray{Y: 210}
)

// Renderer writes plots into OutDir.
type Renderer struct {
	OutDir string
}

// NewRenderer returns a Renderer writing into outDir, which must exist.
func NewRenderer(outDir string) *Renderer {
	return &Renderer{OutDir: outDir}
}

// HistogramPath returns where the histogram of column is written.
func (r *Renderer) HistogramPath(column string) string {
	return filepath.Join(r.OutDir, "hist_"+column+".png")
}

// BoxPlotPath returns where the boxplot of column is written.
func (r *Renderer) BoxPlotPath(column string) string {
	return filepath.Join(r.OutDir, "box_"+column+".png")
}

// CorrelationPath returns where the heatmap is written.
func (r *Renderer) CorrelationPath() string {
	return filepath.Join(r.OutDir, CorrelationFile)
}

// Histogram writes hist_<column>.png: a count histogram of vals with a
// kernel density curve on top.
func (r *Renderer) Histogram(column string, vals []float64) (string, error) {
	vals = finite(vals)
	p := plot.New()
	p.Title.Text = "Histogram: " + column
	p.X.Label.Text = column
	p.Y.Label.Text = "Count"
	p.Add(plotter.NewGrid())

	if len(vals) > 0 {
		h, err := plotter.NewHist(plotter.Values(vals), autoBins(vals))
		if err != nil {
			return "", fmt.Errorf("histogram %s: %w", column, err)
		}
		h.FillColor = barFill
		h.LineStyle.Color = color.White
		p.Add(h)

		if curve := densityCurve(vals, h.Width); curve != nil {
			l, err := plotter.NewLine(curve)
			if err != nil {
				return "", fmt.Errorf("density %s: %w", column, err)
			}
			l.LineStyle.Color = curveLine
			l.LineStyle.Width = vg.Points(1.5)
			p.Add(l)
		}
	}

	path := r.HistogramPath(column)
	if err := render(path, 8*vg.Inch, 4*vg.Inch, func(dc draw.Canvas) { p.Draw(dc) }); err != nil {
		return "", err
	}
	return path, nil
}

// BoxPlot writes box_<column>.png: a horizontal boxplot of vals.
func (r *Renderer) BoxPlot(column string, vals []float64) (string, error) {
	vals = finite(vals)
	p := plot.New()
	p.Title.Text = "Boxplot: " + column
	p.X.Label.Text = column
	p.HideY()

	if len(vals) > 0 {
		b, err := plotter.NewBoxPlot(vg.Points(60), 0, plotter.Values(vals))
		if err != nil {
			return "", fmt.Errorf("boxplot %s: %w", column, err)
		}
		b.Horizontal = true
		b.FillColor = barFill
		p.Add(b)
	}

	path := r.BoxPlotPath(column)
	if err := render(path, 6*vg.Inch, 4*vg.Inch, func(dc draw.Canvas) { p.Draw(dc) }); err != nil {
		return "", err
	}
	return path, nil
}

// HeatmapSize returns the figure size for a k x k matrix: max(6, k) inches
// wide and max(4, k/2) inches tall.
func HeatmapSize(k int) (w, h vg.Length) {
	return vg.Length(math.Max(6, float64(k))) * vg.Inch, vg.Length(math.Max(4, float64(k)/2)) * vg.Inch
}

// Heatmap writes correlation_matrix.png: an annotated heatmap of m on a
// diverging blue-red scale fixed to [-1, 1], with square cells and a color bar.
func (r *Renderer) Heatmap(m *analysis.CorrMatrix) (string, error) {
	k := len(m.Columns)
	if k == 0 {
		return "", fmt.Errorf("heatmap: empty correlation matrix")
	}
	cmap := moreland.SmoothBlueRed()
	cmap.SetMin(-1)
	cmap.SetMax(1)

	grid := corrGrid{m: m}
	hm := plotter.NewHeatMap(grid, cmap.Palette(256))
	hm.Min, hm.Max = -1, 1
	hm.NaN = nanCell

	p := plot.New()
	p.Title.Text = "Correlation matrix"
	p.Add(hm)

	labels, err := plotter.NewLabels(grid.annotations())
	if err != nil {
		return "", fmt.Errorf("heatmap labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YCenter
	}
	p.Add(labels)

	p.NominalX(m.Columns...)
	p.NominalY(grid.rowNames()...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	bar := plot.New()
	bar.HideX()
	bar.Add(&plotter.ColorBar{ColorMap: cmap, Vertical: true, Colors: 256})

	w, h := HeatmapSize(k)
	barWidth := vg.Inch
	side := min(w-barWidth, h)
	path := r.CorrelationPath()
	err = render(path, w, h, func(dc draw.Canvas) {
		left := (w - barWidth - side) / 2
		p.Draw(draw.Canvas{Canvas: dc.Canvas, Rectangle: vg.Rectangle{
			Min: vg.Point{X: left, Y: (h - side) / 2},
			Max: vg.Point{X: left + side, Y: (h + side) / 2},
		}})
		bar.Draw(draw.Canvas{Canvas: dc.Canvas, Rectangle: vg.Rectangle{
			Min: vg.Point{X: w - barWidth, Y: h * 0.1},
			Max: vg.Point{X: w, Y: h * 0.9},
		}})
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

// corrGrid exposes a correlation matrix as a heatmap grid with the first
// column's row drawn at the top.
type corrGrid struct {
	m *analysis.CorrMatrix
}

func (g corrGrid) Dims() (c, r int) {
	n := len(g.m.Columns)
	return n, n
}

func (g corrGrid) Z(c, r int) float64 {
	return g.m.Values[len(g.m.Columns)-1-r][c]
}

func (g corrGrid) X(c int) float64 { return float64(c) }
func (g corrGrid) Y(r int) float64 { return float64(r) }

func (g corrGrid) rowNames() []string {
	n := len(g.m.Columns)
	out := make([]string, n)
	for r := range out {
		out[r] = g.m.Columns[n-1-r]
	}
	return out
}

func (g corrGrid) annotations() plotter.XYLabels {
	c, r := g.Dims()
	out := plotter.XYLabels{
		XYs:    make(plotter.XYs, 0, c*r),
		Labels: make([]string, 0, c*r),
	}
	for row := 0; row < r; row++ {
		for col := 0; col < c; col++ {
			out.XYs = append(out.XYs, plotter.XY{X: g.X(col), Y: g.Y(row)})
			out.Labels = append(out.Labels, annotation(g.Z(col, row)))
		}
	}
	return out
}

func annotation(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return fmt.Sprintf("%.2f", v)
}
