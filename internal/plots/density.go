package plots

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/plot/plotter"
)

const (
	maxBins     = 200
	densityGrid = 200
)

// autoBins picks a bin count the way numpy's "auto" rule does: the smaller
// of the Sturges and Freedman-Diaconis bin widths over the data range.
func autoBins(vals []float64) int {
	n := len(vals)
	if n < 2 {
		return 1
	}
	lo, hi := floats.Min(vals), floats.Max(vals)
	span := hi - lo
	if span <= 0 {
		return 1
	}
	width := span / (math.Log2(float64(n)) + 1)

	sorted := make([]float64, n)
	copy(sorted, vals)
	sort.Float64s(sorted)
	iqr := stat.Quantile(0.75, stat.Empirical, sorted, nil) - stat.Quantile(0.25, stat.Empirical, sorted, nil)
	if fd := 2 * iqr * math.Pow(float64(n), -1.0/3.0); fd > 0 && fd < width {
		width = fd
	}
	bins := int(math.Ceil(span / width))
	if bins < 1 {
		bins = 1
	}
	if bins > maxBins {
		bins = maxBins
	}
	return bins
}

// scottBandwidth is the Gaussian kernel bandwidth std * n^(-1/5).
func scottBandwidth(vals []float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	return stat.StdDev(vals, nil) * math.Pow(float64(len(vals)), -0.2)
}

// densityCurve evaluates a Gaussian kernel density estimate over the data
// range, scaled so its area matches a count histogram with bins of binWidth.
// It returns nil when the data has no spread.
func densityCurve(vals []float64, binWidth float64) plotter.XYs {
	bw := scottBandwidth(vals)
	if bw <= 0 || math.IsNaN(bw) || binWidth <= 0 {
		return nil
	}
	lo, hi := floats.Min(vals), floats.Max(vals)
	if hi <= lo {
		return nil
	}
	kernel := distuv.Normal{Mu: 0, Sigma: bw}
	n := float64(len(vals))
	scale := n * binWidth
	pts := make(plotter.XYs, densityGrid)
	for i := range pts {
		x := lo + (hi-lo)*float64(i)/float64(densityGrid-1)
		var sum float64
		for _, v := range vals {
			sum += kernel.Prob(x - v)
		}
		pts[i] = plotter.XY{X: x, Y: sum / n * scale}
	}
	return pts
}

// finite drops NaN and infinite values, which the plotters reject.
func finite(vals []float64) []float64 {
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}
