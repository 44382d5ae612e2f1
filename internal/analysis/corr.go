package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/KaramelBytes/eda-cli/internal/dataset"
)

// CorrMatrix holds a symmetric Pearson correlation matrix across numeric columns.
type CorrMatrix struct {
	Columns []string
	Values  [][]float64 // row-major, Values[i][j]
}

// Correlations computes Pearson coefficients between every pair of cols using
// the rows where both values are present. Pairs with fewer than two such rows
// or with a constant side are NaN.
func Correlations(ds *dataset.Dataset, cols []dataset.Column) *CorrMatrix {
	n := len(cols)
	series := make([][]float64, n)
	names := make([]string, n)
	for i, c := range cols {
		series[i] = ds.FloatsWithNulls(c.Index)
		names[i] = c.Name
	}
	mat := make([][]float64, n)
	for i := range mat {
		mat[i] = make([]float64, n)
	}
	for a := 0; a < n; a++ {
		for b := a; b < n; b++ {
			r := pearson(series[a], series[b])
			if a == b && !math.IsNaN(r) {
				r = 1
			}
			mat[a][b] = r
			mat[b][a] = r
		}
	}
	return &CorrMatrix{Columns: names, Values: mat}
}

func pearson(x, y []float64) float64 {
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	if stat.Variance(xs, nil) == 0 || stat.Variance(ys, nil) == 0 {
		return math.NaN()
	}
	r := stat.Correlation(xs, ys, nil)
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r
}

// Pairs lists the upper triangle of the matrix in column order.
func (m *CorrMatrix) Pairs() []PairCorr {
	var out []PairCorr
	for i := range m.Columns {
		for j := i + 1; j < len(m.Columns); j++ {
			out = append(out, PairCorr{A: m.Columns[i], B: m.Columns[j], R: m.Values[i][j]})
		}
	}
	return out
}

// PairCorr is a simple correlation pair summary.
type PairCorr struct {
	A, B string
	R    float64
}
