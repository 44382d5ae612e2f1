package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/KaramelBytes/eda-cli/internal/dataset"
)

// NumericSummary holds the descriptive statistics of one numeric column.
type NumericSummary struct {
	Name  string
	Count int
	Mean  float64
	Std   float64
	Min   float64
	Q1    float64
	Q2    float64
	Q3    float64
	Max   float64
}

// CategoricalSummary holds the descriptive statistics of one text column.
type CategoricalSummary struct {
	Name   string
	Count  int
	Unique int
	Top    string
	Freq   int
}

// DescribeNumeric summarizes the non-null values of a column. Std is the
// sample standard deviation; quartiles interpolate linearly between ranks.
func DescribeNumeric(name string, vals []float64) NumericSummary {
	s := NumericSummary{Name: name, Count: len(vals)}
	if len(vals) == 0 {
		nan := math.NaN()
		s.Mean, s.Std, s.Min, s.Q1, s.Q2, s.Q3, s.Max = nan, nan, nan, nan, nan, nan, nan
		return s
	}
	s.Mean, s.Std = stat.MeanStdDev(vals, nil)
	if len(vals) < 2 {
		s.Std = math.NaN()
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	s.Min = sorted[0]
	s.Q1 = quantile(sorted, 0.25)
	s.Q2 = quantile(sorted, 0.5)
	s.Q3 = quantile(sorted, 0.75)
	s.Max = sorted[len(sorted)-1]
	return s
}

// DescribeCategorical counts the non-null values of a text column and picks
// the most frequent one; ties go to the value seen first.
func DescribeCategorical(ds *dataset.Dataset, col dataset.Column) CategoricalSummary {
	s := CategoricalSummary{Name: col.Name, Top: dataset.NullText}
	counts := rankValues(ds, col, false)
	for _, cc := range counts {
		s.Count += cc.Count
	}
	s.Unique = len(counts)
	if len(counts) > 0 {
		s.Top = counts[0].Value
		s.Freq = counts[0].Count
	}
	return s
}

// ValueCounts returns up to limit values of a column by descending count,
// with missing cells counted under dataset.NullText.
func ValueCounts(ds *dataset.Dataset, col dataset.Column, limit int) []CategoryCount {
	counts := rankValues(ds, col, true)
	if limit > 0 && len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}

// rankValues orders distinct values by count, breaking ties by first appearance.
func rankValues(ds *dataset.Dataset, col dataset.Column, withNulls bool) []CategoryCount {
	index := map[string]int{}
	var out []CategoryCount
	for r := 0; r < ds.Rows(); r++ {
		if !withNulls && ds.IsNull(r, col.Index) {
			continue
		}
		v := ds.Cell(r, col.Index)
		i, ok := index[v]
		if !ok {
			i = len(out)
			index[v] = i
			out = append(out, CategoryCount{Value: v})
		}
		out[i].Count++
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// quantile expects sorted input and interpolates between the closest ranks.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}
