package analysis

import (
	"github.com/KaramelBytes/eda-cli/internal/dataset"
)

// Options controls report sizing.
type Options struct {
	// HeadRows is the number of leading rows printed.
	HeadRows int
	// DuplicateSampleRows caps the example duplicate rows printed.
	DuplicateSampleRows int
	// TopValues caps the value counts printed per categorical column.
	TopValues int
}

// DefaultOptions returns the report defaults.
func DefaultOptions() Options {
	return Options{
		HeadRows:            5,
		DuplicateSampleRows: 5,
		TopValues:           10,
	}
}

// Report is a plain-text friendly summary of a Dataset.
type Report struct {
	Name    string
	Rows    int
	Header  []string
	Head    [][]string
	Columns []ColumnInfo

	Numeric     []NumericSummary
	Categorical []CategoricalSummary
	ValueCounts []ColumnCounts

	Duplicates    int
	DuplicateRows [][]string

	// Corr is set when at least two numeric columns exist.
	Corr *CorrMatrix
}

// ColumnInfo captures the inferred type and missing count of a column.
type ColumnInfo struct {
	Name    string
	Type    string
	Kind    dataset.Kind
	Missing int
}

// CategoryCount is one value and how often it occurs.
type CategoryCount struct {
	Value string
	Count int
}

// ColumnCounts holds the most frequent values of one categorical column.
type ColumnCounts struct {
	Name   string
	Values []CategoryCount
}

// Build computes every summary for ds. Statistics are dispatched on the
// column kind: numeric columns get NumericSummary, categorical columns get
// CategoricalSummary and value counts, other columns only appear in the
// type and null listings.
func Build(ds *dataset.Dataset, opt Options) *Report {
	if opt.HeadRows <= 0 {
		opt.HeadRows = 5
	}
	if opt.DuplicateSampleRows <= 0 {
		opt.DuplicateSampleRows = 5
	}
	if opt.TopValues <= 0 {
		opt.TopValues = 10
	}

	cols := ds.Columns()
	rep := &Report{Name: ds.Path, Rows: ds.Rows()}
	rep.Header = make([]string, len(cols))
	for i, c := range cols {
		rep.Header[i] = c.Name
	}
	for r := 0; r < ds.Rows() && r < opt.HeadRows; r++ {
		rep.Head = append(rep.Head, ds.Row(r))
	}

	for _, c := range cols {
		rep.Columns = append(rep.Columns, ColumnInfo{
			Name:    c.Name,
			Type:    string(c.Type),
			Kind:    c.Kind,
			Missing: ds.NullCount(c.Index),
		})
		switch c.Kind {
		case dataset.KindNumeric:
			rep.Numeric = append(rep.Numeric, DescribeNumeric(c.Name, ds.Floats(c.Index)))
		case dataset.KindCategorical:
			rep.Categorical = append(rep.Categorical, DescribeCategorical(ds, c))
			rep.ValueCounts = append(rep.ValueCounts, ColumnCounts{
				Name:   c.Name,
				Values: ValueCounts(ds, c, opt.TopValues),
			})
		}
	}

	dups := DuplicateRows(ds)
	rep.Duplicates = len(dups)
	for i, r := range dups {
		if i >= opt.DuplicateSampleRows {
			break
		}
		rep.DuplicateRows = append(rep.DuplicateRows, ds.Row(r))
	}

	if num := ds.ColumnsOf(dataset.KindNumeric); len(num) >= 2 {
		rep.Corr = Correlations(ds, num)
	}
	return rep
}
