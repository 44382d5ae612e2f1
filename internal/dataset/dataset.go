package dataset

import (
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// NullText is how a missing cell is rendered.
const NullText = "NaN"

// Column describes one column of a Dataset.
type Column struct {
	Index int
	Name  string
	Type  series.Type
	Kind  Kind
}

// Dataset is a loaded table. It is never modified after Load returns; every
// accessor is a read-only view.
type Dataset struct {
	Path      string
	Delimiter rune

	frame  dataframe.DataFrame
	series []series.Series
	cols   []Column
}

func newDataset(df dataframe.DataFrame, delim rune) *Dataset {
	names := df.Names()
	types := df.Types()
	d := &Dataset{
		Delimiter: delim,
		frame:     df,
		series:    make([]series.Series, len(names)),
		cols:      make([]Column, len(names)),
	}
	for i, name := range names {
		d.series[i] = df.Col(name)
		d.cols[i] = Column{Index: i, Name: name, Type: types[i], Kind: Classify(types[i])}
	}
	return d
}

// Shape returns the row and column counts.
func (d *Dataset) Shape() (rows, cols int) {
	return d.frame.Nrow(), len(d.cols)
}

// Rows returns the number of data rows.
func (d *Dataset) Rows() int { return d.frame.Nrow() }

// Columns returns every column in file order.
func (d *Dataset) Columns() []Column {
	out := make([]Column, len(d.cols))
	copy(out, d.cols)
	return out
}

// ColumnsOf returns the columns of the given kind, in file order.
func (d *Dataset) ColumnsOf(k Kind) []Column {
	var out []Column
	for _, c := range d.cols {
		if c.Kind == k {
			out = append(out, c)
		}
	}
	return out
}

// IsNull reports whether the cell at (row, col) is missing.
func (d *Dataset) IsNull(row, col int) bool {
	return d.series[col].Elem(row).IsNA()
}

// Cell renders the cell at (row, col) as text.
func (d *Dataset) Cell(row, col int) string {
	e := d.series[col].Elem(row)
	if e.IsNA() {
		return NullText
	}
	if d.cols[col].Type == series.Float {
		return strconv.FormatFloat(e.Float(), 'g', -1, 64)
	}
	return e.String()
}

// Row renders one row as text, one entry per column.
func (d *Dataset) Row(row int) []string {
	out := make([]string, len(d.cols))
	for c := range d.cols {
		out[c] = d.Cell(row, c)
	}
	return out
}

// NullCount returns the number of missing cells in a column.
func (d *Dataset) NullCount(col int) int {
	n := 0
	for _, na := range d.series[col].IsNaN() {
		if na {
			n++
		}
	}
	return n
}

// Floats returns the non-null values of a numeric column in row order.
// Non-numeric columns yield nil.
func (d *Dataset) Floats(col int) []float64 {
	if d.cols[col].Kind != KindNumeric {
		return nil
	}
	s := d.series[col]
	na := s.IsNaN()
	vals := s.Float()
	out := make([]float64, 0, len(vals))
	for i, v := range vals {
		if !na[i] {
			out = append(out, v)
		}
	}
	return out
}

// FloatsWithNulls returns a numeric column with NaN in place of missing cells.
func (d *Dataset) FloatsWithNulls(col int) []float64 {
	if d.cols[col].Kind != KindNumeric {
		return nil
	}
	return d.series[col].Float()
}
