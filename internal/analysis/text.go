package analysis

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/KaramelBytes/eda-cli/internal/utils"
)

const (
	separator = "\n---\n\n"
	maxCell   = 60
)

// Text renders the report as the ordered sequence of console sections.
func (r *Report) Text() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Loading: %s\n\n", r.Name)

	fmt.Fprintf(&b, "First %d rows:\n", len(r.Head))
	writeTable(&b, r.Header, r.Head)
	b.WriteString(separator)

	fmt.Fprintf(&b, "Shape (rows, columns): (%d, %d)\n", r.Rows, len(r.Columns))
	b.WriteString("\nColumn types:\n")
	types := make([][]string, len(r.Columns))
	for i, c := range r.Columns {
		types[i] = []string{c.Name, c.Type, c.Kind.String()}
	}
	writeTable(&b, nil, types)
	b.WriteString(separator)

	b.WriteString("Null values per column:\n")
	nulls := make([][]string, len(r.Columns))
	for i, c := range r.Columns {
		nulls[i] = []string{c.Name, strconv.Itoa(c.Missing)}
	}
	writeTable(&b, nil, nulls)
	b.WriteString(separator)

	b.WriteString("Descriptive statistics (numeric):\n")
	if len(r.Numeric) == 0 {
		b.WriteString("(no numeric columns)\n")
	} else {
		rows := make([][]string, len(r.Numeric))
		for i, s := range r.Numeric {
			rows[i] = []string{
				s.Name, strconv.Itoa(s.Count), num(s.Mean), num(s.Std), num(s.Min),
				num(s.Q1), num(s.Q2), num(s.Q3), num(s.Max),
			}
		}
		writeTable(&b, []string{"column", "count", "mean", "std", "min", "25%", "50%", "75%", "max"}, rows)
	}
	b.WriteString(separator)

	b.WriteString("Descriptive statistics (non-numeric):\n")
	if len(r.Categorical) == 0 {
		b.WriteString("(no non-numeric columns)\n")
	} else {
		rows := make([][]string, len(r.Categorical))
		for i, s := range r.Categorical {
			rows[i] = []string{s.Name, strconv.Itoa(s.Count), strconv.Itoa(s.Unique), s.Top, strconv.Itoa(s.Freq)}
		}
		writeTable(&b, []string{"column", "count", "unique", "top", "freq"}, rows)
	}
	b.WriteString(separator)

	fmt.Fprintf(&b, "Duplicate rows: %d\n", r.Duplicates)
	if r.Duplicates > 0 {
		b.WriteString("Example duplicate rows:\n")
		writeTable(&b, r.Header, r.DuplicateRows)
	}

	if len(r.ValueCounts) > 0 {
		b.WriteString("\nValue counts for categorical columns (top categories):\n")
		for _, vc := range r.ValueCounts {
			fmt.Fprintf(&b, "\nColumn: %s\n", vc.Name)
			rows := make([][]string, len(vc.Values))
			for i, cc := range vc.Values {
				rows[i] = []string{cc.Value, strconv.Itoa(cc.Count)}
			}
			writeTable(&b, nil, rows)
		}
	}
	return b.String()
}

// writeTable aligns header and rows into space-padded columns.
func writeTable(b *strings.Builder, header []string, rows [][]string) {
	tw := tabwriter.NewWriter(b, 0, 0, 2, ' ', 0)
	if header != nil {
		writeRow(tw, header)
	}
	for _, row := range rows {
		writeRow(tw, row)
	}
	_ = tw.Flush()
}

func writeRow(tw *tabwriter.Writer, cells []string) {
	for i, c := range cells {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, utils.Truncate(utils.SingleLine(c), maxCell))
	}
	fmt.Fprint(tw, "\n")
}

func num(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
