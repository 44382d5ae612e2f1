package analysis

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/KaramelBytes/eda-cli/internal/dataset"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func mustRead(t *testing.T, rows ...string) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Read([]byte(strings.Join(rows, "\n")), dataset.DefaultOptions())
	if err != nil {
		t.Fatalf("read dataset: %v", err)
	}
	ds.Path = "fixture.csv"
	return ds
}

func TestDescribeNumeric(t *testing.T) {
	s := DescribeNumeric("x", []float64{4, 1, 3, 2})
	if s.Count != 4 {
		t.Fatalf("count = %d, want 4", s.Count)
	}
	checks := []struct {
		name      string
		got, want float64
	}{
		{"mean", s.Mean, 2.5},
		{"std", s.Std, math.Sqrt(5.0 / 3.0)},
		{"min", s.Min, 1},
		{"25%", s.Q1, 1.75},
		{"50%", s.Q2, 2.5},
		{"75%", s.Q3, 3.25},
		{"max", s.Max, 4},
	}
	for _, c := range checks {
		if !almostEqual(c.got, c.want, 1e-9) {
			t.Errorf("%s = %f, want %f", c.name, c.got, c.want)
		}
	}
}

func TestDescribeNumericEdgeCases(t *testing.T) {
	empty := DescribeNumeric("e", nil)
	if empty.Count != 0 || !math.IsNaN(empty.Mean) || !math.IsNaN(empty.Max) {
		t.Fatalf("empty summary = %+v", empty)
	}
	one := DescribeNumeric("o", []float64{7})
	if one.Mean != 7 || !math.IsNaN(one.Std) || one.Q1 != 7 || one.Q3 != 7 {
		t.Fatalf("single value summary = %+v", one)
	}
}

func TestDescribeCategoricalAndValueCounts(t *testing.T) {
	ds := mustRead(t,
		"city,n",
		"Lima,1",
		"Quito,2",
		",3",
		"Quito,4",
		"Lima,5",
		"Cusco,6",
		",7",
		",8",
	)
	city := ds.Columns()[0]
	s := DescribeCategorical(ds, city)
	if s.Count != 5 || s.Unique != 3 {
		t.Fatalf("summary = %+v", s)
	}
	if s.Top != "Lima" || s.Freq != 2 {
		t.Fatalf("top = %q/%d, want Lima/2 (first seen wins ties)", s.Top, s.Freq)
	}

	vc := ValueCounts(ds, city, 10)
	want := []CategoryCount{{dataset.NullText, 3}, {"Lima", 2}, {"Quito", 2}, {"Cusco", 1}}
	if len(vc) != len(want) {
		t.Fatalf("value counts = %#v", vc)
	}
	for i := range want {
		if vc[i] != want[i] {
			t.Fatalf("value counts[%d] = %#v, want %#v", i, vc[i], want[i])
		}
	}
	if got := ValueCounts(ds, city, 2); len(got) != 2 {
		t.Fatalf("limited value counts = %#v", got)
	}
}

func TestDuplicateRows(t *testing.T) {
	ds := mustRead(t,
		"a,b",
		"1,x",
		"2,y",
		"1,x",
		"3,",
		"3,",
		"1,x",
	)
	got := DuplicateRows(ds)
	want := []int{2, 4, 5}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("duplicates = %v, want %v", got, want)
	}
}

func TestCorrelations(t *testing.T) {
	ds := mustRead(t,
		"x,y,z,k",
		"1,2,10,5",
		"2,4,8,5",
		"3,6,6,5",
		"4,,4,5",
		"5,10,2,5",
	)
	m := Correlations(ds, ds.ColumnsOf(dataset.KindNumeric))
	if strings.Join(m.Columns, ",") != "x,y,z,k" {
		t.Fatalf("columns = %v", m.Columns)
	}
	if !almostEqual(m.Values[0][1], 1, 1e-9) {
		t.Fatalf("r(x,y) = %f, want 1", m.Values[0][1])
	}
	if !almostEqual(m.Values[0][2], -1, 1e-9) {
		t.Fatalf("r(x,z) = %f, want -1", m.Values[0][2])
	}
	if m.Values[1][2] != m.Values[2][1] {
		t.Fatalf("matrix not symmetric")
	}
	if m.Values[0][0] != 1 {
		t.Fatalf("diagonal = %f, want 1", m.Values[0][0])
	}
	if !math.IsNaN(m.Values[0][3]) || !math.IsNaN(m.Values[3][3]) {
		t.Fatalf("constant column should correlate as NaN, got %f / %f", m.Values[0][3], m.Values[3][3])
	}
	if got := len(m.Pairs()); got != 6 {
		t.Fatalf("pairs = %d, want 6", got)
	}
}

func TestBuildAndText(t *testing.T) {
	rows := []string{"age,city"}
	cities := []string{"Lima", "Quito", "Cusco", "Bogota"}
	for i := 0; i < 100; i++ {
		rows = append(rows, fmt.Sprintf("%d,%s", 18+i, cities[i%len(cities)]))
	}
	ds := mustRead(t, rows...)
	rep := Build(ds, DefaultOptions())
	if rep.Corr != nil {
		t.Fatalf("expected no correlation matrix for one numeric column")
	}
	if len(rep.Head) != 5 {
		t.Fatalf("head rows = %d, want 5", len(rep.Head))
	}
	txt := rep.Text()
	for _, want := range []string{
		"Loading: fixture.csv",
		"Shape (rows, columns): (100, 2)",
		"Duplicate rows: 0\n",
		"Column: city",
		"Lima    25",
		"Descriptive statistics (numeric):",
		"Descriptive statistics (non-numeric):",
	} {
		if !strings.Contains(txt, want) {
			t.Fatalf("report missing %q:\n%s", want, txt)
		}
	}
	if strings.Contains(txt, "Example duplicate rows") {
		t.Fatalf("no duplicate examples expected:\n%s", txt)
	}
	nullSection := section(t, txt, "Null values per column:")
	for _, line := range []string{"age   0", "city  0"} {
		if !strings.Contains(nullSection, line) {
			t.Fatalf("null section missing %q:\n%s", line, nullSection)
		}
	}
}

func TestBuildReportsDuplicatesAndCorrelation(t *testing.T) {
	ds := mustRead(t,
		"a,b,label",
		"1,2,x",
		"1,2,x",
		"3,1,y",
		"1,2,x",
	)
	rep := Build(ds, Options{DuplicateSampleRows: 1})
	if rep.Duplicates != 2 {
		t.Fatalf("duplicates = %d, want 2", rep.Duplicates)
	}
	if len(rep.DuplicateRows) != 1 {
		t.Fatalf("duplicate samples = %d, want 1", len(rep.DuplicateRows))
	}
	if rep.Corr == nil || len(rep.Corr.Columns) != 2 {
		t.Fatalf("expected 2x2 correlation matrix, got %#v", rep.Corr)
	}
	txt := rep.Text()
	if !strings.Contains(txt, "Duplicate rows: 2\nExample duplicate rows:\n") {
		t.Fatalf("missing duplicate examples:\n%s", txt)
	}
}

func TestTextWithoutColumnsOfAKind(t *testing.T) {
	ds := mustRead(t, "x,y", "1,2", "3,4")
	txt := Build(ds, DefaultOptions()).Text()
	if !strings.Contains(txt, "(no non-numeric columns)") {
		t.Fatalf("expected non-numeric notice:\n%s", txt)
	}
	ds = mustRead(t, "name", "a", "b")
	txt = Build(ds, DefaultOptions()).Text()
	if !strings.Contains(txt, "(no numeric columns)") {
		t.Fatalf("expected numeric notice:\n%s", txt)
	}
}

func TestTextIsDeterministic(t *testing.T) {
	rows := []string{"a,b,c"}
	for i := 0; i < 40; i++ {
		rows = append(rows, fmt.Sprintf("%d,%s,%d.5", i%7, string(rune('p'+i%5)), i%3))
	}
	first := Build(mustRead(t, rows...), DefaultOptions()).Text()
	second := Build(mustRead(t, rows...), DefaultOptions()).Text()
	if first != second {
		t.Fatalf("report text differs between identical loads")
	}
}

func section(t *testing.T, txt, title string) string {
	t.Helper()
	i := strings.Index(txt, title)
	if i < 0 {
		t.Fatalf("section %q not found", title)
	}
	rest := txt[i:]
	if j := strings.Index(rest, "---"); j >= 0 {
		rest = rest[:j]
	}
	return rest
}
