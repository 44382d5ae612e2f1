package dataset

import "github.com/go-gota/gota/series"

// Kind is the semantic classification of a column, decided once at load time.
type Kind int

const (
	// KindOther covers columns that are neither numeric nor text (booleans).
	KindOther Kind = iota
	KindNumeric
	KindCategorical
)

func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindCategorical:
		return "categorical"
	default:
		return "other"
	}
}

// Classify maps the storage type inferred by the dataframe onto a Kind.
// Columns holding any non-numeric text are inferred as strings, so mixed
// columns land in KindCategorical rather than failing the load.
func Classify(t series.Type) Kind {
	switch t {
	case series.Int, series.Float:
		return KindNumeric
	case series.String:
		return KindCategorical
	default:
		return KindOther
	}
}
