package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Options controls how the input file is parsed.
type Options struct {
	// Fallback is the delimiter tried after the comma parse fails.
	Fallback rune
	// NaNValues are cell texts loaded as missing values.
	NaNValues []string
}

// DefaultOptions returns the loader defaults: semicolon fallback and the
// common missing-value markers.
func DefaultOptions() Options {
	return Options{
		Fallback: ';',
		NaNValues: []string{
			"", "NA", "N/A", "n/a", "NaN", "nan", "-NaN", "-nan",
			"null", "NULL", "None", "<NA>", "#N/A", "<nil>",
		},
	}
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Load reads the CSV file at path. It parses with a comma first and retries
// once with opt.Fallback; if both fail it returns a *ParseError holding both
// attempts.
func Load(path string, opt Options) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read csv: %w", err)
	}
	ds, err := Read(data, opt)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, err
	}
	ds.Path = path
	return ds, nil
}

// Read parses CSV content held in memory with the same delimiter policy as Load.
func Read(data []byte, opt Options) (*Dataset, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if opt.Fallback == 0 {
		opt.Fallback = ';'
	}
	if opt.NaNValues == nil {
		opt.NaNValues = DefaultOptions().NaNValues
	}

	perr := &ParseError{Path: "<memory>"}
	delims := []rune{','}
	if opt.Fallback != ',' {
		delims = append(delims, opt.Fallback)
	}
	for _, delim := range delims {
		ds, err := parse(data, delim, opt)
		if err != nil {
			perr.Attempts = append(perr.Attempts, Attempt{Delimiter: delim, Err: err})
			continue
		}
		return ds, nil
	}
	return nil, perr
}

func parse(data []byte, delim rune, opt Options) (*Dataset, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = delim
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("read records: file has no header")
	}
	header := records[0]
	// A parse with the wrong delimiter succeeds with one wide column.
	if len(header) == 1 {
		for _, other := range []rune{',', opt.Fallback} {
			if other != delim && strings.ContainsRune(header[0], other) {
				return nil, fmt.Errorf("single column header %q contains %q", header[0], other)
			}
		}
	}
	if len(records) == 1 {
		return headerOnly(header, delim)
	}
	if err := padRecords(records); err != nil {
		return nil, err
	}
	df := dataframe.LoadRecords(records, dataframe.NaNValues(opt.NaNValues))
	if df.Err != nil {
		return nil, fmt.Errorf("load records: %w", df.Err)
	}
	return newDataset(df, delim), nil
}

// padRecords fills short rows with empty cells, which load as nulls. Rows
// wider than the header are an error.
func padRecords(records [][]string) error {
	width := len(records[0])
	for i := 1; i < len(records); i++ {
		n := len(records[i])
		switch {
		case n > width:
			return fmt.Errorf("record on line %d: expected %d fields, saw %d", i+1, width, n)
		case n < width:
			records[i] = append(records[i], make([]string, width-n)...)
		}
	}
	return nil
}

// headerOnly builds a zero-row dataset; the dataframe loader rejects these.
func headerOnly(header []string, delim rune) (*Dataset, error) {
	cols := make([]series.Series, len(header))
	for i, name := range header {
		cols[i] = series.New([]string{}, series.String, name)
	}
	df := dataframe.New(cols...)
	if df.Err != nil {
		return nil, fmt.Errorf("load header: %w", df.Err)
	}
	return newDataset(df, delim), nil
}
