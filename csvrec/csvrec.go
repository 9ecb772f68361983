package csvrec

import (
	"encoding/csv"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
)

// DateFormat is the single textual date format accepted in source files.
const DateFormat = "2006-01-02"

// Date is a calendar day decoded from its ISO textual form.
type Date struct {
	time.Time
}

// UnmarshalCSV implements gocsv.TypeUnmarshaller.
func (d *Date) UnmarshalCSV(value string) error {
	t, err := time.Parse(DateFormat, value)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected %s", value, DateFormat)
	}
	d.Time = t
	return nil
}

// trimReader strips surrounding whitespace from every field before the
// record reaches struct conversion, header row included.
type trimReader struct {
	r *csv.Reader
}

func (t trimReader) Read() ([]string, error) {
	record, err := t.r.Read()
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}
	return record, err
}

// headerReader validates the header row against the required column names
// before any record row is decoded.
type headerReader struct {
	trimReader
	required []string
	checked  bool
}

func (h *headerReader) Read() ([]string, error) {
	record, err := h.trimReader.Read()
	if err != nil {
		return record, err
	}
	if !h.checked {
		h.checked = true
		if missing := missingColumns(h.required, record); len(missing) > 0 {
			return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
		}
	}
	return record, nil
}

func (h *headerReader) ReadAll() ([][]string, error) {
	var records [][]string
	for {
		record, err := h.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
}

func missingColumns(required, header []string) []string {
	present := make(map[string]bool, len(header))
	for _, name := range header {
		present[name] = true
	}
	var missing []string
	for _, name := range required {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	return missing
}

// requiredColumns lists the csv tag names of T's fields, minus the ones the
// caller declared optional.
func requiredColumns[T any](optional []string) []string {
	skip := make(map[string]bool, len(optional))
	for _, name := range optional {
		skip[name] = true
	}
	t := reflect.TypeOf((*T)(nil)).Elem()
	var columns []string
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("csv"), ",")
		if name == "" || name == "-" || skip[name] {
			continue
		}
		columns = append(columns, name)
	}
	return columns
}

// ReadAll decodes every record of the CSV stream r into a slice of T, in
// source row order. Column names are matched against the csv struct tags of
// T; every tagged column must be present in the header, except the ones
// named in optional. A missing required column, a row with a wrong field
// count or a value that fails its type conversion fails the whole read.
// Empty values in present columns decode to the zero value and are checked
// by the caller, which knows which fields its record shape requires
// non-empty.
func ReadAll[T any](r io.Reader, optional ...string) ([]T, error) {
	reader := &headerReader{
		trimReader: trimReader{r: csv.NewReader(r)},
		required:   requiredColumns[T](optional),
	}
	var records []T
	if err := gocsv.UnmarshalCSV(reader, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Row converts a zero-based record index into the one-based source row
// number reported in errors, accounting for the header row.
func Row(i int) int { return i + 2 }
