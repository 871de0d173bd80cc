package dataset

import (
	"fmt"

	"cleanser/domain/core"
)

// Row maps column names to cell values. Column order lives on the Dataset.
type Row map[string]Value

// Dataset is an ordered set of rows sharing one header.
type Dataset struct {
	Source  string   // Path the dataset was loaded from
	Headers []string // Column headers, in sheet order
	Rows    []Row    // Data rows, in sheet order
}

// New creates an empty dataset with the given headers.
func New(source string, headers []string) *Dataset {
	return &Dataset{
		Source:  source,
		Headers: append([]string(nil), headers...),
	}
}

// Len returns the number of data rows.
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// HasColumn reports whether a column with exactly this name exists.
func (d *Dataset) HasColumn(name string) bool {
	for _, h := range d.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// MissingColumns returns the subset of columns not present, in the order given.
func (d *Dataset) MissingColumns(columns ...string) []string {
	var missing []string
	for _, c := range columns {
		if !d.HasColumn(c) {
			missing = append(missing, c)
		}
	}
	return missing
}

// MapColumn replaces every value of the named column with fn(value), in place.
// It returns false without touching any row when the column does not exist.
func (d *Dataset) MapColumn(name string, fn func(Value) Value) bool {
	if !d.HasColumn(name) {
		return false
	}
	for _, row := range d.Rows {
		row[name] = fn(row[name])
	}
	return true
}

// Select returns a new dataset holding only the given columns, in the given
// order. Rows share no state with the receiver.
func (d *Dataset) Select(columns ...string) (*Dataset, error) {
	if missing := d.MissingColumns(columns...); len(missing) > 0 {
		return nil, core.NewMissingColumnError(missing)
	}

	out := New(d.Source, columns)
	out.Rows = make([]Row, len(d.Rows))
	for i, row := range d.Rows {
		r := make(Row, len(columns))
		for _, c := range columns {
			r[c] = row[c]
		}
		out.Rows[i] = r
	}
	return out, nil
}

// Record returns the row's values in header order. Absent keys are missing.
func (d *Dataset) Record(i int) []Value {
	row := d.Rows[i]
	values := make([]Value, len(d.Headers))
	for j, h := range d.Headers {
		if v, ok := row[h]; ok {
			values[j] = v
		} else {
			values[j] = NewMissingValue()
		}
	}
	return values
}

// UniqueHeaders disambiguates duplicate header names by suffixing ".1",
// ".2", ... and names blank headers "Unnamed: <index>".
func UniqueHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	used := make(map[string]bool, len(raw))
	counts := make(map[string]int, len(raw))
	for i, h := range raw {
		if h == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}
		name := h
		for used[name] {
			counts[h]++
			name = fmt.Sprintf("%s.%d", h, counts[h])
		}
		used[name] = true
		headers[i] = name
	}
	return headers
}
