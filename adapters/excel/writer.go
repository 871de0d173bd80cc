package excel

import (
	"encoding/csv"
	"io"
	"os"

	"cleanser/domain/dataset"

	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the sheet every written workbook uses.
const DefaultSheet = "Sheet1"

// datetimeNumFmt displays datetime cells in written workbooks.
var datetimeNumFmt = "yyyy-mm-dd hh:mm:ss"

// WriteXLSX writes every column of ds to a new workbook at path: header row
// first, then one row per record. Cell types are preserved, datetimes are
// shown as yyyy-mm-dd hh:mm:ss and missing values are left empty.
func WriteXLSX(path string, ds *dataset.Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	datetimeStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &datetimeNumFmt})
	if err != nil {
		return err
	}

	// Header row
	for i, h := range ds.Headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(DefaultSheet, cell, h); err != nil {
			return err
		}
	}

	// Data rows
	for r := 0; r < ds.Len(); r++ {
		for c, v := range ds.Record(r) {
			if v.IsMissing() {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(DefaultSheet, cell, v.Interface()); err != nil {
				return err
			}
			if _, ok := v.Time(); ok {
				if err := f.SetCellStyle(DefaultSheet, cell, cell, datetimeStyle); err != nil {
					return err
				}
			}
		}
	}

	return f.SaveAs(path)
}

// WriteCSV writes ds to path as UTF-8 comma-separated text with a leading
// byte-order mark, a header row and no index column.
func WriteCSV(path string, ds *dataset.Dataset) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	return EncodeCSV(file, ds)
}

// EncodeCSV is WriteCSV for an arbitrary writer.
func EncodeCSV(out io.Writer, ds *dataset.Dataset) error {
	if _, err := io.WriteString(out, utf8BOM); err != nil {
		return err
	}

	dateOnly := dateOnlyColumns(ds)

	w := csv.NewWriter(out)
	if err := w.Write(ds.Headers); err != nil {
		return err
	}
	for r := 0; r < ds.Len(); r++ {
		values := ds.Record(r)
		record := make([]string, len(values))
		for i, v := range values {
			if t, ok := v.Time(); ok && dateOnly[i] {
				record[i] = t.Format(dataset.DateLayout)
				continue
			}
			record[i] = v.String()
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// dateOnlyColumns marks columns holding only datetimes, at least one, all at
// midnight. Those are written without a time of day.
func dateOnlyColumns(ds *dataset.Dataset) []bool {
	dateOnly := make([]bool, len(ds.Headers))
	for i, h := range ds.Headers {
		seen := false
		dateOnly[i] = true
		for _, row := range ds.Rows {
			v, ok := row[h]
			if !ok || v.IsMissing() {
				continue
			}
			if !v.IsMidnight() {
				dateOnly[i] = false
				break
			}
			seen = true
		}
		dateOnly[i] = dateOnly[i] && seen
	}
	return dateOnly
}
