package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"cleanser/domain/core"
	"cleanser/domain/dataset"
	"cleanser/internal"

	"github.com/xuri/excelize/v2"
)

const utf8BOM = "\ufeff"

// DataReader handles reading Excel and CSV files
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	sheet    string // empty means the first sheet
	logger   *internal.Logger
}

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := strings.TrimPrefix(ext, ".")
	switch ext {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		fileType = "xlsx"
	case ".csv":
		fileType = "csv"
	}
	return &DataReader{
		filePath: filePath,
		fileType: fileType,
		logger:   internal.DefaultLogger.WithComponent("DataReader"),
	}
}

// WithLogger replaces the reader's logger
func (r *DataReader) WithLogger(logger *internal.Logger) *DataReader {
	if logger != nil {
		r.logger = logger.WithComponent("DataReader")
	}
	return r
}

// WithSheet selects the worksheet to read. Ignored for CSV files.
func (r *DataReader) WithSheet(sheet string) *DataReader {
	r.sheet = sheet
	return r
}

// ReadData reads the file into a dataset with typed cell values
func (r *DataReader) ReadData() (*dataset.Dataset, error) {
	r.logger.Info("Starting to read %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); err != nil {
		return nil, fmt.Errorf("%s file not accessible: %w", strings.ToUpper(r.fileType), err)
	}

	switch r.fileType {
	case "csv":
		return r.readCSVData()
	case "xlsx":
		return r.readExcelData()
	default:
		return nil, core.NewUnsupportedFormatError(filepath.Ext(r.filePath))
	}
}

func (r *DataReader) readExcelData() (*dataset.Dataset, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()
	r.logger.Debug("Excel file opened in %.2fms", msSince(startTime))

	sheet, err := r.resolveSheet(f)
	if err != nil {
		return nil, err
	}

	readStart := time.Now()
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", sheet, err)
	}
	r.logger.Debug("%s read in %.2fms (%d rows)", sheet, msSince(readStart), len(rows))

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", core.ErrNoHeader, sheet)
	}

	headers := dataset.UniqueHeaders(padRow(rows[0], maxWidth(rows)))
	ds := dataset.New(r.filePath, headers)
	dates := newDateStyles(f)

	for i := 1; i < len(rows); i++ {
		if isBlank(rows[i]) {
			continue
		}
		row := make(dataset.Row, len(headers))
		for j, header := range headers {
			raw := ""
			if j < len(rows[i]) {
				raw = rows[i][j]
			}
			if raw == "" {
				row[header] = dataset.NewMissingValue()
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return nil, fmt.Errorf("invalid cell position (%d,%d): %w", j+1, i+1, err)
			}
			cellType, err := f.GetCellType(sheet, cell)
			if err != nil {
				return nil, fmt.Errorf("failed to read cell %s: %w", cell, err)
			}
			value, err := dates.excelValue(sheet, cell, cellType, raw)
			if err != nil {
				return nil, fmt.Errorf("failed to read style of cell %s: %w", cell, err)
			}
			row[header] = value
		}
		ds.Rows = append(ds.Rows, row)
	}

	r.logger.Info("XLSX file processed (%d columns, %d rows)", len(ds.Headers), ds.Len())
	return ds, nil
}

// resolveSheet returns the configured sheet, or the first sheet of the workbook.
func (r *DataReader) resolveSheet(f *excelize.File) (string, error) {
	if r.sheet != "" {
		idx, err := f.GetSheetIndex(r.sheet)
		if err != nil || idx == -1 {
			return "", core.NewSheetNotFoundError(r.sheet)
		}
		return r.sheet, nil
	}
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", core.NewSheetNotFoundError("<first sheet>")
	}
	return sheets[0], nil
}

// excelValue maps a raw cell to a typed value using the cell's stored type.
// Cells without an explicit type are numbers in OOXML; numbers shown through
// a date or time format become datetimes.
func (d *dateStyles) excelValue(sheet, cell string, cellType excelize.CellType, raw string) (dataset.Value, error) {
	switch cellType {
	case excelize.CellTypeBool:
		if b, err := strconv.ParseBool(raw); err == nil {
			return dataset.NewBooleanValue(b), nil
		}
	case excelize.CellTypeDate:
		if t, ok := parseISOCell(raw); ok {
			return dataset.NewDatetimeValue(t), nil
		}
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			break
		}
		isDate, err := d.isDateCell(sheet, cell)
		if err != nil {
			return dataset.Value{}, err
		}
		if isDate {
			if t, err := d.serialToTime(n); err == nil {
				return dataset.NewDatetimeValue(t), nil
			}
		}
		return dataset.NewNumericValue(n), nil
	}
	return dataset.NewStringValue(raw), nil
}

func (r *DataReader) readCSVData() (*dataset.Dataset, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	readStart := time.Now()
	ds, err := DecodeCSV(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	ds.Source = r.filePath
	r.logger.Info("CSV file read in %.2fms (%d columns, %d rows)", msSince(readStart), len(ds.Headers), ds.Len())
	return ds, nil
}

// DecodeCSV reads comma-separated text with a header row. A leading UTF-8
// byte-order mark is dropped. A column whose non-empty cells all parse as
// numbers is numeric; every other non-empty cell is a string.
func DecodeCSV(in io.Reader) (*dataset.Dataset, error) {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, core.ErrNoHeader
	}
	records[0] = padRow(records[0], maxWidth(records))
	if len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], utf8BOM)
	}

	headers := dataset.UniqueHeaders(records[0])
	numeric := numericColumns(records[1:], len(headers))

	ds := dataset.New("", headers)
	for _, record := range records[1:] {
		if isBlank(record) {
			continue
		}
		row := make(dataset.Row, len(headers))
		for j, header := range headers {
			raw := ""
			if j < len(record) {
				raw = record[j]
			}
			switch {
			case raw == "":
				row[header] = dataset.NewMissingValue()
			case numeric[j]:
				n, _ := strconv.ParseFloat(raw, 64)
				row[header] = dataset.NewNumericValue(n)
			default:
				row[header] = dataset.NewStringValue(raw)
			}
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds, nil
}

func numericColumns(records [][]string, width int) []bool {
	numeric := make([]bool, width)
	seen := make([]bool, width)
	for j := range numeric {
		numeric[j] = true
	}
	for _, record := range records {
		for j := 0; j < width && j < len(record); j++ {
			if record[j] == "" {
				continue
			}
			seen[j] = true
			if _, err := strconv.ParseFloat(record[j], 64); err != nil {
				numeric[j] = false
			}
		}
	}
	for j := range numeric {
		numeric[j] = numeric[j] && seen[j]
	}
	return numeric
}

func maxWidth(rows [][]string) int {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

func padRow(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

func msSince(t time.Time) float64 {
	return float64(time.Since(t).Nanoseconds()) / 1e6
}
