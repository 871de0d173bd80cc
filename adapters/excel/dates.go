package excel

import (
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Built-in number formats that display a date or a time.
var builtinDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true,
	20: true, 21: true, 22: true, 45: true, 46: true, 47: true,
}

// isoCellLayouts parse cells stored with t="d".
var isoCellLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// dateStyles tells which cell styles format numbers as dates. Results are
// cached per style index.
type dateStyles struct {
	f        *excelize.File
	date1904 bool
	cache    map[int]bool
}

func newDateStyles(f *excelize.File) *dateStyles {
	d := &dateStyles{f: f, cache: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		d.date1904 = *props.Date1904
	}
	return d
}

func (d *dateStyles) isDateCell(sheet, cell string) (bool, error) {
	idx, err := d.f.GetCellStyle(sheet, cell)
	if err != nil {
		return false, err
	}
	if isDate, ok := d.cache[idx]; ok {
		return isDate, nil
	}
	style, err := d.f.GetStyle(idx)
	if err != nil {
		return false, err
	}
	isDate := isDateStyle(style)
	d.cache[idx] = isDate
	return isDate, nil
}

// serialToTime converts an Excel serial number to a datetime.
func (d *dateStyles) serialToTime(serial float64) (time.Time, error) {
	return excelize.ExcelDateToTime(serial, d.date1904)
}

func isDateStyle(style *excelize.Style) bool {
	if style == nil {
		return false
	}
	if style.CustomNumFmt != nil {
		return isDateFormatCode(*style.CustomNumFmt)
	}
	return builtinDateFormats[style.NumFmt]
}

// isDateFormatCode reports whether a custom number format shows date or time
// parts. Quoted literals, escaped characters and bracketed modifiers such as
// [Red] or [$-409] are skipped; elapsed-time brackets like [h] count.
func isDateFormatCode(code string) bool {
	code = strings.ToLower(code)
	// Only the first section formats positive numbers.
	if i := strings.IndexByte(code, ';'); i >= 0 {
		code = code[:i]
	}

	for i := 0; i < len(code); i++ {
		switch c := code[i]; c {
		case '"':
			if j := strings.IndexByte(code[i+1:], '"'); j >= 0 {
				i += j + 1
			} else {
				return false
			}
		case '\\', '_', '*':
			i++
		case '[':
			j := strings.IndexByte(code[i+1:], ']')
			if j < 0 {
				return false
			}
			inner := code[i+1 : i+1+j]
			if inner != "" && strings.Trim(inner, "hms") == "" {
				return true
			}
			i += j + 1
		case 'y', 'd', 'h', 's', 'm':
			return true
		}
	}
	return false
}

// parseISOCell parses the text of an ISO 8601 date cell.
func parseISOCell(raw string) (time.Time, bool) {
	for _, layout := range isoCellLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
