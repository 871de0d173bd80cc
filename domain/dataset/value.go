package dataset

import (
	"strconv"
	"time"
)

// ValueType defines the storage type for a cell value
type ValueType string

const (
	ValueTypeString   ValueType = "string"
	ValueTypeNumeric  ValueType = "numeric"
	ValueTypeBoolean  ValueType = "boolean"
	ValueTypeDatetime ValueType = "datetime"
	ValueTypeMissing  ValueType = "missing"
)

// Value represents a typed spreadsheet cell.
type Value struct {
	Type       ValueType  `json:"type"`
	StringVal  *string    `json:"string_val,omitempty"`
	NumericVal *float64   `json:"numeric_val,omitempty"`
	BooleanVal *bool      `json:"boolean_val,omitempty"`
	TimeVal    *time.Time `json:"time_val,omitempty"`
}

// DatetimeLayout renders datetimes in delimited text, seconds precision
const DatetimeLayout = "2006-01-02 15:04:05"

// DateLayout renders datetimes of a column whose values all fall at midnight
const DateLayout = "2006-01-02"

// NewStringValue creates a string value. Unlike an empty cell, an empty
// string is still a string.
func NewStringValue(s string) Value {
	return Value{Type: ValueTypeString, StringVal: &s}
}

// NewNumericValue creates a numeric value
func NewNumericValue(n float64) Value {
	return Value{Type: ValueTypeNumeric, NumericVal: &n}
}

// NewBooleanValue creates a boolean value
func NewBooleanValue(b bool) Value {
	return Value{Type: ValueTypeBoolean, BooleanVal: &b}
}

// NewDatetimeValue creates a datetime value
func NewDatetimeValue(t time.Time) Value {
	return Value{Type: ValueTypeDatetime, TimeVal: &t}
}

// NewMissingValue creates a missing value
func NewMissingValue() Value {
	return Value{Type: ValueTypeMissing}
}

// IsString reports whether the value holds text.
func (v Value) IsString() bool {
	return v.Type == ValueTypeString && v.StringVal != nil
}

// Time returns the datetime payload and whether the value holds one.
func (v Value) Time() (time.Time, bool) {
	if v.Type == ValueTypeDatetime && v.TimeVal != nil {
		return *v.TimeVal, true
	}
	return time.Time{}, false
}

// IsMidnight reports whether v is a datetime with no time-of-day part.
func (v Value) IsMidnight() bool {
	t, ok := v.Time()
	if !ok {
		return false
	}
	h, m, sec := t.Clock()
	return h == 0 && m == 0 && sec == 0 && t.Nanosecond() == 0
}

// IsMissing reports whether the cell was empty.
func (v Value) IsMissing() bool {
	return v.Type == ValueTypeMissing || v.Type == ""
}

// Text returns the string payload, or "" for non-string values.
func (v Value) Text() string {
	if v.IsString() {
		return *v.StringVal
	}
	return ""
}

// Interface returns the native Go value used when writing workbook cells.
// Missing values return nil.
func (v Value) Interface() interface{} {
	switch v.Type {
	case ValueTypeString:
		if v.StringVal != nil {
			return *v.StringVal
		}
	case ValueTypeNumeric:
		if v.NumericVal != nil {
			return *v.NumericVal
		}
	case ValueTypeBoolean:
		if v.BooleanVal != nil {
			return *v.BooleanVal
		}
	case ValueTypeDatetime:
		if v.TimeVal != nil {
			return *v.TimeVal
		}
	}
	return nil
}

// String returns the delimited-text rendering of the value.
func (v Value) String() string {
	switch v.Type {
	case ValueTypeString:
		if v.StringVal != nil {
			return *v.StringVal
		}
	case ValueTypeNumeric:
		if v.NumericVal != nil {
			return strconv.FormatFloat(*v.NumericVal, 'f', -1, 64)
		}
	case ValueTypeBoolean:
		if v.BooleanVal != nil {
			if *v.BooleanVal {
				return "True"
			}
			return "False"
		}
	case ValueTypeDatetime:
		if v.TimeVal != nil {
			if v.TimeVal.Nanosecond() != 0 {
				return v.TimeVal.Format(DatetimeLayout + ".000000")
			}
			return v.TimeVal.Format(DatetimeLayout)
		}
	}
	return ""
}
