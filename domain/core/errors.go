package core

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors - centralized error definitions
var (
	// Schema errors
	ErrMissingColumn = errors.New("missing column")
	ErrNoHeader      = errors.New("sheet has no header row")

	// Input errors
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrSheetNotFound     = errors.New("sheet not found")
)

// MissingColumnError lists every required column absent from a dataset.
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	quoted := make([]string, len(e.Columns))
	for i, c := range e.Columns {
		quoted[i] = fmt.Sprintf("%q", c)
	}
	return fmt.Sprintf("%v: %s", ErrMissingColumn, strings.Join(quoted, ", "))
}

func (e *MissingColumnError) Unwrap() error {
	return ErrMissingColumn
}

// Error constructors with context
func NewMissingColumnError(columns []string) error {
	return &MissingColumnError{Columns: append([]string(nil), columns...)}
}

func NewUnsupportedFormatError(ext string) error {
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

func NewSheetNotFoundError(sheet string) error {
	return fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
}

// Error checking helpers
func IsMissingColumnError(err error) bool {
	return errors.Is(err, ErrMissingColumn)
}

func IsInputError(err error) bool {
	return errors.Is(err, ErrUnsupportedFormat) ||
		errors.Is(err, ErrSheetNotFound) ||
		errors.Is(err, ErrNoHeader)
}
