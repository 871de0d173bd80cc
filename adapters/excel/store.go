package excel

import (
	"cleanser/domain/dataset"
	"cleanser/internal"
)

// Store implements ports.DatasetStore on the local filesystem: spreadsheets
// in, a workbook and a CSV file out.
type Store struct {
	Sheet  string // worksheet to read; empty means the first sheet
	Logger *internal.Logger
}

// NewStore creates a store reading the given worksheet
func NewStore(sheet string) *Store {
	return &Store{Sheet: sheet}
}

// WithLogger sets the logger handed to readers
func (s *Store) WithLogger(logger *internal.Logger) *Store {
	s.Logger = logger
	return s
}

// Load reads an .xlsx or .csv file
func (s *Store) Load(path string) (*dataset.Dataset, error) {
	return NewDataReader(path).WithSheet(s.Sheet).WithLogger(s.Logger).ReadData()
}

// WriteFull writes ds as a workbook
func (s *Store) WriteFull(path string, ds *dataset.Dataset) error {
	return WriteXLSX(path, ds)
}

// WriteReduced writes ds as UTF-8 CSV with a byte-order mark
func (s *Store) WriteReduced(path string, ds *dataset.Dataset) error {
	return WriteCSV(path, ds)
}
