package ports

import (
	"cleanser/domain/dataset"
)

// DatasetStore loads input datasets and persists the two derived outputs
type DatasetStore interface {
	// Load reads the dataset at path
	Load(path string) (*dataset.Dataset, error)

	// WriteFull persists every column of ds (normalized workbook)
	WriteFull(path string, ds *dataset.Dataset) error

	// WriteReduced persists the reduced column subset (delimited text)
	WriteReduced(path string, ds *dataset.Dataset) error
}
