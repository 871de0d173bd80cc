package core

import (
	"github.com/google/uuid"
)

// RunID identifies a single processing run
type RunID string

// NewRunID creates a new time-ordered run identifier
func NewRunID() RunID {
	// UUID v7 sorts by creation time; v4 is the fallback
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return RunID(id.String())
}

func (id RunID) String() string { return string(id) }

// IsEmpty checks if the ID is empty
func (id RunID) IsEmpty() bool {
	return id == ""
}
