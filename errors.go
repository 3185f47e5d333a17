package tileset

import (
	"fmt"
)

// ManifestConflictError is returned when two manifest entries claim the
// same tile index.
type ManifestConflictError struct {
	Index  int
	First  string
	Second string
}

func (e *ManifestConflictError) Error() string {
	return fmt.Sprintf("tile index %d declared twice (%s, %s)", e.Index, e.First, e.Second)
}

// OutOfRangeIndexError is returned when an entry's index falls outside the grid.
type OutOfRangeIndexError struct {
	Index int
	Name  string
	Limit int
}

func (e *OutOfRangeIndexError) Error() string {
	return fmt.Sprintf("tile %s index %d is outside [0, %d)", e.Name, e.Index, e.Limit)
}

// RenderError reports which tile failed to paint.
type RenderError struct {
	Index int
	Name  string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to render tile %d (%s): %v", e.Index, e.Name, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
