package catalog

import (
	"errors"

	"github.com/snnyvrz/shelfcatalog/internal/validation"
)

// ErrNotFound is returned when a referenced book does not exist.
var ErrNotFound = errors.New("book not found")

// ValidationError carries the per-field messages produced by the validation
// layer. It is always caller-correctable input, never a storage problem.
type ValidationError struct {
	Fields []validation.FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed"
}
