package repositories

import (
	"errors"
	"fmt"
)

// NotFoundError reports that a single row lookup matched nothing.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with ID %d", e.Entity, e.ID)
}

func NewNotFoundError(entity string, id uint) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// IsNotFoundError reports whether err (or anything it wraps) is a row-level
// not-found condition.
func IsNotFoundError(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
