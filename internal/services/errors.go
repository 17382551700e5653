package services

import (
	"errors"
	"fmt"
)

// Sentinel errors for not-found lookups; handlers map these to 404.
var (
	ErrCategoryNotFound   = errors.New("category not found")
	ErrArticleNotFound    = errors.New("article not found")
	ErrMediaNotFound      = errors.New("media not found")
	ErrTestNotFound       = errors.New("test not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrOptionNotFound     = errors.New("option not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrRoleNotFound       = errors.New("role not found")
	ErrGroupNotFound      = errors.New("group not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrResultNotFound     = errors.New("test result not found")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("authentication required")
	ErrForbidden          = errors.New("insufficient permissions")
)

// ReferenceError reports a write that names a parent row which does not
// exist, caught before the insert rather than surfaced as a raw FK failure.
type ReferenceError struct {
	Entity string
	ID     uint
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("referenced %s %d does not exist", e.Entity, e.ID)
}

func NewReferenceError(entity string, id uint) *ReferenceError {
	return &ReferenceError{Entity: entity, ID: id}
}

// CycleError reports corrupted category data: a parent chain that loops and
// therefore cannot be rendered as a tree. ID is one category on the loop.
type CycleError struct {
	ID uint
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("category hierarchy contains a cycle involving category %d", e.ID)
}

// BusinessRuleError reports a domain rule violation that is not a plain
// field-validation failure.
type BusinessRuleError struct {
	Rule    string
	Message string
}

func (e *BusinessRuleError) Error() string {
	return fmt.Sprintf("business rule violation (%s): %s", e.Rule, e.Message)
}

func NewBusinessRuleError(rule, message string) *BusinessRuleError {
	return &BusinessRuleError{Rule: rule, Message: message}
}
