package application

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrOutOfRange    = errors.New("index out of range")
	ErrNoPrimarySet  = errors.New("no primary project set. Use 'funknotes primary <project>' first")
	ErrNameReserved  = errors.New("name is reserved")
	ErrCorruptFormat = errors.New("corrupt format")
	ErrCancelled     = errors.New("cancelled")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError names the project, object or item that did not resolve
type NotFoundError struct {
	Kind string // "project", "object" or "item"
	Name string
	// Suggestions are close names, best first
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("%s '%s' not found", e.Kind, e.Name)
	if len(e.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(e.Suggestions, ", ") + "?)"
	}
	return msg
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// CorruptError describes a storage unit that could not be parsed
type CorruptError struct {
	Path   string
	Line   int // 0 when not line-oriented
	Reason string
}

func (e *CorruptError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("corrupt project file %s (line %d): %s", e.Path, e.Line, e.Reason)
	}
	return fmt.Sprintf("corrupt project file %s: %s", e.Path, e.Reason)
}

func (e *CorruptError) Is(target error) bool {
	return target == ErrCorruptFormat
}

// RangeError reports an item index outside [1, Count]
type RangeError struct {
	Object string
	Index  int
	Count  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("item %d not found in object '%s' (has %d items)", e.Index, e.Object, e.Count)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// CancelledError records a declined confirmation and the message to show
type CancelledError struct {
	Message string
}

func (e *CancelledError) Error() string {
	return e.Message
}

func (e *CancelledError) Is(target error) bool {
	return target == ErrCancelled
}
