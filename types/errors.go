/*
Copyright © 2025 sevenuz
*/
package types

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is checks against the typed errors below.
var (
	ErrExistence = errors.New("existence error")
	ErrParse     = errors.New("parse error")
	ErrState     = errors.New("state error")
)

// ExistenceError reports an id that is missing where it is required, present
// where absence is required, or a declared neighbour that does not exist.
type ExistenceError struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

func (e *ExistenceError) Error() string {
	if e.ID == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.ID, e.Message)
}

func (e *ExistenceError) Is(target error) bool { return target == ErrExistence }

// NewExistenceError creates a new ExistenceError.
func NewExistenceError(id, message string) *ExistenceError {
	return &ExistenceError{ID: id, Message: message}
}

// ParseError reports malformed input: a broken item block, an unknown file
// format or an invalid relative duration.
type ParseError struct {
	// Source names what was parsed, e.g. a file path, "duration" or an item line.
	Source  string `json:"source"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *ParseError) Error() string {
	msg := e.Message
	if e.Source != "" {
		msg = fmt.Sprintf("%s: %s", e.Source, msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// NewParseError creates a new ParseError.
func NewParseError(source, message string, err error) *ParseError {
	return &ParseError{Source: source, Message: message, Err: err}
}

// StateError reports a start on a running item or a stop on a stopped one.
// Since holds the conflicting timetrack entry (unix seconds) when there is one.
type StateError struct {
	ID      string `json:"id"`
	Since   int64  `json:"since,omitempty"`
	Message string `json:"message"`
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s %s", e.ID, e.Message)
}

func (e *StateError) Is(target error) bool { return target == ErrState }
