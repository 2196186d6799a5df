/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a TodoError.
type ErrorKind string

const (
	KindSyntax      ErrorKind = "syntax"
	KindOutOfRange  ErrorKind = "out_of_range"
	KindIO          ErrorKind = "io"
	KindArgument    ErrorKind = "argument"
	KindEnvironment ErrorKind = "environment"
)

// Sentinel errors, one per kind. Use errors.Is(err, types.ErrSyntax) to test
// the kind of any error returned by the core packages.
var (
	ErrSyntax      = errors.New("storage file syntax error")
	ErrOutOfRange  = errors.New("task index out of range")
	ErrIO          = errors.New("storage i/o error")
	ErrArgument    = errors.New("invalid arguments")
	ErrEnvironment = errors.New("environment error")
)

var sentinels = map[ErrorKind]error{
	KindSyntax:      ErrSyntax,
	KindOutOfRange:  ErrOutOfRange,
	KindIO:          ErrIO,
	KindArgument:    ErrArgument,
	KindEnvironment: ErrEnvironment,
}

// TodoError carries the kind of failure, the operation that failed and, where
// available, the storage path involved.
type TodoError struct {
	Kind    ErrorKind `json:"kind"`
	Op      string    `json:"op,omitempty"`
	Path    string    `json:"path,omitempty"`
	Message string    `json:"message,omitempty"`
	Err     error     `json:"-"`
}

func (e *TodoError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = sentinels[e.Kind].Error()
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Path != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *TodoError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind.
func (e *TodoError) Is(target error) bool {
	s, ok := sentinels[e.Kind]
	return ok && s == target
}

// NewError creates a TodoError of the given kind.
func NewError(kind ErrorKind, op, message string, err error) *TodoError {
	return &TodoError{
		Kind:    kind,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// NewPathError creates a TodoError that names the storage path involved.
func NewPathError(kind ErrorKind, op, path string, err error) *TodoError {
	return &TodoError{
		Kind: kind,
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// KindOf returns the kind of err, or "" if err carries none.
func KindOf(err error) ErrorKind {
	var te *TodoError
	if errors.As(err, &te) {
		return te.Kind
	}
	for kind, s := range sentinels {
		if errors.Is(err, s) {
			return kind
		}
	}
	return ""
}
