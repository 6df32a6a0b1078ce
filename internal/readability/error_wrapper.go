package readability

import (
	"errors"
	"fmt"
)

// ErrorType defines the category of an error
type ErrorType string

// Error types
const (
	ParseError      ErrorType = "parse"
	ExtractionError ErrorType = "extraction"
	CleanupError    ErrorType = "cleanup"
)

// Common errors that can be used throughout the package
var (
	ErrNoDocument  = errors.New("no document to parse")
	ErrTreeMutated = errors.New("document tree could not be rewritten")
)

// Error is an error tagged with the pipeline stage that produced it.
type Error struct {
	Type    ErrorType
	Func    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("[%s:%s] %v", e.Type, e.Func, e.Err)
	}
	return fmt.Sprintf("[%s:%s] %s: %v", e.Type, e.Func, e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WrapError wraps an error with context information
func WrapError(err error, errorType ErrorType, funcName, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Type: errorType, Func: funcName, Message: message, Err: err}
}

// WrapParseError wraps a parsing error
func WrapParseError(err error, funcName, message string) error {
	return WrapError(err, ParseError, funcName, message)
}

// WrapExtractionError wraps an extraction error
func WrapExtractionError(err error, funcName, message string) error {
	return WrapError(err, ExtractionError, funcName, message)
}

// WrapCleanupError wraps a cleanup error
func WrapCleanupError(err error, funcName, message string) error {
	return WrapError(err, CleanupError, funcName, message)
}

// IsErrorType checks if any error in the chain is of a specific type
func IsErrorType(err error, errorType ErrorType) bool {
	var e *Error
	for err != nil {
		if !errors.As(err, &e) {
			return false
		}
		if e.Type == errorType {
			return true
		}
		err = e.Err
	}
	return false
}

// IsParseError returns true if the error is a parse error
func IsParseError(err error) bool {
	return IsErrorType(err, ParseError)
}

// IsExtractionError returns true if the error is an extraction error
func IsExtractionError(err error) bool {
	return IsErrorType(err, ExtractionError)
}

// IsCleanupError returns true if the error is a cleanup error
func IsCleanupError(err error) bool {
	return IsErrorType(err, CleanupError)
}

// recoverTreeError turns a panic raised while rewriting the tree into an
// extraction error stored in *err.
func recoverTreeError(funcName string, err *error) {
	if rec := recover(); rec != nil {
		*err = WrapExtractionError(fmt.Errorf("%w: %v", ErrTreeMutated, rec), funcName, "")
	}
}
