package triple

import (
	"errors"
	"fmt"
)

// FormatError represents a fatal format error raised during primitive
// normalization or clause parsing.
//
// Format errors are raised immediately, never deferred: an invalid primitive
// fails the enclosing construction before any partial Triple is observable.
//
// A failed match is NOT a format error - no-match is an ordinary boolean
// outcome so that callers iterating many candidate facts pay no
// error-handling cost per fact.
type FormatError struct {
	// Code identifies the error category.
	Code FormatErrorCode

	// Token is the offending primitive, as supplied by the caller.
	Token string

	// Clause is the offending query clause (set for MALFORMED_CLAUSE only).
	Clause string
}

// FormatErrorCode categorizes format errors.
type FormatErrorCode string

const (
	// ErrCodeEmptyPrimitive indicates an empty or whitespace-only primitive.
	ErrCodeEmptyPrimitive FormatErrorCode = "EMPTY_PRIMITIVE"

	// ErrCodeMalformedQuote indicates a quoted primitive without a matching
	// closing quote.
	ErrCodeMalformedQuote FormatErrorCode = "MALFORMED_QUOTE"

	// ErrCodePunctuationOnly indicates a primitive that contains no word
	// characters (letters, digits, underscore) after quote stripping.
	ErrCodePunctuationOnly FormatErrorCode = "PUNCTUATION_ONLY"

	// ErrCodeMalformedClause indicates a query clause that does not tokenize
	// into exactly three primitives.
	ErrCodeMalformedClause FormatErrorCode = "MALFORMED_CLAUSE"

	// ErrCodeUnboundVariable indicates a variable in a clause that requires
	// concrete primitives.
	ErrCodeUnboundVariable FormatErrorCode = "UNBOUND_VARIABLE"
)

// Error implements the error interface.
func (e *FormatError) Error() string {
	switch e.Code {
	case ErrCodeEmptyPrimitive:
		return fmt.Sprintf("%s: empty primitive %q", e.Code, e.Token)
	case ErrCodeMalformedQuote:
		return fmt.Sprintf("%s: malformed quoted primitive %q", e.Code, e.Token)
	case ErrCodePunctuationOnly:
		return fmt.Sprintf("%s: primitive %q contains no word characters", e.Code, e.Token)
	case ErrCodeMalformedClause:
		return fmt.Sprintf("%s: malformed query clause %q: expected exactly three tokens", e.Code, e.Clause)
	case ErrCodeUnboundVariable:
		return fmt.Sprintf("%s: clause %q contains an unbound variable", e.Code, e.Clause)
	}
	return fmt.Sprintf("%s: invalid input %q", e.Code, e.Token)
}

// IsFormatError returns true if the error is a FormatError.
// Uses errors.As to handle wrapped errors.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// MissingArgumentError indicates a required argument was absent.
// Checked before any other validation.
type MissingArgumentError struct {
	// Name identifies the missing argument.
	Name string
}

// Error implements the error interface.
func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing required argument: %s", e.Name)
}

// IsMissingArgument returns true if the error is a MissingArgumentError.
// Uses errors.As to handle wrapped errors.
func IsMissingArgument(err error) bool {
	var me *MissingArgumentError
	return errors.As(err, &me)
}
