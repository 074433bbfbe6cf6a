package schema

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSchemaNotFound is the cause when the locator has no such schema
	ErrSchemaNotFound = errors.New("schema not found")
	// ErrSchemaUnreadable is the cause when the schema exists but could not be read
	ErrSchemaUnreadable = errors.New("schema could not be read")
	// ErrSchemaMalformed is the cause when the schema was read but does not compile
	ErrSchemaMalformed = errors.New("schema is malformed")
)

// ResolutionError reports a failure to produce a compiled schema for Name
type ResolutionError struct {
	Name  string
	Cause error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("unable to resolve schema %q: %v", e.Name, e.Cause)
}

func (e *ResolutionError) Unwrap() error {
	return e.Cause
}

// Violation is one schema constraint failure located in the validated document
type Violation struct {
	Line    int
	Column  int
	Code    string
	Message string
	Path    string
}

func (v Violation) String() string {
	if v.Line > 0 {
		return fmt.Sprintf("%d:%d: %s", v.Line, v.Column, v.Message)
	}
	return v.Message
}

// ValidationError lists the violations found while validating a document,
// ordered by position
type ValidationError struct {
	Schema     string
	Violations []Violation
	Err        error
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "document does not conform to %s", e.Schema)
	if len(e.Violations) > 0 {
		b.WriteString(": ")
		b.WriteString(e.Violations[0].String())
		if n := len(e.Violations) - 1; n > 0 {
			fmt.Fprintf(&b, " (and %d more)", n)
		}
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// First returns the earliest violation
func (e *ValidationError) First() (Violation, bool) {
	if len(e.Violations) == 0 {
		return Violation{}, false
	}
	return e.Violations[0], true
}
