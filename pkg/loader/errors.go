package loader

import (
	"errors"
	"fmt"

	"github.com/mapload/mapload/pkg/mapping"
	"github.com/mapload/mapload/pkg/schema"
)

// ErrNoRoot is matched by every NoRootElementError
var ErrNoRoot = errors.New("could not locate root element")

// StreamOpenError reports that the document could not be opened or read as
// an XML token stream
type StreamOpenError struct {
	Origin mapping.Origin
	Cause  error
}

func (e *StreamOpenError) Error() string {
	return fmt.Sprintf("unable to open XML stream for %s: %v", e.Origin, e.Cause)
}

func (e *StreamOpenError) Unwrap() error {
	return e.Cause
}

// NoRootElementError reports a document that ends before any element starts
type NoRootElementError struct {
	Origin mapping.Origin
}

func (e *NoRootElementError) Error() string {
	return fmt.Sprintf("%s in %s", ErrNoRoot, e.Origin)
}

func (e *NoRootElementError) Unwrap() error {
	return ErrNoRoot
}

// UnsupportedSchemaVersionError reports an entity-mappings version with no
// known schema
type UnsupportedSchemaVersionError struct {
	Origin  mapping.Origin
	Version string
}

func (e *UnsupportedSchemaVersionError) Error() string {
	return fmt.Sprintf("unsupported orm.xml XSD version encountered [%s] in %s (supported: %v)",
		e.Version, e.Origin, SupportedVersions())
}

// SchemaResolutionError reports that the schema selected for a document could
// not be produced. Cause is the *schema.ResolutionError from the cache.
type SchemaResolutionError struct {
	Origin mapping.Origin
	Name   string
	Cause  error
}

func (e *SchemaResolutionError) Error() string {
	cause := e.Cause
	var resolution *schema.ResolutionError
	if errors.As(cause, &resolution) {
		cause = resolution.Cause
	}
	return fmt.Sprintf("unable to resolve schema %q for %s: %v", e.Name, e.Origin, cause)
}

func (e *SchemaResolutionError) Unwrap() error {
	return e.Cause
}

// ValidationEvent is the location and message of the first failure seen while
// binding a document
type ValidationEvent struct {
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Message string `json:"message"`
}

// MappingBindError reports a structural or schema failure while binding.
// Line, Column and Message come from the first captured event; Cause is the
// error that stopped the bind.
type MappingBindError struct {
	Origin  mapping.Origin
	Line    int
	Column  int
	Message string
	Cause   error
}

func (e *MappingBindError) Error() string {
	return fmt.Sprintf("Unable to perform unmarshalling at line number %d and column %d. Message: %s [%s]",
		e.Line, e.Column, e.Message, e.Origin)
}

func (e *MappingBindError) Unwrap() error {
	return e.Cause
}

// Event returns the captured failure as a ValidationEvent
func (e *MappingBindError) Event() ValidationEvent {
	return ValidationEvent{Line: e.Line, Column: e.Column, Message: e.Message}
}
