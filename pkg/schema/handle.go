package schema

import (
	"fmt"
	"io"
	"sort"

	"github.com/jacoelho/xsd"
	xsderrors "github.com/jacoelho/xsd/errors"
)

// Handle is a compiled schema. It is immutable and safe to share between
// goroutines.
type Handle struct {
	name   string
	schema *xsd.Schema
}

// Name returns the logical name the schema was loaded under
func (h *Handle) Name() string {
	return h.name
}

// Validate checks the document read from r. Constraint failures are returned
// as *ValidationError; other failures (I/O, unparseable input) are wrapped.
func (h *Handle) Validate(r io.Reader) error {
	err := h.schema.Validate(r)
	if err == nil {
		return nil
	}

	list, ok := xsderrors.AsValidations(err)
	if !ok || len(list) == 0 {
		return fmt.Errorf("validating against %s: %w", h.name, err)
	}

	violations := make([]Violation, 0, len(list))
	for _, v := range list {
		violations = append(violations, Violation{
			Line:    v.Line,
			Column:  v.Column,
			Code:    v.Code,
			Message: v.Message,
			Path:    v.Path,
		})
	}
	sortViolations(violations)

	return &ValidationError{Schema: h.name, Violations: violations, Err: err}
}

// sortViolations orders violations by position; unpositioned ones go last
func sortViolations(vs []Violation) {
	sort.SliceStable(vs, func(i, j int) bool {
		a, b := vs[i], vs[j]
		if (a.Line == 0) != (b.Line == 0) {
			return b.Line == 0
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
}
