package loader

import (
	"bytes"
	"errors"

	"github.com/mapload/mapload/pkg/mapping"
	"github.com/mapload/mapload/pkg/schema"
	"github.com/mapload/mapload/pkg/xmlstream"
)

// bindValidated checks data against h and binds it when it conforms. The
// validator reads text, so a document that needs normalization is validated
// in its namespaced form and violation positions are mapped back.
func (u *unmarshaller) bindValidated(data []byte, h *schema.Handle) (mapping.Root, error) {
	doc, edits := data, xmlstream.Edits(nil)
	if u.class.Normalize {
		spliced, e, err := xmlstream.AddDefaultNamespace(data, u.class.NamespaceURI)
		if err != nil {
			return u.bindAfterAbort(data, err)
		}
		doc, edits = spliced, e
	}

	err := h.Validate(bytes.NewReader(doc))
	if err == nil {
		return u.bindBytes(data)
	}

	var verr *schema.ValidationError
	if !errors.As(err, &verr) {
		return u.bindAfterAbort(data, err)
	}
	// Violations are sorted with unpositioned ones last
	if first, ok := verr.First(); !ok || first.Line == 0 {
		return u.bindAfterAbort(data, verr)
	}
	for _, v := range verr.Violations {
		line, col := edits.Source(v.Line, v.Column)
		u.events.report(ValidationEvent{Line: line, Column: col, Message: v.Message}, verr)
	}
	return mapping.Root{}, u.events.failure(u.origin, verr)
}

// bindAfterAbort handles a validator that stopped without reporting a
// violation, typically on malformed input. The binder meets the same problem
// and can locate it; if it binds cleanly the validator's error is surfaced
// without a position.
func (u *unmarshaller) bindAfterAbort(data []byte, abort error) (mapping.Root, error) {
	if _, err := u.bindBytes(data); err != nil {
		return mapping.Root{}, err
	}
	return mapping.Root{}, u.events.failure(u.origin, abort)
}
