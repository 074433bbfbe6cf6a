package loader

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"

	"github.com/mapload/mapload/pkg/mapping"
	"github.com/mapload/mapload/pkg/xmlstream"
)

// eventCollector keeps the first event reported during one bind. Later
// reports are ignored.
type eventCollector struct {
	first *ValidationEvent
	cause error
}

// report records ev unless an event was already captured. It always returns
// false, asking the caller to stop.
func (c *eventCollector) report(ev ValidationEvent, cause error) bool {
	if c.first == nil {
		c.first = &ev
		c.cause = cause
	}
	return false
}

// failure folds the captured event into the error returned to the caller.
// abort is used as the cause when no event carried one.
func (c *eventCollector) failure(origin mapping.Origin, abort error) error {
	if c.first == nil {
		return &MappingBindError{Origin: origin, Message: abort.Error(), Cause: abort}
	}
	cause := c.cause
	if cause == nil {
		cause = abort
	}
	return &MappingBindError{
		Origin:  origin,
		Line:    c.first.Line,
		Column:  c.first.Column,
		Message: c.first.Message,
		Cause:   cause,
	}
}

// unmarshaller binds one document to the typed root selected by its
// classification
type unmarshaller struct {
	class  Classification
	origin mapping.Origin
	events eventCollector
}

func newUnmarshaller(c Classification, origin mapping.Origin) *unmarshaller {
	return &unmarshaller{class: c, origin: origin}
}

// bindStream decodes the root element from tr. tracker must be the reader at
// the bottom of tr; it locates the failure when decoding stops.
func (u *unmarshaller) bindStream(tr xml.TokenReader, tracker *xmlstream.Tracker) (mapping.Root, error) {
	if u.class.Normalize {
		tr = xmlstream.NewNamespaceFilter(tr, u.class.NamespaceURI)
	}

	dec := xml.NewTokenDecoder(tr)
	root, err := u.decode(dec)
	if err == nil {
		err = drain(dec)
	}
	if err != nil {
		u.events.report(bindEvent(err, tracker), err)
		return mapping.Root{}, u.events.failure(u.origin, err)
	}
	return root, nil
}

// drain reads the rest of the document after the root element so malformed
// trailing content fails the load
func drain(dec *xml.Decoder) error {
	for {
		if _, err := dec.Token(); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

// bindBytes binds a fully buffered document
func (u *unmarshaller) bindBytes(data []byte) (mapping.Root, error) {
	tracker := xmlstream.NewTracker(xmlstream.NewDecoder(bytes.NewReader(data)))
	return u.bindStream(tracker, tracker)
}

func (u *unmarshaller) decode(dec *xml.Decoder) (mapping.Root, error) {
	switch u.class.Dialect {
	case mapping.DialectModern:
		doc := new(mapping.EntityMappings)
		if err := dec.Decode(doc); err != nil {
			return mapping.Root{}, err
		}
		return mapping.NewModernRoot(doc, u.class.Version, u.origin), nil
	default:
		doc := new(mapping.HibernateMapping)
		if err := dec.Decode(doc); err != nil {
			return mapping.Root{}, err
		}
		return mapping.NewLegacyRoot(doc, u.origin), nil
	}
}

// bindEvent locates a decode failure. Syntax errors point at where the parser
// stopped; anything else points at the start of the token being bound.
func bindEvent(err error, tracker *xmlstream.Tracker) ValidationEvent {
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		pos := tracker.Current()
		return ValidationEvent{Line: pos.Line, Column: pos.Column, Message: syntaxErr.Msg}
	}
	pos := tracker.Last()
	return ValidationEvent{Line: pos.Line, Column: pos.Column, Message: err.Error()}
}
