// Package loader reads hibernate-mapping and entity-mappings documents into
// typed mapping roots. It classifies the document from its root element,
// validates it against the matching schema when validation is enabled and
// binds it, reporting the first failure with its line and column.
package loader

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/beevik/etree"
	"github.com/mapload/mapload/pkg/mapping"
	"github.com/mapload/mapload/pkg/schema"
	"github.com/mapload/mapload/pkg/xmlstream"
	"go.uber.org/zap"
)

// Loader loads mapping documents. It is safe for concurrent use; the schema
// cache is the only state shared between calls.
type Loader struct {
	validate bool
	logger   *zap.Logger
	locator  fs.FS
	cache    *schema.Cache
}

// New creates a Loader. Without WithSchemaCache it builds its own cache over
// the locator, or the embedded schemas when none is set.
func New(opts ...Option) *Loader {
	l := &Loader{
		validate: true,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.cache == nil {
		l.cache = schema.NewCache(l.locator, schema.WithLogger(l.logger))
	}
	return l
}

// ValidationEnabled reports whether documents are validated before binding
func (l *Loader) ValidationEnabled() bool {
	return l.validate
}

// Cache returns the schema cache used by the loader
func (l *Loader) Cache() *schema.Cache {
	return l.cache
}

// LoadFile opens and loads the mapping document at path
func (l *Loader) LoadFile(path string) (mapping.Root, error) {
	origin := mapping.FileOrigin(path)

	f, err := os.Open(path)
	if err != nil {
		return mapping.Root{}, &StreamOpenError{Origin: origin, Cause: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			l.logger.Debug("failed to close mapping stream", zap.Stringer("origin", origin), zap.Error(cerr))
		}
	}()

	return l.LoadStream(f, origin)
}

// LoadBytes loads a mapping document held in memory
func (l *Loader) LoadBytes(data []byte, origin mapping.Origin) (mapping.Root, error) {
	return l.LoadStream(bytes.NewReader(data), origin)
}

// LoadStream loads a mapping document from r. The reader stays owned by the
// caller. With validation disabled the document is bound as it streams;
// otherwise it is read fully so the validator and binder can both see it.
func (l *Loader) LoadStream(r io.Reader, origin mapping.Origin) (mapping.Root, error) {
	if r == nil {
		return mapping.Root{}, &StreamOpenError{Origin: origin, Cause: errors.New("nil reader")}
	}
	if !l.validate {
		return l.loadStreaming(r, origin)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return mapping.Root{}, &StreamOpenError{Origin: origin, Cause: err}
	}
	data, err = xmlstream.ToUTF8(data)
	if err != nil {
		return mapping.Root{}, &StreamOpenError{Origin: origin, Cause: err}
	}

	tracker := xmlstream.NewTracker(xmlstream.NewDecoder(bytes.NewReader(data)))
	start, _, err := xmlstream.PeekRoot(tracker)
	if err != nil {
		return mapping.Root{}, peekFailure(err, tracker, origin)
	}
	c, err := classify(rootFromStart(start), true, origin)
	if err != nil {
		return mapping.Root{}, err
	}
	return l.bindBuffered(data, c, origin)
}

// LoadTree loads a document that is already parsed. Positions in errors refer
// to the tree's serialized form.
func (l *Loader) LoadTree(doc *etree.Document, origin mapping.Origin) (mapping.Root, error) {
	if doc == nil || doc.Root() == nil {
		return mapping.Root{}, &NoRootElementError{Origin: origin}
	}
	root := doc.Root()

	c, err := classify(rootFromElement(root), l.validate, origin)
	if err != nil {
		return mapping.Root{}, err
	}

	// Only the root is serialized; a prolog could declare an encoding the
	// in-memory text no longer has
	tree := etree.NewDocument()
	tree.SetRoot(root.Copy())
	data, err := tree.WriteToBytes()
	if err != nil {
		return mapping.Root{}, &StreamOpenError{Origin: origin, Cause: err}
	}

	if !l.validate {
		l.logNormalize(c, origin)
		return newUnmarshaller(c, origin).bindBytes(data)
	}
	return l.bindBuffered(data, c, origin)
}

func (l *Loader) loadStreaming(r io.Reader, origin mapping.Origin) (mapping.Root, error) {
	tracker := xmlstream.NewTracker(xmlstream.NewDecoder(r))
	start, consumed, err := xmlstream.PeekRoot(tracker)
	if err != nil {
		return mapping.Root{}, peekFailure(err, tracker, origin)
	}
	c, err := classify(rootFromStart(start), false, origin)
	if err != nil {
		return mapping.Root{}, err
	}

	l.logNormalize(c, origin)
	return newUnmarshaller(c, origin).bindStream(xmlstream.Replay(consumed, tracker), tracker)
}

func (l *Loader) bindBuffered(data []byte, c Classification, origin mapping.Origin) (mapping.Root, error) {
	handle, err := l.cache.GetOrLoad(c.SchemaName)
	if err != nil {
		return mapping.Root{}, &SchemaResolutionError{Origin: origin, Name: c.SchemaName, Cause: err}
	}

	l.logNormalize(c, origin)
	return newUnmarshaller(c, origin).bindValidated(data, handle)
}

func (l *Loader) logNormalize(c Classification, origin mapping.Origin) {
	if c.Normalize {
		l.logger.Debug("mapping document did not define namespaces; adding namespace information",
			zap.Stringer("origin", origin),
			zap.String("namespace", c.NamespaceURI))
	}
}

// peekFailure converts an error hit while looking for the root element
func peekFailure(err error, tracker *xmlstream.Tracker, origin mapping.Origin) error {
	if errors.Is(err, xmlstream.ErrNoStartElement) {
		return &NoRootElementError{Origin: origin}
	}
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		var events eventCollector
		events.report(bindEvent(err, tracker), err)
		return events.failure(origin, err)
	}
	return &StreamOpenError{Origin: origin, Cause: err}
}
