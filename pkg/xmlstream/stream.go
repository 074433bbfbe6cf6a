// Package xmlstream provides composable xml.TokenReader stages used to read
// mapping documents: position tracking, replay of peeked tokens and
// namespace normalization.
package xmlstream

import (
	"encoding/xml"
	"errors"
	"io"

	"golang.org/x/net/html/charset"
)

// ErrNoStartElement is returned by PeekRoot when the stream ends before any
// element starts
var ErrNoStartElement = errors.New("no start element found")

// NewDecoder returns a decoder that understands the common non-UTF-8
// encodings declared in an XML prolog
func NewDecoder(r io.Reader) *xml.Decoder {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel
	return d
}

// Position is a 1-based line and column plus the byte offset into the input
type Position struct {
	Line   int
	Column int
	Offset int64
}

// Tracker is an xml.TokenReader over a decoder that remembers where the most
// recently returned token started
type Tracker struct {
	dec  *xml.Decoder
	last Position
}

// NewTracker wraps dec
func NewTracker(dec *xml.Decoder) *Tracker {
	return &Tracker{dec: dec, last: Position{Line: 1, Column: 1}}
}

// Token returns the next namespace-translated token from the decoder
func (t *Tracker) Token() (xml.Token, error) {
	line, col := t.dec.InputPos()
	t.last = Position{Line: line, Column: col, Offset: t.dec.InputOffset()}
	return t.dec.Token()
}

// Last returns the start position of the most recently returned token
func (t *Tracker) Last() Position {
	return t.last
}

// Current returns the position the decoder has read up to
func (t *Tracker) Current() Position {
	line, col := t.dec.InputPos()
	return Position{Line: line, Column: col, Offset: t.dec.InputOffset()}
}

// PeekRoot reads tokens up to and including the first start element. It
// returns that element together with copies of every token consumed, so the
// caller can replay them in front of the remaining stream.
func PeekRoot(tr xml.TokenReader) (xml.StartElement, []xml.Token, error) {
	var consumed []xml.Token
	for {
		tok, err := tr.Token()
		if tok != nil {
			tok = xml.CopyToken(tok)
			consumed = append(consumed, tok)
			if start, ok := tok.(xml.StartElement); ok {
				return start, consumed, nil
			}
		}
		if err == io.EOF {
			return xml.StartElement{}, consumed, ErrNoStartElement
		}
		if err != nil {
			return xml.StartElement{}, consumed, err
		}
	}
}

type replay struct {
	buf []xml.Token
	src xml.TokenReader
}

// Replay returns a reader that yields buf before continuing with src
func Replay(buf []xml.Token, src xml.TokenReader) xml.TokenReader {
	if len(buf) == 0 {
		return src
	}
	return &replay{buf: buf, src: src}
}

func (r *replay) Token() (xml.Token, error) {
	if len(r.buf) > 0 {
		tok := r.buf[0]
		r.buf = r.buf[1:]
		return tok, nil
	}
	return r.src.Token()
}
