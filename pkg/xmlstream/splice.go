package xmlstream

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html/charset"
)

var encodingDecl = regexp.MustCompile(`^(?:\xEF\xBB\xBF)?<\?xml[^>]*?\sencoding\s*=\s*["']([A-Za-z0-9._:\-]+)["']`)

// ToUTF8 transcodes a document whose prolog declares another encoding and
// rewrites the declaration to say UTF-8, the only spelling encoding/xml
// accepts without a CharsetReader. Line breaks are preserved, so line numbers
// in the result match the original.
func ToUTF8(data []byte) ([]byte, error) {
	m := encodingDecl.FindSubmatchIndex(data)
	if m == nil {
		return data, nil
	}
	label := strings.ToLower(string(data[m[2]:m[3]]))
	if label == "utf-8" {
		return data, nil
	}

	r, err := charset.NewReaderLabel(label, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unsupported document encoding %q: %w", label, err)
	}
	converted, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decoding %s document: %w", label, err)
	}

	// The prolog is ASCII in every supported encoding, so its offsets carry over
	out := make([]byte, 0, len(converted)+8)
	out = append(out, converted[:m[2]]...)
	out = append(out, "UTF-8"...)
	out = append(out, converted[m[3]:]...)
	return out, nil
}

// Edit records text inserted into a document at a source position
type Edit struct {
	Line   int
	Column int
	Delta  int
}

// Edits maps positions in a rewritten document back to the original. Every
// edit is a same-line insertion, so only columns move.
type Edits []Edit

// Source converts a line and column in the rewritten document back into the
// original document
func (e Edits) Source(line, col int) (int, int) {
	shift := 0
	for _, ed := range e {
		if ed.Line != line {
			continue
		}
		// col lies in the rewritten text, past the edit plus what it inserted
		if col >= ed.Column+shift+ed.Delta {
			shift += ed.Delta
		} else if col > ed.Column+shift {
			// Inside the inserted text itself
			return line, ed.Column
		}
	}
	return line, col - shift
}

// AddDefaultNamespace declares uri as the default namespace of the root
// element and replaces every xmlns="" undeclaration with it. The result is
// the text equivalent of NewNamespaceFilter, for consumers that need bytes
// rather than tokens.
func AddDefaultNamespace(data []byte, uri string) ([]byte, Edits, error) {
	d := xml.NewDecoder(bytes.NewReader(data))

	type splice struct {
		offset int
		text   string
		line   int
		col    int
	}
	var splices []splice
	seenRoot := false

	for {
		line, col := d.InputPos()
		start := int(d.InputOffset())
		tok, err := d.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		end := int(d.InputOffset())
		tag := data[start:end]

		if at, ok := findEmptyDefaultNamespace(tag); ok {
			// Fill in the empty value: xmlns="" becomes xmlns="uri"
			off := start + at
			splices = append(splices, splice{offset: off, text: escapeAttr(uri), line: line, col: col + (off - start)})
		} else if !seenRoot {
			off := start + 1 + len(rawName(se.Name))
			text := ` xmlns="` + escapeAttr(uri) + `"`
			splices = append(splices, splice{offset: off, text: text, line: line, col: col + (off - start)})
		}
		seenRoot = true
	}

	if len(splices) == 0 {
		return data, nil, nil
	}

	var out bytes.Buffer
	out.Grow(len(data) + len(splices)*len(uri) + 16)
	edits := make(Edits, 0, len(splices))
	prev := 0
	for _, s := range splices {
		out.Write(data[prev:s.offset])
		out.WriteString(s.text)
		prev = s.offset
		edits = append(edits, Edit{Line: s.line, Column: s.col, Delta: len(s.text)})
	}
	out.Write(data[prev:])
	return out.Bytes(), edits, nil
}

func rawName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

var attrPattern = regexp.MustCompile(`\s+([^\s=/>]+)\s*=\s*("[^"]*"|'[^']*')`)

// findEmptyDefaultNamespace returns the offset just inside the quotes of an
// xmlns="" attribute within a raw start tag
func findEmptyDefaultNamespace(tag []byte) (int, bool) {
	for _, m := range attrPattern.FindAllSubmatchIndex(tag, -1) {
		name := string(tag[m[2]:m[3]])
		value := tag[m[4]:m[5]]
		if name == "xmlns" && len(value) == 2 {
			return m[4] + 1, true
		}
	}
	return 0, false
}

func escapeAttr(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
