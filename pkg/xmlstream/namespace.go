package xmlstream

import "encoding/xml"

type namespaceFilter struct {
	src xml.TokenReader
	uri string
}

// NewNamespaceFilter returns a reader that reports every element carrying no
// namespace as belonging to uri. Elements that already have a namespace and
// all other tokens pass through untouched, in order.
//
// Unprefixed attributes keep their empty namespace; a default namespace
// declaration never applies to them either, so the result matches what the
// same document would produce with xmlns="uri" on its root.
//
// Both the start and end element are rewritten, which keeps an
// xml.NewTokenDecoder wrapped around the filter balanced.
func NewNamespaceFilter(src xml.TokenReader, uri string) xml.TokenReader {
	return &namespaceFilter{src: src, uri: uri}
}

func (f *namespaceFilter) Token() (xml.Token, error) {
	tok, err := f.src.Token()
	switch t := tok.(type) {
	case xml.StartElement:
		if t.Name.Space == "" {
			t.Name.Space = f.uri
			return t, err
		}
	case xml.EndElement:
		if t.Name.Space == "" {
			t.Name.Space = f.uri
			return t, err
		}
	}
	return tok, err
}
