package xmlstream

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testURI = "urn:example:mapping"

// collect drains tr and returns copies of every token
func collect(t *testing.T, tr xml.TokenReader) []xml.Token {
	t.Helper()
	var toks []xml.Token
	for {
		tok, err := tr.Token()
		if tok != nil {
			toks = append(toks, xml.CopyToken(tok))
		}
		if err == io.EOF {
			return toks
		}
		if err != nil {
			t.Fatalf("unexpected token error: %v", err)
		}
	}
}

func TestNamespaceFilterRewritesUnqualifiedElements(t *testing.T) {
	doc := `<root a="1"><child/><x:other xmlns:x="urn:other"><inner/></x:other></root>`
	dec := xml.NewDecoder(strings.NewReader(doc))

	var got []xml.Name
	for _, tok := range collect(t, NewNamespaceFilter(dec, testURI)) {
		switch el := tok.(type) {
		case xml.StartElement:
			got = append(got, el.Name)
			if el.Name.Local == "root" {
				if len(el.Attr) != 1 || el.Attr[0].Name.Space != "" {
					t.Errorf("root attributes should stay un-namespaced, got %+v", el.Attr)
				}
			}
		case xml.EndElement:
			got = append(got, xml.Name{Space: el.Name.Space, Local: "/" + el.Name.Local})
		}
	}

	want := []xml.Name{
		{Space: testURI, Local: "root"},
		{Space: testURI, Local: "child"},
		{Space: testURI, Local: "/child"},
		{Space: "urn:other", Local: "other"},
		{Space: testURI, Local: "inner"},
		{Space: testURI, Local: "/inner"},
		{Space: "urn:other", Local: "/other"},
		{Space: testURI, Local: "/root"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("element names mismatch (-want +got):\n%s", diff)
	}
}

func TestNamespaceFilterPassesOtherTokensThrough(t *testing.T) {
	doc := `<?xml version="1.0"?>
<!-- header -->
<root>text<![CDATA[raw]]><?pi data?></root>`

	plain := collect(t, xml.NewDecoder(strings.NewReader(doc)))
	filtered := collect(t, NewNamespaceFilter(xml.NewDecoder(strings.NewReader(doc)), testURI))

	if len(plain) != len(filtered) {
		t.Fatalf("token count changed: %d vs %d", len(plain), len(filtered))
	}
	for i := range plain {
		switch plain[i].(type) {
		case xml.StartElement, xml.EndElement:
			continue
		}
		if diff := cmp.Diff(plain[i], filtered[i]); diff != "" {
			t.Errorf("token %d changed (-want +got):\n%s", i, diff)
		}
	}
}

type sample struct {
	XMLName xml.Name `xml:"urn:example:mapping root"`
	Name    string   `xml:"name,attr"`
	Items   []struct {
		ID   int    `xml:"id,attr"`
		Body string `xml:",chardata"`
	} `xml:"item"`
}

func TestNamespaceFilterMatchesAnnotatedDocument(t *testing.T) {
	bare := `<root name="n"><item id="1">one</item><item id="2">two</item></root>`
	annotated := `<root xmlns="urn:example:mapping" name="n"><item id="1">one</item><item id="2">two</item></root>`

	var fromBare, fromAnnotated sample
	if err := xml.NewTokenDecoder(NewNamespaceFilter(xml.NewDecoder(strings.NewReader(bare)), testURI)).Decode(&fromBare); err != nil {
		t.Fatalf("decoding filtered document: %v", err)
	}
	if err := xml.NewDecoder(strings.NewReader(annotated)).Decode(&fromAnnotated); err != nil {
		t.Fatalf("decoding annotated document: %v", err)
	}

	if diff := cmp.Diff(fromAnnotated, fromBare); diff != "" {
		t.Errorf("bound values differ (-annotated +filtered):\n%s", diff)
	}
}

func TestNamespaceFilterUndeclaredDefault(t *testing.T) {
	doc := `<root xmlns="urn:kept"><child xmlns=""/></root>`
	toks := collect(t, NewNamespaceFilter(xml.NewDecoder(strings.NewReader(doc)), testURI))

	start := toks[1].(xml.StartElement)
	if start.Name.Space != testURI {
		t.Errorf("expected undeclared child to be rewritten, got %q", start.Name.Space)
	}
	root := toks[0].(xml.StartElement)
	if root.Name.Space != "urn:kept" {
		t.Errorf("namespaced root should pass through, got %q", root.Name.Space)
	}
}
