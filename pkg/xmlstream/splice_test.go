package xmlstream

import (
	"encoding/xml"
	"strings"
	"testing"
)

func TestAddDefaultNamespace(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		want  string
		edits int
	}{
		{
			name:  "inserts on root",
			doc:   "<?xml version=\"1.0\"?>\n<hibernate-mapping package=\"p\">\n  <class name=\"A\"/>\n</hibernate-mapping>",
			want:  "<?xml version=\"1.0\"?>\n<hibernate-mapping xmlns=\"urn:example:mapping\" package=\"p\">\n  <class name=\"A\"/>\n</hibernate-mapping>",
			edits: 1,
		},
		{
			name:  "root without attributes",
			doc:   "<hibernate-mapping/>",
			want:  "<hibernate-mapping xmlns=\"urn:example:mapping\"/>",
			edits: 1,
		},
		{
			name:  "fills empty undeclarations",
			doc:   "<root xmlns=\"\"><a:x xmlns:a=\"urn:a\"><child xmlns=''/></a:x></root>",
			want:  "<root xmlns=\"urn:example:mapping\"><a:x xmlns:a=\"urn:a\"><child xmlns='urn:example:mapping'/></a:x></root>",
			edits: 2,
		},
		{
			name:  "ignores xmlns text in attribute values",
			doc:   "<root note='xmlns=\"\"'/>",
			want:  "<root xmlns=\"urn:example:mapping\" note='xmlns=\"\"'/>",
			edits: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, edits, err := AddDefaultNamespace([]byte(tt.doc), testURI)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("unexpected output\nwant: %s\ngot:  %s", tt.want, got)
			}
			if len(edits) != tt.edits {
				t.Errorf("expected %d edits, got %d", tt.edits, len(edits))
			}
		})
	}
}

func TestEditsSource(t *testing.T) {
	doc := "<hibernate-mapping package=\"p\">\n  <class name=\"A\"/>\n</hibernate-mapping>"
	_, edits, err := AddDefaultNamespace([]byte(doc), testURI)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	delta := len(` xmlns="` + testURI + `"`)

	tests := []struct {
		name              string
		line, col         int
		wantLine, wantCol int
	}{
		{name: "before insertion", line: 1, col: 1, wantLine: 1, wantCol: 1},
		{name: "after insertion", line: 1, col: 19 + delta, wantLine: 1, wantCol: 19},
		{name: "inside insertion", line: 1, col: 22, wantLine: 1, wantCol: 19},
		{name: "other line", line: 2, col: 3, wantLine: 2, wantCol: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, col := edits.Source(tt.line, tt.col)
			if line != tt.wantLine || col != tt.wantCol {
				t.Errorf("Source(%d, %d) = (%d, %d), want (%d, %d)", tt.line, tt.col, line, col, tt.wantLine, tt.wantCol)
			}
		})
	}
}

func TestToUTF8(t *testing.T) {
	latin1 := []byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n<root>caf\xe9</root>")

	got, err := ToUTF8(latin1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(got), `encoding="UTF-8"`) {
		t.Errorf("declaration not rewritten: %s", got)
	}

	var v struct {
		Text string `xml:",chardata"`
	}
	if err := xml.Unmarshal(got, &v); err != nil {
		t.Fatalf("converted document does not parse: %v", err)
	}
	if v.Text != "café" {
		t.Errorf("expected café, got %q", v.Text)
	}

	plain := []byte(`<?xml version="1.0" encoding="UTF-8"?><root/>`)
	same, err := ToUTF8(plain)
	if err != nil || string(same) != string(plain) {
		t.Errorf("UTF-8 input should pass through unchanged, got %q, %v", same, err)
	}
}
