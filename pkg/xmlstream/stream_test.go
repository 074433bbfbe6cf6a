package xmlstream

import (
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPeekRoot(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		wantLocal string
		wantErr   error
	}{
		{
			name:      "prolog and comments before root",
			doc:       "<?xml version=\"1.0\"?>\n<!-- c -->\n<!DOCTYPE x>\n<entity-mappings version=\"1.0\"/>",
			wantLocal: "entity-mappings",
		},
		{
			name:      "root first",
			doc:       `<hibernate-mapping/>`,
			wantLocal: "hibernate-mapping",
		},
		{
			name:    "only prolog",
			doc:     "<?xml version=\"1.0\"?>\n<!-- nothing here -->\n",
			wantErr: ErrNoStartElement,
		},
		{
			name:    "empty input",
			doc:     "",
			wantErr: ErrNoStartElement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, consumed, err := PeekRoot(xml.NewDecoder(strings.NewReader(tt.doc)))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if start.Name.Local != tt.wantLocal {
				t.Errorf("expected root %q, got %q", tt.wantLocal, start.Name.Local)
			}
			if _, ok := consumed[len(consumed)-1].(xml.StartElement); !ok {
				t.Errorf("last consumed token should be the root start element")
			}
		})
	}
}

func TestPeekRootSyntaxError(t *testing.T) {
	_, _, err := PeekRoot(xml.NewDecoder(strings.NewReader("<<<")))
	var syntaxErr *xml.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected *xml.SyntaxError, got %T: %v", err, err)
	}
}

func TestReplayRestoresStream(t *testing.T) {
	doc := "<?xml version=\"1.0\"?>\n<!-- c --><root a=\"1\"><child>text</child></root>"

	want := collect(t, xml.NewDecoder(strings.NewReader(doc)))

	dec := xml.NewDecoder(strings.NewReader(doc))
	_, consumed, err := PeekRoot(dec)
	if err != nil {
		t.Fatalf("peek failed: %v", err)
	}
	got := collect(t, Replay(consumed, dec))

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("replayed stream differs (-want +got):\n%s", diff)
	}
}

func TestTrackerPositions(t *testing.T) {
	doc := "<root>\n  <first/>\n  <second attr=\"x\"/>\n</root>"
	tracker := NewTracker(xml.NewDecoder(strings.NewReader(doc)))

	want := map[string]Position{
		"root":   {Line: 1, Column: 1, Offset: 0},
		"first":  {Line: 2, Column: 3, Offset: 9},
		"second": {Line: 3, Column: 3, Offset: 20},
	}

	for {
		tok, err := tracker.Token()
		if err != nil {
			break
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if diff := cmp.Diff(want[start.Name.Local], tracker.Last()); diff != "" {
			t.Errorf("position of <%s> mismatch (-want +got):\n%s", start.Name.Local, diff)
		}
	}
}
