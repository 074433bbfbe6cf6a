package mapping

import (
	"encoding/json"
	"testing"
)

func TestSummarize(t *testing.T) {
	legacy := NewLegacyRoot(&HibernateMapping{
		Classes:    make([]Class, 2),
		Subclasses: make([]Subclass, 1),
		Queries:    make([]Query, 1),
		SQLQueries: make([]SQLQuery, 2),
	}, FileOrigin("order.hbm.xml"))
	if got := legacy.Summarize(); got != (Summary{Classes: 3, Queries: 3}) {
		t.Errorf("legacy summary = %+v", got)
	}

	modern := NewModernRoot(&EntityMappings{
		Entities:           make([]Entity, 2),
		Embeddables:        make([]Embeddable, 1),
		MappedSuperclasses: make([]MappedSuperclass, 1),
		NamedQueries:       make([]NamedQuery, 1),
	}, "2.0", FileOrigin("orm.xml"))
	if got := modern.Summarize(); got != (Summary{Entities: 2, Embeddable: 1, Superclass: 1, Queries: 1}) {
		t.Errorf("modern summary = %+v", got)
	}

	if got := (Root{}).Summarize(); got != (Summary{}) {
		t.Errorf("empty summary = %+v", got)
	}
}

func TestOriginString(t *testing.T) {
	tests := []struct {
		origin Origin
		want   string
	}{
		{FileOrigin("a.hbm.xml"), "file:a.hbm.xml"},
		{NewOrigin(OriginDOM, ""), "dom"},
		{NewOrigin("", "x"), "other:x"},
	}
	for _, tt := range tests {
		if got := tt.origin.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestDialectJSON(t *testing.T) {
	data, err := json.Marshal(NewModernRoot(&EntityMappings{}, "1.0", FileOrigin("orm.xml")))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	var decoded struct {
		Dialect string `json:"dialect"`
		Version string `json:"version"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if decoded.Dialect != "modern" || decoded.Version != "1.0" {
		t.Errorf("decoded = %+v", decoded)
	}
	if Dialect(7).String() != "Dialect(7)" {
		t.Errorf("unknown dialect = %s", Dialect(7))
	}
}
