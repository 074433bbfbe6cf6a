package mapper

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

func TestDecodeJSONPointer(t *testing.T) {
	tests := []struct {
		name     string
		pointer  string
		expected []string
		hasError bool
	}{
		{name: "empty pointer", pointer: "", expected: []string{}},
		{name: "root pointer", pointer: "/", expected: []string{}},
		{name: "simple path", pointer: "/extensions/0", expected: []string{"extensions", "0"}},
		{name: "path with escapes", pointer: "/schema~1dir~0x", expected: []string{"schema/dir~x"}},
		{name: "empty segments", pointer: "/a//b", expected: []string{"a", "", "b"}},
		{name: "missing leading slash", pointer: "extensions/0", hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, err := decodeJSONPointer(tt.pointer)
			if tt.hasError {
				if err == nil {
					t.Errorf("Expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(parts) != len(tt.expected) {
				t.Fatalf("Expected %d parts, got %d: %v", len(tt.expected), len(parts), parts)
			}
			for i, expected := range tt.expected {
				if parts[i] != expected {
					t.Errorf("Part %d: expected %q, got %q", i, expected, parts[i])
				}
			}
		})
	}
}

func TestEncodeJSONPointerRoundTrip(t *testing.T) {
	segments := []string{"schema/dir", "a~b", "0"}
	ptr := encodeJSONPointer(segments)
	if ptr != "/schema~1dir/a~0b/0" {
		t.Fatalf("encodeJSONPointer = %q", ptr)
	}
	back, err := decodeJSONPointer(ptr)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if strings.Join(back, "|") != strings.Join(segments, "|") {
		t.Errorf("round trip gave %v", back)
	}
	if encodeJSONPointer(nil) != "" {
		t.Errorf("root pointer should be empty")
	}
}

func TestParseIndex(t *testing.T) {
	tests := []struct {
		segment  string
		expected int
	}{
		{"0", 0},
		{"12", 12},
		{"-1", -1},
		{"+1", -1},
		{"name", -1},
		{"", -1},
		{"1.5", -1},
	}
	for _, tt := range tests {
		if got := parseIndex(tt.segment); got != tt.expected {
			t.Errorf("parseIndex(%q) = %d, expected %d", tt.segment, got, tt.expected)
		}
	}
}

const settingsYAML = `validate: true
concurrency: four
schema-dir: ./schemas
extensions:
  - .hbm.xml
  - 7
`

func TestMapErrorToSpans(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		pointer   string
		meta      ErrorMeta
		wantLine  int
		wantCol   int
		minConf   float64
		reasonHas string
	}{
		{
			name:      "type mismatch on scalar",
			yaml:      settingsYAML,
			pointer:   "/concurrency",
			meta:      ErrorMeta{Kind: "type"},
			wantLine:  2,
			wantCol:   14,
			minConf:   0.9,
			reasonHas: "type",
		},
		{
			name:     "type mismatch inside sequence",
			yaml:     settingsYAML,
			pointer:  "/extensions/1",
			meta:     ErrorMeta{Kind: "type"},
			wantLine: 6,
			wantCol:  5,
			minConf:  0.9,
		},
		{
			name:      "additional property named by containing object",
			yaml:      "validate: true\nbogus: 1\n",
			pointer:   "",
			meta:      ErrorMeta{Kind: "additionalProperties", Property: "bogus"},
			wantLine:  2,
			wantCol:   1,
			minConf:   0.95,
			reasonHas: "additional property",
		},
		{
			name:      "required property anchors after last key",
			yaml:      "validate: true\nconcurrency: 2\n",
			pointer:   "",
			meta:      ErrorMeta{Kind: "required", Property: "extensions"},
			wantLine:  3,
			wantCol:   1,
			minConf:   0.7,
			reasonHas: "extensions",
		},
		{
			name:      "unresolved pointer falls back to text search",
			yaml:      "validate: true\nlegacy-flag: x\n",
			pointer:   "/missing/deep",
			meta:      ErrorMeta{Kind: "type", Property: "legacy-flag"},
			wantLine:  2,
			wantCol:   1,
			minConf:   0.5,
			reasonHas: "text match",
		},
		{
			name:      "empty document",
			yaml:      "",
			pointer:   "/validate",
			meta:      ErrorMeta{Kind: "type"},
			wantLine:  1,
			wantCol:   1,
			reasonHas: "document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans, err := MapErrorToSpans([]byte(tt.yaml), tt.pointer, tt.meta)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(spans) == 0 {
				t.Fatal("Expected at least one span")
			}
			best := spans[0]
			if best.StartLine != tt.wantLine || best.StartCol != tt.wantCol {
				t.Errorf("Expected %d:%d, got %d:%d (%s)", tt.wantLine, tt.wantCol, best.StartLine, best.StartCol, best.Reason)
			}
			if best.Confidence < tt.minConf {
				t.Errorf("Expected confidence >= %.2f, got %.2f", tt.minConf, best.Confidence)
			}
			if tt.reasonHas != "" && !strings.Contains(best.Reason, tt.reasonHas) {
				t.Errorf("Expected reason to contain %q, got %q", tt.reasonHas, best.Reason)
			}
		})
	}
}

func TestMapErrorToSpansInvalidPointer(t *testing.T) {
	if _, err := MapErrorToSpans([]byte("validate: true\n"), "validate", ErrorMeta{Kind: "type"}); err == nil {
		t.Error("Expected error for pointer without leading slash")
	}
}

func TestLocateUnparseableSource(t *testing.T) {
	span := Locate([]byte("a: [1, 2\n"), Failure{Pointer: "/a", Meta: ErrorMeta{Kind: "type"}})
	if span.StartLine != 1 || span.StartCol != 1 {
		t.Errorf("Expected document span, got %d:%d", span.StartLine, span.StartCol)
	}
}

const testSchema = `{
  "type": "object",
  "properties": {
    "validate": {"type": "boolean"},
    "concurrency": {"type": "integer"},
    "extensions": {"type": "array", "items": {"type": "string"}}
  },
  "required": ["validate"],
  "additionalProperties": false
}`

func validate(t *testing.T, src string) *jsonschema.ValidationError {
	t.Helper()
	var schemaDoc any
	if err := json.Unmarshal([]byte(testSchema), &schemaDoc); err != nil {
		t.Fatalf("schema: %v", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("http://example.com/settings.json", schemaDoc); err != nil {
		t.Fatalf("add resource: %v", err)
	}
	schema, err := compiler.Compile("http://example.com/settings.json")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	var doc any
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	// The validator expects JSON types
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	var instance any
	if err := json.Unmarshal(raw, &instance); err != nil {
		t.Fatalf("json: %v", err)
	}

	err = schema.Validate(instance)
	if err == nil {
		return nil
	}
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected *jsonschema.ValidationError, got %T", err)
	}
	return verr
}

func TestFailuresFromValidator(t *testing.T) {
	t.Run("type", func(t *testing.T) {
		verr := validate(t, settingsYAML)
		if verr == nil {
			t.Fatal("Expected validation error")
		}
		failures := Failures(verr)
		if len(failures) < 2 {
			t.Fatalf("Expected at least 2 failures, got %d: %+v", len(failures), failures)
		}
		pointers := map[string]Failure{}
		for _, f := range failures {
			pointers[f.Pointer] = f
		}
		f, ok := pointers["/concurrency"]
		if !ok {
			t.Fatalf("Missing /concurrency failure in %+v", failures)
		}
		if f.Meta.Kind != "type" || f.Meta.Message == "" {
			t.Errorf("Unexpected meta: %+v", f.Meta)
		}
		span := Locate([]byte(settingsYAML), f)
		if span.StartLine != 2 {
			t.Errorf("Expected line 2, got %d", span.StartLine)
		}
		if _, ok := pointers["/extensions/1"]; !ok {
			t.Errorf("Missing /extensions/1 failure in %+v", failures)
		}
	})

	t.Run("additional property", func(t *testing.T) {
		src := "validate: true\nbogus: 1\n"
		verr := validate(t, src)
		if verr == nil {
			t.Fatal("Expected validation error")
		}
		failures := Failures(verr)
		if len(failures) != 1 {
			t.Fatalf("Expected 1 failure, got %+v", failures)
		}
		f := failures[0]
		if f.Meta.Kind != "additionalProperties" || f.Meta.Property != "bogus" {
			t.Errorf("Unexpected meta: %+v", f.Meta)
		}
		if span := Locate([]byte(src), f); span.StartLine != 2 || span.StartCol != 1 {
			t.Errorf("Expected 2:1, got %d:%d", span.StartLine, span.StartCol)
		}
	})

	t.Run("required", func(t *testing.T) {
		verr := validate(t, "concurrency: 2\n")
		if verr == nil {
			t.Fatal("Expected validation error")
		}
		failures := Failures(verr)
		if len(failures) != 1 || failures[0].Meta.Kind != "required" || failures[0].Meta.Property != "validate" {
			t.Errorf("Unexpected failures: %+v", failures)
		}
	})

	t.Run("valid", func(t *testing.T) {
		if verr := validate(t, "validate: false\nconcurrency: 2\n"); verr != nil {
			t.Errorf("Unexpected validation error: %v", verr)
		}
	})
}
