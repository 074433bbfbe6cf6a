package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mapload/mapload/pkg/loader"
	"github.com/mapload/mapload/pkg/mapping"
	"github.com/mapload/mapload/pkg/settings"
)

func TestToCompilerError(t *testing.T) {
	path := filepath.Join("testdata", "broken.hbm.xml")
	origin := mapping.FileOrigin(path)

	t.Run("bind error carries position and context", func(t *testing.T) {
		ce := toCompilerError(&loader.MappingBindError{Origin: origin, Line: 5, Column: 9, Message: "unexpected element"}, path)
		if ce.Position.Line != 5 || ce.Position.Column != 9 || ce.Message != "unexpected element" {
			t.Errorf("Unexpected compiler error: %+v", ce)
		}
		if ce.ContextStart != 3 || len(ce.Context) != 5 {
			t.Errorf("Expected lines 3-7 as context, got %d lines from %d", len(ce.Context), ce.ContextStart)
		}
		if !strings.Contains(ce.Context[2], "<bogus") {
			t.Errorf("Expected error line in context, got %q", ce.Context[2])
		}
	})

	t.Run("tree positions skip file context", func(t *testing.T) {
		treeOrigin := mapping.NewOrigin(mapping.OriginDOM, path)
		ce := toCompilerError(&loader.MappingBindError{Origin: treeOrigin, Line: 5, Column: 9, Message: "unexpected element"}, path)
		if ce.Position.Line != 5 || ce.Position.Column != 9 {
			t.Errorf("Unexpected position: %+v", ce.Position)
		}
		if len(ce.Context) != 0 || ce.ContextStart != 0 {
			t.Errorf("Expected no context for a tree origin, got %d lines from %d", len(ce.Context), ce.ContextStart)
		}
	})

	t.Run("wrapped bind error", func(t *testing.T) {
		err := fmt.Errorf("loading: %w", &loader.MappingBindError{Origin: origin, Line: 2, Column: 1, Message: "m"})
		if ce := toCompilerError(err, path); ce.Position.Line != 2 {
			t.Errorf("Expected line 2, got %+v", ce.Position)
		}
	})

	t.Run("unsupported version hint", func(t *testing.T) {
		ce := toCompilerError(&loader.UnsupportedSchemaVersionError{Origin: origin, Version: "3.0"}, path)
		if !strings.Contains(ce.Message, `"3.0"`) || !strings.Contains(ce.Hint, "1.0, 2.0") {
			t.Errorf("Unexpected compiler error: %+v", ce)
		}
		if ce.Position.Line != 0 {
			t.Errorf("Expected no line, got %d", ce.Position.Line)
		}
	})

	t.Run("schema resolution hint", func(t *testing.T) {
		ce := toCompilerError(&loader.SchemaResolutionError{Origin: origin, Name: "orm_2_0.xsd", Cause: errors.New("missing")}, path)
		if !strings.Contains(ce.Hint, "schema-dir") {
			t.Errorf("Unexpected hint %q", ce.Hint)
		}
	})
}

func TestErrorKind(t *testing.T) {
	origin := mapping.FileOrigin("a.xml")
	tests := []struct {
		err  error
		want string
	}{
		{&loader.MappingBindError{Origin: origin}, "bind"},
		{&loader.UnsupportedSchemaVersionError{Origin: origin}, "unsupported-version"},
		{&loader.SchemaResolutionError{Origin: origin}, "schema-resolution"},
		{&loader.NoRootElementError{Origin: origin}, "no-root"},
		{&loader.StreamOpenError{Origin: origin, Cause: errors.New("x")}, "stream-open"},
		{errors.New("x"), "other"},
	}
	for _, tt := range tests {
		if got := errorKind(tt.err); got != tt.want {
			t.Errorf("errorKind(%T) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestFormatCommandError(t *testing.T) {
	_, err := settings.Parse([]byte("validate: true\nbogus: 1\n"), "mapload.yaml")
	if err == nil {
		t.Fatal("Expected settings error")
	}
	out := FormatCommandError(fmt.Errorf("config: %w", err))
	if !strings.Contains(out, "mapload.yaml:2:1:") || !strings.Contains(out, "2 | bogus: 1") {
		t.Errorf("Unexpected output:\n%s", out)
	}

	if out := FormatCommandError(errors.New("plain")); !strings.Contains(out, "plain") {
		t.Errorf("Unexpected output: %s", out)
	}
}
