package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mapload/mapload/pkg/loader"
)

func TestRunDumpFormats(t *testing.T) {
	path := filepath.Join("testdata", "customer.orm.xml")
	tests := []struct {
		format string
		want   []string
	}{
		{format: "json", want: []string{`"dialect": "modern"`, `"version": "2.0"`, "CUSTOMERS"}},
		{format: "yaml", want: []string{"dialect: modern", `version: "2.0"`, "CUSTOMERS"}},
		{format: "spew", want: []string{"Dialect:", "CUSTOMERS"}},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var out bytes.Buffer
			if err := RunDump(&out, loader.New(), DumpConfig{Path: path, Format: tt.format}); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out.String(), want) {
					t.Errorf("Expected output to contain %q, got:\n%s", want, out.String())
				}
			}
		})
	}
}

func TestRunDumpDOM(t *testing.T) {
	var out bytes.Buffer
	err := RunDump(&out, loader.New(), DumpConfig{Path: filepath.Join("testdata", "order.hbm.xml"), DOM: true})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var doc struct {
		Dialect string `json:"dialect"`
		Origin  struct {
			Kind string `json:"kind"`
		} `json:"origin"`
	}
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out.String())
	}
	if doc.Dialect != "legacy" || doc.Origin.Kind != "dom" {
		t.Errorf("Unexpected root: %+v", doc)
	}
}

func TestRunDumpErrors(t *testing.T) {
	var out bytes.Buffer
	if err := RunDump(&out, loader.New(), DumpConfig{Path: filepath.Join("testdata", "order.hbm.xml"), Format: "xml"}); err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("Expected unknown format error, got %v", err)
	}
	if err := RunDump(&out, loader.New(), DumpConfig{Path: filepath.Join("testdata", "missing.hbm.xml")}); err == nil {
		t.Error("Expected error for missing file")
	}
	if err := RunDump(&out, loader.New(), DumpConfig{Path: filepath.Join("testdata", "missing.hbm.xml"), DOM: true}); err == nil {
		t.Error("Expected error for missing file with --dom")
	}
}
