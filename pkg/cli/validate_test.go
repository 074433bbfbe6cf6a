package cli

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/mapload/mapload/pkg/constants"
	"github.com/mapload/mapload/pkg/loader"
	"github.com/mapload/mapload/pkg/mapping"
)

var testdataFiles = []string{
	filepath.Join("testdata", "order.hbm.xml"),
	filepath.Join("testdata", "customer.orm.xml"),
	filepath.Join("testdata", "broken.hbm.xml"),
}

func TestValidateMappings(t *testing.T) {
	var mu sync.Mutex
	var calls []int
	results := ValidateMappings(context.Background(), loader.New(), testdataFiles, 2, func(done, total int, path string) {
		mu.Lock()
		defer mu.Unlock()
		if total != len(testdataFiles) {
			t.Errorf("total = %d, want %d", total, len(testdataFiles))
		}
		calls = append(calls, done)
	})

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	if len(calls) != 3 {
		t.Errorf("Expected 3 progress calls, got %v", calls)
	}

	// sorted by path
	byName := map[string]ValidationResult{}
	for i, r := range results {
		if i > 0 && results[i-1].Path > r.Path {
			t.Errorf("results not sorted: %s before %s", results[i-1].Path, r.Path)
		}
		byName[filepath.Base(r.Path)] = r
	}

	order := byName["order.hbm.xml"]
	if order.Err != nil || order.Root.Dialect != mapping.DialectLegacy {
		t.Errorf("order.hbm.xml: %+v", order)
	}
	customer := byName["customer.orm.xml"]
	if customer.Err != nil || customer.Root.Version != "2.0" {
		t.Errorf("customer.orm.xml: %+v", customer)
	}
	var bindErr *loader.MappingBindError
	if !errors.As(byName["broken.hbm.xml"].Err, &bindErr) {
		t.Fatalf("broken.hbm.xml: expected MappingBindError, got %v", byName["broken.hbm.xml"].Err)
	}
	if bindErr.Line != 5 {
		t.Errorf("broken.hbm.xml: expected line 5, got %d", bindErr.Line)
	}
}

func TestValidateMappingsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, r := range ValidateMappings(ctx, loader.New(), testdataFiles, 1, nil) {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("%s: expected context.Canceled, got %v", r.Path, r.Err)
		}
	}
}

func TestValidateMappingsEmpty(t *testing.T) {
	if results := ValidateMappings(context.Background(), loader.New(), nil, 4, nil); len(results) != 0 {
		t.Errorf("Expected no results, got %v", results)
	}
}

func TestRunValidate(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := RunValidate(context.Background(), loader.New(), ValidateConfig{
		Paths:       []string{"testdata"},
		Extensions:  constants.DefaultExtensions,
		Concurrency: 2,
		Verbose:     true,
		Stdout:      &stdout,
		Stderr:      &stderr,
	})
	if err == nil || !strings.Contains(err.Error(), "1 of 3") {
		t.Fatalf("Expected 1 of 3 failure, got %v", err)
	}

	out := stdout.String()
	for _, want := range []string{"Mapping validation", "legacy", "modern 2.0", "failed (bind)", "2 ok, 1 failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected stdout to contain %q, got:\n%s", want, out)
		}
	}
	errOut := stderr.String()
	for _, want := range []string{filepath.Join("testdata", "broken.hbm.xml") + ":5:", "5 |", "Schemas compiled:"} {
		if !strings.Contains(errOut, want) {
			t.Errorf("Expected stderr to contain %q, got:\n%s", want, errOut)
		}
	}
}

func TestRunValidateAllPass(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := RunValidate(context.Background(), loader.New(loader.WithValidation(false)), ValidateConfig{
		Paths:       []string{filepath.Join("testdata", "order.hbm.xml"), filepath.Join("testdata", "customer.orm.xml")},
		Extensions:  constants.DefaultExtensions,
		Concurrency: 1,
		Stdout:      &stdout,
		Stderr:      &stderr,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v\n%s", err, stderr.String())
	}
	if !strings.Contains(stdout.String(), "All 2 mapping files loaded") {
		t.Errorf("Unexpected output:\n%s", stdout.String())
	}
}

func TestRunValidateNoFiles(t *testing.T) {
	var stdout bytes.Buffer
	err := RunValidate(context.Background(), loader.New(), ValidateConfig{
		Paths:      []string{t.TempDir()},
		Extensions: constants.DefaultExtensions,
		Stdout:     &stdout,
		Stderr:     &stdout,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(stdout.String(), "No mapping files found") {
		t.Errorf("Unexpected output: %s", stdout.String())
	}
}
