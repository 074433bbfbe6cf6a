package cli

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mapload/mapload/pkg/constants"
	"github.com/mapload/mapload/pkg/settings"
	"github.com/spf13/cobra"
)

// resolveSettings runs a subcommand with args and returns the settings it saw
func resolveSettings(t *testing.T, args ...string) (*settings.Settings, error) {
	t.Helper()
	var g Globals
	var got *settings.Settings
	var resolveErr error

	root := &cobra.Command{Use: "mapload"}
	g.Bind(root)
	root.AddCommand(&cobra.Command{
		Use: "resolve",
		Run: func(cmd *cobra.Command, args []string) {
			got, resolveErr = g.Settings(cmd)
		},
	})
	root.SetArgs(append([]string{"resolve"}, args...))
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	return got, resolveErr
}

func TestGlobalsSettings(t *testing.T) {
	config := filepath.Join(t.TempDir(), "mapload.yaml")
	writeFile(t, config, "validate: false\nconcurrency: 2\nschema-dir: ./from-file\n")
	empty := filepath.Join(t.TempDir(), "empty.yaml")
	writeFile(t, empty, "# nothing configured yet\n")

	tests := []struct {
		name string
		args []string
		want *settings.Settings
	}{
		{
			name: "config file",
			args: []string{"--config", config},
			want: &settings.Settings{Validate: false, Concurrency: 2, SchemaDir: "./from-file", Extensions: constants.DefaultExtensions},
		},
		{
			name: "empty config file keeps defaults",
			args: []string{"--config", empty},
			want: &settings.Settings{Validate: true, Concurrency: constants.DefaultConcurrency, Extensions: constants.DefaultExtensions},
		},
		{
			name: "flags override file",
			args: []string{"--config", config, "--validate", "--concurrency", "6", "--schema-dir", "xsd"},
			want: &settings.Settings{Validate: true, Concurrency: 6, SchemaDir: "xsd", Extensions: constants.DefaultExtensions},
		},
		{
			name: "no-validate",
			args: []string{"--config", config, "--no-validate", "--concurrency", "3"},
			want: &settings.Settings{Validate: false, Concurrency: 3, SchemaDir: "./from-file", Extensions: constants.DefaultExtensions},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveSettings(t, tt.args...)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("settings mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGlobalsSettingsErrors(t *testing.T) {
	if _, err := resolveSettings(t, "--concurrency", "0"); err == nil {
		t.Error("Expected error for zero concurrency")
	}
	if _, err := resolveSettings(t, "--config", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing explicit config")
	}
}

func TestNewLoaderHonorsSettings(t *testing.T) {
	s := settings.Default()
	s.Validate = false
	if NewLoader(s, nil).ValidationEnabled() {
		t.Error("Expected validation to be disabled")
	}
	if !NewLoader(settings.Default(), nil).ValidationEnabled() {
		t.Error("Expected validation to be enabled by default")
	}
}
