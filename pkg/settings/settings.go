// Package settings reads mapload configuration. Settings come from a YAML
// file checked against an embedded JSON schema, or from the property map
// used by existing Hibernate configurations.
package settings

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/mapload/mapload/internal/mapper"
	"github.com/mapload/mapload/pkg/console"
	"github.com/mapload/mapload/pkg/constants"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/settings_schema.json
var settingsSchemaJSON string

const schemaURL = "https://mapload.dev/schemas/settings.json"

// Settings configures loading
type Settings struct {
	Validate    bool     `yaml:"validate" json:"validate"`
	SchemaDir   string   `yaml:"schema-dir,omitempty" json:"schema-dir,omitempty"`
	Concurrency int      `yaml:"concurrency" json:"concurrency"`
	Extensions  []string `yaml:"extensions" json:"extensions"`
}

// Default returns the settings used when nothing is configured
func Default() *Settings {
	return &Settings{
		Validate:    true,
		Concurrency: constants.DefaultConcurrency,
		Extensions:  append([]string(nil), constants.DefaultExtensions...),
	}
}

// Error is a settings file problem located in the file
type Error struct {
	Path    string
	Line    int
	Column  int
	Message string
	Source  []byte
	Cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", console.FormatLocation(e.position()), e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) position() console.ErrorPosition {
	return console.ErrorPosition{File: e.Path, Line: e.Line, Column: e.Column}
}

// CompilerError renders the error with the surrounding lines of the file
func (e *Error) CompilerError() console.CompilerError {
	ctx, start := console.SourceContext(e.Source, e.Line, 2)
	return console.CompilerError{
		Position:     e.position(),
		Type:         "error",
		Message:      e.Message,
		Context:      ctx,
		ContextStart: start,
		Hint:         "Check the settings file against the mapload settings schema",
	}
}

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	var doc any
	if err := json.Unmarshal([]byte(settingsSchemaJSON), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse settings schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("failed to add settings schema resource: %w", err)
	}
	return compiler.Compile(schemaURL)
})

// Load reads and validates the settings file at path
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse validates data and applies it over the defaults. path is only used
// in errors.
func Parse(data []byte, path string) (*Settings, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, syntaxError(err, data, path)
	}
	if raw == nil {
		raw = map[string]any{}
	}

	if err := validate(raw, data, path); err != nil {
		return nil, err
	}

	// A null document would zero the defaults on decode
	s := Default()
	if len(raw) == 0 {
		return s, nil
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, syntaxError(err, data, path)
	}
	return s, nil
}

func validate(raw map[string]any, data []byte, path string) error {
	schema, err := compileSchema()
	if err != nil {
		return err
	}

	// The validator works on JSON types
	encoded, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to normalize settings: %w", err)
	}
	var doc any
	if err := json.Unmarshal(encoded, &doc); err != nil {
		return fmt.Errorf("failed to normalize settings: %w", err)
	}

	err = schema.Validate(doc)
	if err == nil {
		return nil
	}
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("settings validation error: %w", err)
	}
	failures := mapper.Failures(verr)
	if len(failures) == 0 {
		return &Error{Path: path, Message: verr.Error(), Source: data, Cause: verr}
	}

	first := failures[0]
	span := mapper.Locate(data, first)
	msg := first.Meta.Message
	if first.Pointer != "" {
		msg = fmt.Sprintf("%s: %s", first.Pointer, msg)
	}
	return &Error{
		Path:    path,
		Line:    span.StartLine,
		Column:  span.StartCol,
		Message: msg,
		Source:  data,
		Cause:   verr,
	}
}

func syntaxError(err error, data []byte, path string) error {
	located := &Error{Path: path, Message: err.Error(), Source: data, Cause: err}
	var yerr yaml.Error
	if errors.As(err, &yerr) {
		located.Message = yerr.GetMessage()
		if tk := yerr.GetToken(); tk != nil && tk.Position != nil {
			located.Line = tk.Position.Line
			located.Column = tk.Position.Column
		}
	}
	return located
}
