package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mapload/mapload/pkg/console"
	"github.com/mapload/mapload/pkg/loader"
	"github.com/mapload/mapload/pkg/mapping"
	"github.com/mapload/mapload/pkg/settings"
)

// ErrReported is returned by commands that already printed their failure
var ErrReported = errors.New("failure already reported")

// FormatLoadError renders a load failure for the terminal. path is read again
// to show the lines around the failure.
func FormatLoadError(err error, path string) string {
	return console.FormatError(toCompilerError(err, path))
}

func toCompilerError(err error, path string) console.CompilerError {
	ce := console.CompilerError{
		Position: console.ErrorPosition{File: path},
		Type:     "error",
		Message:  err.Error(),
	}

	var (
		bindErr     *loader.MappingBindError
		versionErr  *loader.UnsupportedSchemaVersionError
		resolveErr  *loader.SchemaResolutionError
		noRootErr   *loader.NoRootElementError
		settingsErr *settings.Error
	)
	switch {
	case errors.As(err, &settingsErr):
		return settingsErr.CompilerError()
	case errors.As(err, &bindErr):
		ce.Position.Line = bindErr.Line
		ce.Position.Column = bindErr.Column
		ce.Message = bindErr.Message
		// Tree positions refer to the serialized root, not the file on disk
		if bindErr.Origin.Kind == mapping.OriginDOM || bindErr.Line == 0 {
			break
		}
		if src, readErr := os.ReadFile(path); readErr == nil {
			ce.Context, ce.ContextStart = console.SourceContext(src, bindErr.Line, 2)
		}
	case errors.As(err, &versionErr):
		ce.Message = fmt.Sprintf("unsupported entity-mappings version %q", versionErr.Version)
		ce.Hint = "Supported versions: " + strings.Join(loader.SupportedVersions(), ", ")
	case errors.As(err, &resolveErr):
		ce.Hint = "Check --schema-dir or the schema-dir setting"
	case errors.As(err, &noRootErr):
		ce.Message = "document has no root element"
	}
	return ce
}

// errorKind is a short machine readable name for a load failure
func errorKind(err error) string {
	var (
		bindErr    *loader.MappingBindError
		versionErr *loader.UnsupportedSchemaVersionError
		resolveErr *loader.SchemaResolutionError
		noRootErr  *loader.NoRootElementError
		openErr    *loader.StreamOpenError
	)
	switch {
	case errors.As(err, &bindErr):
		return "bind"
	case errors.As(err, &versionErr):
		return "unsupported-version"
	case errors.As(err, &resolveErr):
		return "schema-resolution"
	case errors.As(err, &noRootErr):
		return "no-root"
	case errors.As(err, &openErr):
		return "stream-open"
	}
	return "other"
}

// FormatCommandError renders an error returned by a command. Settings file
// errors keep their location; anything else is a one-line message.
func FormatCommandError(err error) string {
	var settingsErr *settings.Error
	if errors.As(err, &settingsErr) {
		return console.FormatError(settingsErr.CompilerError())
	}
	return console.FormatErrorMessage(err.Error())
}
