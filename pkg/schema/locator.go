package schema

import (
	"embed"
	"errors"
	"io/fs"
	"os"
)

// Logical names of the bundled mapping schemas
const (
	LegacyMappingXSD   = "org/hibernate/hibernate-mapping-4.0.xsd"
	EntityMappings1XSD = "org/hibernate/ejb/orm_1_0.xsd"
	EntityMappings2XSD = "org/hibernate/ejb/orm_2_0.xsd"
)

//go:embed schemas
var embeddedSchemas embed.FS

// Embedded returns a locator serving the schemas compiled into the binary
func Embedded() fs.FS {
	sub, err := fs.Sub(embeddedSchemas, "schemas")
	if err != nil {
		// fs.Sub only fails for an invalid directory name
		panic(err)
	}
	return sub
}

// DirLocator serves schemas from a directory on disk, keyed by their path
// relative to dir
func DirLocator(dir string) fs.FS {
	return os.DirFS(dir)
}

// OverlayLocator consults each layer in order and serves the first one that
// has the requested schema. Errors other than not-found stop the search.
func OverlayLocator(layers ...fs.FS) fs.FS {
	return overlayFS(layers)
}

type overlayFS []fs.FS

func (o overlayFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	for _, layer := range o {
		if layer == nil {
			continue
		}
		f, err := layer.Open(name)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

// DefaultLocator returns the embedded schemas, overlaid by dir when set
func DefaultLocator(dir string) fs.FS {
	if dir == "" {
		return Embedded()
	}
	return OverlayLocator(DirLocator(dir), Embedded())
}
