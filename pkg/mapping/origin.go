package mapping

import "fmt"

// OriginKind identifies where a mapping document came from
type OriginKind string

const (
	OriginFile        OriginKind = "file"
	OriginResource    OriginKind = "resource"
	OriginURL         OriginKind = "url"
	OriginInputStream OriginKind = "input-stream"
	OriginDOM         OriginKind = "dom"
	OriginOther       OriginKind = "other"
)

// Origin describes the source of a mapping document. It is attached to every
// error raised while loading and to the resulting Root.
type Origin struct {
	Kind OriginKind `json:"kind" yaml:"kind"`
	Name string     `json:"name" yaml:"name"`
}

// NewOrigin creates an Origin, falling back to OriginOther for an empty kind
func NewOrigin(kind OriginKind, name string) Origin {
	if kind == "" {
		kind = OriginOther
	}
	return Origin{Kind: kind, Name: name}
}

// FileOrigin is shorthand for an origin of kind file
func FileOrigin(path string) Origin {
	return Origin{Kind: OriginFile, Name: path}
}

// String renders the origin as "kind:name", or just the kind when unnamed
func (o Origin) String() string {
	if o.Name == "" {
		return string(o.Kind)
	}
	return fmt.Sprintf("%s:%s", o.Kind, o.Name)
}
