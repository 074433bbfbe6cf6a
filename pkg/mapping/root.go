package mapping

import "fmt"

// Dialect is the mapping document flavour, decided from the root element
type Dialect int

const (
	// DialectLegacy is the hibernate-mapping (hbm.xml) format
	DialectLegacy Dialect = iota + 1
	// DialectModern is the entity-mappings (orm.xml) format
	DialectModern
)

// Root element local names and namespaces of the two dialects
const (
	LegacyRootElement = "hibernate-mapping"
	ModernRootElement = "entity-mappings"
	LegacyNamespace   = "http://www.hibernate.org/xsd/hibernate-mapping"
	ModernNamespace   = "http://java.sun.com/xml/ns/persistence/orm"
	ModernVersionAttr = "version"
)

func (d Dialect) String() string {
	switch d {
	case DialectLegacy:
		return "legacy"
	case DialectModern:
		return "modern"
	default:
		return fmt.Sprintf("Dialect(%d)", int(d))
	}
}

// MarshalText renders the dialect name for JSON and YAML output
func (d Dialect) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Root is the typed result of loading one mapping document. Exactly one of
// Legacy or Modern is set, matching Dialect.
type Root struct {
	Dialect Dialect           `json:"dialect" yaml:"dialect"`
	Version string            `json:"version,omitempty" yaml:"version,omitempty"`
	Legacy  *HibernateMapping `json:"legacy,omitempty" yaml:"legacy,omitempty"`
	Modern  *EntityMappings   `json:"modern,omitempty" yaml:"modern,omitempty"`
	Origin  Origin            `json:"origin" yaml:"origin"`
}

// NewLegacyRoot wraps a bound hibernate-mapping document
func NewLegacyRoot(doc *HibernateMapping, origin Origin) Root {
	return Root{Dialect: DialectLegacy, Legacy: doc, Origin: origin}
}

// NewModernRoot wraps a bound entity-mappings document tagged with the version
// it was resolved under
func NewModernRoot(doc *EntityMappings, version string, origin Origin) Root {
	return Root{Dialect: DialectModern, Version: version, Modern: doc, Origin: origin}
}

// Summary counts the top-level declarations of a root
type Summary struct {
	Classes    int `json:"classes"`
	Entities   int `json:"entities"`
	Embeddable int `json:"embeddables"`
	Superclass int `json:"mapped_superclasses"`
	Queries    int `json:"queries"`
}

// Summarize returns declaration counts for the populated variant
func (r Root) Summarize() Summary {
	var s Summary
	switch {
	case r.Legacy != nil:
		s.Classes = len(r.Legacy.Classes) + len(r.Legacy.Subclasses) +
			len(r.Legacy.JoinedSubclasses) + len(r.Legacy.UnionSubclasses)
		s.Queries = len(r.Legacy.Queries) + len(r.Legacy.SQLQueries)
	case r.Modern != nil:
		s.Entities = len(r.Modern.Entities)
		s.Embeddable = len(r.Modern.Embeddables)
		s.Superclass = len(r.Modern.MappedSuperclasses)
		s.Queries = len(r.Modern.NamedQueries) + len(r.Modern.NamedNativeQueries)
	}
	return s
}
