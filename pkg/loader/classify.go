package loader

import (
	"encoding/xml"
	"sort"

	"github.com/beevik/etree"
	"github.com/mapload/mapload/pkg/mapping"
	"github.com/mapload/mapload/pkg/schema"
)

// AssumedEntityMappingsVersion is used when an entity-mappings root carries no
// version attribute
const AssumedEntityMappingsVersion = "2.0"

var supportedVersions = map[string]string{
	"1.0": schema.EntityMappings1XSD,
	"2.0": schema.EntityMappings2XSD,
}

// SupportedVersions lists the entity-mappings versions that have a schema
func SupportedVersions() []string {
	versions := make([]string, 0, len(supportedVersions))
	for v := range supportedVersions {
		versions = append(versions, v)
	}
	sort.Strings(versions)
	return versions
}

// SchemaForVersion returns the schema name for an entity-mappings version
func SchemaForVersion(version string) (string, bool) {
	name, ok := supportedVersions[version]
	return name, ok
}

// Classification is what the loader learns from the root element before
// binding
type Classification struct {
	Dialect mapping.Dialect
	// Version is the entity-mappings version, explicit or assumed
	Version string
	// SchemaName is empty when validation is disabled
	SchemaName string
	// Normalize is set for legacy documents without a namespace
	Normalize    bool
	NamespaceURI string
}

// rootInfo is the part of a root element the classifier looks at
type rootInfo struct {
	local   string
	space   string
	version string
}

func rootFromStart(start xml.StartElement) rootInfo {
	info := rootInfo{local: start.Name.Local, space: start.Name.Space}
	for _, attr := range start.Attr {
		if attr.Name.Space == "" && attr.Name.Local == mapping.ModernVersionAttr {
			info.version = attr.Value
		}
	}
	return info
}

func rootFromElement(el *etree.Element) rootInfo {
	return rootInfo{
		local:   el.Tag,
		space:   el.NamespaceURI(),
		version: el.SelectAttrValue(mapping.ModernVersionAttr, ""),
	}
}

// classify decides dialect, version and schema from the root element. With
// validate off no schema is selected and any version is recorded as given.
func classify(root rootInfo, validate bool, origin mapping.Origin) (Classification, error) {
	if root.local == mapping.ModernRootElement {
		version := root.version
		if version == "" {
			version = AssumedEntityMappingsVersion
		}
		c := Classification{Dialect: mapping.DialectModern, Version: version}
		if !validate {
			return c, nil
		}
		name, ok := SchemaForVersion(version)
		if !ok {
			return Classification{}, &UnsupportedSchemaVersionError{Origin: origin, Version: version}
		}
		c.SchemaName = name
		return c, nil
	}

	c := Classification{Dialect: mapping.DialectLegacy}
	if root.space == "" {
		c.Normalize = true
		c.NamespaceURI = mapping.LegacyNamespace
	}
	if validate {
		c.SchemaName = schema.LegacyMappingXSD
	}
	return c, nil
}
