package mapping

import "encoding/xml"

// EntityMappings is the typed root of a modern orm.xml document. The same
// tree serves both supported schema versions; elements only defined by the
// later version stay empty for earlier documents.
type EntityMappings struct {
	XMLName xml.Name `xml:"http://java.sun.com/xml/ns/persistence/orm entity-mappings" json:"-" yaml:"-"`
	Version string   `xml:"version,attr,omitempty" json:"version,omitempty" yaml:"version,omitempty"`

	Description             string                   `xml:"description,omitempty" json:"description,omitempty" yaml:"description,omitempty"`
	PersistenceUnitMetadata *PersistenceUnitMetadata `xml:"persistence-unit-metadata" json:"persistence_unit_metadata,omitempty" yaml:"persistence_unit_metadata,omitempty"`
	Package                 string                   `xml:"package,omitempty" json:"package,omitempty" yaml:"package,omitempty"`
	Schema                  string                   `xml:"schema,omitempty" json:"schema,omitempty" yaml:"schema,omitempty"`
	Catalog                 string                   `xml:"catalog,omitempty" json:"catalog,omitempty" yaml:"catalog,omitempty"`
	Access                  string                   `xml:"access,omitempty" json:"access,omitempty" yaml:"access,omitempty"`
	SequenceGenerators      []SequenceGenerator      `xml:"sequence-generator" json:"sequence_generators,omitempty" yaml:"sequence_generators,omitempty"`
	TableGenerators         []TableGenerator         `xml:"table-generator" json:"table_generators,omitempty" yaml:"table_generators,omitempty"`
	NamedQueries            []NamedQuery             `xml:"named-query" json:"named_queries,omitempty" yaml:"named_queries,omitempty"`
	NamedNativeQueries      []NamedNativeQuery       `xml:"named-native-query" json:"named_native_queries,omitempty" yaml:"named_native_queries,omitempty"`
	MappedSuperclasses      []MappedSuperclass       `xml:"mapped-superclass" json:"mapped_superclasses,omitempty" yaml:"mapped_superclasses,omitempty"`
	Entities                []Entity                 `xml:"entity" json:"entities,omitempty" yaml:"entities,omitempty"`
	Embeddables             []Embeddable             `xml:"embeddable" json:"embeddables,omitempty" yaml:"embeddables,omitempty"`
}

// Empty marks presence-only elements such as <lob/> or <cascade-all/>
type Empty struct{}

// PersistenceUnitMetadata holds defaults for the whole persistence unit
type PersistenceUnitMetadata struct {
	Description                string                  `xml:"description,omitempty" json:"description,omitempty" yaml:"description,omitempty"`
	XMLMappingMetadataComplete *Empty                  `xml:"xml-mapping-metadata-complete" json:"xml_mapping_metadata_complete,omitempty" yaml:"xml_mapping_metadata_complete,omitempty"`
	Defaults                   *PersistenceUnitDefault `xml:"persistence-unit-defaults" json:"defaults,omitempty" yaml:"defaults,omitempty"`
}

// PersistenceUnitDefault is the <persistence-unit-defaults> block
type PersistenceUnitDefault struct {
	Description          string `xml:"description,omitempty" json:"description,omitempty" yaml:"description,omitempty"`
	Schema               string `xml:"schema,omitempty" json:"schema,omitempty" yaml:"schema,omitempty"`
	Catalog              string `xml:"catalog,omitempty" json:"catalog,omitempty" yaml:"catalog,omitempty"`
	DelimitedIdentifiers *Empty `xml:"delimited-identifiers" json:"delimited_identifiers,omitempty" yaml:"delimited_identifiers,omitempty"`
	Access               string `xml:"access,omitempty" json:"access,omitempty" yaml:"access,omitempty"`
	CascadePersist       *Empty `xml:"cascade-persist" json:"cascade_persist,omitempty" yaml:"cascade_persist,omitempty"`
}

// SequenceGenerator declares a database sequence used for identifiers
type SequenceGenerator struct {
	Description    string `xml:"description,omitempty" json:"description,omitempty" yaml:"description,omitempty"`
	Name           string `xml:"name,attr" json:"name" yaml:"name"`
	SequenceName   string `xml:"sequence-name,attr,omitempty" json:"sequence_name,omitempty" yaml:"sequence_name,omitempty"`
	Catalog        string `xml:"catalog,attr,omitempty" json:"catalog,omitempty" yaml:"catalog,omitempty"`
	Schema         string `xml:"schema,attr,omitempty" json:"schema,omitempty" yaml:"schema,omitempty"`
	InitialValue   int    `xml:"initial-value,attr,omitempty" json:"initial_value,omitempty" yaml:"initial_value,omitempty"`
	AllocationSize int    `xml:"allocation-size,attr,omitempty" json:"allocation_size,omitempty" yaml:"allocation_size,omitempty"`
}

// TableGenerator declares a table-backed identifier generator
type TableGenerator struct {
	Description     string `xml:"description,omitempty" json:"description,omitempty" yaml:"description,omitempty"`
	Name            string `xml:"name,attr" json:"name" yaml:"name"`
	Table           string `xml:"table,attr,omitempty" json:"table,omitempty" yaml:"table,omitempty"`
	Catalog         string `xml:"catalog,attr,omitempty" json:"catalog,omitempty" yaml:"catalog,omitempty"`
	Schema          string `xml:"schema,attr,omitempty" json:"schema,omitempty" yaml:"schema,omitempty"`
	PKColumnName    string `xml:"pk-column-name,attr,omitempty" json:"pk_column_name,omitempty" yaml:"pk_column_name,omitempty"`
	ValueColumnName string `xml:"value-column-name,attr,omitempty" json:"value_column_name,omitempty" yaml:"value_column_name,omitempty"`
	PKColumnValue   string `xml:"pk-column-value,attr,omitempty" json:"pk_column_value,omitempty" yaml:"pk_column_value,omitempty"`
	InitialValue    int    `xml:"initial-value,attr,omitempty" json:"initial_value,omitempty" yaml:"initial_value,omitempty"`
	AllocationSize  int    `xml:"allocation-size,attr,omitempty" json:"allocation_size,omitempty" yaml:"allocation_size,omitempty"`
}

// QueryHint is a vendor-specific hint attached to a named query
type QueryHint struct {
	Name  string `xml:"name,attr" json:"name" yaml:"name"`
	Value string `xml:"value,attr" json:"value" yaml:"value"`
}

// NamedQuery is a named JPQL query
type NamedQuery struct {
	Name        string      `xml:"name,attr" json:"name" yaml:"name"`
	Description string      `xml:"description,omitempty" json:"description,omitempty" yaml:"description,omitempty"`
	Query       string      `xml:"query" json:"query" yaml:"query"`
	LockMode    string      `xml:"lock-mode,omitempty" json:"lock_mode,omitempty" yaml:"lock_mode,omitempty"`
	Hints       []QueryHint `xml:"hint" json:"hints,omitempty" yaml:"hints,omitempty"`
}

// NamedNativeQuery is a named native SQL query
type NamedNativeQuery struct {
	Name             string      `xml:"name,attr" json:"name" yaml:"name"`
	ResultClass      string      `xml:"result-class,attr,omitempty" json:"result_class,omitempty" yaml:"result_class,omitempty"`
	ResultSetMapping string      `xml:"result-set-mapping,attr,omitempty" json:"result_set_mapping,omitempty" yaml:"result_set_mapping,omitempty"`
	Description      string      `xml:"description,omitempty" json:"description,omitempty" yaml:"description,omitempty"`
	Query            string      `xml:"query" json:"query" yaml:"query"`
	Hints            []QueryHint `xml:"hint" json:"hints,omitempty" yaml:"hints,omitempty"`
}

// UniqueConstraint lists the columns of a table-level unique constraint
type UniqueConstraint struct {
	Name        string   `xml:"name,attr,omitempty" json:"name,omitempty" yaml:"name,omitempty"`
	ColumnNames []string `xml:"column-name" json:"column_names" yaml:"column_names"`
}

// Table names the primary table of an entity
type Table struct {
	Name              string             `xml:"name,attr,omitempty" json:"name,omitempty" yaml:"name,omitempty"`
	Catalog           string             `xml:"catalog,attr,omitempty" json:"catalog,omitempty" yaml:"catalog,omitempty"`
	Schema            string             `xml:"schema,attr,omitempty" json:"schema,omitempty" yaml:"schema,omitempty"`
	UniqueConstraints []UniqueConstraint `xml:"unique-constraint" json:"unique_constraints,omitempty" yaml:"unique_constraints,omitempty"`
}

// IDClass names the class holding a composite primary key
type IDClass struct {
	Class string `xml:"class,attr" json:"class" yaml:"class"`
}

// Inheritance selects the inheritance strategy of an entity hierarchy
type Inheritance struct {
	Strategy string `xml:"strategy,attr,omitempty" json:"strategy,omitempty" yaml:"strategy,omitempty"`
}

// DiscriminatorColumn declares the discriminator column of a hierarchy
type DiscriminatorColumn struct {
	Name              string `xml:"name,attr,omitempty" json:"name,omitempty" yaml:"name,omitempty"`
	DiscriminatorType string `xml:"discriminator-type,attr,omitempty" json:"discriminator_type,omitempty" yaml:"discriminator_type,omitempty"`
	ColumnDefinition  string `xml:"column-definition,attr,omitempty" json:"column_definition,omitempty" yaml:"column_definition,omitempty"`
	Length            int    `xml:"length,attr,omitempty" json:"length,omitempty" yaml:"length,omitempty"`
}

// EntityColumn describes the column an attribute is stored in
type EntityColumn struct {
	Name             string `xml:"name,attr,omitempty" json:"name,omitempty" yaml:"name,omitempty"`
	Unique           *bool  `xml:"unique,attr" json:"unique,omitempty" yaml:"unique,omitempty"`
	Nullable         *bool  `xml:"nullable,attr" json:"nullable,omitempty" yaml:"nullable,omitempty"`
	Insertable       *bool  `xml:"insertable,attr" json:"insertable,omitempty" yaml:"insertable,omitempty"`
	Updatable        *bool  `xml:"updatable,attr" json:"updatable,omitempty" yaml:"updatable,omitempty"`
	ColumnDefinition string `xml:"column-definition,attr,omitempty" json:"column_definition,omitempty" yaml:"column_definition,omitempty"`
	Table            string `xml:"table,attr,omitempty" json:"table,omitempty" yaml:"table,omitempty"`
	Length           int    `xml:"length,attr,omitempty" json:"length,omitempty" yaml:"length,omitempty"`
	Precision        int    `xml:"precision,attr,omitempty" json:"precision,omitempty" yaml:"precision,omitempty"`
	Scale            int    `xml:"scale,attr,omitempty" json:"scale,omitempty" yaml:"scale,omitempty"`
}

// JoinColumn describes a foreign key column of an association
type JoinColumn struct {
	Name                 string `xml:"name,attr,omitempty" json:"name,omitempty" yaml:"name,omitempty"`
	ReferencedColumnName string `xml:"referenced-column-name,attr,omitempty" json:"referenced_column_name,omitempty" yaml:"referenced_column_name,omitempty"`
	Unique               *bool  `xml:"unique,attr" json:"unique,omitempty" yaml:"unique,omitempty"`
	Nullable             *bool  `xml:"nullable,attr" json:"nullable,omitempty" yaml:"nullable,omitempty"`
	Insertable           *bool  `xml:"insertable,attr" json:"insertable,omitempty" yaml:"insertable,omitempty"`
	Updatable            *bool  `xml:"updatable,attr" json:"updatable,omitempty" yaml:"updatable,omitempty"`
	ColumnDefinition     string `xml:"column-definition,attr,omitempty" json:"column_definition,omitempty" yaml:"column_definition,omitempty"`
	Table                string `xml:"table,attr,omitempty" json:"table,omitempty" yaml:"table,omitempty"`
}

// JoinTable describes the association table of a many-valued relationship
type JoinTable struct {
	Name               string       `xml:"name,attr,omitempty" json:"name,omitempty" yaml:"name,omitempty"`
	Catalog            string       `xml:"catalog,attr,omitempty" json:"catalog,omitempty" yaml:"catalog,omitempty"`
	Schema             string       `xml:"schema,attr,omitempty" json:"schema,omitempty" yaml:"schema,omitempty"`
	JoinColumns        []JoinColumn `xml:"join-column" json:"join_columns,omitempty" yaml:"join_columns,omitempty"`
	InverseJoinColumns []JoinColumn `xml:"inverse-join-column" json:"inverse_join_columns,omitempty" yaml:"inverse_join_columns,omitempty"`
}

// CascadeType lists the operations cascaded across an association
type CascadeType struct {
	All     *Empty `xml:"cascade-all" json:"all,omitempty" yaml:"all,omitempty"`
	Persist *Empty `xml:"cascade-persist" json:"persist,omitempty" yaml:"persist,omitempty"`
	Merge   *Empty `xml:"cascade-merge" json:"merge,omitempty" yaml:"merge,omitempty"`
	Remove  *Empty `xml:"cascade-remove" json:"remove,omitempty" yaml:"remove,omitempty"`
	Refresh *Empty `xml:"cascade-refresh" json:"refresh,omitempty" yaml:"refresh,omitempty"`
	Detach  *Empty `xml:"cascade-detach" json:"detach,omitempty" yaml:"detach,omitempty"`
}

// GeneratedValue selects how an identifier value is produced
type GeneratedValue struct {
	Strategy  string `xml:"strategy,attr,omitempty" json:"strategy,omitempty" yaml:"strategy,omitempty"`
	Generator string `xml:"generator,attr,omitempty" json:"generator,omitempty" yaml:"generator,omitempty"`
}

// EntityID maps an identifier attribute
type EntityID struct {
	Name              string             `xml:"name,attr" json:"name" yaml:"name"`
	Access            string             `xml:"access,attr,omitempty" json:"access,omitempty" yaml:"access,omitempty"`
	Column            *EntityColumn      `xml:"column" json:"column,omitempty" yaml:"column,omitempty"`
	GeneratedValue    *GeneratedValue    `xml:"generated-value" json:"generated_value,omitempty" yaml:"generated_value,omitempty"`
	Temporal          string             `xml:"temporal,omitempty" json:"temporal,omitempty" yaml:"temporal,omitempty"`
	TableGenerator    *TableGenerator    `xml:"table-generator" json:"table_generator,omitempty" yaml:"table_generator,omitempty"`
	SequenceGenerator *SequenceGenerator `xml:"sequence-generator" json:"sequence_generator,omitempty" yaml:"sequence_generator,omitempty"`
}

// AttributeOverride remaps the column of an embedded or inherited attribute
type AttributeOverride struct {
	Name        string        `xml:"name,attr" json:"name" yaml:"name"`
	Description string        `xml:"description,omitempty" json:"description,omitempty" yaml:"description,omitempty"`
	Column      *EntityColumn `xml:"column" json:"column,omitempty" yaml:"column,omitempty"`
}

// EmbeddedID maps an embeddable used as the primary key
type EmbeddedID struct {
	Name               string              `xml:"name,attr" json:"name" yaml:"name"`
	Access             string              `xml:"access,attr,omitempty" json:"access,omitempty" yaml:"access,omitempty"`
	AttributeOverrides []AttributeOverride `xml:"attribute-override" json:"attribute_overrides,omitempty" yaml:"attribute_overrides,omitempty"`
}

// Basic maps a scalar attribute
type Basic struct {
	Name       string        `xml:"name,attr" json:"name" yaml:"name"`
	Fetch      string        `xml:"fetch,attr,omitempty" json:"fetch,omitempty" yaml:"fetch,omitempty"`
	Optional   *bool         `xml:"optional,attr" json:"optional,omitempty" yaml:"optional,omitempty"`
	Access     string        `xml:"access,attr,omitempty" json:"access,omitempty" yaml:"access,omitempty"`
	Column     *EntityColumn `xml:"column" json:"column,omitempty" yaml:"column,omitempty"`
	Lob        *Empty        `xml:"lob" json:"lob,omitempty" yaml:"lob,omitempty"`
	Temporal   string        `xml:"temporal,omitempty" json:"temporal,omitempty" yaml:"temporal,omitempty"`
	Enumerated string        `xml:"enumerated,omitempty" json:"enumerated,omitempty" yaml:"enumerated,omitempty"`
}

// EntityVersion maps the optimistic-locking version attribute
type EntityVersion struct {
	Name     string        `xml:"name,attr" json:"name" yaml:"name"`
	Access   string        `xml:"access,attr,omitempty" json:"access,omitempty" yaml:"access,omitempty"`
	Column   *EntityColumn `xml:"column" json:"column,omitempty" yaml:"column,omitempty"`
	Temporal string        `xml:"temporal,omitempty" json:"temporal,omitempty" yaml:"temporal,omitempty"`
}

// Relationship holds what every association element shares
type Relationship struct {
	Name         string       `xml:"name,attr" json:"name" yaml:"name"`
	TargetEntity string       `xml:"target-entity,attr,omitempty" json:"target_entity,omitempty" yaml:"target_entity,omitempty"`
	Fetch        string       `xml:"fetch,attr,omitempty" json:"fetch,omitempty" yaml:"fetch,omitempty"`
	Access       string       `xml:"access,attr,omitempty" json:"access,omitempty" yaml:"access,omitempty"`
	Cascade      *CascadeType `xml:"cascade" json:"cascade,omitempty" yaml:"cascade,omitempty"`
}

// EntityManyToOne maps a single-valued association owning a foreign key
type EntityManyToOne struct {
	Relationship `yaml:",inline"`

	Optional    *bool        `xml:"optional,attr" json:"optional,omitempty" yaml:"optional,omitempty"`
	MapsID      string       `xml:"maps-id,attr,omitempty" json:"maps_id,omitempty" yaml:"maps_id,omitempty"`
	ID          *bool        `xml:"id,attr" json:"id,omitempty" yaml:"id,omitempty"`
	JoinColumns []JoinColumn `xml:"join-column" json:"join_columns,omitempty" yaml:"join_columns,omitempty"`
	JoinTable   *JoinTable   `xml:"join-table" json:"join_table,omitempty" yaml:"join_table,omitempty"`
}

// OrderColumn keeps the persistent order of a list
type OrderColumn struct {
	Name             string `xml:"name,attr,omitempty" json:"name,omitempty" yaml:"name,omitempty"`
	Nullable         *bool  `xml:"nullable,attr" json:"nullable,omitempty" yaml:"nullable,omitempty"`
	Insertable       *bool  `xml:"insertable,attr" json:"insertable,omitempty" yaml:"insertable,omitempty"`
	Updatable        *bool  `xml:"updatable,attr" json:"updatable,omitempty" yaml:"updatable,omitempty"`
	ColumnDefinition string `xml:"column-definition,attr,omitempty" json:"column_definition,omitempty" yaml:"column_definition,omitempty"`
}

// MapKey names the attribute used as the key of a map-valued association
type MapKey struct {
	Name string `xml:"name,attr,omitempty" json:"name,omitempty" yaml:"name,omitempty"`
}

// EntityOneToMany maps a collection-valued association
type EntityOneToMany struct {
	Relationship `yaml:",inline"`

	MappedBy      string       `xml:"mapped-by,attr,omitempty" json:"mapped_by,omitempty" yaml:"mapped_by,omitempty"`
	OrphanRemoval *bool        `xml:"orphan-removal,attr" json:"orphan_removal,omitempty" yaml:"orphan_removal,omitempty"`
	OrderBy       string       `xml:"order-by,omitempty" json:"order_by,omitempty" yaml:"order_by,omitempty"`
	OrderColumn   *OrderColumn `xml:"order-column" json:"order_column,omitempty" yaml:"order_column,omitempty"`
	MapKey        *MapKey      `xml:"map-key" json:"map_key,omitempty" yaml:"map_key,omitempty"`
	JoinTable     *JoinTable   `xml:"join-table" json:"join_table,omitempty" yaml:"join_table,omitempty"`
	JoinColumns   []JoinColumn `xml:"join-column" json:"join_columns,omitempty" yaml:"join_columns,omitempty"`
}

// EntityOneToOne maps a single-valued association to one other entity
type EntityOneToOne struct {
	Relationship `yaml:",inline"`

	Optional      *bool        `xml:"optional,attr" json:"optional,omitempty" yaml:"optional,omitempty"`
	MappedBy      string       `xml:"mapped-by,attr,omitempty" json:"mapped_by,omitempty" yaml:"mapped_by,omitempty"`
	OrphanRemoval *bool        `xml:"orphan-removal,attr" json:"orphan_removal,omitempty" yaml:"orphan_removal,omitempty"`
	MapsID        string       `xml:"maps-id,attr,omitempty" json:"maps_id,omitempty" yaml:"maps_id,omitempty"`
	ID            *bool        `xml:"id,attr" json:"id,omitempty" yaml:"id,omitempty"`
	JoinColumns   []JoinColumn `xml:"join-column" json:"join_columns,omitempty" yaml:"join_columns,omitempty"`
	JoinTable     *JoinTable   `xml:"join-table" json:"join_table,omitempty" yaml:"join_table,omitempty"`
}

// EntityManyToMany maps a many-valued association through a join table
type EntityManyToMany struct {
	Relationship `yaml:",inline"`

	MappedBy    string       `xml:"mapped-by,attr,omitempty" json:"mapped_by,omitempty" yaml:"mapped_by,omitempty"`
	OrderBy     string       `xml:"order-by,omitempty" json:"order_by,omitempty" yaml:"order_by,omitempty"`
	OrderColumn *OrderColumn `xml:"order-column" json:"order_column,omitempty" yaml:"order_column,omitempty"`
	MapKey      *MapKey      `xml:"map-key" json:"map_key,omitempty" yaml:"map_key,omitempty"`
	JoinTable   *JoinTable   `xml:"join-table" json:"join_table,omitempty" yaml:"join_table,omitempty"`
}

// CollectionTable names the table holding an element collection
type CollectionTable struct {
	Name        string       `xml:"name,attr,omitempty" json:"name,omitempty" yaml:"name,omitempty"`
	Catalog     string       `xml:"catalog,attr,omitempty" json:"catalog,omitempty" yaml:"catalog,omitempty"`
	Schema      string       `xml:"schema,attr,omitempty" json:"schema,omitempty" yaml:"schema,omitempty"`
	JoinColumns []JoinColumn `xml:"join-column" json:"join_columns,omitempty" yaml:"join_columns,omitempty"`
}

// ElementCollection maps a collection of basic or embeddable values
type ElementCollection struct {
	Name            string           `xml:"name,attr" json:"name" yaml:"name"`
	TargetClass     string           `xml:"target-class,attr,omitempty" json:"target_class,omitempty" yaml:"target_class,omitempty"`
	Fetch           string           `xml:"fetch,attr,omitempty" json:"fetch,omitempty" yaml:"fetch,omitempty"`
	Access          string           `xml:"access,attr,omitempty" json:"access,omitempty" yaml:"access,omitempty"`
	OrderBy         string           `xml:"order-by,omitempty" json:"order_by,omitempty" yaml:"order_by,omitempty"`
	OrderColumn     *OrderColumn     `xml:"order-column" json:"order_column,omitempty" yaml:"order_column,omitempty"`
	Column          *EntityColumn    `xml:"column" json:"column,omitempty" yaml:"column,omitempty"`
	Temporal        string           `xml:"temporal,omitempty" json:"temporal,omitempty" yaml:"temporal,omitempty"`
	Enumerated      string           `xml:"enumerated,omitempty" json:"enumerated,omitempty" yaml:"enumerated,omitempty"`
	Lob             *Empty           `xml:"lob" json:"lob,omitempty" yaml:"lob,omitempty"`
	CollectionTable *CollectionTable `xml:"collection-table" json:"collection_table,omitempty" yaml:"collection_table,omitempty"`
}

// Embedded maps an attribute whose value is an embeddable
type Embedded struct {
	Name               string              `xml:"name,attr" json:"name" yaml:"name"`
	Access             string              `xml:"access,attr,omitempty" json:"access,omitempty" yaml:"access,omitempty"`
	AttributeOverrides []AttributeOverride `xml:"attribute-override" json:"attribute_overrides,omitempty" yaml:"attribute_overrides,omitempty"`
}

// Transient marks an attribute as not persistent
type Transient struct {
	Name string `xml:"name,attr" json:"name" yaml:"name"`
}

// EntityAttributeSet is the <attributes> block of an entity or mapped superclass
type EntityAttributeSet struct {
	Description        string              `xml:"description,omitempty" json:"description,omitempty" yaml:"description,omitempty"`
	IDs                []EntityID          `xml:"id" json:"ids,omitempty" yaml:"ids,omitempty"`
	EmbeddedID         *EmbeddedID         `xml:"embedded-id" json:"embedded_id,omitempty" yaml:"embedded_id,omitempty"`
	Basics             []Basic             `xml:"basic" json:"basics,omitempty" yaml:"basics,omitempty"`
	Versions           []EntityVersion     `xml:"version" json:"versions,omitempty" yaml:"versions,omitempty"`
	ManyToOnes         []EntityManyToOne   `xml:"many-to-one" json:"many_to_ones,omitempty" yaml:"many_to_ones,omitempty"`
	OneToManys         []EntityOneToMany   `xml:"one-to-many" json:"one_to_manys,omitempty" yaml:"one_to_manys,omitempty"`
	OneToOnes          []EntityOneToOne    `xml:"one-to-one" json:"one_to_ones,omitempty" yaml:"one_to_ones,omitempty"`
	ManyToManys        []EntityManyToMany  `xml:"many-to-many" json:"many_to_manys,omitempty" yaml:"many_to_manys,omitempty"`
	ElementCollections []ElementCollection `xml:"element-collection" json:"element_collections,omitempty" yaml:"element_collections,omitempty"`
	Embeddeds          []Embedded          `xml:"embedded" json:"embeddeds,omitempty" yaml:"embeddeds,omitempty"`
	Transients         []Transient         `xml:"transient" json:"transients,omitempty" yaml:"transients,omitempty"`
}

// Entity maps a persistent class
type Entity struct {
	Name             string `xml:"name,attr,omitempty" json:"name,omitempty" yaml:"name,omitempty"`
	Class            string `xml:"class,attr" json:"class" yaml:"class"`
	Access           string `xml:"access,attr,omitempty" json:"access,omitempty" yaml:"access,omitempty"`
	Cacheable        *bool  `xml:"cacheable,attr" json:"cacheable,omitempty" yaml:"cacheable,omitempty"`
	MetadataComplete *bool  `xml:"metadata-complete,attr" json:"metadata_complete,omitempty" yaml:"metadata_complete,omitempty"`

	Description         string               `xml:"description,omitempty" json:"description,omitempty" yaml:"description,omitempty"`
	Table               *Table               `xml:"table" json:"table,omitempty" yaml:"table,omitempty"`
	IDClass             *IDClass             `xml:"id-class" json:"id_class,omitempty" yaml:"id_class,omitempty"`
	Inheritance         *Inheritance         `xml:"inheritance" json:"inheritance,omitempty" yaml:"inheritance,omitempty"`
	DiscriminatorValue  string               `xml:"discriminator-value,omitempty" json:"discriminator_value,omitempty" yaml:"discriminator_value,omitempty"`
	DiscriminatorColumn *DiscriminatorColumn `xml:"discriminator-column" json:"discriminator_column,omitempty" yaml:"discriminator_column,omitempty"`
	SequenceGenerator   *SequenceGenerator   `xml:"sequence-generator" json:"sequence_generator,omitempty" yaml:"sequence_generator,omitempty"`
	TableGenerator      *TableGenerator      `xml:"table-generator" json:"table_generator,omitempty" yaml:"table_generator,omitempty"`
	NamedQueries        []NamedQuery         `xml:"named-query" json:"named_queries,omitempty" yaml:"named_queries,omitempty"`
	NamedNativeQueries  []NamedNativeQuery   `xml:"named-native-query" json:"named_native_queries,omitempty" yaml:"named_native_queries,omitempty"`
	AttributeOverrides  []AttributeOverride  `xml:"attribute-override" json:"attribute_overrides,omitempty" yaml:"attribute_overrides,omitempty"`
	Attributes          *EntityAttributeSet  `xml:"attributes" json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// MappedSuperclass maps a non-entity superclass whose state is inherited
type MappedSuperclass struct {
	Class            string              `xml:"class,attr" json:"class" yaml:"class"`
	Access           string              `xml:"access,attr,omitempty" json:"access,omitempty" yaml:"access,omitempty"`
	MetadataComplete *bool               `xml:"metadata-complete,attr" json:"metadata_complete,omitempty" yaml:"metadata_complete,omitempty"`
	Description      string              `xml:"description,omitempty" json:"description,omitempty" yaml:"description,omitempty"`
	IDClass          *IDClass            `xml:"id-class" json:"id_class,omitempty" yaml:"id_class,omitempty"`
	Attributes       *EntityAttributeSet `xml:"attributes" json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// EmbeddableAttributeSet is the <attributes> block of an embeddable
type EmbeddableAttributeSet struct {
	Basics             []Basic             `xml:"basic" json:"basics,omitempty" yaml:"basics,omitempty"`
	ManyToOnes         []EntityManyToOne   `xml:"many-to-one" json:"many_to_ones,omitempty" yaml:"many_to_ones,omitempty"`
	ElementCollections []ElementCollection `xml:"element-collection" json:"element_collections,omitempty" yaml:"element_collections,omitempty"`
	Embeddeds          []Embedded          `xml:"embedded" json:"embeddeds,omitempty" yaml:"embeddeds,omitempty"`
	Transients         []Transient         `xml:"transient" json:"transients,omitempty" yaml:"transients,omitempty"`
}

// Embeddable maps a value class stored inside its owner
type Embeddable struct {
	Class            string                  `xml:"class,attr" json:"class" yaml:"class"`
	Access           string                  `xml:"access,attr,omitempty" json:"access,omitempty" yaml:"access,omitempty"`
	MetadataComplete *bool                   `xml:"metadata-complete,attr" json:"metadata_complete,omitempty" yaml:"metadata_complete,omitempty"`
	Description      string                  `xml:"description,omitempty" json:"description,omitempty" yaml:"description,omitempty"`
	Attributes       *EmbeddableAttributeSet `xml:"attributes" json:"attributes,omitempty" yaml:"attributes,omitempty"`
}
