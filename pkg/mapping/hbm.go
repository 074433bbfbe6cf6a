package mapping

import "encoding/xml"

// HibernateMapping is the typed root of a legacy hbm.xml document.
//
// Child elements are matched by local name only; the namespace of the root
// is fixed because un-namespaced documents are rewritten into it before
// binding.
type HibernateMapping struct {
	XMLName        xml.Name `xml:"http://www.hibernate.org/xsd/hibernate-mapping hibernate-mapping" json:"-" yaml:"-"`
	Schema         string   `xml:"schema,attr,omitempty" json:"schema,omitempty" yaml:"schema,omitempty"`
	Catalog        string   `xml:"catalog,attr,omitempty" json:"catalog,omitempty" yaml:"catalog,omitempty"`
	DefaultCascade string   `xml:"default-cascade,attr,omitempty" json:"default_cascade,omitempty" yaml:"default_cascade,omitempty"`
	DefaultAccess  string   `xml:"default-access,attr,omitempty" json:"default_access,omitempty" yaml:"default_access,omitempty"`
	DefaultLazy    *bool    `xml:"default-lazy,attr" json:"default_lazy,omitempty" yaml:"default_lazy,omitempty"`
	AutoImport     *bool    `xml:"auto-import,attr" json:"auto_import,omitempty" yaml:"auto_import,omitempty"`
	Package        string   `xml:"package,attr,omitempty" json:"package,omitempty" yaml:"package,omitempty"`

	Meta             []Meta           `xml:"meta" json:"meta,omitempty" yaml:"meta,omitempty"`
	TypeDefs         []TypeDef        `xml:"typedef" json:"typedefs,omitempty" yaml:"typedefs,omitempty"`
	FilterDefs       []FilterDef      `xml:"filter-def" json:"filter_defs,omitempty" yaml:"filter_defs,omitempty"`
	Imports          []Import         `xml:"import" json:"imports,omitempty" yaml:"imports,omitempty"`
	Classes          []Class          `xml:"class" json:"classes,omitempty" yaml:"classes,omitempty"`
	Subclasses       []Subclass       `xml:"subclass" json:"subclasses,omitempty" yaml:"subclasses,omitempty"`
	JoinedSubclasses []JoinedSubclass `xml:"joined-subclass" json:"joined_subclasses,omitempty" yaml:"joined_subclasses,omitempty"`
	UnionSubclasses  []UnionSubclass  `xml:"union-subclass" json:"union_subclasses,omitempty" yaml:"union_subclasses,omitempty"`
	Queries          []Query          `xml:"query" json:"queries,omitempty" yaml:"queries,omitempty"`
	SQLQueries       []SQLQuery       `xml:"sql-query" json:"sql_queries,omitempty" yaml:"sql_queries,omitempty"`
}

// Meta is a free-form <meta attribute="..."> annotation
type Meta struct {
	Attribute string `xml:"attribute,attr" json:"attribute" yaml:"attribute"`
	Inherit   *bool  `xml:"inherit,attr" json:"inherit,omitempty" yaml:"inherit,omitempty"`
	Value     string `xml:",chardata" json:"value" yaml:"value"`
}

// Param is a named parameter of a generator, type or typedef
type Param struct {
	Name  string `xml:"name,attr" json:"name" yaml:"name"`
	Value string `xml:",chardata" json:"value" yaml:"value"`
}

// TypeDef registers a custom type under a short name
type TypeDef struct {
	Class  string  `xml:"class,attr" json:"class" yaml:"class"`
	Name   string  `xml:"name,attr" json:"name" yaml:"name"`
	Params []Param `xml:"param" json:"params,omitempty" yaml:"params,omitempty"`
}

// FilterDef declares a named filter and its parameters
type FilterDef struct {
	Name      string        `xml:"name,attr" json:"name" yaml:"name"`
	Condition string        `xml:"condition,attr,omitempty" json:"condition,omitempty" yaml:"condition,omitempty"`
	Params    []FilterParam `xml:"filter-param" json:"params,omitempty" yaml:"params,omitempty"`
	Body      string        `xml:",chardata" json:"body,omitempty" yaml:"body,omitempty"`
}

// FilterParam is a typed parameter of a filter definition
type FilterParam struct {
	Name string `xml:"name,attr" json:"name" yaml:"name"`
	Type string `xml:"type,attr" json:"type" yaml:"type"`
}

// Filter applies a filter definition to a class or collection
type Filter struct {
	Name      string `xml:"name,attr" json:"name" yaml:"name"`
	Condition string `xml:"condition,attr,omitempty" json:"condition,omitempty" yaml:"condition,omitempty"`
	Body      string `xml:",chardata" json:"body,omitempty" yaml:"body,omitempty"`
}

// Import makes a class available to queries under another name
type Import struct {
	Class  string `xml:"class,attr" json:"class" yaml:"class"`
	Rename string `xml:"rename,attr,omitempty" json:"rename,omitempty" yaml:"rename,omitempty"`
}

// Cache configures second-level caching for a class or collection
type Cache struct {
	Usage   string `xml:"usage,attr" json:"usage" yaml:"usage"`
	Region  string `xml:"region,attr,omitempty" json:"region,omitempty" yaml:"region,omitempty"`
	Include string `xml:"include,attr,omitempty" json:"include,omitempty" yaml:"include,omitempty"`
}

// Column describes a mapped database column
type Column struct {
	Name      string `xml:"name,attr" json:"name" yaml:"name"`
	Length    int    `xml:"length,attr,omitempty" json:"length,omitempty" yaml:"length,omitempty"`
	Precision int    `xml:"precision,attr,omitempty" json:"precision,omitempty" yaml:"precision,omitempty"`
	Scale     int    `xml:"scale,attr,omitempty" json:"scale,omitempty" yaml:"scale,omitempty"`
	NotNull   *bool  `xml:"not-null,attr" json:"not_null,omitempty" yaml:"not_null,omitempty"`
	Unique    *bool  `xml:"unique,attr" json:"unique,omitempty" yaml:"unique,omitempty"`
	UniqueKey string `xml:"unique-key,attr,omitempty" json:"unique_key,omitempty" yaml:"unique_key,omitempty"`
	Index     string `xml:"index,attr,omitempty" json:"index,omitempty" yaml:"index,omitempty"`
	SQLType   string `xml:"sql-type,attr,omitempty" json:"sql_type,omitempty" yaml:"sql_type,omitempty"`
	Default   string `xml:"default,attr,omitempty" json:"default,omitempty" yaml:"default,omitempty"`
	Check     string `xml:"check,attr,omitempty" json:"check,omitempty" yaml:"check,omitempty"`
	Comment   string `xml:"comment,omitempty" json:"comment,omitempty" yaml:"comment,omitempty"`
}

// TypeRef is a nested <type> element carrying parameters
type TypeRef struct {
	Name   string  `xml:"name,attr" json:"name" yaml:"name"`
	Params []Param `xml:"param" json:"params,omitempty" yaml:"params,omitempty"`
}

// Generator selects the identifier generation strategy
type Generator struct {
	Class  string  `xml:"class,attr" json:"class" yaml:"class"`
	Params []Param `xml:"param" json:"params,omitempty" yaml:"params,omitempty"`
}

// ID maps a single-column identifier
type ID struct {
	Name         string     `xml:"name,attr,omitempty" json:"name,omitempty" yaml:"name,omitempty"`
	Column       string     `xml:"column,attr,omitempty" json:"column,omitempty" yaml:"column,omitempty"`
	Type         string     `xml:"type,attr,omitempty" json:"type,omitempty" yaml:"type,omitempty"`
	Length       int        `xml:"length,attr,omitempty" json:"length,omitempty" yaml:"length,omitempty"`
	Access       string     `xml:"access,attr,omitempty" json:"access,omitempty" yaml:"access,omitempty"`
	UnsavedValue string     `xml:"unsaved-value,attr,omitempty" json:"unsaved_value,omitempty" yaml:"unsaved_value,omitempty"`
	Meta         []Meta     `xml:"meta" json:"meta,omitempty" yaml:"meta,omitempty"`
	Columns      []Column   `xml:"column" json:"columns,omitempty" yaml:"columns,omitempty"`
	TypeRef      *TypeRef   `xml:"type" json:"type_ref,omitempty" yaml:"type_ref,omitempty"`
	Generator    *Generator `xml:"generator" json:"generator,omitempty" yaml:"generator,omitempty"`
}

// KeyProperty is one scalar part of a composite identifier
type KeyProperty struct {
	Name    string   `xml:"name,attr" json:"name" yaml:"name"`
	Column  string   `xml:"column,attr,omitempty" json:"column,omitempty" yaml:"column,omitempty"`
	Type    string   `xml:"type,attr,omitempty" json:"type,omitempty" yaml:"type,omitempty"`
	Length  int      `xml:"length,attr,omitempty" json:"length,omitempty" yaml:"length,omitempty"`
	Access  string   `xml:"access,attr,omitempty" json:"access,omitempty" yaml:"access,omitempty"`
	Columns []Column `xml:"column" json:"columns,omitempty" yaml:"columns,omitempty"`
}

// KeyManyToOne is one association part of a composite identifier
type KeyManyToOne struct {
	Name       string   `xml:"name,attr" json:"name" yaml:"name"`
	Class      string   `xml:"class,attr,omitempty" json:"class,omitempty" yaml:"class,omitempty"`
	EntityName string   `xml:"entity-name,attr,omitempty" json:"entity_name,omitempty" yaml:"entity_name,omitempty"`
	Column     string   `xml:"column,attr,omitempty" json:"column,omitempty" yaml:"column,omitempty"`
	ForeignKey string   `xml:"foreign-key,attr,omitempty" json:"foreign_key,omitempty" yaml:"foreign_key,omitempty"`
	Access     string   `xml:"access,attr,omitempty" json:"access,omitempty" yaml:"access,omitempty"`
	Columns    []Column `xml:"column" json:"columns,omitempty" yaml:"columns,omitempty"`
}

// CompositeID maps a multi-column identifier
type CompositeID struct {
	Name          string         `xml:"name,attr,omitempty" json:"name,omitempty" yaml:"name,omitempty"`
	Class         string         `xml:"class,attr,omitempty" json:"class,omitempty" yaml:"class,omitempty"`
	Mapped        *bool          `xml:"mapped,attr" json:"mapped,omitempty" yaml:"mapped,omitempty"`
	Access        string         `xml:"access,attr,omitempty" json:"access,omitempty" yaml:"access,omitempty"`
	UnsavedValue  string         `xml:"unsaved-value,attr,omitempty" json:"unsaved_value,omitempty" yaml:"unsaved_value,omitempty"`
	Meta          []Meta         `xml:"meta" json:"meta,omitempty" yaml:"meta,omitempty"`
	KeyProperties []KeyProperty  `xml:"key-property" json:"key_properties,omitempty" yaml:"key_properties,omitempty"`
	KeyManyToOnes []KeyManyToOne `xml:"key-many-to-one" json:"key_many_to_ones,omitempty" yaml:"key_many_to_ones,omitempty"`
}

// Discriminator declares the column distinguishing subclasses in one table
type Discriminator struct {
	Column        string  `xml:"column,attr,omitempty" json:"column,omitempty" yaml:"column,omitempty"`
	Formula       string  `xml:"formula,attr,omitempty" json:"formula,omitempty" yaml:"formula,omitempty"`
	Type          string  `xml:"type,attr,omitempty" json:"type,omitempty" yaml:"type,omitempty"`
	Length        int     `xml:"length,attr,omitempty" json:"length,omitempty" yaml:"length,omitempty"`
	NotNull       *bool   `xml:"not-null,attr" json:"not_null,omitempty" yaml:"not_null,omitempty"`
	Force         *bool   `xml:"force,attr" json:"force,omitempty" yaml:"force,omitempty"`
	Insert        *bool   `xml:"insert,attr" json:"insert,omitempty" yaml:"insert,omitempty"`
	ColumnElement *Column `xml:"column" json:"column_element,omitempty" yaml:"column_element,omitempty"`
}

// Version maps an optimistic-locking version counter
type Version struct {
	Name         string   `xml:"name,attr" json:"name" yaml:"name"`
	Column       string   `xml:"column,attr,omitempty" json:"column,omitempty" yaml:"column,omitempty"`
	Type         string   `xml:"type,attr,omitempty" json:"type,omitempty" yaml:"type,omitempty"`
	Access       string   `xml:"access,attr,omitempty" json:"access,omitempty" yaml:"access,omitempty"`
	UnsavedValue string   `xml:"unsaved-value,attr,omitempty" json:"unsaved_value,omitempty" yaml:"unsaved_value,omitempty"`
	Generated    string   `xml:"generated,attr,omitempty" json:"generated,omitempty" yaml:"generated,omitempty"`
	Insert       *bool    `xml:"insert,attr" json:"insert,omitempty" yaml:"insert,omitempty"`
	Meta         []Meta   `xml:"meta" json:"meta,omitempty" yaml:"meta,omitempty"`
	Columns      []Column `xml:"column" json:"columns,omitempty" yaml:"columns,omitempty"`
}

// Timestamp maps an optimistic-locking timestamp
type Timestamp struct {
	Name         string `xml:"name,attr" json:"name" yaml:"name"`
	Column       string `xml:"column,attr,omitempty" json:"column,omitempty" yaml:"column,omitempty"`
	Access       string `xml:"access,attr,omitempty" json:"access,omitempty" yaml:"access,omitempty"`
	Source       string `xml:"source,attr,omitempty" json:"source,omitempty" yaml:"source,omitempty"`
	UnsavedValue string `xml:"unsaved-value,attr,omitempty" json:"unsaved_value,omitempty" yaml:"unsaved_value,omitempty"`
	Generated    string `xml:"generated,attr,omitempty" json:"generated,omitempty" yaml:"generated,omitempty"`
	Meta         []Meta `xml:"meta" json:"meta,omitempty" yaml:"meta,omitempty"`
}

// Property maps a scalar persistent attribute
type Property struct {
	Name      string   `xml:"name,attr" json:"name" yaml:"name"`
	Column    string   `xml:"column,attr,omitempty" json:"column,omitempty" yaml:"column,omitempty"`
	Type      string   `xml:"type,attr,omitempty" json:"type,omitempty" yaml:"type,omitempty"`
	Length    int      `xml:"length,attr,omitempty" json:"length,omitempty" yaml:"length,omitempty"`
	Precision int      `xml:"precision,attr,omitempty" json:"precision,omitempty" yaml:"precision,omitempty"`
	Scale     int      `xml:"scale,attr,omitempty" json:"scale,omitempty" yaml:"scale,omitempty"`
	NotNull   *bool    `xml:"not-null,attr" json:"not_null,omitempty" yaml:"not_null,omitempty"`
	Unique    *bool    `xml:"unique,attr" json:"unique,omitempty" yaml:"unique,omitempty"`
	UniqueKey string   `xml:"unique-key,attr,omitempty" json:"unique_key,omitempty" yaml:"unique_key,omitempty"`
	Index     string   `xml:"index,attr,omitempty" json:"index,omitempty" yaml:"index,omitempty"`
	Update    *bool    `xml:"update,attr" json:"update,omitempty" yaml:"update,omitempty"`
	Insert    *bool    `xml:"insert,attr" json:"insert,omitempty" yaml:"insert,omitempty"`
	Lazy      *bool    `xml:"lazy,attr" json:"lazy,omitempty" yaml:"lazy,omitempty"`
	Formula   string   `xml:"formula,attr,omitempty" json:"formula,omitempty" yaml:"formula,omitempty"`
	Access    string   `xml:"access,attr,omitempty" json:"access,omitempty" yaml:"access,omitempty"`
	Generated string   `xml:"generated,attr,omitempty" json:"generated,omitempty" yaml:"generated,omitempty"`
	Meta      []Meta   `xml:"meta" json:"meta,omitempty" yaml:"meta,omitempty"`
	Columns   []Column `xml:"column" json:"columns,omitempty" yaml:"columns,omitempty"`
	Formulas  []string `xml:"formula" json:"formulas,omitempty" yaml:"formulas,omitempty"`
	TypeRef   *TypeRef `xml:"type" json:"type_ref,omitempty" yaml:"type_ref,omitempty"`
}

// ManyToOne maps an association to a single entity through a foreign key
type ManyToOne struct {
	Name        string   `xml:"name,attr" json:"name" yaml:"name"`
	Class       string   `xml:"class,attr,omitempty" json:"class,omitempty" yaml:"class,omitempty"`
	EntityName  string   `xml:"entity-name,attr,omitempty" json:"entity_name,omitempty" yaml:"entity_name,omitempty"`
	Column      string   `xml:"column,attr,omitempty" json:"column,omitempty" yaml:"column,omitempty"`
	Formula     string   `xml:"formula,attr,omitempty" json:"formula,omitempty" yaml:"formula,omitempty"`
	NotNull     *bool    `xml:"not-null,attr" json:"not_null,omitempty" yaml:"not_null,omitempty"`
	Unique      *bool    `xml:"unique,attr" json:"unique,omitempty" yaml:"unique,omitempty"`
	UniqueKey   string   `xml:"unique-key,attr,omitempty" json:"unique_key,omitempty" yaml:"unique_key,omitempty"`
	Index       string   `xml:"index,attr,omitempty" json:"index,omitempty" yaml:"index,omitempty"`
	Cascade     string   `xml:"cascade,attr,omitempty" json:"cascade,omitempty" yaml:"cascade,omitempty"`
	Fetch       string   `xml:"fetch,attr,omitempty" json:"fetch,omitempty" yaml:"fetch,omitempty"`
	Lazy        string   `xml:"lazy,attr,omitempty" json:"lazy,omitempty" yaml:"lazy,omitempty"`
	Update      *bool    `xml:"update,attr" json:"update,omitempty" yaml:"update,omitempty"`
	Insert      *bool    `xml:"insert,attr" json:"insert,omitempty" yaml:"insert,omitempty"`
	ForeignKey  string   `xml:"foreign-key,attr,omitempty" json:"foreign_key,omitempty" yaml:"foreign_key,omitempty"`
	PropertyRef string   `xml:"property-ref,attr,omitempty" json:"property_ref,omitempty" yaml:"property_ref,omitempty"`
	NotFound    string   `xml:"not-found,attr,omitempty" json:"not_found,omitempty" yaml:"not_found,omitempty"`
	Access      string   `xml:"access,attr,omitempty" json:"access,omitempty" yaml:"access,omitempty"`
	Meta        []Meta   `xml:"meta" json:"meta,omitempty" yaml:"meta,omitempty"`
	Columns     []Column `xml:"column" json:"columns,omitempty" yaml:"columns,omitempty"`
	Formulas    []string `xml:"formula" json:"formulas,omitempty" yaml:"formulas,omitempty"`
}

// OneToOne maps an association sharing the primary key or a unique reference
type OneToOne struct {
	Name        string `xml:"name,attr" json:"name" yaml:"name"`
	Class       string `xml:"class,attr,omitempty" json:"class,omitempty" yaml:"class,omitempty"`
	EntityName  string `xml:"entity-name,attr,omitempty" json:"entity_name,omitempty" yaml:"entity_name,omitempty"`
	Cascade     string `xml:"cascade,attr,omitempty" json:"cascade,omitempty" yaml:"cascade,omitempty"`
	Constrained *bool  `xml:"constrained,attr" json:"constrained,omitempty" yaml:"constrained,omitempty"`
	Fetch       string `xml:"fetch,attr,omitempty" json:"fetch,omitempty" yaml:"fetch,omitempty"`
	Lazy        string `xml:"lazy,attr,omitempty" json:"lazy,omitempty" yaml:"lazy,omitempty"`
	PropertyRef string `xml:"property-ref,attr,omitempty" json:"property_ref,omitempty" yaml:"property_ref,omitempty"`
	ForeignKey  string `xml:"foreign-key,attr,omitempty" json:"foreign_key,omitempty" yaml:"foreign_key,omitempty"`
	Access      string `xml:"access,attr,omitempty" json:"access,omitempty" yaml:"access,omitempty"`
	Meta        []Meta `xml:"meta" json:"meta,omitempty" yaml:"meta,omitempty"`
}

// Parent points a component back at its owning entity
type Parent struct {
	Name   string `xml:"name,attr" json:"name" yaml:"name"`
	Access string `xml:"access,attr,omitempty" json:"access,omitempty" yaml:"access,omitempty"`
}

// Component maps a value type embedded in its owner's table
type Component struct {
	Name   string  `xml:"name,attr" json:"name" yaml:"name"`
	Class  string  `xml:"class,attr,omitempty" json:"class,omitempty" yaml:"class,omitempty"`
	Access string  `xml:"access,attr,omitempty" json:"access,omitempty" yaml:"access,omitempty"`
	Lazy   *bool   `xml:"lazy,attr" json:"lazy,omitempty" yaml:"lazy,omitempty"`
	Unique *bool   `xml:"unique,attr" json:"unique,omitempty" yaml:"unique,omitempty"`
	Update *bool   `xml:"update,attr" json:"update,omitempty" yaml:"update,omitempty"`
	Insert *bool   `xml:"insert,attr" json:"insert,omitempty" yaml:"insert,omitempty"`
	Meta   []Meta  `xml:"meta" json:"meta,omitempty" yaml:"meta,omitempty"`
	Parent *Parent `xml:"parent" json:"parent,omitempty" yaml:"parent,omitempty"`

	Attributes `yaml:",inline"`
}

// NaturalID groups the properties forming a natural key
type NaturalID struct {
	Mutable *bool `xml:"mutable,attr" json:"mutable,omitempty" yaml:"mutable,omitempty"`

	Attributes `yaml:",inline"`
}

// Key is the foreign key of a collection or joined subclass
type Key struct {
	Column      string   `xml:"column,attr,omitempty" json:"column,omitempty" yaml:"column,omitempty"`
	PropertyRef string   `xml:"property-ref,attr,omitempty" json:"property_ref,omitempty" yaml:"property_ref,omitempty"`
	ForeignKey  string   `xml:"foreign-key,attr,omitempty" json:"foreign_key,omitempty" yaml:"foreign_key,omitempty"`
	OnDelete    string   `xml:"on-delete,attr,omitempty" json:"on_delete,omitempty" yaml:"on_delete,omitempty"`
	NotNull     *bool    `xml:"not-null,attr" json:"not_null,omitempty" yaml:"not_null,omitempty"`
	Update      *bool    `xml:"update,attr" json:"update,omitempty" yaml:"update,omitempty"`
	Unique      *bool    `xml:"unique,attr" json:"unique,omitempty" yaml:"unique,omitempty"`
	Columns     []Column `xml:"column" json:"columns,omitempty" yaml:"columns,omitempty"`
}

// Element maps a collection of basic values
type Element struct {
	Column   string   `xml:"column,attr,omitempty" json:"column,omitempty" yaml:"column,omitempty"`
	Formula  string   `xml:"formula,attr,omitempty" json:"formula,omitempty" yaml:"formula,omitempty"`
	Type     string   `xml:"type,attr,omitempty" json:"type,omitempty" yaml:"type,omitempty"`
	Length   int      `xml:"length,attr,omitempty" json:"length,omitempty" yaml:"length,omitempty"`
	NotNull  *bool    `xml:"not-null,attr" json:"not_null,omitempty" yaml:"not_null,omitempty"`
	Unique   *bool    `xml:"unique,attr" json:"unique,omitempty" yaml:"unique,omitempty"`
	Columns  []Column `xml:"column" json:"columns,omitempty" yaml:"columns,omitempty"`
	Formulas []string `xml:"formula" json:"formulas,omitempty" yaml:"formulas,omitempty"`
	TypeRef  *TypeRef `xml:"type" json:"type_ref,omitempty" yaml:"type_ref,omitempty"`
}

// OneToMany maps a collection of entities through a foreign key on the child
type OneToMany struct {
	Class      string `xml:"class,attr,omitempty" json:"class,omitempty" yaml:"class,omitempty"`
	EntityName string `xml:"entity-name,attr,omitempty" json:"entity_name,omitempty" yaml:"entity_name,omitempty"`
	NotFound   string `xml:"not-found,attr,omitempty" json:"not_found,omitempty" yaml:"not_found,omitempty"`
}

// ManyToMany maps a collection of entities through a join table
type ManyToMany struct {
	Class       string   `xml:"class,attr,omitempty" json:"class,omitempty" yaml:"class,omitempty"`
	EntityName  string   `xml:"entity-name,attr,omitempty" json:"entity_name,omitempty" yaml:"entity_name,omitempty"`
	Column      string   `xml:"column,attr,omitempty" json:"column,omitempty" yaml:"column,omitempty"`
	Formula     string   `xml:"formula,attr,omitempty" json:"formula,omitempty" yaml:"formula,omitempty"`
	Fetch       string   `xml:"fetch,attr,omitempty" json:"fetch,omitempty" yaml:"fetch,omitempty"`
	Lazy        string   `xml:"lazy,attr,omitempty" json:"lazy,omitempty" yaml:"lazy,omitempty"`
	NotFound    string   `xml:"not-found,attr,omitempty" json:"not_found,omitempty" yaml:"not_found,omitempty"`
	Unique      *bool    `xml:"unique,attr" json:"unique,omitempty" yaml:"unique,omitempty"`
	OrderBy     string   `xml:"order-by,attr,omitempty" json:"order_by,omitempty" yaml:"order_by,omitempty"`
	Where       string   `xml:"where,attr,omitempty" json:"where,omitempty" yaml:"where,omitempty"`
	ForeignKey  string   `xml:"foreign-key,attr,omitempty" json:"foreign_key,omitempty" yaml:"foreign_key,omitempty"`
	PropertyRef string   `xml:"property-ref,attr,omitempty" json:"property_ref,omitempty" yaml:"property_ref,omitempty"`
	Meta        []Meta   `xml:"meta" json:"meta,omitempty" yaml:"meta,omitempty"`
	Columns     []Column `xml:"column" json:"columns,omitempty" yaml:"columns,omitempty"`
	Formulas    []string `xml:"formula" json:"formulas,omitempty" yaml:"formulas,omitempty"`
	Filters     []Filter `xml:"filter" json:"filters,omitempty" yaml:"filters,omitempty"`
}

// CompositeElement maps a collection of component values
type CompositeElement struct {
	Class      string      `xml:"class,attr" json:"class" yaml:"class"`
	Meta       []Meta      `xml:"meta" json:"meta,omitempty" yaml:"meta,omitempty"`
	Parent     *Parent     `xml:"parent" json:"parent,omitempty" yaml:"parent,omitempty"`
	Properties []Property  `xml:"property" json:"properties,omitempty" yaml:"properties,omitempty"`
	ManyToOnes []ManyToOne `xml:"many-to-one" json:"many_to_ones,omitempty" yaml:"many_to_ones,omitempty"`
}

// ListIndex is the ordering column of a list
type ListIndex struct {
	Column       string  `xml:"column,attr,omitempty" json:"column,omitempty" yaml:"column,omitempty"`
	Base         int     `xml:"base,attr,omitempty" json:"base,omitempty" yaml:"base,omitempty"`
	ColumnDetail *Column `xml:"column" json:"column_element,omitempty" yaml:"column_element,omitempty"`
}

// Index is the key column of a list or map
type Index struct {
	Column  string   `xml:"column,attr,omitempty" json:"column,omitempty" yaml:"column,omitempty"`
	Type    string   `xml:"type,attr,omitempty" json:"type,omitempty" yaml:"type,omitempty"`
	Length  int      `xml:"length,attr,omitempty" json:"length,omitempty" yaml:"length,omitempty"`
	Columns []Column `xml:"column" json:"columns,omitempty" yaml:"columns,omitempty"`
}

// Collection maps set, bag, list and map elements. Which index element is
// populated depends on the collection kind.
type Collection struct {
	Name      string `xml:"name,attr" json:"name" yaml:"name"`
	Table     string `xml:"table,attr,omitempty" json:"table,omitempty" yaml:"table,omitempty"`
	Schema    string `xml:"schema,attr,omitempty" json:"schema,omitempty" yaml:"schema,omitempty"`
	Catalog   string `xml:"catalog,attr,omitempty" json:"catalog,omitempty" yaml:"catalog,omitempty"`
	Access    string `xml:"access,attr,omitempty" json:"access,omitempty" yaml:"access,omitempty"`
	Lazy      string `xml:"lazy,attr,omitempty" json:"lazy,omitempty" yaml:"lazy,omitempty"`
	Inverse   *bool  `xml:"inverse,attr" json:"inverse,omitempty" yaml:"inverse,omitempty"`
	Mutable   *bool  `xml:"mutable,attr" json:"mutable,omitempty" yaml:"mutable,omitempty"`
	Cascade   string `xml:"cascade,attr,omitempty" json:"cascade,omitempty" yaml:"cascade,omitempty"`
	OrderBy   string `xml:"order-by,attr,omitempty" json:"order_by,omitempty" yaml:"order_by,omitempty"`
	Where     string `xml:"where,attr,omitempty" json:"where,omitempty" yaml:"where,omitempty"`
	BatchSize int    `xml:"batch-size,attr,omitempty" json:"batch_size,omitempty" yaml:"batch_size,omitempty"`
	Fetch     string `xml:"fetch,attr,omitempty" json:"fetch,omitempty" yaml:"fetch,omitempty"`
	Sort      string `xml:"sort,attr,omitempty" json:"sort,omitempty" yaml:"sort,omitempty"`

	Meta             []Meta            `xml:"meta" json:"meta,omitempty" yaml:"meta,omitempty"`
	Cache            *Cache            `xml:"cache" json:"cache,omitempty" yaml:"cache,omitempty"`
	Key              *Key              `xml:"key" json:"key,omitempty" yaml:"key,omitempty"`
	Index            *Index            `xml:"index" json:"index,omitempty" yaml:"index,omitempty"`
	ListIndex        *ListIndex        `xml:"list-index" json:"list_index,omitempty" yaml:"list_index,omitempty"`
	MapKey           *Index            `xml:"map-key" json:"map_key,omitempty" yaml:"map_key,omitempty"`
	Element          *Element          `xml:"element" json:"element,omitempty" yaml:"element,omitempty"`
	OneToMany        *OneToMany        `xml:"one-to-many" json:"one_to_many,omitempty" yaml:"one_to_many,omitempty"`
	ManyToMany       *ManyToMany       `xml:"many-to-many" json:"many_to_many,omitempty" yaml:"many_to_many,omitempty"`
	CompositeElement *CompositeElement `xml:"composite-element" json:"composite_element,omitempty" yaml:"composite_element,omitempty"`
	Filters          []Filter          `xml:"filter" json:"filters,omitempty" yaml:"filters,omitempty"`
}

// Attributes is the shared body of classes, subclasses and components
type Attributes struct {
	Properties []Property   `xml:"property" json:"properties,omitempty" yaml:"properties,omitempty"`
	ManyToOnes []ManyToOne  `xml:"many-to-one" json:"many_to_ones,omitempty" yaml:"many_to_ones,omitempty"`
	OneToOnes  []OneToOne   `xml:"one-to-one" json:"one_to_ones,omitempty" yaml:"one_to_ones,omitempty"`
	Components []Component  `xml:"component" json:"components,omitempty" yaml:"components,omitempty"`
	Sets       []Collection `xml:"set" json:"sets,omitempty" yaml:"sets,omitempty"`
	Bags       []Collection `xml:"bag" json:"bags,omitempty" yaml:"bags,omitempty"`
	Lists      []Collection `xml:"list" json:"lists,omitempty" yaml:"lists,omitempty"`
	Maps       []Collection `xml:"map" json:"maps,omitempty" yaml:"maps,omitempty"`
}

// EntityAttributes are the XML attributes shared by classes and subclasses
type EntityAttributes struct {
	Name               string `xml:"name,attr,omitempty" json:"name,omitempty" yaml:"name,omitempty"`
	EntityName         string `xml:"entity-name,attr,omitempty" json:"entity_name,omitempty" yaml:"entity_name,omitempty"`
	Proxy              string `xml:"proxy,attr,omitempty" json:"proxy,omitempty" yaml:"proxy,omitempty"`
	DiscriminatorValue string `xml:"discriminator-value,attr,omitempty" json:"discriminator_value,omitempty" yaml:"discriminator_value,omitempty"`
	Lazy               *bool  `xml:"lazy,attr" json:"lazy,omitempty" yaml:"lazy,omitempty"`
	Abstract           *bool  `xml:"abstract,attr" json:"abstract,omitempty" yaml:"abstract,omitempty"`
	DynamicUpdate      *bool  `xml:"dynamic-update,attr" json:"dynamic_update,omitempty" yaml:"dynamic_update,omitempty"`
	DynamicInsert      *bool  `xml:"dynamic-insert,attr" json:"dynamic_insert,omitempty" yaml:"dynamic_insert,omitempty"`
	BatchSize          int    `xml:"batch-size,attr,omitempty" json:"batch_size,omitempty" yaml:"batch_size,omitempty"`
	SelectBeforeUpdate *bool  `xml:"select-before-update,attr" json:"select_before_update,omitempty" yaml:"select_before_update,omitempty"`
	Persister          string `xml:"persister,attr,omitempty" json:"persister,omitempty" yaml:"persister,omitempty"`
}

// Class maps a root entity
type Class struct {
	EntityAttributes `yaml:",inline"`

	Table          string `xml:"table,attr,omitempty" json:"table,omitempty" yaml:"table,omitempty"`
	Schema         string `xml:"schema,attr,omitempty" json:"schema,omitempty" yaml:"schema,omitempty"`
	Catalog        string `xml:"catalog,attr,omitempty" json:"catalog,omitempty" yaml:"catalog,omitempty"`
	Mutable        *bool  `xml:"mutable,attr" json:"mutable,omitempty" yaml:"mutable,omitempty"`
	Polymorphism   string `xml:"polymorphism,attr,omitempty" json:"polymorphism,omitempty" yaml:"polymorphism,omitempty"`
	Where          string `xml:"where,attr,omitempty" json:"where,omitempty" yaml:"where,omitempty"`
	OptimisticLock string `xml:"optimistic-lock,attr,omitempty" json:"optimistic_lock,omitempty" yaml:"optimistic_lock,omitempty"`
	Check          string `xml:"check,attr,omitempty" json:"check,omitempty" yaml:"check,omitempty"`
	RowID          string `xml:"rowid,attr,omitempty" json:"rowid,omitempty" yaml:"rowid,omitempty"`

	Meta          []Meta         `xml:"meta" json:"meta,omitempty" yaml:"meta,omitempty"`
	Comment       string         `xml:"comment,omitempty" json:"comment,omitempty" yaml:"comment,omitempty"`
	Cache         *Cache         `xml:"cache" json:"cache,omitempty" yaml:"cache,omitempty"`
	ID            *ID            `xml:"id" json:"id,omitempty" yaml:"id,omitempty"`
	CompositeID   *CompositeID   `xml:"composite-id" json:"composite_id,omitempty" yaml:"composite_id,omitempty"`
	Discriminator *Discriminator `xml:"discriminator" json:"discriminator,omitempty" yaml:"discriminator,omitempty"`
	NaturalID     *NaturalID     `xml:"natural-id" json:"natural_id,omitempty" yaml:"natural_id,omitempty"`
	Version       *Version       `xml:"version" json:"version,omitempty" yaml:"version,omitempty"`
	Timestamp     *Timestamp     `xml:"timestamp" json:"timestamp,omitempty" yaml:"timestamp,omitempty"`

	Attributes `yaml:",inline"`

	Subclasses       []Subclass       `xml:"subclass" json:"subclasses,omitempty" yaml:"subclasses,omitempty"`
	JoinedSubclasses []JoinedSubclass `xml:"joined-subclass" json:"joined_subclasses,omitempty" yaml:"joined_subclasses,omitempty"`
	UnionSubclasses  []UnionSubclass  `xml:"union-subclass" json:"union_subclasses,omitempty" yaml:"union_subclasses,omitempty"`
	Filters          []Filter         `xml:"filter" json:"filters,omitempty" yaml:"filters,omitempty"`
}

// Subclass maps a subclass sharing its parent's table (table per hierarchy)
type Subclass struct {
	EntityAttributes `yaml:",inline"`

	Extends string `xml:"extends,attr,omitempty" json:"extends,omitempty" yaml:"extends,omitempty"`
	Meta    []Meta `xml:"meta" json:"meta,omitempty" yaml:"meta,omitempty"`

	Attributes `yaml:",inline"`

	Subclasses []Subclass `xml:"subclass" json:"subclasses,omitempty" yaml:"subclasses,omitempty"`
}

// JoinedSubclass maps a subclass stored in its own table joined by key
type JoinedSubclass struct {
	EntityAttributes `yaml:",inline"`

	Extends string `xml:"extends,attr,omitempty" json:"extends,omitempty" yaml:"extends,omitempty"`
	Table   string `xml:"table,attr,omitempty" json:"table,omitempty" yaml:"table,omitempty"`
	Schema  string `xml:"schema,attr,omitempty" json:"schema,omitempty" yaml:"schema,omitempty"`
	Catalog string `xml:"catalog,attr,omitempty" json:"catalog,omitempty" yaml:"catalog,omitempty"`
	Check   string `xml:"check,attr,omitempty" json:"check,omitempty" yaml:"check,omitempty"`
	Meta    []Meta `xml:"meta" json:"meta,omitempty" yaml:"meta,omitempty"`
	Comment string `xml:"comment,omitempty" json:"comment,omitempty" yaml:"comment,omitempty"`
	Key     *Key   `xml:"key" json:"key,omitempty" yaml:"key,omitempty"`

	Attributes `yaml:",inline"`

	JoinedSubclasses []JoinedSubclass `xml:"joined-subclass" json:"joined_subclasses,omitempty" yaml:"joined_subclasses,omitempty"`
}

// UnionSubclass maps a subclass stored in its own table (table per concrete class)
type UnionSubclass struct {
	EntityAttributes `yaml:",inline"`

	Extends string `xml:"extends,attr,omitempty" json:"extends,omitempty" yaml:"extends,omitempty"`
	Table   string `xml:"table,attr,omitempty" json:"table,omitempty" yaml:"table,omitempty"`
	Schema  string `xml:"schema,attr,omitempty" json:"schema,omitempty" yaml:"schema,omitempty"`
	Catalog string `xml:"catalog,attr,omitempty" json:"catalog,omitempty" yaml:"catalog,omitempty"`
	Check   string `xml:"check,attr,omitempty" json:"check,omitempty" yaml:"check,omitempty"`
	Meta    []Meta `xml:"meta" json:"meta,omitempty" yaml:"meta,omitempty"`
	Comment string `xml:"comment,omitempty" json:"comment,omitempty" yaml:"comment,omitempty"`

	Attributes `yaml:",inline"`

	UnionSubclasses []UnionSubclass `xml:"union-subclass" json:"union_subclasses,omitempty" yaml:"union_subclasses,omitempty"`
}

// QueryParam declares a typed parameter of a named query
type QueryParam struct {
	Name string `xml:"name,attr" json:"name" yaml:"name"`
	Type string `xml:"type,attr" json:"type" yaml:"type"`
}

// QueryAttributes are the XML attributes shared by query and sql-query
type QueryAttributes struct {
	Name        string `xml:"name,attr" json:"name" yaml:"name"`
	FlushMode   string `xml:"flush-mode,attr,omitempty" json:"flush_mode,omitempty" yaml:"flush_mode,omitempty"`
	Cacheable   *bool  `xml:"cacheable,attr" json:"cacheable,omitempty" yaml:"cacheable,omitempty"`
	CacheRegion string `xml:"cache-region,attr,omitempty" json:"cache_region,omitempty" yaml:"cache_region,omitempty"`
	FetchSize   int    `xml:"fetch-size,attr,omitempty" json:"fetch_size,omitempty" yaml:"fetch_size,omitempty"`
	Timeout     int    `xml:"timeout,attr,omitempty" json:"timeout,omitempty" yaml:"timeout,omitempty"`
	ReadOnly    *bool  `xml:"read-only,attr" json:"read_only,omitempty" yaml:"read_only,omitempty"`
	Comment     string `xml:"comment,attr,omitempty" json:"comment,omitempty" yaml:"comment,omitempty"`
}

// Query is a named HQL query
type Query struct {
	QueryAttributes `yaml:",inline"`

	Params []QueryParam `xml:"query-param" json:"params,omitempty" yaml:"params,omitempty"`
	Text   string       `xml:",chardata" json:"text" yaml:"text"`
}

// SQLReturn maps the entity produced by a native query
type SQLReturn struct {
	Alias      string `xml:"alias,attr,omitempty" json:"alias,omitempty" yaml:"alias,omitempty"`
	Class      string `xml:"class,attr,omitempty" json:"class,omitempty" yaml:"class,omitempty"`
	EntityName string `xml:"entity-name,attr,omitempty" json:"entity_name,omitempty" yaml:"entity_name,omitempty"`
}

// SQLReturnScalar maps a scalar column produced by a native query
type SQLReturnScalar struct {
	Column string `xml:"column,attr" json:"column" yaml:"column"`
	Type   string `xml:"type,attr,omitempty" json:"type,omitempty" yaml:"type,omitempty"`
}

// Synchronize names a table a native query depends on
type Synchronize struct {
	Table string `xml:"table,attr" json:"table" yaml:"table"`
}

// SQLQuery is a named native SQL query
type SQLQuery struct {
	QueryAttributes `yaml:",inline"`

	Callable      *bool             `xml:"callable,attr" json:"callable,omitempty" yaml:"callable,omitempty"`
	ResultSetRef  string            `xml:"resultset-ref,attr,omitempty" json:"resultset_ref,omitempty" yaml:"resultset_ref,omitempty"`
	Returns       []SQLReturn       `xml:"return" json:"returns,omitempty" yaml:"returns,omitempty"`
	ReturnScalars []SQLReturnScalar `xml:"return-scalar" json:"return_scalars,omitempty" yaml:"return_scalars,omitempty"`
	Synchronize   []Synchronize     `xml:"synchronize" json:"synchronize,omitempty" yaml:"synchronize,omitempty"`
	Params        []QueryParam      `xml:"query-param" json:"params,omitempty" yaml:"params,omitempty"`
	Text          string            `xml:",chardata" json:"text" yaml:"text"`
}
