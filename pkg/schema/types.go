/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package schema

// ModelID is a dotted model identity, e.g. "res.partner"
type ModelID string

type FieldName string

type Kind int

type FieldKind struct {
	Kind Kind
	// Selection: the allowed keys
	Options []string
	// Selection: options come from a method or a lambda and are known only at runtime
	OptionsDynamic bool
	// Many2one, One2many, Many2many
	Target ModelID
	// One2many
	Inverse FieldName
}

type SourceLocation struct {
	File string
	Line int
}

type FieldSpec struct {
	Name          FieldName
	Kind          FieldKind
	Label         string
	Required      bool
	Computed      bool
	ComputeMethod string
	Stored        bool
	// Related path, empty when the field is not related
	Related []FieldName
	// Options appended to the selection of an inherited field
	SelectionAdd []string
	DeclaredAt   SourceLocation
	// keyword arguments whose values could not be evaluated statically
	Unparsed []string
}

// ModelFragment is one class declaration contributing to a model
type ModelFragment struct {
	// Primary is the `_name`, empty for a pure extension
	Primary  ModelID
	Inherits []ModelID
	// Delegates is the `_inherits` mapping: parent model -> link field
	Delegates map[ModelID]FieldName
	Fields    []FieldSpec
	ClassName string
	Location  SourceLocation
	// Seq is the load order of the module the fragment comes from, dependencies first
	Seq int
}

type Origin int

type ModelDefinition struct {
	Identity ModelID
	Origin   Origin
	// direct parents: `_inherit` of a new model and `_inherits` delegation targets
	Parents []ModelID
	// merged own fields
	Fields     map[FieldName]*FieldSpec
	DeclaredAt SourceLocation
	Extensions []SourceLocation
}

type RawValueKind int

type RawValue struct {
	Kind RawValueKind
	Text string
}

type FieldEntry struct {
	Name  FieldName
	Value RawValue
	Line  int
}

// DataRecord is a single record of a data file
type DataRecord struct {
	ID       string
	Model    ModelID
	Fields   []FieldEntry
	Location SourceLocation
}
