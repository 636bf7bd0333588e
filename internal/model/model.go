// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdkit Authors

// Package model defines the schema metamodel consumed by the GDScript
// generator: typed field descriptors, schema specifications, and the
// generated-class result type.
package model

import "strings"

// PrimitiveKind identifies a primitive field type. Unknown kinds are
// permitted; the resolver degrades them to Variant.
type PrimitiveKind string

// Known primitive kinds.
const (
	KindInt    PrimitiveKind = "int"
	KindFloat  PrimitiveKind = "float"
	KindString PrimitiveKind = "string"
	KindBool   PrimitiveKind = "bool"
	KindMap    PrimitiveKind = "map"
	KindList   PrimitiveKind = "list"
)

// TypeShape is the tag of a TypeDescriptor.
type TypeShape int

// TypeDescriptor shapes.
const (
	ShapePrimitive TypeShape = iota
	ShapeList
	ShapeNullable
	ShapeReference
)

// TypeDescriptor is the structural representation of a field's type.
// It is a tagged union: exactly the fields relevant to Shape are set.
// The descriptor tree must be finite and acyclic through references;
// that is a constructor-side invariant, not something consumers check.
type TypeDescriptor struct {
	Shape     TypeShape
	Primitive PrimitiveKind   // ShapePrimitive
	Elem      *TypeDescriptor // ShapeList, ShapeNullable
	Ref       string          // ShapeReference: the referenced schema name
}

// Primitive returns a primitive type descriptor.
func Primitive(kind PrimitiveKind) TypeDescriptor {
	return TypeDescriptor{Shape: ShapePrimitive, Primitive: kind}
}

// ListOf returns a typed-list descriptor wrapping elem.
func ListOf(elem TypeDescriptor) TypeDescriptor {
	return TypeDescriptor{Shape: ShapeList, Elem: &elem}
}

// Nullable returns a nullable descriptor wrapping elem.
func Nullable(elem TypeDescriptor) TypeDescriptor {
	return TypeDescriptor{Shape: ShapeNullable, Elem: &elem}
}

// Reference returns a descriptor referencing another schema by name.
func Reference(name string) TypeDescriptor {
	return TypeDescriptor{Shape: ShapeReference, Ref: name}
}

// IsListOfReference reports whether t is a list whose element type
// references another schema. The generator decodes such fields
// element-by-element.
func (t TypeDescriptor) IsListOfReference() bool {
	return t.Shape == ShapeList && t.Elem != nil && t.Elem.Shape == ShapeReference
}

// IsCollection reports whether t decodes through the generic-collection
// path: a typed list without a schema reference element, or an untyped
// map or list primitive.
func (t TypeDescriptor) IsCollection() bool {
	if t.Shape == ShapeList {
		return true
	}
	return t.Shape == ShapePrimitive && (t.Primitive == KindMap || t.Primitive == KindList)
}

// DefaultKind is the tag of a DefaultValue.
type DefaultKind int

// DefaultValue kinds.
const (
	DefaultNone DefaultKind = iota
	DefaultNull
	DefaultBool
	DefaultNumber
	DefaultString
	DefaultEmptyList
	DefaultEmptyMap
)

// DefaultValue is a field's declaration-time default, as a tagged value
// rather than an untyped any. Numbers carry their verbatim source text
// so 3.14 and 10 render exactly as written. List and map defaults carry
// no contents: only empty collection defaults survive generation.
type DefaultValue struct {
	Kind   DefaultKind
	Bool   bool   // DefaultBool
	Number string // DefaultNumber, verbatim
	String string // DefaultString, unescaped
}

// FieldSpec is one typed field within a schema.
type FieldSpec struct {
	Name     string
	Type     TypeDescriptor
	Required bool
	Default  DefaultValue
}

// SchemaSpec is a named, ordered set of field declarations. Field order
// is significant: it determines declaration and serialization order.
// SchemaSpec values are constructed once by the extractor and treated
// as immutable thereafter.
type SchemaSpec struct {
	Name   string
	Fields []FieldSpec
}

// HasID reports whether the schema declares a field literally named
// "id". Only such schemas receive a lookup helper.
func (s SchemaSpec) HasID() bool {
	for _, f := range s.Fields {
		if f.Name == "id" {
			return true
		}
	}
	return false
}

// ClassName returns the generated class name for the schema.
func (s SchemaSpec) ClassName() string {
	return s.Name + ClassSuffix
}

// Collection returns the derived storage collection name
// (lower-cased, pluralized schema name), e.g. Weapon -> weapons.
func (s SchemaSpec) Collection() string {
	return strings.ToLower(s.Name) + "s"
}

// ClassSuffix is appended to every schema name to form its generated
// class name. The convention lets generated classes reference one
// another without any particular generation order.
const ClassSuffix = "Data"

// GeneratedClass is the result of generating one schema: the derived
// names plus the full source text. It is a pure function of the
// SchemaSpec it was generated from.
type GeneratedClass struct {
	SchemaName string
	ClassName  string
	Collection string
	FileName   string // target-relative, e.g. "weapon_data.gd"
	Source     string
}
