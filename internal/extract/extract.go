// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdkit Authors

// Package extract converts loaded schema documents into the ordered
// schema specifications the generator consumes. Each $defs entry
// becomes one SchemaSpec; a document root that declares properties
// becomes a trailing SchemaSpec named from the document title or file
// stem.
package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/e28099005-del/Godot-Develop-Tool-Kit/internal/model"
	"github.com/e28099005-del/Godot-Develop-Tool-Kit/internal/schemadoc"
)

// Schemas extracts all schema specifications from a document, in
// document order. It fails if the document's schema reference graph is
// cyclic: recursive decode in the generated classes would not
// terminate, so acyclicity is enforced here rather than silently
// supported.
func Schemas(doc *schemadoc.Document) ([]model.SchemaSpec, error) {
	var specs []model.SchemaSpec

	for _, defName := range defOrder(doc) {
		def := doc.Schema.Defs[defName]
		if def == nil {
			continue
		}
		spec := schemaSpec(defName, def, doc.KeyOrder, "$defs."+defName+".properties")
		specs = append(specs, spec)
	}

	if len(doc.Schema.Properties) > 0 {
		name := doc.Schema.Title
		if name == "" {
			name = toPascalCase(doc.Name)
		}
		specs = append(specs, schemaSpec(name, doc.Schema, doc.KeyOrder, "properties"))
	}

	if err := checkCycles(specs); err != nil {
		return nil, err
	}

	return specs, nil
}

// defOrder returns $defs names in document order, falling back to the
// schema model's map order only when the raw order is unavailable.
func defOrder(doc *schemadoc.Document) []string {
	if order, ok := doc.KeyOrder["$defs"]; ok {
		result := make([]string, 0, len(order))
		for _, name := range order {
			if _, exists := doc.Schema.Defs[name]; exists {
				result = append(result, name)
			}
		}
		return result
	}
	names := make([]string, 0, len(doc.Schema.Defs))
	for name := range doc.Schema.Defs {
		names = append(names, name)
	}
	return names
}

func schemaSpec(name string, s *jsonschema.Schema, keyOrder map[string][]string, orderPath string) model.SchemaSpec {
	required := make(map[string]bool, len(s.Required))
	for _, r := range s.Required {
		required[r] = true
	}

	propNames := orderedProps(s, keyOrder, orderPath)
	fields := make([]model.FieldSpec, 0, len(propNames))
	for _, propName := range propNames {
		prop := s.Properties[propName]
		fields = append(fields, model.FieldSpec{
			Name:     propName,
			Type:     typeDescriptor(prop),
			Required: required[propName],
			Default:  defaultValue(prop),
		})
	}

	return model.SchemaSpec{Name: name, Fields: fields}
}

func orderedProps(s *jsonschema.Schema, keyOrder map[string][]string, orderPath string) []string {
	if order, ok := keyOrder[orderPath]; ok {
		result := make([]string, 0, len(order))
		for _, key := range order {
			if _, exists := s.Properties[key]; exists {
				result = append(result, key)
			}
		}
		return result
	}
	keys := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		keys = append(keys, name)
	}
	return keys
}

// typeDescriptor maps a property schema to a type descriptor. The
// mapping is total: shapes the descriptor union cannot express (inline
// objects, unions beyond optionality) degrade to untyped primitives
// that the resolver renders as Dictionary or Variant.
func typeDescriptor(s *jsonschema.Schema) model.TypeDescriptor {
	if s == nil {
		return model.Primitive("")
	}

	if s.Ref != "" {
		return model.Reference(refName(s.Ref))
	}

	// Optional[T] pydantic-style: anyOf of the inner type and null.
	if len(s.AnyOf) > 0 {
		var inner *jsonschema.Schema
		sawNull := false
		for _, sub := range s.AnyOf {
			if sub != nil && sub.Type == "null" {
				sawNull = true
				continue
			}
			if inner == nil {
				inner = sub
			}
		}
		if sawNull {
			if inner == nil {
				return model.Primitive("")
			}
			return model.Nullable(typeDescriptor(inner))
		}
		return model.Primitive("")
	}

	switch s.Type {
	case "string":
		return model.Primitive(model.KindString)
	case "integer":
		return model.Primitive(model.KindInt)
	case "number":
		return model.Primitive(model.KindFloat)
	case "boolean":
		return model.Primitive(model.KindBool)
	case "array":
		if s.Items == nil {
			return model.Primitive(model.KindList)
		}
		return model.ListOf(typeDescriptor(s.Items))
	case "object":
		// The descriptor union has no inline object shape; typed
		// nesting requires a $defs entry.
		return model.Primitive(model.KindMap)
	}

	if len(s.Properties) > 0 {
		return model.Primitive(model.KindMap)
	}
	return model.Primitive(model.PrimitiveKind(s.Type))
}

// refName extracts the schema name from a $ref string. Supports $defs,
// definitions, and components/schemas forms.
func refName(ref string) string {
	path := strings.TrimPrefix(ref, "#/")
	switch {
	case strings.HasPrefix(path, "$defs/"):
		return strings.TrimPrefix(path, "$defs/")
	case strings.HasPrefix(path, "definitions/"):
		return strings.TrimPrefix(path, "definitions/")
	case strings.HasPrefix(path, "components/schemas/"):
		return strings.TrimPrefix(path, "components/schemas/")
	}
	return ref
}

// defaultValue captures a property's default as a tagged value. List
// and map defaults lose their contents: only empty collection defaults
// round-trip through generation. Shapes outside the tag set behave as
// if no default was declared.
func defaultValue(s *jsonschema.Schema) model.DefaultValue {
	if s == nil || len(s.Default) == 0 {
		return model.DefaultValue{}
	}

	raw := bytes.TrimSpace(s.Default)
	if len(raw) == 0 {
		return model.DefaultValue{}
	}

	switch raw[0] {
	case 'n':
		if string(raw) == "null" {
			return model.DefaultValue{Kind: model.DefaultNull}
		}
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(raw, &b); err == nil {
			return model.DefaultValue{Kind: model.DefaultBool, Bool: b}
		}
	case '"':
		var str string
		if err := json.Unmarshal(raw, &str); err == nil {
			return model.DefaultValue{Kind: model.DefaultString, String: str}
		}
	case '[':
		return model.DefaultValue{Kind: model.DefaultEmptyList}
	case '{':
		return model.DefaultValue{Kind: model.DefaultEmptyMap}
	default:
		var num json.Number
		if err := json.Unmarshal(raw, &num); err == nil {
			return model.DefaultValue{Kind: model.DefaultNumber, Number: num.String()}
		}
	}

	return model.DefaultValue{}
}

// checkCycles rejects cyclic schema reference graphs within one
// document. References to schemas outside the document are fine: the
// naming convention resolves them at generated-code runtime.
func checkCycles(specs []model.SchemaSpec) error {
	graph := make(map[string][]string, len(specs))
	for _, spec := range specs {
		var refs []string
		for _, f := range spec.Fields {
			collectRefs(f.Type, &refs)
		}
		graph[spec.Name] = refs
	}

	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[string]int, len(graph))

	var visit func(name string, trail []string) error
	visit = func(name string, trail []string) error {
		switch state[name] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("cyclic schema reference: %s", strings.Join(append(trail, name), " -> "))
		}
		state[name] = visiting
		for _, ref := range graph[name] {
			if _, known := graph[ref]; !known {
				continue
			}
			if err := visit(ref, append(trail, name)); err != nil {
				return err
			}
		}
		state[name] = done
		return nil
	}

	for _, spec := range specs {
		if err := visit(spec.Name, nil); err != nil {
			return err
		}
	}
	return nil
}

func collectRefs(t model.TypeDescriptor, refs *[]string) {
	switch t.Shape {
	case model.ShapeReference:
		*refs = append(*refs, t.Ref)
	case model.ShapeList, model.ShapeNullable:
		if t.Elem != nil {
			collectRefs(*t.Elem, refs)
		}
	}
}

// toPascalCase converts a snake_case or kebab-case file stem to
// PascalCase for naming a root schema.
func toPascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-'
	})
	var sb strings.Builder
	for _, part := range parts {
		if part != "" {
			sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
		}
	}
	return sb.String()
}
