// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdkit Authors

package gdscript

import (
	"strings"

	"github.com/e28099005-del/Godot-Develop-Tool-Kit/internal/model"
)

// Header is emitted at the top of every generated file.
const Header = "# GENERATED CODE - DO NOT MODIFY BY HAND"

// Generate emits the GDScript class for a schema: field declarations,
// from_dict/to_dict conversion, and, for schemas with an id field, a
// get_by_id lookup helper bound to the schema's collection name.
//
// Generate is a pure function of its input and never fails on a
// structurally well-formed SchemaSpec. A malformed descriptor (a list
// shape with no element type) is a caller precondition violation and
// panics rather than producing silently wrong output. The schema
// reference graph must be acyclic; the extractor enforces that.
func Generate(spec model.SchemaSpec) model.GeneratedClass {
	className := spec.ClassName()
	collection := spec.Collection()

	var sb strings.Builder
	sb.WriteString(Header + "\n")
	sb.WriteString("class_name " + className + "\n")
	sb.WriteString("extends RefCounted\n")
	sb.WriteString("\n")
	sb.WriteString("const TABLE_NAME = " + quote(collection) + "\n")
	sb.WriteString("\n")

	writeFieldDecls(&sb, spec)
	sb.WriteString("\n")
	writeFromDict(&sb, spec, className)
	sb.WriteString("\n")
	writeToDict(&sb, spec)

	if spec.HasID() {
		sb.WriteString("\n")
		writeGetByID(&sb, className)
	}

	return model.GeneratedClass{
		SchemaName: spec.Name,
		ClassName:  className,
		Collection: collection,
		FileName:   fileName(className),
		Source:     sb.String(),
	}
}

// writeFieldDecls emits one var declaration per field, in declaration
// order, with the resolved type and default literal.
func writeFieldDecls(sb *strings.Builder, spec model.SchemaSpec) {
	for _, f := range spec.Fields {
		sb.WriteString("var " + f.Name + ": " + Resolve(f.Type))
		if lit := DefaultLiteral(f); lit != "" {
			sb.WriteString(" = " + lit)
		}
		sb.WriteString("\n")
	}
}

// writeFromDict emits the static decode operation. Each field is read
// only when its key is present; a missing key leaves the field at its
// declaration-time default. Values holding schema references accept
// either structured data or an embedded JSON string, which is parsed
// before recursive decoding.
func writeFromDict(sb *strings.Builder, spec model.SchemaSpec, className string) {
	sb.WriteString("static func from_dict(data: Dictionary) -> " + className + ":\n")
	sb.WriteString("\tvar instance = " + className + ".new()\n")

	for _, f := range spec.Fields {
		access := "data['" + f.Name + "']"

		switch {
		case f.Type.IsListOfReference():
			inner := f.Type.Elem.Ref + model.ClassSuffix
			sb.WriteString("\tif data.has('" + f.Name + "'):\n")
			sb.WriteString("\t\tvar raw = " + access + "\n")
			sb.WriteString("\t\tif raw is String: raw = JSON.parse_string(raw)\n")
			sb.WriteString("\t\tif raw is Array:\n")
			sb.WriteString("\t\t\tinstance." + f.Name + " = []\n")
			sb.WriteString("\t\t\tfor item in raw:\n")
			sb.WriteString("\t\t\t\tinstance." + f.Name + ".append(" + inner + ".from_dict(item))\n")

		case f.Type.Shape == model.ShapeReference:
			inner := f.Type.Ref + model.ClassSuffix
			sb.WriteString("\tif data.has('" + f.Name + "'):\n")
			sb.WriteString("\t\tvar raw = " + access + "\n")
			sb.WriteString("\t\tif raw is String: raw = JSON.parse_string(raw)\n")
			sb.WriteString("\t\tinstance." + f.Name + " = " + inner + ".from_dict(raw)\n")

		case f.Type.IsCollection():
			sb.WriteString("\tif data.has('" + f.Name + "'):\n")
			sb.WriteString("\t\tvar raw = " + access + "\n")
			sb.WriteString("\t\tif raw is String: instance." + f.Name + " = JSON.parse_string(raw)\n")
			sb.WriteString("\t\telse: instance." + f.Name + " = raw\n")

		default:
			sb.WriteString("\tif data.has('" + f.Name + "'): instance." + f.Name + " = " + access + "\n")
		}
	}

	sb.WriteString("\treturn instance\n")
}

// writeToDict emits the encode operation, mirroring from_dict. Schema
// reference fields expand to recursively encoded dictionaries and are
// omitted when null; every other field is copied by direct reference.
// The returned dictionary is not a defensive copy.
func writeToDict(sb *strings.Builder, spec model.SchemaSpec) {
	sb.WriteString("func to_dict() -> Dictionary:\n")
	sb.WriteString("\tvar data = {}\n")

	for _, f := range spec.Fields {
		switch {
		case f.Type.IsListOfReference():
			sb.WriteString("\tif " + f.Name + " != null:\n")
			sb.WriteString("\t\tdata['" + f.Name + "'] = []\n")
			sb.WriteString("\t\tfor item in " + f.Name + ":\n")
			sb.WriteString("\t\t\tdata['" + f.Name + "'].append(item.to_dict())\n")

		case f.Type.Shape == model.ShapeReference:
			sb.WriteString("\tif " + f.Name + " != null:\n")
			sb.WriteString("\t\tdata['" + f.Name + "'] = " + f.Name + ".to_dict()\n")

		default:
			sb.WriteString("\tdata['" + f.Name + "'] = " + f.Name + "\n")
		}
	}

	sb.WriteString("\treturn data\n")
}

// writeGetByID emits the SQLite lookup helper. The storage handle is
// the godot-sqlite addon; a zero-row result is signaled as null, not an
// error.
func writeGetByID(sb *strings.Builder, className string) {
	sb.WriteString("# SQLite Helper\n")
	sb.WriteString("static func get_by_id(db: SQLite, id: String) -> " + className + ":\n")
	sb.WriteString("\tvar result = db.select_rows(TABLE_NAME, \"id = '\" + id + \"'\", [\"*\"])\n")
	sb.WriteString("\tif result.is_empty(): return null\n")
	sb.WriteString("\treturn from_dict(result[0])\n")
}

// fileName derives the target file name from a class name following
// the Godot one-class-per-file convention: WeaponData -> weapon_data.gd.
// Uppercase runs stay together, so NPCData -> npc_data.gd.
func fileName(className string) string {
	rs := []rune(className)
	var sb strings.Builder
	for i, r := range rs {
		if !isUpper(r) {
			sb.WriteRune(r)
			continue
		}
		if i > 0 {
			runEnd := isUpper(rs[i-1]) && i+1 < len(rs) && !isUpper(rs[i+1])
			if !isUpper(rs[i-1]) || runEnd {
				sb.WriteByte('_')
			}
		}
		sb.WriteRune(r - 'A' + 'a')
	}
	return sb.String() + ".gd"
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
