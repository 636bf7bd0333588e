// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdkit Authors

// Package gdscript generates GDScript data classes from schema
// specifications: typed field declarations, Dictionary decode/encode,
// and an identifier lookup helper for schemas with an id field.
package gdscript

import (
	"github.com/e28099005-del/Godot-Develop-Tool-Kit/internal/model"
)

// Resolve maps a type descriptor to a GDScript type name. It is total:
// every descriptor, including one with an unrecognized primitive kind,
// yields a non-empty type name.
//
// Nullable types resolve to Variant irrespective of the inner type; the
// inner type is intentionally discarded, matching how an optional field
// may hold null at runtime.
func Resolve(t model.TypeDescriptor) string {
	switch t.Shape {
	case model.ShapeNullable:
		return "Variant"
	case model.ShapeList:
		return "Array[" + Resolve(*t.Elem) + "]"
	case model.ShapeReference:
		return t.Ref + model.ClassSuffix
	case model.ShapePrimitive:
		switch t.Primitive {
		case model.KindInt:
			return "int"
		case model.KindFloat:
			return "float"
		case model.KindString:
			return "String"
		case model.KindBool:
			return "bool"
		case model.KindMap:
			return "Dictionary"
		case model.KindList:
			return "Array"
		}
	}
	return "Variant"
}
