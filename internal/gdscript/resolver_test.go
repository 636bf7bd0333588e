// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdkit Authors

package gdscript

import (
	"testing"

	"github.com/e28099005-del/Godot-Develop-Tool-Kit/internal/model"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		in   model.TypeDescriptor
		want string
	}{
		{"int", model.Primitive(model.KindInt), "int"},
		{"float", model.Primitive(model.KindFloat), "float"},
		{"string", model.Primitive(model.KindString), "String"},
		{"bool", model.Primitive(model.KindBool), "bool"},
		{"untyped map", model.Primitive(model.KindMap), "Dictionary"},
		{"untyped list", model.Primitive(model.KindList), "Array"},
		{"list of string", model.ListOf(model.Primitive(model.KindString)), "Array[String]"},
		{"list of list of int", model.ListOf(model.ListOf(model.Primitive(model.KindInt))), "Array[Array[int]]"},
		{"schema reference", model.Reference("Weapon"), "WeaponData"},
		{"list of reference", model.ListOf(model.Reference("Ammo")), "Array[AmmoData]"},
		{"nullable discards inner", model.Nullable(model.Primitive(model.KindInt)), "Variant"},
		{"nullable reference", model.Nullable(model.Reference("Weapon")), "Variant"},
		{"unknown primitive kind", model.Primitive("decimal128"), "Variant"},
		{"zero descriptor", model.TypeDescriptor{}, "Variant"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.in)
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
			if got == "" {
				t.Error("Resolve() must never return an empty type name")
			}
		})
	}
}

func TestResolve_ListOfUnknownKind(t *testing.T) {
	// Totality extends through recursion: unknown element kinds degrade
	// without failing.
	got := Resolve(model.ListOf(model.Primitive("vec3")))
	if got != "Array[Variant]" {
		t.Errorf("Resolve() = %q, want %q", got, "Array[Variant]")
	}
}
