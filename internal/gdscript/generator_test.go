// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdkit Authors

package gdscript

import (
	"strings"
	"testing"

	"github.com/e28099005-del/Godot-Develop-Tool-Kit/internal/model"
)

func weaponSpec() model.SchemaSpec {
	return model.SchemaSpec{
		Name: "Weapon",
		Fields: []model.FieldSpec{
			{Name: "id", Type: model.Primitive(model.KindString), Required: true},
			{Name: "damage", Type: model.Primitive(model.KindInt), Default: model.DefaultValue{Kind: model.DefaultNumber, Number: "10"}},
		},
	}
}

func TestGenerate_Weapon(t *testing.T) {
	got := Generate(weaponSpec())

	if got.ClassName != "WeaponData" {
		t.Errorf("ClassName = %q, want %q", got.ClassName, "WeaponData")
	}
	if got.Collection != "weapons" {
		t.Errorf("Collection = %q, want %q", got.Collection, "weapons")
	}
	if got.FileName != "weapon_data.gd" {
		t.Errorf("FileName = %q, want %q", got.FileName, "weapon_data.gd")
	}

	wantCode := []string{
		"# GENERATED CODE - DO NOT MODIFY BY HAND",
		"class_name WeaponData",
		"extends RefCounted",
		`const TABLE_NAME = "weapons"`,
		"var id: String",
		"var damage: int = 10",
		"static func from_dict(data: Dictionary) -> WeaponData:",
		"var instance = WeaponData.new()",
		"if data.has('id'): instance.id = data['id']",
		"if data.has('damage'): instance.damage = data['damage']",
		"func to_dict() -> Dictionary:",
		"data['id'] = id",
		"data['damage'] = damage",
		"# SQLite Helper",
		"static func get_by_id(db: SQLite, id: String) -> WeaponData:",
		`var result = db.select_rows(TABLE_NAME, "id = '" + id + "'", ["*"])`,
		"if result.is_empty(): return null",
		"return from_dict(result[0])",
	}
	for _, want := range wantCode {
		if !strings.Contains(got.Source, want) {
			t.Errorf("Generate() missing expected code snippet:\nwant: %q\ngot:\n%s", want, got.Source)
		}
	}
}

func TestGenerate_FieldOrderPreserved(t *testing.T) {
	spec := model.SchemaSpec{
		Name: "Item",
		Fields: []model.FieldSpec{
			{Name: "zeta", Type: model.Primitive(model.KindString)},
			{Name: "alpha", Type: model.Primitive(model.KindInt)},
			{Name: "mid", Type: model.Primitive(model.KindBool)},
		},
	}
	got := Generate(spec).Source

	zeta := strings.Index(got, "var zeta:")
	alpha := strings.Index(got, "var alpha:")
	mid := strings.Index(got, "var mid:")
	if zeta < 0 || alpha < 0 || mid < 0 {
		t.Fatalf("missing declarations in output:\n%s", got)
	}
	if !(zeta < alpha && alpha < mid) {
		t.Errorf("declarations out of order: zeta=%d alpha=%d mid=%d", zeta, alpha, mid)
	}
}

func TestGenerate_ListOfReferenceDecode(t *testing.T) {
	spec := model.SchemaSpec{
		Name: "Magazine",
		Fields: []model.FieldSpec{
			{Name: "rounds", Type: model.ListOf(model.Reference("Ammo"))},
		},
	}
	got := Generate(spec).Source

	// The decode branch must parse textually-encoded arrays before
	// iterating: {"rounds": "[{\"id\":\"a1\"}]"} is valid input.
	wantCode := []string{
		"if data.has('rounds'):",
		"var raw = data['rounds']",
		"if raw is String: raw = JSON.parse_string(raw)",
		"if raw is Array:",
		"instance.rounds = []",
		"for item in raw:",
		"instance.rounds.append(AmmoData.from_dict(item))",
	}
	for _, want := range wantCode {
		if !strings.Contains(got, want) {
			t.Errorf("Generate() missing list-of-reference decode snippet:\nwant: %q\ngot:\n%s", want, got)
		}
	}

	// Encode side: expand to recursively encoded maps, skip when null.
	wantEncode := []string{
		"if rounds != null:",
		"data['rounds'] = []",
		"for item in rounds:",
		"data['rounds'].append(item.to_dict())",
	}
	for _, want := range wantEncode {
		if !strings.Contains(got, want) {
			t.Errorf("Generate() missing list-of-reference encode snippet:\nwant: %q\ngot:\n%s", want, got)
		}
	}
}

func TestGenerate_SingularReference(t *testing.T) {
	spec := model.SchemaSpec{
		Name: "Player",
		Fields: []model.FieldSpec{
			{Name: "id", Type: model.Primitive(model.KindString), Required: true},
			{Name: "weapon", Type: model.Reference("Weapon")},
		},
	}
	got := Generate(spec).Source

	wantCode := []string{
		"var weapon: WeaponData",
		"if data.has('weapon'):",
		"var raw = data['weapon']",
		"if raw is String: raw = JSON.parse_string(raw)",
		"instance.weapon = WeaponData.from_dict(raw)",
		"if weapon != null:",
		"data['weapon'] = weapon.to_dict()",
	}
	for _, want := range wantCode {
		if !strings.Contains(got, want) {
			t.Errorf("Generate() missing reference snippet:\nwant: %q\ngot:\n%s", want, got)
		}
	}
}

func TestGenerate_GenericCollection(t *testing.T) {
	spec := model.SchemaSpec{
		Name: "Config",
		Fields: []model.FieldSpec{
			{Name: "tags", Type: model.ListOf(model.Primitive(model.KindString))},
			{Name: "meta", Type: model.Primitive(model.KindMap)},
			{Name: "extras", Type: model.Primitive(model.KindList)},
		},
	}
	got := Generate(spec).Source

	// All three decode through the text-or-structured path and encode by
	// direct copy.
	for _, name := range []string{"tags", "meta", "extras"} {
		for _, want := range []string{
			"if data.has('" + name + "'):",
			"if raw is String: instance." + name + " = JSON.parse_string(raw)",
			"else: instance." + name + " = raw",
			"data['" + name + "'] = " + name,
		} {
			if !strings.Contains(got, want) {
				t.Errorf("Generate() missing collection snippet for %s:\nwant: %q\ngot:\n%s", name, want, got)
			}
		}
	}
}

func TestGenerate_NullableDecodesAsPlainAssignment(t *testing.T) {
	spec := model.SchemaSpec{
		Name: "Npc",
		Fields: []model.FieldSpec{
			{Name: "mood", Type: model.Nullable(model.Primitive(model.KindString))},
		},
	}
	got := Generate(spec).Source

	if !strings.Contains(got, "var mood: Variant") {
		t.Errorf("nullable field should declare as Variant:\n%s", got)
	}
	if !strings.Contains(got, "if data.has('mood'): instance.mood = data['mood']") {
		t.Errorf("nullable field should decode by guarded plain assignment:\n%s", got)
	}
	if strings.Contains(got, "instance.mood = JSON.parse_string") {
		t.Errorf("nullable field must not take the collection parse path:\n%s", got)
	}
}

func TestGenerate_NoIDOmitsLookupHelper(t *testing.T) {
	spec := model.SchemaSpec{
		Name: "Settings",
		Fields: []model.FieldSpec{
			{Name: "volume", Type: model.Primitive(model.KindFloat)},
		},
	}
	got := Generate(spec).Source

	if strings.Contains(got, "get_by_id") {
		t.Errorf("schema without id field must not emit a lookup helper:\n%s", got)
	}
	if strings.Contains(got, "SQLite") {
		t.Errorf("schema without id field must not reference SQLite:\n%s", got)
	}
	// The table name constant is still emitted for callers that manage
	// persistence themselves.
	if !strings.Contains(got, `const TABLE_NAME = "settingss"`) {
		t.Errorf("collection name should be lowercased name + s:\n%s", got)
	}
}

// TestGenerate_EncodeDecodeMirror checks the round-trip law structurally
// for primitive-only schemas: every field read in from_dict under its
// key is written back under the same key in to_dict.
func TestGenerate_EncodeDecodeMirror(t *testing.T) {
	spec := model.SchemaSpec{
		Name: "Stats",
		Fields: []model.FieldSpec{
			{Name: "hp", Type: model.Primitive(model.KindInt), Required: true},
			{Name: "mana", Type: model.Primitive(model.KindFloat)},
			{Name: "alias", Type: model.Primitive(model.KindString)},
			{Name: "alive", Type: model.Primitive(model.KindBool)},
			{Name: "buffs", Type: model.ListOf(model.Primitive(model.KindString))},
			{Name: "meta", Type: model.Primitive(model.KindMap)},
		},
	}
	got := Generate(spec).Source

	for _, f := range spec.Fields {
		decode := "data.has('" + f.Name + "')"
		encode := "data['" + f.Name + "'] = " + f.Name
		if !strings.Contains(got, decode) {
			t.Errorf("from_dict does not read field %q", f.Name)
		}
		if !strings.Contains(got, encode) {
			t.Errorf("to_dict does not write field %q", f.Name)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	spec := weaponSpec()
	first := Generate(spec)
	second := Generate(spec)
	if first.Source != second.Source {
		t.Error("Generate() must be deterministic for identical input")
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"WeaponData", "weapon_data.gd"},
		{"AmmoData", "ammo_data.gd"},
		{"NPCData", "npc_data.gd"},
		{"HTTPRequestLogData", "http_request_log_data.gd"},
		{"PlayerV2Data", "player_v2_data.gd"},
		{"Data", "data.gd"},
	}
	for _, tt := range tests {
		if got := fileName(tt.in); got != tt.want {
			t.Errorf("fileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
