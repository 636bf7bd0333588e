// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdkit Authors

package gdscript

import (
	"strings"

	"github.com/e28099005-del/Godot-Develop-Tool-Kit/internal/model"
)

// DefaultLiteral renders a field's default value as GDScript literal
// text. Required fields and fields without a usable default yield the
// empty string. List and map defaults always render as empty literals;
// their contents, if any, do not survive generation.
func DefaultLiteral(f model.FieldSpec) string {
	if f.Required {
		return ""
	}

	switch f.Default.Kind {
	case model.DefaultNull:
		return "null"
	case model.DefaultBool:
		if f.Default.Bool {
			return "true"
		}
		return "false"
	case model.DefaultNumber:
		return f.Default.Number
	case model.DefaultString:
		return quote(f.Default.String)
	case model.DefaultEmptyList:
		return "[]"
	case model.DefaultEmptyMap:
		return "{}"
	}
	return ""
}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\t", `\t`,
	"\r", `\r`,
)

// quote wraps s in a double-quoted GDScript string literal, escaping
// backslashes, quotes, and control characters.
func quote(s string) string {
	return `"` + escaper.Replace(s) + `"`
}
