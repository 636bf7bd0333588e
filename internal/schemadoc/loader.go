// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdkit Authors

// Package schemadoc loads schema definition documents (JSON or YAML)
// into JSON Schema values, preserving the document's key order, which
// the extractor needs because field order is significant.
package schemadoc

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/jsonschema-go/jsonschema"
	"gopkg.in/yaml.v3"
)

// Document is a loaded schema definition file.
type Document struct {
	// Name is the file stem, used to name a root schema without a title.
	Name string

	// Schema is the parsed JSON Schema document.
	Schema *jsonschema.Schema

	// KeyOrder maps dotted document paths ("$defs", "properties",
	// "$defs.Weapon.properties") to key names in document order.
	KeyOrder map[string][]string
}

// Loader loads schema documents from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile loads and parses a schema document. The format is determined
// from the file extension (.json, .yaml, .yml).
func (l *Loader) LoadFile(filePath string) (*Document, error) {
	f, err := l.fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return Parse(data, filePath)
}

// Parse parses raw document bytes. YAML input is bridged to JSON first:
// the jsonschema model only carries json tags, so keys like $defs would
// not survive a direct yaml.Unmarshal.
func Parse(data []byte, filePath string) (*Document, error) {
	var jsonData []byte
	switch {
	case strings.HasSuffix(filePath, ".yaml") || strings.HasSuffix(filePath, ".yml"):
		converted, err := yamlToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("invalid YAML in %s: %w", filePath, err)
		}
		jsonData = converted
	case strings.HasSuffix(filePath, ".json"):
		jsonData = data
	default:
		return nil, fmt.Errorf("unsupported schema format: %s", filePath)
	}

	var schema jsonschema.Schema
	if err := json.Unmarshal(jsonData, &schema); err != nil {
		return nil, fmt.Errorf("invalid schema in %s: %w", filePath, err)
	}

	keyOrder, err := ExtractKeyOrder(jsonData)
	if err != nil {
		return nil, fmt.Errorf("failed to extract key order from %s: %w", filePath, err)
	}

	return &Document{
		Name:     fileStem(filePath),
		Schema:   &schema,
		KeyOrder: keyOrder,
	}, nil
}

// yamlToJSON converts a YAML document to JSON bytes. yaml.v3 preserves
// mapping key order in its node tree, which the JSON encoding keeps, so
// key-order extraction works identically for both formats.
func yamlToJSON(data []byte) ([]byte, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("empty document")
	}
	v, err := yamlNodeToValue(root.Content[0])
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// orderedMap marshals key/value pairs in insertion order.
type orderedMap struct {
	keys   []string
	values map[string]any
}

func (m *orderedMap) MarshalJSON() ([]byte, error) {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			sb.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		sb.Write(kb)
		sb.WriteByte(':')
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		sb.Write(vb)
	}
	sb.WriteByte('}')
	return []byte(sb.String()), nil
}

func yamlNodeToValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.MappingNode:
		m := &orderedMap{values: make(map[string]any, len(node.Content)/2)}
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			val, err := yamlNodeToValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.keys = append(m.keys, key)
			m.values[key] = val
		}
		return m, nil
	case yaml.SequenceNode:
		s := make([]any, 0, len(node.Content))
		for _, c := range node.Content {
			v, err := yamlNodeToValue(c)
			if err != nil {
				return nil, err
			}
			s = append(s, v)
		}
		return s, nil
	case yaml.AliasNode:
		return yamlNodeToValue(node.Alias)
	default:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

// fileStem returns the file name without directory or extension.
func fileStem(filePath string) string {
	base := path.Base(filePath)
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	return base
}
