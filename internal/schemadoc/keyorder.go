// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdkit Authors

package schemadoc

import (
	"bytes"
	"strings"

	"github.com/goccy/go-json"
)

// ExtractKeyOrder scans raw JSON and records the key order of every
// object whose dotted path is "$defs" or ends in "properties". The
// schema model itself stores properties in maps, which lose order.
func ExtractKeyOrder(rawJSON []byte) (map[string][]string, error) {
	result := make(map[string][]string)

	dec := json.NewDecoder(bytes.NewReader(rawJSON))
	var extract func(path string) error
	extract = func(path string) error {
		token, err := dec.Token()
		if err != nil {
			return err
		}
		delim, ok := token.(json.Delim)
		if !ok {
			return nil
		}
		switch delim {
		case '{':
			var keys []string
			for dec.More() {
				keyToken, err := dec.Token()
				if err != nil {
					return err
				}
				key, ok := keyToken.(string)
				if !ok {
					continue
				}
				keys = append(keys, key)
				childPath := key
				if path != "" {
					childPath = path + "." + key
				}
				if err := extract(childPath); err != nil {
					return err
				}
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return err
			}
			if recordPath(path) {
				result[path] = keys
			}
		case '[':
			for dec.More() {
				if err := extract(path); err != nil {
					return err
				}
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return err
			}
		}
		return nil
	}

	if err := extract(""); err != nil {
		return nil, err
	}
	return result, nil
}

func recordPath(path string) bool {
	return path == "$defs" || path == "properties" || strings.HasSuffix(path, ".properties")
}
