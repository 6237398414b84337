// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/poiesic/slotstore"
	"github.com/poiesic/slotstore/schema"
)

// slotSpec declares one slot in the slots file.
//
//	slots:
//	  retries:
//	    type: int
//	    default: "3"
//	  user:
//	    key: app.user
//	    type: json
//	    default: '{"name":"","age":0}'
type slotSpec struct {
	Key     string `yaml:"key"`
	Type    string `yaml:"type"`
	Default string `yaml:"default"`
	Layout  string `yaml:"layout"` // time slots only, defaults to RFC3339
}

type slotsFile struct {
	Slots map[string]slotSpec `yaml:"slots"`
}

// loadSlots reads a YAML slots file into slot definitions.
func loadSlots(path string) (map[string]slotstore.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read slots file: %w", err)
	}
	return parseSlots(data)
}

func parseSlots(data []byte) (map[string]slotstore.Definition, error) {
	var file slotsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse slots file: %w", err)
	}

	defs := make(map[string]slotstore.Definition, len(file.Slots))
	for name, spec := range file.Slots {
		def, err := spec.definition()
		if err != nil {
			return nil, fmt.Errorf("slot %q: %w", name, err)
		}
		defs[name] = def
	}
	return defs, nil
}

// definition resolves a declared slot into a slotstore.Definition. The
// declared default must itself satisfy the slot's schema, so invalid
// defaults are caught at load time rather than handed to callers.
func (s slotSpec) definition() (slotstore.Definition, error) {
	var (
		sch    schema.Schema[any]
		isJSON bool
	)

	switch s.Type {
	case "string", "":
		sch = schema.Erase(schema.String())
	case "int":
		sch = schema.Erase(schema.Int())
	case "float":
		sch = schema.Erase(schema.Float64())
	case "bool":
		sch = schema.Erase(schema.Bool())
	case "duration":
		sch = schema.Erase(schema.Duration())
	case "time":
		sch = schema.Erase(schema.Time(s.Layout))
	case "json":
		sch = schema.Any()
		isJSON = true
	default:
		return slotstore.Definition{}, fmt.Errorf("unknown slot type %q", s.Type)
	}

	def := slotstore.Definition{
		Key:    s.Key,
		Schema: sch,
		JSON:   isJSON,
	}

	defaultValue, err := parseText(def, s.Default)
	if err != nil {
		return slotstore.Definition{}, fmt.Errorf("invalid default %q: %w", s.Default, err)
	}
	def.Default = defaultValue

	return def, nil
}

// parseText turns user-supplied text (a declared default or a `set`
// argument) into a schema-validated value for the given definition.
func parseText(def slotstore.Definition, text string) (any, error) {
	if def.JSON {
		var decoded any
		if err := json.Unmarshal([]byte(text), &decoded); err != nil {
			return nil, err
		}
		return def.Schema.Parse(decoded)
	}
	return def.Schema.Parse(text)
}

// renderValue is the inverse of parseText, for display and export.
func renderValue(def slotstore.Definition, value any) (string, error) {
	if def.JSON {
		encoded, err := json.Marshal(value)
		if err != nil {
			return "", err
		}
		return string(encoded), nil
	}
	return schema.Format(def.Schema, value), nil
}
