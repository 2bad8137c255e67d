package dsl

import (
	"encoding/json"

	shapeguard "github.com/okudaira/shapeguard"
	js "github.com/okudaira/shapeguard/jsonschema"
)

// JSONSchema projects a type definition into the minimal JSON Schema
// representation. Schema-shaped guards become objects with every declared key
// required and no additional properties (exact mode); unions export as oneOf
// over their candidates, or enum when every candidate is a scalar literal;
// arrays carry their element definition as items; remaining atomic guards map
// their tag to a type string; literals export as const.
func JSONSchema(def shapeguard.TypeDefinition) *js.Schema {
	if g, ok := shapeguard.IsGuard(def); ok {
		d := g.Definition()
		if vs, isUnion := d.Variants(); isUnion {
			return unionSchema(d, vs)
		}
		if sd, shaped := d.Schema(); shaped {
			return schemaObject(sd)
		}
		if elem, hasElem := d.Elem(); hasElem && d.Tag() == "array" {
			return &js.Schema{Type: "array", Items: JSONSchema(elem)}
		}
		return atomicSchema(d.Tag())
	}
	switch d := def.(type) {
	case nil:
		return &js.Schema{Type: "null"}
	case *shapeguard.SchemaDefinition:
		return schemaObject(d)
	case map[string]any:
		return schemaObject(shapeguard.DefinitionFromMap(d))
	}
	return &js.Schema{Const: def}
}

// unionSchema exports a union as enum (all-literal candidates) or oneOf over
// the candidate projections. A union with two or more shape candidates also
// accepts the merged key set, so the merged object joins the oneOf branches.
func unionSchema(d shapeguard.Definition, candidates []shapeguard.TypeDefinition) *js.Schema {
	if enum, ok := literalEnum(candidates); ok {
		return &js.Schema{Enum: enum}
	}
	branches := make([]*js.Schema, 0, len(candidates)+1)
	shapes := 0
	for _, c := range candidates {
		if _, ok := unionShape(c); ok {
			shapes++
		}
		branches = append(branches, JSONSchema(c))
	}
	if sd, ok := d.Schema(); ok && shapes > 1 {
		branches = append(branches, schemaObject(sd))
	}
	return &js.Schema{OneOf: branches}
}

// literalEnum collects candidates into an enum value list when every one is a
// scalar literal.
func literalEnum(candidates []shapeguard.TypeDefinition) ([]any, bool) {
	if len(candidates) == 0 {
		return nil, false
	}
	out := make([]any, 0, len(candidates))
	for _, c := range candidates {
		switch c.(type) {
		case string, bool,
			int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64,
			float32, float64, json.Number:
			out = append(out, c)
		default:
			return nil, false
		}
	}
	return out, true
}

func schemaObject(sd *shapeguard.SchemaDefinition) *js.Schema {
	keys := sd.Keys()
	props := make(map[string]*js.Schema, len(keys))
	for _, k := range keys {
		d, _ := sd.Get(k)
		props[k] = JSONSchema(d)
	}
	return &js.Schema{
		Type:                 "object",
		Properties:           props,
		Required:             keys,
		AdditionalProperties: false,
	}
}

func atomicSchema(tag string) *js.Schema {
	switch tag {
	case "string", "stringarray", "uuid":
		return &js.Schema{Type: "string"}
	case "number", "stringnumber":
		return &js.Schema{Type: "number"}
	case "int", "bigint":
		return &js.Schema{Type: "integer"}
	case "bool":
		return &js.Schema{Type: "boolean"}
	case "array":
		return &js.Schema{Type: "array"}
	case "record":
		return &js.Schema{Type: "object", AdditionalProperties: true}
	case "null":
		return &js.Schema{Type: "null"}
	default:
		// optional/nullable/const and custom atomic guards carry no
		// structural information of their own
		return &js.Schema{}
	}
}
