package dsl

import (
	shapeguard "github.com/okudaira/shapeguard"
)

// Union returns a guard accepting a value that matches any candidate, plus
// values that legally combine fields across shape candidates sharing keys
// with differing types.
//
// Shape candidates (schema guards and bare plain-object definitions) are
// merged into an auxiliary schema: the first candidate declaring a key
// contributes its definition directly; every further declaration of the same
// key widens it into a nested Union over all definitions seen so far, in
// candidate order. The merged schema validates plain objects in exact mode,
// so a combined value must carry precisely the merged key set. The merged
// schema is consulted only for acceptance; transform always follows the first
// raw candidate that matches, in declaration order.
func Union(candidates ...shapeguard.TypeDefinition) *shapeguard.Guard {
	merged := shapeguard.NewSchemaDefinition()
	commonProps := map[string][]shapeguard.TypeDefinition{}
	shaped := false

	for _, c := range candidates {
		sd, ok := unionShape(c)
		if !ok {
			// atomic guards and literals stay in the raw candidate list only
			continue
		}
		shaped = true
		for _, k := range sd.Keys() {
			d, _ := sd.Get(k)
			if !merged.Has(k) {
				merged.Set(k, d)
				continue
			}
			if _, seen := commonProps[k]; !seen {
				prev, _ := merged.Get(k)
				commonProps[k] = []shapeguard.TypeDefinition{prev, d}
			} else {
				commonProps[k] = append(commonProps[k], d)
			}
			merged.Set(k, Union(commonProps[k]...))
		}
	}

	validate := func(v any) bool {
		if shapeguard.IsPlainObject(v) {
			if shaped && shapeguard.ValidateObject(v, merged, false) {
				return true
			}
		}
		for _, c := range candidates {
			if shapeguard.ValidateValue(v, c) {
				return true
			}
		}
		return false
	}

	transform := func(v any) any {
		for _, c := range candidates {
			if !shapeguard.ValidateValue(v, c) {
				continue
			}
			if g, ok := shapeguard.IsGuard(c); ok {
				return g.Transform(v)
			}
			return v
		}
		return v
	}

	vs := append([]shapeguard.TypeDefinition(nil), candidates...)
	def := shapeguard.UnionShaped(nil, vs)
	if shaped {
		def = shapeguard.UnionShaped(merged, vs)
	}
	return shapeguard.NewFromDefinition(def, shapeguard.Config{
		Validate:  validate,
		Transform: transform,
	})
}

// unionShape extracts the schema definition of a shape-like candidate.
func unionShape(c shapeguard.TypeDefinition) (*shapeguard.SchemaDefinition, bool) {
	if g, ok := shapeguard.IsSchemaGuard(c); ok {
		return g.Definition().Schema()
	}
	if m, ok := c.(map[string]any); ok {
		return shapeguard.DefinitionFromMap(m), true
	}
	if sd, ok := c.(*shapeguard.SchemaDefinition); ok && sd != nil {
		return sd, true
	}
	return nil, false
}
