package dsl

import (
	shapeguard "github.com/okudaira/shapeguard"
)

// schemaDefOf resolves schema-shaped operator input: a schema guard, a bare
// *SchemaDefinition, or a plain map used directly as a shape.
func schemaDefOf(src any) (*shapeguard.SchemaDefinition, bool) {
	switch s := src.(type) {
	case *shapeguard.SchemaDefinition:
		return s, s != nil
	case map[string]any:
		return shapeguard.DefinitionFromMap(s), true
	}
	if g, ok := shapeguard.IsSchemaGuard(src); ok {
		sd, _ := g.Definition().Schema()
		return sd, true
	}
	return nil, false
}

// Partial returns a guard over the same definition that validates in partial
// mode: a subset of the declared keys, no foreign keys, explicit Undefined
// tolerated.
func Partial(src any) *shapeguard.Guard {
	sd, ok := schemaDefOf(src)
	if !ok {
		return neverGuard()
	}
	return guardOver(sd, true)
}

// Required returns a guard over the same definition that validates in exact
// mode, re-imposing full key presence even when the source was partial.
func Required(src any) *shapeguard.Guard {
	sd, ok := schemaDefOf(src)
	if !ok {
		return neverGuard()
	}
	return guardOver(sd, false)
}

// Pick returns an exact-mode guard over only the entries whose key is in
// keys, preserving the source definition's order.
func Pick(src any, keys ...string) *shapeguard.Guard {
	sd, ok := schemaDefOf(src)
	if !ok {
		return neverGuard()
	}
	keep := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		keep[k] = struct{}{}
	}
	out := shapeguard.NewSchemaDefinition()
	for _, k := range sd.Keys() {
		if _, ok := keep[k]; ok {
			d, _ := sd.Get(k)
			out.Set(k, d)
		}
	}
	return guardOver(out, false)
}

// Omit returns an exact-mode guard over only the entries whose key is not in
// keys; otherwise identical to Pick's contract. Pick and Omit over
// complementary key sets accept exactly the same values.
func Omit(src any, keys ...string) *shapeguard.Guard {
	sd, ok := schemaDefOf(src)
	if !ok {
		return neverGuard()
	}
	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := shapeguard.NewSchemaDefinition()
	for _, k := range sd.Keys() {
		if _, ok := drop[k]; !ok {
			d, _ := sd.Get(k)
			out.Set(k, d)
		}
	}
	return guardOver(out, false)
}
