package shapeguard

import "sort"

// TypeDefinition is the sum type a value can be matched against: either a
// *Guard (delegated) or a bare literal value/shape (matched structurally by
// ValidateValue). A bare value used as a definition means "match this exact
// value/shape", not "match this type".
type TypeDefinition = any

// Definition discriminates what a Guard describes: an opaque atomic tag, a
// structural schema, or a union over candidate definitions. Sequence guards
// additionally record their element definition. Union definitions carry the
// tag "union" plus the candidate list, and the merged schema when the union
// has shape candidates.
type Definition struct {
	tag      string
	schema   *SchemaDefinition
	variants []TypeDefinition
	elem     TypeDefinition
}

// Atomic returns a Definition carrying an opaque tag. The tag identifies the
// guard family (for example "string" or "union") and is also consulted by the
// JSON Schema export.
func Atomic(tag string) Definition { return Definition{tag: tag} }

// SchemaShaped returns a Definition carrying a structural schema.
func SchemaShaped(sd *SchemaDefinition) Definition { return Definition{schema: sd} }

// UnionShaped returns a Definition for a union over candidates. sd is the
// merged schema over the union's shape candidates, or nil when it has none.
func UnionShaped(sd *SchemaDefinition, candidates []TypeDefinition) Definition {
	return Definition{tag: "union", schema: sd, variants: candidates}
}

// AtomicElem returns an atomic Definition that also records an element
// definition, used by sequence guards.
func AtomicElem(tag string, elem TypeDefinition) Definition {
	return Definition{tag: tag, elem: elem}
}

// Tag returns the atomic tag, or "" for plain schema-shaped definitions.
func (d Definition) Tag() string { return d.tag }

// IsSchema reports whether the definition is schema-shaped.
func (d Definition) IsSchema() bool { return d.schema != nil }

// Schema returns the structural schema when the definition is schema-shaped.
func (d Definition) Schema() (*SchemaDefinition, bool) { return d.schema, d.schema != nil }

// Variants returns the union candidate list in declaration order. The slice
// is a copy.
func (d Definition) Variants() ([]TypeDefinition, bool) {
	if d.variants == nil {
		return nil, false
	}
	out := make([]TypeDefinition, len(d.variants))
	copy(out, d.variants)
	return out, true
}

// Elem returns the element definition recorded by sequence guards.
func (d Definition) Elem() (TypeDefinition, bool) {
	return d.elem, d.elem != nil
}

// SchemaDefinition is an ordered key to TypeDefinition mapping describing an
// object's shape. Keys are unique; insertion order is irrelevant to matching
// but preserved for iteration.
type SchemaDefinition struct {
	keys []string
	defs map[string]TypeDefinition
}

// NewSchemaDefinition returns an empty schema definition.
func NewSchemaDefinition() *SchemaDefinition {
	return &SchemaDefinition{defs: map[string]TypeDefinition{}}
}

// DefinitionFromMap builds a schema definition from a Go map literal. Map
// iteration order is not stable, so keys are sorted for deterministic
// iteration order.
func DefinitionFromMap(fields map[string]TypeDefinition) *SchemaDefinition {
	sd := NewSchemaDefinition()
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		sd.Set(k, fields[k])
	}
	return sd
}

// Set registers or replaces the definition for key. Replacing keeps the key's
// original position.
func (sd *SchemaDefinition) Set(key string, def TypeDefinition) *SchemaDefinition {
	if _, ok := sd.defs[key]; !ok {
		sd.keys = append(sd.keys, key)
	}
	sd.defs[key] = def
	return sd
}

// Get returns the definition registered for key.
func (sd *SchemaDefinition) Get(key string) (TypeDefinition, bool) {
	d, ok := sd.defs[key]
	return d, ok
}

// Has reports whether key is declared.
func (sd *SchemaDefinition) Has(key string) bool {
	_, ok := sd.defs[key]
	return ok
}

// Keys returns the declared keys in insertion order. The slice is a copy.
func (sd *SchemaDefinition) Keys() []string {
	out := make([]string, len(sd.keys))
	copy(out, sd.keys)
	return out
}

// Len returns the number of declared keys.
func (sd *SchemaDefinition) Len() int { return len(sd.keys) }

// Clone returns a shallow copy that can be extended or filtered without
// affecting the original.
func (sd *SchemaDefinition) Clone() *SchemaDefinition {
	out := NewSchemaDefinition()
	for _, k := range sd.keys {
		out.Set(k, sd.defs[k])
	}
	return out
}
