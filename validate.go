package shapeguard

// ValidateValue decides whether v matches a type definition. Dispatch order:
// guard delegation, literal tuple matching, object shapes (null, plain
// mapping, opaque instance), then strict equality for primitives and
// functions. It has no side effects and is total over all value/definition
// pairs.
func ValidateValue(v any, def TypeDefinition) bool {
	if g, ok := IsGuard(def); ok {
		return g.Validate(v)
	}
	if def == nil {
		return v == nil
	}
	switch d := def.(type) {
	case *SchemaDefinition:
		return ValidateObject(v, d, false)
	case map[string]any:
		if !IsPlainObject(v) {
			return false
		}
		return ValidateObject(v, DefinitionFromMap(d), false)
	}
	if dv, ok := isSequence(def); ok {
		return sequenceEqual(v, dv)
	}
	// primitives and opaque instances (structs, pointers, typed maps) match
	// by strict equality, not shape
	return strictEqual(v, def)
}

// ValidateObject validates v against a keyed schema definition.
//
// Exact mode requires precisely the declared key set, all values valid.
// Partial mode allows a subset of the declared keys, still rejects foreign
// keys, and tolerates an explicitly Undefined value in place of any declared
// type.
func ValidateObject(v any, sd *SchemaDefinition, partial bool) bool {
	if sd == nil {
		return false
	}
	obj, ok := v.(map[string]any)
	if !ok || v == nil {
		return false
	}
	if !partial && len(obj) != sd.Len() {
		return false
	}
	for k := range obj {
		if !sd.Has(k) {
			return false
		}
	}
	for k, val := range obj {
		if partial && IsUndefined(val) {
			continue
		}
		d, _ := sd.Get(k)
		if !ValidateValue(val, d) {
			return false
		}
	}
	return true
}
