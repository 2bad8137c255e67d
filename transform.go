package shapeguard

// TransformObject produces a new object with the same own keys as v. Keys
// whose definition is a guard take that guard's transform; all other values
// are kept unchanged. Transformation is shallow: nested schema-shaped values
// are only transformed when the nested guard's own transform does so.
// Non-object input passes through unchanged.
func TransformObject(v any, sd *SchemaDefinition) any {
	obj, ok := v.(map[string]any)
	if !ok || v == nil || sd == nil {
		return v
	}
	out := make(map[string]any, len(obj))
	for k, val := range obj {
		d, declared := sd.Get(k)
		if !declared {
			out[k] = val
			continue
		}
		if g, isGuard := IsGuard(d); isGuard {
			out[k] = g.Transform(val)
			continue
		}
		out[k] = val
	}
	return out
}
