// Package yaml decodes YAML input into engine values. Decoded mappings are
// normalized recursively so map[any]any never leaks into the engine;
// non-string mapping keys are dropped.
package yaml

import (
	"fmt"

	"gopkg.in/yaml.v3"

	shapeguard "github.com/okudaira/shapeguard"
)

// Decode parses b into an engine value.
func Decode(b []byte) (any, error) {
	var node any
	if err := yaml.Unmarshal(b, &node); err != nil {
		return nil, fmt.Errorf("source/yaml: decode: %w", err)
	}
	return normalizeValue(node), nil
}

// Validate decodes b and reports whether the result satisfies g. The error is
// non-nil only for malformed YAML; a validation mismatch is just false.
func Validate(g *shapeguard.Guard, b []byte) (bool, error) {
	v, err := Decode(b)
	if err != nil {
		return false, err
	}
	return g.Validate(v), nil
}

// Parse decodes b, validates against g, and returns the transformed value
// with ok reporting whether g accepted the input.
func Parse(g *shapeguard.Guard, b []byte) (any, bool, error) {
	v, err := Decode(b)
	if err != nil {
		return nil, false, err
	}
	if !g.Validate(v) {
		return v, false, nil
	}
	return g.Transform(v), true, nil
}

// normalizeToStringMap converts YAML-decoded mappings (which may contain
// map[any]any) into map[string]any recursively. Non-map inputs return nil.
func normalizeToStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = normalizeValue(vv)
		}
		return out
	default:
		return nil
	}
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return normalizeToStringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
