package dsl

import (
	"reflect"
	"strings"

	shapeguard "github.com/okudaira/shapeguard"
)

// transformVia delegates to def's transform when def is a guard, otherwise
// identity.
func transformVia(def shapeguard.TypeDefinition) func(any) any {
	if g, ok := shapeguard.IsGuard(def); ok {
		return g.Transform
	}
	return func(v any) any { return v }
}

// Const returns a guard matching exactly the given literal value/shape.
func Const(value shapeguard.TypeDefinition) *shapeguard.Guard {
	return shapeguard.New("const", shapeguard.Config{
		Validate: func(v any) bool { return shapeguard.ValidateValue(v, value) },
	})
}

// Optional returns a guard that accepts Undefined unconditionally and
// otherwise matches def.
func Optional(def shapeguard.TypeDefinition) *shapeguard.Guard {
	inner := transformVia(def)
	return shapeguard.New("optional", shapeguard.Config{
		Validate: func(v any) bool {
			if shapeguard.IsUndefined(v) {
				return true
			}
			return shapeguard.ValidateValue(v, def)
		},
		Transform: inner,
	})
}

// Nullable returns a guard that accepts nil unconditionally and otherwise
// matches def.
func Nullable(def shapeguard.TypeDefinition) *shapeguard.Guard {
	inner := transformVia(def)
	return shapeguard.New("nullable", shapeguard.Config{
		Validate: func(v any) bool {
			if v == nil {
				return true
			}
			return shapeguard.ValidateValue(v, def)
		},
		Transform: inner,
	})
}

// NonNullable returns a guard that rejects nil and Undefined and otherwise
// matches def.
func NonNullable(def shapeguard.TypeDefinition) *shapeguard.Guard {
	inner := transformVia(def)
	return shapeguard.New("nonnullable", shapeguard.Config{
		Validate: func(v any) bool {
			if v == nil || shapeguard.IsUndefined(v) {
				return false
			}
			return shapeguard.ValidateValue(v, def)
		},
		Transform: inner,
	})
}

// Array returns a guard over sequences. Without an element definition any
// slice or array is accepted; with one, every element must match it. The
// transform maps elements through the element guard's transform when the
// element definition is a guard.
func Array(elem ...shapeguard.TypeDefinition) *shapeguard.Guard {
	var def shapeguard.TypeDefinition
	if len(elem) > 0 {
		def = elem[0]
	}
	return shapeguard.NewFromDefinition(shapeguard.AtomicElem("array", def), shapeguard.Config{
		Validate: func(v any) bool {
			rv, ok := sequenceOf(v)
			if !ok {
				return false
			}
			if def == nil {
				return true
			}
			for i := 0; i < rv.Len(); i++ {
				if !shapeguard.ValidateValue(rv.Index(i).Interface(), def) {
					return false
				}
			}
			return true
		},
		Transform: func(v any) any {
			eg, isGuard := shapeguard.IsGuard(def)
			if !isGuard {
				return v
			}
			rv, ok := sequenceOf(v)
			if !ok {
				return v
			}
			out := make([]any, rv.Len())
			for i := 0; i < rv.Len(); i++ {
				out[i] = eg.Transform(rv.Index(i).Interface())
			}
			return out
		},
	})
}

// StringArray returns a guard over delimiter-separated strings, split on ","
// and validated element-wise like Array. StringArrayDelim sets an explicit
// delimiter.
func StringArray(elem shapeguard.TypeDefinition) *shapeguard.Guard {
	return StringArrayDelim(elem, ",")
}

// StringArrayDelim is StringArray with an explicit delimiter. The transform
// splits the string and maps each part through the element guard's transform
// when elem is a guard; otherwise it returns the split parts.
func StringArrayDelim(elem shapeguard.TypeDefinition, delim string) *shapeguard.Guard {
	return shapeguard.NewFromDefinition(shapeguard.AtomicElem("stringarray", elem), shapeguard.Config{
		Validate: func(v any) bool {
			s, ok := v.(string)
			if !ok {
				return false
			}
			if elem == nil {
				return true
			}
			for _, part := range strings.Split(s, delim) {
				if !shapeguard.ValidateValue(part, elem) {
					return false
				}
			}
			return true
		},
		Transform: func(v any) any {
			s, ok := v.(string)
			if !ok {
				return v
			}
			parts := strings.Split(s, delim)
			out := make([]any, len(parts))
			eg, isGuard := shapeguard.IsGuard(elem)
			for i, p := range parts {
				if isGuard {
					out[i] = eg.Transform(p)
				} else {
					out[i] = p
				}
			}
			return out
		},
	})
}

// Record returns a guard over plain objects whose keys satisfy the key
// predicate and whose values all match value. The key predicate is either an
// explicit key set ([]string) or a guard over keys; anything else makes the
// guard match nothing (malformed arguments fail locally and silently).
func Record(keys any, value shapeguard.TypeDefinition) *shapeguard.Guard {
	keyOK := keyPredicate(keys)
	return shapeguard.New("record", shapeguard.Config{
		Validate: func(v any) bool {
			if keyOK == nil {
				return false
			}
			obj, ok := v.(map[string]any)
			if !ok {
				return false
			}
			for k, val := range obj {
				if !keyOK(k) {
					return false
				}
				if !shapeguard.ValidateValue(val, value) {
					return false
				}
			}
			return true
		},
	})
}

func keyPredicate(keys any) func(string) bool {
	switch ks := keys.(type) {
	case []string:
		set := make(map[string]struct{}, len(ks))
		for _, k := range ks {
			set[k] = struct{}{}
		}
		return func(k string) bool { _, ok := set[k]; return ok }
	case *shapeguard.Guard:
		if ks == nil {
			return nil
		}
		return func(k string) bool { return ks.Validate(k) }
	}
	return nil
}

func sequenceOf(v any) (reflect.Value, bool) {
	if v == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv, true
	}
	return reflect.Value{}, false
}
