package shapeguard

import (
	"encoding/json"
	"math/big"
	"reflect"
)

// UndefinedValue is the type of the Undefined sentinel.
type UndefinedValue struct{}

func (UndefinedValue) String() string { return "undefined" }

// Undefined marks a key as present but explicitly valueless, the counterpart
// of an absent key. Partial-mode object validation tolerates it regardless of
// the declared type; Optional guards accept it unconditionally.
var Undefined UndefinedValue

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v any) bool {
	_, ok := v.(UndefinedValue)
	return ok
}

// numericValue widens any Go numeric kind (and json.Number) to float64 so
// literal matching treats 1, int64(1), 1.0 and json.Number("1") as the same
// number.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// strictEqual implements the engine's identity/primitive equality: numbers
// compare by value across numeric kinds, *big.Int by value, funcs by code
// pointer, everything else by == over identical dynamic types.
// Non-comparable kinds (maps, slices) are never strict-equal.
func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if af, ok := numericValue(a); ok {
		bf, ok2 := numericValue(b)
		return ok2 && af == bf
	}
	if ai, ok := a.(*big.Int); ok {
		bi, ok2 := b.(*big.Int)
		return ok2 && ai.Cmp(bi) == 0
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	if ta.Kind() == reflect.Func {
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}
	if !ta.Comparable() {
		return false
	}
	return a == b
}

// isSequence reports whether v is an ordered sequence (slice or array, not a
// string) and returns its reflect value.
func isSequence(v any) (reflect.Value, bool) {
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

// sequenceEqual is literal tuple matching: identical length with pairwise
// strict equality at every index, not element-type checking.
func sequenceEqual(v any, def reflect.Value) bool {
	rv, ok := isSequence(v)
	if !ok || rv.Len() != def.Len() {
		return false
	}
	for i := 0; i < def.Len(); i++ {
		if !strictEqual(rv.Index(i).Interface(), def.Index(i).Interface()) {
			return false
		}
	}
	return true
}
