package dsl

import (
	"encoding/json"
	"math/big"
	"reflect"
	"strconv"
	"time"

	"github.com/google/uuid"

	shapeguard "github.com/okudaira/shapeguard"
)

// String returns a guard matching string values.
func String() *shapeguard.Guard {
	return shapeguard.New("string", shapeguard.Config{
		Validate: func(v any) bool { _, ok := v.(string); return ok },
	})
}

// Bool returns a guard matching bool values.
func Bool() *shapeguard.Guard {
	return shapeguard.New("bool", shapeguard.Config{
		Validate: func(v any) bool { _, ok := v.(bool); return ok },
	})
}

// Number returns a guard matching any numeric kind, including json.Number.
func Number() *shapeguard.Guard {
	return shapeguard.New("number", shapeguard.Config{Validate: isNumber})
}

// Int returns a guard matching integer kinds and integral json.Number values.
func Int() *shapeguard.Guard {
	return shapeguard.New("int", shapeguard.Config{Validate: isInteger})
}

// BigInt returns a guard matching *big.Int values.
func BigInt() *shapeguard.Guard {
	return shapeguard.New("bigint", shapeguard.Config{
		Validate: func(v any) bool { _, ok := v.(*big.Int); return ok },
	})
}

// Time returns a guard matching time.Time values.
func Time() *shapeguard.Guard {
	return shapeguard.New("time", shapeguard.Config{
		Validate: func(v any) bool { _, ok := v.(time.Time); return ok },
	})
}

// Func returns a guard matching any function value.
func Func() *shapeguard.Guard {
	return shapeguard.New("func", shapeguard.Config{
		Validate: func(v any) bool {
			return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
		},
	})
}

// Null returns a guard matching only nil.
func Null() *shapeguard.Guard {
	return shapeguard.New("null", shapeguard.Config{
		Validate: func(v any) bool { return v == nil },
	})
}

// Any returns a guard matching every value, Undefined included.
func Any() *shapeguard.Guard {
	return shapeguard.New("any", shapeguard.Config{
		Validate: func(v any) bool { return true },
	})
}

// StringNumber returns a guard matching numeric strings. Its transform parses
// the string into a float64.
func StringNumber() *shapeguard.Guard {
	return shapeguard.New("stringnumber", shapeguard.Config{
		Validate: func(v any) bool {
			s, ok := v.(string)
			if !ok {
				return false
			}
			_, err := strconv.ParseFloat(s, 64)
			return err == nil
		},
		Transform: func(v any) any {
			s, ok := v.(string)
			if !ok {
				return v
			}
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return v
			}
			return f
		},
	})
}

// UUID returns a guard matching canonical UUID strings.
func UUID() *shapeguard.Guard {
	return shapeguard.New("uuid", shapeguard.Config{
		Validate: func(v any) bool {
			s, ok := v.(string)
			if !ok {
				return false
			}
			_, err := uuid.Parse(s)
			return err == nil
		},
	})
}

func isNumber(v any) bool {
	switch n := v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	case json.Number:
		_, err := n.Float64()
		return err == nil
	}
	return false
}

func isInteger(v any) bool {
	switch n := v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	case json.Number:
		_, err := n.Int64()
		return err == nil
	case float64:
		return n == float64(int64(n))
	}
	return false
}
