// Package json decodes JSON input into engine values (map[string]any, []any,
// scalars) and validates it against a guard in one call. Numbers decode as
// json.Number to avoid float precision loss.
package json

import (
	"bytes"
	"fmt"
	"io"

	j "github.com/goccy/go-json"

	shapeguard "github.com/okudaira/shapeguard"
)

// Decode parses b into an engine value.
func Decode(b []byte) (any, error) {
	return DecodeReader(bytes.NewReader(b))
}

// DecodeReader parses r into an engine value.
func DecodeReader(r io.Reader) (any, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("source/json: decode: %w", err)
	}
	return v, nil
}

// Validate decodes b and reports whether the result satisfies g. The error is
// non-nil only for malformed JSON; a validation mismatch is just false.
func Validate(g *shapeguard.Guard, b []byte) (bool, error) {
	v, err := Decode(b)
	if err != nil {
		return false, err
	}
	return g.Validate(v), nil
}

// Parse decodes b, validates against g, and returns the transformed value.
// Values that do not satisfy g yield shapeguard's pass-through semantics:
// the decoded value is returned untransformed with ok=false.
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
