package dsl

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"

	shapeguard "github.com/okudaira/shapeguard"
)

// ErrNoMatch is returned by Bind when the value does not satisfy the guard.
var ErrNoMatch = errors.New("shapeguard: value does not satisfy guard")

// Bind validates v against g, applies the guard's transform, and decodes the
// result into T honoring json tags. Objects decode into structs or maps;
// scalars into their Go counterparts.
func Bind[T any](g *shapeguard.Guard, v any) (T, error) {
	var out T
	if !g.Validate(v) {
		return out, ErrNoMatch
	}
	tv := g.Transform(v)
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return out, fmt.Errorf("shapeguard: bind decoder: %w", err)
	}
	if err := dec.Decode(tv); err != nil {
		return out, fmt.Errorf("shapeguard: bind: %w", err)
	}
	return out, nil
}
