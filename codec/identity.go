package codec

import (
	shapeguard "github.com/okudaira/shapeguard"
)

// Identity returns a guard that matches def with an identity transform. It is
// useful for stripping a guard's transform while keeping its acceptance,
// e.g. wrapping a StringArray so matching strings pass through unsplit.
func Identity(def shapeguard.TypeDefinition) *shapeguard.Guard {
	return shapeguard.New("identity", shapeguard.Config{
		Validate:  func(v any) bool { return shapeguard.ValidateValue(v, def) },
		Transform: func(v any) any { return v },
	})
}
