package dsl

import (
	shapeguard "github.com/okudaira/shapeguard"
)

// Schema builds an exact-mode schema guard from a map literal. Keys are
// sorted for deterministic iteration; use Object for insertion-ordered
// definitions.
func Schema(fields map[string]shapeguard.TypeDefinition) *shapeguard.Guard {
	return guardOver(shapeguard.DefinitionFromMap(fields), false)
}

// SchemaOf builds an exact-mode schema guard over an existing definition.
func SchemaOf(sd *shapeguard.SchemaDefinition) *shapeguard.Guard {
	if sd == nil {
		return neverGuard()
	}
	return guardOver(sd, false)
}

// ObjectBuilder accumulates fields in declaration order.
type ObjectBuilder struct {
	sd *shapeguard.SchemaDefinition
}

// Object creates a new object-schema builder.
func Object() *ObjectBuilder {
	return &ObjectBuilder{sd: shapeguard.NewSchemaDefinition()}
}

// Field registers a field with its type definition.
func (b *ObjectBuilder) Field(name string, def shapeguard.TypeDefinition) *ObjectBuilder {
	b.sd.Set(name, def)
	return b
}

// Build returns the exact-mode schema guard. The builder must not be reused
// to extend an already built guard's definition; Build hands the accumulated
// definition over as-is.
func (b *ObjectBuilder) Build() *shapeguard.Guard {
	return guardOver(b.sd, false)
}

// guardOver wires a schema definition into a guard with the engine's object
// validate/transform, in exact or partial mode.
func guardOver(sd *shapeguard.SchemaDefinition, partial bool) *shapeguard.Guard {
	return shapeguard.NewSchema(sd, shapeguard.Config{
		Validate:  func(v any) bool { return shapeguard.ValidateObject(v, sd, partial) },
		Transform: func(v any) any { return shapeguard.TransformObject(v, sd) },
	})
}

// neverGuard matches nothing; malformed operator input fails locally and
// silently rather than panicking.
func neverGuard() *shapeguard.Guard {
	return shapeguard.New("never", shapeguard.Config{
		Validate: func(any) bool { return false },
	})
}
