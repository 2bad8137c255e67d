package shapeguard

// Package shapeguard provides:
//
// - Immutable type guards pairing a validation predicate with a transform (Guard)
// - A polymorphic value dispatcher over guards, literals, and object shapes (ValidateValue)
// - Object-shape validation with exact and partial key-set semantics (ValidateObject)
// - Shallow, definition-driven value transformation (TransformObject)
//
// Design policy:
// - Keep the core data model and evaluation engine in the root package.
// - Place combinators and derivation operators under dsl/, codecs under codec/,
//   and input decoding under source/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	user := dsl.Object().
//		Field("id", dsl.String()).
//		Field("age", dsl.Number()).
//		Build()
//
//	ok := user.Validate(map[string]any{"id": "u_1", "age": 42})
//	out := user.Transform(map[string]any{"id": "u_1", "age": 42})
//
