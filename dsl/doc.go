// Package dsl provides the combinator surface over the shapeguard engine:
// leaf guards for host intrinsics, Optional/Nullable/NonNullable/Array/
// StringArray/Record/Union combinators, the Partial/Required/Pick/Omit
// derivation operators, and the Schema construction entry points.
//
// Every constructor returns an immutable *shapeguard.Guard whose validate and
// transform close over the engine's ValidateValue/ValidateObject/
// TransformObject.
package dsl
