package dsl_test

import (
	"reflect"
	"testing"

	shapeguard "github.com/okudaira/shapeguard"
	"github.com/okudaira/shapeguard/dsl"
)

func TestConst(t *testing.T) {
	g := dsl.Const([]any{1, "a", true})

	if !g.Validate([]any{1, "a", true}) {
		t.Fatalf("structural clone rejected")
	}
	if g.Validate([]any{2, "a", true}) {
		t.Fatalf("substitution accepted")
	}
	if g.Validate([]any{"a", 1, true}) {
		t.Fatalf("reordering accepted")
	}
	if g.Validate([]any{1, "a"}) {
		t.Fatalf("truncation accepted")
	}
	if g.Validate([]any{1, "a", true, nil}) {
		t.Fatalf("extension accepted")
	}
}

func TestOptional(t *testing.T) {
	g := dsl.Optional(dsl.String())

	if !g.Validate(shapeguard.Undefined) {
		t.Fatalf("Undefined rejected")
	}
	if !g.Validate("x") {
		t.Fatalf("inner match rejected")
	}
	if g.Validate(nil) {
		t.Fatalf("nil accepted: optional is not nullable")
	}
	if g.Validate(1) {
		t.Fatalf("non-matching value accepted")
	}
}

func TestNullable(t *testing.T) {
	g := dsl.Nullable(dsl.Number())

	if !g.Validate(nil) {
		t.Fatalf("nil rejected")
	}
	if !g.Validate(3) {
		t.Fatalf("inner match rejected")
	}
	if g.Validate(shapeguard.Undefined) {
		t.Fatalf("Undefined accepted: nullable is not optional")
	}
	if g.Validate("3") {
		t.Fatalf("non-matching value accepted")
	}
}

func TestNonNullable(t *testing.T) {
	g := dsl.NonNullable(dsl.Any())

	if g.Validate(nil) || g.Validate(shapeguard.Undefined) {
		t.Fatalf("nil or Undefined accepted")
	}
	if !g.Validate(0) || !g.Validate("") || !g.Validate(false) {
		t.Fatalf("present value rejected")
	}
}

func TestArray(t *testing.T) {
	anyArr := dsl.Array()
	if !anyArr.Validate([]any{1, "x", nil}) || !anyArr.Validate([]int{1, 2}) {
		t.Fatalf("untyped array must accept any sequence")
	}
	if anyArr.Validate("not a sequence") || anyArr.Validate(nil) {
		t.Fatalf("non-sequence accepted")
	}

	nums := dsl.Array(dsl.Number())
	if !nums.Validate([]any{1, 2.5}) {
		t.Fatalf("numeric sequence rejected")
	}
	if nums.Validate([]any{1, "2"}) {
		t.Fatalf("mixed sequence accepted")
	}
	if !nums.Validate([]any{}) {
		t.Fatalf("empty sequence rejected")
	}
}

func TestArray_Transform(t *testing.T) {
	nums := dsl.Array(dsl.Number())
	in := []any{float64(1), float64(2)}
	got := nums.Transform(in)
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("numeric identity transform changed values: %v", got)
	}

	parsed := dsl.Array(dsl.StringNumber())
	got = parsed.Transform([]any{"1", "2"})
	if !reflect.DeepEqual(got, []any{float64(1), float64(2)}) {
		t.Fatalf("element transforms not applied, got %v", got)
	}

	literal := dsl.Array("x")
	if got := literal.Transform([]any{"x"}); !reflect.DeepEqual(got, []any{"x"}) {
		t.Fatalf("non-guard element definition must be identity, got %v", got)
	}
}

func TestStringArray(t *testing.T) {
	g := dsl.StringArray(dsl.StringNumber())

	if !g.Validate("1,2,3") {
		t.Fatalf("numeric csv rejected")
	}
	if g.Validate("1,x,3") {
		t.Fatalf("non-numeric element accepted")
	}
	if g.Validate([]any{"1"}) {
		t.Fatalf("non-string accepted")
	}

	got := g.Transform("1,2")
	if !reflect.DeepEqual(got, []any{float64(1), float64(2)}) {
		t.Fatalf("transform must split and parse, got %v", got)
	}
}

func TestStringArrayDelim(t *testing.T) {
	g := dsl.StringArrayDelim(dsl.StringNumber(), "|")

	if !g.Validate("1|2|3.33") {
		t.Fatalf("pipe-delimited numerics rejected")
	}
	got := g.Transform("1|2|3.33")
	if !reflect.DeepEqual(got, []any{float64(1), float64(2), 3.33}) {
		t.Fatalf("got %v", got)
	}

	plain := dsl.StringArrayDelim(dsl.String(), ";")
	if !reflect.DeepEqual(plain.Transform("a;b"), []any{"a", "b"}) {
		t.Fatalf("string elements must split without rewriting")
	}
}

func TestRecord(t *testing.T) {
	byKeys := dsl.Record([]string{"x", "y"}, dsl.Number())

	if !byKeys.Validate(map[string]any{"x": 1, "y": 2}) {
		t.Fatalf("conforming record rejected")
	}
	if !byKeys.Validate(map[string]any{"x": 1}) {
		t.Fatalf("records are key-subset tolerant")
	}
	if byKeys.Validate(map[string]any{"z": 1}) {
		t.Fatalf("foreign key accepted")
	}
	if byKeys.Validate(map[string]any{"x": "1"}) {
		t.Fatalf("non-matching value accepted")
	}
	if byKeys.Validate(nil) || byKeys.Validate("str") {
		t.Fatalf("non-object accepted")
	}

	byGuard := dsl.Record(dsl.UUID(), dsl.String())
	if !byGuard.Validate(map[string]any{"6ba7b810-9dad-11d1-80b4-00c04fd430c8": "ok"}) {
		t.Fatalf("guard-keyed record rejected")
	}
	if byGuard.Validate(map[string]any{"not-a-uuid": "ok"}) {
		t.Fatalf("invalid key accepted")
	}

	malformed := dsl.Record(42, dsl.String())
	if malformed.Validate(map[string]any{}) {
		t.Fatalf("malformed key predicate must match nothing")
	}
}
