package shapeguard_test

import (
	"reflect"
	"strings"
	"testing"

	shapeguard "github.com/okudaira/shapeguard"
)

func TestTransformObject_AppliesGuardTransforms(t *testing.T) {
	upper := shapeguard.New("string", shapeguard.Config{
		Validate: func(v any) bool { _, ok := v.(string); return ok },
		Transform: func(v any) any {
			s, ok := v.(string)
			if !ok {
				return v
			}
			return strings.ToUpper(s)
		},
	})
	sd := shapeguard.NewSchemaDefinition().
		Set("name", upper).
		Set("tag", "fixed")

	got := shapeguard.TransformObject(map[string]any{"name": "abc", "tag": "fixed", "extra": 1}, sd)
	want := map[string]any{"name": "ABC", "tag": "fixed", "extra": 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTransformObject_ShallowOnly(t *testing.T) {
	upper := shapeguard.New("string", shapeguard.Config{
		Validate:  func(v any) bool { _, ok := v.(string); return ok },
		Transform: func(v any) any { return strings.ToUpper(v.(string)) },
	})
	inner := shapeguard.NewSchemaDefinition().Set("name", upper)
	outer := shapeguard.NewSchemaDefinition().Set("child", inner)

	in := map[string]any{"child": map[string]any{"name": "abc"}}
	got := shapeguard.TransformObject(in, outer)
	// nested definitions are not guards, so the child map passes through untouched
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("nested object must not be rewritten, got %v", got)
	}
}

func TestTransformObject_PassThrough(t *testing.T) {
	sd := shapeguard.NewSchemaDefinition().Set("a", 1)
	if got := shapeguard.TransformObject("not an object", sd); got != "not an object" {
		t.Fatalf("non-object must pass through, got %v", got)
	}
	if got := shapeguard.TransformObject(nil, sd); got != nil {
		t.Fatalf("nil must pass through, got %v", got)
	}
	in := map[string]any{"a": 1}
	if got := shapeguard.TransformObject(in, nil); !reflect.DeepEqual(got, in) {
		t.Fatalf("nil schema must pass through, got %v", got)
	}
}

func TestTransformObject_DoesNotMutateInput(t *testing.T) {
	neg := shapeguard.New("number", shapeguard.Config{
		Validate:  func(v any) bool { _, ok := v.(int); return ok },
		Transform: func(v any) any { return -v.(int) },
	})
	sd := shapeguard.NewSchemaDefinition().Set("n", neg)

	in := map[string]any{"n": 5}
	got := shapeguard.TransformObject(in, sd).(map[string]any)
	if got["n"] != -5 {
		t.Fatalf("transform not applied, got %v", got["n"])
	}
	if in["n"] != 5 {
		t.Fatalf("input object mutated: %v", in["n"])
	}
}
