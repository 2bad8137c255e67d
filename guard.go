package shapeguard

// Guard is an immutable unit pairing a validation predicate with a transform
// for one type or shape. Guards carry no mutable state and are safe for
// concurrent use; Config and the dsl derivation operators always produce new
// units.
type Guard struct {
	validate  func(any) bool
	transform func(any) any
	def       Definition
}

// Config bundles the reconfigurable parts of a Guard. A nil member keeps the
// existing behavior.
type Config struct {
	Validate  func(any) bool
	Transform func(any) any
}

// New constructs an atomic guard with the given tag. A guard without a
// Validate predicate never matches.
func New(tag string, cfg Config) *Guard {
	return &Guard{validate: cfg.Validate, transform: cfg.Transform, def: Atomic(tag)}
}

// NewSchema constructs a schema-shaped guard over sd.
func NewSchema(sd *SchemaDefinition, cfg Config) *Guard {
	return &Guard{validate: cfg.Validate, transform: cfg.Transform, def: SchemaShaped(sd)}
}

// NewFromDefinition constructs a guard over an explicit definition, for guard
// families whose definitions carry more than a tag or a schema (unions,
// sequences).
func NewFromDefinition(def Definition, cfg Config) *Guard {
	return &Guard{validate: cfg.Validate, transform: cfg.Transform, def: def}
}

// Validate reports whether v satisfies the guard.
func (g *Guard) Validate(v any) bool {
	if g == nil || g.validate == nil {
		return false
	}
	return g.validate(v)
}

// Transform applies the guard's transform to v. Guards without a configured
// transform pass the value through unchanged.
func (g *Guard) Transform(v any) any {
	if g == nil || g.transform == nil {
		return v
	}
	return g.transform(v)
}

// Config returns a new guard with validate/transform replaced by the non-nil
// members of cfg. The definition tag is shared; the receiver is not mutated.
func (g *Guard) Config(cfg Config) *Guard {
	out := &Guard{validate: g.validate, transform: g.transform, def: g.def}
	if cfg.Validate != nil {
		out.validate = cfg.Validate
	}
	if cfg.Transform != nil {
		out.transform = cfg.Transform
	}
	return out
}

// Definition returns the guard's full definition.
func (g *Guard) Definition() Definition { return g.def }

// Field returns the sub-definition at key for schema-shaped guards.
func (g *Guard) Field(key string) (TypeDefinition, bool) {
	sd, ok := g.def.Schema()
	if !ok {
		return nil, false
	}
	return sd.Get(key)
}

// IsGuard reports whether v is a type guard.
func IsGuard(v any) (*Guard, bool) {
	g, ok := v.(*Guard)
	return g, ok && g != nil
}

// IsSchemaGuard reports whether v is a schema-shaped type guard.
func IsSchemaGuard(v any) (*Guard, bool) {
	g, ok := IsGuard(v)
	if !ok || !g.def.IsSchema() {
		return nil, false
	}
	return g, true
}

// IsPlainObject reports whether v is a plain key/value mapping as opposed to
// an opaque instance. Engine values use map[string]any canonically.
func IsPlainObject(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}
