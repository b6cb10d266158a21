package props

import "github.com/carlosmndzg/ferrum/css"

// LonghandValue pairs a longhand property name with its resolved Value.
// The registry's Build/Initial functions return sequences of these —
// never a bare css.Value — so that a single declaration (e.g. a margin
// shorthand) can expand into several named results at once.
type LonghandValue struct {
	Name  string
	Value css.Value
}

// Def is one property's registration: whether it is inherited by
// default, whether it is a shorthand that expands into other longhands,
// its initial value sequence, and the validator/builder that turns a
// declaration's raw Value sequence into LonghandValues (or nil if the
// declaration is invalid for this property).
type Def struct {
	Name        string
	Inheritable bool
	Shorthand   bool
	Initial     []LonghandValue
	Build       func(values []css.Value) []LonghandValue
}

// Registry is the process-wide, read-only property table. Construct one
// with New(); the zero value is not usable.
type Registry struct {
	defs        map[string]*Def
	order       []string
	inheritable []string
	longhands   []string
}

// New builds the fixed property table. Registration order matches the
// reference implementation's style::properties::PropertyRegistry::new
// exactly (background-color, border-style, border-width, border-color,
// color, display, font-size, font-weight, height, line-height, margin
// and its four sides, padding and its four sides, text-align, width, and
// finally the border shorthand) so
// that iteration order — which the cascade-totality test depends on
// being deterministic — matches bit for bit.
func New() *Registry {
	r := &Registry{defs: make(map[string]*Def)}

	r.register(backgroundColorDef())
	r.register(borderStyleDef())
	r.register(borderWidthDef())
	r.register(borderColorDef())
	r.register(colorDef())
	r.register(displayDef())
	r.register(fontSizeDef())
	r.register(fontWeightDef())
	r.register(heightDef())
	r.register(lineHeightDef())
	r.register(marginShorthandDef())
	r.register(sideDef("margin-top", false, marginWidth, css.DimensionValue(0, css.UnitPx)))
	r.register(sideDef("margin-right", false, marginWidth, css.DimensionValue(0, css.UnitPx)))
	r.register(sideDef("margin-bottom", false, marginWidth, css.DimensionValue(0, css.UnitPx)))
	r.register(sideDef("margin-left", false, marginWidth, css.DimensionValue(0, css.UnitPx)))
	r.register(paddingShorthandDef())
	r.register(sideDef("padding-top", false, paddingWidth, css.DimensionValue(0, css.UnitPx)))
	r.register(sideDef("padding-right", false, paddingWidth, css.DimensionValue(0, css.UnitPx)))
	r.register(sideDef("padding-bottom", false, paddingWidth, css.DimensionValue(0, css.UnitPx)))
	r.register(sideDef("padding-left", false, paddingWidth, css.DimensionValue(0, css.UnitPx)))
	r.register(textAlignDef())
	r.register(widthDef())
	r.register(borderShorthandDef())

	return r
}

func (r *Registry) register(d *Def) {
	r.defs[d.Name] = d
	r.order = append(r.order, d.Name)
	if d.Inheritable {
		r.inheritable = append(r.inheritable, d.Name)
	}
	if !d.Shorthand {
		r.longhands = append(r.longhands, d.Name)
	}
}

// Longhands returns every non-shorthand property name, in registration
// order. This is the registry's "available_properties."
func (r *Registry) Longhands() []string {
	out := make([]string, len(r.longhands))
	copy(out, r.longhands)
	return out
}

// IsInheritable reports whether name is copied from parent to child when
// absent from a styled node's own declarations.
func (r *Registry) IsInheritable(name string) bool {
	d, ok := r.defs[name]
	return ok && d.Inheritable
}

// Create validates and builds the LonghandValues for a declaration's raw
// value sequence. Returns nil if name is unrecognized or the values are
// invalid for it — per spec.md §4.3/§4.4, unknown or invalid
// declarations are silently discarded, never fatal.
func (r *Registry) Create(name string, values []css.Value) []LonghandValue {
	d, ok := r.defs[name]
	if !ok || d.Build == nil {
		return nil
	}
	return d.Build(values)
}

// InitialValue returns name's registered initial value sequence.
func (r *Registry) InitialValue(name string) []LonghandValue {
	d, ok := r.defs[name]
	if !ok {
		return nil
	}
	return d.Initial
}
