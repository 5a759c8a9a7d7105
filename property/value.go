// Package property defines the animatable value model: tagged property
// variants, interpolatable values, and keyframe sequences. Every leaf variant
// resolves to exactly one numeric interpolation path.
package property

// Value is an interpolatable quantity
// Lerp with a mismatched concrete type returns the receiver unchanged
type Value interface {
	Lerp(to Value, t float64) Value
}

// Scalar is a single float64 value (opacity, rotation, custom scalars)
type Scalar float64

// Lerp implements Value
func (s Scalar) Lerp(to Value, t float64) Value {
	o, ok := to.(Scalar)
	if !ok {
		return s
	}
	return s + Scalar(t)*(o-s)
}

// Float unwraps the scalar
func (s Scalar) Float() float64 { return float64(s) }

// Pair is a 2D value (position, size)
type Pair struct {
	X, Y float64
}

// Lerp implements Value
func (p Pair) Lerp(to Value, t float64) Value {
	o, ok := to.(Pair)
	if !ok {
		return p
	}
	return Pair{
		X: p.X + t*(o.X-p.X),
		Y: p.Y + t*(o.Y-p.Y),
	}
}

// Category groups same-tick updates so a renderer can apply many same-typed
// values in one pass
type Category uint8

const (
	CategorySingle Category = iota
	CategoryOpacity
	CategoryPosition
	CategoryColor
	CategoryTransform
)

// String implements fmt.Stringer
func (c Category) String() string {
	switch c {
	case CategoryOpacity:
		return "opacity"
	case CategoryPosition:
		return "position"
	case CategoryColor:
		return "color"
	case CategoryTransform:
		return "transform"
	default:
		return "single"
	}
}

// CategoryFor maps a property name to its batch category
// Unknown names batch as single updates
func CategoryFor(name string) Category {
	switch name {
	case "opacity":
		return CategoryOpacity
	case "position", "size", "translate-x", "translate-y", "x", "y":
		return CategoryPosition
	case "color", "background-color", "foreground-color":
		return CategoryColor
	case "scale", "rotation", "transform":
		return CategoryTransform
	default:
		return CategorySingle
	}
}
