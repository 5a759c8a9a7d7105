package property

// Kind tags the animated property variant
type Kind uint8

const (
	KindOpacity Kind = iota
	KindTranslateX
	KindTranslateY
	KindPosition
	KindSize
	KindScale
	KindRotation
	KindColor
	KindCustom
	KindAttr
	KindTransform
	KindSet
	KindGroup
	KindFrames
)

// Property is a tagged variant over animatable values
// Leaf variants carry a (From, To) pair; composite variants own children;
// the Frames variant delegates to a keyframe sequence
type Property struct {
	Kind     Kind
	Name     string
	From, To Value
	Children []Property
	Sequence *KeyframeSequence
}

// Interpolator produces the current value of one scalar path at raw progress t
// The engine supplies an implementation that applies easing (optionally
// memoized) or spring physics
type Interpolator func(from, to, t float64) float64

// PropertyValue is one resolved property output for a tick
type PropertyValue struct {
	Name     string
	Category Category
	Value    Value
}

// --- Constructors ---

// Opacity animates a scalar opacity from -> to
func Opacity(from, to float64) Property {
	return scalarProp(KindOpacity, "opacity", from, to)
}

// TranslateX animates the horizontal offset
func TranslateX(from, to float64) Property {
	return scalarProp(KindTranslateX, "translate-x", from, to)
}

// TranslateY animates the vertical offset
func TranslateY(from, to float64) Property {
	return scalarProp(KindTranslateY, "translate-y", from, to)
}

// Position animates a 2D position
func Position(from, to Pair) Property {
	return Property{Kind: KindPosition, Name: "position", From: from, To: to}
}

// Size animates a 2D size
func Size(from, to Pair) Property {
	return Property{Kind: KindSize, Name: "size", From: from, To: to}
}

// Scale animates a uniform scale factor
func Scale(from, to float64) Property {
	return scalarProp(KindScale, "scale", from, to)
}

// Rotation animates an angle
func Rotation(from, to float64) Property {
	return scalarProp(KindRotation, "rotation", from, to)
}

// Color animates between two colors
func Color(from, to RGB) Property {
	return Property{Kind: KindColor, Name: "color", From: from, To: to}
}

// Custom animates a caller-named scalar
func Custom(name string, from, to float64) Property {
	return scalarProp(KindCustom, name, from, to)
}

// Attr animates a CSS-like key/value scalar
func Attr(key string, from, to float64) Property {
	return scalarProp(KindAttr, key, from, to)
}

// Transform groups scale/rotation/translate children into one composite
func Transform(children ...Property) Property {
	return Property{Kind: KindTransform, Name: "transform", Children: children}
}

// Set groups independent properties animated together
func Set(children ...Property) Property {
	return Property{Kind: KindSet, Name: "set", Children: children}
}

// Group nests properties under a composite for shared timing
func Group(children ...Property) Property {
	return Property{Kind: KindGroup, Name: "group", Children: children}
}

// Frames animates through a keyframe sequence instead of a two-point pair
func Frames(seq *KeyframeSequence) Property {
	return Property{Kind: KindFrames, Name: "frames", Sequence: seq}
}

func scalarProp(kind Kind, name string, from, to float64) Property {
	return Property{Kind: kind, Name: name, From: Scalar(from), To: Scalar(to)}
}

// At resolves the property tree at raw progress t using interp for every
// scalar path. Composite variants flatten children in declaration order; the
// keyframe variant applies its own per-segment easing and ignores interp
func (p Property) At(t float64, interp Interpolator) []PropertyValue {
	out := make([]PropertyValue, 0, 1+len(p.Children))
	return p.appendAt(out, t, interp)
}

func (p Property) appendAt(out []PropertyValue, t float64, interp Interpolator) []PropertyValue {
	switch p.Kind {
	case KindTransform, KindSet, KindGroup:
		for _, c := range p.Children {
			out = c.appendAt(out, t, interp)
		}
		return out

	case KindFrames:
		if p.Sequence == nil {
			return out
		}
		return append(out, p.Sequence.InterpolateAt(t)...)

	case KindPosition, KindSize:
		from, okF := p.From.(Pair)
		to, okT := p.To.(Pair)
		if !okF || !okT {
			return out
		}
		v := Pair{
			X: interp(from.X, to.X, t),
			Y: interp(from.Y, to.Y, t),
		}
		return append(out, PropertyValue{Name: p.Name, Category: CategoryFor(p.Name), Value: v})

	case KindColor:
		from, okF := p.From.(RGB)
		to, okT := p.To.(RGB)
		if !okF || !okT {
			return out
		}
		// Eased fraction drives the perceptual blend
		frac := interp(0, 1, t)
		return append(out, PropertyValue{Name: p.Name, Category: CategoryColor, Value: from.Lerp(to, frac)})

	default:
		from, okF := p.From.(Scalar)
		to, okT := p.To.(Scalar)
		if !okF || !okT {
			return out
		}
		v := Scalar(interp(float64(from), float64(to), t))
		return append(out, PropertyValue{Name: p.Name, Category: CategoryFor(p.Name), Value: v})
	}
}
