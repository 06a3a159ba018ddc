package components

import "fmt"

// Color is the semantic color slot of a button. The zero value means "unset"
// so the resolver can distinguish an explicit choice from an absent one.
type Color int

const (
	ColorUnset Color = iota
	ColorDefault
	ColorPrimary
	ColorDanger
	ColorLink
)

// String returns the stable token exposed to the style engine.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorPrimary:
		return "primary"
	case ColorDanger:
		return "danger"
	case ColorLink:
		return "link"
	default:
		return ""
	}
}

// ParseColor converts a configuration token into a Color.
// The empty string maps to ColorUnset.
func ParseColor(s string) (Color, error) {
	switch s {
	case "":
		return ColorUnset, nil
	case "default":
		return ColorDefault, nil
	case "primary":
		return ColorPrimary, nil
	case "danger":
		return ColorDanger, nil
	case "link":
		return ColorLink, nil
	default:
		return ColorUnset, fmt.Errorf("unknown color %q", s)
	}
}

// Variant is the surface treatment of a button.
type Variant int

const (
	VariantUnset Variant = iota
	VariantSolid
	VariantOutlined
	VariantDashed
	VariantText
	VariantLink
)

// String returns the stable token exposed to the style engine.
func (v Variant) String() string {
	switch v {
	case VariantSolid:
		return "solid"
	case VariantOutlined:
		return "outlined"
	case VariantDashed:
		return "dashed"
	case VariantText:
		return "text"
	case VariantLink:
		return "link"
	default:
		return ""
	}
}

// Unbordered reports whether the variant renders without a perceptible
// surface. Unbordered variants cannot host ghost treatments or press
// feedback, and they opt out of ideograph spacing.
func (v Variant) Unbordered() bool {
	return v == VariantText || v == VariantLink
}

// ParseVariant converts a configuration token into a Variant.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "":
		return VariantUnset, nil
	case "solid":
		return VariantSolid, nil
	case "outlined":
		return VariantOutlined, nil
	case "dashed":
		return VariantDashed, nil
	case "text":
		return VariantText, nil
	case "link":
		return VariantLink, nil
	default:
		return VariantUnset, fmt.Errorf("unknown variant %q", s)
	}
}

// Shape selects the outline geometry of a button.
type Shape int

const (
	ShapeUnset Shape = iota
	ShapeDefault
	ShapeRound
	ShapeCircle
)

// String returns the stable token exposed to the style engine.
func (s Shape) String() string {
	switch s {
	case ShapeDefault:
		return "default"
	case ShapeRound:
		return "round"
	case ShapeCircle:
		return "circle"
	default:
		return ""
	}
}

// ParseShape converts a configuration token into a Shape.
func ParseShape(s string) (Shape, error) {
	switch s {
	case "":
		return ShapeUnset, nil
	case "default":
		return ShapeDefault, nil
	case "round":
		return ShapeRound, nil
	case "circle":
		return ShapeCircle, nil
	default:
		return ShapeUnset, fmt.Errorf("unknown shape %q", s)
	}
}

// Size selects the control size. SizeUnset means "intrinsic", which renders
// identically to SizeMedium but carries no size suffix.
type Size int

const (
	SizeUnset Size = iota
	SizeSmall
	SizeMedium
	SizeLarge
)

// String returns the configuration token for the size.
func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	default:
		return ""
	}
}

// Suffix returns the size suffix exposed to the style engine. Medium and
// unset sizes carry no suffix.
func (s Size) Suffix() string {
	switch s {
	case SizeSmall:
		return "sm"
	case SizeLarge:
		return "lg"
	default:
		return ""
	}
}

// ParseSize converts a configuration token into a Size.
func ParseSize(s string) (Size, error) {
	switch s {
	case "":
		return SizeUnset, nil
	case "small":
		return SizeSmall, nil
	case "medium":
		return SizeMedium, nil
	case "large":
		return SizeLarge, nil
	default:
		return SizeUnset, fmt.Errorf("unknown size %q", s)
	}
}

// LegacyType is the pre-appearance-pair way of selecting a button look.
// It remains supported for compatibility and is mapped onto a (Color,
// Variant) pair by the resolver.
type LegacyType int

const (
	TypeUnset LegacyType = iota
	TypeDefault
	TypePrimary
	TypeDashed
	TypeLink
	TypeText
)

// String returns the configuration token for the legacy type.
func (t LegacyType) String() string {
	switch t {
	case TypeDefault:
		return "default"
	case TypePrimary:
		return "primary"
	case TypeDashed:
		return "dashed"
	case TypeLink:
		return "link"
	case TypeText:
		return "text"
	default:
		return ""
	}
}

// ParseLegacyType converts a configuration token into a LegacyType.
func ParseLegacyType(s string) (LegacyType, error) {
	switch s {
	case "":
		return TypeUnset, nil
	case "default":
		return TypeDefault, nil
	case "primary":
		return TypePrimary, nil
	case "dashed":
		return TypeDashed, nil
	case "link":
		return TypeLink, nil
	case "text":
		return TypeText, nil
	default:
		return TypeUnset, fmt.Errorf("unknown button type %q", s)
	}
}

// IconPosition places the icon relative to the label.
type IconPosition int

const (
	IconStart IconPosition = iota
	IconEnd
)

// Direction is the layout direction inherited from the ambient scope.
type Direction int

const (
	DirectionLTR Direction = iota
	DirectionRTL
)

// StyleKey is the closed vocabulary handed to the style engine. Every field
// is a resolved enum or flag; no optional or conflicting inputs survive to
// this point.
type StyleKey struct {
	Color     Color
	Variant   Variant
	Shape     Shape
	Size      Size
	Dangerous bool
	Loading   bool
	Block     bool
	IconEnd   bool
	RTL       bool
}
