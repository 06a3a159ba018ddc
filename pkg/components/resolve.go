package components

// Props is the raw caller-supplied configuration for a button, snapshotted
// once per update cycle. Pointer fields are tri-state: nil means "unset" and
// defers to the ambient scope.
type Props struct {
	Type    LegacyType
	Danger  bool
	Color   Color
	Variant Variant
	Shape   Shape
	Size    Size

	Disabled        *bool
	AutoInsertSpace *bool

	Icon         Icon
	IconPosition IconPosition

	Ghost     bool
	Block     bool
	Href      string
	AutoFocus bool
}

// Resolved is the canonical appearance tuple computed from Props and an
// Ambient scope. Color and variant are always both defined after resolution.
type Resolved struct {
	Color    Color
	Variant  Variant
	Shape    Shape
	Size     Size
	Disabled bool
}

// Dangerous reports whether the resolved color is the danger sentinel.
func (r Resolved) Dangerous() bool {
	return r.Color == ColorDanger
}

// legacyAppearance maps a legacy type onto its (color, variant) pair.
var legacyAppearance = map[LegacyType]struct {
	color   Color
	variant Variant
}{
	TypeDefault: {ColorDefault, VariantOutlined},
	TypePrimary: {ColorPrimary, VariantSolid},
	TypeDashed:  {ColorDefault, VariantDashed},
	TypeLink:    {ColorLink, VariantLink},
	TypeText:    {ColorDefault, VariantText},
}

// Resolve merges raw props with the ambient scope into one canonical
// appearance tuple. It is pure and total: every input combination produces a
// value, and exactly one color/variant rule fires.
//
// Rule order:
//  1. explicit color and variant, used verbatim
//  2. legacy type or danger flag, mapped through the legacy table
//  3. ambient default color and variant, when both are present
//  4. (default, outlined)
func Resolve(props Props, ambient Ambient) Resolved {
	var color Color
	var variant Variant

	switch {
	case props.Color != ColorUnset && props.Variant != VariantUnset:
		color = props.Color
		variant = props.Variant

	case props.Type != TypeUnset || props.Danger:
		legacyType := props.Type
		if legacyType == TypeUnset {
			legacyType = TypeDefault
		}
		mapped := legacyAppearance[legacyType]
		color = mapped.color
		variant = mapped.variant
		if props.Danger {
			// The danger flag overrides the color only; the variant
			// stays whatever the legacy type mapped to.
			color = ColorDanger
		}

	case ambient.Color != ColorUnset && ambient.Variant != VariantUnset:
		color = ambient.Color
		variant = ambient.Variant

	default:
		color = ColorDefault
		variant = VariantOutlined
	}

	shape := props.Shape
	if shape == ShapeUnset {
		shape = ambient.Shape
	}
	if shape == ShapeUnset {
		shape = ShapeDefault
	}

	size := props.Size
	if size == SizeUnset {
		size = ambient.CompactSize
	}
	if size == SizeUnset {
		size = ambient.GroupSize
	}
	if size == SizeUnset {
		size = ambient.Size
	}

	disabled := false
	switch {
	case props.Disabled != nil:
		disabled = *props.Disabled
	case ambient.Disabled != nil:
		disabled = *ambient.Disabled
	}

	return Resolved{
		Color:    color,
		Variant:  variant,
		Shape:    shape,
		Size:     size,
		Disabled: disabled,
	}
}

// lintProps surfaces advisory warnings for discouraged usage combinations.
// Warnings never alter behavior or block rendering.
func lintProps(props Props, resolved Resolved, sink Diagnostics) {
	if sink == nil {
		return
	}

	if glyph, ok := props.Icon.(GlyphIcon); ok && glyph.runeCount() <= 2 {
		sink.Warnf("button icon %q is a bare glyph string; prefer a composed icon component", string(glyph))
	}

	if props.Ghost && resolved.Variant.Unbordered() {
		sink.Warnf("ghost has no effect on the %s variant; it needs a bordered surface", resolved.Variant)
	}
}
