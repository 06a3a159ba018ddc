package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(v bool) *bool { return &v }

func TestResolveExplicitPairWins(t *testing.T) {
	props := Props{
		Color:   ColorPrimary,
		Variant: VariantDashed,
		Type:    TypeText,
		Danger:  true,
	}
	ambient := Ambient{Color: ColorLink, Variant: VariantLink}

	resolved := Resolve(props, ambient)

	assert.Equal(t, ColorPrimary, resolved.Color, "explicit color must be used verbatim")
	assert.Equal(t, VariantDashed, resolved.Variant, "explicit variant must be used verbatim")
}

func TestResolveLegacyTable(t *testing.T) {
	tests := []struct {
		name        string
		legacy      LegacyType
		wantColor   Color
		wantVariant Variant
	}{
		{"default", TypeDefault, ColorDefault, VariantOutlined},
		{"primary", TypePrimary, ColorPrimary, VariantSolid},
		{"dashed", TypeDashed, ColorDefault, VariantDashed},
		{"link", TypeLink, ColorLink, VariantLink},
		{"text", TypeText, ColorDefault, VariantText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := Resolve(Props{Type: tt.legacy}, Ambient{})
			assert.Equal(t, tt.wantColor, resolved.Color)
			assert.Equal(t, tt.wantVariant, resolved.Variant)
		})
	}
}

func TestResolveDangerOverridesColorKeepsVariant(t *testing.T) {
	tests := []struct {
		name        string
		legacy      LegacyType
		wantVariant Variant
	}{
		{"primary", TypePrimary, VariantSolid},
		{"dashed", TypeDashed, VariantDashed},
		{"text", TypeText, VariantText},
		{"link", TypeLink, VariantLink},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := Resolve(Props{Type: tt.legacy, Danger: true}, Ambient{})
			assert.Equal(t, ColorDanger, resolved.Color)
			assert.Equal(t, tt.wantVariant, resolved.Variant)
			assert.True(t, resolved.Dangerous())
		})
	}
}

func TestResolveDangerAloneRoutesThroughDefaultType(t *testing.T) {
	// Danger without a type takes the legacy branch with the default
	// type's mapping, so the variant is outlined even though an explicit
	// variant was supplied without a color.
	resolved := Resolve(Props{Danger: true, Variant: VariantText}, Ambient{})

	assert.Equal(t, ColorDanger, resolved.Color)
	assert.Equal(t, VariantOutlined, resolved.Variant)
}

func TestResolveAmbientPairRequiresBoth(t *testing.T) {
	t.Run("both present", func(t *testing.T) {
		resolved := Resolve(Props{}, Ambient{Color: ColorPrimary, Variant: VariantText})
		assert.Equal(t, ColorPrimary, resolved.Color)
		assert.Equal(t, VariantText, resolved.Variant)
	})

	t.Run("color only falls back", func(t *testing.T) {
		resolved := Resolve(Props{}, Ambient{Color: ColorPrimary})
		assert.Equal(t, ColorDefault, resolved.Color)
		assert.Equal(t, VariantOutlined, resolved.Variant)
	})
}

func TestResolveFallback(t *testing.T) {
	resolved := Resolve(Props{}, Ambient{})

	assert.Equal(t, ColorDefault, resolved.Color)
	assert.Equal(t, VariantOutlined, resolved.Variant)
	assert.Equal(t, ShapeDefault, resolved.Shape)
	assert.Equal(t, SizeUnset, resolved.Size)
	assert.False(t, resolved.Disabled)
	assert.False(t, resolved.Dangerous())
}

func TestResolveShapeChain(t *testing.T) {
	assert.Equal(t, ShapeCircle, Resolve(Props{Shape: ShapeCircle}, Ambient{Shape: ShapeRound}).Shape)
	assert.Equal(t, ShapeRound, Resolve(Props{}, Ambient{Shape: ShapeRound}).Shape)
	assert.Equal(t, ShapeDefault, Resolve(Props{}, Ambient{}).Shape)
}

func TestResolveSizeChain(t *testing.T) {
	ambient := Ambient{
		Size:        SizeLarge,
		GroupSize:   SizeMedium,
		CompactSize: SizeSmall,
	}

	assert.Equal(t, SizeLarge, Resolve(Props{Size: SizeLarge}, ambient).Size, "explicit size wins")
	assert.Equal(t, SizeSmall, Resolve(Props{}, ambient).Size, "compact scope beats group scope")

	ambient.CompactSize = SizeUnset
	assert.Equal(t, SizeMedium, Resolve(Props{}, ambient).Size, "group scope beats generic signal")

	ambient.GroupSize = SizeUnset
	assert.Equal(t, SizeLarge, Resolve(Props{}, ambient).Size, "generic signal is last resort")
}

func TestResolveDisabledChain(t *testing.T) {
	assert.False(t, Resolve(Props{Disabled: boolPtr(false)}, Ambient{Disabled: boolPtr(true)}).Disabled,
		"explicit false overrides ambient true")
	assert.True(t, Resolve(Props{Disabled: boolPtr(true)}, Ambient{}).Disabled)
	assert.True(t, Resolve(Props{}, Ambient{Disabled: boolPtr(true)}).Disabled)
	assert.False(t, Resolve(Props{}, Ambient{}).Disabled)
}

func TestResolveIsIdempotent(t *testing.T) {
	props := Props{Type: TypePrimary, Danger: true, Size: SizeSmall}
	ambient := Ambient{Shape: ShapeRound}

	first := Resolve(props, ambient)
	second := Resolve(props, ambient)

	assert.Equal(t, first, second)
}

func TestResolvePrimaryScenario(t *testing.T) {
	resolved := Resolve(Props{Type: TypePrimary}, Ambient{})

	assert.Equal(t, ColorPrimary, resolved.Color)
	assert.Equal(t, VariantSolid, resolved.Variant)
	assert.False(t, resolved.Dangerous())
}

type recordingSink struct {
	messages []string
}

func (r *recordingSink) Warnf(format string, args ...any) {
	r.messages = append(r.messages, format)
}

func TestLintPropsWarnings(t *testing.T) {
	t.Run("bare glyph icon", func(t *testing.T) {
		sink := &recordingSink{}
		props := Props{Icon: GlyphIcon("✓")}
		lintProps(props, Resolve(props, Ambient{}), sink)
		assert.Len(t, sink.messages, 1)
	})

	t.Run("ghost on unbordered variant", func(t *testing.T) {
		sink := &recordingSink{}
		props := Props{Ghost: true, Type: TypeText}
		lintProps(props, Resolve(props, Ambient{}), sink)
		assert.Len(t, sink.messages, 1)
	})

	t.Run("ghost on bordered variant is fine", func(t *testing.T) {
		sink := &recordingSink{}
		props := Props{Ghost: true, Type: TypePrimary}
		lintProps(props, Resolve(props, Ambient{}), sink)
		assert.Empty(t, sink.messages)
	})
}
