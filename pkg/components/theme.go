package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ColourSet represents a semantic color set with base, on-base, muted, and
// contrast colors. All colors are adaptive, providing both light and dark
// mode variants.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes the semantic colour slots used by the button kit.
type Palette struct {
	Default ColourSet
	Primary ColourSet
	Danger  ColourSet
	Link    ColourSet
	Surface ColourSet
	Neutral ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
)

const spacingSizeCount = int(SpacingSizeLarge) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores the horizontal padding scale applied per button size.
type SpacingConfig struct {
	Padding spacingTable
}

// VariantRegistry maps resolved appearance pairs to their styling strategies.
// This allows themes to define appearance styling data-driven rather than
// code-driven.
type VariantRegistry struct {
	strategies map[appearanceKey]StyleStrategy
}

type appearanceKey struct {
	color   Color
	variant Variant
}

// NewVariantRegistry creates a new variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{
		strategies: make(map[appearanceKey]StyleStrategy),
	}
}

// Register adds an appearance-to-strategy mapping.
func (vr *VariantRegistry) Register(color Color, variant Variant, strategy StyleStrategy) {
	vr.strategies[appearanceKey{color: color, variant: variant}] = strategy
}

// Get retrieves the strategy for an appearance pair, or nil if not found.
func (vr *VariantRegistry) Get(color Color, variant Variant) StyleStrategy {
	return vr.strategies[appearanceKey{color: color, variant: variant}]
}

// Theme represents an immutable styling theme for the button kit.
// Themes should be created once and reused. All modification operations
// return new theme instances rather than mutating the original.
type Theme struct {
	Palette  Palette
	Borders  BorderSet
	Spacing  SpacingConfig
	Variants *VariantRegistry
}

// Normalize returns a new theme with all fields properly initialized.
// This ensures that partially-specified themes have sensible defaults.
func (t Theme) Normalize() Theme {
	if spacingTableIsZero(t.Spacing.Padding) {
		t.Spacing.Padding = defaultSpacingTable()
	}
	if t.Variants == nil {
		t.Variants = NewVariantRegistry()
		registerAppearances(t.Variants)
	}
	return t
}

func spacingTableIsZero(table spacingTable) bool {
	for _, value := range table {
		if value != 0 {
			return false
		}
	}
	return true
}

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: 1,
		SpacingSizeSmall:      2,
		SpacingSizeMedium:     3,
		SpacingSizeLarge:      4,
	}
}

// DefaultTheme returns the default theme for the button kit.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Default: ColourSet{
			Base:     ac("#f9fafb", "#1f2937"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#d1d5db", "#374151"),
			Contrast: ac("#3b82f6", "#60a5fa"),
		},
		Primary: ColourSet{
			Base:     ac("#3b82f6", "#60a5fa"),
			OnBase:   ac("#f8fafc", "#0b1120"),
			Muted:    ac("#2563eb", "#1d4ed8"),
			Contrast: ac("#facc15", "#ca8a04"),
		},
		Danger: ColourSet{
			Base:     ac("#ef4444", "#f87171"),
			OnBase:   ac("#fef2f2", "#450a0a"),
			Muted:    ac("#dc2626", "#b91c1c"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Link: ColourSet{
			Base:     ac("#2563eb", "#93c5fd"),
			OnBase:   ac("#eff6ff", "#0b1120"),
			Muted:    ac("#1d4ed8", "#3b82f6"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Surface: ColourSet{
			Base:     ac("#f9fafb", "#111827"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#e2e8f0", "#1f2937"),
			Contrast: ac("#3b82f6", "#60a5fa"),
		},
		Neutral: ColourSet{
			Base:     ac("#64748b", "#94a3b8"),
			OnBase:   ac("#f1f5f9", "#0f172a"),
			Muted:    ac("#475569", "#334155"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
	}

	borders := BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}

	variants := NewVariantRegistry()
	registerAppearances(variants)

	theme := Theme{
		Palette:  palette,
		Borders:  borders,
		Spacing:  SpacingConfig{Padding: defaultSpacingTable()},
		Variants: variants,
	}

	return theme.Normalize()
}

// DarkTheme returns a dark theme variant.
func DarkTheme() Theme {
	theme := DefaultTheme()

	theme.Palette.Surface = ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#111827", Dark: "#0b1120"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#f9fafb", Dark: "#e5e7eb"},
		Muted:    lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#111827"},
		Contrast: lipgloss.AdaptiveColor{Light: "#3b82f6", Dark: "#60a5fa"},
	}

	theme.Palette.Default = ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#111827"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#e5e7eb"},
		Muted:    lipgloss.AdaptiveColor{Light: "#374151", Dark: "#1f2937"},
		Contrast: lipgloss.AdaptiveColor{Light: "#60a5fa", Dark: "#60a5fa"},
	}

	theme.Variants = NewVariantRegistry()
	registerAppearances(theme.Variants)

	return theme.Normalize()
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

// Predefined semantic palette slots for type-safe theme access.
var (
	PaletteDefault PaletteSlot = func(p Palette) ColourSet { return p.Default }
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteLink    PaletteSlot = func(p Palette) ColourSet { return p.Link }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// slotFor maps a resolved color onto its palette slot.
func slotFor(color Color) PaletteSlot {
	switch color {
	case ColorPrimary:
		return PalettePrimary
	case ColorDanger:
		return PaletteDanger
	case ColorLink:
		return PaletteLink
	default:
		return PaletteDefault
	}
}

// Fluent modifier functions

// Background applies a semantic background colour and matching foreground for
// optimal contrast.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Foreground(cs.Base)
	}
}

// OutlineBorder applies a normal border tinted with the slot's base colour.
func OutlineBorder(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Border(theme.Borders.Normal).BorderForeground(cs.Base)
	}
}

// DashedBorder approximates a dashed outline with the normal border drawn
// faint. Terminal cells cannot draw true dashes, so the tint carries the
// distinction.
func DashedBorder(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Border(theme.Borders.Normal).BorderForeground(cs.Muted)
	}
}

// Underlined renders link-like text.
func Underlined() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Underline(true)
	}
}

// PaddingX applies horizontal padding from the theme's spacing scale.
func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}

// registerAppearances populates the appearance strategies for every
// (color, variant) pair the resolver can produce.
func registerAppearances(registry *VariantRegistry) {
	colors := []Color{ColorDefault, ColorPrimary, ColorDanger, ColorLink}
	for _, color := range colors {
		slot := slotFor(color)
		registry.Register(color, VariantSolid, NewCompositeStrategy(
			Background(slot),
			PaddingX(SpacingSizeMedium),
		))
		registry.Register(color, VariantOutlined, NewCompositeStrategy(
			Foreground(slot),
			OutlineBorder(slot),
			PaddingX(SpacingSizeMedium),
		))
		registry.Register(color, VariantDashed, NewCompositeStrategy(
			Foreground(slot),
			DashedBorder(slot),
			PaddingX(SpacingSizeMedium),
		))
		registry.Register(color, VariantText, NewCompositeStrategy(
			Foreground(slot),
			PaddingX(SpacingSizeExtraSmall),
		))
		registry.Register(color, VariantLink, NewCompositeStrategy(
			Foreground(slot),
			Underlined(),
			PaddingX(SpacingSizeExtraSmall),
		))
	}
}

// StyleFor derives the lipgloss style for a resolved style key. The mapping
// is deterministic: identical keys always produce identical styles for a
// given theme.
func StyleFor(theme Theme, key StyleKey) lipgloss.Style {
	return styleOver(lipgloss.NewStyle(), theme, key)
}

// styleOver layers the key's appearance onto an existing base style.
func styleOver(base lipgloss.Style, theme Theme, key StyleKey) lipgloss.Style {
	style := base

	if strategy := theme.Variants.Get(key.Color, key.Variant); strategy != nil {
		style = strategy.Apply(style, theme)
	}

	switch key.Shape {
	case ShapeRound, ShapeCircle:
		if !key.Variant.Unbordered() && key.Variant != VariantSolid {
			style = style.Border(theme.Borders.Rounded)
			style = style.BorderForeground(slotFor(key.Color)(theme.Palette).Base)
		}
	}

	switch key.Size {
	case SizeSmall:
		style = style.PaddingLeft(spacingLookup(theme.Spacing.Padding, SpacingSizeSmall)).
			PaddingRight(spacingLookup(theme.Spacing.Padding, SpacingSizeSmall))
	case SizeLarge:
		style = style.PaddingLeft(spacingLookup(theme.Spacing.Padding, SpacingSizeLarge)).
			PaddingRight(spacingLookup(theme.Spacing.Padding, SpacingSizeLarge))
	}

	if key.Loading {
		style = style.Faint(true)
	}

	return style
}
