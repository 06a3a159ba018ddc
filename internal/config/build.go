package config

import (
	"time"

	"github.com/lumenui/lumen/pkg/components"
)

// BuildTheme returns the theme named by the configuration.
func (c *GalleryConfig) BuildTheme() components.Theme {
	if c.Theme == "dark" {
		return components.DarkTheme()
	}
	return components.DefaultTheme()
}

// BuildAmbient converts the gallery-level defaults into an ambient scope for
// the button kit. It assumes the configuration passed validation; unknown
// tokens are still reported rather than silently dropped.
func (c *GalleryConfig) BuildAmbient() (components.Ambient, error) {
	var ambient components.Ambient

	shape, err := components.ParseShape(c.Shape)
	if err != nil {
		return ambient, err
	}
	color, err := components.ParseColor(c.Color)
	if err != nil {
		return ambient, err
	}
	variant, err := components.ParseVariant(c.Variant)
	if err != nil {
		return ambient, err
	}
	size, err := components.ParseSize(c.Size)
	if err != nil {
		return ambient, err
	}

	ambient.Shape = shape
	ambient.Color = color
	ambient.Variant = variant
	ambient.Size = size
	ambient.Disabled = c.Disabled
	ambient.AutoInsertSpace = c.AutoInsertSpace
	if c.Direction == "rtl" {
		ambient.Direction = components.DirectionRTL
	}

	return ambient, nil
}

// Build converts a button entry into a configured component. The returned
// activation is non-nil when the entry requests delayed loading; the caller
// must schedule it.
func (b ButtonConfig) Build() (*components.Button, *components.DelayedActivation, error) {
	var button *components.Button
	if b.Label != "" {
		button = components.NewButton(b.Label)
	} else {
		button = components.NewButton()
	}

	legacyType, err := components.ParseLegacyType(b.Type)
	if err != nil {
		return nil, nil, err
	}
	color, err := components.ParseColor(b.Color)
	if err != nil {
		return nil, nil, err
	}
	variant, err := components.ParseVariant(b.Variant)
	if err != nil {
		return nil, nil, err
	}
	shape, err := components.ParseShape(b.Shape)
	if err != nil {
		return nil, nil, err
	}
	size, err := components.ParseSize(b.Size)
	if err != nil {
		return nil, nil, err
	}

	button.WithType(legacyType).
		WithColor(color).
		WithVariant(variant).
		WithShape(shape).
		WithSize(size).
		WithDanger(b.Danger).
		WithGhost(b.Ghost).
		WithBlock(b.Block).
		WithHref(b.Href).
		WithAutoFocus(b.AutoFocus)

	if b.Disabled != nil {
		button.WithDisabled(*b.Disabled)
	}
	if b.AutoInsertSpace != nil {
		button.WithAutoInsertSpace(*b.AutoInsertSpace)
	}
	if b.Icon != "" {
		button.WithIcon(components.GlyphIcon(b.Icon))
	}
	if b.IconPosition == "end" {
		button.WithIconPosition(components.IconEnd)
	}

	var activation *components.DelayedActivation
	if b.Loading {
		delay := time.Duration(b.LoadingDelayMS) * time.Millisecond
		activation = button.SetLoading(components.LoadingAfter(delay, nil))
	}

	return button, activation, nil
}
