// Package components provides a declarative, theme-aware button kit for terminal applications.
//
// # Overview
//
// The package is built around a single interactive control, Button, whose
// behaviour is driven by an explicit state-resolution pipeline rather than by
// scattered conditional defaulting. Raw caller configuration and ambient
// defaults supplied by enclosing scopes are merged by a pure resolver into one
// canonical appearance tuple, which is then projected onto lipgloss styles by
// the theme layer.
//
// # Architecture
//
// The system has four layers:
//
//  1. Theme Layer - Immutable theme definitions (palette, borders, spacing)
//  2. Modifier Layer - StyleFunc transformations that apply theme data to styles
//  3. Resolution Layer - Pure functions merging props with ambient defaults
//  4. Component Layer - Button, Group, PressFeedback and icons that render to strings
//
// # Resolution
//
// Button appearance is resolved once per update from four ordered rules:
// explicit color/variant, the legacy type table, ambient defaults, and a fixed
// fallback. The resolver is total and side effect free:
//
//	resolved := components.Resolve(props, ambient)
//
// # Loading
//
// A small automaton converts a loading specification (off, on, or delayed)
// into a debounced active flag. Delayed activations are returned to the host
// as schedulable transitions so that a bubbletea program can drive them with
// tea.Tick; stale transitions are invalidated by sequence number and never
// fire after teardown.
//
// # Context-Based Rendering
//
// Themes and ambient configuration are passed explicitly through
// RenderContext, eliminating global state:
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme())
//	output := button.ViewWithContext(ctx)
//
// For simple cases, View() uses the default context automatically.
//
// # Type Safety
//
// The package uses typed enums instead of magic strings:
//
//	Color:   ColorDefault, ColorPrimary, ColorDanger, ColorLink
//	Variant: VariantSolid, VariantOutlined, VariantDashed, VariantText, VariantLink
//	Shape:   ShapeDefault, ShapeRound, ShapeCircle
//	Size:    SizeSmall, SizeMedium, SizeLarge
//
// The same vocabulary is exposed to the style engine as a closed StyleKey,
// suitable for deterministic style derivation.
package components
