package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Renderable is any element that can render itself to a string.
type Renderable interface {
	View() string
}

// BaseComponent provides common functionality for all components.
// Embed this in your component structs to get standard behavior.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// StyleStrategy defines how styling should be applied to a component.
// This abstraction allows for composable, testable styling logic.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc is a function that applies styling transformations to a
// lipgloss.Style using data from a Theme.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent creates a new base component with default styling.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle returns the computed style for this component using the provided theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetStrategy replaces the style strategy.
func (b *BaseComponent) SetStrategy(strategy StyleStrategy) {
	b.strategy = strategy
}

// SetAppliers sets the style strategy from style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends additional style appliers to the existing strategy.
// If the current strategy is not a CompositeStrategy, it wraps the existing
// strategy and appends the new appliers, preserving any custom strategy logic.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		newFuncs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(newFuncs, existing.funcs)
		newFuncs = append(newFuncs, appliers...)
		b.strategy = CompositeStrategy{funcs: newFuncs}
	} else {
		currentStrategy := b.strategy
		wrapper := func(base lipgloss.Style, theme Theme) lipgloss.Style {
			if currentStrategy != nil {
				base = currentStrategy.Apply(base, theme)
			}
			for _, applier := range appliers {
				base = applier(base, theme)
			}
			return base
		}
		b.strategy = NewCompositeStrategy(wrapper)
	}
}

// Diagnostics receives developer-facing advisory warnings emitted by the
// resolution layer. Warnings never alter behavior; they surface discouraged
// usage combinations during development.
type Diagnostics interface {
	Warnf(format string, args ...any)
}

type nopDiagnostics struct{}

func (nopDiagnostics) Warnf(string, ...any) {}

// RenderContext provides theme, ambient configuration and diagnostics to
// components during rendering. Passing it explicitly eliminates global state
// and keeps sibling instances free to share one Ambient without coordination.
type RenderContext struct {
	Theme       Theme
	Ambient     Ambient
	Diagnostics Diagnostics
	MaxWidth    int
}

// DefaultContext returns a render context with the default theme, no ambient
// defaults and silent diagnostics.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme:       DefaultTheme(),
		Ambient:     Ambient{},
		Diagnostics: nopDiagnostics{},
	}
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithAmbient returns a new context with the specified ambient configuration.
func (r RenderContext) WithAmbient(ambient Ambient) RenderContext {
	r.Ambient = ambient
	return r
}

// WithDiagnostics returns a new context that reports advisory warnings to sink.
func (r RenderContext) WithDiagnostics(sink Diagnostics) RenderContext {
	if sink == nil {
		sink = nopDiagnostics{}
	}
	r.Diagnostics = sink
	return r
}

// WithMaxWidth returns a new context constrained to the given width.
// Block buttons stretch to this width when it is positive.
func (r RenderContext) WithMaxWidth(width int) RenderContext {
	r.MaxWidth = width
	return r
}

func (r RenderContext) diagnostics() Diagnostics {
	if r.Diagnostics == nil {
		return nopDiagnostics{}
	}
	return r.Diagnostics
}
