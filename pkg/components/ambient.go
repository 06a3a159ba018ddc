package components

import "github.com/charmbracelet/lipgloss"

// Ambient is the read-only configuration bundle inherited from enclosing
// scopes: provider defaults, group and compact-scope size overrides, and
// style augmentation appliers. The core reads it but never mutates it, so
// one Ambient may be shared by many sibling instances without coordination.
type Ambient struct {
	// Provider defaults. Color and Variant only take effect when both are
	// present; see the resolver's rule order.
	Shape   Shape
	Color   Color
	Variant Variant
	Size    Size

	// Scope overrides. CompactSize wins over GroupSize, which wins over
	// the generic Size signal.
	GroupSize   Size
	CompactSize Size

	Disabled        *bool
	AutoInsertSpace *bool
	Direction       Direction

	// Style augmentation applied after the theme's appearance strategy.
	ButtonAppliers []StyleFunc
	IconAppliers   []StyleFunc
}

// autoInsertSpace resolves the ideograph-spacing setting: explicit prop,
// else ambient default, else enabled.
func (a Ambient) autoInsertSpace(explicit *bool) bool {
	if explicit != nil {
		return *explicit
	}
	if a.AutoInsertSpace != nil {
		return *a.AutoInsertSpace
	}
	return true
}

// ConfigProvider supplies ambient defaults to a subtree of components.
// It is a plain value threaded through RenderContext; there is no implicit
// global lookup.
type ConfigProvider struct {
	ambient Ambient
}

// NewConfigProvider creates a provider carrying the given ambient defaults.
func NewConfigProvider(ambient Ambient) *ConfigProvider {
	return &ConfigProvider{ambient: ambient}
}

// Context returns a render context derived from base with this provider's
// ambient configuration installed.
func (p *ConfigProvider) Context(base RenderContext) RenderContext {
	return base.WithAmbient(p.ambient)
}

// Ambient returns the provider's configuration bundle.
func (p *ConfigProvider) Ambient() Ambient {
	return p.ambient
}

// Group renders a row of buttons that share a size and shape scope.
type Group struct {
	BaseComponent
	buttons []*Button
	size    Size
	shape   Shape
	gap     int
}

// NewGroup creates a button group.
func NewGroup(buttons ...*Button) *Group {
	return &Group{
		BaseComponent: NewBaseComponent(),
		buttons:       buttons,
		gap:           1,
	}
}

// WithSize sets the size inherited by all grouped buttons that do not set
// their own.
func (g *Group) WithSize(size Size) *Group {
	g.size = size
	return g
}

// WithShape sets the shape inherited by all grouped buttons.
func (g *Group) WithShape(shape Shape) *Group {
	g.shape = shape
	return g
}

// WithGap sets the spacing between grouped buttons.
func (g *Group) WithGap(gap int) *Group {
	if gap < 0 {
		gap = 0
	}
	g.gap = gap
	return g
}

// Buttons returns the grouped buttons.
func (g *Group) Buttons() []*Button {
	return g.buttons
}

// View renders the group with the default context.
func (g *Group) View() string {
	return g.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the group, injecting its scope into the ambient
// configuration seen by each member.
func (g *Group) ViewWithContext(ctx RenderContext) string {
	scoped := ctx.Ambient
	if g.size != SizeUnset {
		scoped.GroupSize = g.size
	}
	if g.shape != ShapeUnset && scoped.Shape == ShapeUnset {
		scoped.Shape = g.shape
	}
	memberCtx := ctx.WithAmbient(scoped)

	views := make([]string, 0, len(g.buttons)*2)
	spacer := lipgloss.NewStyle().Width(g.gap).Render("")
	for i, button := range g.buttons {
		if i > 0 && g.gap > 0 {
			views = append(views, spacer)
		}
		views = append(views, button.ViewWithContext(memberCtx))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, views...)
}

// CompactGroup renders buttons under a compact size scope, which takes
// precedence over a surrounding Group's size.
type CompactGroup struct {
	BaseComponent
	buttons []*Button
	size    Size
}

// NewCompactGroup creates a compact group. When size is unset the compact
// scope defaults to small.
func NewCompactGroup(buttons ...*Button) *CompactGroup {
	return &CompactGroup{
		BaseComponent: NewBaseComponent(),
		buttons:       buttons,
		size:          SizeSmall,
	}
}

// WithSize overrides the compact scope size.
func (c *CompactGroup) WithSize(size Size) *CompactGroup {
	c.size = size
	return c
}

// View renders the compact group with the default context.
func (c *CompactGroup) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the compact group with its size scope installed.
func (c *CompactGroup) ViewWithContext(ctx RenderContext) string {
	scoped := ctx.Ambient
	scoped.CompactSize = c.size
	memberCtx := ctx.WithAmbient(scoped)

	views := make([]string, len(c.buttons))
	for i, button := range c.buttons {
		views[i] = button.ViewWithContext(memberCtx)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, views...)
}
