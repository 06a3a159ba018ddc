package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PressKind is the nominal kind of a forwarded press event, matching the
// resolved render target.
type PressKind int

const (
	// PressAction is a press on an action-semantics button.
	PressAction PressKind = iota
	// PressLink is a press on a link-semantics button.
	PressLink
)

// PressEvent is the normalized payload forwarded to a button's handler.
type PressEvent struct {
	Kind PressKind
	Href string
}

// Button is an interactive control whose appearance and behavior are
// resolved each update cycle from its props and the ambient scope.
type Button struct {
	BaseComponent

	props    Props
	children []any
	handler  func(PressEvent)

	loading   Loading
	automaton loadingAutomaton
	spinner   *SpinnerIcon
	feedback  PressFeedback

	// lastAmbient is the scope seen on the most recent render; the click
	// gate resolves against it so ambient disabling is honored between
	// renders.
	lastAmbient Ambient

	mounted bool
	focused bool
}

// NewButton creates a button with the given children. Nil children are
// dropped; any other value, including a numeric zero, counts as content.
func NewButton(children ...any) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		children:      normalizeChildren(children),
	}
}

// Fluent configuration

// WithType sets the legacy type, which the resolver maps onto a color and
// variant pair when no explicit pair is given.
func (b *Button) WithType(t LegacyType) *Button {
	b.props.Type = t
	return b
}

// WithDanger marks the button dangerous, overriding the resolved color.
func (b *Button) WithDanger(danger bool) *Button {
	b.props.Danger = danger
	return b
}

// WithColor sets the explicit color. It only takes effect together with an
// explicit variant.
func (b *Button) WithColor(color Color) *Button {
	b.props.Color = color
	return b
}

// WithVariant sets the explicit variant. It only takes effect together with
// an explicit color.
func (b *Button) WithVariant(variant Variant) *Button {
	b.props.Variant = variant
	return b
}

// WithShape sets the button shape.
func (b *Button) WithShape(shape Shape) *Button {
	b.props.Shape = shape
	return b
}

// WithSize sets the button size.
func (b *Button) WithSize(size Size) *Button {
	b.props.Size = size
	return b
}

// WithDisabled sets the disabled state explicitly. Buttons that never call
// this inherit the ambient disabled flag.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.props.Disabled = &disabled
	return b
}

// WithGhost requests the ghost treatment. Ghost needs a bordered surface;
// combining it with text or link variants surfaces an advisory warning.
func (b *Button) WithGhost(ghost bool) *Button {
	b.props.Ghost = ghost
	return b
}

// WithBlock stretches the button to the context's maximum width.
func (b *Button) WithBlock(block bool) *Button {
	b.props.Block = block
	return b
}

// WithHref gives the button link semantics.
func (b *Button) WithHref(href string) *Button {
	b.props.Href = href
	return b
}

// WithIcon sets the button icon.
func (b *Button) WithIcon(icon Icon) *Button {
	b.props.Icon = icon
	return b
}

// WithIconPosition places the icon before or after the label.
func (b *Button) WithIconPosition(position IconPosition) *Button {
	b.props.IconPosition = position
	return b
}

// WithAutoInsertSpace overrides the ambient ideograph-spacing setting.
func (b *Button) WithAutoInsertSpace(enabled bool) *Button {
	b.props.AutoInsertSpace = &enabled
	return b
}

// WithAutoFocus requests initial focus from the hosting program.
func (b *Button) WithAutoFocus(autoFocus bool) *Button {
	b.props.AutoFocus = autoFocus
	return b
}

// WithStyle sets the raw lipgloss style applied after theme styling.
func (b *Button) WithStyle(style lipgloss.Style) *Button {
	b.SetStyle(style)
	return b
}

// WithAppliers applies theme-based style modifiers after the resolved
// appearance strategy.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// OnPress installs the press handler.
func (b *Button) OnPress(handler func(PressEvent)) *Button {
	b.handler = handler
	return b
}

// SetChildren replaces the button's content.
func (b *Button) SetChildren(children ...any) *Button {
	b.children = normalizeChildren(children)
	return b
}

// Props returns a snapshot of the raw configuration.
func (b *Button) Props() Props {
	return b.props
}

// Children returns the button's content values.
func (b *Button) Children() []any {
	return b.children
}

// AutoFocus reports whether the button requested initial focus.
func (b *Button) AutoFocus() bool {
	return b.props.AutoFocus
}

// Focus / blur, managed by the hosting program.

// Focus marks the button focused.
func (b *Button) Focus() { b.focused = true }

// Blur removes focus.
func (b *Button) Blur() { b.focused = false }

// Focused reports the focus state.
func (b *Button) Focused() bool { return b.focused }

// Loading control

// SetLoading applies a new loading specification. Any pending delayed
// activation from the previous specification is invalidated. When the
// returned value is non-nil the host must schedule it and call
// ActivateLoading with its sequence once the delay elapses.
func (b *Button) SetLoading(spec Loading) *DelayedActivation {
	b.loading = spec
	return b.automaton.Apply(spec)
}

// ActivateLoading completes a delayed activation. Stale sequences are
// ignored; the return value reports whether the loading state changed.
func (b *Button) ActivateLoading(seq uint64) bool {
	return b.automaton.Fire(seq)
}

// CancelLoading aborts any pending delayed activation.
func (b *Button) CancelLoading() {
	b.automaton.Cancel()
}

// Teardown releases the button's temporal state. Pending activations can
// never fire afterwards.
func (b *Button) Teardown() {
	b.automaton.Teardown()
}

// LoadingActive reports whether the loading indicator is currently shown.
func (b *Button) LoadingActive() bool {
	return b.automaton.Active()
}

// LoadingPhase returns the loading automaton's phase.
func (b *Button) LoadingPhase() LoadingPhase {
	return b.automaton.Phase()
}

// ActivationCmd converts a delayed activation into a bubbletea command that
// delivers a LoadingActivatedMsg for this button when the delay elapses.
func (b *Button) ActivationCmd(activation *DelayedActivation) tea.Cmd {
	if activation == nil {
		return nil
	}
	seq := activation.Seq
	return tea.Tick(activation.After, func(time.Time) tea.Msg {
		return LoadingActivatedMsg{Button: b, Seq: seq}
	})
}

// LoadingActivatedMsg reports that a button's delayed loading activation
// came due. The receiver must route it back via ActivateLoading.
type LoadingActivatedMsg struct {
	Button *Button
	Seq    uint64
}

// SpinnerTick returns the command that animates the default loading
// spinner, or nil when the spinner is not in use.
func (b *Button) SpinnerTick() tea.Cmd {
	if b.spinner == nil {
		return nil
	}
	return b.spinner.Tick()
}

// UpdateSpinner advances the default loading spinner.
func (b *Button) UpdateSpinner(msg spinner.TickMsg) tea.Cmd {
	if b.spinner == nil {
		return nil
	}
	return b.spinner.Update(msg)
}

// Feedback exposes the press-feedback wrapper so hosts can clear the flash
// after a short interval.
func (b *Button) Feedback() *PressFeedback {
	return &b.feedback
}

// Press runs the click gate. When the button is loading or resolves to
// disabled, the press is fully suppressed: the handler is not invoked and,
// for link-semantics buttons, no navigation must be performed by the host.
// Otherwise the handler runs exactly once with the normalized event and
// Press reports true.
func (b *Button) Press() bool {
	resolved := Resolve(b.props, b.lastAmbient)
	if b.automaton.Active() || resolved.Disabled {
		return false
	}

	if !resolved.Variant.Unbordered() {
		b.feedback.Trigger()
	}

	event := PressEvent{Kind: PressAction}
	if b.props.Href != "" {
		event = PressEvent{Kind: PressLink, Href: b.props.Href}
	}
	if b.handler != nil {
		b.handler(event)
	}
	return true
}

// Resolve computes the canonical appearance tuple against an ambient scope.
func (b *Button) Resolve(ambient Ambient) Resolved {
	return Resolve(b.props, ambient)
}

// StyleKey exposes the resolved enum values as the closed vocabulary
// consumed by the style engine.
func (b *Button) StyleKey(ambient Ambient) StyleKey {
	resolved := Resolve(b.props, ambient)
	return StyleKey{
		Color:     resolved.Color,
		Variant:   resolved.Variant,
		Shape:     resolved.Shape,
		Size:      resolved.Size,
		Dangerous: resolved.Dangerous(),
		Loading:   b.automaton.Active(),
		Block:     b.props.Block,
		IconEnd:   b.props.IconPosition == IconEnd,
		RTL:       ambient.Direction == DirectionRTL,
	}
}

// Decide computes the render decision for the current cycle without
// rendering.
func (b *Button) Decide(ctx RenderContext) RenderDecision {
	resolved := Resolve(b.props, ctx.Ambient)
	view := LoadingView{
		Active:       b.automaton.Active(),
		Spec:         b.loading,
		InitialMount: !b.mounted,
	}
	return Decide(resolved, view, b.props, ctx.Ambient, b.children)
}

// View renders the button with the default context.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button: resolve, decide, style, emit.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	b.lastAmbient = ctx.Ambient

	resolved := Resolve(b.props, ctx.Ambient)
	lintProps(b.props, resolved, ctx.diagnostics())

	decision := b.Decide(ctx)
	icon := b.materializeIcon(decision)

	label := b.renderLabel(decision)
	content := b.composeContent(ctx, icon, label, decision)

	style := styleOver(b.ComputeStyle(ctx.Theme), ctx.Theme, b.StyleKey(ctx.Ambient))
	for _, fn := range ctx.Ambient.ButtonAppliers {
		style = fn(style, ctx.Theme)
	}

	if b.props.Ghost && !resolved.Variant.Unbordered() {
		style = style.UnsetBackground()
	}
	if resolved.Disabled {
		style = style.Faint(true)
	}
	if b.focused {
		style = style.Bold(true)
	}
	if b.props.Block && ctx.MaxWidth > 0 {
		style = style.Width(ctx.MaxWidth).Align(lipgloss.Center)
	}

	rendered := style.Render(content)

	if decision.WrapFeedback {
		b.feedback.SetMuted(decision.FeedbackMuted)
		rendered = b.feedback.Wrap(rendered)
	}

	b.mounted = true
	return rendered
}

// materializeIcon turns the decision's icon source into a concrete icon,
// lazily creating the default spinner.
func (b *Button) materializeIcon(decision RenderDecision) Icon {
	switch decision.Source {
	case IconSpinner:
		if b.spinner == nil {
			b.spinner = NewSpinnerIcon()
			b.spinner.static = decision.InitialMount
			b.spinner.replacedIcon = decision.ReplacedIcon
		}
		return b.spinner
	case IconNone:
		return nil
	default:
		return decision.Icon
	}
}

// renderLabel concatenates the children, inserting the ideograph gap when
// the decision calls for it.
func (b *Button) renderLabel(decision RenderDecision) string {
	if len(b.children) == 0 {
		return ""
	}

	if decision.InsertTextSpace {
		runes := []rune(childText(b.children[0]))
		return string(runes[0]) + " " + string(runes[1])
	}

	var sb strings.Builder
	for _, child := range b.children {
		sb.WriteString(childText(child))
	}
	return sb.String()
}

// composeContent lays out icon and label according to icon position and
// layout direction.
func (b *Button) composeContent(ctx RenderContext, icon Icon, label string, decision RenderDecision) string {
	if icon == nil {
		return label
	}

	iconView := icon.ViewWithContext(ctx)
	if len(ctx.Ambient.IconAppliers) > 0 {
		iconStyle := lipgloss.NewStyle()
		for _, fn := range ctx.Ambient.IconAppliers {
			iconStyle = fn(iconStyle, ctx.Theme)
		}
		iconView = iconStyle.Render(iconView)
	}

	if decision.IconOnly {
		return iconView
	}

	iconFirst := b.props.IconPosition == IconStart
	if ctx.Ambient.Direction == DirectionRTL {
		iconFirst = !iconFirst
	}

	if iconFirst {
		return iconView + " " + label
	}
	return label + " " + iconView
}
