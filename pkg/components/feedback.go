package components

import "github.com/charmbracelet/lipgloss"

// PressFeedback is the click-feedback effect wrapper: a brief reverse-video
// flash applied around a button's rendered output. The decision engine
// selects it for bordered variants only; unbordered variants render without
// a perceptible surface, so the effect would be meaningless there.
type PressFeedback struct {
	flashing bool
	muted    bool
}

// Trigger starts the flash effect. It reports whether the effect actually
// started; a muted wrapper (button busy loading) ignores triggers.
func (f *PressFeedback) Trigger() bool {
	if f.muted {
		return false
	}
	f.flashing = true
	return true
}

// Clear ends the flash effect. Clearing an idle wrapper is a no-op.
func (f *PressFeedback) Clear() {
	f.flashing = false
}

// Flashing reports whether the effect is currently showing.
func (f *PressFeedback) Flashing() bool {
	return f.flashing
}

// SetMuted suppresses the effect while the wrapped button is busy.
func (f *PressFeedback) SetMuted(muted bool) {
	f.muted = muted
	if muted {
		f.flashing = false
	}
}

// Wrap applies the effect to a rendered subtree.
func (f *PressFeedback) Wrap(view string) string {
	if !f.flashing {
		return view
	}
	return lipgloss.NewStyle().Reverse(true).Render(view)
}
