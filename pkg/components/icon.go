package components

import (
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Icon is a small decorative element rendered inside a button.
type Icon interface {
	ViewWithContext(ctx RenderContext) string
}

// GlyphIcon renders a bare string glyph as an icon. Prefer composed icon
// components for anything beyond one or two runes; the resolver surfaces an
// advisory warning otherwise.
type GlyphIcon string

// ViewWithContext renders the glyph.
func (g GlyphIcon) ViewWithContext(RenderContext) string {
	return string(g)
}

func (g GlyphIcon) runeCount() int {
	return utf8.RuneCountInString(string(g))
}

// SpinnerIcon is the default loading indicator. It wraps the bubbles spinner
// model and is driven by spinner tick messages from the hosting program.
type SpinnerIcon struct {
	model spinner.Model

	// static suppresses the entrance animation: the spinner renders its
	// first frame only until animation has been observed. Set on initial
	// mount so freshly shown buttons do not flicker.
	static bool

	// replacedIcon records that the spinner occupies the slot of a user
	// supplied icon, preserving layout continuity.
	replacedIcon bool
}

// NewSpinnerIcon creates the default loading spinner.
func NewSpinnerIcon() *SpinnerIcon {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &SpinnerIcon{model: s}
}

// Tick returns the command that starts or continues the spinner animation.
func (s *SpinnerIcon) Tick() tea.Cmd {
	return s.model.Tick
}

// Update advances the spinner animation. Once an animation frame has been
// processed the static entrance suppression no longer applies.
func (s *SpinnerIcon) Update(msg spinner.TickMsg) tea.Cmd {
	var cmd tea.Cmd
	s.model, cmd = s.model.Update(msg)
	s.static = false
	return cmd
}

// WithStyle sets the spinner's style.
func (s *SpinnerIcon) WithStyle(style lipgloss.Style) *SpinnerIcon {
	s.model.Style = style
	return s
}

// ViewWithContext renders the current spinner frame.
func (s *SpinnerIcon) ViewWithContext(RenderContext) string {
	if s.static {
		frames := s.model.Spinner.Frames
		if len(frames) > 0 {
			return s.model.Style.Render(frames[0])
		}
	}
	return s.model.View()
}
