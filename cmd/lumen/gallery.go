package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lumenui/lumen/internal/logger"
	"github.com/lumenui/lumen/pkg/components"
)

const pressFlashDuration = 120 * time.Millisecond

func newGalleryCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Launch the interactive button gallery",
		Long:  `Launch the interactive TUI gallery to browse and exercise the configured buttons.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(flags, log)
		},
	}

	return cmd
}

func runGallery(flags *rootFlags, log *logger.Logger) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		// Without a TTY fall back to the static rendering.
		return runRender(flags, log, os.Stdout)
	}

	s, err := loadScene(flags, log)
	if err != nil {
		return err
	}

	m := newGalleryModel(s, flags, log)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error(err, "gallery execution failed")
		return fmt.Errorf("failed to run gallery: %w", err)
	}

	return nil
}

// flashClearMsg ends the press-feedback flash on every button.
type flashClearMsg struct{}

// spinnerKickMsg asks the model to start ticking any spinners created during
// the previous render pass.
type spinnerKickMsg struct{}

type galleryModel struct {
	scene *scene
	ctx   components.RenderContext
	log   *logger.Logger

	focus    int
	presses  int
	quitting bool
}

func newGalleryModel(s *scene, flags *rootFlags, log *logger.Logger) *galleryModel {
	ctx := components.DefaultContext().WithTheme(s.theme)
	ctx = s.provider.Context(ctx)
	if flags.verbose {
		ctx = ctx.WithDiagnostics(log)
	}

	m := &galleryModel{scene: s, ctx: ctx, log: log}

	for i, button := range s.buttons {
		if button.AutoFocus() {
			m.focus = i
			break
		}
	}
	m.syncFocus()

	return m
}

func (m *galleryModel) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.scene.activations)+1)
	for _, pending := range m.scene.activations {
		cmds = append(cmds, pending.button.ActivationCmd(pending.activation))
	}
	cmds = append(cmds, kickSpinners())
	return tea.Batch(cmds...)
}

func (m *galleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := msg.Width - 4
		if width < 0 {
			width = 0
		}
		m.ctx = m.ctx.WithMaxWidth(width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case components.LoadingActivatedMsg:
		if msg.Button != nil && msg.Button.ActivateLoading(msg.Seq) {
			m.log.Debug("delayed loading activated")
			return m, kickSpinners()
		}
		return m, nil

	case spinner.TickMsg:
		cmds := make([]tea.Cmd, 0, len(m.scene.buttons))
		for _, button := range m.scene.buttons {
			if cmd := button.UpdateSpinner(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case spinnerKickMsg:
		cmds := make([]tea.Cmd, 0, len(m.scene.buttons))
		for _, button := range m.scene.buttons {
			if cmd := button.SpinnerTick(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case flashClearMsg:
		for _, button := range m.scene.buttons {
			button.Feedback().Clear()
		}
		return m, nil
	}

	return m, nil
}

func (m *galleryModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		for _, button := range m.scene.buttons {
			button.Teardown()
		}
		return m, tea.Quit

	case "tab", "right":
		m.focus = (m.focus + 1) % len(m.scene.buttons)
		m.syncFocus()
		return m, nil

	case "shift+tab", "left":
		m.focus = (m.focus + len(m.scene.buttons) - 1) % len(m.scene.buttons)
		m.syncFocus()
		return m, nil

	case "enter", " ":
		button := m.scene.buttons[m.focus]
		if button.Press() {
			m.presses++
			return m, tea.Tick(pressFlashDuration, func(time.Time) tea.Msg {
				return flashClearMsg{}
			})
		}
		return m, nil

	case "l":
		button := m.scene.buttons[m.focus]
		if button.LoadingPhase() == components.LoadingIdle {
			activation := button.SetLoading(components.LoadingOn())
			return m, tea.Batch(button.ActivationCmd(activation), kickSpinners())
		}
		button.SetLoading(components.LoadingOff())
		return m, nil

	case "d":
		button := m.scene.buttons[m.focus]
		activation := button.SetLoading(components.LoadingAfter(time.Second, nil))
		return m, button.ActivationCmd(activation)
	}

	return m, nil
}

func (m *galleryModel) syncFocus() {
	for i, button := range m.scene.buttons {
		if i == m.focus {
			button.Focus()
		} else {
			button.Blur()
		}
	}
}

func (m *galleryModel) View() string {
	if m.quitting {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Render("Lumen button gallery")

	rows := make([]string, 0, len(m.scene.buttons)+3)
	rows = append(rows, title, "")
	for _, button := range m.scene.buttons {
		rows = append(rows, button.ViewWithContext(m.ctx))
	}

	help := lipgloss.NewStyle().Faint(true).Render(
		fmt.Sprintf("tab: focus · enter: press (%d) · l: loading · d: delayed loading · q: quit", m.presses),
	)
	rows = append(rows, "", help)

	return lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func kickSpinners() tea.Cmd {
	// Spinners are created lazily during rendering; wait one frame so the
	// tick reaches an existing model.
	return tea.Tick(time.Millisecond, func(time.Time) tea.Msg {
		return spinnerKickMsg{}
	})
}
