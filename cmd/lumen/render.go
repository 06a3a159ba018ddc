package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/lumenui/lumen/internal/logger"
	"github.com/lumenui/lumen/pkg/components"
)

func newRenderCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the gallery once and exit",
		Long:  `Render the configured buttons to stdout without entering the interactive gallery.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(flags, log, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runRender(flags *rootFlags, log *logger.Logger, out io.Writer) error {
	s, err := loadScene(flags, log)
	if err != nil {
		return err
	}

	ctx := components.DefaultContext().WithTheme(s.theme)
	ctx = s.provider.Context(ctx)
	if flags.verbose {
		ctx = ctx.WithDiagnostics(log)
	}

	views := make([]string, len(s.buttons))
	for i, button := range s.buttons {
		views[i] = button.ViewWithContext(ctx)
	}

	_, err = fmt.Fprintln(out, lipgloss.JoinVertical(lipgloss.Left, views...))
	return err
}
