package main

import (
	"fmt"

	"github.com/lumenui/lumen/internal/config"
	"github.com/lumenui/lumen/internal/logger"
	"github.com/lumenui/lumen/pkg/components"
)

// scene is the fully built gallery: theme, ambient scope and the buttons to
// show, plus any delayed loading activations the host must schedule.
type scene struct {
	theme       components.Theme
	provider    *components.ConfigProvider
	buttons     []*components.Button
	activations []pendingActivation
}

// pendingActivation pairs a delayed loading activation with the button that
// owns it, so the host can schedule the transition.
type pendingActivation struct {
	button     *components.Button
	activation *components.DelayedActivation
}

func loadScene(flags *rootFlags, log *logger.Logger) (*scene, error) {
	if flags.configPath == "" {
		return defaultScene(), nil
	}

	if err := validateConfigPath(flags.configPath); err != nil {
		return nil, err
	}

	cfg, err := config.ParseGallery(flags.configPath)
	if err != nil {
		return nil, err
	}

	ambient, err := cfg.BuildAmbient()
	if err != nil {
		return nil, fmt.Errorf("build ambient scope: %w", err)
	}

	s := &scene{
		theme:    cfg.BuildTheme(),
		provider: components.NewConfigProvider(ambient),
	}

	for i, entry := range cfg.Buttons {
		button, activation, err := entry.Build()
		if err != nil {
			return nil, fmt.Errorf("build button %d: %w", i, err)
		}
		s.buttons = append(s.buttons, button)
		if activation != nil {
			s.activations = append(s.activations, pendingActivation{
				button:     button,
				activation: activation,
			})
		}
	}

	log.WithFields(map[string]any{
		"buttons": len(s.buttons),
		"source":  flags.configPath,
	}).Debug("gallery configuration loaded")

	return s, nil
}

// defaultScene is the built-in showcase used when no configuration is given.
func defaultScene() *scene {
	return &scene{
		theme:    components.DefaultTheme(),
		provider: components.NewConfigProvider(components.Ambient{}),
		buttons: []*components.Button{
			components.NewButton("Primary").WithType(components.TypePrimary),
			components.NewButton("Default"),
			components.NewButton("Dashed").WithType(components.TypeDashed),
			components.NewButton("Text").WithType(components.TypeText),
			components.NewButton("Link").
				WithType(components.TypeLink).
				WithHref("https://example.com"),
			components.NewButton("Delete").
				WithType(components.TypePrimary).
				WithDanger(true),
			components.NewButton("Download").
				WithIcon(components.GlyphIcon("↓")).
				WithShape(components.ShapeRound),
			components.NewButton("Disabled").WithDisabled(true),
			components.NewButton("提交").WithType(components.TypePrimary),
		},
	}
}
