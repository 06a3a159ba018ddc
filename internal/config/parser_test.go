package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lumenerrors "github.com/lumenui/lumen/pkg/errors"
)

func writeGallery(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseGalleryValid(t *testing.T) {
	t.Parallel()

	path := writeGallery(t, `
theme: dark
size: small
direction: rtl
buttons:
  - label: Submit
    type: primary
  - label: Delete
    danger: true
  - label: Save
    loading: true
    loading_delay_ms: 300
`)

	cfg, err := ParseGallery(path)
	require.NoError(t, err)

	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "small", cfg.Size)
	require.Len(t, cfg.Buttons, 3)
	assert.Equal(t, "primary", cfg.Buttons[0].Type)
	assert.True(t, cfg.Buttons[1].Danger)
	assert.Equal(t, 300, cfg.Buttons[2].LoadingDelayMS)
}

func TestParseGalleryMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseGallery(filepath.Join(t.TempDir(), "absent.yaml"))

	var parseErr *lumenerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseGalleryMalformedYAML(t *testing.T) {
	t.Parallel()

	path := writeGallery(t, "buttons:\n  - label: [broken\n")

	_, err := ParseGallery(path)

	var parseErr *lumenerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Positive(t, parseErr.Line, "yaml line metadata should be surfaced")
}

func TestParseGalleryRejectsInvalidEnum(t *testing.T) {
	t.Parallel()

	path := writeGallery(t, `
buttons:
  - label: Go
    variant: blinking
`)

	_, err := ParseGallery(path)

	var validationErr *lumenerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Field, "Variant")
}
