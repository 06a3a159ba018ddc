package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCommandUsesBuiltInShowcase(t *testing.T) {
	root := newRootCmd(testLogger(t))
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"render"})

	require.NoError(t, root.Execute())

	output := buf.String()
	assert.Contains(t, output, "Primary")
	assert.Contains(t, output, "Dashed")
	assert.Contains(t, output, "Delete")
	assert.Contains(t, output, "提 交", "ideograph labels render with the inserted gap")
}

func TestRenderCommandWithConfig(t *testing.T) {
	cfgDir := t.TempDir()
	cfgPath := filepath.Join(cfgDir, "gallery.yaml")
	gallery := `theme: dark
size: small
buttons:
  - label: Deploy
    type: primary
  - label: Rollback
    danger: true
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(gallery), 0o644))

	root := newRootCmd(testLogger(t))
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"render", "--config", cfgPath})

	require.NoError(t, root.Execute())

	output := buf.String()
	assert.Contains(t, output, "Deploy")
	assert.Contains(t, output, "Rollback")
}

func TestRenderCommandRejectsMissingConfig(t *testing.T) {
	root := newRootCmd(testLogger(t))
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"render", "--config", filepath.Join(t.TempDir(), "absent.yaml")})

	require.Error(t, root.Execute())
}

func TestValidateConfigPath(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		require.Error(t, validateConfigPath(""))
	})

	t.Run("directory", func(t *testing.T) {
		require.Error(t, validateConfigPath(t.TempDir()))
	})

	t.Run("existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "gallery.yaml")
		require.NoError(t, os.WriteFile(path, []byte("buttons: []"), 0o644))
		require.NoError(t, validateConfigPath(path))
	})
}
