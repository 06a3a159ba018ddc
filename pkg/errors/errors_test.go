package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("gallery.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "gallery.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "gallery.yaml")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("gallery.yaml", 0, fmt.Errorf("no such file"))
	require.Contains(t, err.Error(), "parse error: gallery.yaml: no such file")
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("buttons[1].variant", "unknown variant", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "buttons[1].variant", validationErr.Field)
	require.Contains(t, validationErr.Message, "unknown variant")
	require.Contains(t, err.Error(), "buttons[1].variant")
}

func TestValidationErrorWithoutField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("", "configuration is nil", nil)
	require.Equal(t, "validation error: configuration is nil", err.Error())
}

func TestNilErrorsRenderEmpty(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	require.Equal(t, "", parseErr.Error())
	require.Equal(t, "", validationErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Nil(t, validationErr.Unwrap())
}
