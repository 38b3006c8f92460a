package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvalidVariantErrorUnknownAxis(t *testing.T) {
	t.Parallel()

	err := NewInvalidVariantError("tone", "", nil)

	var variantErr *InvalidVariantError
	require.ErrorAs(t, err, &variantErr)
	require.Equal(t, "tone", variantErr.Axis)
	require.Contains(t, err.Error(), "unknown axis")
}

func TestInvalidVariantErrorListsDeclaredValues(t *testing.T) {
	t.Parallel()

	err := NewInvalidVariantError("role", "fancy", []string{"default", "destructive"})

	var variantErr *InvalidVariantError
	require.ErrorAs(t, err, &variantErr)
	require.Equal(t, "fancy", variantErr.Value)
	require.Contains(t, err.Error(), "default, destructive")
}

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("theme.yaml", 7, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "theme.yaml", parseErr.Path)
	require.Equal(t, 7, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "theme.yaml:7")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("theme.yaml", 0, stdErrors.New("truncated"))
	require.NotContains(t, err.Error(), ":0:")
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("palette.primary.light", "must be a hex colour", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "palette.primary.light", validationErr.Field)
	require.Contains(t, validationErr.Message, "hex colour")
}
