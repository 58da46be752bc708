package styles

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeNames_SortedAndContainsDefault(t *testing.T) {
	names := ThemeNames()
	assert.True(t, slices.IsSorted(names))
	assert.Contains(t, names, DefaultTheme)
}

func TestSetTheme_RebuildsColors(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	p, ok := GetPalette("gruvbox")
	require.True(t, ok)

	SetTheme(p)
	assert.Equal(t, p.Primary, ColorPrimary)
	assert.Equal(t, p.Error, ColorError)
}

func TestGetPalette_Unknown(t *testing.T) {
	_, ok := GetPalette("neon")
	assert.False(t, ok)
}

func TestGlamourStyle_UsesActivePalette(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })
	SetTheme(themes["broadcast"])

	cfg := GlamourStyle()
	require.NotNil(t, cfg.Heading.Color)
	assert.Equal(t, "#ff4e45", *cfg.Heading.Color)
	require.NotNil(t, cfg.Link.Color)
	assert.Equal(t, "#3ea6ff", *cfg.Link.Color)
}
