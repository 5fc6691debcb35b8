package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTint(t *testing.T) {
	t.Parallel()

	res := Resolve("red!50")
	require.NotNil(t, res)
	assert.Equal(t, "#ff8080", res.Color)
	assert.Equal(t, 1.0, res.Opacity)

	assert.Equal(t, "#ff0000", Resolve("red!100").Color)
	assert.Equal(t, "#ffffff", Resolve("red!0").Color)
}

func TestResolveMix(t *testing.T) {
	t.Parallel()

	res := Resolve("red!50!blue")
	require.NotNil(t, res)
	assert.Equal(t, "#800080", res.Color)
}

func TestResolveMethods(t *testing.T) {
	t.Parallel()

	res := Resolve("blue.darken(30)")
	require.NotNil(t, res)
	assert.Equal(t, "#0000b3", res.Color)

	res = Resolve("red.lighten(50)")
	require.NotNil(t, res)
	assert.Equal(t, "#ff8080", res.Color)

	res = Resolve("blue.transparentize(40)")
	require.NotNil(t, res)
	assert.Equal(t, "#0000ff", res.Color)
	assert.InDelta(t, 0.6, res.Opacity, 1e-9)

	res = Resolve("blue.opacity(40)")
	require.NotNil(t, res)
	assert.InDelta(t, 0.6, res.Opacity, 1e-9)
}

func TestResolveNames(t *testing.T) {
	t.Parallel()

	res := Resolve("teal")
	require.NotNil(t, res)
	assert.Equal(t, "#008080", res.Color)
	assert.Equal(t, 1.0, res.Opacity)

	// dvipsnames are case-sensitive on the capitalized form but the base set
	// tolerates case.
	assert.Equal(t, "#b6321c", Resolve("BrickRed").Color)
	assert.Equal(t, "#ff0000", Resolve("RED").Color)
}

func TestResolvePassThrough(t *testing.T) {
	t.Parallel()

	// Unrecognized tokens pass through verbatim so renderer-native syntaxes
	// keep working.
	res := Resolve("oklch(70% 0.1 200)")
	require.NotNil(t, res)
	assert.Equal(t, "oklch(70% 0.1 200)", res.Color)
	assert.Equal(t, 1.0, res.Opacity)

	assert.Equal(t, "#aabbcc", Resolve("#aabbcc").Color)
	assert.Equal(t, "none", Resolve("none").Color)
}

func TestResolveEmpty(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Resolve(""))
	assert.Nil(t, Resolve("   "))
}

func TestIsName(t *testing.T) {
	t.Parallel()

	assert.True(t, IsName("red"))
	assert.True(t, IsName("Goldenrod"))
	assert.False(t, IsName("thick"))
	assert.False(t, IsName("dashed"))
}
