package skizsvg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skizlabs/skiz/lib/color"
	"github.com/skizlabs/skiz/lib/geo"
	"github.com/skizlabs/skiz/skiztarget"
)

func TestRenderLineTransform(t *testing.T) {
	t.Parallel()

	out := Render(&skiztarget.Sketch{Commands: []skiztarget.Command{
		skiztarget.Line{Start: geo.NewPoint(0, 0), End: geo.NewPoint(1, 1)},
	}})

	// Bounds [-0.1, 1.1] on both axes; X maps onto [20, 280], Y inverted
	// onto [20, 180].
	assert.Contains(t, out, `x1="41.67"`)
	assert.Contains(t, out, `y1="166.67"`)
	assert.Contains(t, out, `x2="258.33"`)
	assert.Contains(t, out, `y2="33.33"`)

	// Exactly one stroked primitive in the default accent.
	assert.Equal(t, 1, strings.Count(out, `stroke="`+color.Default+`"`))
	assert.Contains(t, out, `stroke-width="1.5"`)
}

func TestRenderDocumentStructure(t *testing.T) {
	t.Parallel()

	out := Render(&skiztarget.Sketch{Commands: []skiztarget.Command{
		skiztarget.Circle{Center: geo.NewPoint(0, 0), Radius: 1},
	}})

	require.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 300 200"`))
	require.True(t, strings.HasSuffix(out, `</svg>`))

	// defs come before the background, background before the grid, grid
	// before the primitives.
	defsIdx := strings.Index(out, "<defs>")
	bgIdx := strings.Index(out, `<rect x="0" y="0"`)
	gridIdx := strings.Index(out, `<g stroke=`)
	circleIdx := strings.Index(out, "<circle")
	assert.True(t, defsIdx >= 0 && defsIdx < bgIdx)
	assert.True(t, bgIdx < gridIdx)
	assert.True(t, gridIdx < circleIdx)

	assert.Contains(t, out, `id="arrow-start"`)
	assert.Contains(t, out, `id="arrow-end"`)

	// No external resources.
	assert.NotContains(t, out, "href")
	assert.NotContains(t, out, "<script")
}

func TestRenderRadiusClamping(t *testing.T) {
	t.Parallel()

	// A lone unit circle: X scale would be 108 device units per model unit,
	// capped at 50.
	out := Render(&skiztarget.Sketch{Commands: []skiztarget.Command{
		skiztarget.Circle{Center: geo.NewPoint(0, 0), Radius: 1},
	}})
	assert.Contains(t, out, `r="50"`)

	// A tiny circle stays visible at the 3-unit floor.
	out = Render(&skiztarget.Sketch{Commands: []skiztarget.Command{
		skiztarget.Circle{Center: geo.NewPoint(0, 0), Radius: 0.001},
	}})
	assert.Contains(t, out, `r="3"`)
}

func TestRenderStyleAttributes(t *testing.T) {
	t.Parallel()

	out := Render(&skiztarget.Sketch{Commands: []skiztarget.Command{
		skiztarget.Rect{
			Corner1: geo.NewPoint(0, 0),
			Corner2: geo.NewPoint(2, 1),
			Style: skiztarget.Style{
				Stroke:      "none",
				Fill:        "#ff8080",
				FillOpacity: 0.5,
				StrokeWidth: 2,
				DashArray:   "5,5",
			},
		},
	}})

	// Explicit "none" emits bare stroke="none", no opacity.
	assert.Contains(t, out, `stroke="none"`)
	assert.NotContains(t, out, `stroke-opacity`)
	assert.Contains(t, out, `fill="#ff8080" fill-opacity="0.5"`)
	assert.Contains(t, out, `stroke-dasharray="5,5"`)
}

func TestRenderMarkers(t *testing.T) {
	t.Parallel()

	out := Render(&skiztarget.Sketch{Commands: []skiztarget.Command{
		skiztarget.Line{
			Start: geo.NewPoint(0, 0),
			End:   geo.NewPoint(1, 0),
			Style: skiztarget.Style{MarkerEnd: true},
		},
	}})
	assert.Contains(t, out, `marker-end="url(#arrow-end)"`)
	assert.NotContains(t, out, `marker-start=`)
}

func TestRenderText(t *testing.T) {
	t.Parallel()

	out := Render(&skiztarget.Sketch{Commands: []skiztarget.Command{
		skiztarget.Text{Anchor: geo.NewPoint(0, 0), Label: "a < b & c"},
	}})
	assert.Contains(t, out, `text-anchor="middle"`)
	assert.Contains(t, out, `dominant-baseline="middle"`)
	assert.Contains(t, out, "a &lt; b &amp; c")
}

func TestRenderEmpty(t *testing.T) {
	t.Parallel()

	out := Render(&skiztarget.Sketch{})
	assert.Contains(t, out, NoGraphicsMessage)
	assert.True(t, strings.HasPrefix(out, "<svg "))
	assert.True(t, strings.HasSuffix(out, "</svg>"))

	assert.Equal(t, out, Render(nil))
}

func TestRenderDeterministic(t *testing.T) {
	t.Parallel()

	s := &skiztarget.Sketch{Commands: []skiztarget.Command{
		skiztarget.Line{Start: geo.NewPoint(0, 0), End: geo.NewPoint(3, 2)},
		skiztarget.Circle{Center: geo.NewPoint(1, 1), Radius: 0.5},
	}}
	assert.Equal(t, Render(s), Render(s))
}

func TestPlaceholderEscapes(t *testing.T) {
	t.Parallel()

	out := Placeholder(`render failed: <oops> & "such"`)
	assert.NotContains(t, out, "<oops>")
	assert.Contains(t, out, "&lt;oops&gt;")
}
