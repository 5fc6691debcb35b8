package skiztarget

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skizlabs/skiz/lib/geo"
)

func TestBoundingBoxPadding(t *testing.T) {
	t.Parallel()

	s := &Sketch{Commands: []Command{
		Line{Start: geo.NewPoint(0, 0), End: geo.NewPoint(1, 1)},
	}}
	box := s.BoundingBox()
	assert.InDelta(t, -0.1, box.MinX(), 1e-9)
	assert.InDelta(t, 1.1, box.MaxX(), 1e-9)
	assert.InDelta(t, -0.1, box.MinY(), 1e-9)
	assert.InDelta(t, 1.1, box.MaxY(), 1e-9)
}

func TestBoundingBoxZeroExtent(t *testing.T) {
	t.Parallel()

	// A single point gets the unit fallback padding on both axes.
	s := &Sketch{Commands: []Command{
		Text{Anchor: geo.NewPoint(2, 3), Label: "p"},
	}}
	box := s.BoundingBox()
	assert.InDelta(t, 1.0, box.MinX(), 1e-9)
	assert.InDelta(t, 3.0, box.MaxX(), 1e-9)
	assert.InDelta(t, 2.0, box.MinY(), 1e-9)
	assert.InDelta(t, 4.0, box.MaxY(), 1e-9)
	assert.Greater(t, box.Width, 0.0)
	assert.Greater(t, box.Height, 0.0)
}

func TestBoundingBoxCollinearAxis(t *testing.T) {
	t.Parallel()

	// Horizontal line: X padding proportional, Y padding falls back to 1.
	s := &Sketch{Commands: []Command{
		Line{Start: geo.NewPoint(0, 5), End: geo.NewPoint(10, 5)},
	}}
	box := s.BoundingBox()
	assert.InDelta(t, -1.0, box.MinX(), 1e-9)
	assert.InDelta(t, 11.0, box.MaxX(), 1e-9)
	assert.InDelta(t, 4.0, box.MinY(), 1e-9)
	assert.InDelta(t, 6.0, box.MaxY(), 1e-9)
}

func TestBoundingBoxCircleExtent(t *testing.T) {
	t.Parallel()

	s := &Sketch{Commands: []Command{
		Circle{Center: geo.NewPoint(0, 0), Radius: 2},
	}}
	box := s.BoundingBox()
	assert.InDelta(t, -2.4, box.MinX(), 1e-9)
	assert.InDelta(t, 2.4, box.MaxX(), 1e-9)
}

func TestBoundingBoxBezierControls(t *testing.T) {
	t.Parallel()

	// Control points count toward the extent.
	s := &Sketch{Commands: []Command{
		Bezier{
			Start:    geo.NewPoint(0, 0),
			End:      geo.NewPoint(1, 0),
			Control1: geo.NewPoint(0.5, 4),
			Control2: geo.NewPoint(0.5, 4),
		},
	}}
	box := s.BoundingBox()
	assert.InDelta(t, 4.4, box.MaxY(), 1e-9)
}

func TestBoundingBoxEmpty(t *testing.T) {
	t.Parallel()

	box := (&Sketch{}).BoundingBox()
	assert.Greater(t, box.Width, 0.0)
	assert.Greater(t, box.Height, 0.0)
}
