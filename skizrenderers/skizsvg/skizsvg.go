// Package skizsvg renders a skiztarget.Sketch to a self-contained SVG
// document sized for a live preview pane.
package skizsvg

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/skizlabs/skiz/lib/color"
	"github.com/skizlabs/skiz/lib/geo"
	"github.com/skizlabs/skiz/lib/svg"
	"github.com/skizlabs/skiz/skiztarget"
)

const (
	WIDTH  = 300
	HEIGHT = 200
	// Inset between the canvas edge and the drawable band.
	PADDING = 20

	gridStep = 20

	// Device units per model unit applied to radii, at most. Radii use a
	// single scale factor derived from the X axis, so circles can render
	// non-circular against the stretched bounding box. Intentional: the
	// preview favors visibility over aspect fidelity.
	maxRadiusScale = 50.0
	// Smallest rendered radius, so tiny circles stay visible.
	minRadius = 3.0

	backgroundColor = "#ffffff"
	gridColor       = "#e8eaf0"
	placeholderText = "#9aa0ab"
)

// NoGraphicsMessage is the placeholder message for inputs with no recognized
// drawing statement.
const NoGraphicsMessage = "no graphics detected"

// camera maps model coordinates (Y-up) onto the fixed device canvas
// (Y-down). The two axes scale independently.
type camera struct {
	box         *geo.Box
	radiusScale float64
}

func newCamera(box *geo.Box) *camera {
	scale := (WIDTH - 2*PADDING) / box.Width
	if scale > maxRadiusScale {
		scale = maxRadiusScale
	}
	return &camera{box: box, radiusScale: scale}
}

func (c *camera) x(mx float64) float64 {
	return PADDING + (mx-c.box.MinX())/c.box.Width*(WIDTH-2*PADDING)
}

func (c *camera) y(my float64) float64 {
	return PADDING + (c.box.MaxY()-my)/c.box.Height*(HEIGHT-2*PADDING)
}

func (c *camera) r(mr float64) float64 {
	r := mr * c.radiusScale
	if r < minRadius {
		r = minRadius
	}
	return r
}

// Render assembles the full document: marker defs, background, grid, then
// one element per command in paint order. An empty sketch yields the
// no-graphics placeholder.
func Render(sketch *skiztarget.Sketch) string {
	if sketch == nil || len(sketch.Commands) == 0 {
		return Placeholder(NoGraphicsMessage)
	}

	cam := newCamera(sketch.BoundingBox())

	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`,
		WIDTH, HEIGHT, WIDTH, HEIGHT)
	writeDefs(buf)
	writeBackground(buf)
	writeGrid(buf)
	for _, cmd := range sketch.Commands {
		writeCommand(buf, cam, cmd)
	}
	buf.WriteString(`</svg>`)
	return buf.String()
}

// Placeholder returns a minimal valid document carrying a short message.
func Placeholder(msg string) string {
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`,
		WIDTH, HEIGHT, WIDTH, HEIGHT)
	writeBackground(buf)
	fmt.Fprintf(buf, `<text x="%d" y="%d" text-anchor="middle" dominant-baseline="middle" font-family="sans-serif" font-size="13" fill="%s">%s</text>`,
		WIDTH/2, HEIGHT/2, placeholderText, svg.EscapeText(msg))
	buf.WriteString(`</svg>`)
	return buf.String()
}

func writeDefs(buf *bytes.Buffer) {
	buf.WriteString(`<defs>`)
	fmt.Fprintf(buf, `<marker id="arrow-end" markerWidth="8" markerHeight="8" refX="6" refY="3" orient="auto" markerUnits="strokeWidth"><path d="M0,0 L6,3 L0,6 z" fill="%s" /></marker>`,
		color.Default)
	fmt.Fprintf(buf, `<marker id="arrow-start" markerWidth="8" markerHeight="8" refX="0" refY="3" orient="auto" markerUnits="strokeWidth"><path d="M6,0 L0,3 L6,6 z" fill="%s" /></marker>`,
		color.Default)
	buf.WriteString(`</defs>`)
}

func writeBackground(buf *bytes.Buffer) {
	fmt.Fprintf(buf, `<rect x="0" y="0" width="%d" height="%d" fill="%s" />`, WIDTH, HEIGHT, backgroundColor)
}

func writeGrid(buf *bytes.Buffer) {
	fmt.Fprintf(buf, `<g stroke="%s" stroke-width="0.5">`, gridColor)
	for x := gridStep; x < WIDTH; x += gridStep {
		fmt.Fprintf(buf, `<line x1="%d" y1="0" x2="%d" y2="%d" />`, x, x, HEIGHT)
	}
	for y := gridStep; y < HEIGHT; y += gridStep {
		fmt.Fprintf(buf, `<line x1="0" y1="%d" x2="%d" y2="%d" />`, y, WIDTH, y)
	}
	buf.WriteString(`</g>`)
}

func writeCommand(buf *bytes.Buffer, cam *camera, cmd skiztarget.Command) {
	switch c := cmd.(type) {
	case skiztarget.Line:
		fmt.Fprintf(buf, `<line x1="%s" y1="%s" x2="%s" y2="%s"%s%s />`,
			svg.Fmt(cam.x(c.Start.X)), svg.Fmt(cam.y(c.Start.Y)),
			svg.Fmt(cam.x(c.End.X)), svg.Fmt(cam.y(c.End.Y)),
			strokeAttrs(c.Style), markerAttrs(c.Style))

	case skiztarget.Circle:
		fmt.Fprintf(buf, `<circle cx="%s" cy="%s" r="%s"%s%s />`,
			svg.Fmt(cam.x(c.Center.X)), svg.Fmt(cam.y(c.Center.Y)),
			svg.Fmt(cam.r(c.Radius)),
			strokeAttrs(c.Style), fillAttrs(c.Style))

	case skiztarget.Ellipse:
		fmt.Fprintf(buf, `<ellipse cx="%s" cy="%s" rx="%s" ry="%s"%s%s />`,
			svg.Fmt(cam.x(c.Center.X)), svg.Fmt(cam.y(c.Center.Y)),
			svg.Fmt(cam.r(c.RadiusX)), svg.Fmt(cam.r(c.RadiusY)),
			strokeAttrs(c.Style), fillAttrs(c.Style))

	case skiztarget.Rect:
		minX := c.Corner1.X
		maxX := c.Corner2.X
		if minX > maxX {
			minX, maxX = maxX, minX
		}
		minY := c.Corner1.Y
		maxY := c.Corner2.Y
		if minY > maxY {
			minY, maxY = maxY, minY
		}
		fmt.Fprintf(buf, `<rect x="%s" y="%s" width="%s" height="%s"%s%s />`,
			svg.Fmt(cam.x(minX)), svg.Fmt(cam.y(maxY)),
			svg.Fmt(cam.x(maxX)-cam.x(minX)), svg.Fmt(cam.y(minY)-cam.y(maxY)),
			strokeAttrs(c.Style), fillAttrs(c.Style))

	case skiztarget.Bezier:
		fmt.Fprintf(buf, `<path d="M %s %s C %s %s, %s %s, %s %s" fill="none"%s%s />`,
			svg.Fmt(cam.x(c.Start.X)), svg.Fmt(cam.y(c.Start.Y)),
			svg.Fmt(cam.x(c.Control1.X)), svg.Fmt(cam.y(c.Control1.Y)),
			svg.Fmt(cam.x(c.Control2.X)), svg.Fmt(cam.y(c.Control2.Y)),
			svg.Fmt(cam.x(c.End.X)), svg.Fmt(cam.y(c.End.Y)),
			strokeAttrs(c.Style), markerAttrs(c.Style))

	case skiztarget.Text:
		fill, opacity := textColor(c.Style)
		opacityAttr := ""
		if opacity != 1 {
			opacityAttr = fmt.Sprintf(` fill-opacity="%s"`, svg.Fmt(opacity))
		}
		// Labels are centered on their anchor, both axes.
		fmt.Fprintf(buf, `<text x="%s" y="%s" text-anchor="middle" dominant-baseline="middle" font-family="sans-serif" font-size="12" fill="%s"%s>%s</text>`,
			svg.Fmt(cam.x(c.Anchor.X)), svg.Fmt(cam.y(c.Anchor.Y)),
			fill, opacityAttr, svg.EscapeText(c.Label))
	}
}

func strokeAttrs(st skiztarget.Style) string {
	var sb strings.Builder

	if st.Stroke == color.None {
		sb.WriteString(` stroke="none"`)
	} else {
		stroke := st.Stroke
		opacity := st.StrokeOpacity
		if stroke == "" {
			stroke = color.Default
			opacity = 1
		}
		fmt.Fprintf(&sb, ` stroke="%s" stroke-opacity="%s"`, svg.EscapeText(stroke), svg.Fmt(opacity))
	}

	width := st.StrokeWidth
	if width == 0 {
		width = skiztarget.DEFAULT_STROKE_WIDTH
	}
	fmt.Fprintf(&sb, ` stroke-width="%s"`, svg.Fmt(width))

	if st.DashArray != "" {
		fmt.Fprintf(&sb, ` stroke-dasharray="%s"`, st.DashArray)
	}
	return sb.String()
}

func fillAttrs(st skiztarget.Style) string {
	if st.Fill == "" || st.Fill == color.None {
		return ` fill="none"`
	}
	return fmt.Sprintf(` fill="%s" fill-opacity="%s"`, svg.EscapeText(st.Fill), svg.Fmt(st.FillOpacity))
}

func markerAttrs(st skiztarget.Style) string {
	var sb strings.Builder
	if st.MarkerStart {
		sb.WriteString(` marker-start="url(#arrow-start)"`)
	}
	if st.MarkerEnd {
		sb.WriteString(` marker-end="url(#arrow-end)"`)
	}
	return sb.String()
}

func textColor(st skiztarget.Style) (string, float64) {
	if st.Stroke != "" && st.Stroke != color.None {
		return svg.EscapeText(st.Stroke), st.StrokeOpacity
	}
	return color.Default, 1
}
