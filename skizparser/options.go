package skizparser

import (
	"regexp"
	"strings"

	"github.com/skizlabs/skiz/lib/color"
	"github.com/skizlabs/skiz/skiztarget"
)

var (
	strokeRe = regexp.MustCompile(`(?:stroke:|draw=|color=)\s*([^,()]+)`)
	fillRe   = regexp.MustCompile(`fill\s*[:=]\s*([^,()]+)`)
	widthRe  = regexp.MustCompile(`(?:line width\s*=|thickness:)\s*(-?[\d.]+)`)
)

// ParseStyle extracts per-command style attributes from a raw attribute
// substring. Attributes are independent and order-insensitive; anything it
// does not set stays zero and is resolved to defaults by the renderer.
func ParseStyle(raw string) skiztarget.Style {
	var st skiztarget.Style

	if m := strokeRe.FindStringSubmatch(raw); m != nil {
		if res := color.Resolve(m[1]); res != nil {
			st.Stroke = res.Color
			st.StrokeOpacity = res.Opacity
		}
	}
	if st.Stroke == "" {
		// A bare recognized color expression counts as the stroke color.
		for _, tok := range splitArgs(raw) {
			if color.IsExpr(strings.TrimSpace(tok)) {
				res := color.Resolve(strings.TrimSpace(tok))
				st.Stroke = res.Color
				st.StrokeOpacity = res.Opacity
				break
			}
		}
	}

	if m := fillRe.FindStringSubmatch(raw); m != nil {
		if res := color.Resolve(m[1]); res != nil {
			st.Fill = res.Color
			st.FillOpacity = res.Opacity
		}
	}

	// An explicit numeric width wins over the textual weight keywords, so the
	// numeric form has to be checked first.
	if m := widthRe.FindStringSubmatch(raw); m != nil {
		st.StrokeWidth = num(m[1]) * 2
	}
	if st.StrokeWidth == 0 {
		switch {
		case strings.Contains(raw, "very thick"):
			st.StrokeWidth = 3
		case strings.Contains(raw, "very thin"):
			st.StrokeWidth = 0.5
		case strings.Contains(raw, "thick"):
			st.StrokeWidth = 2
		case strings.Contains(raw, "thin"):
			st.StrokeWidth = 0.5
		}
	}

	switch {
	case strings.Contains(raw, "dotted"):
		st.DashArray = "2,2"
	case strings.Contains(raw, "dashed"):
		st.DashArray = "5,5"
	}

	if strings.Contains(raw, "<->") {
		st.MarkerStart = true
		st.MarkerEnd = true
	} else {
		if strings.Contains(raw, "->") {
			st.MarkerEnd = true
		}
		if strings.Contains(raw, "<-") {
			st.MarkerStart = true
		}
	}
	if strings.Contains(raw, "mark:") {
		if strings.Contains(raw, "end:") {
			st.MarkerEnd = true
		}
		if strings.Contains(raw, "start:") {
			st.MarkerStart = true
		}
	}

	return st
}
