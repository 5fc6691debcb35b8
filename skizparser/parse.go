// Package skizparser scans normalized sketch source for the fixed catalogue
// of drawing statements, in both surface syntaxes, and emits the ordered
// command list. It is pure: no state survives a call, and the same input
// always produces the same commands.
package skizparser

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/skizlabs/skiz/lib/color"
	"github.com/skizlabs/skiz/lib/geo"
	"github.com/skizlabs/skiz/skiztarget"
)

var (
	wsRe    = regexp.MustCompile(`\s+`)
	callRe  = regexp.MustCompile(`(line|circle|rect|content|arc|bezier)\(`)
	macroRe = regexp.MustCompile(`\\(draw|filldraw|fill|node)\b`)
)

// Normalize collapses all whitespace runs to single spaces. Extract expects
// its input in this form, since source statements may be wrapped across
// lines.
func Normalize(text string) string {
	return strings.TrimSpace(wsRe.ReplaceAllString(text, " "))
}

// Extract scans text for drawing statements and returns the commands in
// source-scan order. Unrecognized statements are skipped, never an error.
func Extract(text string) []skiztarget.Command {
	matches := extractCalls(text)
	matches = append(matches, extractMacros(text)...)
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].pos < matches[j].pos })

	var cmds []skiztarget.Command
	for _, m := range matches {
		cmds = append(cmds, m.cmds...)
	}
	return cmds
}

type match struct {
	pos  int
	cmds []skiztarget.Command
}

// extractCalls handles the function-call statement shapes:
// line((x1,y1), (x2,y2), …), circle((x,y), radius: r, …), rect, content,
// arc, bezier.
func extractCalls(text string) []match {
	var out []match
	for _, loc := range callRe.FindAllStringSubmatchIndex(text, -1) {
		start := loc[0]
		if start > 0 {
			prev := text[start-1]
			if prev == '\\' || prev == '_' || isWordByte(prev) {
				continue
			}
		}
		kw := text[loc[2]:loc[3]]
		inner, _, ok := balanced(text, loc[3])
		if !ok {
			continue
		}
		if cmd := parseCall(kw, inner); cmd != nil {
			out = append(out, match{pos: start, cmds: []skiztarget.Command{cmd}})
		}
	}
	return out
}

func parseCall(kw, inner string) skiztarget.Command {
	args := splitArgs(inner)
	pts, rest := leadingCoords(args)
	opts := strings.Join(rest, ",")

	switch kw {
	case "line":
		if len(pts) < 2 {
			return nil
		}
		return skiztarget.Line{Start: pts[0], End: pts[1], Style: ParseStyle(opts)}

	case "rect":
		if len(pts) < 2 {
			return nil
		}
		return skiztarget.Rect{Corner1: pts[0], Corner2: pts[1], Style: ParseStyle(opts)}

	case "circle", "arc":
		if len(pts) < 1 {
			return nil
		}
		rx, ry, isEllipse := labeledRadius(rest)
		if kw == "circle" && isEllipse {
			return skiztarget.Ellipse{Center: pts[0], RadiusX: rx, RadiusY: ry, Style: ParseStyle(opts)}
		}
		// Arcs render as full circles of the given radius. Start/stop sweep
		// angles are dropped: this is a preview, not a faithful reproduction.
		return skiztarget.Circle{Center: pts[0], Radius: rx, Style: ParseStyle(opts)}

	case "content":
		if len(pts) < 1 {
			return nil
		}
		label, ok := bracketLabel(inner)
		if !ok {
			return nil
		}
		var styleArgs []string
		for _, a := range rest {
			if !strings.HasPrefix(strings.TrimSpace(a), "[") {
				styleArgs = append(styleArgs, a)
			}
		}
		return skiztarget.Text{Anchor: pts[0], Label: sanitizeLabel(label), Style: ParseStyle(strings.Join(styleArgs, ","))}

	case "bezier":
		if len(pts) < 3 {
			return nil
		}
		c1 := pts[2]
		c2 := c1
		if len(pts) >= 4 {
			c2 = pts[3]
		}
		return skiztarget.Bezier{Start: pts[0], End: pts[1], Control1: c1, Control2: c2, Style: ParseStyle(opts)}
	}
	return nil
}

// extractMacros handles the backslash statement shapes: \draw, \fill,
// \filldraw and \node, terminated by a semicolon.
func extractMacros(text string) []match {
	var out []match
	for _, loc := range macroRe.FindAllStringSubmatchIndex(text, -1) {
		verb := text[loc[2]:loc[3]]
		body := text[loc[1]:]
		if end := topLevelIndex(body, ';'); end >= 0 {
			body = body[:end]
		}

		st, body := macroOptions(body)

		var cmds []skiztarget.Command
		if verb == "node" {
			cmds = parseNode(body, st)
		} else {
			cmds = parsePath(body, st, verb)
		}
		if len(cmds) > 0 {
			out = append(out, match{pos: loc[0], cmds: cmds})
		}
	}
	return out
}

// macroOptions strips a leading [attribute list] off the statement body and
// parses it.
func macroOptions(body string) (skiztarget.Style, string) {
	body = strings.TrimSpace(body)
	if !strings.HasPrefix(body, "[") {
		return skiztarget.Style{}, body
	}
	end, ok := matchDelim(body, 0, '[', ']')
	if !ok {
		return skiztarget.Style{}, body
	}
	return ParseStyle(body[1:end]), strings.TrimSpace(body[end+1:])
}

func parseNode(body string, st skiztarget.Style) []skiztarget.Command {
	open := strings.IndexByte(body, '{')
	if open < 0 {
		return nil
	}
	end, ok := matchDelim(body, open, '{', '}')
	if !ok {
		return nil
	}
	label := sanitizeLabel(body[open+1 : end])

	// The anchor lives before the label, so only the head is scanned for the
	// "at" keyword. Searching the whole body would find an "at" inside the
	// label text.
	head := body[:open]
	var coords string
	if strings.HasPrefix(head, "at ") {
		coords = head[len("at "):]
	} else if at := strings.Index(head, " at "); at >= 0 {
		coords = head[at+len(" at "):]
	} else {
		return nil
	}
	anchor, _ := firstCoord(coords)
	if anchor == nil {
		return nil
	}

	return []skiztarget.Command{skiztarget.Text{Anchor: anchor, Label: label, Style: st}}
}

func parsePath(body string, st skiztarget.Style, verb string) []skiztarget.Command {
	filled := verb == "fill" || verb == "filldraw"
	if filled {
		applyFillDefaults(&st, verb)
	}

	if idx := strings.Index(body, "rectangle"); idx >= 0 {
		c1 := lastCoord(body[:idx])
		c2, _ := firstCoord(body[idx+len("rectangle"):])
		if c1 == nil || c2 == nil {
			return nil
		}
		return []skiztarget.Command{skiztarget.Rect{Corner1: c1, Corner2: c2, Style: st}}
	}

	if idx := strings.Index(body, "circle"); idx >= 0 {
		center := lastCoord(body[:idx])
		if center == nil {
			return nil
		}
		radius := 1.0
		after := body[idx+len("circle"):]
		if open := strings.IndexByte(after, '('); open >= 0 {
			if end, ok := matchDelim(after, open, '(', ')'); ok {
				radius = num(after[open+1 : end])
			}
		}
		return []skiztarget.Command{skiztarget.Circle{Center: center, Radius: radius, Style: st}}
	}

	// Chained segments: every adjacent coordinate pair becomes one Line, so
	// an N-point chain yields N-1 commands sharing vertices.
	var pts []*geo.Point
	for _, part := range strings.Split(body, "--") {
		if p, ok := firstCoord(part); ok {
			pts = append(pts, p)
		}
	}
	if len(pts) < 2 {
		return nil
	}
	cmds := make([]skiztarget.Command, 0, len(pts)-1)
	for i := 0; i+1 < len(pts); i++ {
		cmds = append(cmds, skiztarget.Line{Start: pts[i], End: pts[i+1], Style: st})
	}
	return cmds
}

// applyFillDefaults reproduces the convention that an unstyled fill statement
// paints a solid shape rather than an outline: the fill takes the resolved
// stroke color (default accent when none) and its opacity, and \fill drops
// the stroke entirely. \filldraw keeps its stroke.
func applyFillDefaults(st *skiztarget.Style, verb string) {
	if st.Fill == "" {
		if st.Stroke != "" && st.Stroke != color.None {
			st.Fill = st.Stroke
			st.FillOpacity = st.StrokeOpacity
		} else {
			st.Fill = color.Default
			st.FillOpacity = 1
		}
	}
	if verb == "fill" {
		st.Stroke = color.None
	}
}

func sanitizeLabel(label string) string {
	label = strings.ReplaceAll(label, `\$`, "")
	label = strings.ReplaceAll(label, "$", "")
	return strings.TrimSpace(label)
}

// leadingCoords peels coordinate groups off the front of an argument list,
// returning them and the remaining (non-coordinate) arguments.
func leadingCoords(args []string) ([]*geo.Point, []string) {
	var pts []*geo.Point
	i := 0
	for ; i < len(args); i++ {
		p, ok := coordArg(args[i])
		if !ok {
			break
		}
		pts = append(pts, p)
	}
	return pts, args[i:]
}

// labeledRadius finds a "radius:" argument. A scalar value yields (r, r,
// false); a tuple "(rx, ry)" yields (rx, ry, true). Absent, the radius
// defaults to 1.
func labeledRadius(args []string) (rx, ry float64, isEllipse bool) {
	for _, a := range args {
		a = strings.TrimSpace(a)
		if !strings.HasPrefix(a, "radius:") {
			continue
		}
		val := strings.TrimSpace(a[len("radius:"):])
		if strings.HasPrefix(val, "(") {
			if end, ok := matchDelim(val, 0, '(', ')'); ok {
				parts := splitArgs(val[1:end])
				if len(parts) == 2 {
					return num(parts[0]), num(parts[1]), true
				}
			}
		}
		r := num(val)
		return r, r, false
	}
	return 1, 1, false
}

func bracketLabel(inner string) (string, bool) {
	open := strings.IndexByte(inner, '[')
	if open < 0 {
		return "", false
	}
	end, ok := matchDelim(inner, open, '[', ']')
	if !ok {
		return "", false
	}
	return inner[open+1 : end], true
}

// coordArg parses "(x, y)" into a point. Numeric fields that fail to parse
// default to 0: partial statements mid-edit still render best-effort.
func coordArg(arg string) (*geo.Point, bool) {
	arg = strings.TrimSpace(arg)
	if !strings.HasPrefix(arg, "(") || !strings.HasSuffix(arg, ")") {
		return nil, false
	}
	parts := splitArgs(arg[1 : len(arg)-1])
	if len(parts) != 2 {
		return nil, false
	}
	return geo.NewPoint(num(parts[0]), num(parts[1])), true
}

func firstCoord(s string) (*geo.Point, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] != '(' {
			continue
		}
		end, ok := matchDelim(s, i, '(', ')')
		if !ok {
			return nil, false
		}
		if p, ok := coordArg(s[i : end+1]); ok {
			return p, true
		}
		i = end
	}
	return nil, false
}

func lastCoord(s string) *geo.Point {
	var last *geo.Point
	for i := 0; i < len(s); i++ {
		if s[i] != '(' {
			continue
		}
		end, ok := matchDelim(s, i, '(', ')')
		if !ok {
			break
		}
		if p, ok := coordArg(s[i : end+1]); ok {
			last = p
		}
		i = end
	}
	return last
}

// balanced returns the content of the parenthesized group opening at
// text[open] ('(' expected at that index).
func balanced(text string, open int) (string, int, bool) {
	if open >= len(text) || text[open] != '(' {
		return "", 0, false
	}
	end, ok := matchDelim(text, open, '(', ')')
	if !ok {
		return "", 0, false
	}
	return text[open+1 : end], end, true
}

// matchDelim finds the index of the delimiter closing s[open], handling
// nesting.
func matchDelim(s string, open int, openCh, closeCh byte) (int, bool) {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case openCh:
			depth++
		case closeCh:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// splitArgs splits on top-level commas, respecting (), [] and {} nesting.
func splitArgs(s string) []string {
	var args []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, s[start:i])
				start = i + 1
			}
		}
	}
	if start < len(s) {
		args = append(args, s[start:])
	}
	return args
}

// topLevelIndex finds ch outside any nesting, or -1.
func topLevelIndex(s string, ch byte) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ch:
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func isWordByte(b byte) bool {
	return b == '_' ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z') ||
		('0' <= b && b <= '9')
}

// num parses a real number leniently: anything unparsable is 0, keeping a
// partial rendering available while the user is still typing.
func num(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
