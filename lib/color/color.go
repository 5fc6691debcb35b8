// Package color resolves drawing-language color expressions (bare names,
// tint/shade/alpha modifiers) into concrete hex + opacity pairs.
package color

import (
	"regexp"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

const (
	// Default is the accent used for any primitive that carries no explicit
	// stroke of its own.
	Default = "#4a6bdc"

	None = "none"

	white = "#ffffff"
	black = "#000000"
)

// Resolution is a concrete color: hex string plus opacity in [0, 1].
type Resolution struct {
	Color   string
	Opacity float64
}

var (
	mixRe    = regexp.MustCompile(`^([A-Za-z][\w]*)!(\d+(?:\.\d+)?)!([A-Za-z][\w]*)$`)
	tintRe   = regexp.MustCompile(`^([A-Za-z][\w]*)!(\d+(?:\.\d+)?)$`)
	methodRe = regexp.MustCompile(`^(.+)\.(lighten|darken|transparentize|opacity)\(\s*(\d+(?:\.\d+)?)\s*%?\s*\)$`)
)

// Resolve maps a color expression to a Resolution. It never fails: an
// expression that matches no known form passes through verbatim with opacity
// 1 so renderer-native color syntaxes keep working. Only an empty or
// all-whitespace expression yields nil.
func Resolve(expr string) *Resolution {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil
	}

	// name1!P!name2: P% of name1 blended with (100-P)% of name2.
	if m := mixRe.FindStringSubmatch(expr); m != nil {
		c1, ok1 := lookup(m[1])
		c2, ok2 := lookup(m[3])
		if ok1 && ok2 {
			return &Resolution{Color: blend(c1, c2, 1-percent(m[2])/100), Opacity: 1}
		}
	}

	// name!P: P% of the color, the rest white.
	if m := tintRe.FindStringSubmatch(expr); m != nil {
		if c, ok := lookup(m[1]); ok {
			return &Resolution{Color: blend(c, white, 1-percent(m[2])/100), Opacity: 1}
		}
	}

	if m := methodRe.FindStringSubmatch(expr); m != nil {
		base := resolveBase(m[1])
		p := percent(m[3])
		switch m[2] {
		case "lighten":
			return &Resolution{Color: blend(base.Color, white, p/100), Opacity: base.Opacity}
		case "darken":
			return &Resolution{Color: blend(base.Color, black, p/100), Opacity: base.Opacity}
		case "transparentize", "opacity":
			return &Resolution{Color: base.Color, Opacity: base.Opacity * (1 - p/100)}
		}
	}

	return resolveBase(expr)
}

// IsName reports whether tok is a recognized named color.
func IsName(tok string) bool {
	_, ok := lookup(tok)
	return ok
}

// IsExpr reports whether tok is a color expression built from recognized
// names: a bare name, a tint, a mix, or a modifier method call.
func IsExpr(tok string) bool {
	if IsName(tok) {
		return true
	}
	if m := mixRe.FindStringSubmatch(tok); m != nil {
		return IsName(m[1]) && IsName(m[3])
	}
	if m := tintRe.FindStringSubmatch(tok); m != nil {
		return IsName(m[1])
	}
	if m := methodRe.FindStringSubmatch(tok); m != nil {
		return IsName(m[1])
	}
	return false
}

func resolveBase(tok string) *Resolution {
	if c, ok := lookup(tok); ok {
		return &Resolution{Color: c, Opacity: 1}
	}
	return &Resolution{Color: tok, Opacity: 1}
}

func lookup(name string) (string, bool) {
	if c, ok := namedColors[name]; ok {
		return c, true
	}
	c, ok := namedColors[strings.ToLower(name)]
	return c, ok
}

func percent(s string) float64 {
	p, err := strconv.ParseFloat(s, 64)
	if err != nil || p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// blend interpolates c1 toward c2 by amount per RGB channel and re-encodes as
// hex, rounding each channel to the nearest integer.
func blend(hex1, hex2 string, amount float64) string {
	c1, err1 := csscolorparser.Parse(hex1)
	c2, err2 := csscolorparser.Parse(hex2)
	if err1 != nil || err2 != nil {
		return hex1
	}
	a := colorful.Color{R: c1.R, G: c1.G, B: c1.B}
	b := colorful.Color{R: c2.R, G: c2.G, B: c2.B}
	return a.BlendRgb(b, amount).Clamped().Hex()
}
