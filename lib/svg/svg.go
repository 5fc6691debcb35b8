package svg

import (
	"bytes"
	"encoding/xml"
	"strconv"

	"github.com/skizlabs/skiz/lib/geo"
)

func EscapeText(text string) string {
	buf := new(bytes.Buffer)
	_ = xml.EscapeText(buf, []byte(text))
	return buf.String()
}

// Fmt renders a float for an SVG attribute: 2 decimals, no trailing zeros.
func Fmt(f float64) string {
	return strconv.FormatFloat(geo.RoundDecimals(f), 'f', -1, 64)
}
