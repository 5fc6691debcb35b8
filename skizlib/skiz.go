// Package skizlib is the public surface of the sketch renderer: total
// functions over input text, safe to call on every keystroke.
package skizlib

import (
	"context"
	"fmt"

	"cdr.dev/slog"

	"github.com/skizlabs/skiz/lib/log"
	"github.com/skizlabs/skiz/skizparser"
	"github.com/skizlabs/skiz/skizrenderers/skizsvg"
	"github.com/skizlabs/skiz/skiztarget"
)

// Render converts sketch source to a self-contained SVG document. It never
// returns an error and never panics past this boundary: unrecognized input
// yields the no-graphics placeholder, and any internal failure yields a
// placeholder carrying a short diagnostic.
func Render(ctx context.Context, code string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			log.Debug(ctx, "render recovered", slog.F("panic", r))
			out = skizsvg.Placeholder(fmt.Sprintf("render failed: %v", r))
		}
	}()

	cmds := skizparser.Extract(skizparser.Normalize(code))
	return skizsvg.Render(&skiztarget.Sketch{Commands: cmds})
}

// HasGraphics reports whether code contains at least one recognized drawing
// statement. It never panics.
func HasGraphics(code string) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return len(skizparser.Extract(skizparser.Normalize(code))) > 0
}
