package skizlib

import "strings"

// Kind classifies a snippet for callers that route input to different
// handlers.
type Kind int

const (
	KindUnknown Kind = iota
	KindGraphics
	KindDocument
)

func (k Kind) String() string {
	switch k {
	case KindGraphics:
		return "graphics"
	case KindDocument:
		return "document"
	default:
		return "unknown"
	}
}

// detectRules is evaluated in order until the first match. Graphics-like
// syntax is checked before generic document syntax: the two drawing dialects
// share import/package tokens with plain documents and are otherwise
// ambiguous, so this precedence is load-bearing.
var detectRules = []struct {
	match func(string) bool
	kind  Kind
}{
	{isGraphics, KindGraphics},
	{isDocument, KindDocument},
}

// Detect classifies code by the first matching rule.
func Detect(code string) Kind {
	for _, r := range detectRules {
		if r.match(code) {
			return r.kind
		}
	}
	return KindUnknown
}

func isGraphics(code string) bool {
	if strings.Contains(code, `\begin{tikzpicture}`) || strings.Contains(code, "cetz") {
		return true
	}
	return HasGraphics(code)
}

func isDocument(code string) bool {
	for _, tok := range []string{`\documentclass`, `\begin{document}`, `\section`, `\usepackage`, "#import", "#set "} {
		if strings.Contains(code, tok) {
			return true
		}
	}
	return false
}
