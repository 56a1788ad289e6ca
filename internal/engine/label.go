package engine

import (
	"regexp"
	"strings"
)

// wrapperMacros are markup macros whose argument is kept as-is once the
// macro itself is stripped, e.g. `\vec{v}` -> `v`.
var wrapperMacros = regexp.MustCompile(`\\(vec|hat|overline|mathrm|text)\{([^}]*)\}`)

// macroGlyphs maps the named macros the content generator emits to display
// glyphs. Anything outside this set passes through untouched.
var macroGlyphs = strings.NewReplacer(
	`\alpha`, "α",
	`\beta`, "β",
	`\gamma`, "γ",
	`\delta`, "δ",
	`\epsilon`, "ε",
	`\theta`, "θ",
	`\lambda`, "λ",
	`\mu`, "μ",
	`\pi`, "π",
	`\phi`, "φ",
	`\omega`, "ω",
	`\cdot`, "·",
	`\times`, "×",
	`\pm`, "±",
	`\angle`, "∠",
	`\triangle`, "△",
	`\degree`, "°",
	`\circ`, "°",
)

// SanitizeLabel normalizes author-supplied math markup into plain renderable
// text: wrapper macros are unwrapped, named macros become Unicode glyphs, and
// the delimiters ($, braces, subscript markers) are dropped.
func SanitizeLabel(label string) string {
	s := wrapperMacros.ReplaceAllString(label, "$2")
	s = macroGlyphs.Replace(s)
	s = strings.NewReplacer("$", "", "{", "", "}", "", "_", "").Replace(s)
	return s
}
