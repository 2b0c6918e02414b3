// Package formula analyzes formula columns: it normalizes cell references
// into shape signatures and segments columns into contiguous runs of
// structurally-similar formulas.
package formula

import "regexp"

// Reference patterns, applied in order from most to least anchored. The
// brace placeholders contain no letter-digit run, so a later pass can
// never re-match text emitted by an earlier one.
var (
	absRef    = regexp.MustCompile(`\$[A-Z]+\$\d+`)
	colAbsRef = regexp.MustCompile(`\$[A-Z]+\d+`)
	rowAbsRef = regexp.MustCompile(`[A-Z]+\$\d+`)
	relRef    = regexp.MustCompile(`[A-Z]+\d+`)
)

// Normalize replaces every cell reference in a formula with a placeholder
// describing its anchoring: $A$1 becomes {ABS}, $A1 {COL_ABS}, A$1
// {ROW_ABS}, and A1 {REL}. Two formulas with the same result differ only
// in which cells they point at, not in shape.
func Normalize(formula string) string {
	if formula == "" {
		return ""
	}
	s := absRef.ReplaceAllString(formula, "{ABS}")
	s = colAbsRef.ReplaceAllString(s, "{COL_ABS}")
	s = rowAbsRef.ReplaceAllString(s, "{ROW_ABS}")
	return relRef.ReplaceAllString(s, "{REL}")
}
