package tikz

import "strconv"

// num formats a coordinate without a trailing fractional part,
// so whole values render as "2" rather than "2.000000".
func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// brackets wraps a non-empty options string in square brackets.
// Empty options render as nothing at all, not as "[]".
func brackets(options string) string {
	if options == "" {
		return ""
	}
	return "[" + options + "]"
}
