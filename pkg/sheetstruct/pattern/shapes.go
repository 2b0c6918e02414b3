package pattern

import "regexp"

// Date shapes accepted by the detector: D/M/YYYY, YYYY-MM-DD, D-M-YYYY.
var dateShapes = []*regexp.Regexp{
	regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`),
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
	regexp.MustCompile(`^\d{1,2}-\d{1,2}-\d{4}$`),
}

// isDateShaped reports whether a value conforms to one of the accepted
// date shapes.
func isDateShaped(v string) bool {
	if v == "" {
		return false
	}
	for _, re := range dateShapes {
		if re.MatchString(v) {
			return true
		}
	}
	return false
}

// isNumberShaped reports whether a value is purely numeric once all `.`
// and `-` characters are removed. A value reduced to nothing does not
// count.
func isNumberShaped(v string) bool {
	digits := 0
	for _, r := range v {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.' || r == '-':
			// stripped
		default:
			return false
		}
	}
	return digits > 0
}
