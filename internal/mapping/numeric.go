package mapping

import (
	"strconv"
	"strings"
)

// ParseAmount parses a currency-formatted amount permissively. Everything but
// digits, a leading minus, '.' and ',' is stripped; the last separator present
// is taken as the decimal separator and the rest are thousands marks. This
// handles both "1.234.567,89" (id-ID) and "1,234,567.89" (en-US) as well as
// plain numbers and "Rp"-prefixed strings.
func ParseAmount(raw string) (float64, bool) {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',':
			b.WriteRune(r)
		case r == '-' && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s == "" || s == "-" {
		return 0, false
	}

	// The last separator is the decimal point; every other '.' or ',' is a
	// thousands mark. "1,234" alone is ambiguous and reads as 1.234, which
	// the comparison tolerance absorbs.
	lastDot := strings.LastIndexByte(s, '.')
	lastComma := strings.LastIndexByte(s, ',')
	if sep := max(lastDot, lastComma); sep >= 0 {
		head := strings.Map(dropSeparators, s[:sep])
		tail := strings.Map(dropSeparators, s[sep+1:])
		s = head + "." + tail
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func dropSeparators(r rune) rune {
	if r == '.' || r == ',' {
		return -1
	}
	return r
}
