package utils

import "strconv"

// FormatPrice renders an amount with space-separated thousands, the
// way prices appear throughout the site: 12500 -> "12 500".
func FormatPrice(price int64) string {
	s := strconv.FormatInt(price, 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var out []byte
	for i, ch := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ' ')
		}
		out = append(out, ch)
	}

	if neg {
		return "-" + string(out)
	}
	return string(out)
}
