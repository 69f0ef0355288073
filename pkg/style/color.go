package style

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// OpaqueAlpha is the alpha used for fully opaque conversions.
const OpaqueAlpha = 1.0

// fallbackRGBA is returned for an empty hex string.
const fallbackRGBA = "rgba(0, 0, 0, 1)"

// HexToRGBA converts a hex color ("#rrggbb", "rrggbb", "#rgb" or "rgb") to an
// rgba() string with the given alpha.
//
// The conversion is lenient: the first "#" is dropped, three-character
// shorthand is expanded by doubling each character, and the three channels
// are read from character pairs 1-2, 3-4 and 5-6. A pair that does not start
// with a hex digit produces "NaN" in its place rather than an error; alpha is
// printed as given, without clamping or rounding. An empty hex yields
// "rgba(0, 0, 0, 1)".
func HexToRGBA(hex string, alpha float64) string {
	if hex == "" {
		return fallbackRGBA
	}

	digits := []rune(strings.Replace(hex, "#", "", 1))
	if len(digits) == 3 {
		expanded := make([]rune, 0, 6)
		for _, d := range digits {
			expanded = append(expanded, d, d)
		}
		digits = expanded
	}

	r := channel(digits, 0)
	g := channel(digits, 2)
	b := channel(digits, 4)
	return fmt.Sprintf("rgba(%s, %s, %s, %s)", r, g, b, formatAlpha(alpha))
}

// channel parses the two-character pair starting at i.
func channel(digits []rune, i int) string {
	end := min(i+2, len(digits))
	if i >= end {
		return "NaN"
	}
	v, ok := parseHexPrefix(string(digits[i:end]))
	if !ok {
		return "NaN"
	}
	return strconv.FormatInt(v, 10)
}

// parseHexPrefix reads the longest run of hex digits at the start of s,
// after optional leading whitespace, sign and "0x" prefix.
func parseHexPrefix(s string) (int64, bool) {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}

	var v int64
	n := 0
	for ; n < len(s); n++ {
		d, ok := hexDigit(s[n])
		if !ok {
			break
		}
		v = v*16 + d
	}
	if n == 0 {
		return 0, false
	}
	if neg {
		v = -v
	}
	return v, true
}

func hexDigit(c byte) (int64, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int64(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int64(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int64(c-'A') + 10, true
	}
	return 0, false
}

// formatAlpha prints a as the shortest decimal that round-trips, switching to
// exponent notation outside [1e-6, 1e21).
func formatAlpha(a float64) string {
	switch {
	case math.IsNaN(a):
		return "NaN"
	case math.IsInf(a, 1):
		return "Infinity"
	case math.IsInf(a, -1):
		return "-Infinity"
	}
	if a == 0 {
		return "0"
	}
	if abs := math.Abs(a); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(a, 'f', -1, 64)
	}
	s := strconv.FormatFloat(a, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	exp = strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + exp
}
