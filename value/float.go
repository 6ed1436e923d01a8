// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package value

import (
	"regexp"
	"strconv"
)

// Optional sign, then either a special token or a numeral with at least
// one of an integer part and a fractional part, plus an optional
// exponent. The special tokens are case insensitive to match what
// strconv.ParseFloat accepts.
var floatRegexp = regexp.MustCompile(`^[+-]?((?i:inf|nan)|([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?)$`)

// parseFloat recognizes decimal and scientific floating point literals
// plus the infinity and NaN tokens.
func parseFloat(s string) (float64, bool) {
	if !floatRegexp.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
