// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package value

import (
	"regexp"
	"strconv"
)

var intForms = []struct {
	re   *regexp.Regexp
	base int
}{
	{regexp.MustCompile(`^([+-]?[0-9]{1,19})$`), 10},
	{regexp.MustCompile(`^0x([0-9A-Fa-f]{1,16})$`), 16},
	{regexp.MustCompile(`^0o([0-7]{1,32})$`), 8},
	{regexp.MustCompile(`^0b([01]{1,64})$`), 2},
}

// parseInt recognizes decimal, hexadecimal, octal and binary integer
// literals. A form whose decode overflows int64 is skipped and the
// remaining forms are still tried.
func parseInt(s string) (int64, bool) {
	for _, form := range intForms {
		m := form.re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		n, err := strconv.ParseInt(m[1], form.base, 64)
		if err != nil {
			continue
		}
		return n, true
	}
	return 0, false
}
