// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package value

// parseBool recognizes the fixed boolean lexicon. Casings outside the
// lexicon, like "True", are not booleans.
func parseBool(s string) (bool, bool) {
	switch s {
	case "t", "T", "true", "TRUE":
		return true, true
	case "f", "F", "false", "FALSE":
		return false, true
	default:
		return false, false
	}
}
