// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package value infers typed values from environment style text while
// preserving the original text losslessly.
package value

import "strings"

const delimiter = ":"

// Infer runs the detector cascade over s and returns the first typed
// representation which both matches lexically and decodes successfully.
// It never fails: text no detector claims comes back as a string Value.
//
// Detectors run from the most lexically restrictive grammar to the
// least: integer, float, boolean, socket address, IP address and then
// delimiter splitting. Splitting runs after the address detectors so
// host:port text is claimed as a socket address instead of being torn
// into segments.
func Infer(s string) Value {
	if n, ok := parseInt(s); ok {
		return intValue(n, s)
	}
	if f, ok := parseFloat(s); ok {
		return floatValue(f, s)
	}
	if b, ok := parseBool(s); ok {
		return boolValue(b, s)
	}
	if ap, ok := parseSocket(s); ok {
		return sockValue(ap, s)
	}
	if ip, ok := parseIP(s); ok {
		return ipValue(ip, s)
	}
	if v, ok := split(s); ok {
		return v
	}
	return stringValue(s)
}

// split breaks s on ':', the conventional PATH style array delimiter.
// Segments are trimmed of surrounding whitespace and dropped if empty.
// A single surviving segment collapses to that segment's own inferred
// Value rather than a one element array.
func split(s string) (Value, bool) {
	if !strings.Contains(s, delimiter) {
		return Value{}, false
	}

	var elems []Value
	for _, seg := range strings.Split(s, delimiter) {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		elems = append(elems, Infer(seg))
	}

	switch len(elems) {
	case 0:
		return Value{}, false
	case 1:
		return elems[0], true
	default:
		return arrayValue(elems, s), true
	}
}
