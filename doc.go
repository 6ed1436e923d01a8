// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package envir provides common sense typed access to environment
// variables while faithfully preserving their original text.
//
// Values are inferred by convention:
//
//   - 0x1F, 0o17, 0b101 and plain runs of digits become 64-bit integers
//   - common floating point shapes (0.5, .5, 3.14, 2.5E10) become float64
//   - t, T, f, F, true, false, TRUE and FALSE become booleans
//   - IP addresses and ip:port pairs become netip values
//   - ':' is treated as an array delimiter, as convention suggests
//   - anything else stays a string
//
// Inference is based on convention and may not fit all use cases, but
// it should fit most. The original text of every entry is always
// recoverable, so nothing is lost when a convention does not apply.
//
// A Snapshot is captured once, at Build, and never re-syncs with the
// environment afterwards. Modifying the process environment after start
// up is generally considered an anti-pattern.
package envir
