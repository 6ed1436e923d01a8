// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFloat(t *testing.T) {
	t.Run("will decode common literal shapes", func(t *testing.T) {
		cases := map[string]float64{
			"3.14":     3.14,
			"-3.14":    -3.14,
			"2.5E10":   2.5e10,
			"-2.5e-10": -2.5e-10,
			".5":       0.5,
			"0.5":      0.5,
			"5.":       5,
			"2e10":     2e10,
			"+1.0":     1,
		}
		for s, want := range cases {
			f, ok := parseFloat(s)
			if !assert.True(t, ok, s) {
				return
			}
			if !assert.Equal(t, want, f, s) {
				return
			}
		}
	})

	t.Run("will decode special tokens", func(t *testing.T) {
		f, ok := parseFloat("inf")
		if !assert.True(t, ok) {
			return
		}
		if !assert.True(t, math.IsInf(f, 1)) {
			return
		}

		f, ok = parseFloat("-Inf")
		if !assert.True(t, ok) {
			return
		}
		if !assert.True(t, math.IsInf(f, -1)) {
			return
		}

		f, ok = parseFloat("NaN")
		if !assert.True(t, ok) {
			return
		}
		if !assert.True(t, math.IsNaN(f)) {
			return
		}
	})

	t.Run("will not match", func(t *testing.T) {
		t.Run("if neither an integer nor fractional part is present", func(t *testing.T) {
			for _, s := range []string{".", "", "e10", "+"} {
				_, ok := parseFloat(s)
				if !assert.False(t, ok, s) {
					return
				}
			}
		})

		t.Run("if the text is not a floating point literal", func(t *testing.T) {
			for _, s := range []string{"3.14.15", "1e", "abc", "0x1p4", "127.0.0.1"} {
				_, ok := parseFloat(s)
				if !assert.False(t, ok, s) {
					return
				}
			}
		})
	})
}
