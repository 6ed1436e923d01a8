// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package value

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSocket(t *testing.T) {
	t.Run("will decode ip port pairs", func(t *testing.T) {
		ap, ok := parseSocket("127.0.0.1:8080")
		if !assert.True(t, ok) {
			return
		}
		if !assert.Equal(t, netip.MustParseAddrPort("127.0.0.1:8080"), ap) {
			return
		}

		ap, ok = parseSocket("[::1]:443")
		if !assert.True(t, ok) {
			return
		}
		if !assert.Equal(t, uint16(443), ap.Port()) {
			return
		}
	})

	t.Run("will not match", func(t *testing.T) {
		t.Run("if the host is not an IP address", func(t *testing.T) {
			_, ok := parseSocket("localhost:8080")
			if !assert.False(t, ok) {
				return
			}
		})

		t.Run("if the port is out of range", func(t *testing.T) {
			_, ok := parseSocket("127.0.0.1:99999")
			if !assert.False(t, ok) {
				return
			}
		})
	})
}

func TestParseIP(t *testing.T) {
	t.Run("will decode bare addresses", func(t *testing.T) {
		for _, s := range []string{"127.0.0.1", "::1", "fe80::1", "2001:db8::68"} {
			ip, ok := parseIP(s)
			if !assert.True(t, ok, s) {
				return
			}
			if !assert.Equal(t, netip.MustParseAddr(s), ip, s) {
				return
			}
		}
	})

	t.Run("will not match", func(t *testing.T) {
		t.Run("if an octet is out of range", func(t *testing.T) {
			_, ok := parseIP("256.1.1.1")
			if !assert.False(t, ok) {
				return
			}
		})

		t.Run("if the text is a host name", func(t *testing.T) {
			_, ok := parseIP("localhost")
			if !assert.False(t, ok) {
				return
			}
		})
	})
}
