// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package value

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/netip"
)

// Kind identifies which typed representation a Value carries.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt
	KindFloat
	KindSocketAddr
	KindIPAddr
	KindArray
)

// String implements the fmt.Stringer interface.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindSocketAddr:
		return "socket"
	case KindIPAddr:
		return "ip"
	case KindArray:
		return "array"
	default:
		return "string"
	}
}

// Value carries both the typed representation of a piece of environment
// text and the exact text it was inferred from. Converting text into a
// type safe format can drop information, so the original text is always
// recoverable via Raw.
//
// A Value is constructed once by Infer and never mutated afterwards.
type Value struct {
	kind Kind
	raw  string

	b     bool
	n     int64
	f     float64
	addr  netip.Addr
	sock  netip.AddrPort
	elems []Value
}

func stringValue(raw string) Value {
	return Value{kind: KindString, raw: raw}
}

func boolValue(b bool, raw string) Value {
	return Value{kind: KindBool, raw: raw, b: b}
}

func intValue(n int64, raw string) Value {
	return Value{kind: KindInt, raw: raw, n: n}
}

func floatValue(f float64, raw string) Value {
	return Value{kind: KindFloat, raw: raw, f: f}
}

func sockValue(ap netip.AddrPort, raw string) Value {
	return Value{kind: KindSocketAddr, raw: raw, sock: ap}
}

func ipValue(ip netip.Addr, raw string) Value {
	return Value{kind: KindIPAddr, raw: raw, addr: ip}
}

func arrayValue(elems []Value, raw string) Value {
	return Value{kind: KindArray, raw: raw, elems: elems}
}

// Kind returns which typed representation the Value carries.
func (v Value) Kind() Kind {
	return v.kind
}

// Raw returns the exact text the Value was inferred from. It always
// succeeds. For an array it is the complete un-split input, not a
// reconstruction from the trimmed segments.
func (v Value) Raw() string {
	return v.raw
}

// String implements the fmt.Stringer interface. It is equivalent to Raw.
func (v Value) String() string {
	return v.raw
}

// AsBool returns the payload of a boolean Value.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsInt returns the payload of an integer Value.
func (v Value) AsInt() (int64, bool) {
	return v.n, v.kind == KindInt
}

// AsFloat returns the payload of a floating point Value.
func (v Value) AsFloat() (float64, bool) {
	return v.f, v.kind == KindFloat
}

// AsSocket returns the payload of a socket address Value.
func (v Value) AsSocket() (netip.AddrPort, bool) {
	return v.sock, v.kind == KindSocketAddr
}

// AsIP returns the payload of an IP address Value.
func (v Value) AsIP() (netip.Addr, bool) {
	return v.addr, v.kind == KindIPAddr
}

// AsIPv4 returns the payload of an IP address Value holding an IPv4 address.
func (v Value) AsIPv4() (netip.Addr, bool) {
	if v.kind != KindIPAddr || !v.addr.Is4() {
		return netip.Addr{}, false
	}
	return v.addr, true
}

// AsIPv6 returns the payload of an IP address Value holding an IPv6 address.
func (v Value) AsIPv6() (netip.Addr, bool) {
	if v.kind != KindIPAddr || !v.addr.Is6() {
		return netip.Addr{}, false
	}
	return v.addr, true
}

// AsArray returns the elements of an array Value. The returned slice is
// a copy so the underlying tree stays read-only.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	elems := make([]Value, len(v.elems))
	copy(elems, v.elems)
	return elems, true
}

// Equal reports whether two Values have the same kind, payload and raw
// text. NaN floats compare equal to each other.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind || v.raw != o.raw {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.n == o.n
	case KindFloat:
		if math.IsNaN(v.f) && math.IsNaN(o.f) {
			return true
		}
		return v.f == o.f
	case KindSocketAddr:
		return v.sock == o.sock
	case KindIPAddr:
		return v.addr == o.addr
	case KindArray:
		if len(v.elems) != len(o.elems) {
			return false
		}
		for i := range v.elems {
			if !v.elems[i].Equal(o.elems[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// LogValue implements the slog.LogValuer interface.
func (v Value) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", v.kind.String()),
		slog.String("raw", v.raw),
	)
}

// MarshalJSON implements the json.Marshaler interface.
func (v Value) MarshalJSON() ([]byte, error) {
	type object struct {
		Kind  string `json:"kind"`
		Raw   string `json:"raw"`
		Value any    `json:"value,omitempty"`
	}

	o := object{
		Kind: v.kind.String(),
		Raw:  v.raw,
	}
	switch v.kind {
	case KindBool:
		o.Value = v.b
	case KindInt:
		o.Value = v.n
	case KindFloat:
		// JSON has no encoding for non-finite numbers.
		if math.IsInf(v.f, 0) || math.IsNaN(v.f) {
			o.Value = v.raw
		} else {
			o.Value = v.f
		}
	case KindSocketAddr:
		o.Value = v.sock.String()
	case KindIPAddr:
		o.Value = v.addr.String()
	case KindArray:
		o.Value = v.elems
	}
	return json.Marshal(o)
}
