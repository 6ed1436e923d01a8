// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envir

import (
	"encoding"
	"errors"
	"fmt"
	"net/netip"
	"reflect"
	"time"

	"github.com/z5labs/envir/value"

	"github.com/go-viper/mapstructure/v2"
)

// Unmarshal decodes the Snapshot into v. Struct fields are matched to
// environment keys via the "env" tag. Fields whose type lines up with
// the inferred kind receive the typed payload, while string fields and
// encoding.TextUnmarshaler implementations receive the raw text.
func (s *Snapshot) Unmarshal(v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "env",
		Result:  v,
		DecodeHook: composeDecodeHooks(
			typedPayloadHookFunc(),
			textUnmarshalerHookFunc(),
			timeDurationHookFunc(),
		),
	})
	if err != nil {
		return err
	}

	m := make(map[string]any, len(s.values))
	for k, val := range s.values {
		m[k] = val
	}
	return dec.Decode(m)
}

var errInvalidDecodeCondition = errors.New("invalid decode condition")

// TypeCoercionError occurs when attempting to unmarshal an environment
// value to a struct field whose type does not match the value type, up
// to, coercion.
type TypeCoercionError struct {
	from  reflect.Value
	to    reflect.Value
	Cause error
}

// Error implements the error interface.
func (e TypeCoercionError) Error() string {
	return fmt.Sprintf("failed to coerce value from %s to %s: %s", e.from.Type(), e.to.Type(), e.Cause)
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e TypeCoercionError) Unwrap() error {
	return e.Cause
}

func composeDecodeHooks(hs ...mapstructure.DecodeHookFuncValue) mapstructure.DecodeHookFuncValue {
	return func(f, t reflect.Value) (any, error) {
		for _, h := range hs {
			v, err := h(f, t)
			if err == nil {
				return v, nil
			}
			if err == errInvalidDecodeCondition {
				continue
			}
			return nil, TypeCoercionError{
				from:  f,
				to:    t,
				Cause: err,
			}
		}
		return f.Interface(), nil
	}
}

var (
	addrType     = reflect.TypeOf(netip.Addr{})
	addrPortType = reflect.TypeOf(netip.AddrPort{})
)

func typedPayloadHookFunc() mapstructure.DecodeHookFuncValue {
	return func(f, t reflect.Value) (any, error) {
		val, ok := f.Interface().(value.Value)
		if !ok {
			return nil, errInvalidDecodeCondition
		}

		switch t.Type() {
		case addrType:
			if ip, ok := val.AsIP(); ok {
				return ip, nil
			}
			return nil, errInvalidDecodeCondition
		case addrPortType:
			if ap, ok := val.AsSocket(); ok {
				return ap, nil
			}
			return nil, errInvalidDecodeCondition
		}

		switch t.Kind() {
		case reflect.Bool:
			if b, ok := val.AsBool(); ok {
				return b, nil
			}
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if n, ok := val.AsInt(); ok {
				return n, nil
			}
		case reflect.Float32, reflect.Float64:
			if fl, ok := val.AsFloat(); ok {
				return fl, nil
			}
			if n, ok := val.AsInt(); ok {
				return float64(n), nil
			}
		case reflect.Slice, reflect.Array:
			if elems, ok := val.AsArray(); ok {
				return elems, nil
			}
			// Single segment inputs collapse to their lone element so
			// wrap them back up for sequence shaped fields.
			return []value.Value{val}, nil
		case reflect.String:
			return val.Raw(), nil
		}
		return nil, errInvalidDecodeCondition
	}
}

func timeDurationHookFunc() mapstructure.DecodeHookFuncValue {
	return func(f, t reflect.Value) (any, error) {
		if t.Type() != reflect.TypeOf(time.Duration(0)) {
			return nil, errInvalidDecodeCondition
		}
		val, ok := f.Interface().(value.Value)
		if !ok {
			return nil, errInvalidDecodeCondition
		}
		if n, ok := val.AsInt(); ok {
			return time.Duration(n), nil
		}
		return time.ParseDuration(val.Raw())
	}
}

func textUnmarshalerHookFunc() mapstructure.DecodeHookFuncValue {
	return func(f, t reflect.Value) (any, error) {
		var text string
		switch x := f.Interface().(type) {
		case value.Value:
			text = x.Raw()
		case string:
			text = x
		default:
			return nil, errInvalidDecodeCondition
		}

		result := reflect.New(t.Type()).Interface()
		u, ok := result.(encoding.TextUnmarshaler)
		if !ok {
			return nil, errInvalidDecodeCondition
		}
		err := u.UnmarshalText([]byte(text))
		if err != nil {
			return nil, err
		}
		return result, nil
	}
}
