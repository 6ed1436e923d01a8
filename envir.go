// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envir

import (
	"net/netip"
	"os"
	"strings"

	"github.com/z5labs/envir/value"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Snapshot is a typed, point in time view of an environment.
//
// The underlying mapping is never written after Build returns, so one
// *Snapshot may be shared across any number of concurrently reading
// goroutines without synchronization. None of its methods mutate the
// interior data.
type Snapshot struct {
	values map[string]value.Value
}

type options struct {
	environ     func() []string
	log         *zap.Logger
	parallelism int
}

// Option is used to configure how Build captures the environment.
type Option func(*options)

// Environ overrides the source of environment entries. Each entry must
// be in "key=value" form; entries without '=' are skipped. The default
// source is os.Environ.
func Environ(f func() []string) Option {
	return func(o *options) {
		o.environ = f
	}
}

// Logger sets the logger used while capturing the environment. By
// default nothing is logged.
func Logger(logger *zap.Logger) Option {
	return func(o *options) {
		o.log = logger
	}
}

// Parallelism fans value inference out over, at most, n goroutines.
// Entries are inferred independently of each other so the resulting
// Snapshot is identical to one built sequentially.
func Parallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// Build captures every entry the data source currently reports and
// infers a typed Value for each. When a key repeats, the last entry
// wins. The returned Snapshot never re-syncs with the data source.
func Build(opts ...Option) *Snapshot {
	o := options{
		environ:     os.Environ,
		log:         zap.NewNop(),
		parallelism: 1,
	}
	for _, opt := range opts {
		opt(&o)
	}

	var keys, raws []string
	for _, pair := range o.environ() {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			o.log.Debug("skipping malformed environment entry", zap.String("entry", pair))
			continue
		}
		keys = append(keys, k)
		raws = append(raws, v)
	}

	inferred := make([]value.Value, len(raws))
	if o.parallelism > 1 {
		var g errgroup.Group
		g.SetLimit(o.parallelism)
		for i := range raws {
			i := i
			g.Go(func() error {
				inferred[i] = value.Infer(raws[i])
				return nil
			})
		}
		g.Wait() // inference is total so no task ever fails
	} else {
		for i, raw := range raws {
			inferred[i] = value.Infer(raw)
		}
	}

	values := make(map[string]value.Value, len(keys))
	for i, k := range keys {
		values[k] = inferred[i]
	}

	o.log.Debug("captured environment", zap.Int("entries", len(values)))
	return &Snapshot{values: values}
}

// Get returns the Value associated with key, if one is present. Key
// comparison is exact, case sensitive string equality.
func (s *Snapshot) Get(key string) (value.Value, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Len returns the number of entries captured by the Snapshot.
func (s *Snapshot) Len() int {
	return len(s.values)
}

// Keys returns the captured keys in no particular order.
func (s *Snapshot) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	return keys
}

// Bool returns the payload for key if its value is a boolean.
func (s *Snapshot) Bool(key string) (bool, bool) {
	v, ok := s.values[key]
	if !ok {
		return false, false
	}
	return v.AsBool()
}

// Int returns the payload for key if its value is an integer.
func (s *Snapshot) Int(key string) (int64, bool) {
	v, ok := s.values[key]
	if !ok {
		return 0, false
	}
	return v.AsInt()
}

// Float returns the payload for key if its value is a floating point number.
func (s *Snapshot) Float(key string) (float64, bool) {
	v, ok := s.values[key]
	if !ok {
		return 0, false
	}
	return v.AsFloat()
}

// Socket returns the payload for key if its value is a socket address.
func (s *Snapshot) Socket(key string) (netip.AddrPort, bool) {
	v, ok := s.values[key]
	if !ok {
		return netip.AddrPort{}, false
	}
	return v.AsSocket()
}

// IP returns the payload for key if its value is an IP address.
func (s *Snapshot) IP(key string) (netip.Addr, bool) {
	v, ok := s.values[key]
	if !ok {
		return netip.Addr{}, false
	}
	return v.AsIP()
}

// IPv4 returns the payload for key if its value is an IPv4 address.
func (s *Snapshot) IPv4(key string) (netip.Addr, bool) {
	v, ok := s.values[key]
	if !ok {
		return netip.Addr{}, false
	}
	return v.AsIPv4()
}

// IPv6 returns the payload for key if its value is an IPv6 address.
func (s *Snapshot) IPv6(key string) (netip.Addr, bool) {
	v, ok := s.values[key]
	if !ok {
		return netip.Addr{}, false
	}
	return v.AsIPv6()
}

// Array returns the elements for key if its value is an array.
func (s *Snapshot) Array(key string) ([]value.Value, bool) {
	v, ok := s.values[key]
	if !ok {
		return nil, false
	}
	return v.AsArray()
}

// String returns the original text for key. It succeeds for any
// present key since every Value preserves its raw text.
func (s *Snapshot) String(key string) (string, bool) {
	v, ok := s.values[key]
	if !ok {
		return "", false
	}
	return v.Raw(), true
}
