// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envir_test

import (
	"fmt"

	"github.com/z5labs/envir"
)

func ExampleBuild() {
	snap := envir.Build(envir.Environ(func() []string {
		return []string{
			"PORT=8080",
			"DEBUG=true",
			"PATH=/bin:/usr/bin",
		}
	}))

	port, _ := snap.Int("PORT")
	debug, _ := snap.Bool("DEBUG")
	path, _ := snap.Array("PATH")

	fmt.Println(port, debug, len(path))
	// Output: 8080 true 2
}

func ExampleSnapshot_Get() {
	snap := envir.Build(envir.Environ(func() []string {
		return []string{"TIMEOUT=0x1F"}
	}))

	v, ok := snap.Get("TIMEOUT")
	if !ok {
		return
	}

	n, _ := v.AsInt()
	fmt.Println(v.Kind(), n, v.Raw())
	// Output: int 31 0x1F
}

func ExampleSnapshot_Unmarshal() {
	snap := envir.Build(envir.Environ(func() []string {
		return []string{
			"HTTP_PORT=8080",
			"VERBOSE=t",
		}
	}))

	var cfg struct {
		Port    int  `env:"HTTP_PORT"`
		Verbose bool `env:"VERBOSE"`
	}
	err := snap.Unmarshal(&cfg)
	if err != nil {
		return
	}

	fmt.Println(cfg.Port, cfg.Verbose)
	// Output: 8080 true
}
