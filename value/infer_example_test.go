// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package value_test

import (
	"fmt"

	"github.com/z5labs/envir/value"
)

func ExampleInfer() {
	for _, s := range []string{"0x1F", "3.14", "TRUE", "127.0.0.1:8080", "a:b:c", "hello"} {
		v := value.Infer(s)
		fmt.Println(v.Kind(), v.Raw())
	}
	// Output:
	// int 0x1F
	// float 3.14
	// bool TRUE
	// socket 127.0.0.1:8080
	// array a:b:c
	// string hello
}

func ExampleValue_AsArray() {
	v := value.Infer("10:t:example")

	elems, ok := v.AsArray()
	if !ok {
		return
	}
	for _, e := range elems {
		fmt.Println(e.Kind(), e.Raw())
	}
	// Output:
	// int 10
	// bool t
	// string example
}
