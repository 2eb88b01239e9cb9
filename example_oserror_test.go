// SPDX-License-Identifier: GPL-3.0-or-later

package oserror_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bassosimone/oserror"
	"github.com/bassosimone/runtimex"
)

// This example shows how to extract the raw OS error code from a
// failed file operation and tally it inside a map, which only works
// because [oserror.Code] is a plain comparable value.
func Example_fromError() {
	_, err := os.Open(filepath.Join(os.TempDir(), "oserror-example-missing-file"))
	code := runtimex.PanicOnError1(oserror.FromError(err))

	counts := map[oserror.Code]int{}
	counts[code]++

	fmt.Println(counts[code])
	// Output: 1
}

// This example shows that converting a code to a generic error and
// back yields the identical code.
func Example_roundTrip() {
	code := oserror.New(98)
	back := runtimex.PanicOnError1(oserror.FromError(code.Err()))

	fmt.Println(back == code)
	// Output: true
}

// This example shows that errors without a system-call origin are
// never coerced into a code.
func Example_notAnOSError() {
	_, err := oserror.FromError(errors.New("not from a system call"))

	fmt.Println(errors.Is(err, oserror.ErrNotAnOSError))
	// Output: true
}

// This example shows how to deduplicate the distinct failures
// observed across many operations.
func Example_dedup() {
	codes := oserror.Codes{
		oserror.New(111),
		oserror.New(2),
		oserror.New(111),
		oserror.New(13),
	}

	for _, code := range codes.Dedup() {
		fmt.Println(int(code))
	}
	// Output:
	// 2
	// 13
	// 111
}
