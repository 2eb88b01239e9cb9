// SPDX-License-Identifier: GPL-3.0-or-later

package oserror

import (
	"cmp"
	"errors"
	"strconv"
	"syscall"
)

// Code is a raw OS error code held verbatim as reported by the
// platform (errno on Unix, the last-error value on Windows).
//
// Code is a plain integer value with no identity beyond its value:
// every holder owns an independent copy and comparisons, hashing, and
// ordering are those of the underlying integer.
type Code int

// New constructs a [Code] holding exactly the given raw code.
//
// Any integer is accepted verbatim. There is no validation of whether
// the code is a real platform error.
func New(code int) Code {
	return Code(code)
}

// ErrNotAnOSError is returned by [FromError] when the error chain does
// not carry a raw OS error code.
var ErrNotAnOSError = errors.New("oserror: not an OS error")

// FromError extracts the raw OS error code from err.
//
// It walks the chain with [errors.As] looking for a [syscall.Errno],
// so wrapped errors such as [*io/fs.PathError] and [*os.SyscallError]
// work. When the chain carries no code (including err being nil), it
// fails with [ErrNotAnOSError]; it never substitutes a default code.
func FromError(err error) (Code, error) {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return 0, ErrNotAnOSError
	}
	return Code(errno), nil
}

// Err converts the code into the generic error it stands for.
//
// The result is a [syscall.Errno] wrapping exactly this code: passing
// it back to [FromError] yields an identical [Code]. It also matches
// the [io/fs] sentinel errors through [errors.Is] (e.g., the ENOENT
// code matches [io/fs.ErrNotExist]).
func (c Code) Err() error {
	return syscall.Errno(c)
}

// Compare returns -1 when c sorts before other, 0 when they are
// equal, and +1 otherwise, using the natural integer order. Use it
// with [slices.SortFunc] and friends; the ordering is deterministic
// and carries no severity meaning.
func (c Code) Compare(other Code) int {
	return cmp.Compare(c, other)
}

// String returns the platform's human-readable description for the
// code (e.g., "no such file or directory"). The text is platform- and
// locale-dependent.
func (c Code) String() string {
	return syscall.Errno(c).Error()
}

// GoString returns an unambiguous representation exposing the raw
// integer (e.g., `oserror.Code(2)`), used by %#v.
func (c Code) GoString() string {
	return "oserror.Code(" + strconv.Itoa(int(c)) + ")"
}
