// SPDX-License-Identifier: GPL-3.0-or-later

// Package oserror provides a minimal, copyable value type for raw OS
// error codes.
//
// # Core Type
//
// [Code] wraps the integer a platform reports when a system call fails
// (errno on Unix, the last-error value on Windows). It is a plain
// integer value: copy it freely, compare it with == and <, sort it, and
// use it as a map or set key. This matters when you only care about the
// underlying code and do not want to carry full error values around,
// since those may wrap arbitrary, non-comparable state.
//
// # Conversions
//
// Use [FromError] to extract the code from an error chain and
// [Code.Err] to go back:
//
//	code, err := oserror.FromError(openErr)
//	if err != nil {
//		// openErr did not originate from a system call
//	}
//
// [FromError] walks the chain with [errors.As], so wrapped errors such
// as [*io/fs.PathError] and [*os.SyscallError] work. It fails with
// [ErrNotAnOSError] when the chain carries no [syscall.Errno]: custom
// errors, [io.EOF], and friends are never coerced into a code.
//
// The error returned by [Code.Err] is a [syscall.Errno], so it matches
// the [io/fs] sentinel errors through [errors.Is] (e.g., the ENOENT
// code matches [io/fs.ErrNotExist]).
//
// # Display and Diagnostics
//
// [Code.String] delegates to the platform's message lookup ("no such
// file or directory"). [Code.GoString] exposes the literal integer for
// %#v output in diagnostics and test assertions. [Code.Name] returns
// the symbolic constant name on Unix ("ENOENT"). [Code.Class] maps the
// code to the string error classes of [github.com/bassosimone/errclass].
//
// # Platform Boundaries
//
// The same integer can denote different errors on different platforms.
// A [Code] is therefore platform-bound: comparing codes is only
// meaningful when they were captured on the same platform, and the text
// returned by [Code.String] is platform- and locale-dependent.
package oserror
