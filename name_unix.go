//go:build unix

// SPDX-License-Identifier: GPL-3.0-or-later

package oserror

import "golang.org/x/sys/unix"

// Name returns the symbolic name of the code (e.g., "ENOENT"), or the
// empty string when the platform has no name for it.
func (c Code) Name() string {
	return unix.ErrnoName(unix.Errno(c))
}
