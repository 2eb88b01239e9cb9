//go:build windows

// SPDX-License-Identifier: GPL-3.0-or-later

package oserror

// Name returns the symbolic name of the code.
//
// Windows exposes no symbolic-name table, so this always returns the
// empty string.
func (c Code) Name() string {
	return ""
}
