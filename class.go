// SPDX-License-Identifier: GPL-3.0-or-later

package oserror

import "github.com/bassosimone/errclass"

// Class returns the error class for this code.
//
// Classification delegates to [errclass.New], which maps well-known
// system errors to categorical strings such as [errclass.ECONNRESET]
// and falls back to [errclass.EGENERIC] for codes it does not know.
func (c Code) Class() string {
	return errclass.New(c.Err())
}
