// SPDX-License-Identifier: GPL-3.0-or-later

package oserror

import "slices"

// Codes is a collection of raw OS error codes.
//
// The natural integer order of [Code] gives collections a
// deterministic order, which is useful when aggregating the distinct
// failures observed across many operations.
type Codes []Code

// Sort sorts the codes in place in ascending numeric order.
func (cs Codes) Sort() {
	slices.Sort(cs)
}

// Dedup sorts the codes and returns the prefix with adjacent
// duplicates removed. Like [slices.Compact], it modifies cs and the
// returned slice shares its storage.
func (cs Codes) Dedup() Codes {
	slices.Sort(cs)
	return slices.Compact(cs)
}
