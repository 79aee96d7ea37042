// Copyright (c) 2024 ringlab and contributors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bounded

import "slices"

// Slices returns the deque's contents as at most two contiguous runs of the
// underlying ring buffer, front first. The second slice is non-empty only
// when the ring currently wraps. No copying happens: writes through the
// returned slices are visible in the deque, and the views are valid only
// until the next mutation.
func (d *Deque[T]) Slices() (front, back []T) {
	if d.count == 0 {
		return nil, nil
	}
	if d.off+d.count <= len(d.buf) {
		return d.buf[d.off : d.off+d.count], nil
	}
	return d.buf[d.off:], d.buf[:d.off+d.count-len(d.buf)]
}

// MakeContiguous rearranges the ring buffer in place, without allocating, so
// the elements occupy one unbroken run, and returns that run. Logical order
// is unchanged; afterwards Slices returns a single slice.
func (d *Deque[T]) MakeContiguous() []T {
	if d.count == 0 {
		d.off = 0
		return d.buf[:0]
	}
	if d.off+d.count <= len(d.buf) {
		return d.buf[d.off : d.off+d.count]
	}
	// The ring wraps: rotate the whole buffer left by off with the classic
	// triple reversal, carrying the vacant slots along.
	slices.Reverse(d.buf[:d.off])
	slices.Reverse(d.buf[d.off:])
	slices.Reverse(d.buf)
	d.off = 0
	return d.buf[:d.count]
}
