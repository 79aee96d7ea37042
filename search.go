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

import (
	"cmp"
	"slices"
)

// The equality helpers are functions rather than methods so that Deque itself
// stays unconstrained: only the operations that actually compare elements
// require comparable.

// Contains reports whether the deque holds an element equal to value.
func Contains[T comparable](d *Deque[T], value T) bool {
	front, back := d.Slices()
	return slices.Contains(front, value) || slices.Contains(back, value)
}

// Count returns the number of elements equal to value.
func Count[T comparable](d *Deque[T], value T) int {
	n := 0
	for v := range d.Values() {
		if v == value {
			n++
		}
	}
	return n
}

// Index returns the index of the first element equal to value, or -1 if no
// element matches.
func Index[T comparable](d *Deque[T], value T) int {
	front, back := d.Slices()
	if i := slices.Index(front, value); i >= 0 {
		return i
	}
	if i := slices.Index(back, value); i >= 0 {
		return i + len(front)
	}
	return -1
}

// IndexRange returns the index of the first element equal to value within
// [start, end), or -1 if no element in the range matches. end is clamped to
// Len, start to 0; a range that is empty after clamping yields -1.
func IndexRange[T comparable](d *Deque[T], value T, start, end int) int {
	start = max(start, 0)
	end = min(end, d.Len())
	for i := start; i < end; i++ {
		if d.At(i) == value {
			return i
		}
	}
	return -1
}

// IndexFunc returns the index of the first element satisfying match, or -1 if
// none does.
func (d *Deque[T]) IndexFunc(match func(value T) bool) int {
	front, back := d.Slices()
	if i := slices.IndexFunc(front, match); i >= 0 {
		return i
	}
	if i := slices.IndexFunc(back, match); i >= 0 {
		return i + len(front)
	}
	return -1
}

// Equal reports whether a and b hold equal elements in the same order.
// Capacity is deliberately not compared: a deque of capacity 3 and one of
// capacity 30 with the same contents are equal.
func Equal[T comparable](a, b *Deque[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.At(i) != b.At(i) {
			return false
		}
	}
	return true
}

// EqualSlice reports whether the deque holds exactly the elements of s in
// order.
func EqualSlice[T comparable](d *Deque[T], s []T) bool {
	if d.Len() != len(s) {
		return false
	}
	for i, v := range s {
		if d.At(i) != v {
			return false
		}
	}
	return true
}

// BinarySearch searches the deque, which must be sorted in ascending order,
// for target. It returns the position where target was found, or the position
// where it would appear in sort order, and whether it was actually found.
// With duplicates present, any one matching position may be returned.
func BinarySearch[T cmp.Ordered](d *Deque[T], target T) (int, bool) {
	return d.BinarySearchFunc(func(e T) int { return cmp.Compare(e, target) })
}

// BinarySearchFunc is BinarySearch with a custom comparison: compare returns
// a negative number when its argument precedes the target, zero on a match,
// and a positive number when it follows. The deque must be sorted consistently
// with compare; on an unsorted deque the result is unspecified but the deque
// is left untouched.
func (d *Deque[T]) BinarySearchFunc(compare func(value T) int) (int, bool) {
	lo, hi := 0, d.count
	for lo < hi {
		mid := int(uint(lo+hi) / 2)
		if compare(d.buf[d.index(mid)]) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	found := lo < d.count && compare(d.buf[d.index(lo)]) == 0
	return lo, found
}

// BinarySearchKey searches a deque sorted by the key that extract derives
// from each element. It follows the same contract as BinarySearch.
func BinarySearchKey[T any, K cmp.Ordered](d *Deque[T], key K, extract func(value T) K) (int, bool) {
	return d.BinarySearchFunc(func(e T) int { return cmp.Compare(extract(e), key) })
}
