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
	"fmt"
	"iter"
)

// Insert places value at index i, shifting the elements at i and beyond one
// position toward the back. If the deque is full, the back element is removed
// before the shift and returned with ok == true.
//
// Because eviction happens first, i is validated against the post-eviction
// length: inserting into a full deque of length n accepts indexes up to n-1.
// Insert panics if i is out of that range.
func (d *Deque[T]) Insert(i int, value T) (evicted T, ok bool) {
	postLen := d.count
	full := d.count == d.maxLen
	if full && d.maxLen > 0 {
		postLen--
	}
	if i < 0 || i > postLen {
		panic(fmt.Sprintf("bounded: Insert() called with index %d out of range for length %d", i, postLen))
	}
	if d.maxLen == 0 {
		return value, true
	}
	if full {
		evicted, ok = d.popBack(), true
	}
	d.grow()
	mask := len(d.buf) - 1
	if i <= d.count/2 {
		// Move the i front elements one slot toward the front.
		d.off = (d.off - 1) & mask
		for j := 0; j < i; j++ {
			d.buf[(d.off+j)&mask] = d.buf[(d.off+j+1)&mask]
		}
	} else {
		// Move the count-i back elements one slot toward the back.
		for j := d.count; j > i; j-- {
			d.buf[(d.off+j)&mask] = d.buf[(d.off+j-1)&mask]
		}
	}
	d.buf[(d.off+i)&mask] = value
	d.count++
	return evicted, ok
}

// Remove removes and returns the element at index i, closing the gap by
// shifting whichever side has fewer elements. ok is false if i is out of
// range; nothing is evicted, since the length only decreases.
func (d *Deque[T]) Remove(i int) (value T, ok bool) {
	if i < 0 || i >= d.count {
		return value, false
	}
	mask := len(d.buf) - 1
	value = d.buf[(d.off+i)&mask]
	var zero T
	if i < d.count-i-1 {
		// Move the i front elements one slot toward the back.
		for j := i; j > 0; j-- {
			d.buf[(d.off+j)&mask] = d.buf[(d.off+j-1)&mask]
		}
		d.buf[d.off] = zero
		d.off = (d.off + 1) & mask
	} else {
		// Move the trailing elements one slot toward the front.
		for j := i; j < d.count-1; j++ {
			d.buf[(d.off+j)&mask] = d.buf[(d.off+j+1)&mask]
		}
		d.buf[(d.off+d.count-1)&mask] = zero
	}
	d.count--
	return value, true
}

// RemoveFirst removes the first element equal to value. It returns the
// removed element, with ok == false if no element matched.
//
// This is a function rather than a method to keep Deque itself free of the
// comparable constraint.
func RemoveFirst[T comparable](d *Deque[T], value T) (removed T, ok bool) {
	if i := Index(d, value); i >= 0 {
		return d.Remove(i)
	}
	return removed, false
}

// Extend appends the given values to the back, evicting from the front as
// needed, exactly as repeated PushBack calls would. It returns the number of
// evicted elements.
func (d *Deque[T]) Extend(values ...T) int {
	if len(values) <= d.Remaining() {
		// The batch is known to fit: no eviction possible.
		for _, v := range values {
			d.PushBack(v)
		}
		return 0
	}
	evictions := 0
	for _, v := range values {
		if _, ok := d.PushBack(v); ok {
			evictions++
		}
	}
	return evictions
}

// ExtendSeq appends the elements of seq to the back one at a time, so the
// length bound holds even mid-way through a sequence of unknown size. It
// returns the number of evicted elements.
func (d *Deque[T]) ExtendSeq(seq iter.Seq[T]) int {
	evictions := 0
	for v := range seq {
		if _, ok := d.PushBack(v); ok {
			evictions++
		}
	}
	return evictions
}

// ExtendFront prepends the given values one at a time, evicting from the back
// as needed. Since each value lands at the front, the batch ends up in
// reverse order: ExtendFront(1, 2, 3) on [4 5] yields [3 2 1 4 5]. It returns
// the number of evicted elements.
func (d *Deque[T]) ExtendFront(values ...T) int {
	evictions := 0
	for _, v := range values {
		if _, ok := d.PushFront(v); ok {
			evictions++
		}
	}
	return evictions
}

// ExtendFrontSeq prepends the elements of seq one at a time, with the same
// ordering and eviction behavior as ExtendFront.
func (d *Deque[T]) ExtendFrontSeq(seq iter.Seq[T]) int {
	evictions := 0
	for v := range seq {
		if _, ok := d.PushFront(v); ok {
			evictions++
		}
	}
	return evictions
}

// Truncate keeps the first n elements and drops the rest. It does nothing if
// n >= Len, and panics if n is negative.
func (d *Deque[T]) Truncate(n int) {
	if n < 0 {
		panic(fmt.Sprintf("bounded: Truncate() called with negative length %d", n))
	}
	if n >= d.count {
		return
	}
	var zero T
	for j := n; j < d.count; j++ {
		d.buf[d.index(j)] = zero
	}
	d.count = n
}

// Clear removes all elements. Capacity and the ring buffer are retained, and
// the vacated slots are zeroed so stale references do not pin memory.
func (d *Deque[T]) Clear() {
	var zero T
	for j := 0; j < d.count; j++ {
		d.buf[d.index(j)] = zero
	}
	d.off = 0
	d.count = 0
}

// Retain keeps only the elements for which keep returns true, preserving
// their relative order. Each element is visited exactly once, front to back.
func (d *Deque[T]) Retain(keep func(value T) bool) {
	d.RetainMut(func(p *T) bool { return keep(*p) })
}

// RetainMut is Retain with a mutable view: keep may modify the element in
// place before deciding whether it stays.
func (d *Deque[T]) RetainMut(keep func(value *T) bool) {
	mask := len(d.buf) - 1
	w := 0
	for j := 0; j < d.count; j++ {
		p := &d.buf[(d.off+j)&mask]
		if keep(p) {
			if w != j {
				d.buf[(d.off+w)&mask] = *p
			}
			w++
		}
	}
	var zero T
	for j := w; j < d.count; j++ {
		d.buf[(d.off+j)&mask] = zero
	}
	d.count = w
}

// Drain removes the elements in [start, end) and returns them in order. It
// panics, before mutating anything, if start > end, end > Len, or start is
// negative.
func (d *Deque[T]) Drain(start, end int) []T {
	if start < 0 || start > end || end > d.count {
		panic(fmt.Sprintf("bounded: Drain() called with invalid range [%d, %d) for length %d", start, end, d.count))
	}
	n := end - start
	out := make([]T, n)
	if n == 0 {
		return out
	}
	mask := len(d.buf) - 1
	for k := 0; k < n; k++ {
		out[k] = d.buf[(d.off+start+k)&mask]
	}
	var zero T
	if start < d.count-end {
		// Fewer elements before the range: slide them toward the back.
		for j := start - 1; j >= 0; j-- {
			d.buf[(d.off+j+n)&mask] = d.buf[(d.off+j)&mask]
		}
		for j := 0; j < n; j++ {
			d.buf[(d.off+j)&mask] = zero
		}
		d.off = (d.off + n) & mask
	} else {
		// Fewer elements after the range: slide them toward the front.
		for j := end; j < d.count; j++ {
			d.buf[(d.off+j-n)&mask] = d.buf[(d.off+j)&mask]
		}
		for j := d.count - n; j < d.count; j++ {
			d.buf[(d.off+j)&mask] = zero
		}
	}
	d.count -= n
	return out
}

// RotateLeft cyclically shifts the deque n places to the left: the front
// moves toward the back. It panics if n is negative or greater than Len;
// callers wanting wraparound reduce n modulo Len themselves.
func (d *Deque[T]) RotateLeft(n int) {
	if n < 0 || n > d.count {
		panic(fmt.Sprintf("bounded: RotateLeft() called with %d out of range for length %d", n, d.count))
	}
	if n == 0 || n == d.count {
		return
	}
	if n > d.count-n {
		d.rotateRight(d.count - n)
		return
	}
	d.rotateLeft(n)
}

// RotateRight cyclically shifts the deque n places to the right: the back
// moves toward the front. It panics if n is negative or greater than Len.
func (d *Deque[T]) RotateRight(n int) {
	if n < 0 || n > d.count {
		panic(fmt.Sprintf("bounded: RotateRight() called with %d out of range for length %d", n, d.count))
	}
	if n == 0 || n == d.count {
		return
	}
	if n > d.count-n {
		d.rotateLeft(d.count - n)
		return
	}
	d.rotateRight(n)
}

func (d *Deque[T]) rotateLeft(n int) {
	mask := len(d.buf) - 1
	if d.count == len(d.buf) {
		// Full buffer: rotating is just moving the origin.
		d.off = (d.off + n) & mask
		return
	}
	var zero T
	for k := 0; k < n; k++ {
		d.buf[(d.off+d.count)&mask] = d.buf[d.off]
		d.buf[d.off] = zero
		d.off = (d.off + 1) & mask
	}
}

func (d *Deque[T]) rotateRight(n int) {
	mask := len(d.buf) - 1
	if d.count == len(d.buf) {
		d.off = (d.off - n) & mask
		return
	}
	var zero T
	for k := 0; k < n; k++ {
		d.off = (d.off - 1) & mask
		end := (d.off + d.count) & mask
		d.buf[d.off] = d.buf[end]
		d.buf[end] = zero
	}
}

// Reverse reverses the order of the elements in place.
func (d *Deque[T]) Reverse() {
	mask := len(d.buf) - 1
	for i, j := 0, d.count-1; i < j; i, j = i+1, j-1 {
		a, b := (d.off+i)&mask, (d.off+j)&mask
		d.buf[a], d.buf[b] = d.buf[b], d.buf[a]
	}
}

// Swap exchanges the elements at indexes i and j. i == j is a valid no-op.
// Swap panics if either index is out of range.
func (d *Deque[T]) Swap(i, j int) {
	d.checkIndex("Swap", i)
	d.checkIndex("Swap", j)
	a, b := d.index(i), d.index(j)
	d.buf[a], d.buf[b] = d.buf[b], d.buf[a]
}
