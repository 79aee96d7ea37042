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

// Package bounded provides a fixed-capacity double-ended queue.
//
// A Deque holds at most Capacity elements. Pushing onto a full deque
// automatically evicts the element at the opposite end and returns it to the
// caller, matching the semantics of Python's collections.deque with maxlen.
//
// A Deque is not safe for concurrent use by multiple goroutines.
package bounded

import (
	"fmt"
	"iter"
	"math/bits"
)

// minBufLen is the smallest non-zero ring buffer size. Must be a power of 2.
const minBufLen = 16

// Deque is a double-ended queue with a fixed maximum length, backed by a
// growable ring buffer. The buffer grows on demand, so an almost-empty deque
// with a large capacity stays small.
//
// The zero value is a usable deque with capacity 0, which retains nothing.
// Use New to create a deque with a useful capacity.
type Deque[T any] struct {
	// Elements live at buf[(off+i) % len(buf)] for i in [0, count).
	// len(buf) is zero or a power of two, and count <= maxLen always holds.
	buf    []T
	off    int
	count  int
	maxLen int
}

// New creates an empty deque that holds at most capacity elements.
//
// A capacity of zero is allowed and produces a degenerate deque that retains
// nothing. New panics if capacity is negative.
func New[T any](capacity int) *Deque[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("bounded: New() called with negative capacity %d", capacity))
	}
	return &Deque[T]{maxLen: capacity}
}

// Of creates a deque containing the single given value.
func Of[T any](value T, capacity int) *Deque[T] {
	d := New[T](capacity)
	d.PushBack(value)
	return d
}

// FromSlice creates a deque with the contents of s. If s is longer than
// capacity, only the first capacity elements are kept; the tail is dropped.
// The deque does not alias s.
func FromSlice[T any](s []T, capacity int) *Deque[T] {
	d := New[T](capacity)
	n := min(len(s), capacity)
	if n > 0 {
		d.buf = make([]T, ceilPow2(n))
		copy(d.buf, s[:n])
		d.count = n
	}
	return d
}

// Collect creates a deque from the elements of seq. The capacity of the
// returned deque equals the number of collected elements.
func Collect[T any](seq iter.Seq[T]) *Deque[T] {
	var s []T
	for v := range seq {
		s = append(s, v)
	}
	return FromSlice(s, len(s))
}

// Len returns the number of elements currently in the deque.
func (d *Deque[T]) Len() int {
	return d.count
}

// IsEmpty returns true if the deque contains no elements.
func (d *Deque[T]) IsEmpty() bool {
	return d.count == 0
}

// IsFull returns true if the deque holds Capacity elements. Pushing onto a
// full deque evicts from the opposite end.
func (d *Deque[T]) IsFull() bool {
	return d.count == d.maxLen
}

// Capacity returns the maximum number of elements the deque can hold. It is
// fixed at construction.
func (d *Deque[T]) Capacity() int {
	return d.maxLen
}

// Remaining returns how many elements can still be pushed before the deque
// starts evicting.
func (d *Deque[T]) Remaining() int {
	return d.maxLen - d.count
}

// PushBack appends value at the back. If the deque is full, the front element
// is removed first and returned with ok == true; otherwise ok is false.
//
// On a capacity-0 deque the pushed value itself is returned as evicted and
// nothing is retained.
func (d *Deque[T]) PushBack(value T) (evicted T, ok bool) {
	if d.maxLen == 0 {
		return value, true
	}
	if d.count == d.maxLen {
		evicted, ok = d.popFront(), true
	}
	d.grow()
	d.buf[d.index(d.count)] = value
	d.count++
	return evicted, ok
}

// PushFront prepends value at the front. If the deque is full, the back
// element is removed first and returned with ok == true; otherwise ok is
// false.
//
// On a capacity-0 deque the pushed value itself is returned as evicted and
// nothing is retained.
func (d *Deque[T]) PushFront(value T) (evicted T, ok bool) {
	if d.maxLen == 0 {
		return value, true
	}
	if d.count == d.maxLen {
		evicted, ok = d.popBack(), true
	}
	d.grow()
	d.off = (d.off - 1) & (len(d.buf) - 1)
	d.buf[d.off] = value
	d.count++
	return evicted, ok
}

// PopFront removes and returns the front element. ok is false if the deque is
// empty.
func (d *Deque[T]) PopFront() (value T, ok bool) {
	if d.count == 0 {
		return value, false
	}
	return d.popFront(), true
}

// PopBack removes and returns the back element. ok is false if the deque is
// empty.
func (d *Deque[T]) PopBack() (value T, ok bool) {
	if d.count == 0 {
		return value, false
	}
	return d.popBack(), true
}

// Front returns the element at the front of the deque. ok is false if the
// deque is empty.
func (d *Deque[T]) Front() (value T, ok bool) {
	if d.count == 0 {
		return value, false
	}
	return d.buf[d.off], true
}

// Back returns the element at the back of the deque. ok is false if the deque
// is empty.
func (d *Deque[T]) Back() (value T, ok bool) {
	if d.count == 0 {
		return value, false
	}
	return d.buf[d.index(d.count-1)], true
}

// FrontPtr returns a pointer to the front element, or nil if the deque is
// empty. The pointer is valid only until the next mutation of the deque.
func (d *Deque[T]) FrontPtr() *T {
	if d.count == 0 {
		return nil
	}
	return &d.buf[d.off]
}

// BackPtr returns a pointer to the back element, or nil if the deque is
// empty. The pointer is valid only until the next mutation of the deque.
func (d *Deque[T]) BackPtr() *T {
	if d.count == 0 {
		return nil
	}
	return &d.buf[d.index(d.count-1)]
}

// Get returns the element at index i, front being index 0. ok is false if i
// is out of range.
func (d *Deque[T]) Get(i int) (value T, ok bool) {
	if i < 0 || i >= d.count {
		return value, false
	}
	return d.buf[d.index(i)], true
}

// GetPtr returns a pointer to the element at index i, or nil if i is out of
// range. The pointer is valid only until the next mutation of the deque.
func (d *Deque[T]) GetPtr(i int) *T {
	if i < 0 || i >= d.count {
		return nil
	}
	return &d.buf[d.index(i)]
}

// At returns the element at index i. Unlike Get, an out-of-range index is
// treated as a caller bug: At panics instead of reporting absence.
func (d *Deque[T]) At(i int) T {
	d.checkIndex("At", i)
	return d.buf[d.index(i)]
}

// Set writes value at index i. It panics if i is out of range.
func (d *Deque[T]) Set(i int, value T) {
	d.checkIndex("Set", i)
	d.buf[d.index(i)] = value
}

// index translates a logical position into a buffer position.
func (d *Deque[T]) index(i int) int {
	return (d.off + i) & (len(d.buf) - 1)
}

// popFront removes the front element. The caller ensures count > 0.
func (d *Deque[T]) popFront() T {
	v := d.buf[d.off]
	var zero T
	d.buf[d.off] = zero
	d.off = (d.off + 1) & (len(d.buf) - 1)
	d.count--
	return v
}

// popBack removes the back element. The caller ensures count > 0.
func (d *Deque[T]) popBack() T {
	i := d.index(d.count - 1)
	v := d.buf[i]
	var zero T
	d.buf[i] = zero
	d.count--
	return v
}

// grow doubles the ring buffer when it is out of room. The buffer never needs
// to exceed ceilPow2(maxLen), since count is capped at maxLen.
func (d *Deque[T]) grow() {
	if d.count < len(d.buf) {
		return
	}
	newLen := minBufLen
	if len(d.buf) > 0 {
		newLen = 2 * len(d.buf)
	} else if d.maxLen < minBufLen {
		newLen = ceilPow2(d.maxLen)
	}
	newBuf := make([]T, newLen)
	if d.count > 0 {
		n := copy(newBuf, d.buf[d.off:])
		copy(newBuf[n:], d.buf[:d.off])
	}
	d.buf = newBuf
	d.off = 0
}

func (d *Deque[T]) checkIndex(op string, i int) {
	if i < 0 || i >= d.count {
		panic(fmt.Sprintf("bounded: %s() called with index %d out of range for length %d", op, i, d.count))
	}
}

func ceilPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << (bits.Len(uint(n - 1)))
}
