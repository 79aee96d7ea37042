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

import "iter"

// Values returns an iterator over the elements front to back. Each call
// produces a fresh sequence that can be ranged over independently. The deque
// must not be mutated during iteration.
func (d *Deque[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		front, back := d.Slices()
		for _, v := range front {
			if !yield(v) {
				return
			}
		}
		for _, v := range back {
			if !yield(v) {
				return
			}
		}
	}
}

// All returns an iterator over index-element pairs front to back.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		front, back := d.Slices()
		for i, v := range front {
			if !yield(i, v) {
				return
			}
		}
		for i, v := range back {
			if !yield(i+len(front), v) {
				return
			}
		}
	}
}

// ValuesExceptLast returns an iterator over every element except the back
// one. Both an empty deque and a single-element deque yield nothing.
func (d *Deque[T]) ValuesExceptLast() iter.Seq[T] {
	return func(yield func(T) bool) {
		n := d.count - 1
		for i := 0; i < n; i++ {
			if !yield(d.buf[d.index(i)]) {
				return
			}
		}
	}
}

// MutValues returns an iterator over pointers to the elements front to back,
// allowing in-place modification during traversal. The pointers are valid
// only during the iteration; the deque must not be otherwise mutated while
// ranging.
func (d *Deque[T]) MutValues() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		front, back := d.Slices()
		for i := range front {
			if !yield(&front[i]) {
				return
			}
		}
		for i := range back {
			if !yield(&back[i]) {
				return
			}
		}
	}
}

// Consume returns an iterator that pops elements off the front until the
// deque is empty, yielding each in turn. Breaking out of the loop leaves the
// remaining elements in place.
func (d *Deque[T]) Consume() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := d.PopFront()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
