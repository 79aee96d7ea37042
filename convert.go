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
	"strings"
)

// ToSlice returns a freshly allocated slice with the deque's elements front
// to back. The slice does not share memory with the deque.
func (d *Deque[T]) ToSlice() []T {
	out := make([]T, d.count)
	front, back := d.Slices()
	n := copy(out, front)
	copy(out[n:], back)
	return out
}

// Clone returns a deque with the same capacity and a copy of the elements.
// Elements themselves are copied shallowly.
func (d *Deque[T]) Clone() *Deque[T] {
	c := New[T](d.maxLen)
	if d.count > 0 {
		c.buf = make([]T, len(d.buf))
		copy(c.buf, d.buf)
		c.off = d.off
		c.count = d.count
	}
	return c
}

// String implements fmt.Stringer.
func (d *Deque[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Deque[")
	first := true
	for v := range d.Values() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteByte(']')
	return sb.String()
}
