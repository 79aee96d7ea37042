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
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// The deque serializes as a plain array of its elements, front to back.
// Capacity is not part of the representation: a decoded deque gets its
// capacity from the decoded length, so round-tripping loses the original
// capacity unless the surrounding format carries it separately.

var (
	_ json.Marshaler        = (*Deque[int])(nil)
	_ json.Unmarshaler      = (*Deque[int])(nil)
	_ msgpack.CustomEncoder = (*Deque[int])(nil)
	_ msgpack.CustomDecoder = (*Deque[int])(nil)
)

// MarshalJSON encodes the deque as a JSON array.
func (d *Deque[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.ToSlice())
}

// UnmarshalJSON decodes a JSON array, replacing the deque's contents. The
// capacity becomes the number of decoded elements.
func (d *Deque[T]) UnmarshalJSON(data []byte) error {
	var s []T
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("bounded: decode json array: %w", err)
	}
	*d = *FromSlice(s, len(s))
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder, writing the deque as a
// msgpack array.
func (d *Deque[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(d.count); err != nil {
		return err
	}
	for v := range d.Values() {
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack implements msgpack.CustomDecoder, replacing the deque's
// contents with a decoded msgpack array. The capacity becomes the number of
// decoded elements; a nil array decodes as an empty capacity-0 deque.
func (d *Deque[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return fmt.Errorf("bounded: decode msgpack array: %w", err)
	}
	if n < 0 {
		n = 0
	}
	fresh := New[T](n)
	for i := 0; i < n; i++ {
		var v T
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("bounded: decode msgpack element %d: %w", i, err)
		}
		fresh.PushBack(v)
	}
	*d = *fresh
	return nil
}
