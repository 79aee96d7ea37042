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
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()

		d := FromSlice([]int{1, 2, 3}, 10)
		data, err := json.Marshal(d)
		require.NoError(t, err)
		require.JSONEq(t, `[1,2,3]`, string(data))

		var decoded Deque[int]
		require.NoError(t, json.Unmarshal(data, &decoded))
		require.True(t, Equal(d, &decoded))
		// Capacity is not part of the representation: decoding derives it
		// from the element count.
		require.Equal(t, 3, decoded.Capacity())
	})
	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		d := New[string](4)
		data, err := json.Marshal(d)
		require.NoError(t, err)
		require.JSONEq(t, `[]`, string(data))

		var decoded Deque[string]
		require.NoError(t, json.Unmarshal(data, &decoded))
		require.Equal(t, 0, decoded.Len())
	})
	t.Run("replaces_contents", func(t *testing.T) {
		t.Parallel()

		d := FromSlice([]int{9, 9, 9}, 3)
		require.NoError(t, json.Unmarshal([]byte(`[1,2]`), d))
		require.True(t, EqualSlice(d, []int{1, 2}))
		require.Equal(t, 2, d.Capacity())
	})
	t.Run("bad_input", func(t *testing.T) {
		t.Parallel()

		var d Deque[int]
		err := json.Unmarshal([]byte(`{"not":"an array"}`), &d)
		require.Error(t, err)
	})
}

func TestMsgpackRoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()

		d := FromSlice([]string{"a", "b", "c"}, 10)
		data, err := msgpack.Marshal(d)
		require.NoError(t, err)

		var decoded Deque[string]
		require.NoError(t, msgpack.Unmarshal(data, &decoded))
		require.True(t, Equal(d, &decoded))
		require.Equal(t, 3, decoded.Capacity())
	})
	t.Run("wrapped_ring", func(t *testing.T) {
		t.Parallel()

		d := New[int](8)
		for i := 0; i < 12; i++ {
			d.PushBack(i)
		}
		data, err := msgpack.Marshal(d)
		require.NoError(t, err)

		var decoded Deque[int]
		require.NoError(t, msgpack.Unmarshal(data, &decoded))
		require.True(t, EqualSlice(&decoded, []int{4, 5, 6, 7, 8, 9, 10, 11}))
	})
	t.Run("bad_input", func(t *testing.T) {
		t.Parallel()

		var d Deque[int]
		err := msgpack.Unmarshal([]byte{0xc3}, &d) // a bare bool
		require.Error(t, err)
	})
}

func TestRoundTripViaSlice(t *testing.T) {
	t.Parallel()

	// Rebuilding from ToSlice with the original capacity reproduces the deque.
	d := New[int](5)
	d.Extend(1, 2, 3, 4, 5, 6, 7)
	rebuilt := FromSlice(d.ToSlice(), d.Capacity())
	require.True(t, Equal(d, rebuilt))
	require.Equal(t, d.Capacity(), rebuilt.Capacity())
}
