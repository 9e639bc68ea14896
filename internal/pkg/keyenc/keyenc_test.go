// Copyright 2021 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package keyenc_test

import (
	"errors"
	"math"
	"testing"

	"github.com/ecodeclub/jumphash/internal/pkg/keyenc"
	"github.com/stretchr/testify/assert"
)

type userName string

func (n userName) String() string {
	return "name:" + string(n)
}

type point struct {
	X, Y byte
}

func (p point) MarshalBinary() ([]byte, error) {
	return []byte{p.X, p.Y}, nil
}

type brokenMarshaler struct {
	ID int
}

func (b brokenMarshaler) MarshalBinary() ([]byte, error) {
	return nil, errors.New("broken")
}

func TestBytes(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		key  any
		want []byte
	}{
		{name: "nil", key: nil, want: nil},
		{name: "string", key: "msg1", want: []byte("msg1")},
		{name: "bytes", key: []byte{1, 2, 3}, want: []byte{1, 2, 3}},
		{name: "bool_true", key: true, want: []byte{1}},
		{name: "bool_false", key: false, want: []byte{0}},
		{name: "int", key: 1, want: []byte{1, 0, 0, 0, 0, 0, 0, 0}},
		{name: "int8", key: int8(-1), want: []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
		{name: "int32", key: int32(258), want: []byte{2, 1, 0, 0, 0, 0, 0, 0}},
		{name: "uint16", key: uint16(258), want: []byte{2, 1, 0, 0, 0, 0, 0, 0}},
		{name: "uint64", key: uint64(math.MaxUint64), want: []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
		{name: "float32", key: float32(1), want: []byte{0, 0, 0x80, 0x3f}},
		{name: "float64", key: float64(1), want: []byte{0, 0, 0, 0, 0, 0, 0xf0, 0x3f}},
		{name: "stringer", key: userName("tom"), want: []byte("name:tom")},
		{name: "binary_marshaler", key: point{X: 3, Y: 4}, want: []byte{3, 4}},
		{name: "binary_marshaler_failed", key: brokenMarshaler{ID: 1}, want: []byte("keyenc_test.brokenMarshaler{ID:1}")},
		{name: "struct", key: struct{ A int }{A: 1}, want: []byte("struct { A int }{A:1}")},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, keyenc.Bytes(tc.key))
		})
	}
}

func TestAppend(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []byte("prefix:msg1"), keyenc.Append([]byte("prefix:"), "msg1"))
	// 不同宽度的整数编码相同
	assert.Equal(t, keyenc.Bytes(int64(5)), keyenc.Bytes(int16(5)))
}

func TestBytes_SignedUnsignedShareEncoding(t *testing.T) {
	t.Parallel()
	assert.Equal(t, keyenc.Bytes(5), keyenc.Bytes(uint(5)))
	assert.Equal(t, keyenc.Bytes(-1), keyenc.Bytes(uint64(math.MaxUint64)))
	assert.Equal(t, keyenc.Bytes(int32(math.MinInt32)), keyenc.Bytes(uint64(0xffffffff80000000)))
	// 加上前缀后就能区分
	assert.NotEqual(t, keyenc.Append([]byte("i:"), -1), keyenc.Append([]byte("u:"), uint64(math.MaxUint64)))
}
