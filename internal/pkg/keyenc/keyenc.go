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

package keyenc

import (
	"encoding"
	"encoding/binary"
	"fmt"
	"math"
)

// Append 把 key 的字节表示追加到 dst 后面。
// 所有有符号整数统一按 int64 小端编码，无符号整数按 uint64 小端编码，
// 所以 int32(5) 和 int64(5) 会得到相同的字节。
// 编码不带类型标记：int(5) 与 uint(5) 相同，负数与同一位模式的无符号数也相同，
// 例如 -1 与 uint64(math.MaxUint64)。需要区分时由调用方自行加类型前缀。
func Append(dst []byte, key any) []byte {
	switch k := key.(type) {
	case nil:
		return dst
	case string:
		return append(dst, k...)
	case []byte:
		return append(dst, k...)
	case bool:
		if k {
			return append(dst, 1)
		}
		return append(dst, 0)
	case int:
		return appendInt(dst, int64(k))
	case int8:
		return appendInt(dst, int64(k))
	case int16:
		return appendInt(dst, int64(k))
	case int32:
		return appendInt(dst, int64(k))
	case int64:
		return appendInt(dst, k)
	case uint:
		return binary.LittleEndian.AppendUint64(dst, uint64(k))
	case uint8:
		return binary.LittleEndian.AppendUint64(dst, uint64(k))
	case uint16:
		return binary.LittleEndian.AppendUint64(dst, uint64(k))
	case uint32:
		return binary.LittleEndian.AppendUint64(dst, uint64(k))
	case uint64:
		return binary.LittleEndian.AppendUint64(dst, k)
	case uintptr:
		return binary.LittleEndian.AppendUint64(dst, uint64(k))
	case float32:
		return binary.LittleEndian.AppendUint32(dst, math.Float32bits(k))
	case float64:
		return binary.LittleEndian.AppendUint64(dst, math.Float64bits(k))
	case encoding.BinaryMarshaler:
		data, err := k.MarshalBinary()
		if err == nil {
			return append(dst, data...)
		}
	case fmt.Stringer:
		return append(dst, k.String()...)
	}
	return fmt.Appendf(dst, "%#v", key)
}

// Bytes 等价于 Append(nil, key)
func Bytes(key any) []byte {
	return Append(nil, key)
}

func appendInt(dst []byte, v int64) []byte {
	return binary.LittleEndian.AppendUint64(dst, uint64(v))
}
