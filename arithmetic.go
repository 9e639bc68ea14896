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

package jumphash

import "github.com/ecodeclub/jumphash/errs"

// Arithmetic 决定 jump 算法中除法使用的精度
type Arithmetic uint8

const (
	// Float64 与论文中的 C++ 参考实现以及 Go 生态里的常见实现逐位一致，覆盖全部 int32 桶数量
	Float64 Arithmetic = iota
	// Float32 使用单精度运算。桶数量较小时与 Float64 基本一致，但不保证逐位相同；
	// 桶数量超过 MaxExactFloat32Buckets 后，大于该值的奇数桶永远不会被选中
	Float32
	// Integer 用整数除法，没有舍入误差，但结果与浮点实现不完全一致
	Integer
)

// MaxExactFloat32Buckets float32 能连续表示的最大整数 2^24。
// 超过它之后 float32 的候选桶号只能取偶数（再往上间隔更大），Float32 模式下的分布因此不再均匀
const MaxExactFloat32Buckets = 1 << 24

const (
	lcgMultiplier = 2862933555777941757
	twoTo31       = 1 << 31
)

func ParseArithmetic(s string) (Arithmetic, error) {
	switch s {
	case "", "float64":
		return Float64, nil
	case "float32":
		return Float32, nil
	case "integer":
		return Integer, nil
	}
	return 0, errs.ErrUnknownArithmetic
}

func (a Arithmetic) String() string {
	switch a {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	case Integer:
		return "integer"
	}
	return "unknown"
}

// Hash 在 [0, buckets) 中为 digest 选择一个桶，buckets 必须大于 0
func (a Arithmetic) Hash(digest uint64, buckets int32) int32 {
	var b, j int64 = -1, 0
	for j < int64(buckets) {
		b = j
		digest = digest*lcgMultiplier + 1
		j = a.next(b, digest)
	}
	return int32(b)
}

// next 计算下一个候选桶 (b+1) * 2^31 / ((digest>>33)+1)。
// 分母不超过 2^31，b+1 不超过 2^31，结果不会超出 int64
func (a Arithmetic) next(b int64, digest uint64) int64 {
	den := (digest >> 33) + 1
	switch a {
	case Float32:
		return int64(float32(float32(b+1) * float32(float32(twoTo31)/float32(den))))
	case Integer:
		return ((b + 1) << 31) / int64(den)
	default:
		return int64(float64(b+1) * (float64(twoTo31) / float64(den)))
	}
}

// Hash 使用 Float64 精度选桶，buckets 必须大于 0
func Hash(digest uint64, buckets int32) int32 {
	return Float64.Hash(digest, buckets)
}
