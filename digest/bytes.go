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

// Package digest 提供把任意 key 转换成 64 位摘要的策略，供 jump hash 选桶使用。
package digest

import "github.com/ecodeclub/jumphash/internal/pkg/keyenc"

// Bytes 先把 key 编码成字节，再交给一个字节哈希函数计算摘要
type Bytes struct {
	sum func(data []byte) uint64
}

func NewBytes(sum func(data []byte) uint64) *Bytes {
	return &Bytes{sum: sum}
}

func (b *Bytes) Digest(key any) uint64 {
	return b.sum(keyenc.Bytes(key))
}

// Func 把普通函数适配成摘要策略
type Func func(key any) uint64

func (f Func) Digest(key any) uint64 {
	return f(key)
}
