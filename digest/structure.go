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

package digest

import (
	"github.com/cespare/xxhash/v2"
	"github.com/ecodeclub/jumphash/internal/pkg/keyenc"
	"github.com/mitchellh/hashstructure/v2"
)

// Structure 对结构体、map、slice 这类复合 key 按字段内容计算摘要，
// map 的遍历顺序不影响结果。
// hashstructure 无法处理的值（例如 chan、func）退化为 xxhash。
type Structure struct {
	opts *hashstructure.HashOptions
}

func NewStructure() *Structure {
	return &Structure{}
}

func (s *Structure) Digest(key any) uint64 {
	// HashOptions 不能并发复用，每次复制一份
	var opts *hashstructure.HashOptions
	if s.opts != nil {
		o := *s.opts
		opts = &o
	}
	h, err := hashstructure.Hash(key, hashstructure.FormatV2, opts)
	if err != nil {
		return xxhash.Sum64(keyenc.Bytes(key))
	}
	return h
}

// IgnoreZeroValue 返回一个忽略零值字段的副本，给结构体追加字段时不会改变已有 key 的摘要
func (s *Structure) IgnoreZeroValue() *Structure {
	return &Structure{opts: &hashstructure.HashOptions{IgnoreZeroValue: true}}
}
