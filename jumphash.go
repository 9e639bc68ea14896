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

// Package jumphash 实现 Lamping 和 Veach 提出的 jump consistent hash：
// 把任意 key 映射到 [0, N) 中的一个桶，桶数量从 N 增加到 N+1 时，
// 只有约 1/(N+1) 的 key 会移动，并且全部移动到新增的桶 N 上。
//
// 参考 https://arxiv.org/abs/1406.2294
package jumphash

import (
	"github.com/ecodeclub/jumphash/digest"
	"github.com/ecodeclub/jumphash/errs"
	"github.com/pkg/errors"
)


// Engine 创建后不可变，Get 每次都重新计算，不做缓存
type Engine struct {
	buckets    int32
	digester   Digester
	arithmetic Arithmetic
}

type Option func(e *Engine)

func WithArithmetic(a Arithmetic) Option {
	return func(e *Engine) {
		e.arithmetic = a
	}
}

// New 使用默认的 xxhash 摘要策略
func New(buckets int32, opts ...Option) (*Engine, error) {
	return NewWithDigester(buckets, nil, opts...)
}

// NewWithDigester d 为 nil 时使用默认摘要策略
func NewWithDigester(buckets int32, d Digester, opts ...Option) (*Engine, error) {
	if buckets <= 0 {
		return nil, errors.Wrapf(errs.ErrInvalidConfiguration, "桶数量必须大于0，实际为 %d", buckets)
	}
	if d == nil {
		d = digest.Default()
	}
	e := &Engine{
		buckets:  buckets,
		digester: d,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// MustNew 与 New 相同，但桶数量非法时直接 panic
func MustNew(buckets int32, opts ...Option) *Engine {
	e, err := New(buckets, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// Buckets 桶数量，可以直接转换为 Engine
type Buckets int32

func (b Buckets) Engine() (*Engine, error) {
	return New(int32(b))
}

// Get 返回 key 所在的桶，范围 [0, Buckets())
func (e *Engine) Get(key any) int32 {
	return e.arithmetic.Hash(e.digester.Digest(key), e.buckets)
}

func (e *Engine) Buckets() int32 {
	return e.buckets
}

func (e *Engine) Digester() Digester {
	return e.digester
}

func (e *Engine) Arithmetic() Arithmetic {
	return e.arithmetic
}
