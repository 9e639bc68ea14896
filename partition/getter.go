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

package partition

import (
	"math"

	"github.com/ecodeclub/jumphash"
	"github.com/ecodeclub/jumphash/errs"
	"github.com/pkg/errors"
)

// Getter 生产者用它获取分区号，同一个 key 总是落在同一个分区。
// 分区数增加时，只有需要迁移到新分区的 key 会改变分区。
type Getter struct {
	engine *jumphash.Engine
}

type GetterOption func(g *getterConfig)

type getterConfig struct {
	digester jumphash.Digester
	opts     []jumphash.Option
}

func newGetterConfig(opts []GetterOption) *getterConfig {
	cfg := &getterConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func WithDigester(d jumphash.Digester) GetterOption {
	return func(g *getterConfig) {
		g.digester = d
	}
}

func WithArithmetic(a jumphash.Arithmetic) GetterOption {
	return func(g *getterConfig) {
		g.opts = append(g.opts, jumphash.WithArithmetic(a))
	}
}

func NewGetter(partitions int, opts ...GetterOption) (*Getter, error) {
	// 先在 int 上校验，避免截断成 int32 后负数变成合法的正数
	if partitions <= 0 || partitions > math.MaxInt32 {
		return nil, errors.Wrapf(errs.ErrInvalidConfiguration, "分区数必须在 (0, %d] 之间，实际为 %d", math.MaxInt32, partitions)
	}
	cfg := newGetterConfig(opts)
	engine, err := jumphash.NewWithDigester(int32(partitions), cfg.digester, cfg.opts...)
	if err != nil {
		return nil, err
	}
	return &Getter{engine: engine}, nil
}

// PartitionID 返回 key 对应的分区号
func (g *Getter) PartitionID(key string) int64 {
	return int64(g.engine.Get(key))
}

func (g *Getter) Partitions() int {
	return int(g.engine.Buckets())
}
