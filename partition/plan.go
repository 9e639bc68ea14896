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
	"context"
	"log"
	"runtime"

	"github.com/ecodeclub/ekit/list"
	"github.com/ecodeclub/jumphash"
	"github.com/ecodeclub/jumphash/digest"
	"golang.org/x/sync/errgroup"
)

// 每个 goroutine 处理的 key 数量
const planChunkSize = 4096

// Move 表示一个 key 在分区数变化后从 From 迁移到 To
type Move struct {
	Key  string
	From int32
	To   int32
}

// Migration 分区数从 From 变为 To 时需要迁移的 key，Moves 保持输入顺序
type Migration struct {
	From  int32
	To    int32
	Total int
	Moves []Move
}

// Ratio 需要迁移的 key 占比
func (m *Migration) Ratio() float64 {
	if m.Total == 0 {
		return 0
	}
	return float64(len(m.Moves)) / float64(m.Total)
}

// Plan 计算分区数从 from 变为 to 后哪些 key 需要迁移。
// from 和 to 使用同一个摘要策略实例，未指定时使用默认策略。
func Plan(ctx context.Context, keys []string, from, to int32, opts ...GetterOption) (*Migration, error) {
	cfg := newGetterConfig(opts)
	if cfg.digester == nil {
		cfg.digester = digest.Default()
	}
	before, err := jumphash.NewWithDigester(from, cfg.digester, cfg.opts...)
	if err != nil {
		return nil, err
	}
	after, err := jumphash.NewWithDigester(to, cfg.digester, cfg.opts...)
	if err != nil {
		return nil, err
	}

	chunks := (len(keys) + planChunkSize - 1) / planChunkSize
	results := make([]*list.ArrayList[Move], chunks)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < chunks; i++ {
		i := i
		eg.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			start := i * planChunkSize
			end := min(start+planChunkSize, len(keys))
			moves := list.NewArrayList[Move](0)
			for _, key := range keys[start:end] {
				b, a := before.Get(key), after.Get(key)
				if b != a {
					_ = moves.Append(Move{Key: key, From: b, To: a})
				}
			}
			results[i] = moves
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	m := &Migration{From: from, To: to, Total: len(keys), Moves: make([]Move, 0)}
	for _, moves := range results {
		m.Moves = append(m.Moves, moves.AsSlice()...)
	}
	log.Printf("分区数 %d -> %d，共 %d 个 key，需要迁移 %d 个", from, to, m.Total, len(m.Moves))
	return m, nil
}
