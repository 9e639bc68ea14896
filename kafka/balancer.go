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

package kafka

import (
	"github.com/ecodeclub/jumphash"
	"github.com/ecodeclub/jumphash/digest"
	"github.com/ecodeclub/jumphash/errs"
	"github.com/pkg/errors"
	kafkago "github.com/segmentio/kafka-go"
)

// Balancer 按消息的 Key 用 jump hash 选择分区，
// 与 kafkago.Hash 相比，分区数增加时只有迁往新分区的 key 会改变分区。
// 没有 Key 的消息交给 fallback 处理。
type Balancer struct {
	fallback   kafkago.Balancer
	digester   jumphash.Digester
	arithmetic jumphash.Arithmetic
}

type BalancerOption func(b *Balancer)

func WithDigester(d jumphash.Digester) BalancerOption {
	return func(b *Balancer) {
		if d != nil {
			b.digester = d
		}
	}
}

func WithArithmetic(a jumphash.Arithmetic) BalancerOption {
	return func(b *Balancer) {
		b.arithmetic = a
	}
}

func NewBalancer(fallback kafkago.Balancer, opts ...BalancerOption) (*Balancer, error) {
	if fallback == nil {
		return nil, errors.Wrap(errs.ErrInvalidArgument, "kafka: fallback 不能为空")
	}
	b := &Balancer{
		fallback: fallback,
		digester: digest.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Balance partitions 由 kafka-go 按分区号升序传入
func (b *Balancer) Balance(msg kafkago.Message, partitions ...int) int {
	if len(msg.Key) == 0 || len(partitions) == 0 {
		return b.fallback.Balance(msg, partitions...)
	}
	idx := b.arithmetic.Hash(b.digester.Digest(msg.Key), int32(len(partitions)))
	return partitions[idx]
}

// NewWriter 创建使用 Balancer 的 kafka Writer
func NewWriter(topic string, brokers []string, b *Balancer) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:     kafkago.TCP(brokers...),
		Topic:    topic,
		Balancer: b,
	}
}
