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
	"log"
	"sort"

	"github.com/ecodeclub/ekit/syncx"
	"github.com/ecodeclub/jumphash/errs"
	"github.com/ecodeclub/jumphash/internal/pkg/validator"
	"github.com/pkg/errors"
)

const (
	NameDefault       = "default"
	NameXXHash        = "xxhash"
	NameXXH3          = "xxh3"
	NameFarm          = "farm"
	NameMurmur3       = "murmur3"
	NameFNV64a        = "fnv64a"
	NameSHA256        = "sha256"
	NameRandomSipHash = "siphash-random"
	NameStructure     = "structure"
)

// Digester 与 jumphash.Digester 一致，这里单独声明避免循环依赖
type Digester interface {
	Digest(key any) uint64
}

// Factory 每次调用创建一个新的摘要策略实例
type Factory func() Digester

var factories = syncx.Map[string, Factory]{}

func init() {
	MustRegister(NameDefault, func() Digester { return XXHash() })
	MustRegister(NameXXHash, func() Digester { return XXHash() })
	MustRegister(NameXXH3, func() Digester { return XXH3() })
	MustRegister(NameFarm, func() Digester { return Farm() })
	MustRegister(NameMurmur3, func() Digester { return Murmur3() })
	MustRegister(NameFNV64a, func() Digester { return FNV64a() })
	MustRegister(NameSHA256, func() Digester { return SHA256() })
	MustRegister(NameRandomSipHash, func() Digester { return RandomSipHash() })
	MustRegister(NameStructure, func() Digester { return NewStructure() })
}

// Register 注册一个摘要策略，同名的会被覆盖。
// default 只能在初始化时注册一次，否则 New 与按名称构造出来的 Engine 会不一致
func Register(name string, factory Factory) error {
	if !validator.IsValidName(name) {
		return errors.Wrapf(errs.ErrInvalidArgument, "非法的摘要算法名称 %q", name)
	}
	if factory == nil {
		return errors.Wrapf(errs.ErrInvalidArgument, "摘要算法 %s 的 factory 不能为空", name)
	}
	if _, loaded := factories.Load(name); loaded {
		if name == NameDefault {
			return errors.Wrapf(errs.ErrInvalidArgument, "摘要算法 %s 不允许覆盖", name)
		}
		log.Printf("摘要算法 %s 已存在，将被覆盖", name)
	}
	factories.Store(name, factory)
	return nil
}

func MustRegister(name string, factory Factory) {
	if err := Register(name, factory); err != nil {
		panic(err)
	}
}

// Default 返回注册在 default 下的摘要策略
func Default() Digester {
	if factory, ok := factories.Load(NameDefault); ok {
		return factory()
	}
	return XXHash()
}

func Lookup(name string) (Factory, bool) {
	return factories.Load(name)
}

// Names 返回所有已注册的名称，按字典序排列
func Names() []string {
	names := make([]string, 0, 16)
	factories.Range(func(key string, _ Factory) bool {
		names = append(names, key)
		return true
	})
	sort.Strings(names)
	return names
}
