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
	"testing"

	"github.com/ecodeclub/jumphash/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("内置算法都已注册", func(t *testing.T) {
		t.Parallel()
		names := Names()
		for _, name := range []string{NameDefault, NameXXHash, NameXXH3, NameFarm, NameMurmur3,
			NameFNV64a, NameSHA256, NameRandomSipHash, NameStructure} {
			assert.Contains(t, names, name)
			factory, ok := Lookup(name)
			require.True(t, ok)
			assert.NotNil(t, factory())
		}
	})

	t.Run("默认算法为xxhash", func(t *testing.T) {
		t.Parallel()
		factory, ok := Lookup(NameDefault)
		require.True(t, ok)
		assert.Equal(t, XXHash().Digest("msg1"), factory().Digest("msg1"))
	})

	t.Run("未注册的算法", func(t *testing.T) {
		t.Parallel()
		_, ok := Lookup("md5")
		assert.False(t, ok)
	})

	t.Run("注册并覆盖", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, Register("test-const", func() Digester {
			return Func(func(key any) uint64 { return 1 })
		}))
		require.NoError(t, Register("test-const", func() Digester {
			return Func(func(key any) uint64 { return 2 })
		}))
		factory, ok := Lookup("test-const")
		require.True(t, ok)
		assert.Equal(t, uint64(2), factory().Digest("msg1"))
	})

	t.Run("default不允许覆盖", func(t *testing.T) {
		t.Parallel()
		err := Register(NameDefault, func() Digester {
			return Func(func(key any) uint64 { return 7 })
		})
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
		assert.Equal(t, XXHash().Digest("msg1"), Default().Digest("msg1"))
		factory, ok := Lookup(NameDefault)
		require.True(t, ok)
		assert.Equal(t, XXHash().Digest("msg1"), factory().Digest("msg1"))
	})

	t.Run("注册失败_返回错误", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, Register("_bad", func() Digester { return XXHash() }), errs.ErrInvalidArgument)
		assert.ErrorIs(t, Register("test-nil", nil), errs.ErrInvalidArgument)
		assert.Panics(t, func() {
			MustRegister("", nil)
		})
		_, ok := Lookup("test-nil")
		assert.False(t, ok)
	})
}
