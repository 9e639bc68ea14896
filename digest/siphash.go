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
	"crypto/rand"
	"encoding/binary"
	"io"

	"github.com/dchest/siphash"
	"github.com/pkg/errors"
)

// SipHash 使用带密钥的 siphash-2-4，同一组密钥下结果确定
func SipHash(k0, k1 uint64) *Bytes {
	return NewBytes(func(data []byte) uint64 {
		return siphash.Hash(k0, k1, data)
	})
}

// RandomSipHash 在创建时从 crypto/rand 读取一组随机密钥。
// 同一个实例的结果是确定的，不同实例（或不同进程）之间不保证一致，
// 可以用来抵御针对分桶结果构造的恶意 key。
func RandomSipHash() *Bytes {
	var key [16]byte
	if _, err := io.ReadFull(rand.Reader, key[:]); err != nil {
		panic(errors.Wrap(err, "digest: 读取随机密钥失败"))
	}
	return SipHash(binary.LittleEndian.Uint64(key[:8]), binary.LittleEndian.Uint64(key[8:]))
}
