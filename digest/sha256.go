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
	"crypto/sha256"
	"encoding/binary"
)

// SHA256 取 sha256 的前 8 个字节（大端）作为摘要，
// 适合需要跨进程、跨语言复现分桶结果的场景
func SHA256() *Bytes {
	return NewBytes(func(data []byte) uint64 {
		sum := sha256.Sum256(data)
		return binary.BigEndian.Uint64(sum[:8])
	})
}
