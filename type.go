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

package jumphash

// Digester 把任意 key 转换为 64 位摘要。
// 同一个实例对同一个 key 必须始终返回相同结果；不同实例之间可以不同（例如带随机种子的实现）。
// 如果 Digester 本身可以被并发读，Engine.Get 就可以被并发调用。
type Digester interface {
	Digest(key any) uint64
}
