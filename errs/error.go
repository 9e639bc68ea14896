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

package errs

import "errors"

var (
	// ErrInvalidConfiguration 桶数量小于等于0时返回，属于调用方的编程错误
	ErrInvalidConfiguration = errors.New("jumphash: 非法配置")
	ErrUnknownDigest        = errors.New("jumphash: 未知的摘要算法")
	ErrUnknownArithmetic    = errors.New("jumphash: 未知的运算模式")
	ErrInvalidArgument      = errors.New("jumphash: 非法参数")
)
