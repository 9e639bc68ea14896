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

package validator

import "regexp"

// 首字符为字母，末字符为字母或数字，中间允许 _ - .，总长不超过 50
var digestName = regexp.MustCompile(`^[A-Za-z](?:[\w.-]{0,48}[A-Za-z0-9])?$`)

// IsValidName 判断 name 能否作为摘要算法的注册名称
func IsValidName(name string) bool {
	return digestName.MatchString(name)
}
