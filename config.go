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

import (
	"github.com/ecodeclub/jumphash/digest"
	"github.com/ecodeclub/jumphash/errs"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Config 通过名称选择摘要策略与运算精度，Digest 和 Arithmetic 为空时使用默认值
type Config struct {
	Buckets    int32  `yaml:"buckets"`
	Digest     string `yaml:"digest"`
	Arithmetic string `yaml:"arithmetic"`
}

func LoadConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "jumphash: 解析配置失败")
	}
	return cfg, nil
}

// Validate 一次性返回所有的配置错误
func (c Config) Validate() error {
	var err error
	if c.Buckets <= 0 {
		err = multierr.Append(err, errors.Wrapf(errs.ErrInvalidConfiguration, "桶数量必须大于0，实际为 %d", c.Buckets))
	}
	if c.Digest != "" {
		if _, ok := digest.Lookup(c.Digest); !ok {
			err = multierr.Append(err, errors.Wrapf(errs.ErrUnknownDigest, "%s", c.Digest))
		}
	}
	if _, aErr := ParseArithmetic(c.Arithmetic); aErr != nil {
		err = multierr.Append(err, errors.Wrapf(aErr, "%s", c.Arithmetic))
	}
	return err
}

func NewFromConfig(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	name := cfg.Digest
	if name == "" {
		name = digest.NameDefault
	}
	factory, _ := digest.Lookup(name)
	a, _ := ParseArithmetic(cfg.Arithmetic)
	return NewWithDigester(cfg.Buckets, factory(), WithArithmetic(a))
}
