/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package configmanager

import (
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"mosn.io/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// configLoadFunc can be replaced by load config extension
var configLoadFunc ConfigLoadFunc = DefaultConfigLoad

// ConfigLoadFunc parse a input(usually file path) into a list config
type ConfigLoadFunc func(path string) (*ListConfig, error)

// RegisterConfigLoadFunc can replace a new config load function instead of default
func RegisterConfigLoadFunc(f ConfigLoadFunc) {
	configLoadFunc = f
}

// DefaultConfigLoad reads a json or yaml file
func DefaultConfigLoad(path string) (*ListConfig, error) {
	log.DefaultLogger.Infof("[config] load config from : %s", path)
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load config %s failed", path)
	}
	if yamlFormat(path) {
		bytes, err := yaml.YAMLToJSON(content)
		if err != nil {
			return nil, errors.Wrapf(err, "translate yaml config %s to json failed", path)
		}
		content = bytes
	}
	cfg := &ListConfig{}
	if err := json.Unmarshal(content, cfg); err != nil {
		return nil, errors.Wrapf(err, "json unmarshal config %s failed", path)
	}
	return cfg, nil
}

// Load returns the default config when path is empty, otherwise the
// config loaded from path with defaults filled in
func Load(path string) (*ListConfig, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	cfg, err := configLoadFunc(path)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

func yamlFormat(path string) bool {
	ext := filepath.Ext(path)
	if ext == ".yaml" || ext == ".yml" {
		return true
	}
	return false
}
