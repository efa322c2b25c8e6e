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
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mosn.io/pkg/log"
)

func TestYamlConfigLoad(t *testing.T) {
	cfg, err := Load("testdata/list.yaml")
	require.NoError(t, err)
	assert.Equal(t, "numbers", cfg.Label)
	assert.Equal(t, []float64{5, 1.5, 3}, cfg.Values)
	assert.True(t, cfg.Sorted)
	assert.True(t, cfg.Reverse)
	assert.True(t, cfg.Stats)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestJsonConfigLoadDefaults(t *testing.T) {
	cfg, err := Load("testdata/list.json")
	require.NoError(t, err)
	assert.Equal(t, DefaultLabel, cfg.Label)
	assert.Equal(t, []float64{4, 2, 8}, cfg.Values)
	assert.False(t, cfg.Sorted)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultValues, cfg.Values)

	// the defaults are copied
	cfg.Values[0] = -1
	assert.Equal(t, 23.0, DefaultValues[0])
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("testdata/not_exists.json")
	assert.Error(t, err)

	_, err = Load("testdata/broken.yaml")
	assert.Error(t, err)

	_, err = Load("testdata/bad_level.json")
	require.Error(t, err)
	assert.Contains(t, errors.Cause(err).Error(), "loud")
}

func TestRegisterConfigLoadFunc(t *testing.T) {
	RegisterConfigLoadFunc(func(p string) (*ListConfig, error) {
		return &ListConfig{Label: p}, nil
	})
	defer RegisterConfigLoadFunc(DefaultConfigLoad)

	cfg, err := Load("test")
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Label)
	assert.Equal(t, DefaultValues, cfg.Values)
}

func TestParseLogLevel(t *testing.T) {
	testCases := map[string]log.Level{
		"trace":    log.TRACE,
		"DEBUG":    log.DEBUG,
		"info":     log.INFO,
		"warning":  log.WARN,
		"error":    log.ERROR,
		"critical": log.FATAL,
	}
	for flag, want := range testCases {
		lv, err := ParseLogLevel(flag)
		require.NoError(t, err, flag)
		assert.Equal(t, want, lv, flag)
	}
	_, err := ParseLogLevel("off")
	assert.Error(t, err)
}
