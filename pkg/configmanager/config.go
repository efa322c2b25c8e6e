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
	"strings"

	"github.com/pkg/errors"
	"mosn.io/pkg/log"
)

// DefaultValues are the values of the demonstration list
var DefaultValues = []float64{23, 54, 2, 8, 3.2, 14, 43, 0, 9, 2}

const DefaultLabel = "list"

// ListConfig describes the demonstration list
type ListConfig struct {
	// Label prefixes every printed rendering
	Label string `json:"label,omitempty"`
	// Values are added in order
	Values []float64 `json:"values,omitempty"`
	// Sorted builds the list in sorted mode
	Sorted bool `json:"sorted,omitempty"`
	// Reverse also prints every rendering last to first
	Reverse  bool   `json:"reverse,omitempty"`
	LogLevel string `json:"log_level,omitempty"`
	// Stats prints the list metrics when the demo ends
	Stats bool `json:"stats,omitempty"`
}

// DefaultConfig returns the demonstration config
func DefaultConfig() *ListConfig {
	cfg := &ListConfig{}
	cfg.applyDefaults()
	return cfg
}

func (c *ListConfig) applyDefaults() {
	if c.Label == "" {
		c.Label = DefaultLabel
	}
	if len(c.Values) == 0 {
		c.Values = append([]float64(nil), DefaultValues...)
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks the fields that have a closed set of values
func (c *ListConfig) Validate() error {
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

var flagToLogLevel = map[string]log.Level{
	"trace":    log.TRACE,
	"debug":    log.DEBUG,
	"info":     log.INFO,
	"warning":  log.WARN,
	"warn":     log.WARN,
	"error":    log.ERROR,
	"critical": log.FATAL,
	"fatal":    log.FATAL,
}

// ParseLogLevel maps trace|debug|info|warning|error|critical onto a log level
func ParseLogLevel(level string) (log.Level, error) {
	lv, ok := flagToLogLevel[strings.ToLower(level)]
	if !ok {
		return log.INFO, errors.Errorf("unknown log level %q", level)
	}
	return lv, nil
}
