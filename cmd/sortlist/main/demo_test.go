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

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mosn.io/pkg/log"

	"mosn.io/linkedlist/pkg/configmanager"
	"mosn.io/linkedlist/pkg/stats"
)

func TestMain(m *testing.M) {
	log.DefaultLogger.SetLogLevel(log.ERROR)
	m.Run()
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf
	err := app.Run(append([]string{"sortlist"}, args...))
	return buf.String(), err
}

func TestRunDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runDemo(&buf, configmanager.DefaultConfig()))
	assert.Equal(t, "list: { 23, 54, 2, 8, 3.2, 14, 43, 0, 9, 2 }\n"+
		"Sorted list: { 0, 2, 2, 3.2, 8, 9, 14, 23, 43, 54 }\n"+
		"Cleared list: { }\n", buf.String())
}

func TestRunDemoStats(t *testing.T) {
	conf := configmanager.DefaultConfig()
	conf.Stats = true
	var buf bytes.Buffer
	require.NoError(t, runDemo(&buf, conf))
	out := buf.String()
	assert.Contains(t, out, stats.ListSortMove+": ")
	assert.Contains(t, out, stats.ListCount+": 0\n")
	assert.Empty(t, stats.GetMetricsData(stats.ListType)["list_"+demoStatsName])
}

func TestDemoCommand(t *testing.T) {
	out, err := runApp(t, "demo", "--config", "testdata/demo.yaml", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "numbers: { 3, 1, 2 }\n"+
		"numbers-Reverse: { 2, 1, 3 }\n"+
		"Sorted numbers: { 1, 2, 3 }\n"+
		"Sorted numbers-Reverse: { 3, 2, 1 }\n"+
		"Cleared numbers: { }\n", out)
}

func TestDemoCommandErrors(t *testing.T) {
	_, err := runApp(t, "demo", "--config", "testdata/not_exists.yaml")
	assert.Error(t, err)
	_, err = runApp(t, "demo", "--log-level", "loud")
	assert.Error(t, err)
}

func TestSortCommand(t *testing.T) {
	out, err := runApp(t, "sort", "5", "0.5", "2.5", "2.5")
	require.NoError(t, err)
	assert.Equal(t, "{ 0.5, 2.5, 2.5, 5 }\n", out)

	out, err = runApp(t, "sort", "--sorted", "--reverse", "1", "3", "2")
	require.NoError(t, err)
	assert.Equal(t, "{ 3, 2, 1 }\n", out)

	out, err = runApp(t, "sort")
	require.NoError(t, err)
	assert.Equal(t, "{ }\n", out)

	_, err = runApp(t, "sort", "x")
	assert.Error(t, err)
}
