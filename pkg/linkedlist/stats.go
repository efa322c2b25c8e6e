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

package linkedlist

import (
	metrics "github.com/rcrowley/go-metrics"

	"mosn.io/linkedlist/pkg/stats"
)

// listStats caches the metrics of a list, a nil *listStats records nothing
type listStats struct {
	compare    metrics.Counter
	relinks    metrics.Counter
	sortMove   metrics.Counter
	sortSkip   metrics.Counter
	count      metrics.Gauge
	scanLength metrics.Histogram
}

func newListStats(s *stats.Stats) *listStats {
	if s == nil {
		return nil
	}
	return &listStats{
		compare:    s.Counter(stats.ListCompare),
		relinks:    s.Counter(stats.ListRelink),
		sortMove:   s.Counter(stats.ListSortMove),
		sortSkip:   s.Counter(stats.ListSortSkip),
		count:      s.Gauge(stats.ListCount),
		scanLength: s.Histogram(stats.ListScanLength),
	}
}

func (s *listStats) compared() {
	if s != nil {
		s.compare.Inc(1)
	}
}

func (s *listStats) relink() {
	if s != nil {
		s.relinks.Inc(1)
	}
}

func (s *listStats) moved() {
	if s != nil {
		s.sortMove.Inc(1)
	}
}

func (s *listStats) skipped() {
	if s != nil {
		s.sortSkip.Inc(1)
	}
}

func (s *listStats) setCount(count int) {
	if s != nil {
		s.count.Update(int64(count))
	}
}

func (s *listStats) scanned(steps int) {
	if s != nil {
		s.scanLength.Update(int64(steps))
	}
}
