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
	"fmt"
	"io"
	"strconv"

	"mosn.io/linkedlist/pkg/configmanager"
	"mosn.io/linkedlist/pkg/linkedlist"
	"mosn.io/linkedlist/pkg/stats"
)

const demoStatsName = "demo"

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func printList(w io.Writer, l *linkedlist.List[float64], label string, reverse bool) error {
	if err := l.Fprint(w, label, false); err != nil {
		return err
	}
	if reverse {
		return l.Fprint(w, label, true)
	}
	return nil
}

// runDemo adds the configured values, prints the list, sorts it, prints
// it again and clears it
func runDemo(w io.Writer, conf *configmanager.ListConfig) error {
	opts := []linkedlist.Option[float64]{
		linkedlist.WithRenderer(formatFloat),
	}
	if conf.Sorted {
		opts = append(opts, linkedlist.WithSorted[float64]())
	}
	var s *stats.Stats
	if conf.Stats {
		s = stats.NewListStats(demoStatsName)
		defer s.UnregisterAll()
		opts = append(opts, linkedlist.WithStats[float64](s))
	}

	l := linkedlist.New(opts...)
	l.AddAll(conf.Values...)
	if err := printList(w, l, conf.Label, conf.Reverse); err != nil {
		return err
	}

	l.Sort()
	if err := printList(w, l, "Sorted "+conf.Label, conf.Reverse); err != nil {
		return err
	}

	l.Clear()
	if err := l.Fprint(w, "Cleared "+conf.Label, false); err != nil {
		return err
	}

	if s != nil {
		return printStats(w, s)
	}
	return nil
}

func runSort(w io.Writer, values []float64, sorted, reverse bool) error {
	opts := []linkedlist.Option[float64]{
		linkedlist.WithRenderer(formatFloat),
		linkedlist.WithValues(values...),
	}
	if sorted {
		opts = append(opts, linkedlist.WithSorted[float64]())
	}
	l := linkedlist.New(opts...)
	l.Sort()
	return l.Fprint(w, "", reverse)
}

func printStats(w io.Writer, s *stats.Stats) error {
	data := stats.GetMetricsData(s.Type())[s.Namespace()]
	for _, key := range data.Keys() {
		if _, err := fmt.Fprintf(w, "%s: %s\n", key, data[key]); err != nil {
			return err
		}
	}
	return nil
}
