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

import "mosn.io/linkedlist/pkg/stats"

type options[T any] struct {
	sorted bool
	render func(T) string
	stats  *stats.Stats
	values []T
}

// Option configures a List at construction
type Option[T any] func(*options[T])

// WithSorted starts the list in sorted mode
func WithSorted[T any]() Option[T] {
	return func(o *options[T]) {
		o.sorted = true
	}
}

// WithRenderer sets the value to text function used by Render
func WithRenderer[T any](render func(T) string) Option[T] {
	return func(o *options[T]) {
		if render != nil {
			o.render = render
		}
	}
}

// WithStats records comparisons, relinks and sort moves into s
func WithStats[T any](s *stats.Stats) Option[T] {
	return func(o *options[T]) {
		o.stats = s
	}
}

// WithValues adds values once the list is set up
func WithValues[T any](values ...T) Option[T] {
	return func(o *options[T]) {
		o.values = append(o.values, values...)
	}
}

func emptyRender[T any](T) string {
	return ""
}
