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
	"mosn.io/pkg/log"
)

// Sort orders the list with an insertion sort and switches it to sorted
// mode for good. Calling Sort on a sorted list does nothing, whatever the
// actual order is.
//
// Every node from the second one on is placed by walking backward from
// its current position, so after placing the k-th node the first k nodes
// are in order. The backward walk is linear, so the sort is quadratic.
func (l *List[T]) Sort() {
	if l.sorted {
		return
	}
	l.sorted = true
	if l.head.IsEnd() {
		return
	}

	moved, skipped := 0, 0
	current := l.head.next
	for !current.IsEnd() {
		target := l.FindInsertionPointReverse(current, current.value, true)
		node := current
		current = current.next
		if target == node {
			// already in place
			skipped++
			l.stats.skipped()
			continue
		}
		node.bridge()
		node.linkBefore(target)
		moved++
		l.stats.moved()
	}

	if log.DefaultLogger.GetLogLevel() >= log.DEBUG {
		log.DefaultLogger.Debugf("[linkedlist] [sort] sorted %d nodes, moved %d, skipped %d", l.count, moved, skipped)
	}
}
