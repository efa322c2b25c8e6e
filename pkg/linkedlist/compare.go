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

// Compare orders l and other lexicographically by value, from first to
// last. A list that is a prefix of the other is the lower one.
func (l *List[T]) Compare(other *List[T]) int {
	a, b := l.head, other.head
	for ; !a.IsEnd() && !b.IsEnd(); a, b = a.next, b.next {
		if c := l.cmp(a.value, b.value); c < 0 {
			return -1
		} else if c > 0 {
			return 1
		}
	}
	switch {
	case a.IsEnd() && b.IsEnd():
		return 0
	case a.IsEnd():
		return -1
	default:
		return 1
	}
}

func (l *List[T]) Equal(other *List[T]) bool {
	return l.count == other.count && l.Compare(other) == 0
}

func (l *List[T]) Less(other *List[T]) bool {
	return l.Compare(other) < 0
}

func (l *List[T]) LessOrEqual(other *List[T]) bool {
	return l.Compare(other) <= 0
}

func (l *List[T]) Greater(other *List[T]) bool {
	return l.Compare(other) > 0
}

func (l *List[T]) GreaterOrEqual(other *List[T]) bool {
	return l.Compare(other) >= 0
}
