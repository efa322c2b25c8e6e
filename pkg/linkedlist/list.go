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

// Package linkedlist provides a doubly linked list that keeps either
// insertion order or ascending order, and sorts itself in place with an
// insertion sort built on neighbour links only.
package linkedlist

import (
	"cmp"

	"mosn.io/pkg/log"
)

// noCopy is flagged by go vet copylocks when a List is copied by value
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// List is a doubly linked list closed by an end node.
// A List is not safe for concurrent use and must not be copied, use
// Clone or Take instead.
type List[T any] struct {
	noCopy noCopy

	// head is the first node, the end node when the list is empty
	head *Node[T]
	end  *Node[T]
	// count excludes the end node
	count int
	// sorted never goes back to false
	sorted  bool
	compare func(a, b T) int
	render  func(T) string
	stats   *listStats
}

// New returns an empty list of naturally ordered values
func New[T cmp.Ordered](opts ...Option[T]) *List[T] {
	return NewFunc(cmp.Compare[T], opts...)
}

// NewFunc returns an empty list ordered by compare, which returns a
// negative number when a < b, zero when a == b and a positive number
// when a > b.
func NewFunc[T any](compare func(a, b T) int, opts ...Option[T]) *List[T] {
	o := &options[T]{
		render: emptyRender[T],
	}
	for _, opt := range opts {
		opt(o)
	}
	l := &List[T]{
		sorted:  o.sorted,
		compare: compare,
		render:  o.render,
		stats:   newListStats(o.stats),
	}
	l.setup()
	l.AddAll(o.values...)
	return l
}

func (l *List[T]) setup() {
	l.end = &Node[T]{list: l}
	l.head = l.end
	l.count = 0
	l.stats.setCount(0)
}

func (l *List[T]) newNode(value T) *Node[T] {
	l.count++
	l.stats.setCount(l.count)
	return &Node[T]{value: value, list: l}
}

func (l *List[T]) cmp(a, b T) int {
	l.stats.compared()
	return l.compare(a, b)
}

// Len returns the number of values, the end node excluded
func (l *List[T]) Len() int {
	return l.count
}

// Sorted reports whether the list keeps ascending order
func (l *List[T]) Sorted() bool {
	return l.sorted
}

// Front returns the first node, which is the end node for an empty list
func (l *List[T]) Front() *Node[T] {
	return l.head
}

// Back returns the last node holding a value, nil for an empty list
func (l *List[T]) Back() *Node[T] {
	return l.end.prev
}

// End returns the end node. It only marks the end of the list and serves
// as an insertion target.
func (l *List[T]) End() *Node[T] {
	return l.end
}

// Add appends value, or inserts it at its sorted position in sorted mode
func (l *List[T]) Add(value T) *Node[T] {
	if l.sorted {
		return l.InsertSorted(value)
	}
	return l.end.InsertBefore(value)
}

// AddAll adds every value in order
func (l *List[T]) AddAll(values ...T) {
	for _, value := range values {
		l.Add(value)
	}
}

// AddRange adds values[start:end], nothing when end <= start
func (l *List[T]) AddRange(values []T, start, end int) {
	if start < 0 {
		start = 0
	}
	if end > len(values) {
		end = len(values)
	}
	for ; start < end; start++ {
		l.Add(values[start])
	}
}

// Emplace builds the value, then adds it like Add
func (l *List[T]) Emplace(build func() T) *Node[T] {
	e := l.newNode(build())
	if l.sorted {
		e.linkBefore(l.FindInsertionPoint(l.head, e.value, true))
	} else {
		e.linkBefore(l.end)
	}
	return e
}

// InsertSorted inserts value after every value lower or equal to it
func (l *List[T]) InsertSorted(value T) *Node[T] {
	e := l.newNode(value)
	e.linkBefore(l.FindInsertionPoint(l.head, value, true))
	return e
}

// Insert inserts value before n, or after it when placeAfter is set.
// It returns nil when n does not belong to l.
func (l *List[T]) Insert(n *Node[T], value T, placeAfter bool) *Node[T] {
	if n == nil || n.list != l {
		return nil
	}
	if placeAfter {
		return n.InsertAfter(value)
	}
	return n.InsertBefore(value)
}

// FindInsertionPoint walks forward from start and returns the node value
// must be inserted before. With placeAfterEquals the walk passes values
// equal to value, otherwise it stops at the first of them. The walk may
// end on the end node.
func (l *List[T]) FindInsertionPoint(start *Node[T], value T, placeAfterEquals bool) *Node[T] {
	if start == nil || start.list != l {
		start = l.head
	}
	steps := 0
	for !start.IsEnd() && l.due(value, start.value, placeAfterEquals) {
		start = start.next
		steps++
	}
	l.stats.scanned(steps)
	return start
}

// FindInsertionPointReverse walks backward from start while the
// preceding value still belongs after value, and returns the node value
// must be inserted before.
func (l *List[T]) FindInsertionPointReverse(start *Node[T], value T, placeAfterEquals bool) *Node[T] {
	if start == nil || start.list != l {
		start = l.end
	}
	steps := 0
	for !start.IsFirst() && l.behind(value, start.prev.value, placeAfterEquals) {
		start = start.prev
		steps++
	}
	l.stats.scanned(steps)
	return start
}

// due reports whether value still goes after current
func (l *List[T]) due(value, current T, placeAfterEquals bool) bool {
	c := l.cmp(value, current)
	if placeAfterEquals {
		return c >= 0
	}
	return c > 0
}

// behind reports whether value still goes before previous
func (l *List[T]) behind(value, previous T, placeAfterEquals bool) bool {
	c := l.cmp(value, previous)
	if placeAfterEquals {
		return c < 0
	}
	return c <= 0
}

// Contains reports whether value is in the list. Sorted lists stop at the
// insertion point, unsorted lists are walked entirely.
func (l *List[T]) Contains(value T) bool {
	if l.sorted {
		n := l.FindInsertionPoint(l.head, value, false)
		return !n.IsEnd() && l.cmp(n.value, value) == 0
	}
	for n := l.head; !n.IsEnd(); n = n.next {
		if l.cmp(n.value, value) == 0 {
			return true
		}
	}
	return false
}

// Clear removes every node but the end node
func (l *List[T]) Clear() {
	removed := l.count
	for !l.end.IsFirst() {
		l.end.prev.Remove()
	}
	if log.DefaultLogger.GetLogLevel() >= log.DEBUG {
		log.DefaultLogger.Debugf("[linkedlist] [clear] removed %d nodes", removed)
	}
}

// At returns the node at index, walking from the nearer end.
// It should only be used when no node is at hand to walk from.
func (l *List[T]) At(index int) (*Node[T], error) {
	if index < 0 || index >= l.count {
		return nil, newIndexError(index, l.count)
	}
	if index <= l.count/2 {
		n := l.head
		for ; index > 0; index-- {
			n = n.next
		}
		return n, nil
	}
	n := l.end
	for ; index < l.count; index++ {
		n = n.prev
	}
	return n, nil
}

// Remove removes n when it belongs to l
func (l *List[T]) Remove(n *Node[T]) bool {
	if n == nil || n.list != l {
		return false
	}
	return n.Remove()
}

// RemoveAt removes the node at index and returns its value
func (l *List[T]) RemoveAt(index int) (T, error) {
	n, err := l.At(index)
	if err != nil {
		var zero T
		return zero, err
	}
	n.Remove()
	return n.value, nil
}

// Each calls fn for every value from first to last until fn returns false
func (l *List[T]) Each(fn func(index int, value T) bool) {
	index := 0
	for n := l.head; !n.IsEnd(); n = n.next {
		if !fn(index, n.value) {
			return
		}
		index++
	}
}

// EachReverse calls fn for every value from last to first until fn
// returns false
func (l *List[T]) EachReverse(fn func(index int, value T) bool) {
	index := l.count - 1
	for n := l.end.prev; n != nil; n = n.prev {
		if !fn(index, n.value) {
			return
		}
		index--
	}
}

// Values returns the values from first to last
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.count)
	for n := l.head; !n.IsEnd(); n = n.next {
		values = append(values, n.value)
	}
	return values
}

// Clone returns a deep copy whose nodes all belong to the copy.
// The copy records no stats.
func (l *List[T]) Clone() *List[T] {
	c := &List[T]{
		sorted:  l.sorted,
		compare: l.compare,
		render:  l.render,
	}
	c.setup()
	c.appendFrom(l)
	return c
}

// Assign replaces the content and mode of l with a deep copy of other
func (l *List[T]) Assign(other *List[T]) {
	if other == l {
		return
	}
	l.Clear()
	l.sorted = other.sorted
	l.compare = other.compare
	l.render = other.render
	l.appendFrom(other)
}

// appendFrom appends the values of other in their order, bypassing the
// sorted insertion.
func (l *List[T]) appendFrom(other *List[T]) {
	for n := other.head; !n.IsEnd(); n = n.next {
		l.newNode(n.value).linkBefore(l.end)
	}
}

// Take moves every node of l into a new list and leaves l empty and
// unsorted.
func (l *List[T]) Take() *List[T] {
	t := &List[T]{
		head:    l.head,
		end:     l.end,
		count:   l.count,
		sorted:  l.sorted,
		compare: l.compare,
		render:  l.render,
		stats:   l.stats,
	}
	for n := t.head; n != nil; n = n.next {
		n.list = t
	}
	l.stats = nil
	l.sorted = false
	l.setup()
	return t
}
