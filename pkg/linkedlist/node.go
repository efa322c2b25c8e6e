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

// Node holds one value of a List and the links to its neighbours.
// The last node of every list is the end node, which holds no value and
// never has a successor.
type Node[T any] struct {
	value T
	next  *Node[T]
	prev  *Node[T]
	// list is a lookup reference, nil once the node is removed
	list *List[T]
}

// Value returns the stored value, the zero value for the end node
func (n *Node[T]) Value() T {
	return n.value
}

// SetValue replaces the stored value. It is refused on the end node, on
// removed nodes and on sorted lists.
func (n *Node[T]) SetValue(value T) bool {
	if n.list == nil || n.IsEnd() || n.list.sorted {
		return false
	}
	n.value = value
	return true
}

// Next returns the following node, nil for the end node
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the preceding node, nil for the first node
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// List returns the owning list, nil once the node is removed
func (n *Node[T]) List() *List[T] {
	return n.list
}

func (n *Node[T]) IsFirst() bool {
	return n.prev == nil
}

func (n *Node[T]) IsEnd() bool {
	return n.next == nil
}

func (n *Node[T]) IsLast() bool {
	return !n.IsEnd() && n.next.IsEnd()
}

// InsertBefore creates a node holding value just before n and returns it.
// On a sorted list the value goes to its sorted position instead.
func (n *Node[T]) InsertBefore(value T) *Node[T] {
	if n.list == nil {
		return nil
	}
	if n.list.sorted {
		return n.list.InsertSorted(value)
	}
	e := n.list.newNode(value)
	e.linkBefore(n)
	return e
}

// InsertAfter creates a node holding value just after n and returns it.
// Inserting after the end node inserts before it.
func (n *Node[T]) InsertAfter(value T) *Node[T] {
	if n.list == nil {
		return nil
	}
	if n.list.sorted {
		return n.list.InsertSorted(value)
	}
	e := n.list.newNode(value)
	e.linkAfter(n)
	return e
}

// EmplaceBefore builds the value and inserts it like InsertBefore
func (n *Node[T]) EmplaceBefore(build func() T) *Node[T] {
	if n.list == nil {
		return nil
	}
	return n.InsertBefore(build())
}

// EmplaceAfter builds the value and inserts it like InsertAfter
func (n *Node[T]) EmplaceAfter(build func() T) *Node[T] {
	if n.list == nil {
		return nil
	}
	return n.InsertAfter(build())
}

// Remove unlinks n from its list. The end node can not be removed.
func (n *Node[T]) Remove() bool {
	if n.list == nil || n.IsEnd() {
		return false
	}
	l := n.list
	n.bridge()
	n.list = nil
	l.count--
	l.stats.setCount(l.count)
	return true
}

// MoveBefore relinks n just before other without reallocating it.
// Moves are refused on sorted lists and across lists.
func (n *Node[T]) MoveBefore(other *Node[T]) bool {
	if !n.movable(other) {
		return false
	}
	n.bridge()
	n.linkBefore(other)
	return true
}

// MoveAfter relinks n just after other, or before it if other is the end node
func (n *Node[T]) MoveAfter(other *Node[T]) bool {
	if !n.movable(other) {
		return false
	}
	n.bridge()
	n.linkAfter(other)
	return true
}

func (n *Node[T]) movable(other *Node[T]) bool {
	return n.list != nil && other != nil && other != n &&
		other.list == n.list && !n.IsEnd() && !n.list.sorted
}

// Compare orders n and other by value, both must belong to a list
func (n *Node[T]) Compare(other *Node[T]) int {
	l := n.list
	if l == nil {
		l = other.list
	}
	return l.cmp(n.value, other.value)
}

func (n *Node[T]) Less(other *Node[T]) bool {
	return n.Compare(other) < 0
}

func (n *Node[T]) Equal(other *Node[T]) bool {
	return n.Compare(other) == 0
}

// linkBefore connects n to other and its predecessor, then connects
// them back to n.
func (n *Node[T]) linkBefore(other *Node[T]) {
	n.prev = other.prev
	n.next = other
	if other.IsFirst() {
		n.list.head = n
	} else {
		other.prev.next = n
	}
	other.prev = n
	n.list.stats.relink()
}

func (n *Node[T]) linkAfter(other *Node[T]) {
	if other.IsEnd() {
		// nothing may follow the end node
		n.linkBefore(other)
		return
	}
	n.prev = other
	n.next = other.next
	other.next.prev = n
	other.next = n
	n.list.stats.relink()
}

// bridge connects the neighbours of n to each other and clears the links of n
func (n *Node[T]) bridge() {
	if n.IsFirst() {
		n.list.head = n.next
		n.next.prev = nil
	} else {
		n.prev.next = n.next
		n.next.prev = n.prev
	}
	n.next = nil
	n.prev = nil
	n.list.stats.relink()
}
