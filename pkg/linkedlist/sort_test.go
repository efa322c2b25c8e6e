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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mosn.io/linkedlist/pkg/stats"
)

func TestSortDemo(t *testing.T) {
	l := New(WithValues(demoValues...), WithRenderer(formatFloat))
	assert.Equal(t, "list: { 23, 54, 2, 8, 3.2, 14, 43, 0, 9, 2 }", l.Render("list", false))

	l.Sort()
	checkLinks(t, l)
	assert.True(t, l.Sorted())
	assert.Equal(t, []float64{0, 2, 2, 3.2, 8, 9, 14, 23, 43, 54}, l.Values())
	assert.Equal(t, "Sorted list: { 0, 2, 2, 3.2, 8, 9, 14, 23, 43, 54 }", l.Render("Sorted list", false))

	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, "{ }", l.String())
}

func TestSortShapes(t *testing.T) {
	testCases := []struct {
		name   string
		values []float64
	}{
		{"empty", nil},
		{"single", []float64{1}},
		{"two reversed", []float64{2, 1}},
		{"already sorted", []float64{1, 2, 3, 4, 5, 6}},
		{"reverse sorted", []float64{6, 5, 4, 3, 2, 1}},
		{"all equal", []float64{4, 4, 4, 4}},
		{"negative", []float64{-1.5, 3, -7, 0, 3, -1.5}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := New(WithValues(tc.values...))
			l.Sort()
			checkLinks(t, l)
			checkAscending(t, l)
			assert.Equal(t, len(tc.values), l.Len())
		})
	}
}

func TestSortRandom(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 20; round++ {
		l := New[float64]()
		for i := r.Intn(200); i > 0; i-- {
			l.Add(float64(r.Intn(50)))
		}
		count := l.Len()
		l.Sort()
		checkLinks(t, l)
		checkAscending(t, l)
		require.Equal(t, count, l.Len())
	}
}

func TestSortIsStable(t *testing.T) {
	type item struct {
		key   int
		order int
	}
	l := NewFunc(func(a, b item) int { return a.key - b.key })
	l.AddAll(item{2, 0}, item{1, 1}, item{2, 2}, item{1, 3}, item{0, 4})
	l.Sort()
	assert.Equal(t, []item{{0, 4}, {1, 1}, {1, 3}, {2, 0}, {2, 2}}, l.Values())
}

func TestSortIsOneWay(t *testing.T) {
	l := New(WithValues(3, 1, 2))
	l.Sort()
	before := l.Values()
	nodes := []*Node[int]{}
	for n := l.Front(); !n.IsEnd(); n = n.Next() {
		nodes = append(nodes, n)
	}

	l.Sort()
	assert.True(t, l.Sorted())
	assert.Equal(t, before, l.Values())
	i := 0
	for n := l.Front(); !n.IsEnd(); n = n.Next() {
		assert.Same(t, nodes[i], n)
		i++
	}

	// sorted mode refuses moves and edits that could break the order
	assert.False(t, l.Front().MoveBefore(l.End()))
	assert.False(t, l.Front().SetValue(10))
}

func TestSortKeepsNodes(t *testing.T) {
	l := New(WithValues(5, 4, 3))
	five, four, three := l.Front(), l.Front().Next(), l.Back()
	l.Sort()
	assert.Same(t, three, l.Front())
	assert.Same(t, four, three.Next())
	assert.Same(t, five, l.Back())
}

func TestSortStats(t *testing.T) {
	s := stats.NewListStats("sort_test")
	defer s.UnregisterAll()

	l := New(WithValues(1, 2, 3, 0), WithStats[int](s))
	l.Sort()
	assert.Equal(t, int64(2), s.Counter(stats.ListSortSkip).Count())
	assert.Equal(t, int64(1), s.Counter(stats.ListSortMove).Count())
	assert.Equal(t, int64(4), s.Gauge(stats.ListCount).Value())
	// 4 appends plus one bridge and one link for the move
	assert.Equal(t, int64(6), s.Counter(stats.ListRelink).Count())
	assert.True(t, s.Counter(stats.ListCompare).Count() > 0)

	l.Clear()
	assert.Equal(t, int64(0), s.Gauge(stats.ListCount).Value())
}

func BenchmarkSort(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	values := make([]int, 512)
	for i := range values {
		values[i] = r.Int()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l := New(WithValues(values...))
		l.Sort()
	}
}

func BenchmarkSortedAdd(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	l := New(WithSorted[int]())
	for i := 0; i < b.N; i++ {
		if l.Len() == 1024 {
			l.Clear()
		}
		l.Add(r.Int())
	}
}
