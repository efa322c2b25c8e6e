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
	"fmt"
	"io"
	"strings"
)

const reverseSuffix = "-Reverse"

// Render returns "{ v1, v2, ..., vn }", last to first when reverse is
// set. A non empty label is written first as "label: ", or
// "label-Reverse: " when reversed.
func (l *List[T]) Render(label string, reverse bool) string {
	var b strings.Builder
	if label != "" {
		b.WriteString(label)
		if reverse {
			b.WriteString(reverseSuffix)
		}
		b.WriteString(": ")
	}
	if l.count == 0 {
		b.WriteString("{ }")
		return b.String()
	}

	b.WriteString("{ ")
	first := true
	write := func(_ int, value T) bool {
		if first {
			first = false
		} else {
			b.WriteString(", ")
		}
		b.WriteString(l.render(value))
		return true
	}
	if reverse {
		l.EachReverse(write)
	} else {
		l.Each(write)
	}
	b.WriteString(" }")
	return b.String()
}

func (l *List[T]) String() string {
	return l.Render("", false)
}

// Fprint writes the rendering of l and a newline to w
func (l *List[T]) Fprint(w io.Writer, label string, reverse bool) error {
	_, err := fmt.Fprintln(w, l.Render(label, reverse))
	return err
}
