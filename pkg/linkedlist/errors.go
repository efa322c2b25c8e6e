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

	"github.com/pkg/errors"
)

// ErrIndexOutOfRange is matched by every *IndexError under errors.Is
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError reports an index outside [0, Count)
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index out of range. index: %d, count: %d", e.Index, e.Count)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

func newIndexError(index, count int) error {
	return errors.WithStack(&IndexError{Index: index, Count: count})
}
