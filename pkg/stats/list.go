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

package stats

import "fmt"

// ListType is the stats type of every linked list
const ListType = "linkedlist"

// Metrics keys for linked lists
const (
	ListCompare    = "compare"
	ListRelink     = "relink"
	ListSortMove   = "sort_move"
	ListSortSkip   = "sort_skip"
	ListCount      = "count"
	ListScanLength = "scan_length"
)

// NewListStats returns the stats of a named list
func NewListStats(listname string) *Stats {
	namespace := fmt.Sprintf("list_%s", listname)
	return NewStats(ListType, namespace)
}
