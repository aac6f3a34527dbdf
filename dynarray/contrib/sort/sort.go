// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sort

import "github.com/ajroetker/go-dynarray/dynarray"

// Sort sorts data in-place in ascending natural order.
// The sort is not stable.
func Sort[T dynarray.Ordered](data []T) {
	if len(data) <= 1 {
		return
	}
	dynarray.QuickSortFunc(data, dynarray.Compare[T])
}

// SortFunc sorts data in-place, ascending per cmp.
// The sort is not stable.
func SortFunc[T any](data []T, cmp func(a, b T) int) {
	if len(data) <= 1 {
		return
	}
	dynarray.QuickSortFunc(data, cmp)
}

// SortList sorts l in-place in ascending natural order, honoring the list's
// own pivot policy.
func SortList[E dynarray.Ordered](l *dynarray.List[E]) {
	l.QuickSort(dynarray.Compare[E])
}

// IsSorted reports whether data is in ascending natural order.
func IsSorted[T dynarray.Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

// IsSortedFunc reports whether data is ascending per cmp.
func IsSortedFunc[T any](data []T, cmp func(a, b T) int) bool {
	return dynarray.IsSortedSliceFunc(data, cmp)
}

// NthElement rearranges data such that the element at index k
// is the element that would be at that position if data were sorted.
// Elements before k are <= data[k], elements after are >= data[k].
// Out-of-range k leaves data untouched.
func NthElement[T dynarray.Ordered](data []T, k int) {
	NthElementFunc(data, k, dynarray.Compare[T])
}

// NthElementFunc is NthElement ordered by cmp.
func NthElementFunc[T any](data []T, k int, cmp func(a, b T) int) {
	n := len(data)
	if k < 0 || k >= n {
		return
	}

	policy := dynarray.CurrentPivotPolicy()
	low, high := 0, n-1
	for low < high {
		dynarray.SelectPivot(data, low, high, cmp, policy)
		p := dynarray.PartitionFunc(data, low, high, cmp)
		switch {
		case k == p:
			return
		case k < p:
			high = p - 1
		default:
			low = p + 1
		}
	}
}
