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

package dynarray

import "math/rand"

// QuickSortFunc sorts data in place, ascending per cmp, using the
// process-wide pivot policy. The sort is not stable.
func QuickSortFunc[E any](data []E, cmp Comparator[E]) {
	QuickSortWith(data, cmp, CurrentPivotPolicy())
}

// QuickSortWith sorts data in place, ascending per cmp, using policy to pick
// each partition's pivot.
//
// Every policy moves its pivot to the end of the range and runs the same
// single-scan partition, so the result is always a sorted permutation of
// the input. Only the work done to get there differs.
func QuickSortWith[E any](data []E, cmp Comparator[E], policy PivotPolicy) {
	if len(data) <= 1 {
		return
	}
	quickSort(data, 0, len(data)-1, cmp, policy)
}

// quickSort sorts the closed range [low, high].
func quickSort[E any](data []E, low, high int, cmp Comparator[E], policy PivotPolicy) {
	if low >= high {
		return
	}
	SelectPivot(data, low, high, cmp, policy)
	p := PartitionFunc(data, low, high, cmp)
	quickSort(data, low, p-1, cmp, policy)
	quickSort(data, p+1, high, cmp, policy)
}

// PartitionFunc partitions the closed range [low, high] around the pivot
// data[high]. Returns the pivot's final index p, with every element of
// data[low:p] comparing less than the pivot and every element of
// data[p+1:high+1] comparing greater or equal.
func PartitionFunc[E any](data []E, low, high int, cmp Comparator[E]) int {
	pivot := data[high]
	i := low
	for j := low; j < high; j++ {
		if cmp(data[j], pivot) < 0 {
			data[i], data[j] = data[j], data[i]
			i++
		}
	}
	data[i], data[high] = data[high], data[i]
	return i
}

// SelectPivot chooses a pivot from the closed range [low, high] according to
// policy and swaps it into data[high]. PivotLast leaves data untouched.
func SelectPivot[E any](data []E, low, high int, cmp Comparator[E], policy PivotPolicy) {
	var idx int
	switch policy {
	case PivotMedianOfThree:
		idx = medianOf3(data, low, low+(high-low)/2, high, cmp)
	case PivotRandom:
		idx = low + rand.Intn(high-low+1)
	default:
		return
	}
	if idx != high {
		data[idx], data[high] = data[high], data[idx]
	}
}

// medianOf3 returns whichever of indices a, b, c holds the median value.
func medianOf3[E any](data []E, a, b, c int, cmp Comparator[E]) int {
	if cmp(data[a], data[b]) > 0 {
		a, b = b, a
	}
	if cmp(data[b], data[c]) > 0 {
		b = c
		if cmp(data[a], data[b]) > 0 {
			b = a
		}
	}
	return b
}

// IsSortedSliceFunc reports whether data is ascending per cmp, that is
// cmp(data[i-1], data[i]) <= 0 for every adjacent pair.
func IsSortedSliceFunc[E any](data []E, cmp Comparator[E]) bool {
	for i := 1; i < len(data); i++ {
		if cmp(data[i-1], data[i]) > 0 {
			return false
		}
	}
	return true
}
