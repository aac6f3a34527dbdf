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

import (
	"fmt"
	"strings"
)

// DefaultCapacity is the number of slots a new or cleared List starts with.
const DefaultCapacity = 15

// growthFactor multiplies the capacity whenever a full List must grow.
const growthFactor = 2

// List is a contiguous, resizable sequence of elements of type E.
//
// The zero value is an empty list ready to use. Slots past Size hold the
// zero value of E so that removed elements are not retained.
type List[E any] struct {
	elements []E
	size     int

	// pivot overrides the process-wide policy when hasPivot is set.
	pivot    PivotPolicy
	hasPivot bool
}

// New returns an empty list with DefaultCapacity slots.
func New[E any]() *List[E] {
	return NewWithCapacity[E](DefaultCapacity)
}

// NewWithCapacity returns an empty list with room for capacity elements.
// Non-positive capacities fall back to DefaultCapacity.
func NewWithCapacity[E any](capacity int) *List[E] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &List[E]{elements: make([]E, capacity)}
}

// From returns a list holding a copy of values, in order.
func From[E any](values ...E) *List[E] {
	l := NewWithCapacity[E](max(len(values), DefaultCapacity))
	l.size = copy(l.elements, values)
	return l
}

// Size returns the number of elements in the list.
func (l *List[E]) Size() int {
	return l.size
}

// IsEmpty reports whether the list has no elements.
func (l *List[E]) IsEmpty() bool {
	return l.size == 0
}

// Cap returns the number of slots in the backing store.
func (l *List[E]) Cap() int {
	return len(l.elements)
}

// Add appends element to the end of the list, doubling the capacity first
// when the list is full.
func (l *List[E]) Add(element E) {
	l.ensureCapacity()
	l.elements[l.size] = element
	l.size++
}

// Insert places element at index, shifting the elements at [index, Size) one
// slot to the right. index == Size appends.
func (l *List[E]) Insert(index int, element E) error {
	if err := checkInsertIndex("insert", index, l.size); err != nil {
		return err
	}
	l.ensureCapacity()
	copy(l.elements[index+1:l.size+1], l.elements[index:l.size])
	l.elements[index] = element
	l.size++
	return nil
}

// Get returns the element at index.
func (l *List[E]) Get(index int) (E, error) {
	if err := checkIndex("get", index, l.size); err != nil {
		var zero E
		return zero, err
	}
	return l.elements[index], nil
}

// Set replaces the element at index and returns the element it replaced.
func (l *List[E]) Set(index int, element E) (E, error) {
	if err := checkIndex("set", index, l.size); err != nil {
		var zero E
		return zero, err
	}
	old := l.elements[index]
	l.elements[index] = element
	return old, nil
}

// Remove deletes the element at index and returns it. Later elements shift
// one slot to the left.
func (l *List[E]) Remove(index int) (E, error) {
	var zero E
	if err := checkIndex("remove", index, l.size); err != nil {
		return zero, err
	}
	removed := l.elements[index]
	copy(l.elements[index:l.size-1], l.elements[index+1:l.size])
	l.size--
	l.elements[l.size] = zero
	return removed, nil
}

// Swap exchanges the elements at i and j.
func (l *List[E]) Swap(i, j int) error {
	if err := checkIndex("swap", i, l.size); err != nil {
		return err
	}
	if err := checkIndex("swap", j, l.size); err != nil {
		return err
	}
	l.elements[i], l.elements[j] = l.elements[j], l.elements[i]
	return nil
}

// Clear discards every element and replaces the backing store with a fresh
// one of DefaultCapacity slots. Values obtained earlier are unaffected.
func (l *List[E]) Clear() {
	debugPrint("clear: size %d, cap %d -> %d", l.size, len(l.elements), DefaultCapacity)
	l.elements = make([]E, DefaultCapacity)
	l.size = 0
}

// Split truncates the list to newSize elements, discarding the tail.
// Despite the name it does not produce a second list: the removed elements
// are dropped. The backing store is not reallocated, so Cap is unchanged.
func (l *List[E]) Split(newSize int) error {
	if newSize < 0 || newSize > l.size {
		return &ArgumentError{Op: "split", Arg: "size", Value: newSize, Size: l.size}
	}
	if newSize == l.size {
		return nil
	}
	debugPrint("split: size %d -> %d", l.size, newSize)
	clear(l.elements[newSize:l.size])
	l.size = newSize
	return nil
}

// SetPivotPolicy makes QuickSort on this list use p instead of the
// process-wide policy.
func (l *List[E]) SetPivotPolicy(p PivotPolicy) {
	l.pivot = p
	l.hasPivot = true
}

// PivotPolicy returns the pivot policy QuickSort will use.
func (l *List[E]) PivotPolicy() PivotPolicy {
	if l.hasPivot {
		return l.pivot
	}
	return CurrentPivotPolicy()
}

// QuickSort sorts the list in place, ascending per cmp. The sort is not
// stable: equivalent elements may change their relative order.
//
// With the default PivotLast policy every partition pivots on the last
// element of its range, which costs O(n²) on already-ordered input.
func (l *List[E]) QuickSort(cmp Comparator[E]) {
	if l.size <= 1 {
		return
	}
	QuickSortWith(l.elements[:l.size], cmp, l.PivotPolicy())
}

// IsSortedFunc reports whether the list is ascending per cmp.
func (l *List[E]) IsSortedFunc(cmp Comparator[E]) bool {
	return IsSortedSliceFunc(l.elements[:l.size], cmp)
}

// Values returns a copy of the elements in order.
func (l *List[E]) Values() []E {
	out := make([]E, l.size)
	copy(out, l.elements[:l.size])
	return out
}

// String renders the list as "[e0 e1 ...]".
func (l *List[E]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < l.size; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, l.elements[i])
	}
	sb.WriteByte(']')
	return sb.String()
}

// IsSorted reports whether l is in ascending natural order: no element is
// greater than its successor. Lists with fewer than two elements are sorted.
func IsSorted[E Ordered](l *List[E]) bool {
	for i := 1; i < l.size; i++ {
		if l.elements[i-1] > l.elements[i] {
			return false
		}
	}
	return true
}

func (l *List[E]) ensureCapacity() {
	if l.size < len(l.elements) {
		return
	}
	newCap := len(l.elements) * growthFactor
	if newCap == 0 {
		newCap = DefaultCapacity
	}
	debugPrint("grow: cap %d -> %d", len(l.elements), newCap)
	grown := make([]E, newCap)
	copy(grown, l.elements[:l.size])
	l.elements = grown
}
