// Package sort provides slice-level sorting on top of the dynarray quicksort.
//
// Every function here runs the same single-scan (Lomuto) partition that
// dynarray.List.QuickSort uses, with the pivot chosen by the process-wide
// dynarray.PivotPolicy (DYNARRAY_PIVOT, default "last").
//
// # Example Usage
//
//	import "github.com/ajroetker/go-dynarray/dynarray/contrib/sort"
//
//	func ProcessData(data []float32) {
//	    sort.Sort(data)  // In-place ascending sort
//	}
//
//	func CheckSorted(data []float32) bool {
//	    return sort.IsSorted(data)
//	}
//
// # Performance
//
// With the default last-element pivot, already-sorted, reverse-sorted and
// all-equal inputs cost O(n²) comparisons and O(n) stack depth. Set
// DYNARRAY_PIVOT=median3 or DYNARRAY_PIVOT=random when input order is not
// under your control.
package sort
