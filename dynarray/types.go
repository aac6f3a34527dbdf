// Package dynarray provides a generic, contiguous, resizable list with
// indexed access, shifting insert/remove, truncation and an in-place
// comparator-driven quicksort.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-dynarray/dynarray"
//
//	l := dynarray.New[int]()
//	l.Add(5)
//	l.Add(3)
//	l.Add(8)
//
//	// Sort with any three-way comparator
//	l.QuickSort(dynarray.Compare[int])
//
//	// Natural-order check needs an Ordered element type
//	ok := dynarray.IsSorted(l)
//
// A List is not safe for concurrent use. Callers that share one across
// goroutines must synchronize access themselves.
package dynarray

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Ordered is a constraint for types with a natural total order under < and >.
// Floats are included; NaN values break the total order and are the caller's
// responsibility.
type Ordered interface {
	Integers | Floats | ~string
}

// Comparator returns a negative number when a sorts before b, zero when they
// are equivalent and a positive number when a sorts after b.
type Comparator[E any] func(a, b E) int

// Compare is the natural-order Comparator for Ordered types.
func Compare[E Ordered](a, b E) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Reverse returns a Comparator that orders elements opposite to cmp.
func Reverse[E any](cmp Comparator[E]) Comparator[E] {
	return func(a, b E) int {
		return cmp(b, a)
	}
}
