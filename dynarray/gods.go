package dynarray

import "github.com/emirpasic/gods/utils"

// FromGods adapts an untyped gods comparator such as utils.IntComparator or
// utils.StringComparator into a Comparator[E]. The gods comparator must
// accept values of type E; it panics otherwise, as it would inside gods.
func FromGods[E any](c utils.Comparator) Comparator[E] {
	return func(a, b E) int {
		return c(a, b)
	}
}

// ToGods exposes cmp as an untyped gods comparator, for handing a typed
// ordering to gods containers. Values that are not of type E panic.
func ToGods[E any](cmp Comparator[E]) utils.Comparator {
	return func(a, b interface{}) int {
		return cmp(a.(E), b.(E))
	}
}
