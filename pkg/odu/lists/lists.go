package lists

import (
	"github.com/pretodev/odu-core/pkg/odu"
)

// Replace upserts item by predicate. On a hit the first matching element is
// overwritten IN PLACE and the same slice is returned, so the mutation is
// visible through every alias of the backing array. On a miss a freshly
// allocated slice of len+1 ending in item is returned and the original is
// left untouched. Callers must account for this asymmetry; it is kept for
// compatibility with code that relies on the in-place branch.
func Replace[T any](items []T, item T, match func(T) bool) []T {
	if i := IndexWhere(items, match); i >= 0 {
		items[i] = item
		return items
	}

	appended := make([]T, len(items)+1)
	copy(appended, items)
	appended[len(items)] = item
	return appended
}

// IndexWhere returns the index of the first element satisfying match, or -1.
func IndexWhere[T any](items []T, match func(T) bool) int {
	for i, v := range items {
		if match(v) {
			return i
		}
	}
	return -1
}

func FirstWhere[T any](items []T, match func(T) bool) odu.Optional[T] {
	if i := IndexWhere(items, match); i >= 0 {
		return odu.Present(items[i])
	}
	return odu.Absent[T]()
}

// RemoveWhere returns a new slice without the elements satisfying match; the
// original is never mutated.
func RemoveWhere[T any](items []T, match func(T) bool) []T {
	kept := make([]T, 0, len(items))
	for _, v := range items {
		if !match(v) {
			kept = append(kept, v)
		}
	}
	return kept
}
