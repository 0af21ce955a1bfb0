// Package reorder moves cards within a session order in response to drag and
// touch gestures
package reorder

import "slices"

// Move removes the element at from and reinserts it at to in the shortened
// list. The input is never modified. When from equals to, or either index is
// out of bounds, the input is returned unchanged.
func Move[T any](order []T, from, to int) []T {
	n := len(order)

	if from == to || from < 0 || from >= n || to < 0 || to >= n {
		return order
	}

	out := make([]T, 0, n)
	out = append(out, order[:from]...)
	out = append(out, order[from+1:]...)

	return slices.Insert(out, to, order[from])
}

// Insert returns a copy of order with v inserted at index at. An index
// outside [0, len(order)] appends.
func Insert[T any](order []T, at int, v T) []T {
	out := slices.Clone(order)

	if at < 0 || at > len(out) {
		return append(out, v)
	}

	return slices.Insert(out, at, v)
}

// Remove returns a copy of order without the element at index at. Out of
// bounds indices return the input unchanged.
func Remove[T any](order []T, at int) []T {
	if at < 0 || at >= len(order) {
		return order
	}

	return slices.Delete(slices.Clone(order), at, at+1)
}
