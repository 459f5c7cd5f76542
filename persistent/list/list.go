package list

import (
	"fmt"
	"strings"

	"github.com/npillmayer/rlist/maybe"
)

// List is an immutable singly-linked list. The zero value is the empty list:
//
//     var l list.List[int]        // []
//     l = l.Prepend(2).Prepend(1) // [1, 2]
//
type List[T any] struct {
	first *cell[T] // nil for the empty list
}

// cell is a cons cell. Cells are never modified after construction, which
// makes it safe for any number of lists to share a common tail.
type cell[T any] struct {
	head T
	tail *cell[T]
}

// Empty returns the empty list for element type T.
func Empty[T any]() List[T] {
	return List[T]{}
}

// Of creates a list from a number of values, in order.
//
//     l := list.Of(1, 2, 3)   // [1, 2, 3]
//
func Of[T any](values ...T) List[T] {
	return FromSlice(values)
}

// FromSlice creates a list with the elements of a slice, in order.
// The list does not reference the slice.
func FromSlice[T any](values []T) List[T] {
	var l List[T]
	for i := len(values) - 1; i >= 0; i-- {
		l = l.Prepend(values[i])
	}
	return l
}

// Cons returns a new list with value in front of l.
func Cons[T any](value T, l List[T]) List[T] {
	return l.Prepend(value)
}

// --- Structural primitives -------------------------------------------------

// Prepend returns a new list with value as its head and l as its tail.
// l is shared, not copied, and remains unchanged. O(1).
func (l List[T]) Prepend(value T) List[T] {
	return List[T]{first: &cell[T]{head: value, tail: l.first}}
}

// IsEmpty is true for the empty list only.
func (l List[T]) IsEmpty() bool {
	return l.first == nil
}

// Head returns the first element of l.
// For the empty list, ErrEmptyCollection is returned.
func (l List[T]) Head() (T, error) {
	if l.first == nil {
		var none T
		return none, fmt.Errorf("head of empty list: %w", ErrEmptyCollection)
	}
	return l.first.head, nil
}

// Tail returns l without its first element.
// For the empty list, ErrEmptyCollection is returned.
func (l List[T]) Tail() (List[T], error) {
	if l.first == nil {
		return l, fmt.Errorf("tail of empty list: %w", ErrEmptyCollection)
	}
	return List[T]{first: l.first.tail}, nil
}

// HeadOption returns the first element of l, if present.
func (l List[T]) HeadOption() maybe.Maybe[T] {
	if l.first == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.first.head)
}

// Find returns the first element of l for which pred holds, if any.
func (l List[T]) Find(pred func(T) bool) maybe.Maybe[T] {
	for c := l.first; c != nil; c = c.tail {
		if pred(c.head) {
			return maybe.Just(c.head)
		}
	}
	return maybe.Nothing[T]()
}

// ForEach calls f for every element of l, from head to last.
func (l List[T]) ForEach(f func(T)) {
	for c := l.first; c != nil; c = c.tail {
		f(c.head)
	}
}

// ToSlice copies the elements of l into a new slice.
func (l List[T]) ToSlice() []T {
	s := make([]T, 0, l.Length())
	for c := l.first; c != nil; c = c.tail {
		s = append(s, c.head)
	}
	return s
}

// String renders a list as "[e1, e2, …, en]". The empty list renders as "[]".
func (l List[T]) String() string {
	var sb = strings.Builder{}
	sb.WriteRune('[')
	for c := l.first; c != nil; c = c.tail {
		if c != l.first {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%v", c.head))
	}
	sb.WriteRune(']')
	return sb.String()
}

// Equal checks two lists for element-wise equality, using eq to compare
// elements.
func Equal[T any](l, m List[T], eq func(T, T) bool) bool {
	a, b := l.first, m.first
	for a != nil && b != nil {
		if a == b { // shared suffix
			return true
		}
		if !eq(a.head, b.head) {
			return false
		}
		a, b = a.tail, b.tail
	}
	return a == nil && b == nil
}

// EqualComparable checks two lists of comparable elements for element-wise
// equality.
func EqualComparable[T comparable](l, m List[T]) bool {
	return Equal(l, m, func(a, b T) bool {
		return a == b
	})
}
