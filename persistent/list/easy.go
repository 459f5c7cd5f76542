package list

import "fmt"

// At returns the element at position index, counting from 0 at the head.
// If index is negative or l has no more than index elements, an error
// wrapping ErrIndexOutOfBounds is returned. O(n).
func (l List[T]) At(index int) (T, error) {
	var none T
	if index < 0 {
		return none, fmt.Errorf("list.At(%d): %w", index, ErrIndexOutOfBounds)
	}
	c, i := l.first, index
	for c != nil {
		if i == 0 {
			return c.head, nil
		}
		c, i = c.tail, i-1
	}
	return none, fmt.Errorf("list.At(%d) with length %d: %w", index, index-i, ErrIndexOutOfBounds)
}

// Length counts the elements of l. O(n).
func (l List[T]) Length() int {
	n := 0
	for c := l.first; c != nil; c = c.tail {
		n++
	}
	return n
}

// Reverse returns a new list with the elements of l in reverse order. O(n).
func (l List[T]) Reverse() List[T] {
	var r List[T]
	for c := l.first; c != nil; c = c.tail {
		r = r.Prepend(c.head)
	}
	return r
}

// Concat returns a list with the elements of l followed by the elements of other.
// other is shared as the tail of the result, therefore the cost is O(len(l)),
// independent of the length of other. Neither l nor other are modified.
func (l List[T]) Concat(other List[T]) List[T] {
	if l.first == nil {
		return other
	}
	return prependReversed(l.Reverse(), other)
}

// prependReversed moves the elements of rev, one by one, to the front of acc.
// If rev holds the reversed prefix of a list, the result is prefix ++ acc.
func prependReversed[T any](rev, acc List[T]) List[T] {
	for c := rev.first; c != nil; c = c.tail {
		acc = acc.Prepend(c.head)
	}
	return acc
}

// RemoveAt returns a list without the element at position index. All other
// elements keep their relative order.
//
// Other than At, RemoveAt is permissive with respect to the index: for a
// negative index, or an index at or beyond the end of l, l is returned unchanged.
//
// The elements following index are shared between l and the result. O(n).
func (l List[T]) RemoveAt(index int) List[T] {
	if index < 0 {
		return l
	}
	var predecessors List[T] // reversed
	c, i := l.first, index
	for c != nil {
		if i == 0 {
			return prependReversed(predecessors, List[T]{first: c.tail})
		}
		predecessors = predecessors.Prepend(c.head)
		c, i = c.tail, i-1
	}
	return l
}
