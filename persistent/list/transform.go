package list

// Map returns a new list with f applied to every element of l, in order.
//
// Map is a function instead of a method, as Go methods cannot introduce
// type parameters of their own.
func Map[T, S any](l List[T], f func(T) S) List[S] {
	var acc List[S] // reversed
	for c := l.first; c != nil; c = c.tail {
		acc = acc.Prepend(f(c.head))
	}
	return acc.Reverse()
}

// Filter returns a new list with all the elements of l for which pred holds,
// in order. The result never shares cells with l.
func (l List[T]) Filter(pred func(T) bool) List[T] {
	var acc List[T] // reversed
	for c := l.first; c != nil; c = c.tail {
		if pred(c.head) {
			acc = acc.Prepend(c.head)
		}
	}
	return acc.Reverse()
}

// FlatMap applies f to every element of l and concatenates the resulting
// lists, preserving the order of both outer and inner elements.
//
// Concatenating each sub-list to an accumulating result would be quadratic in
// the size z of the output. Instead, FlatMap works in two passes: it first
// pushes every sub-list, reversed, onto a stack of lists; then it flattens
// the stack by moving elements one by one onto a single result list. The
// stack holds the last sub-list on top, and every sub-list is reversed,
// which makes the result come out in the correct order. O(n + z).
func FlatMap[T, S any](l List[T], f func(T) List[S]) List[S] {
	var stack List[List[S]]
	for c := l.first; c != nil; c = c.tail {
		stack = stack.Prepend(f(c.head).Reverse())
	}
	return flatten(stack)
}

// flatten concatenates a stack of reversed lists, where the topmost list on
// the stack is the last one of the result.
func flatten[S any](stack List[List[S]]) List[S] {
	var acc List[S]
	var current List[S]
	for {
		if current.IsEmpty() {
			if stack.IsEmpty() {
				return acc
			}
			current, stack = stack.first.head, List[List[S]]{first: stack.first.tail}
			continue
		}
		acc = acc.Prepend(current.first.head)
		current = List[S]{first: current.first.tail}
	}
}
