package list

import (
	"cmp"

	"github.com/npillmayer/rlist"
)

// Ordering is a total order on T. It returns a negative number if a < b,
// zero if a == b, and a positive number if a > b.
// cmp.Compare is an Ordering for ordered types.
//
// The sort algorithms use it as "less than or equal": a ≤ b iff ord(a, b) ≤ 0.
type Ordering[T any] func(a, b T) int

// Natural returns the natural order of an ordered type.
func Natural[T cmp.Ordered]() Ordering[T] {
	return cmp.Compare[T]
}

func (ord Ordering[T]) lteq(a, b T) bool {
	return ord(a, b) <= 0
}

// --- Insertion sort --------------------------------------------------------

// InsertionSort returns l sorted by ord. It grows a sorted accumulator,
// inserting every element of l in front of the first accumulated element it
// is less than or equal to. O(n²).
func (l List[T]) InsertionSort(ord Ordering[T]) List[T] {
	var sorted List[T]
	for c := l.first; c != nil; c = c.tail {
		sorted = insertSorted(c.head, sorted, ord)
	}
	return sorted
}

// insertSorted splits sorted into a partition before x and a partition after x,
// then rebuilds the list with x in between. The after-partition is shared.
func insertSorted[T any](x T, sorted List[T], ord Ordering[T]) List[T] {
	var before List[T] // reversed
	after := sorted.first
	for after != nil && !ord.lteq(x, after.head) {
		before = before.Prepend(after.head)
		after = after.tail
	}
	return prependReversed(before, List[T]{first: after}.Prepend(x))
}

// --- Merge sort ------------------------------------------------------------

// MergeSort returns l sorted by ord. It is a bottom-up merge sort: every
// element starts out as a sorted run of length 1. Each round merges pairs of
// runs, carrying over an odd run unmerged, until a single run is left.
// O(n log n).
//
// MergeSort works on lists of lists, which a method of List[T] cannot
// instantiate; it is therefore a function, as is QuickSort.
func MergeSort[T any](l List[T], ord Ordering[T]) List[T] {
	small := Map(l, func(x T) List[T] { // runs of the current round
		return List[T]{}.Prepend(x)
	})
	var big List[List[T]] // runs for the next round
	round := 1
	for {
		switch {
		case small.first == nil:
			if big.first == nil {
				return List[T]{}
			}
			if big.first.tail == nil {
				return big.first.head
			}
			round++
			tracer().Debugf("merge sort: round %d", round)
			small, big = big, List[List[T]]{}
		case small.first.tail == nil: // odd run left over
			if big.first == nil {
				return small.first.head
			}
			round++
			tracer().Debugf("merge sort: round %d, carrying over odd run", round)
			small, big = big.Prepend(small.first.head), List[List[T]]{}
		default:
			merged := merge(small.first.head, small.first.tail.head, ord)
			big = big.Prepend(merged)
			small = List[List[T]]{first: small.first.tail.tail}
		}
	}
}

// merge interleaves two sorted lists into one sorted list. On ties, the
// element from a goes first.
func merge[T any](a, b List[T], ord Ordering[T]) List[T] {
	var acc List[T] // reversed
	x, y := a.first, b.first
	for x != nil && y != nil {
		if ord.lteq(x.head, y.head) {
			acc = acc.Prepend(x.head)
			x = x.tail
		} else {
			acc = acc.Prepend(y.head)
			y = y.tail
		}
	}
	if x == nil {
		return prependReversed(acc, List[T]{first: y})
	}
	return prependReversed(acc, List[T]{first: x})
}

// --- Quicksort -------------------------------------------------------------

// QuickSort returns l sorted by ord. It works on a stack of lists, initially
// holding l only. The top list is popped and partitioned around its head as
// pivot into elements ≤ pivot and elements > pivot; then the partitions and
// the pivot are pushed back as [smaller, [pivot], larger]. Lists of length ≤ 1
// are moved onto an accumulator, which is flattened at the end.
//
// The pivot is always the first element, without any randomization. This
// makes QuickSort O(n log n) on average, but O(n²) for sorted input.
func QuickSort[T any](l List[T], ord Ordering[T]) List[T] {
	work := List[List[T]]{}.Prepend(l)
	var done List[List[T]] // singletons and empty lists, reversed
	for work.first != nil {
		current := work.first.head
		work = List[List[T]]{first: work.first.tail}
		if current.first == nil || current.first.tail == nil {
			done = done.Prepend(current)
			continue
		}
		pivot := current.first.head
		smaller, larger := partition(List[T]{first: current.first.tail}, pivot, ord)
		work = work.Prepend(larger).Prepend(List[T]{}.Prepend(pivot)).Prepend(smaller)
	}
	return FlatMap(done, rlist.Identity[List[T]]).Reverse()
}

// partition splits l into the elements ≤ pivot and the elements > pivot,
// in a single pass.
func partition[T any](l List[T], pivot T, ord Ordering[T]) (smaller, larger List[T]) {
	for c := l.first; c != nil; c = c.tail {
		if ord.lteq(c.head, pivot) {
			smaller = smaller.Prepend(c.head)
		} else {
			larger = larger.Prepend(c.head)
		}
	}
	return
}
