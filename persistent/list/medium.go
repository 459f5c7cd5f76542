package list

import (
	"fmt"
	"math/rand/v2"

	"github.com/npillmayer/rlist"
)

// RLE computes the run-length encoding of l: every run of consecutive equal
// elements is replaced by a pair (element, length of run).
//
//     RLE(list.Of(1, 1, 1, 2, 3, 3))   // [(1, 3), (2, 1), (3, 2)]
//
// RLE of an empty list fails with ErrEmptyCollection. O(n).
func RLE[T comparable](l List[T]) (List[rlist.Pair[T, int]], error) {
	if l.first == nil {
		return List[rlist.Pair[T, int]]{}, fmt.Errorf("run-length encoding: %w", ErrEmptyCollection)
	}
	var acc List[rlist.Pair[T, int]] // reversed
	run := rlist.P(l.first.head, 1)
	for c := l.first.tail; c != nil; c = c.tail {
		if c.head == run.Left {
			run.Right++
			continue
		}
		acc = acc.Prepend(run)
		run = rlist.P(c.head, 1)
	}
	return acc.Prepend(run).Reverse(), nil
}

// RunLengthDecode is the inverse of RLE: every pair (element, n) is expanded
// to n consecutive copies of element. Pairs with n ≤ 0 contribute nothing.
func RunLengthDecode[T comparable](runs List[rlist.Pair[T, int]]) List[T] {
	return FlatMap(runs, func(run rlist.Pair[T, int]) List[T] {
		x, n := run.Decompose()
		return List[T]{}.Prepend(x).DuplicateEach(n)
	})
}

// DuplicateEach replaces every element of l by k consecutive copies of itself.
//
//     list.Of(1, 2).DuplicateEach(3)   // [1, 1, 1, 2, 2, 2]
//
// For k ≤ 0 no copies are made at all, i.e. every element is dropped and the
// result is the empty list. This is not considered an error.
func (l List[T]) DuplicateEach(k int) List[T] {
	var acc List[T] // reversed
	for c := l.first; c != nil; c = c.tail {
		for i := 0; i < k; i++ {
			acc = acc.Prepend(c.head)
		}
	}
	return acc.Reverse()
}

// Rotate rotates l to the left by k positions, i.e. the first k elements
// move to the end of the list:
//
//     list.Of(1, 2, 3, 4).Rotate(1)   // [2, 3, 4, 1]
//
// Rotate walks k steps from the head, buffering the elements it passes. If the
// list is exhausted before k steps are done, it starts over at the head of l.
// Rotating by a multiple of the length of l therefore returns l. The cost is
// O(k + n), without reducing k modulo the length first.
//
// A negative k rotates to the right by |k| positions, i.e. it is equivalent
// to the left rotation by k mod length in [0…length). Rotating the empty
// list results in the empty list, for every k.
func (l List[T]) Rotate(k int) List[T] {
	if l.first == nil {
		return l
	}
	if k < 0 {
		n := l.Length()
		k = (k%n + n) % n
	}
	var buffer List[T] // reversed
	remaining, left := l.first, k
	for {
		if remaining == nil {
			if left == 0 {
				return l
			}
			tracer().Debugf("rotate: wrapping around, %d steps left", left)
			remaining, buffer = l.first, List[T]{}
			continue
		}
		if left == 0 {
			return List[T]{first: remaining}.Concat(buffer.Reverse())
		}
		assertThat(left > 0, "rotation walked past its step count: %d", left)
		buffer = buffer.Prepend(remaining.head)
		remaining, left = remaining.tail, left-1
	}
}

// RandomSource is a source of uniformly distributed random integers.
// IntN returns a value in [0…n) and may panic for n ≤ 0.
// *rand.Rand from package math/rand/v2 satisfies this interface.
type RandomSource interface {
	IntN(n int) int
}

// globalRandom uses the top-level functions of math/rand/v2.
type globalRandom struct{}

func (globalRandom) IntN(n int) int {
	return rand.IntN(n)
}

// Sample draws k elements from l, independently and uniformly at random, with
// replacement. Draws are made with rnd; a nil rnd selects the shared
// generator of package math/rand/v2. For tests, clients will want to
// use a seeded generator:
//
//     rnd := rand.New(rand.NewPCG(1, 2))
//     s, err := l.Sample(5, rnd)
//
// For k ≤ 0 the result is empty. Sampling from an empty list with k > 0 fails
// with ErrEmptyCollection. Every draw walks the list, thus sampling is O(n·k).
func (l List[T]) Sample(k int, rnd RandomSource) (List[T], error) {
	if k <= 0 {
		return List[T]{}, nil
	}
	if l.first == nil {
		return List[T]{}, fmt.Errorf("sample of %d from empty list: %w", k, ErrEmptyCollection)
	}
	if rnd == nil {
		rnd = globalRandom{}
	}
	n := l.Length()
	var acc List[T]
	for ; k > 0; k-- {
		index := rnd.IntN(n)
		x, err := l.At(index)
		if err != nil {
			return List[T]{}, fmt.Errorf("sample: random source out of range: %w", err)
		}
		tracer().Debugf("sample: drew l[%d] = %v", index, x)
		acc = acc.Prepend(x)
	}
	return acc, nil
}
