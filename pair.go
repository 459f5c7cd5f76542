package rlist

import "fmt"

// Pair is a 2-tuple of comparable values. Pairs are comparable themselves,
// i.e. `p == q` is legal.
type Pair[A, B comparable] struct {
	Left  A
	Right B
}

// P is a shortcut to create a pair.
//
//     p := rlist.P("a", 3)   // type Pair[string, int]
//
func P[A, B comparable](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Decompose splits a pair into its components.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Left, p.Right)
}
