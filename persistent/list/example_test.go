package list_test

import (
	"cmp"
	"fmt"
	"math/rand/v2"

	"github.com/npillmayer/rlist/persistent/list"
)

func Example() {
	l := list.Of(3, 1, 4, 1, 5)
	m := l.Prepend(9)
	fmt.Println(l)
	fmt.Println(m)
	fmt.Println(list.QuickSort(m, cmp.Compare[int]))
	// Output:
	// [3, 1, 4, 1, 5]
	// [9, 3, 1, 4, 1, 5]
	// [1, 1, 3, 4, 5, 9]
}

func ExampleList_At() {
	l := list.Of("a", "b", "c")
	x, err := l.At(1)
	fmt.Println(x, err)
	_, err = l.At(3)
	fmt.Println(err)
	// Output:
	// b <nil>
	// list.At(3) with length 3: index out of bounds
}

func ExampleFlatMap() {
	l := list.Of(1, 2, 3)
	fmt.Println(list.FlatMap(l, func(n int) list.List[int] {
		return list.Of(n, -n)
	}))
	// Output: [1, -1, 2, -2, 3, -3]
}

func ExampleRLE() {
	enc, _ := list.RLE(list.Of("a", "a", "b", "c", "c", "c"))
	fmt.Println(enc)
	// Output: [(a, 2), (b, 1), (c, 3)]
}

func ExampleList_Rotate() {
	l := list.Of(1, 2, 3, 4, 5)
	fmt.Println(l.Rotate(2))
	fmt.Println(l.Rotate(-2))
	// Output:
	// [3, 4, 5, 1, 2]
	// [4, 5, 1, 2, 3]
}

func ExampleList_Sample() {
	l := list.Of(10, 20, 30)
	s, _ := l.Sample(5, rand.New(rand.NewPCG(1, 2)))
	fmt.Println(s.Length())
	// Output: 5
}
