/*
Package list implements an immutable persistent singly-linked list.

A list is either empty or a cell holding a head value and the rest of the
list. Cells never change after construction, so every "modification" returns
a new list, leaving the original intact. New lists share as much structure
as possible with their originals, e.g. prepending is O(1) and shares the whole
original list as its tail:

    l := list.Of(2, 3)
    m := l.Prepend(1)      // [1, 2, 3], l is still [2, 3]

The zero value of List is the empty list and ready to use.

Operations come in layers, reminiscent of classic programming exercises:

    Structural    Prepend, IsEmpty, Head, Tail
    Easy          At, Length, Reverse, Concat, RemoveAt
    Transforms    Map, Filter, FlatMap
    Medium        RLE, RunLengthDecode, DuplicateEach, Rotate, Sample
    Hard          InsertionSort, MergeSort, QuickSort

Operations which introduce a new element type (Map, FlatMap), need a stricter
constraint (RLE, RunLengthDecode) or work on lists of lists internally (MergeSort, QuickSort)
are package-level functions; all others are methods of List.

None of the operations recurse on the call stack. Each traversal is an
explicit loop with an accumulator, so long lists are fine.

Immutable lists are inherently safe for concurrent reads. The package does
not offer any synchronization beyond that.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.list'.
func tracer() tracing.Trace {
	return tracing.Select("fp.list")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("list: "+msg, msgargs...)
		panic(msg)
	}
}
