/*
Package bintree implements an immutable binary tree.

A tree is either empty or a node holding a value and two subtrees. As with
package list, nodes never change after construction and subtrees may be
shared between trees. A node is a leaf if and only if both of its subtrees
are empty.

    t := bintree.NewNode(1,
            bintree.NewNode(2, bintree.Empty[int](), bintree.Leaf(4)),
            bintree.Leaf(3))
    t.CollectLeaves()   // [4, 3]

Traversals use explicit stacks, which are persistent lists themselves.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bintree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.bintree'.
func tracer() tracing.Trace {
	return tracing.Select("fp.bintree")
}
