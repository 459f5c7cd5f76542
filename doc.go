/*
Package rlist is the root of a small collection of persistent data structures
written in a functional style.

The workhorse is package persistent/list, an immutable singly-linked list with
a layered API of classic list exercises: random access, concatenation,
map/filter/flat-map, run-length encoding, rotation, sampling and three sorting
algorithms. Package persistent/bintree is a small binary tree sibling.
All traversals are written as explicit accumulator loops, so there is no
danger of exhausting the call stack for long lists.

This root package offers a handful of helpers shared by the sub-packages,
such as function composition and pairs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rlist
