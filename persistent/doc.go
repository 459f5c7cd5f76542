/*
Package persistent is the home of immutable persistent data structures: data
structures which can be "modified" efficiently by creating new incarnations,
leaving the original unchanged.

Sub-package list implements a singly-linked persistent list with a rich set
of operations, from indexed access to sorting. Sub-package bintree implements
a small binary tree on the same principles.

Immutable data structures in many cases offer benefits over mutable data
structures in terms of concurrent access and functional reasoning. Persistent
data structures offer structural sharing: if two lists have a common suffix,
the memory it takes up is shared between them. Prepending to a list, for
example, is O(1) in both time and space.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
