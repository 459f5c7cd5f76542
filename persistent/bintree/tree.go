package bintree

import (
	"fmt"

	"github.com/npillmayer/rlist/persistent/list"
)

// Tree is an immutable binary tree. The zero value is the empty tree.
type Tree[T any] struct {
	root *node[T]
}

type node[T any] struct {
	value       T
	left, right *node[T]
}

func (n *node[T]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// Empty returns the empty tree for type T.
func Empty[T any]() Tree[T] {
	return Tree[T]{}
}

// Leaf creates a tree with a single node.
func Leaf[T any](value T) Tree[T] {
	return Tree[T]{root: &node[T]{value: value}}
}

// NewNode creates a tree with value at its root and the given subtrees.
// Both subtrees are shared, not copied.
func NewNode[T any](value T, left, right Tree[T]) Tree[T] {
	return Tree[T]{root: &node[T]{value: value, left: left.root, right: right.root}}
}

// IsEmpty is true for the empty tree only.
func (t Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// IsLeaf is true for a non-empty tree with two empty subtrees.
func (t Tree[T]) IsLeaf() bool {
	return t.root != nil && t.root.isLeaf()
}

// Value returns the value at the root of t, or ErrEmptyCollection.
func (t Tree[T]) Value() (T, error) {
	if t.root == nil {
		var none T
		return none, fmt.Errorf("value of empty tree: %w", list.ErrEmptyCollection)
	}
	return t.root.value, nil
}

// Left returns the left subtree of t, or ErrEmptyCollection.
func (t Tree[T]) Left() (Tree[T], error) {
	if t.root == nil {
		return t, fmt.Errorf("left subtree of empty tree: %w", list.ErrEmptyCollection)
	}
	return Tree[T]{root: t.root.left}, nil
}

// Right returns the right subtree of t, or ErrEmptyCollection.
func (t Tree[T]) Right() (Tree[T], error) {
	if t.root == nil {
		return t, fmt.Errorf("right subtree of empty tree: %w", list.ErrEmptyCollection)
	}
	return Tree[T]{root: t.root.right}, nil
}

// CollectLeaves returns the values of all leaves of t, from left to right.
func (t Tree[T]) CollectLeaves() list.List[T] {
	var leaves list.List[T] // reversed
	t.depthFirst(func(n *node[T]) {
		if n.isLeaf() {
			leaves = leaves.Prepend(n.value)
		}
	})
	return leaves.Reverse()
}

// LeafCount counts the leaves of t.
func (t Tree[T]) LeafCount() int {
	return t.CollectLeaves().Length()
}

// Size counts the nodes of t.
func (t Tree[T]) Size() int {
	n := 0
	t.depthFirst(func(*node[T]) {
		n++
	})
	return n
}

// CollectNodes returns the values of all nodes at a given level, from left to
// right. The root is at level 0. For a negative level or a level below the
// deepest leaf, the result is empty.
func (t Tree[T]) CollectNodes(level int) list.List[T] {
	if t.root == nil || level < 0 {
		return list.Empty[T]()
	}
	current := list.Of(t.root)
	for depth := 1; depth <= level && !current.IsEmpty(); depth++ {
		current = list.FlatMap(current, children[T])
		tracer().Debugf("level %d has %d nodes", depth, current.Length())
	}
	return list.Map(current, func(n *node[T]) T {
		return n.value
	})
}

// String renders the leaves of t and their count, e.g. "leaves [4, 3] (2)".
func (t Tree[T]) String() string {
	leaves := t.CollectLeaves()
	return fmt.Sprintf("leaves %s (%d)", leaves, leaves.Length())
}

// depthFirst visits the nodes of t in pre-order, left subtree first.
func (t Tree[T]) depthFirst(visit func(*node[T])) {
	if t.root == nil {
		return
	}
	stack := list.Of(t.root)
	for !stack.IsEmpty() {
		n, _ := stack.Head()
		stack, _ = stack.Tail()
		visit(n)
		if n.right != nil {
			stack = stack.Prepend(n.right)
		}
		if n.left != nil {
			stack = stack.Prepend(n.left)
		}
	}
}

// children lists the non-empty subtrees of n, left first.
func children[T any](n *node[T]) list.List[*node[T]] {
	var ch list.List[*node[T]]
	if n.right != nil {
		ch = ch.Prepend(n.right)
	}
	if n.left != nil {
		ch = ch.Prepend(n.left)
	}
	return ch
}
