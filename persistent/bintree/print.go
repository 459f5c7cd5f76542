package bintree

import (
	"fmt"

	"github.com/npillmayer/rlist"
	"github.com/npillmayer/rlist/persistent/list"
	tp "github.com/xlab/treeprint"
)

const defaultEmptyMarker = "∅"

type printConfig struct {
	emptyMarker string
	format      func(interface{}) string
}

// PrintOption is a type to configure the diagram produced by Print.
type PrintOption func(printConfig) printConfig

// WithEmptyMarker sets the text for an empty subtree next to a non-empty
// sibling. Default is "∅". An empty marker suppresses empty subtrees.
func WithEmptyMarker(marker string) PrintOption {
	return func(conf printConfig) printConfig {
		conf.emptyMarker = marker
		return conf
	}
}

// WithFormat sets a formatting function for node values. Default is "%v".
func WithFormat(f func(interface{}) string) PrintOption {
	return func(conf printConfig) printConfig {
		conf.format = f
		return conf
	}
}

// frame is a pending node for Print, together with the branch of the
// diagram it will be attached to. A nil node stands for an empty subtree.
type frame[T any] struct {
	node   *node[T]
	parent tp.Tree
}

// Print renders t as an ASCII diagram, for debugging. Use it like this:
//
//     fmt.Println(t.Print(bintree.WithEmptyMarker("-")))
//
func (t Tree[T]) Print(opts ...PrintOption) string {
	conf := printConfig{
		emptyMarker: defaultEmptyMarker,
		format: func(v interface{}) string {
			return fmt.Sprintf("%v", v)
		},
	}
	for _, option := range opts {
		conf = option(conf)
	}
	label := rlist.Compose(func(n *node[T]) interface{} {
		return n.value
	}, conf.format)
	printer := tp.New()
	if t.root == nil {
		printer.AddNode(conf.emptyMarker)
		return printer.String()
	}
	stack := list.Of(frame[T]{node: t.root, parent: printer})
	for !stack.IsEmpty() {
		f, _ := stack.Head()
		stack, _ = stack.Tail()
		if f.node == nil {
			f.parent.AddNode(conf.emptyMarker)
			continue
		}
		if f.node.isLeaf() {
			f.parent.AddNode(label(f.node))
			continue
		}
		branch := f.parent.AddBranch(label(f.node))
		if f.node.right != nil || conf.emptyMarker != "" {
			stack = stack.Prepend(frame[T]{node: f.node.right, parent: branch})
		}
		if f.node.left != nil || conf.emptyMarker != "" {
			stack = stack.Prepend(frame[T]{node: f.node.left, parent: branch})
		}
	}
	return printer.String()
}
