package bst

import (
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Separator is printed after every key of a traversal.
const Separator = " -> "

/*
InOrder yields the keys of the subtree in ascending order: left subtree, node, right subtree.
The sequence is lazy and does not mutate the tree, so it can be ranged over again at will.
*/
func InOrder(n *Node) iter.Seq[int] {
	return func(yield func(int) bool) {
		inOrder(n, yield)
	}
}

// inOrder returns false once the consumer stopped the iteration.
func inOrder(n *Node, yield func(int) bool) bool {
	if n == nil {
		return true
	}
	return inOrder(n.Left, yield) && yield(n.Key) && inOrder(n.Right, yield)
}

func PreOrder(n *Node) iter.Seq[int] {
	return func(yield func(int) bool) {
		preOrder(n, yield)
	}
}

func preOrder(n *Node, yield func(int) bool) bool {
	if n == nil {
		return true
	}
	return yield(n.Key) && preOrder(n.Left, yield) && preOrder(n.Right, yield)
}

func PostOrder(n *Node) iter.Seq[int] {
	return func(yield func(int) bool) {
		postOrder(n, yield)
	}
}

func postOrder(n *Node, yield func(int) bool) bool {
	if n == nil {
		return true
	}
	return postOrder(n.Left, yield) && postOrder(n.Right, yield) && yield(n.Key)
}

// Keys materializes the in-order traversal.
func Keys(n *Node) []int {
	return slices.Collect(InOrder(n))
}

// Format renders a traversal the way the driver prints it: every key followed by " -> ".
func Format(seq iter.Seq[int]) string {
	return FormatStyled(seq, nil)
}

// FormatStyled is Format with the separator passed through style, e.g. to colorize it.
// A nil style leaves the separator as is.
func FormatStyled(seq iter.Seq[int], style func(string) string) string {
	sep := Separator
	if style != nil {
		sep = style(Separator)
	}
	var sb strings.Builder
	for k := range seq {
		sb.WriteString(strconv.Itoa(k))
		sb.WriteString(sep)
	}
	return sb.String()
}
