package bst

import "iter"

/*
Tree only keeps a pointer to the root node and the number of keys stored.
The recursive work is done by the package level functions operating on *Node.
A Tree is not safe for concurrent use.
*/
type Tree struct {
	root *Node
	size int
}

// New builds a tree by inserting keys in the given order.
func New(keys ...int) *Tree {
	t := &Tree{}
	for _, k := range keys {
		t.Insert(k)
	}
	return t
}

func (t *Tree) Insert(key int) {
	t.root = Insert(t.root, key)
	t.size++
}

/*
Delete removes one instance of key.
Returned value is false if the key was not present, in which case the tree is left untouched.
*/
func (t *Tree) Delete(key int) bool {
	if !Contains(t.root, key) {
		return false
	}
	t.root = Delete(t.root, key)
	t.size--
	return true
}

// Min returns the smallest key, ok is false for an empty tree.
func (t *Tree) Min() (key int, ok bool) {
	n := FindMin(t.root)
	if n == nil {
		return 0, false
	}
	return n.Key, true
}

func (t *Tree) Contains(key int) bool {
	return Contains(t.root, key)
}

func (t *Tree) Len() int {
	return t.size
}

func (t *Tree) Height() int {
	return Height(t.root)
}

func (t *Tree) Root() *Node {
	return t.root
}

func (t *Tree) InOrder() iter.Seq[int] {
	return InOrder(t.root)
}

func (t *Tree) PreOrder() iter.Seq[int] {
	return PreOrder(t.root)
}

func (t *Tree) PostOrder() iter.Seq[int] {
	return PostOrder(t.root)
}

// String renders the in-order traversal, e.g. "6 -> 7 -> 8 -> ".
func (t *Tree) String() string {
	return Format(t.InOrder())
}
