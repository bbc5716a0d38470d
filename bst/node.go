package bst

/*
Node holds one key of the tree.
Every key in Left is smaller than Key, every key in Right is greater or equal.
A nil *Node is the empty tree, so the root pointer is the only handle a caller needs.
*/
type Node struct {
	Key   int
	Left  *Node
	Right *Node
}

func (n *Node) isLeaf() bool {
	return n.Left == nil && n.Right == nil
}

/*
Insert adds key to the subtree rooted at n and returns the new subtree root.
The algo walks down recursively until it hits a nil position and hangs a new leaf there.
Equal keys go right, so duplicates pile up along the right child chain.
No rebalancing is performed.
*/
func Insert(n *Node, key int) *Node {
	if n == nil {
		return &Node{Key: key}
	}
	if key < n.Key {
		n.Left = Insert(n.Left, key)
	} else {
		n.Right = Insert(n.Right, key)
	}
	return n
}

// FindMin returns the leftmost node of the subtree, or nil for an empty subtree.
func FindMin(n *Node) *Node {
	for n != nil && n.Left != nil {
		n = n.Left
	}
	return n
}

/*
Delete removes one instance of key from the subtree rooted at n and returns the new subtree root.
Deleting a key which is not present returns the subtree unchanged.

Three cases once the node is found:
 1. no left child: the right child (possibly nil) takes its place.
 2. no right child: the left child takes its place.
 3. two children: the node stays, takes over its successor's key, and the successor
    is removed from the right subtree instead.
*/
func Delete(n *Node, key int) *Node {
	if n == nil {
		return nil
	}

	switch {
	case key < n.Key:
		n.Left = Delete(n.Left, key)
		return n
	case key > n.Key:
		n.Right = Delete(n.Right, key)
		return n
	}

	if n.Left == nil {
		return n.unlink(n.Right)
	}
	if n.Right == nil {
		return n.unlink(n.Left)
	}

	// The successor is the smallest key >= every remaining key of the left subtree.
	successor := FindMin(n.Right)
	n.Key = successor.Key
	n.Right = Delete(n.Right, successor.Key)
	return n
}

// unlink detaches n from its children and hands back the child that replaces it.
func (n *Node) unlink(replacement *Node) *Node {
	n.Left, n.Right = nil, nil
	return replacement
}

// Contains reports whether key is stored in the subtree.
func Contains(n *Node, key int) bool {
	for n != nil {
		switch {
		case key < n.Key:
			n = n.Left
		case key > n.Key:
			n = n.Right
		default:
			return true
		}
	}
	return false
}

// Height of an empty tree is 0, of a single leaf 1.
func Height(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + max(Height(n.Left), Height(n.Right))
}

func Size(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + Size(n.Left) + Size(n.Right)
}

/*
Valid checks the ordering invariant of the whole subtree, not only parent/child pairs.
Each node narrows the half-open window [lo, hi) its descendants must fall into.
*/
func Valid(n *Node) bool {
	return valid(n, nil, nil)
}

func valid(n *Node, lo, hi *int) bool {
	if n == nil {
		return true
	}
	if lo != nil && n.Key < *lo {
		return false
	}
	if hi != nil && n.Key >= *hi {
		return false
	}
	return valid(n.Left, lo, &n.Key) && valid(n.Right, &n.Key, hi)
}
