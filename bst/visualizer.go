package bst

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
)

const emptyTree = "<empty>"

/*
Visualizer draws the tree sideways, right subtree on top, so reading the keys
from the bottom line to the top line gives the in-order sequence.

	│   ┌── 3
	└── 2
	    └── 1
*/
type Visualizer struct {
	Tree    *Tree
	NoColor bool
}

type palette struct {
	root, inner, leaf *color.Color
}

func (v *Visualizer) palette() *palette {
	p := &palette{
		root:  color.New(color.FgYellow, color.Bold),
		inner: color.New(color.FgCyan),
		leaf:  color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.root, p.inner, p.leaf} {
		if v.NoColor {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
	}
	return p
}

func (v *Visualizer) Visualize() string {
	root := v.Tree.Root()
	if root == nil {
		return emptyTree
	}
	var sb strings.Builder
	v.write(&sb, v.palette(), root, "", true, 0)
	return strings.TrimSuffix(sb.String(), "\n")
}

func (v *Visualizer) write(sb *strings.Builder, p *palette, n *Node, prefix string, isLeft bool, depth int) {
	if n.Right != nil {
		v.write(sb, p, n.Right, prefix+branch(isLeft, "│   ", "    "), false, depth+1)
	}

	sb.WriteString(prefix)
	sb.WriteString(branch(isLeft, "└── ", "┌── "))
	sb.WriteString(p.paint(n, depth))
	sb.WriteByte('\n')

	if n.Left != nil {
		v.write(sb, p, n.Left, prefix+branch(isLeft, "    ", "│   "), true, depth+1)
	}
}

func (p *palette) paint(n *Node, depth int) string {
	key := strconv.Itoa(n.Key)
	switch {
	case depth == 0:
		return p.root.Sprint(key)
	case n.isLeaf():
		return p.leaf.Sprint(key)
	default:
		return p.inner.Sprint(key)
	}
}

func branch(isLeft bool, left, right string) string {
	if isLeft {
		return left
	}
	return right
}

// Visualize is a shortcut for an uncolored drawing.
func (t *Tree) Visualize() string {
	v := &Visualizer{Tree: t, NoColor: true}
	return v.Visualize()
}
