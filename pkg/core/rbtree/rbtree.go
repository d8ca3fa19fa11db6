// Package rbtree implements a red-black tree keyed by the record key,
// holding all records of one key in one node. Insertion keeps the usual
// invariants (BLACK root, no RED-RED parent/child, uniform black height),
// so search depth stays O(log n) regardless of insertion order.
package rbtree

import "searchlab/pkg/common"

type color bool

const (
	red   color = true
	black color = false
)

type node struct {
	key    string
	values []common.Record
	color  color
	left   *node
	right  *node
	parent *node
}

// Tree is a red-black search tree. The zero value is empty and ready to
// use.
type Tree struct {
	root *node
	size int
}

func NewTree() *Tree {
	return &Tree{}
}

// Insert places rec by its key. The first insert of a key attaches a RED
// leaf and rebalances; repeat inserts of a known key only append to that
// node's values and never change the tree shape.
func (t *Tree) Insert(rec common.Record) {
	t.size++
	if t.root == nil {
		t.root = &node{key: rec.Key, values: []common.Record{rec}, color: black}
		return
	}
	var parent *node
	cur := t.root
	for cur != nil {
		parent = cur
		if rec.Key == cur.key {
			cur.values = append(cur.values, rec)
			return
		}
		if rec.Key < cur.key {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	n := &node{key: rec.Key, values: []common.Record{rec}, color: red, parent: parent}
	if rec.Key < parent.key {
		parent.left = n
	} else {
		parent.right = n
	}
	t.insertFix(n)
}

// Search returns every record stored under key, in insertion order, or
// nil when the key is absent. Same walk as the unbalanced tree; balancing
// only bounds the depth.
func (t *Tree) Search(key string) []common.Record {
	cur := t.root
	for cur != nil {
		if key == cur.key {
			return cur.values
		}
		if key < cur.key {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return nil
}

func (t *Tree) Name() string { return "RBT" }

func (t *Tree) Len() int { return t.size }

// insertFix restores the color invariants after attaching the RED node n.
func (t *Tree) insertFix(n *node) {
	for n != t.root && n.parent.color == red {
		p := n.parent
		g := p.parent
		if p == g.left {
			u := g.right
			if u != nil && u.color == red {
				// recolor and move the violation up
				p.color = black
				u.color = black
				g.color = red
				n = g
			} else {
				if n == p.right {
					// inner grandchild: rotate to the outer position first
					n = p
					t.rotateLeft(n)
					p = n.parent
					g = p.parent
				}
				p.color = black
				g.color = red
				t.rotateRight(g)
			}
		} else {
			u := g.left
			if u != nil && u.color == red {
				p.color = black
				u.color = black
				g.color = red
				n = g
			} else {
				if n == p.left {
					n = p
					t.rotateRight(n)
					p = n.parent
					g = p.parent
				}
				p.color = black
				g.color = red
				t.rotateLeft(g)
			}
		}
	}
	t.root.color = black
}

func (t *Tree) rotateLeft(x *node) {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	t.transplant(x, y)
	y.left = x
	x.parent = y
}

func (t *Tree) rotateRight(x *node) {
	y := x.left
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	t.transplant(x, y)
	y.right = x
	x.parent = y
}

// transplant links v into u's slot under u's parent (or makes v the root).
func (t *Tree) transplant(u, v *node) {
	switch {
	case u.parent == nil:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

// Height reports the number of nodes on the longest root-to-leaf path.
func (t *Tree) Height() int {
	return height(t.root)
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	l, r := height(n.left), height(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// InOrder visits every node's key in ascending order, passing the key and
// its records to fn. Visiting stops early when fn returns false.
func (t *Tree) InOrder(fn func(key string, values []common.Record) bool) {
	inOrder(t.root, fn)
}

func inOrder(n *node, fn func(string, []common.Record) bool) bool {
	if n == nil {
		return true
	}
	if !inOrder(n.left, fn) {
		return false
	}
	if !fn(n.key, n.values) {
		return false
	}
	return inOrder(n.right, fn)
}
