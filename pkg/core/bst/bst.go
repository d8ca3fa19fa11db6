// Package bst implements an unbalanced binary search tree keyed by the
// record key. It is the "no balancing" baseline: worst-case depth is O(n)
// under sorted insertion order.
package bst

import "searchlab/pkg/common"

type node struct {
	key    string
	values []common.Record // all records sharing key, in insertion order
	left   *node
	right  *node
}

// Tree is an unbalanced binary search tree. The zero value is empty and
// ready to use; NewTree exists for symmetry with the other structures.
type Tree struct {
	root *node
	size int
}

func NewTree() *Tree {
	return &Tree{}
}

// Insert places rec by its key. Duplicate keys never create a second
// node, they append to the existing node's values.
func (t *Tree) Insert(rec common.Record) {
	t.size++
	if t.root == nil {
		t.root = &node{key: rec.Key, values: []common.Record{rec}}
		return
	}
	cur := t.root
	for {
		if rec.Key == cur.key {
			cur.values = append(cur.values, rec)
			return
		}
		if rec.Key < cur.key {
			if cur.left == nil {
				cur.left = &node{key: rec.Key, values: []common.Record{rec}}
				return
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = &node{key: rec.Key, values: []common.Record{rec}}
				return
			}
			cur = cur.right
		}
	}
}

// Search returns every record stored under key, in insertion order, or
// nil when the key is absent.
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

func (t *Tree) Name() string { return "BST" }

func (t *Tree) Len() int { return t.size }

// Height reports the number of nodes on the longest root-to-leaf path.
// Unbounded relative to the key count: sorted insertion degrades it to n.
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
