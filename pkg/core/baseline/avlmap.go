package baseline

import (
	"strings"

	"github.com/gobwas/avl"

	"searchlab/pkg/common"
)

type avlEntry struct {
	key string
	seq int
	rec common.Record
}

func (e avlEntry) Compare(x avl.Item) int {
	o := x.(avlEntry)
	if c := strings.Compare(e.key, o.key); c != 0 {
		return c
	}
	return e.seq - o.seq
}

// AVLMap is an ordered multimap on gobwas/avl. Entries compare by
// (key, insertion seq) so equal keys coexist and keep their order.
type AVLMap struct {
	tree avl.Tree
	seq  int
}

func NewAVLMap() *AVLMap {
	return &AVLMap{}
}

func (m *AVLMap) Insert(rec common.Record) {
	m.seq++
	m.tree, _ = m.tree.Insert(avlEntry{key: rec.Key, seq: m.seq, rec: rec})
}

// Search walks successors from a (key, 0) probe; seq numbering starts at
// 1 so the probe sorts before every stored entry of the key.
func (m *AVLMap) Search(key string) []common.Record {
	var out []common.Record
	x := m.tree.Successor(avlEntry{key: key})
	for x != nil {
		e := x.(avlEntry)
		if e.key != key {
			break
		}
		out = append(out, e.rec)
		x = m.tree.Successor(e)
	}
	return out
}

func (m *AVLMap) Name() string { return "AVL" }

func (m *AVLMap) Len() int { return m.tree.Size() }
