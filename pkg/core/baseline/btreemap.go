package baseline

import (
	"github.com/google/btree"

	"searchlab/pkg/common"
)

type btreeItem struct {
	key string
	seq uint64 // per-key insertion order, keeps duplicates distinct
	rec common.Record
}

func (i btreeItem) Less(than btree.Item) bool {
	o := than.(btreeItem)
	if i.key != o.key {
		return i.key < o.key
	}
	return i.seq < o.seq
}

// BTreeMap is an ordered multimap on google/btree, the stand-in for a
// standard-library ordered container.
type BTreeMap struct {
	tree *btree.BTree
	seq  uint64
}

func NewBTreeMap() *BTreeMap {
	return &BTreeMap{tree: btree.New(32)}
}

func (m *BTreeMap) Insert(rec common.Record) {
	m.seq++
	m.tree.ReplaceOrInsert(btreeItem{key: rec.Key, seq: m.seq, rec: rec})
}

func (m *BTreeMap) Search(key string) []common.Record {
	var out []common.Record
	m.tree.AscendGreaterOrEqual(btreeItem{key: key}, func(it btree.Item) bool {
		e := it.(btreeItem)
		if e.key != key {
			return false
		}
		out = append(out, e.rec)
		return true
	})
	return out
}

func (m *BTreeMap) Name() string { return "BTree" }

func (m *BTreeMap) Len() int { return m.tree.Len() }
