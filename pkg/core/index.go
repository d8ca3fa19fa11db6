package core

import "searchlab/pkg/common"

// Index is the contract shared by every search strategy under comparison.
// Search returns all records stored under the exact key, or nil when the
// key is absent.
type Index interface {
	Insert(rec common.Record)
	Search(key string) []common.Record
	Name() string // "Linear", "BST", "RBT", "Hash", ...
	Len() int     // number of records inserted
}

// CollisionCounter is implemented by hash-based indexes that track how
// many inserts landed in an already occupied bucket.
type CollisionCounter interface {
	Collisions() uint64
}
