// Package hashtable implements a chained hash table with a fixed bucket
// count. The default hash is the polynomial rolling hash
// h = (h*131 + byte) mod buckets; an xxhash-based hasher is available for
// comparing collision behaviour against a production hash.
package hashtable

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"searchlab/pkg/common"
)

// ErrBucketCount is returned when a table is constructed with fewer than
// one bucket; the hash is a modulo over the bucket count and has no
// meaning for zero.
var ErrBucketCount = errors.New("hashtable: bucket count must be at least 1")

// Hasher maps a key to a bucket index in [0, buckets).
type Hasher func(key string, buckets int) int

// Polynomial is the default hasher: fold each key byte as
// h = (h*131 + byte) mod buckets, starting from zero.
func Polynomial(key string, buckets int) int {
	var h uint64
	n := uint64(buckets)
	for i := 0; i < len(key); i++ {
		h = (h*131 + uint64(key[i])) % n
	}
	return int(h)
}

// XXHash buckets keys by xxhash64 mod the bucket count.
func XXHash(key string, buckets int) int {
	return int(xxhash.Sum64String(key) % uint64(buckets))
}

// Table is a chained hash table. The bucket count is fixed at
// construction; there is no resizing and no rehashing.
type Table struct {
	buckets    [][]common.Record
	hash       Hasher
	name       string
	size       int
	collisions uint64
}

// Option configures a Table at construction.
type Option func(*Table)

// WithHasher replaces the default polynomial hasher.
func WithHasher(name string, h Hasher) Option {
	return func(t *Table) {
		t.name = name
		t.hash = h
	}
}

// New creates a table with the given fixed bucket count. Callers
// typically size it to the expected number of records.
func New(buckets int, opts ...Option) (*Table, error) {
	if buckets < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBucketCount, buckets)
	}
	t := &Table{
		buckets: make([][]common.Record, buckets),
		hash:    Polynomial,
		name:    "Hash",
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Insert appends rec to its bucket. Any insert into a non-empty bucket
// counts as a collision, including appends of an already present key;
// keeping that rule makes collision numbers comparable across runs of the
// original benchmark.
func (t *Table) Insert(rec common.Record) {
	idx := t.hash(rec.Key, len(t.buckets))
	if len(t.buckets[idx]) > 0 {
		t.collisions++
	}
	t.buckets[idx] = append(t.buckets[idx], rec)
	t.size++
}

// Search scans the key's bucket and returns the records whose key matches
// exactly, in bucket (= insertion) order.
func (t *Table) Search(key string) []common.Record {
	idx := t.hash(key, len(t.buckets))
	var out []common.Record
	for _, r := range t.buckets[idx] {
		if r.Key == key {
			out = append(out, r)
		}
	}
	return out
}

func (t *Table) Name() string { return t.name }

func (t *Table) Len() int { return t.size }

// Collisions returns how many inserts so far landed in a non-empty
// bucket.
func (t *Table) Collisions() uint64 { return t.collisions }

// BucketCount returns the fixed number of buckets.
func (t *Table) BucketCount() int { return len(t.buckets) }
