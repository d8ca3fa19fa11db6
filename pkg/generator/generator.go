// Package generator produces the randomized record batches the benchmark
// feeds to every structure. Keys are drawn from a deliberately small name
// pool so that duplicate keys occur.
package generator

import (
	"math/rand"
	"strconv"
	"time"

	"searchlab/pkg/common"
)

// DefaultNameDivisor controls key cardinality: a batch of n records draws
// keys from max(n/DefaultNameDivisor, 1) distinct names.
const DefaultNameDivisor = 5

// DefaultValueMax bounds the uniform record value range [0, DefaultValueMax).
const DefaultValueMax = 100.0

type Generator struct {
	rng         *rand.Rand
	NameDivisor int
	ValueMax    float64
}

// New creates a generator. Seed 0 means seed from the clock.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rng:         rand.New(rand.NewSource(seed)),
		NameDivisor: DefaultNameDivisor,
		ValueMax:    DefaultValueMax,
	}
}

// Records generates n records with ids 1..n, keys "Name<x>" with x drawn
// from [0, max(n/NameDivisor, 1)), and uniform values.
func (g *Generator) Records(n int) []common.Record {
	nameCount := n / g.NameDivisor
	if nameCount < 1 {
		nameCount = 1
	}
	records := make([]common.Record, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, common.Record{
			ID:    uint64(i + 1),
			Key:   "Name" + strconv.Itoa(g.rng.Intn(nameCount)),
			Value: g.rng.Float64() * g.ValueMax,
		})
	}
	return records
}

// SampleKeys picks k keys (with repetition) that are present in the
// batch, for use as search queries. Returns nil for an empty batch.
func (g *Generator) SampleKeys(records []common.Record, k int) []string {
	if len(records) == 0 {
		return nil
	}
	keys := make([]string, 0, k)
	for i := 0; i < k; i++ {
		keys = append(keys, records[g.rng.Intn(len(records))].Key)
	}
	return keys
}
