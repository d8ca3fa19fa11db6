// Package bench builds every search strategy from one record batch,
// times identical key lookups against each, and reports the averages.
package bench

import (
	"fmt"
	"time"

	"searchlab/pkg/common"
	"searchlab/pkg/core"
	"searchlab/pkg/core/baseline"
	"searchlab/pkg/core/bst"
	"searchlab/pkg/core/hashtable"
	"searchlab/pkg/core/rbtree"
	"searchlab/pkg/generator"
	"searchlab/pkg/monitor"
)

// Measurement is one strategy's result for one batch size.
type Measurement struct {
	Strategy   string
	AvgNs      int64
	Collisions int64 // -1 when the strategy has no collision counter
}

// Result holds all strategy measurements for one batch size.
type Result struct {
	Size     int
	Measures []Measurement
}

// Suite drives one benchmark configuration across batch sizes.
type Suite struct {
	gen     *generator.Generator
	queries int
	stats   *monitor.RunStats
}

func NewSuite(gen *generator.Generator, queries int, stats *monitor.RunStats) *Suite {
	return &Suite{gen: gen, queries: queries, stats: stats}
}

// buildIndexes constructs one empty instance of every strategy. Hash
// tables are sized to the batch, like the original benchmark.
func buildIndexes(size int) ([]core.Index, error) {
	poly, err := hashtable.New(size)
	if err != nil {
		return nil, fmt.Errorf("build Hash: %w", err)
	}
	xx, err := hashtable.New(size, hashtable.WithHasher("HashXX", hashtable.XXHash))
	if err != nil {
		return nil, fmt.Errorf("build HashXX: %w", err)
	}
	return []core.Index{
		baseline.NewLinear(size),
		bst.NewTree(),
		rbtree.NewTree(),
		poly,
		xx,
		baseline.NewBTreeMap(),
		baseline.NewAVLMap(),
	}, nil
}

// Run generates a batch of the given size, loads it into every strategy,
// and times the same sampled key lookups against each.
func (s *Suite) Run(size int) (Result, error) {
	if size < 1 {
		return Result{}, fmt.Errorf("bench: size must be at least 1, got %d", size)
	}
	records := s.gen.Records(size)
	indexes, err := buildIndexes(len(records))
	if err != nil {
		return Result{}, err
	}

	for _, rec := range records {
		for _, idx := range indexes {
			idx.Insert(rec)
		}
	}
	s.stats.RecordInsert(uint64(len(records) * len(indexes)))

	keys := s.gen.SampleKeys(records, s.queries)
	if len(keys) == 0 {
		return Result{}, fmt.Errorf("bench: no query keys sampled (queries=%d)", s.queries)
	}

	res := Result{Size: size}
	for _, idx := range indexes {
		var total time.Duration
		for _, key := range keys {
			start := time.Now()
			idx.Search(key)
			total += time.Since(start)
		}
		s.stats.RecordSearch(uint64(len(keys)))

		m := Measurement{
			Strategy:   idx.Name(),
			AvgNs:      total.Nanoseconds() / int64(len(keys)),
			Collisions: -1,
		}
		if cc, ok := idx.(core.CollisionCounter); ok {
			m.Collisions = int64(cc.Collisions())
		}
		res.Measures = append(res.Measures, m)
	}
	return res, nil
}

// Verify cross-checks every strategy against the linear scan for the
// sampled keys: same record id multiset for every key. Used by the
// harness as a sanity gate before timings are trusted.
func Verify(records []common.Record, keys []string) error {
	indexes, err := buildIndexes(len(records))
	if err != nil {
		return err
	}
	for _, rec := range records {
		for _, idx := range indexes {
			idx.Insert(rec)
		}
	}
	ref := indexes[0] // linear scan
	for _, key := range keys {
		want := idSet(ref.Search(key))
		for _, idx := range indexes[1:] {
			got := idSet(idx.Search(key))
			if len(got) != len(want) {
				return fmt.Errorf("bench: %s returned %d records for %q, linear returned %d",
					idx.Name(), len(got), key, len(want))
			}
			for id := range want {
				if !got[id] {
					return fmt.Errorf("bench: %s is missing record %d for key %q", idx.Name(), id, key)
				}
			}
		}
	}
	return nil
}

func idSet(records []common.Record) map[uint64]bool {
	set := make(map[uint64]bool, len(records))
	for _, r := range records {
		set[r.ID] = true
	}
	return set
}
