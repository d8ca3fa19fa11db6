package monitor

import (
	"sync/atomic"
)

// RunStats tallies the operations issued during a benchmark run.
type RunStats struct {
	InsertCount uint64
	SearchCount uint64
}

func NewRunStats() *RunStats {
	return &RunStats{}
}

func (rs *RunStats) RecordInsert(n uint64) {
	atomic.AddUint64(&rs.InsertCount, n)
}

func (rs *RunStats) RecordSearch(n uint64) {
	atomic.AddUint64(&rs.SearchCount, n)
}

func (rs *RunStats) Inserts() uint64 {
	return atomic.LoadUint64(&rs.InsertCount)
}

func (rs *RunStats) Searches() uint64 {
	return atomic.LoadUint64(&rs.SearchCount)
}
