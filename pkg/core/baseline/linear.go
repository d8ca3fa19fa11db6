// Package baseline provides the reference strategies the custom
// structures are compared against: a full-scan slice and two ordered
// multimaps built on off-the-shelf containers.
package baseline

import "searchlab/pkg/common"

// Linear keeps records in a flat slice and answers searches with a full
// scan. O(n) per lookup; it anchors the low end of every comparison.
type Linear struct {
	records []common.Record
}

func NewLinear(capacity int) *Linear {
	return &Linear{records: make([]common.Record, 0, capacity)}
}

func (l *Linear) Insert(rec common.Record) {
	l.records = append(l.records, rec)
}

func (l *Linear) Search(key string) []common.Record {
	var out []common.Record
	for _, r := range l.records {
		if r.Key == key {
			out = append(out, r)
		}
	}
	return out
}

func (l *Linear) Name() string { return "Linear" }

func (l *Linear) Len() int { return len(l.records) }
