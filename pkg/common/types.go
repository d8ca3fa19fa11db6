package common

import "fmt"

// Record is the unit stored and searched by every index structure.
// It is never mutated after construction.
type Record struct {
	ID    uint64
	Key   string
	Value float64
}

// String is handy for debug output.
func (r Record) String() string {
	return fmt.Sprintf("Record{ID: %d, Key: %q, Value: %.2f}", r.ID, r.Key, r.Value)
}
