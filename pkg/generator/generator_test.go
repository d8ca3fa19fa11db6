package generator

import (
	"strconv"
	"strings"
	"testing"
)

func TestRecordsShape(t *testing.T) {
	g := New(1)
	const n = 1000
	records := g.Records(n)
	if len(records) != n {
		t.Fatalf("got %d records, want %d", len(records), n)
	}
	nameCount := n / DefaultNameDivisor
	for i, r := range records {
		if r.ID != uint64(i+1) {
			t.Fatalf("record %d: id %d, want %d", i, r.ID, i+1)
		}
		if !strings.HasPrefix(r.Key, "Name") {
			t.Fatalf("record %d: key %q lacks Name prefix", i, r.Key)
		}
		x, err := strconv.Atoi(strings.TrimPrefix(r.Key, "Name"))
		if err != nil || x < 0 || x >= nameCount {
			t.Fatalf("record %d: key %q outside [0, %d)", i, r.Key, nameCount)
		}
		if r.Value < 0 || r.Value >= DefaultValueMax {
			t.Fatalf("record %d: value %f outside [0, %f)", i, r.Value, DefaultValueMax)
		}
	}
}

func TestRecordsTinyBatch(t *testing.T) {
	g := New(2)
	records := g.Records(3)
	// n/5 rounds to zero; the name pool clamps to one name.
	for _, r := range records {
		if r.Key != "Name0" {
			t.Fatalf("tiny batch key: got %q, want Name0", r.Key)
		}
	}
}

func TestSeededDeterminism(t *testing.T) {
	a := New(99).Records(500)
	b := New(99).Records(500)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at record %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSampleKeysPresent(t *testing.T) {
	g := New(3)
	records := g.Records(200)
	present := make(map[string]bool)
	for _, r := range records {
		present[r.Key] = true
	}
	keys := g.SampleKeys(records, 10)
	if len(keys) != 10 {
		t.Fatalf("got %d keys, want 10", len(keys))
	}
	for _, k := range keys {
		if !present[k] {
			t.Fatalf("sampled key %q not present in batch", k)
		}
	}
	if got := g.SampleKeys(nil, 5); got != nil {
		t.Fatalf("sampling empty batch: got %v, want nil", got)
	}
}
