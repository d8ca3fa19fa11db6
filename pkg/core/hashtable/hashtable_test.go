package hashtable

import (
	"errors"
	"fmt"
	"testing"

	"searchlab/pkg/common"
)

func rec(id uint64, key string) common.Record {
	return common.Record{ID: id, Key: key, Value: float64(id)}
}

func TestNewRejectsZeroBuckets(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := New(n); !errors.Is(err, ErrBucketCount) {
			t.Fatalf("New(%d): got err %v, want ErrBucketCount", n, err)
		}
	}
	if _, err := New(1); err != nil {
		t.Fatalf("New(1): unexpected error %v", err)
	}
}

func TestPolynomialDeterministic(t *testing.T) {
	for _, tc := range []struct {
		key     string
		buckets int
	}{
		{"", 7},
		{"Name0", 1},
		{"Name0", 97},
		{"Name12345", 1000},
	} {
		a := Polynomial(tc.key, tc.buckets)
		b := Polynomial(tc.key, tc.buckets)
		if a != b {
			t.Fatalf("Polynomial(%q, %d) not deterministic: %d vs %d", tc.key, tc.buckets, a, b)
		}
		if a < 0 || a >= tc.buckets {
			t.Fatalf("Polynomial(%q, %d) = %d out of range", tc.key, tc.buckets, a)
		}
	}
}

func TestPolynomialKnownValues(t *testing.T) {
	// h = (h*131 + byte) mod n, folded per byte.
	if got := Polynomial("", 13); got != 0 {
		t.Fatalf("empty key: got %d, want 0", got)
	}
	if got := Polynomial("A", 1000); got != 65 {
		t.Fatalf("single byte 'A': got %d, want 65", got)
	}
	// "AB": ((0*131+65)%1000 *131 + 66) % 1000 = (65*131+66) % 1000 = 8581 % 1000
	if got := Polynomial("AB", 1000); got != 581 {
		t.Fatalf("'AB': got %d, want 581", got)
	}
}

func TestCollisionCounting(t *testing.T) {
	tbl, err := New(1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tbl.Insert(rec(1, "A"))
	tbl.Insert(rec(2, "B"))
	tbl.Insert(rec(3, "A"))
	// First insert lands in an empty bucket; the next two do not. The
	// same-key append still counts.
	if got := tbl.Collisions(); got != 2 {
		t.Fatalf("collisions: got %d, want 2", got)
	}
}

func TestSearchFiltersByKey(t *testing.T) {
	tbl, err := New(1) // everything collides into bucket 0
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tbl.Insert(rec(1, "A"))
	tbl.Insert(rec(2, "B"))
	tbl.Insert(rec(3, "A"))

	got := tbl.Search("A")
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("search A: got %v, want ids [1 3]", got)
	}
	if got := tbl.Search("C"); len(got) != 0 {
		t.Fatalf("search C: got %v, want empty", got)
	}
	if tbl.Len() != 3 {
		t.Fatalf("Len: got %d, want 3", tbl.Len())
	}
}

func TestWithHasher(t *testing.T) {
	tbl, err := New(64, WithHasher("HashXX", XXHash))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if tbl.Name() != "HashXX" {
		t.Fatalf("Name: got %q", tbl.Name())
	}
	for i := 0; i < 100; i++ {
		tbl.Insert(rec(uint64(i+1), fmt.Sprintf("Name%d", i%10)))
	}
	for i := 0; i < 10; i++ {
		key := fmt.Sprintf("Name%d", i)
		got := tbl.Search(key)
		if len(got) != 10 {
			t.Fatalf("search %q: got %d records, want 10", key, len(got))
		}
		for _, r := range got {
			if r.Key != key {
				t.Fatalf("search %q returned record with key %q", key, r.Key)
			}
		}
	}
}

func TestIdempotentSearch(t *testing.T) {
	tbl, err := New(16)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 50; i++ {
		tbl.Insert(rec(uint64(i+1), fmt.Sprintf("Name%d", i%5)))
	}
	a := tbl.Search("Name2")
	b := tbl.Search("Name2")
	if len(a) != len(b) {
		t.Fatalf("repeated search lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("repeated search differs at %d", i)
		}
	}
}
