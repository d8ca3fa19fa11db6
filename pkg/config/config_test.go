package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	_, err := Load("/nonexistent/path/searchlab.yaml")
	if err == nil {
		t.Fatal("expected error for nonexistent path")
	}
	cfg, _ := Load("")
	if cfg.Bench.Queries != 10 {
		t.Errorf("default queries: got %d", cfg.Bench.Queries)
	}
	if len(cfg.Bench.Sizes) == 0 || cfg.Bench.Sizes[0] != 100 {
		t.Errorf("default sizes: got %v", cfg.Bench.Sizes)
	}
	if cfg.Data.NameDivisor != 5 {
		t.Errorf("default name_divisor: got %d", cfg.Data.NameDivisor)
	}
	if cfg.Output.CSV != "search_results.csv" {
		t.Errorf("default csv: got %s", cfg.Output.CSV)
	}
	if cfg.Output.DB != "" {
		t.Errorf("default db should be empty, got %s", cfg.Output.DB)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	content := `
bench:
  sizes: [10, 20]
  queries: 4
  seed: 7
data:
  name_divisor: 3
  value_max: 50
output:
  csv: "out.csv"
  db: "out.db"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Bench.Sizes) != 2 || cfg.Bench.Sizes[1] != 20 {
		t.Errorf("sizes: got %v", cfg.Bench.Sizes)
	}
	if cfg.Bench.Queries != 4 {
		t.Errorf("queries: got %d", cfg.Bench.Queries)
	}
	if cfg.Bench.Seed != 7 {
		t.Errorf("seed: got %d", cfg.Bench.Seed)
	}
	if cfg.Data.NameDivisor != 3 {
		t.Errorf("name_divisor: got %d", cfg.Data.NameDivisor)
	}
	if cfg.Output.DB != "out.db" {
		t.Errorf("db: got %s", cfg.Output.DB)
	}
}

func TestLoadClampsBadValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	content := `
bench:
  queries: -1
data:
  name_divisor: 0
  value_max: -5
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Bench.Queries != 10 {
		t.Errorf("clamped queries: got %d", cfg.Bench.Queries)
	}
	if cfg.Data.NameDivisor != 5 {
		t.Errorf("clamped name_divisor: got %d", cfg.Data.NameDivisor)
	}
	if cfg.Data.ValueMax != 100.0 {
		t.Errorf("clamped value_max: got %f", cfg.Data.ValueMax)
	}
}
