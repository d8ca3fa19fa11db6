package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Bench  BenchConfig  `yaml:"bench"`
	Data   DataConfig   `yaml:"data"`
	Output OutputConfig `yaml:"output"`
}

type BenchConfig struct {
	Sizes   []int `yaml:"sizes"`   // record batch sizes to benchmark
	Queries int   `yaml:"queries"` // search keys sampled per size
	Seed    int64 `yaml:"seed"`    // 0 = seed from the clock
}

type DataConfig struct {
	NameDivisor int     `yaml:"name_divisor"` // distinct keys = max(size/divisor, 1)
	ValueMax    float64 `yaml:"value_max"`
}

type OutputConfig struct {
	CSV string `yaml:"csv"` // results file (e.g. search_results.csv)
	DB  string `yaml:"db"`  // optional sqlite path; empty disables
}

func Load(configPath string) (*Config, error) {
	cfg := &Config{
		Bench: BenchConfig{
			Sizes: []int{
				100, 50000, 100000,
				200000, 300000, 400000, 500000, 600000, 750000, 1000000,
			},
			Queries: 10,
		},
		Data: DataConfig{
			NameDivisor: 5,
			ValueMax:    100.0,
		},
		Output: OutputConfig{
			CSV: "search_results.csv",
		},
	}

	if configPath == "" {
		for _, p := range []string{"configs/searchlab.yaml", "searchlab.yaml"} {
			data, err := os.ReadFile(p)
			if err == nil {
				if err := yaml.Unmarshal(data, cfg); err != nil {
					return cfg, err
				}
				applyDefaults(cfg)
				return cfg, nil
			}
		}
		applyDefaults(cfg)
		return cfg, nil // no file found: use defaults
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if len(cfg.Bench.Sizes) == 0 {
		cfg.Bench.Sizes = []int{100, 50000, 100000}
	}
	if cfg.Bench.Queries <= 0 {
		cfg.Bench.Queries = 10
	}
	if cfg.Data.NameDivisor <= 0 {
		cfg.Data.NameDivisor = 5
	}
	if cfg.Data.ValueMax <= 0 {
		cfg.Data.ValueMax = 100.0
	}
	if cfg.Output.CSV == "" {
		cfg.Output.CSV = "search_results.csv"
	}
}
