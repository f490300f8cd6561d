package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pavanmanishd/vector"
)

const (
	AllocatorHeap   = "heap"
	AllocatorManual = "manual"

	DefaultLogLevel = "info"
	DefaultAppends  = 64
)

type Config struct {
	Allocator    string  `yaml:"allocator"`
	GrowthFactor float64 `yaml:"growth_factor"`
	LogLevel     string  `yaml:"log_level"`
	Appends      int     `yaml:"appends"`
}

func DefaultConfig() *Config {
	return &Config{
		Allocator:    AllocatorHeap,
		GrowthFactor: vector.DefaultGrowthFactor,
		LogLevel:     DefaultLogLevel,
		Appends:      DefaultAppends,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings the demo cannot run with.
func (c *Config) Validate() error {
	switch c.Allocator {
	case AllocatorHeap, AllocatorManual:
	default:
		return fmt.Errorf("config: unknown allocator %q", c.Allocator)
	}
	if !(c.GrowthFactor > 1) || math.IsInf(c.GrowthFactor, 0) {
		return fmt.Errorf("config: growth_factor must be finite and > 1, got %v", c.GrowthFactor)
	}
	if c.Appends <= 0 {
		return fmt.Errorf("config: appends must be positive, got %d", c.Appends)
	}
	return nil
}

// NewAllocator returns the allocator named by the config and a function that
// releases whatever the allocator still holds.
func (c *Config) NewAllocator() (vector.Allocator, func() error) {
	if c.Allocator == AllocatorManual {
		m := vector.NewManualAllocator()
		return m, m.Close
	}
	return vector.HeapAllocator{}, func() error { return nil }
}
