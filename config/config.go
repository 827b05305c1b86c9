// Package config loads optional TOML overrides for the simulation.
// Every field is a pointer so an absent key keeps the built-in default
// instead of zeroing it.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/crowd-drift/world"
)

// Config is the resolved runtime configuration
type Config struct {
	World world.Config
	Audio bool
}

// file mirrors the TOML document shape
type file struct {
	MaxPeople       *int     `toml:"max_people"`
	SpawnIntervalMs *int     `toml:"spawn_interval_ms"`
	InitialBatch    *int     `toml:"initial_batch"`
	BatchChunk      *int     `toml:"batch_chunk"`
	SizeMin         *float64 `toml:"size_min"`
	SizeMax         *float64 `toml:"size_max"`
	DragEnabled     *bool    `toml:"drag_enabled"`
	Seed            *uint64  `toml:"seed"`
	Audio           *bool    `toml:"audio"`
}

// Default returns the built-in configuration with audio on
func Default() Config {
	return Config{
		World: world.DefaultConfig(),
		Audio: true,
	}
}

// Load reads path and overlays it on the defaults. A missing file is
// not an error; an unreadable or invalid one is
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := Apply(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Apply overlays a TOML document onto cfg
func Apply(data []byte, cfg *Config) error {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return err
	}

	if f.MaxPeople != nil {
		if *f.MaxPeople < 1 {
			return fmt.Errorf("max_people must be positive, got %d", *f.MaxPeople)
		}
		cfg.World.MaxPeople = *f.MaxPeople
	}
	if f.SpawnIntervalMs != nil {
		if *f.SpawnIntervalMs < 1 {
			return fmt.Errorf("spawn_interval_ms must be positive, got %d", *f.SpawnIntervalMs)
		}
		cfg.World.SpawnIntervalBase = time.Duration(*f.SpawnIntervalMs) * time.Millisecond
	}
	if f.InitialBatch != nil {
		if *f.InitialBatch < 0 {
			return fmt.Errorf("initial_batch must not be negative, got %d", *f.InitialBatch)
		}
		cfg.World.InitialBatch = *f.InitialBatch
	}
	if f.BatchChunk != nil {
		if *f.BatchChunk < 1 {
			return fmt.Errorf("batch_chunk must be positive, got %d", *f.BatchChunk)
		}
		cfg.World.BatchChunk = *f.BatchChunk
	}
	if f.SizeMin != nil {
		cfg.World.SizeMin = *f.SizeMin
	}
	if f.SizeMax != nil {
		cfg.World.SizeMax = *f.SizeMax
	}
	if cfg.World.SizeMin <= 0 || cfg.World.SizeMax < cfg.World.SizeMin {
		return fmt.Errorf("invalid size range [%v, %v]", cfg.World.SizeMin, cfg.World.SizeMax)
	}
	if f.DragEnabled != nil {
		cfg.World.DragEnabled = *f.DragEnabled
	}
	if f.Seed != nil {
		cfg.World.Seed = *f.Seed
	}
	if f.Audio != nil {
		cfg.Audio = *f.Audio
	}
	return nil
}
