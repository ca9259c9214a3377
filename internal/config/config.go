package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Pools   PoolConfig    `toml:"pools"`
	Logging LoggingConfig `toml:"logging"`
}

// PoolConfig carries capacity hints forwarded to Reserve[T] for the
// component types a caller knows it will assign heavily. Entries with no
// matching Reserve call are simply never consumed.
type PoolConfig struct {
	ReserveHints map[string]int `toml:"reserve_hints"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Pools: PoolConfig{
			ReserveHints: map[string]int{},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
