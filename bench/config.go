package bench

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config controls a benchmark run.
type Config struct {
	// Reps is the number of repetitions per element width.
	Reps int `toml:"reps"`
	// Size is the number of elements sorted per repetition.
	Size int `toml:"size"`
	// Seed seeds the input generator, making runs reproducible.
	Seed int64 `toml:"seed"`
}

// DefaultConfig returns the defaults of the command line harness:
// a single repetition over ten elements.
func DefaultConfig() Config {
	return Config{Reps: 1, Size: 10}
}

// Validate reports whether the configuration describes a runnable
// benchmark.
func (cfg Config) Validate() error {
	if cfg.Reps < 1 {
		return fmt.Errorf("reps must be at least 1, got %d", cfg.Reps)
	}
	if cfg.Size < 0 {
		return fmt.Errorf("size must not be negative, got %d", cfg.Size)
	}
	return nil
}

// LoadConfig reads a TOML benchmark description from path. Fields the
// file leaves unset keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
