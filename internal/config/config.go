package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"pkg.jsn.cam/parkgen/internal/logging"
	"pkg.jsn.cam/parkgen/pkg/generator"
	"pkg.jsn.cam/parkgen/pkg/geo"
	"pkg.jsn.cam/parkgen/pkg/output"
)

var (
	ErrInvalidConfig       = errors.New("invalid config")
	ErrIncompatibleVersion = errors.New("incompatible config version")
)

// Environment variables that override the config file.
const (
	EnvOutput   = "PARKGEN_OUTPUT"
	EnvMode     = "PARKGEN_MODE"
	EnvSeed     = "PARKGEN_SEED"
	EnvLogLevel = "PARKGEN_LOG_LEVEL"
)

// Names holds the word lists lot names are built from.
type Names struct {
	First []string `toml:"first"`
	Last  []string `toml:"last"`
}

// Config is the parkgen configuration.
type Config struct {
	Version     string          `toml:"version"`
	Output      string          `toml:"output"`
	Mode        string          `toml:"mode"`
	Seed        uint64          `toml:"seed"`
	Description string          `toml:"description"`
	Prices      string          `toml:"prices"`
	Names       Names           `toml:"names"`
	Bounds      geo.BoundingBox `toml:"bounds"`
	Log         logging.Config  `toml:"log"`
}

// Default returns the built-in configuration.
func Default() *Config {
	opts := generator.DefaultOptions()
	return &Config{
		Version:     ConfigVersion,
		Output:      output.DefaultPath,
		Mode:        string(opts.Mode),
		Description: opts.Description,
		Prices:      opts.Prices,
		Names: Names{
			First: slices.Clone(opts.FirstWords),
			Last:  slices.Clone(opts.LastWords),
		},
		Bounds: opts.Bounds,
		Log:    logging.DefaultConfig(),
	}
}

// Load builds a config from defaults, the TOML file at path (skipped when
// path is empty), and environment overrides, then validates it.
func Load(path string) (*Config, error) {
	c := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, c); err != nil {
			return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
		}
	}

	if err := c.ApplyEnv(); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// DefaultEnvFile is read when no env files are named.
const DefaultEnvFile = ".env"

// LoadDotEnv loads environment variables from the named env files. With no
// names it reads DefaultEnvFile if present. Named files must exist.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		err := godotenv.Load(DefaultEnvFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load env file: %w", err)
		}
		return nil
	}

	if err := godotenv.Load(filenames...); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from PARKGEN_* environment variables.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvOutput); ok && v != "" {
		c.Output = v
	}
	if v, ok := os.LookupEnv(EnvMode); ok && v != "" {
		c.Mode = v
	}
	if v, ok := os.LookupEnv(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a seed", ErrInvalidConfig, EnvSeed, v)
		}
		c.Seed = seed
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	return nil
}

// Validate checks the config for values generation cannot work with.
func (c *Config) Validate() error {
	if c.Version != "" {
		ok, err := IsCompatibleVersion(c.Version, ConfigVersion)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		if !ok {
			return fmt.Errorf("%w: %s, want %s.x.x", ErrIncompatibleVersion, c.Version, ConfigVersion[:2])
		}
	}

	if c.Output == "" {
		return fmt.Errorf("%w: output path is empty", ErrInvalidConfig)
	}
	if _, ok := generator.Registry[c.Mode]; !ok {
		return fmt.Errorf("%w: mode %q, want one of %v", ErrInvalidConfig, c.Mode, generator.List())
	}
	if len(c.Names.First) == 0 || len(c.Names.Last) == 0 {
		return fmt.Errorf("%w: name word lists must not be empty", ErrInvalidConfig)
	}
	if err := c.Bounds.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// GeneratorOptions converts the config into generator options.
func (c *Config) GeneratorOptions() generator.Options {
	return generator.Options{
		Mode:        generator.Mode(c.Mode),
		FirstWords:  c.Names.First,
		LastWords:   c.Names.Last,
		Bounds:      c.Bounds,
		Description: c.Description,
		Prices:      c.Prices,
	}
}
