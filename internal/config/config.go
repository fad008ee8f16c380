// Package config loads kybur settings from an optional TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/mikeyrichardson/kybur/internal/parse"
)

// EnvVar names the environment variable consulted when no --config flag is
// given.
const EnvVar = "KYBUR_CONFIG"

// Config holds file-level defaults. Explicit command-line flags win.
type Config struct {
	Format  string `toml:"format"`
	Verbose bool   `toml:"verbose"`
	Workers int    `toml:"workers"`
	Input   Input  `toml:"input"`
}

// Input bounds the equation text accepted from users and lesson files.
type Input struct {
	MinLength int `toml:"min_length"`
	MaxLength int `toml:"max_length"`
}

// Limits converts the input bounds for parse.CheckInput.
func (i Input) Limits() parse.Limits {
	return parse.Limits{MinLength: i.MinLength, MaxLength: i.MaxLength}
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Format:  "text",
		Workers: 0, // GOMAXPROCS
		Input: Input{
			MinLength: parse.DefaultLimits.MinLength,
			MaxLength: parse.DefaultLimits.MaxLength,
		},
	}
}

// Resolve returns the config path to load: flag if set, else $KYBUR_CONFIG.
// An empty result means no file.
func Resolve(flag string) string {
	if flag != "" {
		return flag
	}
	return os.Getenv(EnvVar)
}

// Load reads path over the defaults. An empty path returns Default().
// Keys the file sets replace defaults; keys it omits keep them.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return cfg, fmt.Errorf("config %s: %s", path, strict.String())
		}
		var de *toml.DecodeError
		if errors.As(err, &de) {
			row, col := de.Position()
			return cfg, fmt.Errorf("config %s:%d:%d: %s", path, row, col, de.Error())
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("format must be \"text\" or \"json\", got %q", c.Format)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.Input.MinLength < 0 || c.Input.MaxLength < 0 {
		return errors.New("input lengths must not be negative")
	}
	if c.Input.MaxLength > 0 && c.Input.MinLength > c.Input.MaxLength {
		return fmt.Errorf("input.min_length %d exceeds input.max_length %d", c.Input.MinLength, c.Input.MaxLength)
	}
	return nil
}
