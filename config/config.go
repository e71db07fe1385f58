// Package config loads the piz command configuration.
//
// The configuration is a single YAML file given by --config or the
// PIZ_CONFIG environment variable. Every key is optional and defaults to
// the reference behavior; unknown keys are an error. Flags given on the
// command line override the file.
//
//  output: example.out
//  workers: 4
//  tail: 100
//  limit: 4294967295
//  atomic: true
//  checksum: false
//  log_level: info
package config

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/zeebo/errs"
	"gopkg.in/yaml.v3"

	"github.com/calebcase/piz/archive"
	"github.com/calebcase/piz/bbp"
)

// Error is the class of configuration errors.
var Error = errs.Class("config")

// EnvVar names the environment variable holding the config path.
const EnvVar = "PIZ_CONFIG"

// Config configures the piz command.
type Config struct {
	// Output is the destination path.
	Output string `yaml:"output"`

	// Workers is the extraction parallelism.
	Workers int `yaml:"workers"`

	// Tail is the BBP tail truncation constant.
	Tail uint64 `yaml:"tail"`

	// Limit is the largest literal accepted in the archive body.
	Limit uint64 `yaml:"limit"`

	// Atomic writes the output to a temporary file renamed on success.
	Atomic bool `yaml:"atomic"`

	// Checksum logs the BLAKE3 digest of the output.
	Checksum bool `yaml:"checksum"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the reference configuration.
func Default() Config {
	return Config{
		Output:   "example.out",
		Workers:  1,
		Tail:     bbp.DefaultTail,
		Limit:    archive.DefaultLimit,
		LogLevel: "info",
	}
}

// Parse decodes YAML data over the defaults.
func Parse(data []byte) (c Config, err error) {
	c = Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	err = dec.Decode(&c)
	if err != nil && !errors.Is(err, io.EOF) {
		return Config{}, Error.Wrap(err)
	}

	err = c.Validate()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

// Load reads and parses the file at path.
func Load(path string) (c Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, Error.Wrap(err)
	}

	return Parse(data)
}

// Path returns the config path from flag, falling back to EnvVar. An empty
// result means no file is used.
func Path(flag string) string {
	if flag != "" {
		return flag
	}

	return os.Getenv(EnvVar)
}

// Validate reports the first invalid value.
func (c Config) Validate() error {
	if c.Output == "" {
		return Error.New("output must not be empty")
	}

	if c.Workers < 1 {
		return Error.New("workers must be at least 1, got %d", c.Workers)
	}

	if c.Tail == 0 {
		return Error.New("tail must be at least 1")
	}

	if c.Limit == 0 {
		return Error.New("limit must be at least 1")
	}

	_, err := c.Level()

	return err
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() (level slog.Level, err error) {
	err = level.UnmarshalText([]byte(c.LogLevel))
	if err != nil {
		return level, Error.New("invalid log_level %q", c.LogLevel)
	}

	return level, nil
}
