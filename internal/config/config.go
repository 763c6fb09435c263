package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"regexparse/internal/format"
)

// Config holds the rxparse settings
type Config struct {
	Output OutputConfig `toml:"output" yaml:"output"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// OutputConfig controls how trees and diagnostics are printed
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
	Indent int    `toml:"indent" yaml:"indent"`
	Caret  bool   `toml:"caret" yaml:"caret"`
}

// LogConfig is handed to commonlog. Verbosity follows commonlog's scale:
// 0 logs notices and above, 1 adds info, 2 adds debug, negative values
// silence more.
type LogConfig struct {
	Verbosity int    `toml:"verbosity" yaml:"verbosity"`
	File      string `toml:"file" yaml:"file"`
}

// DefaultFiles are looked up in the working directory when no path is given.
var DefaultFiles = []string{"rxparse.toml", "rxparse.yaml", "rxparse.yml"}

func Default() *Config {
	return &Config{
		Output: OutputConfig{Format: "sexpr", Indent: 2, Caret: true},
	}
}

// Load reads the file at path over the defaults, applies environment
// overrides and validates the result. An empty path tries DefaultFiles and
// falls back to the defaults when none exists.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		for _, p := range DefaultFiles {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}
	if path != "" {
		path = os.ExpandEnv(path)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := decode(path, data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	default:
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return err
		}
		if und := md.Undecoded(); len(und) > 0 {
			return fmt.Errorf("unknown keys %v", und)
		}
		return nil
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("RXPARSE_FORMAT"); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv("RXPARSE_INDENT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("RXPARSE_INDENT: %w", err)
		}
		c.Output.Indent = n
	}
	if v := os.Getenv("RXPARSE_VERBOSITY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("RXPARSE_VERBOSITY: %w", err)
		}
		c.Log.Verbosity = n
	}
	if v := os.Getenv("RXPARSE_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	return nil
}

// Validate rejects settings the CLI cannot honour.
func (c *Config) Validate() error {
	if !format.Known(c.Output.Format) {
		return fmt.Errorf("output.format %q is not one of %s", c.Output.Format, strings.Join(format.Names(), ", "))
	}
	if c.Output.Indent < 0 {
		return fmt.Errorf("output.indent must not be negative, got %d", c.Output.Indent)
	}
	return nil
}

// LogPath returns the log file for commonlog.Configure, nil meaning stderr.
func (c *Config) LogPath() *string {
	if c.Log.File == "" {
		return nil
	}
	p := c.Log.File
	return &p
}
