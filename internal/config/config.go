package config

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "fidel.yml"

type Config struct {
	Samples     Samples     `yaml:"samples"`
	History     History     `yaml:"history"`
	Serve       Serve       `yaml:"serve"`
	Interpreter Interpreter `yaml:"interpreter"`
}

type Samples struct {
	Dir       string `yaml:"dir"`
	Extension string `yaml:"extension"`
}

type History struct {
	Enabled       bool          `yaml:"enabled"`
	DB            string        `yaml:"db"`
	Retention     time.Duration `yaml:"retention"`
	PruneInterval time.Duration `yaml:"prune_interval"`
}

type Serve struct {
	Addr        string        `yaml:"addr"`
	Timeout     time.Duration `yaml:"timeout"`
	MaxBodySize int           `yaml:"max_body_size"`

	// MaxOutputSize caps what one playground run may print; 0 disables it.
	MaxOutputSize int `yaml:"max_output_size"`
}

type Interpreter struct {
	MaxCallDepth      int  `yaml:"max_call_depth"`
	ReturnPropagation bool `yaml:"return_propagation"`
}

func Default() *Config {
	return &Config{
		Samples: Samples{
			Dir:       "samples",
			Extension: ".fdl",
		},
		History: History{
			Enabled:       true,
			DB:            ".fidel/history.db",
			Retention:     30 * 24 * time.Hour,
			PruneInterval: time.Hour,
		},
		Serve: Serve{
			Addr:          "127.0.0.1:8080",
			Timeout:       5 * time.Second,
			MaxBodySize:   1 << 20,
			MaxOutputSize: 1 << 20,
		},
		Interpreter: Interpreter{
			MaxCallDepth: 1000,
		},
	}
}

// Load reads path over the defaults. An empty path means DefaultFile, and a
// missing DefaultFile is not an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Wrapf(err, "reading config %s", path)
	}

	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML from r over the defaults. Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Samples.Dir == "" {
		return errors.New("samples.dir must not be empty")
	}
	if c.Samples.Extension == "" || c.Samples.Extension[0] != '.' {
		return errors.Errorf("samples.extension must start with '.', got %q", c.Samples.Extension)
	}
	if c.History.Enabled && c.History.DB == "" {
		return errors.New("history.db must be set when history is enabled")
	}
	if c.History.Retention < 0 || c.History.PruneInterval < 0 {
		return errors.New("history durations must not be negative")
	}
	if c.Serve.MaxBodySize <= 0 {
		return errors.Errorf("serve.max_body_size must be positive, got %d", c.Serve.MaxBodySize)
	}
	if c.Serve.MaxOutputSize < 0 {
		return errors.Errorf("serve.max_output_size must not be negative, got %d", c.Serve.MaxOutputSize)
	}
	if c.Interpreter.MaxCallDepth < 0 {
		return errors.Errorf("interpreter.max_call_depth must not be negative, got %d", c.Interpreter.MaxCallDepth)
	}
	return nil
}
