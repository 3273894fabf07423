package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dhana56/protein-contact-networks/internal/core/model"
)

type NetworkConfig struct {
	Cutoff        float64 `toml:"cutoff"`
	Atom          string  `toml:"atom"`
	ResidueNoDiff int     `toml:"residue_no_diff"`
	Strategy      string  `toml:"strategy"` // naive | parallel | grid
	Workers       int     `toml:"workers"`
}

type OutputConfig struct {
	Dir    string `toml:"dir"`
	Format string `toml:"format"` // csv | json
}

type RCSBConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	CacheDir       string `toml:"cache_dir"`
}

type MemgraphConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type ConcurrencyConfig struct {
	Batch int `toml:"batch"`
}

type ServerConfig struct {
	Port string `toml:"port"`
}

type Config struct {
	Network     NetworkConfig     `toml:"network"`
	Output      OutputConfig      `toml:"output"`
	RCSB        RCSBConfig        `toml:"rcsb"`
	Memgraph    MemgraphConfig    `toml:"memgraph"`
	Concurrency ConcurrencyConfig `toml:"concurrency"`
	Server      ServerConfig      `toml:"server"`
}

func Default() *Config {
	p := model.DefaultParams()
	return &Config{
		Network: NetworkConfig{
			Cutoff:        p.Cutoff,
			Atom:          p.AtomName,
			ResidueNoDiff: p.ResidueNoDiff,
			Strategy:      "naive",
		},
		Output: OutputConfig{
			Dir:    ".",
			Format: "csv",
		},
		RCSB: RCSBConfig{
			BaseURL:        "https://files.rcsb.org/download",
			TimeoutSeconds: 120,
		},
		Concurrency: ConcurrencyConfig{
			Batch: 4,
		},
		Server: ServerConfig{
			Port: "8080",
		},
	}
}

// Load reads a TOML file over the defaults; keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides values from environment variables that are set.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("PCN_CUTOFF"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("PCN_CUTOFF: %w", err)
		}
		c.Network.Cutoff = f
	}
	if v := os.Getenv("PCN_ATOM"); v != "" {
		c.Network.Atom = v
	}
	if v := os.Getenv("PCN_RESIDUE_NO_DIFF"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PCN_RESIDUE_NO_DIFF: %w", err)
		}
		c.Network.ResidueNoDiff = n
	}
	if v := os.Getenv("PCN_STRATEGY"); v != "" {
		c.Network.Strategy = v
	}
	if v := os.Getenv("PCN_OUTPUT_DIR"); v != "" {
		c.Output.Dir = v
	}
	if v := os.Getenv("PCN_CACHE_DIR"); v != "" {
		c.RCSB.CacheDir = v
	}
	if v := os.Getenv("MEMGRAPH_URI"); v != "" {
		c.Memgraph.URI = v
	}
	if v := os.Getenv("MEMGRAPH_USER"); v != "" {
		c.Memgraph.User = v
	}
	if v := os.Getenv("MEMGRAPH_PASSWORD"); v != "" {
		c.Memgraph.Password = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	return nil
}

// Params returns the detection parameters configured in [network].
func (c *Config) Params() model.Params {
	return model.Params{
		Cutoff:        c.Network.Cutoff,
		AtomName:      c.Network.Atom,
		ResidueNoDiff: c.Network.ResidueNoDiff,
	}
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.RCSB.TimeoutSeconds) * time.Second
}

func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("[network]: %w", err)
	}
	if c.Network.Workers < 0 {
		return fmt.Errorf("[network]: workers must be >= 0")
	}
	if c.Concurrency.Batch < 1 {
		return fmt.Errorf("[concurrency]: batch must be >= 1")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("[output]: dir must be set")
	}
	return nil
}
