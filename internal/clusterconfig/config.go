// Package clusterconfig holds the coding and timeout parameters for a
// simulated cluster of storage servers, decoded from YAML in the style of
// the other configuration structs in the retrieved corpus.
package clusterconfig

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the coding scheme and timeout budget for one cluster. It
// intentionally carries no listen addresses, TLS material, or process
// supervision flags: a real server's deployment configuration is outside
// this package's scope.
type Config struct {
	N          int           `yaml:"n"`
	M          int           `yaml:"m"`
	PutTimeout time.Duration `yaml:"put_timeout"`
	GetTimeout time.Duration `yaml:"get_timeout"`
}

// Default returns the canonical (n=5, m=3, f=1) parameter set with
// two-second PUT and GET timeouts.
func Default() Config {
	return Config{N: 5, M: 3, PutTimeout: 2 * time.Second, GetTimeout: 2 * time.Second}
}

// Validate checks that the configuration describes a usable coding scheme.
func (c Config) Validate() error {
	if c.M < 1 || c.N < 1 {
		return fmt.Errorf("clusterconfig: n and m must be positive, got n=%d m=%d", c.N, c.M)
	}
	if c.M > c.N {
		return fmt.Errorf("clusterconfig: m (%d) must not exceed n (%d)", c.M, c.N)
	}
	if c.N+c.M > 256 {
		return fmt.Errorf("clusterconfig: n+m (%d) must not exceed 256", c.N+c.M)
	}
	return nil
}

// Load decodes a Config from a YAML file at path.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("clusterconfig: reading %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("clusterconfig: parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
