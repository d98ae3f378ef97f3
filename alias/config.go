package alias

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the YAML form of a set of registrations.
//
//	aliases:
//	  - abstract: Logger
//	    alias: log
type Config struct {
	Aliases []Entry `yaml:"aliases"`
}

// DecodeConfig reads a Config from r. Unknown fields are rejected.
//
// The input must hold a single YAML document; an empty input decodes to an
// empty Config. Entries with an empty (or absent) abstract or alias are
// rejected, so the config format cannot express the empty name even though
// Registry accepts it. Any other string, whitespace included, is kept as is.
func DecodeConfig(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		return nil, fmt.Errorf("%w: more than one YAML document", ErrInvalidConfig)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig reads and decodes the YAML file at path.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	for i, e := range c.Aliases {
		var missing []string
		if e.Abstract == "" {
			missing = append(missing, "abstract")
		}
		if e.Alias == "" {
			missing = append(missing, "alias")
		}
		if len(missing) > 0 {
			return fmt.Errorf("%w: aliases[%d] missing %s", ErrInvalidConfig, i, strings.Join(missing, ", "))
		}
	}
	return nil
}

// Apply registers every entry into reg, in file order.
//
// It stops at the first failing entry; the returned error wraps the
// registry's error so errors.As still finds InvalidOperationError.
func (c *Config) Apply(reg Interface) error {
	for i, e := range c.Aliases {
		if err := reg.Alias(e.Abstract, e.Alias); err != nil {
			return fmt.Errorf("aliases[%d]: %w", i, err)
		}
	}
	return nil
}
