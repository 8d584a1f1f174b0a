// Package tenantcfg loads the YAML file that maps tenant names to the
// directory their DBF files live in and the key text used to transform them.
// This is ambient configuration plumbing around the pure pipeline core; the
// core itself never reads a config file (spec.md §5).
package tenantcfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/xbasekit/sxdbf/internal/keymaterial"
	"github.com/xbasekit/sxdbf/pkg/types"
)

// Tenant is one entry in the config file.
type Tenant struct {
	Name    string `yaml:"name"`
	Dir     string `yaml:"dir"`
	KeyText string `yaml:"key"`
}

// Config is the top-level shape of a tenant config file.
type Config struct {
	Tenants []Tenant `yaml:"tenants"`
}

// Load reads and parses a tenant config file from path.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("tenantcfg: read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("tenantcfg: parse %s: %w", path, err)
	}
	for i, t := range cfg.Tenants {
		if t.Name == "" {
			return Config{}, fmt.Errorf("tenantcfg: tenant at index %d has no name", i)
		}
		if t.Dir == "" {
			return Config{}, fmt.Errorf("tenantcfg: tenant %q has no dir", t.Name)
		}
	}
	return cfg, nil
}

// Key returns the tenant's key text normalized to the cipher's 8-byte form.
func (t Tenant) Key() types.Key8 {
	return types.Key8(keymaterial.Build8(t.KeyText))
}

// Find returns the tenant with the given name, or false if none matches.
func (c Config) Find(name string) (Tenant, bool) {
	for _, t := range c.Tenants {
		if t.Name == name {
			return t, true
		}
	}
	return Tenant{}, false
}
