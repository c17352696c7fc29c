package harness

import (
	"fmt"
	"strconv"
	"strings"
)

// Environment variables read by LoadConfig.
const (
	EnvIncludeTags = "MATHUTILS_INCLUDE_TAGS"
	EnvExcludeTags = "MATHUTILS_EXCLUDE_TAGS"
	EnvDisabled    = "MATHUTILS_DISABLED"
	EnvEnabled     = "MATHUTILS_ENABLED"
	EnvRepeat      = "MATHUTILS_REPEAT"
)

// Override changes how a named case runs.
type Override struct {
	// Enabled, when set, forces the case on or off.
	Enabled *bool
	// Repeat, when positive, replaces the case's repetition count.
	Repeat int
}

// Config is the run configuration: tag filters plus per-case overrides keyed
// by case ID or bare case name.
type Config struct {
	IncludeTags []string
	ExcludeTags []string
	Overrides   map[string]Override
}

// LoadConfig builds a Config from environment-style lookups, typically
// os.LookupEnv. MATHUTILS_DISABLED and MATHUTILS_ENABLED are comma separated
// case names; MATHUTILS_REPEAT is a comma separated list of name=count.
func LoadConfig(lookup func(string) (string, bool)) (Config, error) {
	var cfg Config

	if v, ok := lookup(EnvIncludeTags); ok {
		cfg.IncludeTags = splitList(v)
	}
	if v, ok := lookup(EnvExcludeTags); ok {
		cfg.ExcludeTags = splitList(v)
	}

	if v, ok := lookup(EnvDisabled); ok {
		for _, name := range splitList(v) {
			cfg.setEnabled(name, false)
		}
	}
	if v, ok := lookup(EnvEnabled); ok {
		for _, name := range splitList(v) {
			cfg.setEnabled(name, true)
		}
	}

	if v, ok := lookup(EnvRepeat); ok {
		for _, item := range splitList(v) {
			name, count, found := strings.Cut(item, "=")
			name = strings.TrimSpace(name)
			if !found || name == "" {
				return Config{}, fmt.Errorf("%s: invalid entry %q, want name=count", EnvRepeat, item)
			}
			n, err := strconv.Atoi(strings.TrimSpace(count))
			if err != nil || n < 1 {
				return Config{}, fmt.Errorf("%s: invalid count for %q: %q", EnvRepeat, name, count)
			}
			o := cfg.override(name)
			o.Repeat = n
			cfg.Overrides[name] = o
		}
	}

	return cfg, nil
}

func (c *Config) override(name string) Override {
	if c.Overrides == nil {
		c.Overrides = make(map[string]Override)
	}
	return c.Overrides[name]
}

func (c *Config) setEnabled(name string, enabled bool) {
	o := c.override(name)
	o.Enabled = &enabled
	c.Overrides[name] = o
}

// lookup returns the override for a case, preferring its full ID.
func (c Config) lookup(info Info) (Override, bool) {
	if o, ok := c.Overrides[info.ID]; ok {
		return o, true
	}
	o, ok := c.Overrides[info.Name]
	return o, ok
}

// apply returns a copy of the case with any override applied.
func (c Config) apply(cs Case, info Info) Case {
	o, ok := c.lookup(info)
	if !ok {
		return cs
	}
	if o.Enabled != nil {
		cs.Disabled = !*o.Enabled
		if cs.Disabled {
			cs.DisabledReason = "disabled by configuration"
		}
	}
	if o.Repeat > 0 {
		cs.Repeat = o.Repeat
	}
	return cs
}
