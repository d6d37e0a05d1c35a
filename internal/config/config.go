// Package config loads decoder policy from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gonzalop/ftpcmd"
)

// Config is the on-disk decoder policy.
//
// Example file:
//
//	max_reserved_port: 1024
//	legacy_aliases: false
//	command_groups: [active_mode]
//	disable_commands: [MKD]
type Config struct {
	// MaxReservedPort is the highest port PORT may not name.
	MaxReservedPort uint16 `yaml:"max_reserved_port"`

	// LegacyAliases enables XCWD, XCUP, XPWD, XMKD and XRMD.
	LegacyAliases bool `yaml:"legacy_aliases"`

	// DisableCommands lists individual verbs to refuse.
	DisableCommands []string `yaml:"disable_commands"`

	// CommandGroups lists predefined groups to refuse:
	// "legacy", "active_mode", "write" or "data".
	CommandGroups []string `yaml:"command_groups"`
}

// commandGroups maps group names to the decoder's predefined verb groups.
var commandGroups = map[string][]string{
	"legacy":      ftpcmd.LegacyCommands,
	"active_mode": ftpcmd.ActiveModeCommands,
	"write":       ftpcmd.WriteCommands,
	"data":        ftpcmd.DataCommands,
}

// DefaultConfig returns the policy of a decoder built without options.
func DefaultConfig() Config {
	return Config{
		MaxReservedPort: ftpcmd.DefaultMaxReservedPort,
		LegacyAliases:   true,
	}
}

// Load reads a YAML policy file using strict parsing.
// An empty path returns DefaultConfig.
func Load(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("failed to open decoder config: %w", err)
	}
	defer file.Close()

	cfg, err := Decode(file)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses YAML policy from r. Fields that are not set keep their
// defaults; unknown fields are an error.
func Decode(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("YAML syntax error in decoder config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that every group name is known.
// Verb names are checked by ftpcmd.NewDecoder.
func (c Config) Validate() error {
	for _, g := range c.CommandGroups {
		if _, ok := commandGroups[strings.ToLower(g)]; !ok {
			return fmt.Errorf("unknown command group %q", g)
		}
	}
	return nil
}

// Options converts the policy into decoder options.
func (c Config) Options() []ftpcmd.Option {
	opts := []ftpcmd.Option{
		ftpcmd.WithMaxReservedPort(c.MaxReservedPort),
		ftpcmd.WithLegacyAliases(c.LegacyAliases),
	}
	for _, g := range c.CommandGroups {
		opts = append(opts, ftpcmd.WithDisableCommands(commandGroups[strings.ToLower(g)]...))
	}
	if len(c.DisableCommands) > 0 {
		opts = append(opts, ftpcmd.WithDisableCommands(c.DisableCommands...))
	}
	return opts
}
