package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.jacobcolvin.com/jton"
)

// Flags holds CLI flag names for codec configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	BoolPackMinLen       string
	PrefixMinLen         string
	ScaledFloatTolerance string
	DisableBinaryPackers string
	MaxDepth             string
}

// Config holds CLI flag values for codec configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags], or load values from YAML with [Config.LoadFile]. Use
// [Config.Options] to produce a [jton.Options].
type Config struct {
	Flags                Flags
	BoolPackMinLen       int     `yaml:"boolPackMinLen"`
	PrefixMinLen         int     `yaml:"prefixMinLen"`
	ScaledFloatTolerance float64 `yaml:"scaledFloatTolerance"`
	DisableBinaryPackers bool    `yaml:"disableBinaryPackers"`
	MaxDepth             int     `yaml:"maxDepth"`
}

// NewConfig returns a [Config] seeded with [jton.DefaultOptions] and
// default flag names.
func NewConfig() *Config {
	d := jton.DefaultOptions()

	return &Config{
		Flags: Flags{
			BoolPackMinLen:       "bool-pack-min-len",
			PrefixMinLen:         "prefix-min-len",
			ScaledFloatTolerance: "scaled-float-tolerance",
			DisableBinaryPackers: "disable-binary-packers",
			MaxDepth:             "max-depth",
		},
		BoolPackMinLen:       d.BoolPackMinLen,
		PrefixMinLen:         d.PrefixMinLen,
		ScaledFloatTolerance: d.ScaledFloatTolerance,
		DisableBinaryPackers: d.DisableBinaryPackers,
		MaxDepth:             d.MaxDepth,
	}
}

// RegisterFlags adds codec configuration flags to the given
// [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.IntVar(&c.BoolPackMinLen, c.Flags.BoolPackMinLen, c.BoolPackMinLen,
		"minimum run length before boolean arrays are bit-packed")
	flags.IntVar(&c.PrefixMinLen, c.Flags.PrefixMinLen, c.PrefixMinLen,
		"minimum shared byte length before strings are prefix-factored")
	flags.Float64Var(&c.ScaledFloatTolerance, c.Flags.ScaledFloatTolerance, c.ScaledFloatTolerance,
		"maximum absolute error tolerated when packing floats as scaled integers")
	flags.BoolVar(&c.DisableBinaryPackers, c.Flags.DisableBinaryPackers, c.DisableBinaryPackers,
		"disable base64 binary packers, keeping only arithmetic/constant/prefix/columnar compression")
	flags.IntVar(&c.MaxDepth, c.Flags.MaxDepth, c.MaxDepth,
		"maximum nesting depth before encode/decode fail")
}

// RegisterCompletions registers shell completions for codec configuration
// flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	for _, flag := range []string{
		c.Flags.BoolPackMinLen,
		c.Flags.PrefixMinLen,
		c.Flags.ScaledFloatTolerance,
		c.Flags.DisableBinaryPackers,
		c.Flags.MaxDepth,
	} {
		if err := cmd.RegisterFlagCompletionFunc(flag, noFileComp); err != nil {
			return fmt.Errorf("registering %s completion: %w", flag, err)
		}
	}

	return nil
}

// LoadFile overlays YAML configuration from path onto c. Only keys
// present in the file are changed.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	return nil
}

// Options produces a [jton.Options] from this configuration.
func (c *Config) Options() jton.Options {
	return jton.Options{
		BoolPackMinLen:       c.BoolPackMinLen,
		PrefixMinLen:         c.PrefixMinLen,
		ScaledFloatTolerance: c.ScaledFloatTolerance,
		DisableBinaryPackers: c.DisableBinaryPackers,
		MaxDepth:             c.MaxDepth,
	}
}
