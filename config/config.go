// Package config holds the knobs shared by the CLI and the shell.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// A Config wraps viper so settings can come from flags or from PUZZLE_*
// environment variables, flags winning.
type Config struct {
	v *viper.Viper
}

func DefaultConfig() *Config {
	v := viper.New()
	v.SetDefault("debug", false)
	v.SetDefault("date", "")
	v.SetDefault("ttable", true)
	v.SetDefault("ttable-mem-fraction", 0.05)
	v.SetDefault("sweep-workers", 0)

	v.SetEnvPrefix("puzzle")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// Load parses command-line arguments into the config.
func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("puzzle-a-day", pflag.ContinueOnError)
	fs.Bool("debug", c.v.GetBool("debug"), "enable debug logging")
	fs.StringP("date", "d", c.v.GetString("date"),
		"solve for a specific date, formatted like 2020-03-13; defaults to today")
	fs.Bool("ttable", c.v.GetBool("ttable"),
		"remember failed search states in a transposition table")
	fs.Float64("ttable-mem-fraction", c.v.GetFloat64("ttable-mem-fraction"),
		"fraction of system memory the transposition table may use")
	fs.Int("sweep-workers", c.v.GetInt("sweep-workers"),
		"concurrent solvers for the year sweep; 0 means one per CPU")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return c.v.BindPFlags(fs)
}

func (c *Config) GetBool(key string) bool       { return c.v.GetBool(key) }
func (c *Config) GetString(key string) string   { return c.v.GetString(key) }
func (c *Config) GetInt(key string) int         { return c.v.GetInt(key) }
func (c *Config) GetFloat64(key string) float64 { return c.v.GetFloat64(key) }

// AllSettings is for logging the effective config at startup.
func (c *Config) AllSettings() map[string]any {
	return c.v.AllSettings()
}
