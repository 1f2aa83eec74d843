package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	is.Equal(c.GetBool("debug"), false)
	is.Equal(c.GetString("date"), "")
	is.Equal(c.GetBool("ttable"), true)
	is.Equal(c.GetFloat64("ttable-mem-fraction"), 0.05)
	is.Equal(c.GetInt("sweep-workers"), 0)
}

func TestLoad(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	is.NoErr(c.Load([]string{"--debug", "-d", "2020-03-13", "--sweep-workers", "4"}))
	is.Equal(c.GetBool("debug"), true)
	is.Equal(c.GetString("date"), "2020-03-13")
	is.Equal(c.GetInt("sweep-workers"), 4)
	// Untouched flags keep their defaults.
	is.Equal(c.GetBool("ttable"), true)
}

func TestLoadBadFlag(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	is.True(c.Load([]string{"--no-such-flag"}) != nil)
}
