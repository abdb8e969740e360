package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	LogLevel string        `yaml:"log-level" env:"CONNECT4_LOG_LEVEL" env-default:"info"`
	AIName   string        `yaml:"ai-name" env:"CONNECT4_AI_NAME" env-default:"AI"`
	AIDelay  time.Duration `yaml:"ai-delay" env:"CONNECT4_AI_DELAY" env-default:"2s"`
	Unicode  bool          `yaml:"unicode" env:"CONNECT4_UNICODE" env-default:"false"`
	NoColor  bool          `yaml:"no-color" env:"CONNECT4_NO_COLOR" env-default:"false"`
	Marks    Marks         `yaml:"marks"`
}

type Marks struct {
	First  string `yaml:"first" env:"CONNECT4_MARK_FIRST" env-default:"X"`
	Second string `yaml:"second" env:"CONNECT4_MARK_SECOND" env-default:"O"`
}

// DefaultPath is where Load looks for a config file when none is given.
var DefaultPath = filepath.Join(xdg.ConfigHome, "connect4", "config.yaml")

// Load reads the config file at path, or DefaultPath if path is empty.
// A missing default file is not an error; the environment and defaults
// still apply. Zero values in the file fall back to the defaults.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	cfg := &Config{}
	_, err := os.Stat(path)
	switch {
	case err == nil:
		logrus.WithField("path", path).Debug("reading config file")
		err = cleanenv.ReadConfig(path, cfg)
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log-level: %w", err)
	}
	if c.AIDelay < 0 {
		return errors.New("ai-delay must not be negative")
	}
	for _, m := range []string{c.Marks.First, c.Marks.Second} {
		if utf8.RuneCountInString(m) != 1 {
			return fmt.Errorf("marks must be a single character: %q", m)
		}
	}
	if c.Marks.First == c.Marks.Second {
		return fmt.Errorf("marks must differ: %q", c.Marks.First)
	}
	return nil
}

// Level is the parsed LogLevel.
func (c *Config) Level() logrus.Level {
	l, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return l
}

func (m Marks) Runes() [2]rune {
	f, _ := utf8.DecodeRuneInString(m.First)
	s, _ := utf8.DecodeRuneInString(m.Second)
	return [2]rune{f, s}
}

// Default is the configuration used when nothing was loaded.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		AIName:   "AI",
		AIDelay:  2 * time.Second,
		Marks:    Marks{First: "X", Second: "O"},
	}
}

// FromArgs finds the *Config handed to subcommands.Execute.
func FromArgs(args []interface{}) *Config {
	for _, a := range args {
		if c, ok := a.(*Config); ok {
			return c
		}
	}
	return Default()
}

// Explicit reports which flags were set on the command line, so that
// unset flags can fall back to the config.
func Explicit(f *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	if f == nil {
		return set
	}
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	return set
}
