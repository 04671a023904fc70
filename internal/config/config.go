package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "viralsweeper.yaml"

type Seed struct {
	Hi uint64 `yaml:"hi"`
	Lo uint64 `yaml:"lo"`
}

type Log struct {
	File       string `yaml:"file"`
	Level      string `yaml:"level"`
	MaxSize    int    `yaml:"max_size"` // megabytes
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"` // days
}

type Config struct {
	Mode string `yaml:"mode"`
	Seed *Seed  `yaml:"seed"` // fixed board generation, random if unset
	Log  Log    `yaml:"log"`
}

func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	if c.Mode == "" {
		c.Mode = "production"
	}
	if c.Log.File == "" {
		c.Log.File = "viralsweeper.log"
	}
	if c.Log.Level == "" {
		if c.Development() {
			c.Log.Level = "debug"
		} else {
			c.Log.Level = "info"
		}
	}
	if c.Log.MaxSize == 0 {
		c.Log.MaxSize = 10
	}
	if c.Log.MaxBackups == 0 {
		c.Log.MaxBackups = 3
	}
	if c.Log.MaxAge == 0 {
		c.Log.MaxAge = 28
	}
}

func (c *Config) applyEnv() {
	if Development() {
		c.Mode = "development"
	}
	if file, ok := os.LookupEnv("VIRALSWEEPER_LOG_FILE"); ok && file != "" {
		c.Log.File = file
	}
}

// Load reads the YAML config at path. A missing file yields the defaults;
// environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.setDefaults()

	switch cfg.Mode {
	case "production", "development":
	default:
		return nil, fmt.Errorf("invalid mode %q, want production or development", cfg.Mode)
	}
	if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	return &cfg, nil
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

func (c Config) Fields() logrus.Fields {
	fields := logrus.Fields{
		"mode":            c.Mode,
		"log_file":        c.Log.File,
		"log_level":       c.Log.Level,
		"log_max_size":    c.Log.MaxSize,
		"log_max_backups": c.Log.MaxBackups,
		"log_max_age":     c.Log.MaxAge,
	}
	if c.Seed != nil {
		fields["seed"] = fmt.Sprintf("%d:%d", c.Seed.Hi, c.Seed.Lo)
	}
	return fields
}
