// Package config loads hubboard settings from an optional YAML file and
// HUBBOARD_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	Session SessionConfig `mapstructure:"session"`
	UI      UIConfig      `mapstructure:"ui"`
}

type ServerConfig struct {
	Address  string `mapstructure:"address"`
	HTTPPort string `mapstructure:"http_port"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

type SessionConfig struct {
	Cookie        string        `mapstructure:"cookie"`
	TTL           time.Duration `mapstructure:"ttl"`
	Max           int           `mapstructure:"max"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

type UIConfig struct {
	Timezone string `mapstructure:"timezone"`
}

const EnvPrefix = "HUBBOARD"

// SetDefaults registers every key so env overrides work without a file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.address", "")
	v.SetDefault("server.http_port", "8080")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.file", "")
	v.SetDefault("session.cookie", "hubboard_session")
	v.SetDefault("session.ttl", "30m")
	v.SetDefault("session.max", 1000)
	v.SetDefault("session.sweep_interval", "1m")
	v.SetDefault("ui.timezone", "Local")
}

// New returns a viper instance wired for hubboard: defaults, env, and the
// optional config file at path.
func New(path string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
	}
	return v
}

// Load reads the file (if any) and decodes the result.
func Load(v *viper.Viper) (*Config, error) {
	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	var errs []error
	if p, err := strconv.Atoi(c.Server.HTTPPort); err != nil || p < 1 || p > 65535 {
		errs = append(errs, fmt.Errorf("server.http_port: invalid port %q", c.Server.HTTPPort))
	}
	if c.Session.Cookie == "" {
		errs = append(errs, errors.New("session.cookie: must not be empty"))
	}
	if c.Session.TTL < 0 {
		errs = append(errs, fmt.Errorf("session.ttl: negative duration %s", c.Session.TTL))
	}
	if c.Session.Max < 0 {
		errs = append(errs, fmt.Errorf("session.max: negative value %d", c.Session.Max))
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, fmt.Errorf("ui.timezone: %w", err))
	}
	return errors.Join(errs...)
}

// Location resolves ui.timezone; empty and "Local" mean the host zone.
func (c *Config) Location() (*time.Location, error) {
	switch c.UI.Timezone {
	case "", "Local":
		return time.Local, nil
	}
	return time.LoadLocation(c.UI.Timezone)
}
