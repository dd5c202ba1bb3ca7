// File: config.go
// Title: Run Configuration
// Description: Typed configuration of a template expansion run. Loaded from
//              TOML or YAML, completed with defaults and overridden from the
//              environment.
// Author: msto63
// Version: v0.2.0
// Created: 2025-12-06
// Modified: 2026-10-18
//
// Change History:
// - 2025-12-06 v0.1.0: Typed TOML configuration
// - 2026-10-18 v0.2.0: General and template sections, YAML support, Validate

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/st4info/foundation/core/error"
	mdwlog "github.com/msto63/st4info/foundation/core/log"
	"github.com/msto63/st4info/foundation/utils/filex"
	"github.com/msto63/st4info/pkg/core/version"
)

// Environment variables read by LoadFromEnv and ApplyEnv
const (
	EnvConfig    = "ST4INFO_CONFIG"
	EnvLogLevel  = "ST4INFO_LOG_LEVEL"
	EnvLogFormat = "ST4INFO_LOG_FORMAT"
)

// DefaultArgNameInfo is the name under which templates see the info object
const DefaultArgNameInfo = "info"

// Config holds the complete run configuration
type Config struct {
	General  GeneralConfig  `toml:"general" yaml:"general"`
	Template TemplateConfig `toml:"template" yaml:"template"`
}

// GeneralConfig holds application identity and logging settings
type GeneralConfig struct {
	Application      string `toml:"application" yaml:"application"`
	Version          string `toml:"version" yaml:"version"`
	DataModelVersion int    `toml:"data_model_version" yaml:"data_model_version"`
	LogLevel         string `toml:"log_level" yaml:"log_level"`
	LogFormat        string `toml:"log_format" yaml:"log_format"`
}

// TemplateConfig holds settings of the template expansion
type TemplateConfig struct {
	ArgNameInfo string `toml:"arg_name_info" yaml:"arg_name_info"`

	// WrapColumn <= 0 means no line wrapping
	WrapColumn int `toml:"wrap_column" yaml:"wrap_column"`
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML (.toml) or YAML (.yaml, .yml) file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerror.New("config file not found").
				WithCode(mdwerror.CodeNotFound).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
		return nil, mdwerror.Wrap(err, "failed to read config").
			WithCode(mdwerror.CodeIO).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithOperation("config.Load").
			WithDetail("path", path)
	}
	return cfg, nil
}

// Parse decodes configuration data in the format named by ext and applies
// the defaults. ext is a file extension like ".toml" or ".yaml".
func Parse(data []byte, ext string) (*Config, error) {
	var cfg Config

	switch strings.ToLower(ext) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, mdwerror.Wrap(err, "invalid TOML").WithCode(mdwerror.CodeInvalidConfig)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, mdwerror.Wrap(err, "invalid YAML").WithCode(mdwerror.CodeInvalidConfig)
		}
	default:
		return nil, mdwerror.Newf("unsupported config format %q", ext).
			WithCode(mdwerror.CodeInvalidConfig)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadFromEnv loads the file named by ST4INFO_CONFIG, or one of the default
// locations. Without any config file the built-in defaults are used. The
// environment overrides are applied in every case.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfig)
	if path == "" {
		path, _ = filex.FirstFile(defaultPaths()...)
	}

	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return nil, err
		}
	}

	cfg.ApplyEnv()
	return cfg, nil
}

func defaultPaths() []string {
	paths := []string{"./st4info.toml", "./st4info.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config/st4info/config.toml"),
			filepath.Join(home, ".config/st4info/config.yaml"))
	}
	return paths
}

// ApplyEnv overrides log level and format from the environment
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.General.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.General.LogFormat = v
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	def := version.Default()

	if c.General.Application == "" {
		c.General.Application = def.Application
	}
	if c.General.Version == "" {
		c.General.Version = def.String()
	}
	if c.General.DataModelVersion == 0 {
		c.General.DataModelVersion = def.DataModel
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = mdwlog.DefaultLevel().String()
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = mdwlog.FormatPlain.String()
	}

	if c.Template.ArgNameInfo == "" {
		c.Template.ArgNameInfo = DefaultArgNameInfo
	}
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return c.invalid("general.log_level", c.General.LogLevel)
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return c.invalid("general.log_format", c.General.LogFormat)
	}
	if _, err := c.AppInfo(); err != nil {
		return c.invalid("general.version", c.General.Version)
	}
	if c.General.DataModelVersion < 0 {
		return c.invalid("general.data_model_version", c.General.DataModelVersion)
	}
	if !isIdentifier(c.Template.ArgNameInfo) {
		return c.invalid("template.arg_name_info", c.Template.ArgNameInfo)
	}
	return nil
}

func (c *Config) invalid(key string, value any) error {
	return mdwerror.Newf("invalid value for %s", key).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("key", key).
		WithDetail("value", value)
}

// AppInfo returns the application version described by the general section
func (c *Config) AppInfo() (version.AppInfo, error) {
	info := version.Default()
	info.Application = c.General.Application
	info.DataModel = c.General.DataModelVersion
	return info.WithVersion(c.General.Version)
}

// Level returns the configured log level, falling back to the default
func (c *Config) Level() mdwlog.Level {
	level, err := mdwlog.ParseLevel(c.General.LogLevel)
	if err != nil {
		return mdwlog.DefaultLevel()
	}
	return level
}

// Format returns the configured log format, falling back to plain output
func (c *Config) Format() mdwlog.Format {
	format, err := mdwlog.ParseFormat(c.General.LogFormat)
	if err != nil {
		return mdwlog.FormatPlain
	}
	return format
}

// isIdentifier reports whether s can be used as a template field name
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
