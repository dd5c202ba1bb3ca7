package config

import (
	"os"
	"path/filepath"
	"testing"

	mdwerror "github.com/msto63/st4info/foundation/core/error"
	mdwlog "github.com/msto63/st4info/foundation/core/log"
	"github.com/msto63/st4info/pkg/core/version"
)

func TestConfig_applyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	def := version.Default()

	if cfg.General.Application != def.Application {
		t.Errorf("General.Application = %v, want %v", cfg.General.Application, def.Application)
	}
	if cfg.General.Version != def.String() {
		t.Errorf("General.Version = %v, want %v", cfg.General.Version, def.String())
	}
	if cfg.General.DataModelVersion != def.DataModel {
		t.Errorf("General.DataModelVersion = %v, want %v", cfg.General.DataModelVersion, def.DataModel)
	}
	if cfg.General.LogLevel != "info" {
		t.Errorf("General.LogLevel = %v, want info", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "plain" {
		t.Errorf("General.LogFormat = %v, want plain", cfg.General.LogFormat)
	}
	if cfg.Template.ArgNameInfo != "info" {
		t.Errorf("Template.ArgNameInfo = %v, want info", cfg.Template.ArgNameInfo)
	}
	if cfg.Template.WrapColumn != 0 {
		t.Errorf("Template.WrapColumn = %v, want 0", cfg.Template.WrapColumn)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults error = %v", err)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/config.toml")
	if err == nil {
		t.Fatal("Load() expected error for non-existent file")
	}
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("Load() error code = %v, want NOT_FOUND", mdwerror.GetCode(err))
	}
}

func TestLoad_ValidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	configContent := `
[general]
application = "CodeGen"
version = "2.12.1.77"
data_model_version = 2012
log_level = "debug"

[template]
arg_name_info = "meta"
wrap_column = 72
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.Application != "CodeGen" {
		t.Errorf("General.Application = %v, want CodeGen", cfg.General.Application)
	}
	if cfg.Level() != mdwlog.LevelDebug {
		t.Errorf("Level() = %v, want debug", cfg.Level())
	}
	if cfg.Format() != mdwlog.FormatPlain {
		t.Errorf("Format() = %v, want plain (default)", cfg.Format())
	}
	if cfg.Template.ArgNameInfo != "meta" {
		t.Errorf("Template.ArgNameInfo = %v, want meta", cfg.Template.ArgNameInfo)
	}
	if cfg.Template.WrapColumn != 72 {
		t.Errorf("Template.WrapColumn = %v, want 72", cfg.Template.WrapColumn)
	}

	app, err := cfg.AppInfo()
	if err != nil {
		t.Fatalf("AppInfo() error = %v", err)
	}
	if app.String() != "2.12.1.77" {
		t.Errorf("AppInfo().String() = %v, want 2.12.1.77", app.String())
	}
	if !app.IsVersionDataModel()["v2012"] {
		t.Error("IsVersionDataModel()[v2012] = false, want true")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yml")

	configContent := `
general:
  log_level: warn
  log_format: json
template:
  arg_name_info: info
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Level() != mdwlog.LevelWarn {
		t.Errorf("Level() = %v, want warn", cfg.Level())
	}
	if cfg.Format() != mdwlog.FormatJSON {
		t.Errorf("Format() = %v, want json", cfg.Format())
	}
	if cfg.General.Application != version.Default().Application {
		t.Errorf("General.Application = %v, want default", cfg.General.Application)
	}
}

func TestLoad_InvalidContent(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"broken toml", "config.toml", "[general\nlog_level = "},
		{"broken yaml", "config.yaml", "general: [unclosed"},
		{"unknown extension", "config.ini", "[general]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to write test config: %v", err)
			}

			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() expected error")
			}
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
				t.Errorf("Load() error code = %v, want INVALID_CONFIG", mdwerror.GetCode(err))
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"numeric level", func(c *Config) { c.General.LogLevel = "5" }, false},
		{"bad level", func(c *Config) { c.General.LogLevel = "verbose" }, true},
		{"level out of range", func(c *Config) { c.General.LogLevel = "6" }, true},
		{"bad format", func(c *Config) { c.General.LogFormat = "xml" }, true},
		{"bad version", func(c *Config) { c.General.Version = "one.two" }, true},
		{"negative data model", func(c *Config) { c.General.DataModelVersion = -1 }, true},
		{"arg name with dot", func(c *Config) { c.Template.ArgNameInfo = "my.info" }, true},
		{"arg name leading digit", func(c *Config) { c.Template.ArgNameInfo = "1info" }, true},
		{"arg name underscore", func(c *Config) { c.Template.ArgNameInfo = "_info2" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
				t.Errorf("Validate() error code = %v, want INVALID_CONFIG", mdwerror.GetCode(err))
			}
		})
	}
}

func TestConfig_ApplyEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFormat, "console")

	cfg := Default()
	cfg.ApplyEnv()

	if cfg.Level() != mdwlog.LevelDebug {
		t.Errorf("Level() = %v, want debug", cfg.Level())
	}
	if cfg.Format() != mdwlog.FormatConsole {
		t.Errorf("Format() = %v, want console", cfg.Format())
	}
}

func TestLoadFromEnv(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "run.toml")
	if err := os.WriteFile(configPath, []byte("[general]\nlog_level = \"error\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	t.Setenv(EnvConfig, configPath)
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogFormat, "")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Level() != mdwlog.LevelError {
		t.Errorf("Level() = %v, want error", cfg.Level())
	}

	t.Setenv(EnvLogLevel, "off")
	cfg, err = LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Level() != mdwlog.LevelOff {
		t.Errorf("Level() = %v, want off from environment", cfg.Level())
	}
}
