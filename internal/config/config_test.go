package config

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test path defaults
	if cfg.Paths.CreatorAssets != "creator_project/temp/" {
		t.Errorf("expected creator assets creator_project/temp/, got %s", cfg.Paths.CreatorAssets)
	}
	if cfg.Paths.OutputDir != "json/" {
		t.Errorf("expected output dir json/, got %s", cfg.Paths.OutputDir)
	}
	if cfg.Paths.AssetPath != "" {
		t.Errorf("expected empty asset path, got %s", cfg.Paths.AssetPath)
	}

	// Test output defaults
	if cfg.Output.Format != "json" {
		t.Errorf("expected format json, got %s", cfg.Output.Format)
	}
	if cfg.Output.DesignWidth != 960 || cfg.Output.DesignHeight != 640 {
		t.Errorf("expected design 960x640, got %gx%g", cfg.Output.DesignWidth, cfg.Output.DesignHeight)
	}
	if cfg.Output.Indent != 4 {
		t.Errorf("expected indent 4, got %d", cfg.Output.Indent)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
	if cfg.Logging.MaxSizeMB != 10 || cfg.Logging.MaxBackups != 3 || cfg.Logging.MaxAgeDays != 30 || !cfg.Logging.Compress {
		t.Errorf("unexpected rotation defaults %+v", cfg.Logging)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	yamlContent := `
paths:
  asset_path: "creator/"
  creator_assets: "/opt/creator/temp/"
  output_dir: "out/"

output:
  format: "code"
  design_width: 1280
  design_height: 720
  indent: 2

logging:
  level: "debug"
  log_file: "fireconv.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Paths.AssetPath != "creator/" {
		t.Errorf("expected asset path creator/, got %s", cfg.Paths.AssetPath)
	}
	if cfg.Paths.CreatorAssets != "/opt/creator/temp/" {
		t.Errorf("expected creator assets /opt/creator/temp/, got %s", cfg.Paths.CreatorAssets)
	}
	if cfg.Paths.OutputDir != "out/" {
		t.Errorf("expected output dir out/, got %s", cfg.Paths.OutputDir)
	}
	if cfg.Output.Format != "code" {
		t.Errorf("expected format code, got %s", cfg.Output.Format)
	}
	if cfg.Output.DesignWidth != 1280 || cfg.Output.DesignHeight != 720 {
		t.Errorf("expected design 1280x720, got %gx%g", cfg.Output.DesignWidth, cfg.Output.DesignHeight)
	}
	if cfg.Output.Indent != 2 {
		t.Errorf("expected indent 2, got %d", cfg.Output.Indent)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "fireconv.log" {
		t.Errorf("expected log file 'fireconv.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)
	if err := os.WriteFile(configPath, []byte("output:\n  indent: 0\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Output.Indent != 0 {
		t.Errorf("expected indent 0, got %d", cfg.Output.Indent)
	}
	// Untouched keys keep their defaults.
	if cfg.Output.Format != "json" || cfg.Paths.OutputDir != "json/" {
		t.Errorf("expected defaults to survive a partial file, got %+v", cfg)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
output:
  indent: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/fireconv.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"unknown format", func(c *Config) { c.Output.Format = "flatbuffers" }},
		{"zero width", func(c *Config) { c.Output.DesignWidth = 0 }},
		{"negative indent", func(c *Config) { c.Output.Indent = -1 }},
		{"empty output dir", func(c *Config) { c.Paths.OutputDir = "" }},
		{"negative log backups", func(c *Config) { c.Logging.MaxBackups = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	// No config file exists - should return empty
	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, FileName)
	if err := os.WriteFile(configPath, []byte("output:\n  indent: 2\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Errorf("expected to find %s in current directory", FileName)
	}
}

func TestParseFlags(t *testing.T) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	f, err := ParseFlags(fs, []string{
		"-cocospath", "creator/",
		"-creatorassets", "/opt/temp/",
		"-jsonpath", "build/json/",
		"-format", "code",
		"-debug",
		"scene.fire",
	})
	if err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if fs.NArg() != 1 || fs.Arg(0) != "scene.fire" {
		t.Errorf("expected one positional argument, got %v", fs.Args())
	}

	cfg := Default()
	f.apply(cfg)

	if cfg.Paths.AssetPath != "creator/" {
		t.Errorf("expected asset path from flag, got %s", cfg.Paths.AssetPath)
	}
	if cfg.Paths.CreatorAssets != "/opt/temp/" {
		t.Errorf("expected creator assets from flag, got %s", cfg.Paths.CreatorAssets)
	}
	if cfg.Paths.OutputDir != "build/json/" {
		t.Errorf("expected output dir from flag, got %s", cfg.Paths.OutputDir)
	}
	if cfg.Output.Format != "code" {
		t.Errorf("expected format from flag, got %s", cfg.Output.Format)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug level from flag, got %s", cfg.Logging.Level)
	}
}

func TestApplyFlags_Unset(t *testing.T) {
	cfg := Default()
	(&Flags{}).apply(cfg)
	if *cfg != *Default() {
		t.Errorf("empty flags must not change the config, got %+v", cfg)
	}

	var nilFlags *Flags
	nilFlags.apply(cfg)
	if nilFlags.ConfigPath() != "" {
		t.Error("nil flags must have no config path")
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	yamlContent := `
paths:
  asset_path: "from-file/"
  output_dir: "file-out/"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(&Flags{Config: configPath, CocosPath: "from-flag/"})
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Asset path should come from the flag, not the file
	if cfg.Paths.AssetPath != "from-flag/" {
		t.Errorf("expected asset path from flag, got %s", cfg.Paths.AssetPath)
	}
	// Output dir should come from the file since no flag override
	if cfg.Paths.OutputDir != "file-out/" {
		t.Errorf("expected output dir from file, got %s", cfg.Paths.OutputDir)
	}
}

func TestLoadInvalidFormatFlag(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if _, err := Load(&Flags{Format: "xml"}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg := Default()
	cfg.Paths.AssetPath = "creator/"
	cfg.Output.Format = "code"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loading saved config: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("saved config differs:\ngot  %+v\nwant %+v", loaded, cfg)
	}
}

func TestSave(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", filepath.Join(tmpDir, "home"))
	t.Setenv("APPDATA", filepath.Join(tmpDir, "appdata"))

	cfg := Default()
	cfg.Output.Format = "code"
	cfg.Output.Indent = 0

	path, err := cfg.Save()
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if path != filepath.Join(ConfigDir(), FileName) {
		t.Errorf("unexpected save path %s", path)
	}

	// No ./fireconv.yaml, so Load falls back to the saved file.
	loaded, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Output.Format != "code" || loaded.Output.Indent != 0 {
		t.Errorf("saved settings not picked up: %+v", loaded.Output)
	}
}
