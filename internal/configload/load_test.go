package configload

import (
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	LogLevel string     `yaml:"logLevel"`
	Server   testServer `yaml:"server"`
}

type testServer struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadLayered_AppliesBaseThenEnvOverlay(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", "logLevel: info\nserver:\n  host: 0.0.0.0\n  port: 8080\n")
	writeFile(t, dir, "local.yaml", "logLevel: debug\n")

	var cfg testConfig
	if err := LoadLayered(dir, &cfg); err != nil {
		t.Fatalf("LoadLayered: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug (overlay should win)", cfg.LogLevel)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080 (base should survive)", cfg.Server.Port)
	}
}

func TestApplyEnv_OverridesNestedField(t *testing.T) {
	cfg := testConfig{Server: testServer{Host: "0.0.0.0", Port: 8080}}

	t.Setenv("APP_SERVER__PORT", "9000")
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want unchanged 0.0.0.0", cfg.Server.Host)
	}
}

func TestApplyEnv_IgnoresUnprefixedVars(t *testing.T) {
	cfg := testConfig{LogLevel: "info"}
	t.Setenv("LOG_LEVEL", "debug") // no APP_ prefix
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want unchanged info", cfg.LogLevel)
	}
}
