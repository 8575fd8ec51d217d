package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9000\ndatabase:\n  uri: mongodb://localhost:27017/univo\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("port: got %d, want 9000", cfg.Server.Port)
	}
	if cfg.Database.URI != "mongodb://localhost:27017/univo" {
		t.Errorf("uri: got %q", cfg.Database.URI)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9000\ndatabase:\n  uri: mongodb://localhost:27017/univo\n")
	t.Setenv("UNIVO_PORT", "7777")
	t.Setenv("UNIVO_MONGO_URI", "mongodb://db:27017/other")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != 7777 {
		t.Errorf("port override: got %d, want 7777", cfg.Server.Port)
	}
	if cfg.Database.URI != "mongodb://db:27017/other" {
		t.Errorf("uri override: got %q", cfg.Database.URI)
	}
}

func TestLoadConfigDefaultsPort(t *testing.T) {
	path := writeConfig(t, "database:\n  uri: mongodb://localhost:27017/univo\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("default port: got %d, want 8080", cfg.Server.Port)
	}
}

func TestLoadConfigRequiresURI(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9000\n")
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for missing database uri")
	}
}
