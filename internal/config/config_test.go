package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFilePathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	want := filepath.Join(home, ".filestage", "config.yaml")
	if got := FilePath(); got != want {
		t.Errorf("FilePath() = %s, want %s", got, want)
	}
}

func TestSetWritesConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	Load()

	if err := Set(KeySessionRoot, "/srv/session"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := Get(KeySessionRoot); got != "/srv/session" {
		t.Errorf("Get(%s) = %q", KeySessionRoot, got)
	}

	data, err := os.ReadFile(FilePath())
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	if !strings.Contains(string(data), "/srv/session") {
		t.Errorf("config file missing value:\n%s", data)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FILESTAGE_TOKEN", "uuid")
	Load()

	if got := Get(KeyToken); got != "uuid" {
		t.Errorf("Get(%s) = %q, want uuid", KeyToken, got)
	}
}
