//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir      string // HOME: config file lives under .filestage/
	SessionDir   string // FILESTAGE_SESSION: session area root
	PermanentDir string // FILESTAGE_PERMANENT: permanent area root
	ExternalDir  string // files outside every managed area
}

// setupTestEnv creates isolated temp directories and sets environment variables
// so all staging operations are sandboxed. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	base := t.TempDir()
	env := &testEnv{
		HomeDir:      t.TempDir(),
		SessionDir:   filepath.Join(base, "z", "temporary"),
		PermanentDir: filepath.Join(base, "z", "permanent"),
		ExternalDir:  t.TempDir(),
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("FILESTAGE_SESSION", env.SessionDir)
	t.Setenv("FILESTAGE_PERMANENT", env.PermanentDir)

	return env
}

// writeFile creates parent directories and writes content, backdating the
// mtime so later rewrites are detectable.
func writeFile(t *testing.T, path, content string) time.Time {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	old := time.Now().Add(-time.Hour).Truncate(time.Second)
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatalf("backdating %s: %v", path, err)
	}
	return old
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

func assertFileContent(t *testing.T, path, want string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if string(data) != want {
		t.Errorf("%s content = %q, want %q", path, data, want)
	}
}

func assertUnder(t *testing.T, root, path string) {
	t.Helper()
	if !strings.HasPrefix(path, root+string(filepath.Separator)) {
		t.Errorf("%s is not under %s", path, root)
	}
}

// countFiles counts regular files below root.
func countFiles(t *testing.T, root string) int {
	t.Helper()
	n := 0
	err := filepath.Walk(root, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			n++
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walking %s: %v", root, err)
	}
	return n
}
