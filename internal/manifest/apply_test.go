package manifest

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/agentx-labs/filestage/internal/area"
	"github.com/agentx-labs/filestage/internal/stage"
	"github.com/agentx-labs/filestage/internal/token"
	"github.com/spf13/afero"
)

var roots = area.Static{
	Session:   filepath.FromSlash("/z/temporary"),
	Permanent: filepath.FromSlash("/z/permanent"),
}

func newStager(t *testing.T) (*stage.Stager, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, dir := range []string{roots.Session, roots.Permanent} {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
	}
	return stage.New(roots, stage.WithFs(fs), stage.WithTokens(token.NewSequence(0xa0))), fs
}

func TestApplyValidManifest(t *testing.T) {
	s, fs := newStager(t)
	baseDir := filepath.FromSlash("/work")
	if err := afero.WriteFile(fs, filepath.Join(baseDir, "input", "upload.txt"), []byte("uploaded"), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := ParseFile(testPath("valid.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	results, err := Apply(s, m, baseDir)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("len(results) = %d, want 4", len(results))
	}

	want := []struct {
		action Action
		area   string
		path   string
	}{
		{ActionWritten, "session", filepath.Join(roots.Session, "a0", "notes.txt")},
		{ActionWritten, "permanent", filepath.Join(roots.Permanent, "report.csv")},
		{ActionCreated, "session", filepath.Join(roots.Session, "a1", "placeholder.bin")},
		{ActionImported, "session", filepath.Join(roots.Session, "a2", "upload.txt")},
	}
	for i, w := range want {
		got := results[i]
		if got.Index != i || got.Action != w.action || got.Area != w.area || got.Path != w.path {
			t.Errorf("results[%d] = %+v, want %+v", i, got, w)
		}
	}

	data, err := afero.ReadFile(fs, filepath.Join(roots.Permanent, "report.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "a,b\n1,2\n" {
		t.Errorf("report.csv = %q", data)
	}
	data, err = afero.ReadFile(fs, results[3].Path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "uploaded" {
		t.Errorf("imported content = %q", data)
	}
}

func TestApplyRecognizesManagedSource(t *testing.T) {
	s, fs := newStager(t)
	managed := filepath.Join(roots.Permanent, "kept.txt")
	if err := afero.WriteFile(fs, managed, []byte("kept"), 0644); err != nil {
		t.Fatal(err)
	}

	m := &Manifest{Files: []Entry{{Source: managed}}}
	results, err := Apply(s, m, "/unused")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if results[0].Action != ActionRecognized || results[0].Path != managed || results[0].Area != "permanent" {
		t.Errorf("result = %+v", results[0])
	}
}

func TestApplyStopsAtFirstFailure(t *testing.T) {
	s, fs := newStager(t)
	content := "first"

	m := &Manifest{Files: []Entry{
		{Name: "first.txt", Content: &content},
		{Source: "missing.txt"},
		{Name: "never.txt", Empty: true},
	}}
	results, err := Apply(s, m, "/work")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(err.Error(), "files[1]:") {
		t.Errorf("error %q does not name the entry", err)
	}
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
	if exists, _ := afero.Exists(fs, results[0].Path); !exists {
		t.Error("entries applied before the failure must be kept")
	}
}

func TestApplyRejectsBadName(t *testing.T) {
	s, _ := newStager(t)
	m := &Manifest{Files: []Entry{{Name: "..", Empty: true}}}
	if _, err := Apply(s, m, "/work"); err == nil {
		t.Error("expected error for reserved name")
	}
}
