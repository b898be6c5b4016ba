package area

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestCheckHealthy(t *testing.T) {
	fs := afero.NewMemMapFs()
	r := Static{Session: "/z/temporary", Permanent: "/z/permanent"}
	if err := Init(&bytes.Buffer{}, fs, r); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	problems, err := Check(&buf, fs, r, false)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if problems != 0 {
		t.Errorf("problems = %d, want 0\n%s", problems, buf.String())
	}
	if strings.Count(buf.String(), "[ OK ]") != 2 {
		t.Errorf("expected two [ OK ] lines:\n%s", buf.String())
	}
}

func TestCheckMissingWithoutFix(t *testing.T) {
	fs := afero.NewMemMapFs()
	r := Static{Session: "/z/temporary", Permanent: "/z/permanent"}

	var buf bytes.Buffer
	problems, err := Check(&buf, fs, r, false)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if problems != 2 {
		t.Errorf("problems = %d, want 2", problems)
	}
	if !strings.Contains(buf.String(), "filestage init") {
		t.Errorf("expected init hint:\n%s", buf.String())
	}
	if exists, _ := afero.DirExists(fs, "/z/temporary"); exists {
		t.Error("Check without fix must not create roots")
	}
}

func TestCheckMissingWithFix(t *testing.T) {
	fs := afero.NewMemMapFs()
	r := Static{Session: "/z/temporary", Permanent: "/z/permanent"}

	var buf bytes.Buffer
	problems, err := Check(&buf, fs, r, true)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if problems != 0 {
		t.Errorf("problems = %d, want 0\n%s", problems, buf.String())
	}
	for _, p := range []string{"/z/temporary", "/z/permanent"} {
		if exists, _ := afero.DirExists(fs, p); !exists {
			t.Errorf("%s not created", p)
		}
	}
}

func TestCheckFixesPermissions(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/z/temporary", 0777); err != nil {
		t.Fatal(err)
	}
	if err := fs.MkdirAll("/z/permanent", 0755); err != nil {
		t.Fatal(err)
	}
	r := Static{Session: "/z/temporary", Permanent: "/z/permanent"}

	var buf bytes.Buffer
	if _, err := Check(&buf, fs, r, true); err != nil {
		t.Fatal(err)
	}
	info, err := fs.Stat("/z/temporary")
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0700 {
		t.Errorf("permissions = %o, want 0700\n%s", perm, buf.String())
	}
}

func TestCheckReadOnly(t *testing.T) {
	base := afero.NewMemMapFs()
	r := Static{Session: "/z/temporary", Permanent: "/z/permanent"}
	if err := Init(&bytes.Buffer{}, base, r); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	problems, err := Check(&buf, afero.NewReadOnlyFs(base), r, false)
	if err != nil {
		t.Fatal(err)
	}
	if problems != 2 {
		t.Errorf("problems = %d, want 2\n%s", problems, buf.String())
	}
}
