// Package handle implements the managed file reference produced by the
// staging builder: a path relative to a storage area root plus the area it
// belongs to. A File may or may not exist on disk; the absolute location is
// only computed, through the area resolver, when asked for.
package handle

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/agentx-labs/filestage/internal/area"
	"github.com/spf13/afero"
)

// Permission constants for staged content.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// File is a reference to a file inside a storage area.
type File struct {
	fs       afero.Fs
	resolver area.Resolver
	rel      string
	session  bool
}

// New returns a reference to rel (slash-separated) inside the session area
// when session is true, otherwise inside the permanent area.
func New(fs afero.Fs, resolver area.Resolver, rel string, session bool) *File {
	return &File{
		fs:       fs,
		resolver: resolver,
		rel:      path.Clean(filepath.ToSlash(rel)),
		session:  session,
	}
}

// RelPath returns the slash-separated path below the area root.
func (f *File) RelPath() string { return f.rel }

// Name returns the final element of the relative path.
func (f *File) Name() string { return path.Base(f.rel) }

// Session reports whether the file lives in the session area.
func (f *File) Session() bool { return f.session }

// Area returns the storage area of the file.
func (f *File) Area() area.Kind {
	if f.session {
		return area.Session
	}
	return area.Permanent
}

// String returns "<area>:<relpath>".
func (f *File) String() string {
	return f.Area().String() + ":" + f.rel
}

// AbsolutePath joins the current area root with the relative path.
func (f *File) AbsolutePath() (string, error) {
	root, err := area.Root(f.resolver, f.Area())
	if err != nil {
		return "", fmt.Errorf("resolving %s root: %w", f.Area(), err)
	}
	return filepath.Join(root, filepath.FromSlash(f.rel)), nil
}

// Create makes an empty file at the reference, creating parent directories
// as needed. An existing file is truncated.
func (f *File) Create() error {
	abs, err := f.AbsolutePath()
	if err != nil {
		return err
	}
	if err := f.fs.MkdirAll(filepath.Dir(abs), DirPerm); err != nil {
		return fmt.Errorf("creating directory for %s: %w", abs, err)
	}
	out, err := f.fs.OpenFile(abs, os.O_RDWR|os.O_CREATE|os.O_TRUNC, FilePerm)
	if err != nil {
		return fmt.Errorf("creating %s: %w", abs, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", abs, err)
	}
	return nil
}

// WriteContent replaces the file content with b.
func (f *File) WriteContent(b []byte) error {
	abs, err := f.AbsolutePath()
	if err != nil {
		return err
	}
	if err := afero.WriteFile(f.fs, abs, b, FilePerm); err != nil {
		return fmt.Errorf("writing %s: %w", abs, err)
	}
	return nil
}

// ReadContent returns the full file content.
func (f *File) ReadContent() ([]byte, error) {
	abs, err := f.AbsolutePath()
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(f.fs, abs)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", abs, err)
	}
	return data, nil
}

// Exists reports whether a regular file is present at the reference.
func (f *File) Exists() (bool, error) {
	abs, err := f.AbsolutePath()
	if err != nil {
		return false, err
	}
	info, err := f.fs.Stat(abs)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", abs, err)
	}
	return info.Mode().IsRegular(), nil
}
