package stage

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/agentx-labs/filestage/internal/area"
	"github.com/agentx-labs/filestage/internal/handle"
	"github.com/agentx-labs/filestage/internal/platform"
	"github.com/spf13/afero"
)

var errNotRegular = errors.New("not an existing regular file")

// CopyFromFile brings the file at path under management.
//
// A file already inside the session or permanent area is recognized and
// returned as a reference to itself; nothing is read or written. Any other
// file is read fully and copied into a new session file inside a unique
// folder.
func (s *Stager) CopyFromFile(path string) (*handle.File, error) {
	f, _, err := s.Import(path)
	return f, err
}

// Import behaves like CopyFromFile and also reports whether the file was
// copied (true) or recognized in place (false).
func (s *Stager) Import(path string) (*handle.File, bool, error) {
	info, err := s.fs.Stat(path)
	if err != nil {
		return nil, false, invalidArgument("copy from file", path, fmt.Errorf("%w: %v", errNotRegular, err))
	}
	if !info.Mode().IsRegular() {
		return nil, false, invalidArgument("copy from file", path, errNotRegular)
	}

	for _, k := range []area.Kind{area.Session, area.Permanent} {
		root, err := area.Root(s.resolver, k)
		if err != nil {
			return nil, false, ioFailure("copy from file", path, fmt.Errorf("resolving %s root: %w", k, err))
		}
		if rel, ok := area.Contains(root, path); ok {
			s.logger.Debug("recognized managed file",
				"source", path,
				"area", k.String(),
				"path", rel)
			return handle.New(s.fs, s.resolver, rel, k == area.Session), false, nil
		}
	}

	content, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, false, ioFailure("copy from file", path, err)
	}

	b, err := s.ForName(filepath.Base(path))
	if err != nil {
		return nil, false, err
	}
	f, err := b.ThisSessionOnly().PutInUniqueFolder().CreateFileWithContent(content)
	if err != nil {
		return nil, false, err
	}
	s.logger.Debug("imported external file",
		"source", path,
		"area", area.Session.String(),
		"path", f.RelPath(),
		"bytes", len(content))
	return f, true, nil
}

// Imported reports whether f is a new copy of source rather than source
// itself recognized in place. Both sides are compared in canonical form, so
// a root reached through a symlink still matches.
func Imported(f *handle.File, source string) bool {
	staged, err := f.AbsolutePath()
	if err != nil {
		return true
	}
	staged, err = platform.CanonicalPath(staged)
	if err != nil {
		return true
	}
	src, err := platform.CanonicalPath(source)
	if err != nil {
		return true
	}
	return staged != src
}
