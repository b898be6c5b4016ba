package area

import (
	"fmt"
	"io"
	"os"

	"github.com/agentx-labs/filestage/internal/platform"
	"github.com/spf13/afero"
)

// Permission constants for the area roots.
const (
	DirPermSession   os.FileMode = 0700
	DirPermPermanent os.FileMode = 0755
)

// Perm returns the directory permissions expected for area k.
func Perm(k Kind) os.FileMode {
	if k == Session {
		return DirPermSession
	}
	return DirPermPermanent
}

// Init creates both storage roots with their expected permissions.
// It prints progress messages to w. Existing roots are skipped with a message.
func Init(w io.Writer, fs afero.Fs, r Resolver) error {
	for _, k := range []Kind{Session, Permanent} {
		root, err := Root(r, k)
		if err != nil {
			return fmt.Errorf("resolving %s root: %w", k, err)
		}
		if err := ensureDir(w, fs, root, Perm(k)); err != nil {
			return err
		}
	}
	return nil
}

// ensureDir creates a directory if it doesn't exist.
func ensureDir(w io.Writer, fs afero.Fs, path string, perm os.FileMode) error {
	if info, err := fs.Stat(path); err == nil {
		if info.IsDir() {
			fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
			return nil
		}
		return fmt.Errorf("%s exists but is not a directory", path)
	}

	if err := fs.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	// MkdirAll may not apply exact perms if parent dirs needed creation.
	if err := platform.Chmod(fs, path, perm); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return nil
}
