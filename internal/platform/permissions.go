package platform

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/afero"
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(fs afero.Fs, path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return fs.Chmod(path, mode)
}

// probeName is the scratch file written by Writable.
const probeName = ".filestage-probe"

// Writable reports whether dir accepts new files by creating and removing
// a probe file inside it.
func Writable(fs afero.Fs, dir string) error {
	f, err := afero.TempFile(fs, dir, probeName)
	if err != nil {
		return fmt.Errorf("%s is not writable: %w", dir, err)
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing probe in %s: %w", dir, err)
	}
	if err := fs.Remove(name); err != nil {
		return fmt.Errorf("removing probe %s: %w", name, err)
	}
	return nil
}
