package platform

import "path/filepath"

// CanonicalPath returns the absolute, cleaned form of path with symlinks
// resolved when the path exists on the host filesystem. When resolution
// fails the cleaned absolute path is returned. It never consults an
// afero.Fs, so paths that only exist in an in-memory tree stay unresolved.
func CanonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}
