package area

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentx-labs/filestage/internal/branding"
	"github.com/agentx-labs/filestage/internal/config"
	"github.com/agentx-labs/filestage/internal/platform"
	"github.com/spf13/viper"
)

// Kind identifies a storage area.
type Kind int

const (
	// Session files are cleaned up by the host when the session ends.
	Session Kind = iota
	// Permanent files persist until something else deletes them.
	Permanent
)

// String returns a human-readable name for the area.
func (k Kind) String() string {
	switch k {
	case Session:
		return "session"
	case Permanent:
		return "permanent"
	default:
		return "unknown"
	}
}

// Resolver supplies the storage area roots. Both roots are expected to be
// existing, writable directories.
type Resolver interface {
	SessionRoot() (string, error)
	PermanentRoot() (string, error)
}

// Root returns the root of area k.
func Root(r Resolver, k Kind) (string, error) {
	switch k {
	case Session:
		return r.SessionRoot()
	case Permanent:
		return r.PermanentRoot()
	default:
		return "", fmt.Errorf("unknown storage area %d", int(k))
	}
}

// Static is a Resolver with fixed roots.
type Static struct {
	Session   string
	Permanent string
}

// SessionRoot returns the fixed session root.
func (s Static) SessionRoot() (string, error) {
	if s.Session == "" {
		return "", fmt.Errorf("session root is not configured")
	}
	return s.Session, nil
}

// PermanentRoot returns the fixed permanent root.
func (s Static) PermanentRoot() (string, error) {
	if s.Permanent == "" {
		return "", fmt.Errorf("permanent root is not configured")
	}
	return s.Permanent, nil
}

// EnvResolver resolves roots from the environment, then the config file,
// then built-in defaults.
type EnvResolver struct{}

// SessionRoot checks FILESTAGE_SESSION, then the session_root config key,
// then falls back to $TMPDIR/filestage-session.
func (EnvResolver) SessionRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("SESSION")); v != "" {
		return v, nil
	}
	if v := viper.GetString(config.KeySessionRoot); v != "" {
		return v, nil
	}
	return filepath.Join(os.TempDir(), branding.SessionDirName()), nil
}

// PermanentRoot checks FILESTAGE_PERMANENT, then the permanent_root config
// key, then falls back to ~/.filestage/files.
func (EnvResolver) PermanentRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("PERMANENT")); v != "" {
		return v, nil
	}
	if v := viper.GetString(config.KeyPermanentRoot); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir(), branding.PermanentDirName()), nil
}

// Contains reports whether path lies strictly below root and returns the
// slash-separated path relative to root. The comparison is done on whole
// path elements of the absolute, cleaned paths, first as given and then with
// symlinks resolved. Symlinks are resolved on the host filesystem only.
func Contains(root, path string) (string, bool) {
	absRoot, errRoot := filepath.Abs(root)
	absPath, errPath := filepath.Abs(path)
	if errRoot == nil && errPath == nil {
		if rel, ok := within(absRoot, absPath); ok {
			return rel, true
		}
	}

	canonRoot, err := platform.CanonicalPath(root)
	if err != nil {
		return "", false
	}
	canonPath, err := platform.CanonicalPath(path)
	if err != nil {
		return "", false
	}
	return within(canonRoot, canonPath)
}

func within(root, path string) (string, bool) {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return "", false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}
