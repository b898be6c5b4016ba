package area

import (
	"fmt"
	"io"
	"os"

	"github.com/agentx-labs/filestage/internal/branding"
	"github.com/agentx-labs/filestage/internal/platform"
	"github.com/spf13/afero"
)

// Check validates that both storage roots exist, are directories and are
// writable. When fix is true, missing roots are created and permissions are
// repaired. It returns the number of problems left unresolved.
func Check(w io.Writer, fs afero.Fs, r Resolver, fix bool) (int, error) {
	fmt.Fprintln(w, "Storage area check:")

	problems := 0
	for _, k := range []Kind{Session, Permanent} {
		root, err := Root(r, k)
		if err != nil {
			return problems, fmt.Errorf("resolving %s root: %w", k, err)
		}
		if !checkRoot(w, fs, k, root, fix) {
			problems++
		}
	}
	return problems, nil
}

func checkRoot(w io.Writer, fs afero.Fs, k Kind, root string, fix bool) bool {
	expectedPerm := Perm(k)

	info, err := fs.Stat(root)
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s root %s does not exist\n", k, root)
		if !fix {
			fmt.Fprintf(w, "         Run '%s init' to create\n", branding.CLIName())
			return false
		}
		if mkErr := fs.MkdirAll(root, expectedPerm); mkErr != nil {
			fmt.Fprintf(w, "  [FAIL] Could not create %s: %v\n", root, mkErr)
			return false
		}
		platform.Chmod(fs, root, expectedPerm)
		fmt.Fprintf(w, "  [FIX ] Created %s with %o\n", root, expectedPerm)
		return true
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", root, err)
		return false
	}
	if !info.IsDir() {
		fmt.Fprintf(w, "  [WARN] %s root %s exists but is not a directory\n", k, root)
		return false
	}

	if err := platform.Writable(fs, root); err != nil {
		fmt.Fprintf(w, "  [WARN] %v\n", err)
		return false
	}

	actualPerm := info.Mode().Perm()
	if actualPerm != expectedPerm {
		fmt.Fprintf(w, "  [WARN] %s has permissions %o (expected %o)\n", root, actualPerm, expectedPerm)
		if fix {
			if chErr := platform.Chmod(fs, root, expectedPerm); chErr != nil {
				fmt.Fprintf(w, "  [FAIL] Could not fix permissions on %s: %v\n", root, chErr)
				return true
			}
			fmt.Fprintf(w, "  [FIX ] Fixed permissions on %s to %o\n", root, expectedPerm)
		}
		return true
	}
	fmt.Fprintf(w, "  [ OK ] %s root %s (permissions %o)\n", k, root, actualPerm)
	return true
}
