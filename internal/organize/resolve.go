package organize

import (
	"fmt"
	"os"
	"path/filepath"
)

// availablePath returns a destination path nothing currently occupies. When
// the intended path is taken, counter variants "name (1).ext", "name (2).ext"
// are tried until one is free. The second return reports whether a variant
// was needed.
func availablePath(dest string) (string, bool) {
	if !occupied(dest) {
		return dest, false
	}

	dir := filepath.Dir(dest)
	stem, suffix := splitName(filepath.Base(dest))
	for counter := 1; ; counter++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, counter, suffix))
		if !occupied(candidate) {
			return candidate, true
		}
	}
}

// occupied reports whether anything exists at path. Stat errors other than
// not-exist count as free; the subsequent move surfaces the real error.
func occupied(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
