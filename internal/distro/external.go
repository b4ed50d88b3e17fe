package distro

import (
	"io"
	"os"
	"path/filepath"
)

// openExternal opens "dists.dss" under dir, the distribution_dir
// override a caller's Options can set in place of the embedded default.
func openExternal(dir string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(dir, "dists.dss"))
}
