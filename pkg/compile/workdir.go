package compile

import (
	"os"
	"path/filepath"
)

// Workdir is the per-picture compilation directory. Its name is derived
// deterministically from the picture's instance ID, so the same picture
// always compiles in the same place. Created on demand; removal is the
// caller's responsibility via Remove.
type Workdir struct {
	dir string
}

// NewWorkdir returns the working directory for the given instance ID under
// root. An empty root falls back to the system temp directory.
func NewWorkdir(root, id string) Workdir {
	if root == "" {
		root = os.TempDir()
	}
	if len(id) > 8 {
		id = id[:8]
	}
	return Workdir{dir: filepath.Join(root, ".tikzgo-"+id)}
}

// Path returns the directory path.
func (w Workdir) Path() string { return w.dir }

// TexPath returns the path of the generated .tex source inside the
// directory.
func (w Workdir) TexPath() string { return filepath.Join(w.dir, "figure.tex") }

// PDFPath returns the path of the compiled PDF inside the directory.
func (w Workdir) PDFPath() string { return filepath.Join(w.dir, "figure.pdf") }

// Ensure creates the directory if it does not exist.
func (w Workdir) Ensure() error {
	return os.MkdirAll(w.dir, 0o755)
}

// Remove deletes the directory and everything in it.
func (w Workdir) Remove() error {
	return os.RemoveAll(w.dir)
}
