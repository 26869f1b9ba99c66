// Package cwd implements the dynamically scoped working directory that
// relative paths are resolved against.
//
// The package keeps a single process-wide directory cell. It is initialized
// once from the real working directory of the process, and after that only
// [With] changes it, for the dynamic extent of a body function. Scoping only
// makes sense for one sequential flow of control, so the cell is deliberately
// unsynchronized; concurrent callers need their own coordination.
package cwd

import (
	"os"
	"path/filepath"
	"sync"
)

var (
	initOnce sync.Once
	dir      string
)

// Get returns the current working directory. The returned path is always
// absolute.
func Get() string {
	initOnce.Do(func() {
		d, err := os.Getwd()
		if err != nil {
			// The process was started in a directory we cannot even name.
			// Fall back to the root so that the invariant holds.
			d = string(filepath.Separator)
		}
		dir = d
	})
	return dir
}

// With resolves path against the current working directory, installs the
// result as current for the duration of body, and restores the prior value
// afterwards. Restoration happens on every exit: normal return, error return,
// and panic.
//
// The scoped value is also mirrored into the OS-level process directory, so
// that collaborators reading it directly (notably process spawning) observe
// the scope. The mirror is best-effort; a directory that cannot be entered at
// the OS level still becomes the scoped value.
func With(path string, body func() error) error {
	resolved := path
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(Get(), resolved)
	}
	prev := Get()
	dir = resolved
	os.Chdir(resolved)
	defer func() {
		dir = prev
		os.Chdir(prev)
	}()
	return body()
}
