// Package pathutil resolves and combines filesystem paths.
//
// Resolution is purely textual: no function in this package touches the
// filesystem except [Canonicalize] (which must, to resolve symlinks) and
// [TempDir]. Relative inputs are resolved against the scoped working
// directory maintained by the cwd package.
package pathutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/shellkit/shellkit/pkg/cwd"
)

// Path is an absolute or relative filesystem path produced by resolution or
// joining. It is a plain value; the path it names need not exist.
type Path string

func (p Path) String() string { return string(p) }

// NotFoundError is returned by Canonicalize when the path to canonicalize
// does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("path does not exist: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error { return fs.ErrNotExist }

// Resolve turns s into an absolute path. Absolute inputs are returned
// unchanged; relative inputs are joined onto the scoped working directory.
// Resolve never checks whether the result exists.
func Resolve(s string) Path {
	if filepath.IsAbs(s) {
		return Path(s)
	}
	return Path(filepath.Join(cwd.Get(), s))
}

// IsAbs reports whether s is an absolute path. It is a structural check on
// the string and performs no I/O.
func IsAbs(s string) bool { return filepath.IsAbs(s) }

// IsRel reports whether s is a relative path.
func IsRel(s string) bool { return !filepath.IsAbs(s) }

// Canonicalize resolves s, then resolves symlinks and normalizes "." and ".."
// components, yielding an absolute real path. The path must exist; when it
// does not, the error is a *NotFoundError.
func Canonicalize(s string) (Path, error) {
	resolved := Resolve(s)
	real, err := filepath.EvalSymlinks(string(resolved))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &NotFoundError{Path: string(resolved)}
		}
		return "", err
	}
	return Path(real), nil
}

// Parent resolves s and returns its containing directory. At the filesystem
// root there is no parent and the second return value is false.
func Parent(s string) (Path, bool) {
	resolved := string(Resolve(s))
	parent := filepath.Dir(resolved)
	if parent == resolved {
		return "", false
	}
	return Path(parent), true
}

// Rel returns target expressed relative to base. Both arguments are treated
// as absolute paths.
func Rel(base, target string) (Path, error) {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return "", err
	}
	return Path(rel), nil
}

// Join appends elem to base using the platform joining rule. base may be a
// raw string, a Path, or an open *os.File (joined on the file's name); all
// three behave identically. Joining the empty string returns the canonical
// form of base. Join panics on any other base type.
func Join(base any, elem string) Path {
	var s string
	switch base := base.(type) {
	case string:
		s = base
	case Path:
		s = string(base)
	case *os.File:
		s = base.Name()
	default:
		panic(fmt.Sprintf("pathutil.Join: base must be string, Path or *os.File, got %T", base))
	}
	return Path(filepath.Join(s, elem))
}

// Base returns the last element of p, with any directory prefix removed.
func Base(p string) string { return filepath.Base(p) }

// Ext returns the file name extension of p, including the leading dot, or ""
// if there is none.
func Ext(p string) string { return filepath.Ext(p) }

// StripExt returns p with its extension removed.
func StripExt(p string) string {
	return strings.TrimSuffix(p, filepath.Ext(p))
}

// TempDir creates a new temporary directory under dir (the default location
// when dir is empty) and returns its path. The last "*" in pattern is
// replaced by a random string; an empty pattern uses a default.
func TempDir(dir, pattern string) (Path, error) {
	if pattern == "" {
		pattern = "shellkit-*"
	}
	d, err := os.MkdirTemp(dir, pattern)
	if err != nil {
		return "", err
	}
	return Path(d), nil
}
