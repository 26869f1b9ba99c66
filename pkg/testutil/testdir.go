package testutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// TempDir creates a temporary directory that is removed when the test
// finishes. The path of the temporary directory has symlinks resolved with
// filepath.EvalSymlinks.
//
// It panics if the directory cannot be created or symlinks cannot be
// resolved. It is only suitable for use in tests.
func TempDir(c Cleanuper) string {
	dir, err := os.MkdirTemp("", "shellkit-test-*")
	Must(err)
	dir, err = filepath.EvalSymlinks(dir)
	Must(err)
	c.Cleanup(func() {
		err := os.RemoveAll(dir)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Warning: failed to remove temp dir", dir)
		}
	})
	return dir
}

// InTempDir is like TempDir, but also changes into the temporary directory,
// changing back when the test finishes.
func InTempDir(c Cleanuper) string {
	dir := TempDir(c)
	Chdir(c, dir)
	return dir
}

// Chdir changes into dir and restores the original working directory when the
// test finishes. It panics if either directory change fails.
func Chdir(c Cleanuper, dir string) {
	oldWd, err := os.Getwd()
	Must(err)
	Must(os.Chdir(dir))
	c.Cleanup(func() { Must(os.Chdir(oldWd)) })
}

// Dir describes the layout of a directory. The keys of the map are entry
// names. Each value is either a string (the content of a regular file with
// permission 0644), a File, or a Dir.
type Dir map[string]any

// File describes a file with non-default permissions to create in a Dir.
type File struct {
	Perm    os.FileMode
	Content string
}

// ApplyDir creates the given layout under root. It panics if any entry
// cannot be created.
func ApplyDir(root string, layout Dir) {
	for name, entry := range layout {
		path := filepath.Join(root, name)
		switch entry := entry.(type) {
		case string:
			Must(os.WriteFile(path, []byte(entry), 0644))
		case File:
			Must(os.WriteFile(path, []byte(entry.Content), entry.Perm))
		case Dir:
			Must(os.MkdirAll(path, 0755))
			ApplyDir(path, entry)
		default:
			panic(fmt.Sprintf("entry must be string, File or Dir, got %T", entry))
		}
	}
}
