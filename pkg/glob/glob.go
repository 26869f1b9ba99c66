// Package glob expands shell-style wildcard patterns against the filesystem.
//
// A pattern is split into segments on "/" and "\". The first segment decides
// the root: an empty segment roots at the filesystem root, a drive letter
// roots at that drive, "~" roots at the user's home directory, and anything
// else roots at the scoped working directory. From the root, each segment
// refines a set of candidate paths: "." lists children, ".." steps to
// parents, "**" descends into every reachable directory, and any other
// segment keeps the children whose names it matches.
//
// Names starting with "." are skipped at every step unless the segment
// itself starts with a literal ".".
package glob

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/shellkit/shellkit/pkg/cwd"
	"github.com/shellkit/shellkit/pkg/pathutil"
)

// fsys is the filesystem the traversal lists. Swappable for tests and for
// embedders globbing over a virtual tree.
var fsys afero.Fs = afero.NewOsFs()

// Glob expands pattern and returns the matching paths, in discovery order:
// per directory, the listing order of the filesystem; across directories, the
// order candidates were produced by the previous segment. Matches need not be
// regular files; whatever the final segment selects is returned.
//
// The only error conditions are a malformed segment (*InvalidPatternError)
// and a "~" root with no resolvable home directory. Unreadable or missing
// directories along the way simply contribute no matches.
func Glob(pattern string) ([]pathutil.Path, error) {
	parts := strings.Split(strings.ReplaceAll(pattern, `\`, "/"), "/")

	var dirs []string
	segs := parts
	switch {
	case parts[0] == "":
		dirs = []string{"/"}
		segs = parts[1:]
	case isDrive(parts[0]):
		dirs = []string{parts[0] + "/"}
		segs = parts[1:]
	case parts[0] == "~":
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dirs = []string{home}
		segs = parts[1:]
	default:
		start, err := pathutil.Canonicalize(cwd.Get())
		if err != nil {
			// The scoped directory itself has vanished; traverse from its
			// name as-is and let the listings come up empty.
			start = pathutil.Path(cwd.Get())
		}
		dirs = []string{string(start)}
	}

	for _, seg := range segs {
		switch seg {
		case "":
			// Runs of separators and trailing separators add nothing.
		case ".":
			var next []string
			for _, dir := range dirs {
				for _, info := range readDir(dir) {
					next = append(next, filepath.Join(dir, info.Name()))
				}
			}
			dirs = next
		case "..":
			var next []string
			for _, dir := range dirs {
				if parent, ok := pathutil.Parent(dir); ok {
					next = append(next, string(parent))
				}
			}
			dirs = next
		case "**":
			var next []string
			for _, dir := range dirs {
				if isDir(dir) {
					next = appendDirTree(next, dir)
				}
			}
			dirs = next
		default:
			m, err := compileSegment(seg)
			if err != nil {
				return nil, err
			}
			var next []string
			for _, dir := range dirs {
				for _, info := range readDir(dir) {
					if m.match(info.Name()) {
						next = append(next, filepath.Join(dir, info.Name()))
					}
				}
			}
			dirs = next
		}
	}

	paths := make([]pathutil.Path, len(dirs))
	for i, dir := range dirs {
		paths[i] = pathutil.Path(dir)
	}
	return paths, nil
}

func isDrive(s string) bool {
	return len(s) == 2 && s[1] == ':' &&
		(('a' <= s[0] && s[0] <= 'z') || ('A' <= s[0] && s[0] <= 'Z'))
}

// appendDirTree appends dir and every directory below it, in listing order.
// Hidden directories are neither reported nor descended into.
func appendDirTree(acc []string, dir string) []string {
	acc = append(acc, dir)
	for _, info := range readDir(dir) {
		if info.IsDir() && !strings.HasPrefix(info.Name(), ".") {
			acc = appendDirTree(acc, filepath.Join(dir, info.Name()))
		}
	}
	return acc
}

// readDir lists dir. A path that is missing, unreadable, or not a directory
// lists as empty, so traversal degrades instead of aborting.
func readDir(dir string) []fs.FileInfo {
	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil
	}
	return infos
}

func isDir(path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.IsDir()
}
