package rendering

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// DefaultCommand is the renderer looked up on PATH when no local installation exists
const DefaultCommand = "rendercv"

// Locator finds the renderer executable. Local installations (for example a
// project virtualenv) win over the command on PATH.
type Locator struct {
	// LocalPaths are checked in order, relative paths against each SearchDir
	LocalPaths []string
	// SearchDirs are the base directories for relative LocalPaths
	SearchDirs []string
	// Fallback is the command name or path used when no local path exists
	Fallback string

	lookPath func(string) (string, error)
}

// DefaultSearchDirs returns the working directory and the directory of the running binary
func DefaultSearchDirs() []string {
	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		if len(dirs) == 0 || dirs[0] != dir {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// Resolve returns an absolute path to the renderer. When nothing can be found
// the bare fallback name is returned, so the failure surfaces when a file is rendered.
func (l Locator) Resolve() string {
	for _, p := range l.LocalPaths {
		if p == "" {
			continue
		}
		if filepath.IsAbs(p) {
			if isExecutableFile(p) {
				return p
			}
			continue
		}
		for _, dir := range l.SearchDirs {
			candidate := filepath.Join(dir, p)
			if isExecutableFile(candidate) {
				if abs, err := filepath.Abs(candidate); err == nil {
					return abs
				}
				return candidate
			}
		}
	}

	fallback := l.Fallback
	if fallback == "" {
		fallback = DefaultCommand
	}

	// Explicit paths are made absolute so they survive the directory change
	if strings.ContainsRune(fallback, os.PathSeparator) {
		if abs, err := filepath.Abs(fallback); err == nil {
			return abs
		}
		return fallback
	}

	lookPath := l.lookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	if found, err := lookPath(fallback); err == nil {
		if abs, err := filepath.Abs(found); err == nil {
			return abs
		}
		return found
	}
	return fallback
}

func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode().Perm()&0o111 != 0
}
