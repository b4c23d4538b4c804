// Package selfpath locates the directory of the running program.
package selfpath

import (
	"os"
	"path/filepath"
)

// Dir returns the absolute directory containing the running executable with
// symlinks resolved. It never fails: when the executable cannot be located it
// falls back to the working directory.
func Dir() string {
	return dir(os.Executable, os.Getwd)
}

func dir(executable, getwd func() (string, error)) string {
	if exe, err := executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		if abs, err := filepath.Abs(filepath.Dir(exe)); err == nil {
			return abs
		}
	}

	if wd, err := getwd(); err == nil {
		return wd
	}

	if abs, err := filepath.Abs("."); err == nil {
		return abs
	}
	return "."
}
