// Package datadir locates on-disk test-data directories for the library
// test suites. A directory is resolved from an environment-variable
// override when one is set, otherwise from a fallback path relative to
// the repository root. Resolution is performed on every call; nothing is
// cached, so tests may change the environment between calls.
package datadir

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/quiverdata/testkit/pkg/trace"
)

// ConfiguredPathError reports that an environment-variable override
// names a path that is not an existing directory. The fallback is never
// consulted in this case: a set override that points nowhere is a
// configuration mistake the user must fix.
type ConfiguredPathError struct {
	// EnvVar is the environment variable that supplied the path.
	EnvVar string
	// Path is the trimmed value of the variable.
	Path string
}

func (e *ConfiguredPathError) Error() string {
	return fmt.Sprintf("the data dir %q defined by env %s not found", e.Path, e.EnvVar)
}

// NoDataDirError reports that the environment variable was unset (or
// blank) and the fallback directory does not exist either.
type NoDataDirError struct {
	// EnvVar is the override variable that was unset or blank.
	EnvVar string
	// Fallback is the resolved fallback path that was attempted.
	Fallback string
}

func (e *NoDataDirError) Error() string {
	return fmt.Sprintf("env %s is undefined or has empty value, and the pre-defined data dir %q not found\nHINT: try running `git submodule update --init`",
		e.EnvVar, e.Fallback)
}

// Resolve returns a test-data directory path.
//
// If envVar is set and non-blank after trimming, its value must be an
// existing directory; otherwise Resolve fails with *ConfiguredPathError
// without trying the fallback. If envVar is unset or blank, fallback is
// resolved relative to the repository root and returned when it is an
// existing directory; otherwise Resolve fails with *NoDataDirError.
//
// Resolve reads the environment and filesystem metadata only; it never
// creates or modifies anything.
func Resolve(ctx context.Context, envVar, fallback string) (string, error) {
	log := trace.FromContext(ctx).WithPrefix("DATADIR")

	if val, ok := os.LookupEnv(envVar); ok {
		trimmed := strings.TrimSpace(val)
		if trimmed != "" {
			log.Debugf("Trying override from env %s: %s", envVar, trimmed)
			if isDir(trimmed) {
				log.Debugf("Resolved %s to %s (override)", envVar, trimmed)
				return trimmed, nil
			}
			err := &ConfiguredPathError{EnvVar: envVar, Path: trimmed}
			log.Error(err)
			return "", err
		}
	}

	candidate := filepath.Join(repoRoot(), fallback)
	log.Debugf("Env %s unset or blank, trying fallback: %s", envVar, candidate)
	if isDir(candidate) {
		log.Debugf("Resolved %s to %s (fallback)", envVar, candidate)
		return candidate, nil
	}

	err := &NoDataDirError{EnvVar: envVar, Fallback: candidate}
	log.Error(err)
	return "", err
}

// isDir reports whether path exists and is a directory.
func isDir(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && stat.IsDir()
}

// repoRoot returns the repository root directory, derived at compile
// time from this source file's location (this package lives two levels
// below the root).
func repoRoot() string {
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		panic("datadir: cannot determine caller source location")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", ".."))
}
