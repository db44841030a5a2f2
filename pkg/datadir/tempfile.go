package datadir

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quiverdata/testkit/pkg/trace"
)

// tempSubdir is the build-output tree that holds generated test files.
const tempSubdir = "build/testdata"

// TempFile writes content to name under the build-output testdata tree
// (creating the tree as needed) and returns a handle reopened for both
// reading and writing, positioned at the start of the file. The content
// is synced to disk before the handle is returned.
func TempFile(ctx context.Context, name string, content []byte) (*os.File, error) {
	log := trace.FromContext(ctx).WithPrefix("TEMPFILE")

	dir := filepath.Join(repoRoot(), tempSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Error(err)
		return nil, fmt.Errorf("cannot create temp dir %s: %w", dir, err)
	}

	path := filepath.Join(dir, name)
	log.Debugf("Writing %d bytes to %s", len(content), path)

	f, err := os.Create(path)
	if err != nil {
		log.Error(err)
		return nil, fmt.Errorf("cannot create temp file %s: %w", path, err)
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		log.Error(err)
		return nil, fmt.Errorf("cannot write temp file %s: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		log.Error(err)
		return nil, fmt.Errorf("cannot sync temp file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		log.Error(err)
		return nil, fmt.Errorf("cannot close temp file %s: %w", path, err)
	}

	rw, err := os.OpenFile(path, os.O_RDWR, 0o644)
	if err != nil {
		log.Error(err)
		return nil, fmt.Errorf("cannot reopen temp file %s: %w", path, err)
	}
	return rw, nil
}
