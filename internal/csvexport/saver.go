package csvexport

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirSaver writes exports into a directory.
type DirSaver struct {
	Dir string
}

// Save writes content to Dir/filename through a temp file and rename, so a
// reader never sees a half-written export.
func (s DirSaver) Save(filename string, content []byte) (string, error) {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, filepath.Base(filename))
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("renaming to %s: %w", path, err)
	}
	return path, nil
}
