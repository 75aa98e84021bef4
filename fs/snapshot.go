// Package fs provides file-based storage: chart HTML snapshots and flat file exports.
package fs

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/imdbtop"
)

// Ensure SnapshotStore implements imdbtop.SnapshotStore at compile time.
var _ imdbtop.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore keeps one HTML file per chart.
// Save writes to a temporary file next to the target and renames it into
// place, so a failed write never clobbers the previous snapshot.
type SnapshotStore struct {
	paths map[imdbtop.Chart]string
}

// NewSnapshotStore creates a SnapshotStore with the file path of each chart.
func NewSnapshotStore(paths map[imdbtop.Chart]string) *SnapshotStore {
	return &SnapshotStore{paths: paths}
}

func (s *SnapshotStore) path(chart imdbtop.Chart) (string, error) {
	p, ok := s.paths[chart]
	if !ok || p == "" {
		return "", imdbtop.Errorf(imdbtop.EINVALID, "no snapshot path configured for chart %q", chart)
	}
	return p, nil
}

// Save replaces the snapshot for chart.
func (s *SnapshotStore) Save(chart imdbtop.Chart, html string) error {
	path, err := s.path(chart)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(html); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// Load returns the snapshot for chart.
func (s *SnapshotStore) Load(chart imdbtop.Chart) (string, error) {
	path, err := s.path(chart)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", imdbtop.Errorf(imdbtop.ENOTFOUND, "no local snapshot of %s chart at %s", chart, path)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Exists reports whether a snapshot file exists for chart.
func (s *SnapshotStore) Exists(chart imdbtop.Chart) bool {
	path, err := s.path(chart)
	if err != nil {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
