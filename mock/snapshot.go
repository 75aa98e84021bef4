package mock

import "github.com/fwojciec/imdbtop"

var _ imdbtop.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore is a mock implementation of imdbtop.SnapshotStore.
type SnapshotStore struct {
	SaveFn   func(chart imdbtop.Chart, html string) error
	LoadFn   func(chart imdbtop.Chart) (string, error)
	ExistsFn func(chart imdbtop.Chart) bool
}

func (s *SnapshotStore) Save(chart imdbtop.Chart, html string) error {
	return s.SaveFn(chart, html)
}

func (s *SnapshotStore) Load(chart imdbtop.Chart) (string, error) {
	return s.LoadFn(chart)
}

func (s *SnapshotStore) Exists(chart imdbtop.Chart) bool {
	return s.ExistsFn(chart)
}
