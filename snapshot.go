package imdbtop

// SnapshotStore keeps the last successfully fetched HTML of each chart so
// that a run can continue offline when the network fetch fails.
type SnapshotStore interface {
	// Save replaces the snapshot for chart atomically.
	Save(chart Chart, html string) error

	// Load returns the snapshot for chart.
	// Returns ENOTFOUND if no snapshot exists.
	Load(chart Chart) (string, error)

	// Exists reports whether a snapshot exists for chart.
	Exists(chart Chart) bool
}
