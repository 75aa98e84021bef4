package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/imdbtop"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ imdbtop.RunService = (*RunService)(nil)

// RunService implements imdbtop.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun records a snapshot refresh of html.
func (s *RunService) CreateRun(ctx context.Context, run *imdbtop.Run, html string) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.FetchedAt = time.Now().UTC()
	run.ContentHash = hashContent(html)
	run.Bytes = len(html)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, chart, source, content_hash, bytes, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, run.ID, run.Chart, run.Source, run.ContentHash, run.Bytes, run.FetchedAt.Format(timeFormat))

	return err
}

// FindRuns retrieves runs matching the filter, newest first.
func (s *RunService) FindRuns(ctx context.Context, filter imdbtop.RunFilter) ([]*imdbtop.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, chart, source, content_hash, bytes, fetched_at FROM runs WHERE 1=1")

	if filter.Chart != nil {
		query.WriteString(" AND chart = ?")
		args = append(args, *filter.Chart)
	}

	query.WriteString(" ORDER BY fetched_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, 0)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*imdbtop.Run
	for rows.Next() {
		var run imdbtop.Run
		var fetchedAt string

		if err := rows.Scan(&run.ID, &run.Chart, &run.Source, &run.ContentHash, &run.Bytes, &fetchedAt); err != nil {
			return nil, err
		}

		if run.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at"); err != nil {
			return nil, err
		}

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}
