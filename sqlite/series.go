package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/imdbtop"
)

// Compile-time interface verification.
var _ imdbtop.SeriesService = (*SeriesService)(nil)

// SeriesService implements imdbtop.SeriesService using SQLite.
type SeriesService struct {
	db *DB
}

// NewSeriesService creates a new SeriesService.
func NewSeriesService(db *DB) *SeriesService {
	return &SeriesService{db: db}
}

// CreateSeries inserts series in a single transaction, skipping stored titles.
func (s *SeriesService) CreateSeries(ctx context.Context, series []*imdbtop.Series) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO series (title, year, seasons, episodes)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	var inserted int
	for _, sr := range series {
		result, err := stmt.ExecContext(ctx, sr.Title, sr.Year, sr.Seasons, sr.Episodes)
		if err != nil {
			return 0, fmt.Errorf("inserting series %q: %w", sr.Title, err)
		}
		n, err := result.RowsAffected()
		if err != nil {
			return 0, err
		}
		if n == 0 {
			continue
		}
		if sr.ID, err = result.LastInsertId(); err != nil {
			return 0, err
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return inserted, nil
}

// FindSeries retrieves series matching the filter, ordered by ID.
func (s *SeriesService) FindSeries(ctx context.Context, filter imdbtop.SeriesFilter) ([]*imdbtop.Series, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, title, year, seasons, episodes FROM series WHERE 1=1")

	if filter.Title != nil {
		query.WriteString(" AND title = ?")
		args = append(args, *filter.Title)
	}

	query.WriteString(" ORDER BY id ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var series []*imdbtop.Series
	for rows.Next() {
		var sr imdbtop.Series
		if err := rows.Scan(&sr.ID, &sr.Title, &sr.Year, &sr.Seasons, &sr.Episodes); err != nil {
			return nil, err
		}
		series = append(series, &sr)
	}

	return series, rows.Err()
}
