package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/imdbtop"
)

// Compile-time interface verification.
var _ imdbtop.MovieService = (*MovieService)(nil)

// MovieService implements imdbtop.MovieService using SQLite.
type MovieService struct {
	db *DB
}

// NewMovieService creates a new MovieService.
func NewMovieService(db *DB) *MovieService {
	return &MovieService{db: db}
}

// CreateMovies inserts movies in a single transaction. Movies whose title is
// already stored are skipped and keep a zero ID. An empty title or a zero year
// is stored as extracted.
func (s *MovieService) CreateMovies(ctx context.Context, movies []*imdbtop.Movie) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO movies (title, year, rating)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	var inserted int
	for _, m := range movies {
		result, err := stmt.ExecContext(ctx, m.Title, m.Year, m.Rating)
		if err != nil {
			return 0, fmt.Errorf("inserting movie %q: %w", m.Title, err)
		}
		n, err := result.RowsAffected()
		if err != nil {
			return 0, err
		}
		if n == 0 {
			continue
		}
		if m.ID, err = result.LastInsertId(); err != nil {
			return 0, err
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return inserted, nil
}

// FindMovies retrieves movies matching the filter, ordered by ID.
func (s *MovieService) FindMovies(ctx context.Context, filter imdbtop.MovieFilter) ([]*imdbtop.Movie, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, title, year, rating FROM movies WHERE 1=1")

	if filter.Title != nil {
		query.WriteString(" AND title = ?")
		args = append(args, *filter.Title)
	}
	if filter.MinRating != nil {
		query.WriteString(" AND rating >= ?")
		args = append(args, *filter.MinRating)
	}

	query.WriteString(" ORDER BY id ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movies []*imdbtop.Movie
	for rows.Next() {
		var m imdbtop.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Year, &m.Rating); err != nil {
			return nil, err
		}
		movies = append(movies, &m)
	}

	return movies, rows.Err()
}
