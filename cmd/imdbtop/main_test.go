package main_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/imdbtop"
	main "github.com/fwojciec/imdbtop/cmd/imdbtop"
	"github.com/fwojciec/imdbtop/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chartHTML(entries ...[3]string) string {
	var b strings.Builder
	b.WriteString(`<html><body><ul class="ipc-metadata-list">`)
	for _, e := range entries {
		fmt.Fprintf(&b, `<li class="ipc-metadata-list-summary-item"><h3 class="ipc-title__text">%s</h3>`+
			`<span class="cli-title-metadata-item">%s</span>`+
			`<span class="ipc-rating-star--rating">%s</span></li>`, e[0], e[1], e[2])
	}
	b.WriteString(`</ul></body></html>`)
	return b.String()
}

var (
	moviesPage = chartHTML(
		[3]string{"1. The Shawshank Redemption", "1994", "9.3"},
		[3]string{"2. The Godfather", "1972", "9.2"},
		[3]string{"3. Cidade de Deus", "2002", "8.6"},
	)
	seriesPage = chartHTML(
		[3]string{"1. Breaking Bad", "2008–2013", "9.5"},
	)
)

// chartFetcher serves the chart pages by URL.
func chartFetcher() *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			switch url {
			case "https://www.imdb.com/chart/top/":
				return moviesPage, nil
			case "https://www.imdb.com/chart/toptv/":
				return seriesPage, nil
			}
			return "", fmt.Errorf("unexpected url %s", url)
		},
		CloseFn: func() error { return nil },
	}
}

// dirArgs points every path flag into dir.
func dirArgs(dir string) []string {
	return []string{
		"--db", filepath.Join(dir, "imdb.db"),
		"--movies-html", filepath.Join(dir, "movies.html"),
		"--series-html", filepath.Join(dir, "series.html"),
		"--output-dir", filepath.Join(dir, "out"),
		"--config", filepath.Join(dir, "imdbtop.json"),
	}
}

func newTestMain() *main.Main {
	m := main.NewMain()
	m.EnvFile = ""
	m.Fetcher = chartFetcher()
	return m
}

func TestMain_Run_Scrape(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := newTestMain().Run(context.Background(), append([]string{"scrape"}, dirArgs(dir)...), stdout, stderr)

	require.NoError(t, err, stderr.String())
	output := stdout.String()
	assert.Contains(t, output, "3. Cidade de Deus")
	assert.Contains(t, output, "1. Breaking Bad")
	assert.Contains(t, output, "Inseridos 3 filmes e 1 séries novos no banco.")
	assert.Contains(t, output, "Processo concluído.")

	for _, name := range []string{"movies.csv", "series.csv", "summary.csv", "movies.json", "series.json", "summary.json", "imdbtop.xml"} {
		assert.FileExists(t, filepath.Join(dir, "out", name))
	}
	assert.FileExists(t, filepath.Join(dir, "movies.html"))
	assert.FileExists(t, filepath.Join(dir, "series.html"))

	csv, err := os.ReadFile(filepath.Join(dir, "out", "movies.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(csv), "3. Cidade de Deus,2002,8.6,Excelente")

	t.Run("second scrape inserts nothing new", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := newTestMain().Run(context.Background(), append([]string{"scrape"}, dirArgs(dir)...), stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Inseridos 0 filmes e 0 séries novos no banco.")
	})

	t.Run("runs lists recorded refreshes", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := newTestMain().Run(context.Background(), append([]string{"runs"}, dirArgs(dir)...), stdout, stderr)

		require.NoError(t, err)
		assert.Equal(t, 4, strings.Count(stdout.String(), "network"))
	})

	t.Run("report reads the stored tables", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := newTestMain().Run(context.Background(), append([]string{"report"}, dirArgs(dir)...), stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "1. The Shawshank Redemption")
		assert.Contains(t, stdout.String(), "Obra-prima")
	})

	t.Run("report filters movies by minimum rating", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		args := append([]string{"report", "--min-rating", "9.0"}, dirArgs(dir)...)
		err := newTestMain().Run(context.Background(), args, stdout, stderr)

		require.NoError(t, err, stderr.String())
		assert.Contains(t, stdout.String(), "1. The Shawshank Redemption")
		assert.NotContains(t, stdout.String(), "3. Cidade de Deus")
	})
}

func TestMain_Run_ScrapeStoresBlankTitleAndZeroYear(t *testing.T) {
	t.Parallel()

	page := chartHTML(
		[3]string{"1. The Shawshank Redemption", "1994", "9.3"},
		[3]string{" ", "1972", "9.2"},
		[3]string{"3. Undated", "0000", "8.2"},
		[3]string{"4. Cidade de Deus", "2002", "8.6"},
	)
	m := newTestMain()
	m.Fetcher = &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			if url == "https://www.imdb.com/chart/top/" {
				return page, nil
			}
			return seriesPage, nil
		},
		CloseFn: func() error { return nil },
	}

	dir := t.TempDir()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), append([]string{"scrape"}, dirArgs(dir)...), stdout, stderr)

	require.NoError(t, err, stderr.String())
	assert.Contains(t, stdout.String(), "Inseridos 4 filmes e 1 séries novos no banco.")

	csv, err := os.ReadFile(filepath.Join(dir, "out", "movies.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(csv), "1. The Shawshank Redemption,1994,9.3,Obra-prima")
	assert.Contains(t, string(csv), ",1972,9.2,Obra-prima")
	assert.Contains(t, string(csv), "3. Undated,0,8.2,Excelente")
	assert.Contains(t, string(csv), "4. Cidade de Deus,2002,8.6,Excelente")
}

func TestMain_Run_ConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	config := `{"limit": 1, "output_dir": "` + filepath.ToSlash(filepath.Join(dir, "configured")) + `"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "imdbtop.json"), []byte(config), 0644))

	args := []string{
		"scrape",
		"--db", filepath.Join(dir, "imdb.db"),
		"--movies-html", filepath.Join(dir, "movies.html"),
		"--series-html", filepath.Join(dir, "series.html"),
		"--config", filepath.Join(dir, "imdbtop.json"),
	}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := newTestMain().Run(context.Background(), args, stdout, stderr)

	require.NoError(t, err, stderr.String())
	assert.Contains(t, stdout.String(), "Inseridos 1 filmes e 1 séries novos no banco.")
	assert.FileExists(t, filepath.Join(dir, "configured", "movies.csv"))
}

func TestMain_Run_EnvOverridesDefault(t *testing.T) {
	t.Setenv("IMDBTOP_LIMIT", "2")

	dir := t.TempDir()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := newTestMain().Run(context.Background(), append([]string{"scrape"}, dirArgs(dir)...), stdout, stderr)

	require.NoError(t, err, stderr.String())
	assert.Contains(t, stdout.String(), "Inseridos 2 filmes e 1 séries novos no banco.")
}

func TestMain_Run_ExportRejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := newTestMain().Run(context.Background(), append([]string{"export", "--format", "yaml"}, dirArgs(dir)...), stdout, stderr)

	require.Error(t, err)
	assert.Equal(t, imdbtop.EINVALID, imdbtop.ErrorCode(err))
	assert.Contains(t, stderr.String(), "unknown export format")
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"--help flag", []string{"--help"}},
		{"-h flag", []string{"-h"}},
		{"help command", []string{"help"}},
		{"command help", []string{"scrape", "--help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dbPath := filepath.Join(t.TempDir(), "should-not-exist.db")
			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			err := newTestMain().Run(context.Background(), append(tt.args, "--db", dbPath), stdout, stderr)

			require.NoError(t, err)
			assert.Contains(t, stdout.String(), "Usage: imdbtop")
			assert.Empty(t, stderr.String())

			_, statErr := os.Stat(dbPath)
			assert.True(t, os.IsNotExist(statErr), "database file should not be created for help")
		})
	}
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := newTestMain().Run(context.Background(), []string{}, stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, stdout.String(), "Usage: imdbtop")
}
