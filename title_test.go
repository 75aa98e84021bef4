package imdbtop_test

import (
	"testing"

	"github.com/fwojciec/imdbtop"
	"github.com/stretchr/testify/assert"
)

func TestSeries_String(t *testing.T) {
	t.Parallel()

	s := &imdbtop.Series{Title: "Breaking Bad", Year: 2008, Seasons: 5, Episodes: 62}

	assert.Equal(t, "Breaking Bad (2008) - Temporadas: 5, Episódios: 62", s.String())
}

func TestSeriesFromItems(t *testing.T) {
	t.Parallel()

	series := imdbtop.SeriesFromItems([]imdbtop.ChartItem{
		{Title: "The Wire", Year: 2002, Rating: 9.3},
	})

	assert.Equal(t, []*imdbtop.Series{{Title: "The Wire", Year: 2002, Seasons: 1, Episodes: 1}}, series)
}

func TestBuildCatalog(t *testing.T) {
	t.Parallel()

	movies := []*imdbtop.Movie{{Title: "Alien", Year: 1979, Rating: 8.5}}
	series := []*imdbtop.Series{{Title: "Chernobyl", Year: 2019, Seasons: 1, Episodes: 5}}

	catalog := imdbtop.BuildCatalog(movies, series)

	assert.Len(t, catalog, 2)
	assert.Equal(t, "Filme", imdbtop.TitleKind(catalog[0]))
	assert.Equal(t, "Alien", catalog[0].Name())
	assert.Equal(t, 1979, catalog[0].Released())
	assert.Equal(t, "Série", imdbtop.TitleKind(catalog[1]))
	assert.Equal(t, "Chernobyl (2019) - Temporadas: 1, Episódios: 5", catalog[1].String())
}

func TestRun_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, (&imdbtop.Run{Chart: imdbtop.ChartMovies, Source: imdbtop.SourceNetwork}).Validate())

	err := (&imdbtop.Run{Chart: "anime", Source: imdbtop.SourceNetwork}).Validate()
	assert.Equal(t, imdbtop.EINVALID, imdbtop.ErrorCode(err))

	err = (&imdbtop.Run{Chart: imdbtop.ChartSeries, Source: "ftp"}).Validate()
	assert.Equal(t, imdbtop.EINVALID, imdbtop.ErrorCode(err))
}
