package imdbtop

// Title is a catalog entry: either a *Movie or a *Series.
// The set of variants is closed; use a type switch for variant-specific behavior.
type Title interface {
	title()

	// Name returns the title text.
	Name() string

	// Released returns the release year.
	Released() int

	// String returns a one-line human readable description.
	String() string
}

// TitleKind returns the display label for the variant of t.
func TitleKind(t Title) string {
	switch t.(type) {
	case *Movie:
		return "Filme"
	case *Series:
		return "Série"
	}
	return "Outro"
}

// BuildCatalog returns all movies followed by all series.
func BuildCatalog(movies []*Movie, series []*Series) []Title {
	catalog := make([]Title, 0, len(movies)+len(series))
	for _, m := range movies {
		catalog = append(catalog, m)
	}
	for _, s := range series {
		catalog = append(catalog, s)
	}
	return catalog
}
