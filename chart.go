package imdbtop

// Chart identifies one of the scraped IMDb charts.
type Chart string

// Chart constants.
const (
	ChartMovies Chart = "movies"
	ChartSeries Chart = "series"
)

// ChartItem is a single title entry scraped from a chart page.
// All fields are always populated; items missing any of them are never produced.
type ChartItem struct {
	Title  string  `json:"title"`
	Year   int     `json:"year"`
	Rating float64 `json:"rating"`
}

// ChartExtractor turns chart page HTML into chart items.
type ChartExtractor interface {
	// Extract returns at most limit items in document order.
	// Items with a missing or malformed field are skipped silently.
	// Returns EINVALID only when the document itself cannot be parsed.
	Extract(html string, limit int) ([]ChartItem, error)
}
