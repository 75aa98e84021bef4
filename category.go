package imdbtop

// Category is a rating tier label.
type Category string

// Category constants, from best to worst.
const (
	CategoryMasterpiece Category = "Obra-prima"
	CategoryExcellent   Category = "Excelente"
	CategoryGood        Category = "Bom"
	CategoryAverage     Category = "Mediano"
)

// Categories lists every category from best to worst.
var Categories = []Category{
	CategoryMasterpiece,
	CategoryExcellent,
	CategoryGood,
	CategoryAverage,
}

// Rank returns the position of the category in the tier ordering.
// Higher is better. Unknown categories rank 0.
func (c Category) Rank() int {
	switch c {
	case CategoryMasterpiece:
		return 4
	case CategoryExcellent:
		return 3
	case CategoryGood:
		return 2
	case CategoryAverage:
		return 1
	}
	return 0
}

// Classify maps a rating to its category. Lower bounds are inclusive.
func Classify(rating float64) Category {
	switch {
	case rating >= 9.0:
		return CategoryMasterpiece
	case rating >= 8.0:
		return CategoryExcellent
	case rating >= 7.0:
		return CategoryGood
	default:
		return CategoryAverage
	}
}

// ClassifiedItem is a chart item together with its category.
type ClassifiedItem struct {
	ChartItem
	Category Category `json:"categoria"`
}

// ClassifyItems classifies every item, preserving order.
func ClassifyItems(items []ChartItem) []ClassifiedItem {
	classified := make([]ClassifiedItem, 0, len(items))
	for _, item := range items {
		classified = append(classified, ClassifiedItem{
			ChartItem: item,
			Category:  Classify(item.Rating),
		})
	}
	return classified
}

// ClassifyMovies classifies stored movies, preserving order.
func ClassifyMovies(movies []*Movie) []ClassifiedItem {
	classified := make([]ClassifiedItem, 0, len(movies))
	for _, m := range movies {
		classified = append(classified, ClassifiedItem{
			ChartItem: ChartItem{Title: m.Title, Year: m.Year, Rating: m.Rating},
			Category:  m.Category(),
		})
	}
	return classified
}
