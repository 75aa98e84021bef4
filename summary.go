package imdbtop

import (
	"slices"
	"sort"
)

// DefaultPageWidth is the number of year columns shown per summary page.
const DefaultPageWidth = 8

// CategoryYearTable is a dense count table of classified titles keyed by
// category (rows) and year (columns). Combinations with no titles read 0.
//
// Rows are ordered from best to worst category and columns by ascending year,
// so rendering and export are reproducible.
type CategoryYearTable struct {
	categories []Category
	years      []int
	counts     map[Category]map[int]int
}

// Aggregate groups items by (category, year) and counts each group.
// Items without a category are ignored. Empty input yields an empty table.
func Aggregate(items []ClassifiedItem) *CategoryYearTable {
	t := &CategoryYearTable{counts: make(map[Category]map[int]int)}

	seenYears := make(map[int]struct{})
	for _, item := range items {
		if item.Category == "" {
			continue
		}
		row, ok := t.counts[item.Category]
		if !ok {
			row = make(map[int]int)
			t.counts[item.Category] = row
			t.categories = append(t.categories, item.Category)
		}
		row[item.Year]++

		if _, ok := seenYears[item.Year]; !ok {
			seenYears[item.Year] = struct{}{}
			t.years = append(t.years, item.Year)
		}
	}

	sort.SliceStable(t.categories, func(i, j int) bool {
		ri, rj := t.categories[i].Rank(), t.categories[j].Rank()
		if ri != rj {
			return ri > rj
		}
		return t.categories[i] < t.categories[j]
	})
	slices.Sort(t.years)

	return t
}

// Categories returns the row keys.
func (t *CategoryYearTable) Categories() []Category {
	return slices.Clone(t.categories)
}

// Years returns the column keys.
func (t *CategoryYearTable) Years() []int {
	return slices.Clone(t.years)
}

// Count returns the number of titles for the category and year.
func (t *CategoryYearTable) Count(category Category, year int) int {
	return t.counts[category][year]
}

// Row returns the counts for category aligned with Years.
func (t *CategoryYearTable) Row(category Category) []int {
	row := make([]int, len(t.years))
	for i, year := range t.years {
		row[i] = t.Count(category, year)
	}
	return row
}

// Total returns the sum of all cells.
func (t *CategoryYearTable) Total() int {
	var total int
	for _, row := range t.counts {
		for _, n := range row {
			total += n
		}
	}
	return total
}

// Empty reports whether the table has no rows.
func (t *CategoryYearTable) Empty() bool {
	return len(t.categories) == 0
}

// YearPages splits the year columns into consecutive chunks of at most width
// years. A non-positive width uses DefaultPageWidth. The table is not modified.
func (t *CategoryYearTable) YearPages(width int) [][]int {
	if width <= 0 {
		width = DefaultPageWidth
	}
	var pages [][]int
	for start := 0; start < len(t.years); start += width {
		end := min(start+width, len(t.years))
		pages = append(pages, slices.Clone(t.years[start:end]))
	}
	return pages
}
