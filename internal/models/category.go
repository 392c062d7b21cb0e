package models

import "strings"

// Category is one of the fixed product category labels.
type Category string

const (
	CategoryFood        Category = "FOOD"
	CategoryElectronics Category = "ELECTRONICS"
	CategoryClothing    Category = "CLOTHING"
	CategoryBooks       Category = "BOOKS"
	CategoryOther       Category = "OTHER"
)

// AllCategories returns the closed set of valid categories.
func AllCategories() []Category {
	return []Category{
		CategoryFood,
		CategoryElectronics,
		CategoryClothing,
		CategoryBooks,
		CategoryOther,
	}
}

// CategoryExists reports whether value matches one of the fixed
// category labels, ignoring case.
func CategoryExists(value string) bool {
	for _, c := range AllCategories() {
		if strings.EqualFold(string(c), value) {
			return true
		}
	}
	return false
}
