package entity

import "strings"

// Category is the reporter-asserted item category. The set is closed.
type Category string

const (
	CategoryBuzzCard    Category = "BuzzCard"
	CategoryElectronics Category = "Electronics"
	CategoryWaterBottle Category = "Water Bottle"
	CategoryClothing    Category = "Clothing"
	CategoryBag         Category = "Bag"
	CategoryKeys        Category = "Keys"
	CategoryBooks       Category = "Books"
	CategoryOther       Category = "Other"
)

// Categories is the picker order used by the client.
var Categories = []Category{
	CategoryBuzzCard,
	CategoryElectronics,
	CategoryWaterBottle,
	CategoryClothing,
	CategoryBag,
	CategoryKeys,
	CategoryBooks,
	CategoryOther,
}

// IsValid reports whether c is a member of the closed category set.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}

	return false
}

// ParseCategory resolves a category case-insensitively, returning its canonical spelling.
func ParseCategory(s string) (Category, bool) {
	trimmed := strings.TrimSpace(s)
	for _, known := range Categories {
		if strings.EqualFold(trimmed, string(known)) {
			return known, true
		}
	}

	return Category(trimmed), false
}

// CategoryNames returns the category set as strings.
func CategoryNames() []string {
	names := make([]string, 0, len(Categories))
	for _, c := range Categories {
		names = append(names, string(c))
	}

	return names
}
