package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"centrodrinks/internal/domain"
)

// CategoryAll matches every category in Filter.
const CategoryAll = "All"

// Categories lists the selectable catalog categories, CategoryAll first.
var Categories = []string{CategoryAll, "Snaks", "Pollo", "Banderilla", "Bebidas"}

var products = []domain.Product{
	{
		ID:       "1",
		Title:    "Alitas",
		Category: "Pollo",
		Price:    decimal.NewFromInt(120),
		ImageURL: "https://i.pinimg.com/1200x/ec/cb/9c/eccb9c8e913452d6179022f3173e3fe4.jpg",
	},
	{
		ID:       "2",
		Title:    "Nachos",
		Category: "Snaks",
		Price:    decimal.NewFromInt(50),
		ImageURL: "https://i.pinimg.com/736x/0f/d3/40/0fd34039434012970c7170071c237781.jpg",
	},
	{
		ID:       "3",
		Title:    "Azulito",
		Category: "Bebidas",
		Price:    decimal.NewFromInt(70),
		ImageURL: "https://i.pinimg.com/1200x/2c/30/48/2c3048b418078d5a6ca41392acd0d8f6.jpg",
	},
	{
		ID:       "4",
		Title:    "Banderilla Papas",
		Category: "Banderilla",
		Price:    decimal.NewFromInt(55),
		ImageURL: "https://i.pinimg.com/736x/46/9b/1a/469b1a760bdc1adb24e9b73dfdeb20b7.jpg",
	},
}

// Products returns a copy of the full catalog in its defined order.
func Products() []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)
	return out
}

// ByID returns the catalog entry with the given id.
func ByID(id string) (domain.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Filter returns the products matching category and search text, preserving
// catalog order. Category CategoryAll matches everything; the search text is a
// case-insensitive substring match on title or category, and an empty search
// matches every product.
func Filter(items []domain.Product, category, search string) []domain.Product {
	needle := strings.ToLower(search)
	out := make([]domain.Product, 0, len(items))
	for _, p := range items {
		if category != CategoryAll && p.Category != category {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Title), needle) &&
			!strings.Contains(strings.ToLower(p.Category), needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}
