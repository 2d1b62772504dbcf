package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Category is the fixed menu grouping shown as filter tabs
type Category string

const (
	CategoryCoffee   Category = "coffee"
	CategoryTea      Category = "tea"
	CategoryPastry   Category = "pastry"
	CategorySandwich Category = "sandwich"
	CategoryDessert  Category = "dessert"
)

// Categories lists every known category in display order.
func Categories() []Category {
	return []Category{CategoryCoffee, CategoryTea, CategoryPastry, CategorySandwich, CategoryDessert}
}

type Product struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    Category        `json:"category"`
	ImageURL    string          `json:"image_url"`
}

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if Category(s) == c {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}
