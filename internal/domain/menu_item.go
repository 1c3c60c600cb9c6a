package domain

import "time"

// MenuCategory groups menu items for display.
type MenuCategory string

const (
	CategoryCoffee  MenuCategory = "Coffee"
	CategoryTea     MenuCategory = "Tea"
	CategoryPastry  MenuCategory = "Pastry"
	CategoryDessert MenuCategory = "Dessert"
	CategorySnack   MenuCategory = "Snack"
	CategoryOther   MenuCategory = "Other"
)

// MenuItem is a single entry on the cafe menu.
type MenuItem struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Price        float64      `json:"price"`
	Description  string       `json:"description"`
	Category     MenuCategory `json:"category"`
	ImageURL     string       `json:"image_url"`
	Available    bool         `json:"available"`
	DisplayOrder int          `json:"display_order"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

const DefaultMenuItemImage = "default-menu-item.jpg"
