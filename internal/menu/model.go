package menu

import (
	"time"

	"github.com/shopspring/decimal"
)

// AllCategories is the wildcard category accepted by Filter.
const AllCategories = "All"

// Categories is the closed category enumeration, in display order.
var Categories = []string{
	"Rice Varieties",
	"Gravies",
	"Side Dishes",
	"Breakfast",
	"Complete Meals",
	"Others",
}

func IsCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// Dish is one orderable menu item.
type Dish struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Quantity    string          `json:"quantity"`
	MaxQuantity string          `json:"max_quantity,omitempty"`
	SpiceLevel  int             `json:"spice_level"`
	Ingredients string          `json:"ingredients"`
	Description string          `json:"description,omitempty"`
	Image       string          `json:"image,omitempty"`

	IsPopular bool `json:"is_popular"`
	IsLimited bool `json:"is_limited"`
	IsSpecial bool `json:"is_special"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// DishInput is the admin form payload for create and update.
type DishInput struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Quantity    string          `json:"quantity"`
	MaxQuantity string          `json:"max_quantity"`
	SpiceLevel  int             `json:"spice_level"`
	Ingredients string          `json:"ingredients"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	IsPopular   bool            `json:"is_popular"`
	IsLimited   bool            `json:"is_limited"`
	IsSpecial   bool            `json:"is_special"`
}

func (in DishInput) apply(d *Dish) {
	d.Name = in.Name
	d.Category = in.Category
	d.Price = in.Price
	d.Quantity = in.Quantity
	d.MaxQuantity = in.MaxQuantity
	d.SpiceLevel = in.SpiceLevel
	d.Ingredients = in.Ingredients
	d.Description = in.Description
	d.Image = in.Image
	d.IsPopular = in.IsPopular
	d.IsLimited = in.IsLimited
	d.IsSpecial = in.IsSpecial
}
