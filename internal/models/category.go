package models

import (
	"regexp"

	"github.com/shopspring/decimal"
)

const DefaultCategoryColor = "#64748b"

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Category is a named expense bucket with a spending limit.
type Category struct {
	DefaultModel
	Name      string          `json:"name" example:"Food"`
	Spent     decimal.Decimal `json:"spent" example:"375"` // Sum of all expenses in this category. Computed, never stored truth
	MaxBudget decimal.Decimal `json:"maxBudget" example:"500"`
	Color     string          `json:"color" example:"#22c55e"`
}

func (Category) Self() string {
	return "Category"
}

func (Category) Collection() Collection {
	return Categories
}

// Normalize trims whitespace, defaults the color and validates the
// category. Spent is reset since it is derived from the transactions.
func (c *Category) Normalize() error {
	trim(&c.Name, &c.Color)
	c.Spent = decimal.Zero

	if c.Name == "" {
		return required("name")
	}

	if c.Color == "" {
		c.Color = DefaultCategoryColor
	} else if !colorPattern.MatchString(c.Color) {
		return ErrColorInvalid
	}

	return checkAmount(c.MaxBudget)
}
