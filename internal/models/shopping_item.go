package models

import "github.com/shopspring/decimal"

// ShoppingItem is an entry on the shopping list.
type ShoppingItem struct {
	DefaultModel
	Name      string          `json:"name" example:"Oat milk"`
	Price     decimal.Decimal `json:"price" example:"1.89"`
	Purchased bool            `json:"purchased" example:"false"`
}

func (ShoppingItem) Self() string {
	return "Shopping Item"
}

func (ShoppingItem) Collection() Collection {
	return ShoppingItems
}

func (s *ShoppingItem) Normalize() error {
	trim(&s.Name)

	if s.Name == "" {
		return required("name")
	}

	return checkAmount(s.Price)
}
