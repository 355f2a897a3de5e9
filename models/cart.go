package models

import "github.com/shopspring/decimal"

// CartItem is a product snapshot plus the quantity being ordered. Carts live in memory only.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

func (c CartItem) LineTotal() decimal.Decimal {
	return c.Price.Mul(decimal.NewFromInt(int64(c.Quantity)))
}

func (c CartItem) LineCost() decimal.Decimal {
	return c.WholesalePrice.Mul(decimal.NewFromInt(int64(c.Quantity)))
}
