package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// OrderItem is one line of a customer's order. It copies the menu entry at
// order time, so later menu changes do not affect it.
type OrderItem struct {
	ItemName    string
	Description string
	UnitPrice   decimal.Decimal
	Quantity    int
}

func NewOrderItem(item MenuItem, quantity int) OrderItem {
	return OrderItem{
		ItemName:    item.Name,
		Description: item.Description,
		UnitPrice:   item.Price,
		Quantity:    quantity,
	}
}

func (o OrderItem) Total() decimal.Decimal {
	return o.UnitPrice.Mul(decimal.NewFromInt(int64(o.Quantity)))
}

// Summary renders the item part of the line the same way the menu does.
func (o OrderItem) Summary() string {
	return fmt.Sprintf("%s - $%s - %s", o.ItemName, FormatPrice(o.UnitPrice), o.Description)
}

// OrderLine is a requested (item name, quantity) pair before it is resolved against a menu.
type OrderLine struct {
	ItemName string
	Quantity int
}
