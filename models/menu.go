package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName     = errors.New("name is required")
	ErrNegativePrice = errors.New("price must be >= 0")
)

// MenuItem is a catalog entry. Its Name identifies it within a menu.
type MenuItem struct {
	Name        string
	Description string
	Price       decimal.Decimal
}

func NewMenuItem(name, description string, price decimal.Decimal) (MenuItem, error) {
	item := MenuItem{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Price:       price,
	}
	if err := item.Validate(); err != nil {
		return MenuItem{}, err
	}
	return item, nil
}

// Validate checks that the item has a name and a non-negative price.
func (m MenuItem) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyName
	}
	if m.Price.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}

// String renders "name - $price - description".
func (m MenuItem) String() string {
	return fmt.Sprintf("%s - $%s - %s", m.Name, FormatPrice(m.Price), m.Description)
}

// FormatPrice renders an amount with two decimal places.
func FormatPrice(d decimal.Decimal) string {
	return d.StringFixed(2)
}
