package services

import (
	"fmt"
	"iter"
	"slices"

	"restaurant-desk/models"

	"github.com/shopspring/decimal"
)

// Menu is the ordered restaurant catalog. Item names are unique.
type Menu struct {
	items    []models.MenuItem
	capacity int // 0 = unbounded
}

func NewMenu(capacity int) *Menu {
	return &Menu{capacity: capacity}
}

func (m *Menu) AddItem(item models.MenuItem) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("invalid item %q: %w", item.Name, err)
	}
	if _, ok := m.FindItem(item.Name); ok {
		return fmt.Errorf("%w: %q", ErrDuplicateItem, item.Name)
	}
	if m.capacity > 0 && len(m.items) >= m.capacity {
		return fmt.Errorf("%w: cannot add more than %d items", ErrMenuFull, m.capacity)
	}
	m.items = append(m.items, item)
	return nil
}

// FindItem returns the item with exactly this name (case-sensitive).
func (m *Menu) FindItem(name string) (models.MenuItem, bool) {
	i := m.indexOf(name)
	if i < 0 {
		return models.MenuItem{}, false
	}
	return m.items[i], true
}

// RemoveItem deletes the named item; the items after it keep their relative order.
func (m *Menu) RemoveItem(name string) (models.MenuItem, error) {
	i := m.indexOf(name)
	if i < 0 {
		return models.MenuItem{}, fmt.Errorf("%w: %q", ErrItemNotFound, name)
	}
	removed := m.items[i]
	m.items = slices.Delete(m.items, i, i+1)
	return removed, nil
}

func (m *Menu) Len() int {
	return len(m.items)
}

func (m *Menu) Items() []models.MenuItem {
	return slices.Clone(m.items)
}

// Display yields one formatted row per item in insertion order.
func (m *Menu) Display() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, item := range m.items {
			if !yield(item.String()) {
				return
			}
		}
	}
}

func (m *Menu) indexOf(name string) int {
	return slices.IndexFunc(m.items, func(it models.MenuItem) bool {
		return it.Name == name
	})
}

// DefaultMenuItems is the catalog a fresh restaurant starts with.
func DefaultMenuItems() []models.MenuItem {
	return []models.MenuItem{
		{Name: "Burger", Description: "A delicious burger.", Price: decimal.RequireFromString("8.99")},
		{Name: "Pizza", Description: "A classic pizza.", Price: decimal.RequireFromString("10.99")},
		{Name: "Pasta", Description: "Delicious pasta.", Price: decimal.RequireFromString("12.49")},
		{Name: "Wings", Description: "Crispy wings.", Price: decimal.RequireFromString("18.49")},
		{Name: "Shawarma", Description: "Chicken shawarma.", Price: decimal.RequireFromString("18.49")},
	}
}

// SeedMenu builds a menu from items, failing on the first item that cannot be added.
func SeedMenu(capacity int, items []models.MenuItem) (*Menu, error) {
	m := NewMenu(capacity)
	for _, it := range items {
		if err := m.AddItem(it); err != nil {
			return nil, fmt.Errorf("seed %q: %w", it.Name, err)
		}
	}
	return m, nil
}

// ParsePrice parses a user-entered price such as "8.99" or "$8.99".
func ParsePrice(s string) (decimal.Decimal, error) {
	if len(s) > 0 && s[0] == '$' {
		s = s[1:]
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: must be >= 0", ErrInvalidPrice)
	}
	return d, nil
}
