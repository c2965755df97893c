package services

import (
	"context"
	"errors"
	"fmt"
	"os"

	"restaurant-desk/config"
	"restaurant-desk/db"
	"restaurant-desk/models"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type menuFile struct {
	Items []menuFileItem `yaml:"items"`
}

type menuFileItem struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
}

// LoadMenuFile reads seed items from a YAML file of the form
//
//	items:
//	  - name: Burger
//	    description: A delicious burger.
//	    price: "8.99"
func LoadMenuFile(path string) ([]models.MenuItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}
	return ParseMenuYAML(data)
}

func ParseMenuYAML(data []byte) ([]models.MenuItem, error) {
	var f menuFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse menu file: %w", err)
	}
	items := make([]models.MenuItem, 0, len(f.Items))
	for i, raw := range f.Items {
		price, err := ParsePrice(raw.Price)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		item, err := models.NewMenuItem(raw.Name, raw.Description, price)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// ListMenuItems reads the catalog from the menu_items table in id order.
func ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	if db.Pool == nil {
		return nil, errors.New("database is not initialized")
	}
	rows, err := db.Pool.Query(ctx, `
		SELECT name, description, price::text FROM menu_items
		ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var name, description, priceText string
		if err := rows.Scan(&name, &description, &priceText); err != nil {
			return nil, err
		}
		price, err := decimal.NewFromString(priceText)
		if err != nil {
			return nil, fmt.Errorf("menu item %q: %w", name, err)
		}
		item, err := models.NewMenuItem(name, description, price)
		if err != nil {
			return nil, fmt.Errorf("menu item %q: %w", name, err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// LoadMenu builds the startup menu from the configured source.
func LoadMenu(ctx context.Context, cfg config.MenuConfig) (*Menu, error) {
	var items []models.MenuItem
	var err error
	switch cfg.Source {
	case config.MenuSourceFile:
		items, err = LoadMenuFile(cfg.File)
	case config.MenuSourceDB:
		items, err = ListMenuItems(ctx)
	default:
		items = DefaultMenuItems()
	}
	if err != nil {
		return nil, err
	}
	return SeedMenu(cfg.Capacity, items)
}
