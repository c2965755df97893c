package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"restaurant-desk/config"
	"restaurant-desk/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMenu = `
items:
  - name: Burger
    description: A delicious burger.
    price: "8.99"
  - name: Lemonade
    description: Fresh.
    price: 3.5
`

func TestParseMenuYAML(t *testing.T) {
	items, err := ParseMenuYAML([]byte(sampleMenu))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Lemonade", items[1].Name)
	assert.Equal(t, "3.50", items[1].Price.StringFixed(2))
}

func TestParseMenuYAML_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":       "items: [",
		"missing name":   "items:\n  - price: \"1\"\n",
		"negative price": "items:\n  - name: X\n    price: \"-2\"\n",
		"missing price":  "items:\n  - name: X\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseMenuYAML([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadMenu_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleMenu), 0o600))

	m, err := LoadMenu(context.Background(), config.MenuConfig{Source: config.MenuSourceFile, File: path})
	require.NoError(t, err)
	assert.Equal(t, []string{"Burger", "Lemonade"}, names(m))
}

func TestLoadMenu_Builtin(t *testing.T) {
	m, err := LoadMenu(context.Background(), config.MenuConfig{Source: config.MenuSourceBuiltin})
	require.NoError(t, err)
	assert.Equal(t, []string{"Burger", "Pizza", "Pasta", "Wings", "Shawarma"}, names(m))
}

func TestLoadMenu_BuiltinOverCapacity(t *testing.T) {
	_, err := LoadMenu(context.Background(), config.MenuConfig{Source: config.MenuSourceBuiltin, Capacity: 3})
	assert.ErrorIs(t, err, ErrMenuFull)
}

// Integration test: requires a migrated database. Skip if db.Pool is nil or -short.
func TestListMenuItems_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping menu integration test in short mode")
	}
	if db.Pool == nil {
		t.Skip("skipping menu integration test: no DB pool")
	}
	items, err := ListMenuItems(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, items)
}

func TestListMenuItems_NoPool(t *testing.T) {
	if db.Pool != nil {
		t.Skip("pool configured")
	}
	_, err := ListMenuItems(context.Background())
	assert.Error(t, err)
}
