package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMenuItem(t *testing.T) {
	tests := []struct {
		name    string
		item    string
		price   string
		wantErr error
	}{
		{"valid", "Burger", "8.99", nil},
		{"free item", "Water", "0", nil},
		{"empty name", "  ", "1.00", ErrEmptyName},
		{"negative price", "Soup", "-0.01", ErrNegativePrice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMenuItem(tt.item, "desc", decimal.RequireFromString(tt.price))
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMenuItem_String(t *testing.T) {
	item, err := NewMenuItem("Burger", "A delicious burger.", decimal.RequireFromString("8.99"))
	require.NoError(t, err)
	assert.Equal(t, "Burger - $8.99 - A delicious burger.", item.String())

	item, err = NewMenuItem("Tea", "Hot.", decimal.NewFromInt(2))
	require.NoError(t, err)
	assert.Equal(t, "Tea - $2.00 - Hot.", item.String())
}

func TestOrderItem_Total(t *testing.T) {
	pizza, err := NewMenuItem("Pizza", "A classic pizza.", decimal.RequireFromString("10.99"))
	require.NoError(t, err)

	line := NewOrderItem(pizza, 3)
	assert.True(t, line.Total().Equal(decimal.RequireFromString("32.97")), "got %s", line.Total())
	assert.Equal(t, "Pizza - $10.99 - A classic pizza.", line.Summary())
}

func TestMenuItem_Validate(t *testing.T) {
	tests := []struct {
		name    string
		item    MenuItem
		wantErr error
	}{
		{"zero price", MenuItem{Name: "Water"}, nil},
		{"empty name", MenuItem{Name: "", Price: decimal.NewFromInt(3)}, ErrEmptyName},
		{"blank name", MenuItem{Name: " \t", Price: decimal.NewFromInt(3)}, ErrEmptyName},
		{"negative price", MenuItem{Name: "Soup", Price: decimal.NewFromInt(-5)}, ErrNegativePrice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
