package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsEmbedded(t *testing.T) {
	names, err := migrationNames()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "migrations/001_menu_items.sql", names[0])

	sql, err := migrationsFS.ReadFile(names[0])
	require.NoError(t, err)
	for _, item := range []string{"Burger", "Pizza", "Pasta", "Wings", "Shawarma"} {
		assert.True(t, strings.Contains(string(sql), "'"+item+"'"), "seed row for %s", item)
	}
}
