package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"ADMIN_USERNAME", "ADMIN_PASSWORD", "MENU_SOURCE", "MENU_FILE", "MENU_CAPACITY", "ORDER_CAPACITY", "DB_PORT", "LOG_LEVEL", "METRICS_ADDR"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, "admin123", cfg.Admin.Password)
	assert.Equal(t, MenuSourceBuiltin, cfg.Menu.Source)
	assert.Zero(t, cfg.Menu.Capacity)
	assert.Zero(t, cfg.Orders.Capacity)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.Metrics.Addr)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "boss")
	t.Setenv("MENU_SOURCE", "file")
	t.Setenv("MENU_FILE", "menu.yaml")
	t.Setenv("MENU_CAPACITY", "10")
	t.Setenv("ORDER_CAPACITY", "10")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "boss", cfg.Admin.Username)
	assert.Equal(t, "menu.yaml", cfg.Menu.File)
	assert.Equal(t, 10, cfg.Menu.Capacity)
	assert.Equal(t, 10, cfg.Orders.Capacity)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad port", map[string]string{"DB_PORT": "abc"}},
		{"bad capacity", map[string]string{"MENU_CAPACITY": "ten"}},
		{"negative capacity", map[string]string{"ORDER_CAPACITY": "-1"}},
		{"unknown source", map[string]string{"MENU_SOURCE": "ftp"}},
		{"file source without path", map[string]string{"MENU_SOURCE": "file", "MENU_FILE": ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestDBConfig_ConnString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5433, User: "u", Password: "p", Database: "menu"}
	assert.Equal(t, "postgres://u:p@db:5433/menu", c.ConnString())
}
