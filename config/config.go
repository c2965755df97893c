package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	MenuSourceBuiltin = "builtin"
	MenuSourceFile    = "file"
	MenuSourceDB      = "db"
)

type Config struct {
	Admin   AdminConfig
	Menu    MenuConfig
	Orders  OrdersConfig
	DB      DBConfig
	Log     LogConfig
	Metrics MetricsConfig
}

type AdminConfig struct {
	Username string
	Password string // plain; hashed once at startup
}

type MenuConfig struct {
	Source   string // "builtin", "file" or "db"
	File     string
	Capacity int // 0 = unbounded
}

type OrdersConfig struct {
	Capacity int // 0 = unbounded
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type LogConfig struct {
	Level string
	File  string // empty = stderr
}

type MetricsConfig struct {
	Addr string // empty = no /metrics endpoint
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := getEnvInt("DB_PORT", 5432)
	if err != nil {
		return nil, err
	}
	menuCap, err := getEnvInt("MENU_CAPACITY", 0)
	if err != nil {
		return nil, err
	}
	orderCap, err := getEnvInt("ORDER_CAPACITY", 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", "admin"),
			Password: getEnv("ADMIN_PASSWORD", "admin123"),
		},
		Menu: MenuConfig{
			Source:   getEnv("MENU_SOURCE", MenuSourceBuiltin),
			File:     getEnv("MENU_FILE", ""),
			Capacity: menuCap,
		},
		Orders: OrdersConfig{
			Capacity: orderCap,
		},
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     port,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "restaurant"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "warn"),
			File:  getEnv("LOG_FILE", ""),
		},
		Metrics: MetricsConfig{
			Addr: getEnv("METRICS_ADDR", ""),
		},
	}

	switch cfg.Menu.Source {
	case MenuSourceBuiltin, MenuSourceDB:
	case MenuSourceFile:
		if cfg.Menu.File == "" {
			return nil, fmt.Errorf("MENU_SOURCE=file requires MENU_FILE")
		}
	default:
		return nil, fmt.Errorf("invalid MENU_SOURCE: %q", cfg.Menu.Source)
	}
	if cfg.Menu.Capacity < 0 || cfg.Orders.Capacity < 0 {
		return nil, fmt.Errorf("capacities must be >= 0")
	}
	return cfg, nil
}

// ConnString returns the Postgres URL for the catalog database.
func (c DBConfig) ConnString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s",
		c.User, c.Password, c.Host, c.Port, c.Database,
	)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
