package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"restaurant-desk/config"
	"restaurant-desk/console"
	"restaurant-desk/db"
	"restaurant-desk/logger"
	"restaurant-desk/metrics"
	"restaurant-desk/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logOut, err := openLog(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "log:", err)
		os.Exit(1)
	}
	defer logOut.Close()
	log := logger.New("restaurant-desk", logOut, cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		runMigrate(ctx, cfg)
		return
	}

	if cfg.Menu.Source == config.MenuSourceDB {
		if err := db.Init(ctx, cfg.DB); err != nil {
			fmt.Fprintln(os.Stderr, "db:", err)
			os.Exit(1)
		}
	}
	menu, err := services.LoadMenu(ctx, cfg.Menu)
	// The catalog is only read at startup.
	db.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "menu:", err)
		os.Exit(1)
	}

	admin, err := services.NewAdmin(cfg.Admin.Username, cfg.Admin.Password)
	if err != nil {
		fmt.Fprintln(os.Stderr, "admin:", err)
		os.Exit(1)
	}

	collector := metrics.NewCollector()
	if cfg.Metrics.Addr != "" {
		go func() {
			if err := collector.Serve(ctx, cfg.Metrics.Addr); err != nil {
				log.Error("metrics_failed", "", "metrics server stopped", err)
			}
		}()
	}

	log.Info("startup", "", fmt.Sprintf("menu loaded from %s with %d items", cfg.Menu.Source, menu.Len()))

	con := console.New(os.Stdin, os.Stdout, menu, admin, console.Options{
		OrderCapacity: cfg.Orders.Capacity,
		Logger:        log,
		Metrics:       collector,
	})
	if err := con.Run(ctx); err != nil {
		log.Error("console_failed", "", "reading input", err)
		fmt.Fprintln(os.Stderr, "input:", err)
		os.Exit(1)
	}
	if ctx.Err() != nil {
		log.Info("shutdown", "", "interrupted")
	}
}

func runMigrate(ctx context.Context, cfg *config.Config) {
	if err := db.Init(ctx, cfg.DB); err != nil {
		fmt.Fprintln(os.Stderr, "db:", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := applyMigrations(ctx, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openLog keeps log records off stdout so they never mix with the console dialog.
func openLog(cfg config.LogConfig) (io.WriteCloser, error) {
	if cfg.File == "" {
		return nopCloser{os.Stderr}, nil
	}
	return os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
