package main

import (
	"context"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path"
	"slices"

	"restaurant-desk/db"
)

// migrationsFS holds the schema and seed SQL applied by the migrate subcommand.
//
//go:embed migrations/*.sql
var migrationsFS embed.FS

func migrationNames() ([]string, error) {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	slices.Sort(names)
	return names, nil
}

// applyMigrations runs every embedded file in name order and reports each one
// to progress. Each file must be safe to re-run.
func applyMigrations(ctx context.Context, progress io.Writer) error {
	names, err := migrationNames()
	if err != nil {
		return err
	}
	for _, name := range names {
		script, err := migrationsFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if _, err := db.Pool.Exec(ctx, string(script)); err != nil {
			return fmt.Errorf("migrate %s: %w", name, err)
		}
		fmt.Fprintf(progress, "applied %s\n", path.Base(name))
	}
	return nil
}
