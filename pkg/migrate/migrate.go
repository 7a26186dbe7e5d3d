package migrate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jmoiron/sqlx"
)

// FromFile executes all SQL queries from the files over a database
// connection, in the given order.
func FromFile(ctx context.Context, db *sqlx.DB, fileNames ...string) error {
	for _, fileName := range fileNames {
		fileBytes, err := os.ReadFile(fileName)
		if err != nil {
			return fmt.Errorf("os.ReadFile: %w", err)
		}

		if _, err = db.ExecContext(ctx, string(fileBytes)); err != nil {
			return fmt.Errorf("db.Exec(%s): %w", filepath.Base(fileName), err)
		}
	}

	return nil
}

// FromDir applies every *.sql file in dir sorted by name. Returns the applied
// file names.
func FromDir(ctx context.Context, db *sqlx.DB, dir string) ([]string, error) {
	fileNames, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return nil, fmt.Errorf("filepath.Glob: %w", err)
	}

	sort.Strings(fileNames)

	if err := FromFile(ctx, db, fileNames...); err != nil {
		return nil, err
	}

	return fileNames, nil
}
