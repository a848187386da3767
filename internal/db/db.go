package db

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"testing"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	Driver_Postgres = "postgres"
	Driver_Sqlite   = "sqlite"
)

//go:embed migrations
var migrations embed.FS

func New(driver, dsn string) (*sql.DB, error) {
	switch driver {
	case Driver_Postgres, Driver_Sqlite:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	dbConn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s connection: %w", driver, err)
	}
	if driver == Driver_Sqlite {
		// sqlite serializes writers anyway, and an in-memory
		// database only exists on the connection that created it
		dbConn.SetMaxOpenConns(1)
	}

	return dbConn, nil
}

// Migrate applies every bundled migration for the driver in file name
// order. Migrations are idempotent.
func Migrate(dbConn *sql.DB, driver string) error {
	dir := path.Join("migrations", driver)
	entries, err := fs.ReadDir(migrations, dir)
	if err != nil {
		return fmt.Errorf("no migrations for driver %q: %w", driver, err)
	}
	names := []string{}
	for _, e := range entries {
		if !e.IsDir() && path.Ext(e.Name()) == ".sql" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		contents, err := migrations.ReadFile(path.Join(dir, name))
		if err != nil {
			return err
		}
		if _, err := dbConn.Exec(string(contents)); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", name, err)
		}
	}

	return nil
}

// NewTest returns a migrated in-memory sqlite database that is closed when
// the test ends.
func NewTest(t *testing.T) *sql.DB {
	t.Helper()
	dbConn, err := New(Driver_Sqlite, ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		dbConn.Close()
	})
	if err := Migrate(dbConn, Driver_Sqlite); err != nil {
		t.Fatal(err)
	}

	return dbConn
}

func RollbackAfterTest(t *testing.T, tx *sql.Tx) {
	t.Cleanup(func() {
		err := tx.Rollback()
		if err != nil && err != sql.ErrTxDone {
			panic(err)
		}
	})
}
