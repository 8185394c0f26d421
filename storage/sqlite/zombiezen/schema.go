package zombiezen

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// Scripts are applied in name order; PRAGMA user_version counts the ones
// already applied to a database.
//
//go:embed sql/*.sql
var sqlFiles embed.FS

func scripts() ([]string, error) {
	names, err := fs.Glob(sqlFiles, "sql/*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// CreateSchemas brings the database up to the last embedded script. Each
// script runs in its own savepoint together with the version bump.
func CreateSchemas(pool *sqlitex.Pool) error {
	names, err := scripts()
	if err != nil {
		return err
	}

	conn, err := pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer pool.Put(conn)

	version, err := userVersion(conn)
	if err != nil {
		return err
	}

	for i := version; i < len(names); i++ {
		if err := applyScript(conn, names[i], i+1); err != nil {
			return err
		}
	}

	return nil
}

func applyScript(conn *sqlite.Conn, name string, version int) (err error) {
	script, err := sqlFiles.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read embedded sql file %s: %w", name, err)
	}

	defer sqlitex.Save(conn)(&err)

	if err = sqlitex.ExecuteScript(conn, string(script), nil); err != nil {
		return fmt.Errorf("failed to execute script %s: %w", name, err)
	}

	return sqlitex.Execute(conn, fmt.Sprintf("PRAGMA user_version = %d", version), nil)
}

func userVersion(conn *sqlite.Conn) (int, error) {
	var version int
	err := sqlitex.Execute(conn, "PRAGMA user_version", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			version = stmt.ColumnInt(0)
			return nil
		},
	})
	return version, err
}
