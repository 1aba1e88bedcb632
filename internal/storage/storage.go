// Package storage reads participant tables out of SQL match exports: local
// SQLite files, Turso (libsql) databases and PostgreSQL.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// DefaultTable is the table a match export keeps participant rows in.
const DefaultTable = "matches"

// Dialect selects the driver and catalog queries for a source.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectLibSQL   Dialect = "libsql"
	DialectPostgres Dialect = "pgx"
)

const pingTimeout = 10 * time.Second

// DetectDialect picks the dialect from the source: postgres:// and
// postgresql:// URLs are PostgreSQL, libsql:// URLs are Turso, anything
// else is a local SQLite file.
func DetectDialect(source string) Dialect {
	lower := strings.ToLower(source)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DialectPostgres
	case strings.HasPrefix(lower, "libsql://"):
		return DialectLibSQL
	}
	return DialectSQLite
}

// IsRemote reports whether source names a database server rather than a file.
func IsRemote(source string) bool {
	return DetectDialect(source) != DialectSQLite
}

// DB wraps a sql.DB opened on a match export.
type DB struct {
	conn    *sql.DB
	dialect Dialect
}

// Open connects to source. Local SQLite files are opened read-only.
func Open(source string) (*DB, error) {
	dialect := DetectDialect(source)
	dsn := source
	if dialect == DialectSQLite {
		dsn = fmt.Sprintf("file:%s?mode=ro", source)
	}
	conn, err := sql.Open(string(dialect), dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("open db: %w", err)
	}
	return &DB{conn: conn, dialect: dialect}, nil
}

// Dialect returns the dialect the handle was opened with.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// TableExists reports whether table is present in the database.
func (db *DB) TableExists(table string) (bool, error) {
	query := "SELECT COUNT(1) FROM sqlite_master WHERE type IN ('table', 'view') AND name = ?"
	if db.dialect == DialectPostgres {
		query = "SELECT COUNT(1) FROM information_schema.tables WHERE table_schema = current_schema() AND table_name = $1"
	}
	var count int
	if err := db.conn.QueryRow(query, table).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// Rows streams every row of table as text cells, header first. It satisfies
// the same Read contract as encoding/csv.Reader so callers can treat both
// sources alike.
type Rows struct {
	rows   *sql.Rows
	header []string
	sent   bool
}

// ReadTable starts a full scan of table.
func (db *DB) ReadTable(table string) (*Rows, error) {
	ok, err := db.TableExists(table)
	if err != nil {
		return nil, fmt.Errorf("check table %q: %w", table, err)
	}
	if !ok {
		return nil, fmt.Errorf("table %q not found", table)
	}
	// The name was just matched against the schema catalog, so quoting is enough.
	rows, err := db.conn.Query(fmt.Sprintf(`SELECT * FROM %q`, table))
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", table, err)
	}
	cols, err := rows.Columns()
	if err != nil {
		rows.Close()
		return nil, err
	}
	return &Rows{rows: rows, header: cols}, nil
}

// Read returns the column names on the first call and one row per call
// after that, then io.EOF.
func (r *Rows) Read() ([]string, error) {
	if !r.sent {
		r.sent = true
		return r.header, nil
	}
	if !r.rows.Next() {
		if err := r.rows.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	vals := make([]any, len(r.header))
	ptrs := make([]any, len(r.header))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	if err := r.rows.Scan(ptrs...); err != nil {
		return nil, err
	}
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = cellString(v)
	}
	return out, nil
}

// Close releases the result set.
func (r *Rows) Close() error {
	return r.rows.Close()
}

// cellString renders a dynamically typed column value as text.
func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case []byte:
		return string(x)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
