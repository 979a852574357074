package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/mattn/go-sqlite3"
)

// MemoryPath selects a private in-memory database instead of a file.
const MemoryPath = ":memory:"

// DB wraps split read/write Bun connections.
type DB struct {
	WriteSQL *sql.DB
	ReadSQL  *sql.DB
	W        *bun.DB
	R        *bun.DB

	// anchor keeps a shared in-memory database alive while the pools recycle connections.
	anchor *sql.DB
}

// OpenDB initializes sqlite handles for immediate writer tx and pooled reads.
//
// MemoryPath opens a uniquely named shared-cache memory database that lives
// until Close.
func OpenDB(path string) (*DB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	if path == MemoryPath {
		return openMemoryDB("effix-" + uuid.NewString())
	}
	return openFileDB(path)
}

// IsMemory reports whether path selects the in-memory store.
func IsMemory(path string) bool {
	return strings.TrimSpace(path) == MemoryPath
}

func openFileDB(path string) (*DB, error) {
	writeDSN := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_txlock=immediate", path)
	readDSN := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&mode=ro&_query_only=1", path)

	wsql, err := sql.Open("sqlite3", writeDSN)
	if err != nil {
		return nil, fmt.Errorf("open write db: %w", err)
	}
	wsql.SetMaxOpenConns(1)
	wsql.SetConnMaxLifetime(15 * time.Minute)

	rsql, err := sql.Open("sqlite3", readDSN)
	if err != nil {
		wsql.Close()
		return nil, fmt.Errorf("open read db: %w", err)
	}
	rsql.SetMaxOpenConns(8)
	rsql.SetConnMaxIdleTime(5 * time.Minute)
	rsql.SetConnMaxLifetime(15 * time.Minute)

	// If read-only mode fails because DB is new/missing, fallback to read-write for bootstrap.
	if err := rsql.Ping(); err != nil && strings.Contains(err.Error(), "unable to open database file") {
		rsql.Close()
		rsql, err = sql.Open("sqlite3", fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_query_only=1", path))
		if err != nil {
			wsql.Close()
			return nil, fmt.Errorf("open fallback read db: %w", err)
		}
	}

	if _, err := rsql.Exec("PRAGMA query_only = ON"); err != nil {
		wsql.Close()
		rsql.Close()
		return nil, fmt.Errorf("enable read query_only: %w", err)
	}

	return newDB(wsql, rsql, nil), nil
}

func openMemoryDB(name string) (*DB, error) {
	base := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	anchor, err := sql.Open("sqlite3", base)
	if err != nil {
		return nil, fmt.Errorf("open memory anchor: %w", err)
	}
	anchor.SetMaxOpenConns(1)
	anchor.SetMaxIdleConns(1)
	anchor.SetConnMaxLifetime(0)
	if err := anchor.Ping(); err != nil {
		anchor.Close()
		return nil, fmt.Errorf("ping memory anchor: %w", err)
	}

	wsql, err := sql.Open("sqlite3", base+"&_txlock=immediate")
	if err != nil {
		anchor.Close()
		return nil, fmt.Errorf("open write db: %w", err)
	}
	wsql.SetMaxOpenConns(1)

	rsql, err := sql.Open("sqlite3", base+"&_query_only=1")
	if err != nil {
		wsql.Close()
		anchor.Close()
		return nil, fmt.Errorf("open read db: %w", err)
	}
	rsql.SetMaxOpenConns(8)
	rsql.SetConnMaxIdleTime(5 * time.Minute)

	return newDB(wsql, rsql, anchor), nil
}

func newDB(wsql, rsql, anchor *sql.DB) *DB {
	return &DB{
		WriteSQL: wsql,
		ReadSQL:  rsql,
		W:        bun.NewDB(wsql, sqlitedialect.New()),
		R:        bun.NewDB(rsql, sqlitedialect.New()),
		anchor:   anchor,
	}
}

// Close closes read and write handles.
func (db *DB) Close() error {
	if db == nil {
		return nil
	}
	var errs []error
	if db.W != nil {
		errs = appendErr(errs, db.W.Close())
	}
	if db.R != nil {
		errs = appendErr(errs, db.R.Close())
	}
	if db.anchor != nil {
		errs = appendErr(errs, db.anchor.Close())
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

func appendErr(errs []error, err error) []error {
	if err != nil {
		return append(errs, err)
	}
	return errs
}
