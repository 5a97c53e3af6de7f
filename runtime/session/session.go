// Package session executes SQL statements against a database/sql
// connection and hands results back as typed results. It owns the
// raw result handles it produces: every handle is fully materialized
// before the connection goes back to the pool, so typed results built
// on it stay valid for as long as the caller holds them.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/lib/pq"              // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3"    // SQLite driver

	"github.com/satishbabariya/rowset-go/runtime/decode"
	"github.com/satishbabariya/rowset-go/runtime/driver"
	"github.com/satishbabariya/rowset-go/runtime/result"
	"github.com/satishbabariya/rowset-go/telemetry"
)

// Session executes statements on one database connection pool.
type Session struct {
	db       *sql.DB
	provider string

	stmtCache map[string]*sql.Stmt
	cacheMu   sync.RWMutex
}

// New opens a connection pool for the provider and wraps it in a
// session.
func New(provider string, connectionString string) (*Session, error) {
	driverName := DriverName(provider)
	if driverName == "" {
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}

	db, err := sql.Open(driverName, connectionString)
	if err != nil {
		return nil, err
	}
	return FromDB(provider, db), nil
}

// FromDB wraps an existing connection pool in a session.
func FromDB(provider string, db *sql.DB) *Session {
	return &Session{
		db:        db,
		provider:  provider,
		stmtCache: make(map[string]*sql.Stmt),
	}
}

// DriverName maps provider names to Go database driver names.
func DriverName(provider string) string {
	switch provider {
	case "postgresql", "postgres":
		return "postgres"
	case "mysql":
		return "mysql"
	case "sqlite", "sqlite3":
		return "sqlite3"
	default:
		return ""
	}
}

// Provider returns the session's provider name.
func (s *Session) Provider() string {
	return s.provider
}

// DB returns the underlying connection pool.
func (s *Session) DB() *sql.DB {
	return s.db
}

// Connect verifies the database connection.
func (s *Session) Connect(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases cached statements and the connection pool.
func (s *Session) Close() error {
	s.ClearStmtCache()
	return s.db.Close()
}

// getCachedStmt gets a cached prepared statement or creates a new one.
func (s *Session) getCachedStmt(ctx context.Context, query string) (*sql.Stmt, error) {
	s.cacheMu.RLock()
	stmt, ok := s.stmtCache[query]
	s.cacheMu.RUnlock()

	if ok && stmt != nil {
		return stmt, nil
	}

	stmt, err := s.db.PrepareContext(ctx, query)
	if err != nil {
		return nil, err
	}

	s.cacheMu.Lock()
	s.stmtCache[query] = stmt
	s.cacheMu.Unlock()

	return stmt, nil
}

// ClearStmtCache clears the prepared statement cache.
func (s *Session) ClearStmtCache() {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	for _, stmt := range s.stmtCache {
		stmt.Close()
	}
	s.stmtCache = make(map[string]*sql.Stmt)
}

// Run executes a row-producing statement and returns the raw handle.
// Driver failures come back as error-state handles, never as a Go
// error, so the classifier sees them all.
func (s *Session) Run(ctx context.Context, query string, args ...interface{}) driver.Result {
	stmt, err := s.getCachedStmt(ctx, query)
	if err != nil {
		return driver.FromError(err)
	}
	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		return driver.FromError(err)
	}
	res, err := driver.FromRows(rows)
	if err != nil {
		return driver.FromError(err)
	}
	return res
}

// Query executes a statement and pairs the validated result with the
// decoder. A backend failure surfaces as *result.SQLError; a driver
// that cannot even report why it failed surfaces as
// *result.ConnectionError.
func Query[T any](ctx context.Context, s *Session, dec decode.Decoder[T], query string, args ...interface{}) (result.TypedResult[T], error) {
	start := time.Now()
	raw := s.Run(ctx, query, args...)
	err := result.Check(raw)
	telemetry.RecordQuery(s.provider, time.Since(start), err)
	if err != nil {
		return result.TypedResult[T]{}, err
	}
	return result.New(dec, raw), nil
}

// Exec executes a data-modifying statement and returns the affected-row
// count via the command-tuples path: nil when the command kind does not
// report one.
func Exec(ctx context.Context, s *Session, query string, args ...interface{}) (*int64, error) {
	start := time.Now()
	raw, err := s.exec(ctx, query, args...)
	telemetry.RecordQuery(s.provider, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return result.New(decode.Unit(), raw).CmdTuples()
}

func (s *Session) exec(ctx context.Context, query string, args ...interface{}) (driver.Result, error) {
	stmt, err := s.getCachedStmt(ctx, query)
	if err != nil {
		return nil, result.Check(driver.FromError(err))
	}
	res, err := stmt.ExecContext(ctx, args...)
	if err != nil {
		return nil, result.Check(driver.FromError(err))
	}
	raw := driver.FromExec(res, commandTag(query))
	if err := result.Check(raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// commandTag extracts the leading command word of a statement, the
// backend convention for command tags.
func commandTag(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToUpper(fields[0])
}
