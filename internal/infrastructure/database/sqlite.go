package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/rs/zerolog/log"
)

// SQLiteDB wraps a database/sql handle opened with the go-sqlite3 driver.
type SQLiteDB struct {
	DB   *sql.DB
	Path string
}

func NewSQLiteDB(path string) *SQLiteDB {
	return &SQLiteDB{Path: path}
}

// Connect opens the database file and creates the schema.
// ":memory:" keeps a single connection so every query sees the same database.
func (s *SQLiteDB) Connect(ctx context.Context) error {
	log.Info().Str("path", s.Path).Msg("[DATABASE] Opening SQLite database")

	dsn := s.Path
	if !strings.Contains(dsn, "?") {
		dsn += "?_foreign_keys=on&_busy_timeout=5000"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}

	if s.Path == ":memory:" || strings.HasPrefix(s.Path, "file::memory:") {
		db.SetMaxOpenConns(1)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return fmt.Errorf("sqlite ping failed: %w", err)
	}

	if _, err := db.ExecContext(ctx, SQLiteSchema); err != nil {
		db.Close()
		return fmt.Errorf("create employees table: %w", err)
	}

	s.DB = db
	log.Info().Msg("[DATABASE] SQLite ready")
	return nil
}

func (s *SQLiteDB) HealthCheck(ctx context.Context) error {
	if s.DB == nil {
		return fmt.Errorf("sqlite database is not initialized")
	}
	healthCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := s.DB.PingContext(healthCtx); err != nil {
		return fmt.Errorf("sqlite ping failed: %w", err)
	}
	return nil
}

func (s *SQLiteDB) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}
