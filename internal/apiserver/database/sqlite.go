package database

import (
	"fmt"
	"strings"

	"github.com/amoylab/phongtro/internal/common/config"

	"github.com/glebarez/sqlite"
)

// NewSQLite opens (or creates) a SQLite database. The pool is limited to one
// connection so transactions serialize and in-memory databases stay shared.
func NewSQLite(cfg *config.DatabaseConfig) (*Store, error) {
	gormDB, err := open(sqlite.Open(sqliteDSN(cfg.GetDSN())))
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	return newStore(gormDB)
}

func sqliteDSN(path string) string {
	if path == ":memory:" || strings.Contains(path, "?") {
		return path
	}
	return path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}
