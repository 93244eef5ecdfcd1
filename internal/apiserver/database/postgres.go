package database

import (
	"github.com/amoylab/phongtro/internal/common/config"

	"gorm.io/driver/postgres"
)

// NewPostgres opens a PostgreSQL database
func NewPostgres(cfg *config.DatabaseConfig) (*Store, error) {
	gormDB, err := open(postgres.Open(cfg.GetDSN()))
	if err != nil {
		return nil, err
	}
	return newStore(gormDB)
}
