package database

import (
	"github.com/amoylab/phongtro/internal/common/config"

	"gorm.io/driver/mysql"
)

// NewMySQL opens a MySQL database
func NewMySQL(cfg *config.DatabaseConfig) (*Store, error) {
	gormDB, err := open(mysql.Open(cfg.GetDSN()))
	if err != nil {
		return nil, err
	}
	return newStore(gormDB)
}
