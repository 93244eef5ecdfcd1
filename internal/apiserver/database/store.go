package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store implements Database on top of gorm. The driver specific
// constructors only differ in the dialector they open.
type Store struct {
	db *gorm.DB
}

var _ Database = (*Store)(nil)

func gormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
		Logger:         logger.Default.LogMode(logger.Silent),
	}
}

func open(dialector gorm.Dialector) (*gorm.DB, error) {
	gormDB, err := gorm.Open(dialector, gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return gormDB, nil
}

// newStore migrates the schema and wraps the connection
func newStore(gormDB *gorm.DB) (*Store, error) {
	if err := gormDB.AutoMigrate(allModels()...); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return &Store{db: gormDB}, nil
}

// DB exposes the underlying gorm handle for bootstrap helpers
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Close closes the database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks the connection, used by the health endpoint
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// IsNotFound reports whether err means the requested row does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicate reports whether err is a unique constraint violation
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}

// LogFields summarizes the store for startup logging
func (s *Store) LogFields() []zap.Field {
	return []zap.Field{zap.String("dialect", s.db.Dialector.Name())}
}

func (s *Store) conn(ctx context.Context) *gorm.DB {
	return getDBFromContext(ctx, s.db)
}

func paginate[T any](q *gorm.DB, page Page, order string) ([]*T, int64, error) {
	q = q.Session(&gorm.Session{})
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	page = page.Normalize()
	items := make([]*T, 0, page.Limit)
	err := q.Order(order).Offset(page.Offset()).Limit(page.Limit).Find(&items).Error
	return items, total, err
}

func first[T any](q *gorm.DB, conds ...any) (*T, error) {
	var out T
	if err := q.First(&out, conds...).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func byIDs[T any](q *gorm.DB, ids []uint, id func(*T) uint) (map[uint]*T, error) {
	out := make(map[uint]*T, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []*T
	if err := q.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[id(r)] = r
	}
	return out, nil
}
