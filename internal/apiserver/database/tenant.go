package database

import (
	"context"
	"time"

	"gorm.io/gorm"
)

func (s *Store) CreateTenant(ctx context.Context, tenant *Tenant) error {
	if tenant.Status == "" {
		tenant.Status = TenantActive
	}
	return s.conn(ctx).Create(tenant).Error
}

func (s *Store) GetTenantByID(ctx context.Context, id uint) (*Tenant, error) {
	return first[Tenant](s.conn(ctx), id)
}

func (s *Store) GetTenantByUserID(ctx context.Context, userID uint) (*Tenant, error) {
	return first[Tenant](s.conn(ctx).Where("user_id = ?", userID))
}

func (s *Store) GetTenantsByIDs(ctx context.Context, ids []uint) (map[uint]*Tenant, error) {
	return byIDs(s.conn(ctx), ids, func(t *Tenant) uint { return t.ID })
}

func (s *Store) IdentityCardExists(ctx context.Context, identityCard string, excludeID uint) (bool, error) {
	var n int64
	q := s.conn(ctx).Model(&Tenant{}).Where("identity_card = ?", identityCard)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&n).Error
	return n > 0, err
}

func (s *Store) UpdateTenant(ctx context.Context, tenant *Tenant) error {
	return s.conn(ctx).Save(tenant).Error
}

func (s *Store) ClaimTenant(ctx context.Context, tenantID, unitID uint, from *uint, moveIn time.Time) (bool, error) {
	q := s.conn(ctx).Model(&Tenant{}).Where("id = ?", tenantID)
	if from == nil {
		q = q.Where("current_unit_id IS NULL")
	} else {
		q = q.Where("current_unit_id = ?", *from)
	}
	res := q.Updates(map[string]any{
		"status":          TenantActive,
		"current_unit_id": unitID,
		"move_in_date":    moveIn,
		"move_out_date":   nil,
	})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (s *Store) ListTenants(ctx context.Context, filter TenantFilter, page Page) ([]*Tenant, int64, error) {
	q := s.conn(ctx).Model(&Tenant{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	return paginate[Tenant](q, page, "created_at desc, id desc")
}

func (s *Store) DeleteTenant(ctx context.Context, id uint) error {
	res := s.conn(ctx).Delete(&Tenant{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
