package database

import (
	"context"

	"gorm.io/gorm"
)

func (s *Store) CreateUnit(ctx context.Context, unit *Unit) error {
	if unit.Status == "" {
		unit.Status = UnitAvailable
	}
	return s.conn(ctx).Create(unit).Error
}

func (s *Store) GetUnitByID(ctx context.Context, id uint) (*Unit, error) {
	return first[Unit](s.conn(ctx), id)
}

func (s *Store) GetUnitsByIDs(ctx context.Context, ids []uint) (map[uint]*Unit, error) {
	return byIDs(s.conn(ctx), ids, func(u *Unit) uint { return u.ID })
}

// UpdateUnit writes the descriptive columns of the unit. Status and
// CurrentTenantID belong to ClaimUnit, ReleaseUnit and SetUnitStatus.
func (s *Store) UpdateUnit(ctx context.Context, unit *Unit) error {
	return s.conn(ctx).Model(unit).
		Select("*").
		Omit("id", "status", "current_tenant_id", "created_at").
		Updates(unit).Error
}

func (s *Store) SetUnitStatus(ctx context.Context, id uint, status UnitStatus) (bool, error) {
	res := s.conn(ctx).Model(&Unit{}).
		Where("id = ? AND current_tenant_id IS NULL AND status <> ?", id, UnitOccupied).
		Update("status", status)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (s *Store) ListUnits(ctx context.Context, filter UnitFilter, page Page) ([]*Unit, int64, error) {
	q := s.conn(ctx).Model(&Unit{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Building != "" {
		q = q.Where("building = ?", filter.Building)
	}
	if filter.RoomType != "" {
		q = q.Where("room_type = ?", filter.RoomType)
	}
	if filter.LandlordID != 0 {
		q = q.Where("landlord_id = ?", filter.LandlordID)
	}
	return paginate[Unit](q, page, "building asc, unit_number asc")
}

func (s *Store) DeleteUnit(ctx context.Context, id uint) error {
	res := s.conn(ctx).Delete(&Unit{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *Store) ClaimUnit(ctx context.Context, unitID, tenantID uint) (bool, error) {
	res := s.conn(ctx).Model(&Unit{}).
		Where("id = ? AND status = ?", unitID, UnitAvailable).
		Updates(map[string]any{
			"status":            UnitOccupied,
			"current_tenant_id": tenantID,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (s *Store) ReleaseUnit(ctx context.Context, unitID, tenantID uint) error {
	return s.conn(ctx).Model(&Unit{}).
		Where("id = ? AND current_tenant_id = ?", unitID, tenantID).
		Updates(map[string]any{
			"status":            UnitAvailable,
			"current_tenant_id": nil,
		}).Error
}
