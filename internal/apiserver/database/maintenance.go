package database

import (
	"context"

	"gorm.io/gorm"
)

func (s *Store) CreateMaintenanceRequest(ctx context.Context, req *MaintenanceRequest) error {
	if req.Status == "" {
		req.Status = MaintenancePending
	}
	if req.Priority == "" {
		req.Priority = PriorityMedium
	}
	return s.conn(ctx).Create(req).Error
}

func (s *Store) GetMaintenanceRequestByID(ctx context.Context, id uint) (*MaintenanceRequest, error) {
	return first[MaintenanceRequest](s.conn(ctx), id)
}

func (s *Store) UpdateMaintenanceRequest(ctx context.Context, req *MaintenanceRequest) error {
	return s.conn(ctx).Save(req).Error
}

func (s *Store) ListMaintenanceRequests(ctx context.Context, filter MaintenanceFilter, page Page) ([]*MaintenanceRequest, int64, error) {
	q := s.conn(ctx).Model(&MaintenanceRequest{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		q = q.Where("priority = ?", filter.Priority)
	}
	if filter.UnitID != 0 {
		q = q.Where("unit_id = ?", filter.UnitID)
	}
	if filter.TenantID != 0 {
		q = q.Where("tenant_id = ?", filter.TenantID)
	}
	if filter.LandlordID != 0 {
		q = q.Where("unit_id IN (?)", q.Session(&gorm.Session{NewDB: true}).
			Model(&Unit{}).Select("id").Where("landlord_id = ?", filter.LandlordID))
	}
	return paginate[MaintenanceRequest](q, page, "created_at desc, id desc")
}

func (s *Store) DeleteMaintenanceByUnit(ctx context.Context, unitID uint) error {
	return s.conn(ctx).Where("unit_id = ?", unitID).Delete(&MaintenanceRequest{}).Error
}

func (s *Store) DeleteMaintenanceByTenant(ctx context.Context, tenantID uint) error {
	return s.conn(ctx).Where("tenant_id = ?", tenantID).Delete(&MaintenanceRequest{}).Error
}
