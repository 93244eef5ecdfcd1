package database

import (
	"context"

	"gorm.io/gorm"
)

func (s *Store) CreateContract(ctx context.Context, contract *Contract) error {
	return s.conn(ctx).Create(contract).Error
}

func (s *Store) GetContractByID(ctx context.Context, id uint) (*Contract, error) {
	return first[Contract](s.conn(ctx), id)
}

func (s *Store) GetContractsByIDs(ctx context.Context, ids []uint) (map[uint]*Contract, error) {
	return byIDs(s.conn(ctx), ids, func(c *Contract) uint { return c.ID })
}

func (s *Store) UpdateContract(ctx context.Context, contract *Contract) error {
	return s.conn(ctx).Save(contract).Error
}

func (s *Store) ContractNumberExists(ctx context.Context, number string) (bool, error) {
	var n int64
	err := s.conn(ctx).Model(&Contract{}).Where("contract_number = ?", number).Count(&n).Error
	return n > 0, err
}

func contractQuery(q *gorm.DB, filter ContractFilter) *gorm.DB {
	q = q.Model(&Contract{})
	if len(filter.Statuses) > 0 {
		q = q.Where("status IN ?", filter.Statuses)
	}
	if filter.UnitID != 0 {
		q = q.Where("unit_id = ?", filter.UnitID)
	}
	if filter.TenantID != 0 {
		q = q.Where("tenant_id = ?", filter.TenantID)
	}
	if filter.LandlordID != 0 {
		q = q.Where("landlord_id = ?", filter.LandlordID)
	}
	return q
}

func (s *Store) FindContracts(ctx context.Context, filter ContractFilter) ([]*Contract, error) {
	var out []*Contract
	err := contractQuery(s.conn(ctx), filter).Order("id asc").Find(&out).Error
	return out, err
}

func (s *Store) ListContracts(ctx context.Context, filter ContractFilter, page Page) ([]*Contract, int64, error) {
	return paginate[Contract](contractQuery(s.conn(ctx), filter), page, "created_at desc, id desc")
}

func (s *Store) DeleteContractsByUnit(ctx context.Context, unitID uint) error {
	return s.conn(ctx).Where("unit_id = ?", unitID).Delete(&Contract{}).Error
}
