package database

import (
	"context"
	"time"

	"gorm.io/gorm"
)

func (s *Store) CreateInvoice(ctx context.Context, invoice *Invoice) error {
	return s.conn(ctx).Create(invoice).Error
}

func (s *Store) GetInvoiceByID(ctx context.Context, id uint) (*Invoice, error) {
	return first[Invoice](s.conn(ctx), id)
}

func (s *Store) UpdateInvoice(ctx context.Context, invoice *Invoice) error {
	return s.conn(ctx).Save(invoice).Error
}

func (s *Store) InvoiceExists(ctx context.Context, contractID uint, month, year int) (bool, error) {
	var n int64
	err := s.conn(ctx).Model(&Invoice{}).
		Where("contract_id = ? AND month = ? AND year = ?", contractID, month, year).
		Count(&n).Error
	return n > 0, err
}

func (s *Store) InvoiceNumberExists(ctx context.Context, number string) (bool, error) {
	var n int64
	err := s.conn(ctx).Model(&Invoice{}).Where("invoice_number = ?", number).Count(&n).Error
	return n > 0, err
}

func invoiceQuery(q *gorm.DB, filter InvoiceFilter) *gorm.DB {
	q = q.Model(&Invoice{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Month != 0 {
		q = q.Where("month = ?", filter.Month)
	}
	if filter.Year != 0 {
		q = q.Where("year = ?", filter.Year)
	}
	if filter.ContractID != 0 {
		q = q.Where("contract_id = ?", filter.ContractID)
	}
	if filter.TenantID != 0 {
		q = q.Where("tenant_id = ?", filter.TenantID)
	}
	if filter.LandlordID != 0 {
		q = q.Where("unit_id IN (?)", q.Session(&gorm.Session{NewDB: true}).
			Model(&Unit{}).Select("id").Where("landlord_id = ?", filter.LandlordID))
	}
	if filter.OverdueAt != nil {
		q = q.Where("status IN ? AND due_date < ?", UnpaidInvoiceStatuses, filter.OverdueAt.UTC())
	}
	return q
}

func (s *Store) ListInvoices(ctx context.Context, filter InvoiceFilter, page Page) ([]*Invoice, int64, error) {
	return paginate[Invoice](invoiceQuery(s.conn(ctx), filter), page, "year desc, month desc, id desc")
}

func (s *Store) DeleteInvoice(ctx context.Context, id uint) error {
	db := s.conn(ctx)
	if err := db.Where("invoice_id = ?", id).Delete(&Payment{}).Error; err != nil {
		return err
	}
	res := db.Delete(&Invoice{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteInvoicesByUnit removes the unit's invoices with their payments
func (s *Store) DeleteInvoicesByUnit(ctx context.Context, unitID uint) error {
	db := s.conn(ctx)
	ids := db.Session(&gorm.Session{NewDB: true}).Model(&Invoice{}).Select("id").Where("unit_id = ?", unitID)
	if err := db.Where("invoice_id IN (?)", ids).Delete(&Payment{}).Error; err != nil {
		return err
	}
	return db.Where("unit_id = ?", unitID).Delete(&Invoice{}).Error
}

func (s *Store) PaymentStatusReport(ctx context.Context, filter InvoiceFilter, now time.Time) (*PaymentReport, error) {
	filter.Status = ""
	filter.OverdueAt = nil

	var rows []StatusSummary
	err := invoiceQuery(s.conn(ctx), filter).
		Select("status, COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS total_amount, COALESCE(SUM(paid_amount), 0) AS paid_amount").
		Group("status").
		Order("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	var overdue struct {
		Count       int64
		Outstanding int64
	}
	overdueFilter := filter
	overdueFilter.OverdueAt = &now
	err = invoiceQuery(s.conn(ctx), overdueFilter).
		Select("COUNT(*) AS count, COALESCE(SUM(total_amount - paid_amount), 0) AS outstanding").
		Scan(&overdue).Error
	if err != nil {
		return nil, err
	}

	report := &PaymentReport{
		ByStatus:           rows,
		OverdueCount:       overdue.Count,
		OverdueOutstanding: overdue.Outstanding,
	}
	for _, r := range rows {
		report.TotalBilled += r.TotalAmount
		report.TotalCollected += r.PaidAmount
	}
	if report.ByStatus == nil {
		report.ByStatus = []StatusSummary{}
	}
	return report, nil
}

func (s *Store) CreatePayment(ctx context.Context, payment *Payment) error {
	return s.conn(ctx).Create(payment).Error
}

func (s *Store) ListPaymentsByInvoice(ctx context.Context, invoiceID uint) ([]*Payment, error) {
	out := []*Payment{}
	err := s.conn(ctx).Where("invoice_id = ?", invoiceID).Order("paid_at asc, id asc").Find(&out).Error
	return out, err
}
