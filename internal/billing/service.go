package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/amoylab/phongtro/internal/apiserver/database"
	"github.com/amoylab/phongtro/internal/auth"
	"github.com/amoylab/phongtro/internal/common/cnst"
	"github.com/amoylab/phongtro/internal/common/config"
	"github.com/amoylab/phongtro/internal/i18n"
	"github.com/amoylab/phongtro/pkg/metrics"
	"github.com/amoylab/phongtro/pkg/trace"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Service creates invoices and records payments against them
type Service struct {
	db      database.Database
	prices  Prices
	dueDay  int
	metrics *metrics.Metrics
	logger  *zap.Logger
	now     func() time.Time
}

func NewService(db database.Database, cfg config.BillingConfig, m *metrics.Metrics, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		db:      db,
		prices:  PricesFromConfig(cfg),
		dueDay:  cfg.DueDay,
		metrics: m,
		logger:  logger.Named("billing"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Now is the service clock
func (s *Service) Now() time.Time {
	return s.now()
}

// CreateInput is a request to bill one contract for one month
type CreateInput struct {
	ContractID  uint
	Month       int
	Year        int
	Electricity Meter
	Water       Meter
	Internet    *int64
	OtherFees   []database.Fee
	DueDate     *time.Time
	Notes       string
	// Issue creates the invoice directly in the issued state
	Issue bool
}

// PaymentInput confirms the cumulative amount paid on an invoice
type PaymentInput struct {
	PaidAmount int64
	Status     database.InvoiceStatus
	Method     database.PaymentMethod
	Note       string
}

func finish(span oteltrace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// contract loads the invoice's contract and checks the actor manages it
func (s *Service) contract(ctx context.Context, actor auth.Actor, id uint) (*database.Contract, error) {
	c, err := s.db.GetContractByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, i18n.ErrorContractNotFound
		}
		return nil, err
	}
	if !actor.CanManage(c.LandlordID) {
		return nil, i18n.ErrorContractPermission
	}
	return c, nil
}

func (s *Service) invoice(ctx context.Context, actor auth.Actor, id uint) (*database.Invoice, error) {
	inv, err := s.db.GetInvoiceByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, i18n.ErrorInvoiceNotFound
		}
		return nil, err
	}
	if _, err := s.contract(ctx, actor, inv.ContractID); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *Service) invoiceNumber(ctx context.Context, unit *database.Unit, month, year int) (string, error) {
	base := InvoiceNumber(unit.Building, unit.UnitNumber, month, year)
	number := base
	for n := 2; ; n++ {
		exists, err := s.db.InvoiceNumberExists(ctx, number)
		if err != nil {
			return "", err
		}
		if !exists {
			return number, nil
		}
		number = fmt.Sprintf("%s-%d", base, n)
	}
}

// CreateInvoice bills an active contract for one month
func (s *Service) CreateInvoice(ctx context.Context, actor auth.Actor, in CreateInput) (inv *database.Invoice, err error) {
	ctx, span := trace.Start(ctx, cnst.TraceBilling, "billing.CreateInvoice",
		attribute.Int64(cnst.AttrContractID, int64(in.ContractID)),
		attribute.Int64(cnst.AttrActorID, int64(actor.UserID)))
	defer func() { finish(span, err) }()

	if err := ValidatePeriod(in.Month, in.Year); err != nil {
		return nil, err
	}

	err = s.db.Transaction(ctx, func(ctx context.Context) error {
		c, err := s.contract(ctx, actor, in.ContractID)
		if err != nil {
			return err
		}
		if c.Status != database.ContractActive {
			return i18n.ErrorContractNotActive
		}
		exists, err := s.db.InvoiceExists(ctx, c.ID, in.Month, in.Year)
		if err != nil {
			return err
		}
		if exists {
			return i18n.ErrorInvoiceExists.WithParam("Month", in.Month).WithParam("Year", in.Year)
		}
		unit, err := s.db.GetUnitByID(ctx, c.UnitID)
		if err != nil {
			if database.IsNotFound(err) {
				return i18n.ErrorUnitNotFound
			}
			return err
		}

		b, err := Compute(Charges{
			Rent:        c.RentAmount,
			Electricity: in.Electricity,
			Water:       in.Water,
			Internet:    in.Internet,
			OtherFees:   in.OtherFees,
			Included:    c.Utilities,
		}, s.prices)
		if err != nil {
			return err
		}

		number, err := s.invoiceNumber(ctx, unit, in.Month, in.Year)
		if err != nil {
			return err
		}
		due := DueDate(in.Month, in.Year, s.dueDay)
		if in.DueDate != nil {
			due = in.DueDate.UTC()
		}
		status := database.InvoiceDraft
		if in.Issue {
			status = database.InvoiceIssued
		}

		inv = &database.Invoice{
			InvoiceNumber: number,
			ContractID:    c.ID,
			Month:         in.Month,
			Year:          in.Year,
			UnitID:        c.UnitID,
			TenantID:      c.TenantID,
			RentAmount:    b.Rent,
			Electricity:   b.Electricity,
			Water:         b.Water,
			InternetCost:  b.Internet,
			OtherFees:     b.OtherFees,
			OtherAmount:   b.Other,
			TotalAmount:   b.Total,
			Status:        status,
			DueDate:       due,
			Notes:         in.Notes,
			CreatedBy:     actor.UserID,
		}
		if err := s.db.CreateInvoice(ctx, inv); err != nil {
			if database.IsDuplicate(err) {
				return i18n.ErrorInvoiceExists.WithParam("Month", in.Month).WithParam("Year", in.Year)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.InvoiceEvent("created")
	s.logger.Info("invoice created",
		zap.Uint("invoice_id", inv.ID),
		zap.String("number", inv.InvoiceNumber),
		zap.Int64("total", inv.TotalAmount))
	return inv, nil
}

// ConfirmPayment sets the cumulative paid amount of an invoice and records
// the change as a payment.
func (s *Service) ConfirmPayment(ctx context.Context, actor auth.Actor, id uint, in PaymentInput) (inv *database.Invoice, pay *database.Payment, err error) {
	ctx, span := trace.Start(ctx, cnst.TraceBilling, "billing.ConfirmPayment",
		attribute.Int64(cnst.AttrInvoiceID, int64(id)),
		attribute.Int64(cnst.AttrActorID, int64(actor.UserID)))
	defer func() { finish(span, err) }()

	if in.PaidAmount < 0 {
		return nil, nil, i18n.ErrorNegativeAmount.WithDetail("paidAmount")
	}
	if in.Method == "" {
		in.Method = database.PaymentCash
	}
	if !in.Method.Valid() {
		return nil, nil, i18n.ErrorInvalidPaymentMethod
	}

	err = s.db.Transaction(ctx, func(ctx context.Context) error {
		inv, err = s.invoice(ctx, actor, id)
		if err != nil {
			return err
		}
		now := s.now()
		previous := inv.PaidAmount
		inv.PaidAmount = in.PaidAmount
		inv.PaidDate = &now
		if in.PaidAmount == 0 {
			inv.PaidDate = nil
		}
		inv.Status = ResolvePaymentStatus(inv.Status, inv.TotalAmount, in.PaidAmount, in.Status)
		if err := s.db.UpdateInvoice(ctx, inv); err != nil {
			return err
		}
		pay = &database.Payment{
			InvoiceID:   inv.ID,
			TenantID:    inv.TenantID,
			Amount:      in.PaidAmount - previous,
			PaidTotal:   in.PaidAmount,
			Method:      in.Method,
			Note:        in.Note,
			ConfirmedBy: actor.UserID,
			PaidAt:      now,
		}
		return s.db.CreatePayment(ctx, pay)
	})
	if err != nil {
		return nil, nil, err
	}

	if pay.Amount > 0 {
		s.metrics.PaymentConfirmed(pay.Amount)
	}
	s.metrics.InvoiceEvent("payment")
	s.logger.Info("payment confirmed",
		zap.Uint("invoice_id", inv.ID),
		zap.Int64("paid", inv.PaidAmount),
		zap.String("status", string(inv.Status)))
	return inv, pay, nil
}

// UpdateStatus moves an invoice along the admin transition table. Setting
// the current status again is a no-op; marking paid settles the balance.
func (s *Service) UpdateStatus(ctx context.Context, actor auth.Actor, id uint, status database.InvoiceStatus) (inv *database.Invoice, changed bool, err error) {
	ctx, span := trace.Start(ctx, cnst.TraceBilling, "billing.UpdateStatus",
		attribute.Int64(cnst.AttrInvoiceID, int64(id)),
		attribute.String("invoice.status", string(status)))
	defer func() { finish(span, err) }()

	if !status.Valid() {
		return nil, false, i18n.ErrorInvalidInvoiceStatus
	}

	err = s.db.Transaction(ctx, func(ctx context.Context) error {
		inv, err = s.invoice(ctx, actor, id)
		if err != nil {
			return err
		}
		if inv.Status == status {
			return nil
		}
		if !CanTransition(inv.Status, status) {
			return i18n.ErrorInvalidInvoiceTransition.
				WithParam("From", inv.Status).
				WithParam("To", status)
		}
		inv.Status = status
		if status == database.InvoicePaid && inv.PaidAmount < inv.TotalAmount {
			now := s.now()
			inv.PaidAmount = inv.TotalAmount
			inv.PaidDate = &now
		}
		changed = true
		return s.db.UpdateInvoice(ctx, inv)
	})
	if err != nil {
		return nil, false, err
	}
	if changed {
		s.metrics.InvoiceEvent(string(status))
	}
	return inv, changed, nil
}

// DeleteInvoice removes an invoice together with its payments
func (s *Service) DeleteInvoice(ctx context.Context, actor auth.Actor, id uint) (inv *database.Invoice, err error) {
	ctx, span := trace.Start(ctx, cnst.TraceBilling, "billing.DeleteInvoice",
		attribute.Int64(cnst.AttrInvoiceID, int64(id)))
	defer func() { finish(span, err) }()

	err = s.db.Transaction(ctx, func(ctx context.Context) error {
		inv, err = s.invoice(ctx, actor, id)
		if err != nil {
			return err
		}
		return s.db.DeleteInvoice(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	s.metrics.InvoiceEvent("deleted")
	return inv, nil
}
