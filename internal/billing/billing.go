// Package billing computes invoice totals and drives the invoice payment
// status machine.
package billing

import (
	"fmt"
	"time"

	"github.com/amoylab/phongtro/internal/apiserver/database"
	"github.com/amoylab/phongtro/internal/common/config"
	"github.com/amoylab/phongtro/internal/i18n"
	"github.com/shopspring/decimal"
)

// Prices are the unit prices applied when an invoice line carries none
type Prices struct {
	Electricity int64
	Water       int64
	Internet    int64
}

func PricesFromConfig(cfg config.BillingConfig) Prices {
	return Prices{
		Electricity: cfg.ElectricityPrice,
		Water:       cfg.WaterPrice,
		Internet:    cfg.InternetFee,
	}
}

// Meter is one metered utility line as submitted. When either reading is
// set, usage is derived from the readings and Usage is ignored.
type Meter struct {
	PreviousReading float64
	CurrentReading  float64
	Usage           float64
	UnitPrice       int64
}

func (m Meter) hasReadings() bool {
	return m.PreviousReading != 0 || m.CurrentReading != 0
}

// Charges are the inputs of one monthly invoice
type Charges struct {
	Rent        int64
	Electricity Meter
	Water       Meter
	// Internet overrides the configured flat fee when set
	Internet  *int64
	OtherFees []database.Fee
	// Included marks utilities covered by the rent; they cost nothing
	Included database.ContractUtilities
}

// Breakdown is the computed invoice amounts
type Breakdown struct {
	Rent        int64
	Electricity database.UtilityCharge
	Water       database.UtilityCharge
	Internet    int64
	OtherFees   []database.Fee
	Other       int64
	Total       int64
}

// Compute prices every line of ch and sums the total. Metered costs are
// usage times unit price rounded half away from zero to whole dong.
func Compute(ch Charges, prices Prices) (*Breakdown, error) {
	if ch.Rent < 0 {
		return nil, i18n.ErrorNegativeAmount.WithDetail("rentAmount")
	}

	b := &Breakdown{Rent: ch.Rent}
	var err error
	if b.Electricity, err = meter("electricity", ch.Electricity, prices.Electricity, ch.Included.Electricity); err != nil {
		return nil, err
	}
	if b.Water, err = meter("water", ch.Water, prices.Water, ch.Included.Water); err != nil {
		return nil, err
	}

	switch {
	case ch.Included.Internet:
		b.Internet = 0
	case ch.Internet != nil:
		if *ch.Internet < 0 {
			return nil, i18n.ErrorNegativeAmount.WithDetail("internet")
		}
		b.Internet = *ch.Internet
	default:
		b.Internet = prices.Internet
	}

	b.OtherFees = make([]database.Fee, 0, len(ch.OtherFees))
	for _, fee := range ch.OtherFees {
		if fee.Amount < 0 {
			return nil, i18n.ErrorNegativeAmount.WithDetail(fee.Name)
		}
		b.OtherFees = append(b.OtherFees, fee)
		b.Other += fee.Amount
	}

	b.Total = b.Rent + b.Electricity.Cost + b.Water.Cost + b.Internet + b.Other
	return b, nil
}

func meter(name string, m Meter, defaultPrice int64, included bool) (database.UtilityCharge, error) {
	price := m.UnitPrice
	if price == 0 {
		price = defaultPrice
	}
	if price < 0 {
		return database.UtilityCharge{}, i18n.ErrorNegativeAmount.WithDetail(name)
	}

	usage := decimal.NewFromFloat(m.Usage)
	if m.hasReadings() {
		usage = decimal.NewFromFloat(m.CurrentReading).Sub(decimal.NewFromFloat(m.PreviousReading))
	}
	if usage.IsNegative() {
		return database.UtilityCharge{}, i18n.ErrorNegativeUsage.WithDetail(name)
	}

	line := database.UtilityCharge{
		PreviousReading: m.PreviousReading,
		CurrentReading:  m.CurrentReading,
		Usage:           usage.InexactFloat64(),
		UnitPrice:       price,
	}
	if !included {
		line.Cost = usage.Mul(decimal.NewFromInt(price)).Round(0).IntPart()
	}
	return line, nil
}

// ResolvePaymentStatus decides the status after a payment confirmation. A
// valid explicit status wins; otherwise the paid amount decides. A zero
// payment leaves the status unchanged, except that an invoice which counted
// money as received goes back to issued.
func ResolvePaymentStatus(current database.InvoiceStatus, total, paid int64, explicit database.InvoiceStatus) database.InvoiceStatus {
	if explicit.Valid() {
		return explicit
	}
	switch {
	case paid >= total && paid > 0:
		return database.InvoicePaid
	case paid > 0 && paid < total:
		return database.InvoicePartial
	case current == database.InvoicePartial || current == database.InvoicePaid:
		return database.InvoiceIssued
	}
	return current
}

var transitions = map[database.InvoiceStatus][]database.InvoiceStatus{
	database.InvoiceDraft:   {database.InvoiceIssued},
	database.InvoiceIssued:  {database.InvoicePaid, database.InvoicePartial, database.InvoiceOverdue},
	database.InvoicePartial: {database.InvoicePaid, database.InvoiceOverdue},
	database.InvoiceOverdue: {database.InvoicePaid, database.InvoicePartial},
}

// CanTransition reports whether an admin may move an invoice from one status to another
func CanTransition(from, to database.InvoiceStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsOverdue reports whether an unpaid invoice is past its due date at now
func IsOverdue(inv *database.Invoice, now time.Time) bool {
	switch inv.Status {
	case database.InvoiceIssued, database.InvoicePartial, database.InvoiceOverdue:
		return !inv.DueDate.IsZero() && inv.DueDate.Before(now)
	}
	return false
}

func InvoiceNumber(building, unitNumber string, month, year int) string {
	return fmt.Sprintf("INV-%s-%s-%02d%04d", building, unitNumber, month, year)
}

// DueDate is dueDay of the month after the billed period, in UTC
func DueDate(month, year, dueDay int) time.Time {
	return time.Date(year, time.Month(month)+1, dueDay, 0, 0, 0, 0, time.UTC)
}

func ValidatePeriod(month, year int) error {
	if month < 1 || month > 12 || year < 2000 || year > 9999 {
		return i18n.ErrorInvalidPeriod
	}
	return nil
}
