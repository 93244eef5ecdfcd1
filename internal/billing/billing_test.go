package billing

import (
	"testing"
	"time"

	"github.com/amoylab/phongtro/internal/apiserver/database"
	"github.com/amoylab/phongtro/internal/common/config"
	"github.com/amoylab/phongtro/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPrices = Prices{Electricity: 3500, Water: 15000, Internet: 100000}

func TestCompute_ReferenceInvoice(t *testing.T) {
	b, err := Compute(Charges{
		Rent:        3000000,
		Electricity: Meter{Usage: 50},
		Water:       Meter{Usage: 10},
	}, testPrices)
	require.NoError(t, err)

	assert.Equal(t, int64(175000), b.Electricity.Cost)
	assert.Equal(t, int64(150000), b.Water.Cost)
	assert.Equal(t, int64(100000), b.Internet)
	assert.Equal(t, int64(3425000), b.Total)
}

func TestCompute_Readings(t *testing.T) {
	b, err := Compute(Charges{
		Rent:        2000000,
		Electricity: Meter{PreviousReading: 1200.5, CurrentReading: 1250.5, UnitPrice: 4000},
		Water:       Meter{PreviousReading: 30, CurrentReading: 32.5},
		OtherFees:   []database.Fee{{Name: "parking", Amount: 150000}, {Name: "trash", Amount: 20000}},
	}, testPrices)
	require.NoError(t, err)

	assert.Equal(t, 50.0, b.Electricity.Usage)
	assert.Equal(t, int64(200000), b.Electricity.Cost)
	assert.Equal(t, 2.5, b.Water.Usage)
	assert.Equal(t, int64(37500), b.Water.Cost)
	assert.Equal(t, int64(170000), b.Other)
	assert.Equal(t, b.Rent+b.Electricity.Cost+b.Water.Cost+b.Internet+b.Other, b.Total)
}

func TestCompute_Rounding(t *testing.T) {
	b, err := Compute(Charges{Electricity: Meter{Usage: 0.1, UnitPrice: 3505}}, Prices{})
	require.NoError(t, err)
	// 350.5 rounds away from zero
	assert.Equal(t, int64(351), b.Electricity.Cost)
}

func TestCompute_Included(t *testing.T) {
	internet := int64(250000)
	b, err := Compute(Charges{
		Rent:        3000000,
		Electricity: Meter{Usage: 50},
		Water:       Meter{Usage: 10},
		Internet:    &internet,
		Included:    database.ContractUtilities{Water: true, Internet: true},
	}, testPrices)
	require.NoError(t, err)

	assert.Equal(t, int64(0), b.Water.Cost)
	assert.Equal(t, 10.0, b.Water.Usage)
	assert.Equal(t, int64(0), b.Internet)
	assert.Equal(t, int64(3175000), b.Total)
}

func TestCompute_Errors(t *testing.T) {
	_, err := Compute(Charges{Electricity: Meter{PreviousReading: 100, CurrentReading: 90}}, testPrices)
	assert.ErrorIs(t, err, i18n.ErrorNegativeUsage)

	_, err = Compute(Charges{Rent: -1}, testPrices)
	assert.ErrorIs(t, err, i18n.ErrorNegativeAmount)

	_, err = Compute(Charges{OtherFees: []database.Fee{{Name: "x", Amount: -5}}}, testPrices)
	assert.ErrorIs(t, err, i18n.ErrorNegativeAmount)

	neg := int64(-1)
	_, err = Compute(Charges{Internet: &neg}, testPrices)
	assert.ErrorIs(t, err, i18n.ErrorNegativeAmount)
}

func TestResolvePaymentStatus(t *testing.T) {
	const total = 3425000
	tests := []struct {
		name     string
		current  database.InvoiceStatus
		paid     int64
		explicit database.InvoiceStatus
		want     database.InvoiceStatus
	}{
		{"full payment", database.InvoiceIssued, 3425000, "", database.InvoicePaid},
		{"over payment", database.InvoiceIssued, 4000000, "", database.InvoicePaid},
		{"partial payment", database.InvoiceIssued, 1000000, "", database.InvoicePartial},
		{"zero keeps status", database.InvoiceIssued, 0, "", database.InvoiceIssued},
		{"zero keeps overdue", database.InvoiceOverdue, 0, "", database.InvoiceOverdue},
		{"zero reverts partial", database.InvoicePartial, 0, "", database.InvoiceIssued},
		{"zero reverts paid", database.InvoicePaid, 0, "", database.InvoiceIssued},
		{"lower amount on paid", database.InvoicePaid, 1000000, "", database.InvoicePartial},
		{"explicit wins", database.InvoiceIssued, 1000000, database.InvoiceOverdue, database.InvoiceOverdue},
		{"invalid explicit ignored", database.InvoiceIssued, 1000000, "bogus", database.InvoicePartial},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePaymentStatus(tt.current, total, tt.paid, tt.explicit))
		})
	}
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(database.InvoiceDraft, database.InvoiceIssued))
	assert.True(t, CanTransition(database.InvoiceIssued, database.InvoiceOverdue))
	assert.True(t, CanTransition(database.InvoiceOverdue, database.InvoicePartial))
	assert.False(t, CanTransition(database.InvoiceDraft, database.InvoicePaid))
	assert.False(t, CanTransition(database.InvoicePaid, database.InvoiceIssued))
	assert.False(t, CanTransition(database.InvoicePartial, database.InvoiceIssued))
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC)
	inv := &database.Invoice{Status: database.InvoiceIssued, DueDate: DueDate(6, 2024, 5)}
	assert.True(t, IsOverdue(inv, now))

	inv.Status = database.InvoicePaid
	assert.False(t, IsOverdue(inv, now))

	inv.Status = database.InvoiceDraft
	assert.False(t, IsOverdue(inv, now))

	inv.Status = database.InvoicePartial
	assert.False(t, IsOverdue(inv, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)))
}

func TestNumbersAndDates(t *testing.T) {
	assert.Equal(t, "INV-A-101-062024", InvoiceNumber("A", "101", 6, 2024))
	assert.Equal(t, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), DueDate(12, 2024, 5))
	assert.NoError(t, ValidatePeriod(12, 2024))
	assert.ErrorIs(t, ValidatePeriod(13, 2024), i18n.ErrorInvalidPeriod)
	assert.ErrorIs(t, ValidatePeriod(0, 2024), i18n.ErrorInvalidPeriod)
}

func TestPricesFromConfig(t *testing.T) {
	p := PricesFromConfig(config.BillingConfig{ElectricityPrice: 1, WaterPrice: 2, InternetFee: 3})
	assert.Equal(t, Prices{Electricity: 1, Water: 2, Internet: 3}, p)
}
