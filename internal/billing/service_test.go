package billing

import (
	"context"
	"testing"
	"time"

	"github.com/amoylab/phongtro/internal/apiserver/database"
	"github.com/amoylab/phongtro/internal/auth"
	"github.com/amoylab/phongtro/internal/common/config"
	"github.com/amoylab/phongtro/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db       *database.Store
	svc      *Service
	landlord auth.Actor
	contract *database.Contract
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := database.NewSQLite(&config.DatabaseConfig{Type: "sqlite", DBName: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	ctx := context.Background()

	owner := &database.User{Email: "owner@example.com", Password: "x", FullName: "Owner", Role: database.RoleLandlord, IsActive: true}
	require.NoError(t, db.CreateUser(ctx, owner))
	renter := &database.User{Email: "renter@example.com", Password: "x", FullName: "Renter", Role: database.RoleTenant, IsActive: true}
	require.NoError(t, db.CreateUser(ctx, renter))

	unit := &database.Unit{UnitNumber: "101", Building: "A", RoomType: database.RoomStudio, RentPrice: 3000000, LandlordID: owner.ID}
	require.NoError(t, db.CreateUnit(ctx, unit))
	tenant := &database.Tenant{UserID: renter.ID, IdentityCard: "079123456789"}
	require.NoError(t, db.CreateTenant(ctx, tenant))

	c := &database.Contract{
		ContractNumber: "HD-A-101-202406",
		UnitID:         unit.ID,
		TenantID:       tenant.ID,
		LandlordID:     owner.ID,
		StartDate:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		RentAmount:     3000000,
		Status:         database.ContractActive,
	}
	require.NoError(t, db.CreateContract(ctx, c))

	svc := NewService(db, config.BillingConfig{ElectricityPrice: 3500, WaterPrice: 15000, InternetFee: 100000, DueDay: 5}, nil, nil)
	svc.now = func() time.Time { return time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC) }

	return &fixture{
		db:       db,
		svc:      svc,
		landlord: auth.Actor{UserID: owner.ID, Role: database.RoleLandlord},
		contract: c,
	}
}

func (f *fixture) issue(t *testing.T) *database.Invoice {
	t.Helper()
	inv, err := f.svc.CreateInvoice(context.Background(), f.landlord, CreateInput{
		ContractID:  f.contract.ID,
		Month:       6,
		Year:        2024,
		Electricity: Meter{Usage: 50},
		Water:       Meter{Usage: 10},
		Issue:       true,
	})
	require.NoError(t, err)
	return inv
}

func TestCreateInvoice(t *testing.T) {
	f := newFixture(t)
	inv := f.issue(t)

	assert.Equal(t, "INV-A-101-062024", inv.InvoiceNumber)
	assert.Equal(t, int64(3425000), inv.TotalAmount)
	assert.Equal(t, database.InvoiceIssued, inv.Status)
	assert.Equal(t, time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC), inv.DueDate.UTC())
	assert.Equal(t, f.contract.TenantID, inv.TenantID)

	_, err := f.svc.CreateInvoice(context.Background(), f.landlord, CreateInput{ContractID: f.contract.ID, Month: 6, Year: 2024})
	assert.ErrorIs(t, err, i18n.ErrorInvoiceExists)

	draft, err := f.svc.CreateInvoice(context.Background(), f.landlord, CreateInput{ContractID: f.contract.ID, Month: 7, Year: 2024})
	require.NoError(t, err)
	assert.Equal(t, database.InvoiceDraft, draft.Status)
	assert.Equal(t, int64(3100000), draft.TotalAmount)
}

func TestCreateInvoice_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	stranger := auth.Actor{UserID: 999, Role: database.RoleLandlord}
	_, err := f.svc.CreateInvoice(ctx, stranger, CreateInput{ContractID: f.contract.ID, Month: 6, Year: 2024})
	assert.ErrorIs(t, err, i18n.ErrorContractPermission)

	_, err = f.svc.CreateInvoice(ctx, f.landlord, CreateInput{ContractID: 404, Month: 6, Year: 2024})
	assert.ErrorIs(t, err, i18n.ErrorContractNotFound)

	_, err = f.svc.CreateInvoice(ctx, f.landlord, CreateInput{ContractID: f.contract.ID, Month: 13, Year: 2024})
	assert.ErrorIs(t, err, i18n.ErrorInvalidPeriod)

	f.contract.Status = database.ContractDraft
	require.NoError(t, f.db.UpdateContract(ctx, f.contract))
	_, err = f.svc.CreateInvoice(ctx, f.landlord, CreateInput{ContractID: f.contract.ID, Month: 6, Year: 2024})
	assert.ErrorIs(t, err, i18n.ErrorContractNotActive)
}

func TestConfirmPayment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inv := f.issue(t)

	got, _, err := f.svc.ConfirmPayment(ctx, f.landlord, inv.ID, PaymentInput{PaidAmount: 0})
	require.NoError(t, err)
	assert.Equal(t, database.InvoiceIssued, got.Status)

	got, pay, err := f.svc.ConfirmPayment(ctx, f.landlord, inv.ID, PaymentInput{PaidAmount: 1000000, Method: database.PaymentBankTransfer})
	require.NoError(t, err)
	assert.Equal(t, database.InvoicePartial, got.Status)
	assert.Equal(t, int64(1000000), pay.Amount)
	require.NotNil(t, got.PaidDate)

	got, pay, err = f.svc.ConfirmPayment(ctx, f.landlord, inv.ID, PaymentInput{PaidAmount: 3425000})
	require.NoError(t, err)
	assert.Equal(t, database.InvoicePaid, got.Status)
	assert.Equal(t, int64(2425000), pay.Amount)
	assert.Equal(t, int64(3425000), pay.PaidTotal)
	assert.Equal(t, database.PaymentCash, pay.Method)

	payments, err := f.db.ListPaymentsByInvoice(ctx, inv.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 3)

	stored, err := f.db.GetInvoiceByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, database.InvoicePaid, stored.Status)
	assert.Equal(t, int64(3425000), stored.PaidAmount)
}

func TestConfirmPayment_Correction(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inv := f.issue(t)

	_, _, err := f.svc.ConfirmPayment(ctx, f.landlord, inv.ID, PaymentInput{PaidAmount: 1000000})
	require.NoError(t, err)

	// entered by mistake: the payment is taken back
	got, pay, err := f.svc.ConfirmPayment(ctx, f.landlord, inv.ID, PaymentInput{PaidAmount: 0})
	require.NoError(t, err)
	assert.Equal(t, database.InvoiceIssued, got.Status)
	assert.Equal(t, int64(0), got.PaidAmount)
	assert.Equal(t, int64(-1000000), pay.Amount)
	assert.Equal(t, int64(0), pay.PaidTotal)

	stored, err := f.db.GetInvoiceByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, database.InvoiceIssued, stored.Status)
	assert.Equal(t, int64(0), stored.PaidAmount)
	assert.Nil(t, stored.PaidDate)

	_, _, err = f.svc.ConfirmPayment(ctx, f.landlord, inv.ID, PaymentInput{PaidAmount: 3425000})
	require.NoError(t, err)
	got, _, err = f.svc.ConfirmPayment(ctx, f.landlord, inv.ID, PaymentInput{PaidAmount: 2000000})
	require.NoError(t, err)
	assert.Equal(t, database.InvoicePartial, got.Status)
}

func TestConfirmPayment_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inv := f.issue(t)

	_, _, err := f.svc.ConfirmPayment(ctx, f.landlord, inv.ID, PaymentInput{PaidAmount: -1})
	assert.ErrorIs(t, err, i18n.ErrorNegativeAmount)

	_, _, err = f.svc.ConfirmPayment(ctx, f.landlord, inv.ID, PaymentInput{PaidAmount: 1, Method: "crypto"})
	assert.ErrorIs(t, err, i18n.ErrorInvalidPaymentMethod)

	_, _, err = f.svc.ConfirmPayment(ctx, f.landlord, 404, PaymentInput{PaidAmount: 1})
	assert.ErrorIs(t, err, i18n.ErrorInvoiceNotFound)

	_, _, err = f.svc.ConfirmPayment(ctx, auth.Actor{UserID: 999, Role: database.RoleLandlord}, inv.ID, PaymentInput{PaidAmount: 1})
	assert.ErrorIs(t, err, i18n.ErrorContractPermission)

	payments, err := f.db.ListPaymentsByInvoice(ctx, inv.ID)
	require.NoError(t, err)
	assert.Empty(t, payments)
}

func TestUpdateStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inv, err := f.svc.CreateInvoice(ctx, f.landlord, CreateInput{ContractID: f.contract.ID, Month: 6, Year: 2024})
	require.NoError(t, err)

	_, _, err = f.svc.UpdateStatus(ctx, f.landlord, inv.ID, database.InvoicePaid)
	assert.ErrorIs(t, err, i18n.ErrorInvalidInvoiceTransition)

	_, _, err = f.svc.UpdateStatus(ctx, f.landlord, inv.ID, "bogus")
	assert.ErrorIs(t, err, i18n.ErrorInvalidInvoiceStatus)

	got, changed, err := f.svc.UpdateStatus(ctx, f.landlord, inv.ID, database.InvoiceIssued)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, database.InvoiceIssued, got.Status)

	_, changed, err = f.svc.UpdateStatus(ctx, f.landlord, inv.ID, database.InvoiceIssued)
	require.NoError(t, err)
	assert.False(t, changed)

	got, _, err = f.svc.UpdateStatus(ctx, f.landlord, inv.ID, database.InvoicePaid)
	require.NoError(t, err)
	assert.Equal(t, got.TotalAmount, got.PaidAmount)
}

func TestDeleteInvoice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inv := f.issue(t)
	_, _, err := f.svc.ConfirmPayment(ctx, f.landlord, inv.ID, PaymentInput{PaidAmount: 100})
	require.NoError(t, err)

	admin := auth.Actor{UserID: 1000, Role: database.RoleAdmin}
	_, err = f.svc.DeleteInvoice(ctx, admin, inv.ID)
	require.NoError(t, err)

	_, err = f.db.GetInvoiceByID(ctx, inv.ID)
	assert.True(t, database.IsNotFound(err))
	payments, err := f.db.ListPaymentsByInvoice(ctx, inv.ID)
	require.NoError(t, err)
	assert.Empty(t, payments)

	_, err = f.svc.DeleteInvoice(ctx, admin, inv.ID)
	assert.ErrorIs(t, err, i18n.ErrorInvoiceNotFound)
}
