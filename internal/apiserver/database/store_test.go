package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amoylab/phongtro/internal/common/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewSQLite(&config.DatabaseConfig{Type: "sqlite", DBName: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedUnit(t *testing.T, s *Store, number string, landlord uint) *Unit {
	t.Helper()
	u := &Unit{UnitNumber: number, Building: "A", RoomType: RoomStudio, RentPrice: 3000000, LandlordID: landlord}
	require.NoError(t, s.CreateUnit(context.Background(), u))
	return u
}

func seedTenant(t *testing.T, s *Store, userID uint, card string) *Tenant {
	t.Helper()
	tn := &Tenant{UserID: userID, IdentityCard: card}
	require.NoError(t, s.CreateTenant(context.Background(), tn))
	return tn
}

func TestNewDatabase_Factory(t *testing.T) {
	_, err := NewDatabase(&config.DatabaseConfig{Type: "unknown"})
	assert.Error(t, err)

	db, err := NewDatabase(&config.DatabaseConfig{Type: "sqlite", DBName: ":memory:"})
	require.NoError(t, err)
	assert.NoError(t, db.Ping(context.Background()))
	assert.NoError(t, db.Close())

	_, err = NewDatabase(&config.DatabaseConfig{Type: "mysql", Host: "127.0.0.1", Port: 1, User: "u", Password: "p", DBName: "d"})
	assert.Error(t, err)
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, ":memory:", sqliteDSN(":memory:"))
	assert.Equal(t, "a.db?_pragma=foo", sqliteDSN("a.db?_pragma=foo"))
	assert.Contains(t, sqliteDSN("data/a.db"), "busy_timeout")
}

func TestPageNormalize(t *testing.T) {
	assert.Equal(t, Page{Page: 1, Limit: 10}, Page{}.Normalize())
	assert.Equal(t, Page{Page: 3, Limit: 100}, Page{Page: 3, Limit: 500}.Normalize())
	assert.Equal(t, 20, Page{Page: 3, Limit: 10}.Offset())
}

func TestUsers(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := &User{Email: " Owner@Example.com ", Password: "x", FullName: "Owner", Role: RoleLandlord, IsActive: true}
	require.NoError(t, s.CreateUser(ctx, u))

	got, err := s.GetUserByEmail(ctx, "owner@example.COM")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	dup := &User{Email: "owner@example.com", Password: "x", FullName: "Dup", Role: RoleTenant}
	err = s.CreateUser(ctx, dup)
	assert.True(t, IsDuplicate(err), "%v", err)

	_, err = s.GetUserByID(ctx, 999)
	assert.True(t, IsNotFound(err))

	m, err := s.GetUsersByIDs(ctx, []uint{u.ID, 999})
	require.NoError(t, err)
	assert.Len(t, m, 1)
}

func TestClaimAndReleaseUnit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	u := seedUnit(t, s, "101", 1)

	ok, err := s.ClaimUnit(ctx, u.ID, 7)
	require.NoError(t, err)
	assert.True(t, ok)

	// second claim loses
	ok, err = s.ClaimUnit(ctx, u.ID, 8)
	require.NoError(t, err)
	assert.False(t, ok)

	got, _ := s.GetUnitByID(ctx, u.ID)
	assert.Equal(t, UnitOccupied, got.Status)
	require.NotNil(t, got.CurrentTenantID)
	assert.Equal(t, uint(7), *got.CurrentTenantID)

	// release by someone else is ignored
	require.NoError(t, s.ReleaseUnit(ctx, u.ID, 8))
	got, _ = s.GetUnitByID(ctx, u.ID)
	assert.Equal(t, UnitOccupied, got.Status)

	require.NoError(t, s.ReleaseUnit(ctx, u.ID, 7))
	got, _ = s.GetUnitByID(ctx, u.ID)
	assert.Equal(t, UnitAvailable, got.Status)
	assert.Nil(t, got.CurrentTenantID)
}

func TestClaimTenant(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	tn := seedTenant(t, s, 1, "0123")
	at := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	ok, err := s.ClaimTenant(ctx, tn.ID, 3, nil, at)
	require.NoError(t, err)
	assert.True(t, ok)

	// a second writer that also saw the tenant unhoused loses
	ok, err = s.ClaimTenant(ctx, tn.ID, 4, nil, at)
	require.NoError(t, err)
	assert.False(t, ok)

	// moving on needs the unit the tenant is actually in
	stale := uint(9)
	ok, err = s.ClaimTenant(ctx, tn.ID, 4, &stale, at)
	require.NoError(t, err)
	assert.False(t, ok)

	from := uint(3)
	ok, err = s.ClaimTenant(ctx, tn.ID, 4, &from, at)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := s.GetTenantByID(ctx, tn.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CurrentUnitID)
	assert.Equal(t, uint(4), *got.CurrentUnitID)
	assert.Equal(t, TenantActive, got.Status)
	require.NotNil(t, got.MoveInDate)
	assert.True(t, at.Equal(*got.MoveInDate))
}

func TestUnitStatusAndDetails(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	u := seedUnit(t, s, "101", 1)

	ok, err := s.SetUnitStatus(ctx, u.ID, UnitMaintenance)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = s.SetUnitStatus(ctx, u.ID, UnitAvailable)
	require.NoError(t, err)
	assert.True(t, ok)

	// a stale copy read before the claim must not undo it
	stale, err := s.GetUnitByID(ctx, u.ID)
	require.NoError(t, err)
	ok, err = s.ClaimUnit(ctx, u.ID, 7)
	require.NoError(t, err)
	require.True(t, ok)

	stale.RentPrice = 3500000
	stale.Description = "corner room"
	require.NoError(t, s.UpdateUnit(ctx, stale))

	ok, err = s.SetUnitStatus(ctx, u.ID, UnitMaintenance)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := s.GetUnitByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, UnitOccupied, got.Status)
	require.NotNil(t, got.CurrentTenantID)
	assert.Equal(t, uint(7), *got.CurrentTenantID)
	assert.Equal(t, int64(3500000), got.RentPrice)
	assert.Equal(t, "corner room", got.Description)
}

func TestUnitCompositeUniqueAndFilters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedUnit(t, s, "101", 1)
	seedUnit(t, s, "102", 2)

	err := s.CreateUnit(ctx, &Unit{UnitNumber: "101", Building: "A", RoomType: RoomStudio, RentPrice: 1, LandlordID: 1})
	assert.True(t, IsDuplicate(err))
	require.NoError(t, s.CreateUnit(ctx, &Unit{UnitNumber: "101", Building: "B", RoomType: RoomStudio, RentPrice: 1, LandlordID: 1}))

	items, total, err := s.ListUnits(ctx, UnitFilter{Building: "A"}, Page{Page: 1, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, items, 1)
	assert.Equal(t, "101", items[0].UnitNumber)

	items, total, err = s.ListUnits(ctx, UnitFilter{LandlordID: 2}, Page{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "102", items[0].UnitNumber)
}

func TestTransactionRollback(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	u := seedUnit(t, s, "101", 1)

	boom := errors.New("boom")
	err := s.Transaction(ctx, func(ctx context.Context) error {
		ok, err := s.ClaimUnit(ctx, u.ID, 5)
		require.NoError(t, err)
		require.True(t, ok)
		// nested call joins the outer transaction
		return s.Transaction(ctx, func(ctx context.Context) error {
			require.NoError(t, s.CreateTenant(ctx, &Tenant{UserID: 10, IdentityCard: "0123"}))
			return boom
		})
	})
	assert.ErrorIs(t, err, boom)

	got, _ := s.GetUnitByID(ctx, u.ID)
	assert.Equal(t, UnitAvailable, got.Status)
	_, err = s.GetTenantByUserID(ctx, 10)
	assert.True(t, IsNotFound(err))
}

func TestContractsAndInvoices(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	u := seedUnit(t, s, "101", 1)
	tn := seedTenant(t, s, 10, "0123")

	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	c := &Contract{ContractNumber: "HD-A-101-202503", UnitID: u.ID, TenantID: tn.ID, LandlordID: 1,
		StartDate: now, EndDate: now.AddDate(1, 0, 0), RentAmount: 3000000, Status: ContractActive}
	require.NoError(t, s.CreateContract(ctx, c))

	exists, err := s.ContractNumberExists(ctx, "HD-A-101-202503")
	require.NoError(t, err)
	assert.True(t, exists)

	open, err := s.FindContracts(ctx, ContractFilter{UnitID: u.ID, Statuses: OpenContractStatuses})
	require.NoError(t, err)
	assert.Len(t, open, 1)

	mk := func(month int, status InvoiceStatus, total, paid int64, due time.Time) *Invoice {
		inv := &Invoice{InvoiceNumber: "INV-" + time.Month(month).String(), ContractID: c.ID, Month: month, Year: 2025,
			UnitID: u.ID, TenantID: tn.ID, TotalAmount: total, PaidAmount: paid, Status: status, DueDate: due,
			OtherFees: []Fee{{Name: "parking", Amount: 50000}}}
		require.NoError(t, s.CreateInvoice(ctx, inv))
		return inv
	}
	mk(1, InvoicePaid, 100, 100, now.AddDate(0, -2, 0))
	overdue := mk(2, InvoiceIssued, 200, 0, now.AddDate(0, -1, 0))
	mk(3, InvoicePartial, 300, 100, now.AddDate(0, 1, 0))

	dup := &Invoice{InvoiceNumber: "INV-dup", ContractID: c.ID, Month: 2, Year: 2025, UnitID: u.ID, TenantID: tn.ID, Status: InvoiceDraft}
	assert.True(t, IsDuplicate(s.CreateInvoice(ctx, dup)))

	has, err := s.InvoiceExists(ctx, c.ID, 2, 2025)
	require.NoError(t, err)
	assert.True(t, has)

	got, err := s.GetInvoiceByID(ctx, overdue.ID)
	require.NoError(t, err)
	assert.Equal(t, []Fee{{Name: "parking", Amount: 50000}}, []Fee(got.OtherFees))

	items, total, err := s.ListInvoices(ctx, InvoiceFilter{OverdueAt: &now}, Page{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, overdue.ID, items[0].ID)

	_, total, err = s.ListInvoices(ctx, InvoiceFilter{LandlordID: 1}, Page{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	_, total, err = s.ListInvoices(ctx, InvoiceFilter{LandlordID: 2}, Page{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	report, err := s.PaymentStatusReport(ctx, InvoiceFilter{Year: 2025}, now)
	require.NoError(t, err)
	assert.Len(t, report.ByStatus, 3)
	assert.Equal(t, int64(1), report.OverdueCount)
	assert.Equal(t, int64(200), report.OverdueOutstanding)
	assert.Equal(t, int64(600), report.TotalBilled)
	assert.Equal(t, int64(200), report.TotalCollected)

	require.NoError(t, s.CreatePayment(ctx, &Payment{InvoiceID: overdue.ID, TenantID: tn.ID, Amount: 50, PaidTotal: 50, Method: PaymentCash, PaidAt: now}))
	payments, err := s.ListPaymentsByInvoice(ctx, overdue.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 1)

	require.NoError(t, s.DeleteInvoicesByUnit(ctx, u.ID))
	_, total, _ = s.ListInvoices(ctx, InvoiceFilter{}, Page{})
	assert.Equal(t, int64(0), total)
	payments, _ = s.ListPaymentsByInvoice(ctx, overdue.ID)
	assert.Empty(t, payments)
}

func TestMessagesAndNotifications(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateMessage(ctx, &Message{SenderID: 1, ReceiverID: 2, Content: "hi"}))
	require.NoError(t, s.CreateMessage(ctx, &Message{SenderID: 2, ReceiverID: 1, Content: "hello"}))
	m3 := &Message{SenderID: 1, ReceiverID: 2, Content: "again"}
	require.NoError(t, s.CreateMessage(ctx, m3))
	require.NoError(t, s.CreateMessage(ctx, &Message{SenderID: 3, ReceiverID: 2, Content: "other"}))

	conv, total, err := s.ListConversation(ctx, 2, 1, Page{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, "again", conv[0].Content)

	n, err := s.CountUnreadMessages(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	require.NoError(t, s.MarkMessageRead(ctx, m3.ID, time.Now()))
	n, _ = s.CountUnreadMessages(ctx, 2)
	assert.Equal(t, int64(2), n)

	n1 := &Notification{UserID: 2, Type: "invoice", Title: "t"}
	require.NoError(t, s.CreateNotification(ctx, n1))
	require.NoError(t, s.CreateNotification(ctx, &Notification{UserID: 2, Type: "invoice", Title: "t2"}))

	assert.True(t, IsNotFound(s.MarkNotificationRead(ctx, n1.ID, 99)))
	require.NoError(t, s.MarkNotificationRead(ctx, n1.ID, 2))
	require.NoError(t, s.MarkNotificationRead(ctx, n1.ID, 2))

	unread, total, err := s.ListNotifications(ctx, 2, true, Page{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "t2", unread[0].Title)

	changed, err := s.MarkAllNotificationsRead(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)
}

func TestInitSuperAdmin(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	cfg := &config.SuperAdminConfig{Email: "admin@phongtro.local", Password: "secret123"}

	created, err := InitSuperAdmin(ctx, s, cfg)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = InitSuperAdmin(ctx, s, cfg)
	require.NoError(t, err)
	assert.False(t, created)

	u, err := s.GetUserByEmail(ctx, cfg.Email)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, u.Role)
	assert.True(t, u.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret123")))

	created, err = InitSuperAdmin(ctx, s, &config.SuperAdminConfig{})
	require.NoError(t, err)
	assert.False(t, created)
}
