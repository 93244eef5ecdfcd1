package database

import (
	"context"
	"time"
)

// Database defines the persistence operations of the rental API. Every
// method runs inside the transaction carried by ctx when there is one.
type Database interface {
	// Close closes the database connection.
	Close() error

	// Transaction runs fn in a single database transaction. Nested calls
	// join the outer transaction.
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error

	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, id uint) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUsersByIDs(ctx context.Context, ids []uint) (map[uint]*User, error)
	UpdateUser(ctx context.Context, user *User) error

	CreateUnit(ctx context.Context, unit *Unit) error
	GetUnitByID(ctx context.Context, id uint) (*Unit, error)
	GetUnitsByIDs(ctx context.Context, ids []uint) (map[uint]*Unit, error)
	UpdateUnit(ctx context.Context, unit *Unit) error
	ListUnits(ctx context.Context, filter UnitFilter, page Page) ([]*Unit, int64, error)
	DeleteUnit(ctx context.Context, id uint) error
	// ClaimUnit marks an available unit occupied by tenantID. It reports
	// false when the unit was not available at the time of the update.
	ClaimUnit(ctx context.Context, unitID, tenantID uint) (bool, error)
	// ReleaseUnit makes the unit available again if tenantID still holds it.
	ReleaseUnit(ctx context.Context, unitID, tenantID uint) error
	// SetUnitStatus changes the status of a unit nobody holds. It reports
	// false when the unit was occupied at the time of the update.
	SetUnitStatus(ctx context.Context, id uint, status UnitStatus) (bool, error)

	CreateTenant(ctx context.Context, tenant *Tenant) error
	GetTenantByID(ctx context.Context, id uint) (*Tenant, error)
	GetTenantByUserID(ctx context.Context, userID uint) (*Tenant, error)
	GetTenantsByIDs(ctx context.Context, ids []uint) (map[uint]*Tenant, error)
	IdentityCardExists(ctx context.Context, identityCard string, excludeID uint) (bool, error)
	UpdateTenant(ctx context.Context, tenant *Tenant) error
	// ClaimTenant houses the tenant in unitID if the tenant still lives in
	// from, or nowhere when from is nil. It reports false when another
	// writer moved the tenant first.
	ClaimTenant(ctx context.Context, tenantID, unitID uint, from *uint, moveIn time.Time) (bool, error)
	ListTenants(ctx context.Context, filter TenantFilter, page Page) ([]*Tenant, int64, error)
	DeleteTenant(ctx context.Context, id uint) error

	CreateContract(ctx context.Context, contract *Contract) error
	GetContractByID(ctx context.Context, id uint) (*Contract, error)
	GetContractsByIDs(ctx context.Context, ids []uint) (map[uint]*Contract, error)
	UpdateContract(ctx context.Context, contract *Contract) error
	ContractNumberExists(ctx context.Context, number string) (bool, error)
	FindContracts(ctx context.Context, filter ContractFilter) ([]*Contract, error)
	ListContracts(ctx context.Context, filter ContractFilter, page Page) ([]*Contract, int64, error)
	DeleteContractsByUnit(ctx context.Context, unitID uint) error

	CreateInvoice(ctx context.Context, invoice *Invoice) error
	GetInvoiceByID(ctx context.Context, id uint) (*Invoice, error)
	UpdateInvoice(ctx context.Context, invoice *Invoice) error
	InvoiceExists(ctx context.Context, contractID uint, month, year int) (bool, error)
	InvoiceNumberExists(ctx context.Context, number string) (bool, error)
	ListInvoices(ctx context.Context, filter InvoiceFilter, page Page) ([]*Invoice, int64, error)
	DeleteInvoice(ctx context.Context, id uint) error
	DeleteInvoicesByUnit(ctx context.Context, unitID uint) error
	PaymentStatusReport(ctx context.Context, filter InvoiceFilter, now time.Time) (*PaymentReport, error)

	CreatePayment(ctx context.Context, payment *Payment) error
	ListPaymentsByInvoice(ctx context.Context, invoiceID uint) ([]*Payment, error)

	CreateMaintenanceRequest(ctx context.Context, req *MaintenanceRequest) error
	GetMaintenanceRequestByID(ctx context.Context, id uint) (*MaintenanceRequest, error)
	UpdateMaintenanceRequest(ctx context.Context, req *MaintenanceRequest) error
	ListMaintenanceRequests(ctx context.Context, filter MaintenanceFilter, page Page) ([]*MaintenanceRequest, int64, error)
	DeleteMaintenanceByUnit(ctx context.Context, unitID uint) error
	DeleteMaintenanceByTenant(ctx context.Context, tenantID uint) error

	CreateMessage(ctx context.Context, msg *Message) error
	GetMessageByID(ctx context.Context, id uint) (*Message, error)
	MarkMessageRead(ctx context.Context, id uint, at time.Time) error
	ListConversation(ctx context.Context, userA, userB uint, page Page) ([]*Message, int64, error)
	CountUnreadMessages(ctx context.Context, receiverID uint) (int64, error)

	CreateNotification(ctx context.Context, n *Notification) error
	ListNotifications(ctx context.Context, userID uint, unreadOnly bool, page Page) ([]*Notification, int64, error)
	MarkNotificationRead(ctx context.Context, id, userID uint) error
	MarkAllNotificationsRead(ctx context.Context, userID uint) (int64, error)

	CreateActivityLog(ctx context.Context, log *ActivityLog) error
	ListActivityLogs(ctx context.Context, filter ActivityFilter, page Page) ([]*ActivityLog, int64, error)
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page is a 1-based page request
type Page struct {
	Page  int
	Limit int
}

// Normalize clamps the page to defaults and the maximum page size
func (p Page) Normalize() Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	return p
}

func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

type UnitFilter struct {
	Status     UnitStatus
	Building   string
	RoomType   RoomType
	LandlordID uint
}

type TenantFilter struct {
	Status TenantStatus
}

type ContractFilter struct {
	Statuses   []ContractStatus
	UnitID     uint
	TenantID   uint
	LandlordID uint
}

type InvoiceFilter struct {
	Status     InvoiceStatus
	Month      int
	Year       int
	ContractID uint
	TenantID   uint
	// LandlordID restricts to invoices of units owned by the landlord
	LandlordID uint
	// OverdueAt, when set, keeps only unpaid invoices whose due date is before it
	OverdueAt *time.Time
}

type MaintenanceFilter struct {
	Status     MaintenanceStatus
	Priority   MaintenancePriority
	UnitID     uint
	TenantID   uint
	LandlordID uint
}

type ActivityFilter struct {
	UserID     uint
	Action     string
	EntityType string
}

// UnpaidInvoiceStatuses are the states in which an invoice can be overdue
var UnpaidInvoiceStatuses = []InvoiceStatus{InvoiceIssued, InvoicePartial, InvoiceOverdue}

// StatusSummary aggregates invoices sharing one stored status
type StatusSummary struct {
	Status      InvoiceStatus `json:"status"`
	Count       int64         `json:"count"`
	TotalAmount int64         `json:"totalAmount"`
	PaidAmount  int64         `json:"paidAmount"`
}

// PaymentReport groups invoices by stored status and adds the lazily
// computed overdue figures
type PaymentReport struct {
	ByStatus           []StatusSummary `json:"byStatus"`
	OverdueCount       int64           `json:"overdueCount"`
	OverdueOutstanding int64           `json:"overdueOutstanding"`
	TotalBilled        int64           `json:"totalBilled"`
	TotalCollected     int64           `json:"totalCollected"`
}
