package database

import (
	"time"

	"gorm.io/datatypes"
)

// UserRole represents the role of a user
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleStaff    UserRole = "staff"
	RoleLandlord UserRole = "landlord"
	RoleTenant   UserRole = "tenant"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleLandlord, RoleTenant:
		return true
	}
	return false
}

// User is a login account
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Email     string    `json:"email" gorm:"type:varchar(255);not null;uniqueIndex"`
	Password  string    `json:"-" gorm:"type:varchar(255);not null"`
	FullName  string    `json:"fullName" gorm:"type:varchar(255);not null"`
	Phone     string    `json:"phone" gorm:"type:varchar(20)"`
	Role      UserRole  `json:"role" gorm:"type:varchar(20);not null;index"`
	IsActive  bool      `json:"isActive" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UnitStatus string

const (
	UnitAvailable   UnitStatus = "available"
	UnitOccupied    UnitStatus = "occupied"
	UnitMaintenance UnitStatus = "maintenance"
	UnitRentedOut   UnitStatus = "rented-out"
)

func (s UnitStatus) Valid() bool {
	switch s {
	case UnitAvailable, UnitOccupied, UnitMaintenance, UnitRentedOut:
		return true
	}
	return false
}

type RoomType string

const (
	RoomStudio       RoomType = "studio"
	RoomOneBedroom   RoomType = "one-bedroom"
	RoomTwoBedroom   RoomType = "two-bedroom"
	RoomThreeBedroom RoomType = "three-bedroom"
)

func (t RoomType) Valid() bool {
	switch t {
	case RoomStudio, RoomOneBedroom, RoomTwoBedroom, RoomThreeBedroom:
		return true
	}
	return false
}

// Unit is a rentable room. Status and CurrentTenantID change only through
// the lease service.
type Unit struct {
	ID              uint                        `json:"id" gorm:"primaryKey;autoIncrement"`
	UnitNumber      string                      `json:"unitNumber" gorm:"type:varchar(50);not null;uniqueIndex:idx_unit_building"`
	Building        string                      `json:"building" gorm:"type:varchar(100);not null;uniqueIndex:idx_unit_building"`
	Floor           int                         `json:"floor"`
	SquareMeters    float64                     `json:"squareMeters"`
	RoomType        RoomType                    `json:"roomType" gorm:"type:varchar(30);not null"`
	RentPrice       int64                       `json:"rentPrice" gorm:"not null"`
	DepositAmount   int64                       `json:"depositAmount"`
	Amenities       datatypes.JSONSlice[string] `json:"amenities"`
	Status          UnitStatus                  `json:"status" gorm:"type:varchar(20);not null;index"`
	CurrentTenantID *uint                       `json:"currentTenantId" gorm:"index"`
	LandlordID      uint                        `json:"landlordId" gorm:"not null;index"`
	Description     string                      `json:"description" gorm:"type:text"`
	CreatedAt       time.Time                   `json:"createdAt"`
	UpdatedAt       time.Time                   `json:"updatedAt"`
}

type TenantStatus string

const (
	TenantActive   TenantStatus = "active"
	TenantInactive TenantStatus = "inactive"
	TenantMovedOut TenantStatus = "moved-out"
)

func (s TenantStatus) Valid() bool {
	switch s {
	case TenantActive, TenantInactive, TenantMovedOut:
		return true
	}
	return false
}

type EmergencyContact struct {
	Name  string `json:"name" gorm:"type:varchar(255)"`
	Phone string `json:"phone" gorm:"type:varchar(20)"`
}

// Tenant is the renting profile attached to a tenant-role user
type Tenant struct {
	ID               uint                        `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID           uint                        `json:"userId" gorm:"not null;uniqueIndex"`
	IdentityCard     string                      `json:"identityCard" gorm:"type:varchar(20);not null;uniqueIndex"`
	Phone            string                      `json:"phone" gorm:"type:varchar(20)"`
	EmergencyContact EmergencyContact            `json:"emergencyContact" gorm:"embedded;embeddedPrefix:emergency_"`
	Status           TenantStatus                `json:"status" gorm:"type:varchar(20);not null;index"`
	CurrentUnitID    *uint                       `json:"currentUnitId" gorm:"index"`
	MoveInDate       *time.Time                  `json:"moveInDate"`
	MoveOutDate      *time.Time                  `json:"moveOutDate"`
	Documents        datatypes.JSONSlice[string] `json:"documents"`
	CreatedAt        time.Time                   `json:"createdAt"`
	UpdatedAt        time.Time                   `json:"updatedAt"`
}

type ContractStatus string

const (
	ContractDraft      ContractStatus = "draft"
	ContractActive     ContractStatus = "active"
	ContractExpired    ContractStatus = "expired"
	ContractTerminated ContractStatus = "terminated"
)

// OpenContractStatuses are the states that hold a unit
var OpenContractStatuses = []ContractStatus{ContractDraft, ContractActive}

func (s ContractStatus) Open() bool {
	return s == ContractDraft || s == ContractActive
}

// ContractUtilities flags utilities included in the rent
type ContractUtilities struct {
	Electricity bool `json:"electricity"`
	Water       bool `json:"water"`
	Internet    bool `json:"internet"`
}

type Contract struct {
	ID                uint              `json:"id" gorm:"primaryKey;autoIncrement"`
	ContractNumber    string            `json:"contractNumber" gorm:"type:varchar(100);not null;uniqueIndex"`
	UnitID            uint              `json:"unitId" gorm:"not null;index"`
	TenantID          uint              `json:"tenantId" gorm:"not null;index"`
	LandlordID        uint              `json:"landlordId" gorm:"not null;index"`
	StartDate         time.Time         `json:"startDate" gorm:"not null"`
	EndDate           time.Time         `json:"endDate" gorm:"not null"`
	RentAmount        int64             `json:"rentAmount" gorm:"not null"`
	DepositAmount     int64             `json:"depositAmount"`
	Utilities         ContractUtilities `json:"utilities" gorm:"embedded;embeddedPrefix:utilities_"`
	Terms             string            `json:"terms" gorm:"type:text"`
	Status            ContractStatus    `json:"status" gorm:"type:varchar(20);not null;index"`
	SignedDate        *time.Time        `json:"signedDate"`
	TerminatedDate    *time.Time        `json:"terminatedDate"`
	TerminationReason string            `json:"terminationReason" gorm:"type:text"`
	CreatedBy         uint              `json:"createdBy"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "draft"
	InvoiceIssued  InvoiceStatus = "issued"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
	InvoicePartial InvoiceStatus = "partial"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceDraft, InvoiceIssued, InvoicePaid, InvoiceOverdue, InvoicePartial:
		return true
	}
	return false
}

// UtilityCharge is one metered line of an invoice
type UtilityCharge struct {
	PreviousReading float64 `json:"previousReading"`
	CurrentReading  float64 `json:"currentReading"`
	Usage           float64 `json:"usage"`
	UnitPrice       int64   `json:"unitPrice"`
	Cost            int64   `json:"cost"`
}

type Fee struct {
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
}

// Invoice is the monthly bill of a contract; one per (contract, month, year)
type Invoice struct {
	ID            uint                     `json:"id" gorm:"primaryKey;autoIncrement"`
	InvoiceNumber string                   `json:"invoiceNumber" gorm:"type:varchar(100);not null;uniqueIndex"`
	ContractID    uint                     `json:"contractId" gorm:"not null;uniqueIndex:idx_invoice_period"`
	Month         int                      `json:"month" gorm:"not null;uniqueIndex:idx_invoice_period"`
	Year          int                      `json:"year" gorm:"not null;uniqueIndex:idx_invoice_period"`
	UnitID        uint                     `json:"unitId" gorm:"not null;index"`
	TenantID      uint                     `json:"tenantId" gorm:"not null;index"`
	RentAmount    int64                    `json:"rentAmount"`
	Electricity   UtilityCharge            `json:"electricity" gorm:"embedded;embeddedPrefix:electricity_"`
	Water         UtilityCharge            `json:"water" gorm:"embedded;embeddedPrefix:water_"`
	InternetCost  int64                    `json:"internetCost"`
	OtherFees     datatypes.JSONSlice[Fee] `json:"otherFees"`
	OtherAmount   int64                    `json:"otherAmount"`
	TotalAmount   int64                    `json:"totalAmount"`
	Status        InvoiceStatus            `json:"status" gorm:"type:varchar(20);not null;index"`
	DueDate       time.Time                `json:"dueDate" gorm:"index"`
	PaidAmount    int64                    `json:"paidAmount"`
	PaidDate      *time.Time               `json:"paidDate"`
	Notes         string                   `json:"notes" gorm:"type:text"`
	CreatedBy     uint                     `json:"createdBy"`
	CreatedAt     time.Time                `json:"createdAt"`
	UpdatedAt     time.Time                `json:"updatedAt"`
}

type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentBankTransfer PaymentMethod = "bank-transfer"
	PaymentEWallet      PaymentMethod = "e-wallet"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentBankTransfer, PaymentEWallet:
		return true
	}
	return false
}

// Payment records one payment confirmation. Amount is the change of the
// invoice's paid amount, PaidTotal the paid amount after the confirmation.
type Payment struct {
	ID          uint          `json:"id" gorm:"primaryKey;autoIncrement"`
	InvoiceID   uint          `json:"invoiceId" gorm:"not null;index"`
	TenantID    uint          `json:"tenantId" gorm:"not null;index"`
	Amount      int64         `json:"amount"`
	PaidTotal   int64         `json:"paidTotal"`
	Method      PaymentMethod `json:"method" gorm:"type:varchar(20);not null"`
	Note        string        `json:"note" gorm:"type:text"`
	ConfirmedBy uint          `json:"confirmedBy"`
	PaidAt      time.Time     `json:"paidAt"`
	CreatedAt   time.Time     `json:"createdAt"`
}

type MaintenancePriority string

const (
	PriorityLow    MaintenancePriority = "low"
	PriorityMedium MaintenancePriority = "medium"
	PriorityHigh   MaintenancePriority = "high"
	PriorityUrgent MaintenancePriority = "urgent"
)

func (p MaintenancePriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type MaintenanceStatus string

const (
	MaintenancePending    MaintenanceStatus = "pending"
	MaintenanceInProgress MaintenanceStatus = "in-progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
	MaintenanceCancelled  MaintenanceStatus = "cancelled"
)

func (s MaintenanceStatus) Valid() bool {
	switch s {
	case MaintenancePending, MaintenanceInProgress, MaintenanceCompleted, MaintenanceCancelled:
		return true
	}
	return false
}

type MaintenanceRequest struct {
	ID          uint                        `json:"id" gorm:"primaryKey;autoIncrement"`
	UnitID      uint                        `json:"unitId" gorm:"not null;index"`
	TenantID    uint                        `json:"tenantId" gorm:"index"`
	Title       string                      `json:"title" gorm:"type:varchar(255);not null"`
	Description string                      `json:"description" gorm:"type:text"`
	Priority    MaintenancePriority         `json:"priority" gorm:"type:varchar(20);not null"`
	Status      MaintenanceStatus           `json:"status" gorm:"type:varchar(20);not null;index"`
	AssignedTo  *uint                       `json:"assignedTo"`
	Resolution  string                      `json:"resolution" gorm:"type:text"`
	ResolvedAt  *time.Time                  `json:"resolvedAt"`
	Images      datatypes.JSONSlice[string] `json:"images"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}

// Message is a direct message between two users
type Message struct {
	ID         uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	SenderID   uint       `json:"senderId" gorm:"not null;index"`
	ReceiverID uint       `json:"receiverId" gorm:"not null;index"`
	Content    string     `json:"content" gorm:"type:text;not null"`
	IsRead     bool       `json:"isRead" gorm:"not null;index"`
	ReadAt     *time.Time `json:"readAt"`
	CreatedAt  time.Time  `json:"createdAt" gorm:"index"`
}

type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    uint      `json:"userId" gorm:"not null;index"`
	Type      string    `json:"type" gorm:"type:varchar(50);not null"`
	Title     string    `json:"title" gorm:"type:varchar(255);not null"`
	Content   string    `json:"content" gorm:"type:text"`
	RelatedID uint      `json:"relatedId"`
	IsRead    bool      `json:"isRead" gorm:"not null;index"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
}

type ActivityLog struct {
	ID         uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID     uint      `json:"userId" gorm:"index"`
	Action     string    `json:"action" gorm:"type:varchar(50);not null;index"`
	EntityType string    `json:"entityType" gorm:"type:varchar(50);index"`
	EntityID   uint      `json:"entityId"`
	Details    string    `json:"details" gorm:"type:text"`
	IP         string    `json:"ip" gorm:"type:varchar(64)"`
	CreatedAt  time.Time `json:"createdAt" gorm:"index"`
}

func allModels() []any {
	return []any{
		&User{}, &Unit{}, &Tenant{}, &Contract{}, &Invoice{}, &Payment{},
		&MaintenanceRequest{}, &Message{}, &Notification{}, &ActivityLog{},
	}
}
