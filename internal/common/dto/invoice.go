package dto

import (
	"github.com/amoylab/phongtro/internal/apiserver/database"
)

type MeterRequest struct {
	PreviousReading float64 `json:"previousReading" binding:"gte=0"`
	CurrentReading  float64 `json:"currentReading" binding:"gte=0"`
	Usage           float64 `json:"usage"`
	UnitPrice       int64   `json:"unitPrice"`
}

type CreateInvoiceRequest struct {
	ContractID  uint           `json:"contractId" binding:"required"`
	Month       int            `json:"month" binding:"required"`
	Year        int            `json:"year" binding:"required"`
	Electricity MeterRequest   `json:"electricity"`
	Water       MeterRequest   `json:"water"`
	Internet    *int64         `json:"internet"`
	OtherFees   []database.Fee `json:"otherFees"`
	DueDate     *Date          `json:"dueDate"`
	Notes       string         `json:"notes"`
	Issue       bool           `json:"issue"`
}

type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ConfirmPaymentRequest struct {
	PaidAmount *int64 `json:"paidAmount" binding:"required"`
	Status     string `json:"status"`
	Method     string `json:"method"`
	Note       string `json:"note"`
}

type InvoiceQuery struct {
	PageQuery
	Status  string `form:"status"`
	Month   int    `form:"month"`
	Year    int    `form:"year"`
	Overdue bool   `form:"overdue"`
}

// InvoiceView is an invoice with its overdue flag and related records
type InvoiceView struct {
	*database.Invoice
	IsOverdue      bool       `json:"isOverdue"`
	Outstanding    int64      `json:"outstanding"`
	ContractNumber string     `json:"contractNumber,omitempty"`
	Unit           *UnitRef   `json:"unit,omitempty"`
	Tenant         *TenantRef `json:"tenant,omitempty"`
}
