package handler

import (
	"context"
	"strconv"

	"github.com/amoylab/phongtro/internal/apiserver/database"
	"github.com/amoylab/phongtro/internal/auth"
	"github.com/amoylab/phongtro/internal/billing"
	"github.com/amoylab/phongtro/internal/common/cnst"
	"github.com/amoylab/phongtro/internal/common/dto"
	"github.com/amoylab/phongtro/internal/i18n"
	"github.com/gin-gonic/gin"
)

// CreateInvoice bills an active contract for one month
func (h *Handler) CreateInvoice(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req dto.CreateInvoiceRequest
	if !h.bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	inv, err := h.billing.CreateInvoice(ctx, actor, invoiceInput(&req))
	if err != nil {
		h.fail(c, err)
		return
	}
	view, err := h.invoiceView(ctx, inv)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.recordActivity(c, actor.UserID, cnst.ActionCreateInvoice, cnst.EntityInvoice, inv.ID, inv.InvoiceNumber)
	if inv.Status == database.InvoiceIssued {
		h.notifyIssued(c, inv)
	}
	i18n.RespondCreated(c, i18n.SuccessInvoiceCreated, gin.H{"invoice": view})
}

func (h *Handler) notifyIssued(c *gin.Context, inv *database.Invoice) {
	h.notify(c, h.tenantUserID(c.Request.Context(), inv.TenantID), cnst.NotifyTypeInvoice, inv.ID,
		i18n.NotifyInvoiceIssued, map[string]any{
			"Number": inv.InvoiceNumber,
			"Month":  inv.Month,
			"Year":   inv.Year,
			"Total":  inv.TotalAmount,
		}, inv.Notes)
}

func (h *Handler) ListInvoices(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var q dto.InvoiceQuery
	if !h.bindQuery(c, &q) {
		return
	}
	filter, ok := h.invoiceFilter(c, q)
	if !ok {
		return
	}
	filter.LandlordID = actor.LandlordScope()
	h.respondInvoices(c, filter, q.PageQuery)
}

// MyInvoices lists the calling tenant's invoices
func (h *Handler) MyInvoices(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var q dto.InvoiceQuery
	if !h.bindQuery(c, &q) {
		return
	}
	filter, ok := h.invoiceFilter(c, q)
	if !ok {
		return
	}
	tenant, err := h.ownTenant(c.Request.Context(), actor)
	if err != nil {
		h.fail(c, err)
		return
	}
	filter.TenantID = tenant.ID
	h.respondInvoices(c, filter, q.PageQuery)
}

func (h *Handler) invoiceFilter(c *gin.Context, q dto.InvoiceQuery) (database.InvoiceFilter, bool) {
	filter := database.InvoiceFilter{
		Status: database.InvoiceStatus(q.Status),
		Month:  q.Month,
		Year:   q.Year,
	}
	if filter.Status != "" && !filter.Status.Valid() {
		h.fail(c, i18n.ErrorInvalidInvoiceStatus)
		return filter, false
	}
	if q.Month < 0 || q.Month > 12 {
		h.fail(c, i18n.ErrorInvalidPeriod)
		return filter, false
	}
	if q.Overdue {
		now := h.billing.Now()
		filter.OverdueAt = &now
	}
	return filter, true
}

func (h *Handler) respondInvoices(c *gin.Context, filter database.InvoiceFilter, q dto.PageQuery) {
	ctx := c.Request.Context()
	page := q.ToPage()
	invoices, total, err := h.db.ListInvoices(ctx, filter, page)
	if err != nil {
		h.fail(c, err)
		return
	}
	views, err := h.invoiceViews(ctx, invoices)
	if err != nil {
		h.fail(c, err)
		return
	}
	i18n.RespondOK(c, i18n.SuccessInvoiceList, gin.H{
		"invoices":   views,
		"pagination": dto.NewPagination(total, page),
	})
}

// PaymentStatusReport summarizes invoices by status with overdue figures
// computed at request time
func (h *Handler) PaymentStatusReport(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	filter := database.InvoiceFilter{LandlordID: actor.LandlordScope()}
	if v := c.Query("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			h.fail(c, i18n.ErrorInvalidPeriod)
			return
		}
		filter.Month = m
	}
	if v := c.Query("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			h.fail(c, i18n.ErrorInvalidPeriod)
			return
		}
		filter.Year = y
	}

	report, err := h.db.PaymentStatusReport(c.Request.Context(), filter, h.billing.Now())
	if err != nil {
		h.fail(c, err)
		return
	}
	i18n.RespondOK(c, i18n.SuccessInvoiceReport, gin.H{"report": report})
}

// readableInvoice loads an invoice the caller may see: tenants their own,
// landlords those of their contracts
func (h *Handler) readableInvoice(ctx context.Context, actor auth.Actor, id uint) (*database.Invoice, error) {
	inv, err := h.db.GetInvoiceByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, i18n.ErrorInvoiceNotFound
		}
		return nil, err
	}
	if actor.Role == database.RoleTenant {
		tenant, err := h.ownTenant(ctx, actor)
		if err != nil {
			return nil, err
		}
		if tenant.ID != inv.TenantID {
			return nil, i18n.ErrorContractPermission
		}
		return inv, nil
	}
	if actor.IsStaff() {
		return inv, nil
	}
	contract, err := h.db.GetContractByID(ctx, inv.ContractID)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, i18n.ErrorContractNotFound
		}
		return nil, err
	}
	if !actor.CanManage(contract.LandlordID) {
		return nil, i18n.ErrorContractPermission
	}
	return inv, nil
}

func (h *Handler) GetInvoice(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	inv, err := h.readableInvoice(ctx, actor, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	view, err := h.invoiceView(ctx, inv)
	if err != nil {
		h.fail(c, err)
		return
	}
	i18n.RespondOK(c, i18n.SuccessInvoiceInfo, gin.H{"invoice": view})
}

// ListPayments returns the payment confirmations of an invoice, oldest first
func (h *Handler) ListPayments(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	inv, err := h.readableInvoice(ctx, actor, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	payments, err := h.db.ListPaymentsByInvoice(ctx, inv.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	i18n.RespondOK(c, i18n.SuccessPaymentList, gin.H{"payments": payments})
}

func (h *Handler) UpdateInvoiceStatus(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateInvoiceStatusRequest
	if !h.bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	inv, changed, err := h.billing.UpdateStatus(ctx, actor, id, database.InvoiceStatus(req.Status))
	if err != nil {
		h.fail(c, err)
		return
	}
	view, err := h.invoiceView(ctx, inv)
	if err != nil {
		h.fail(c, err)
		return
	}
	if changed {
		h.recordActivity(c, actor.UserID, cnst.ActionUpdateInvoice, cnst.EntityInvoice, inv.ID, string(inv.Status))
		if inv.Status == database.InvoiceIssued {
			h.notifyIssued(c, inv)
		}
	}
	i18n.RespondOK(c, i18n.SuccessInvoiceStatusUpdated, gin.H{"invoice": view})
}

// ConfirmPayment records the amount paid so far and settles the status
func (h *Handler) ConfirmPayment(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	var req dto.ConfirmPaymentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	inv, payment, err := h.billing.ConfirmPayment(ctx, actor, id, paymentInput(&req))
	if err != nil {
		h.fail(c, err)
		return
	}
	view, err := h.invoiceView(ctx, inv)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.recordActivity(c, actor.UserID, cnst.ActionConfirmPayment, cnst.EntityInvoice, inv.ID,
		strconv.FormatInt(inv.PaidAmount, 10))
	h.notify(c, h.tenantUserID(ctx, inv.TenantID), cnst.NotifyTypePayment, inv.ID,
		i18n.NotifyPaymentConfirmed, map[string]any{
			"Amount": payment.Amount,
			"Number": inv.InvoiceNumber,
		}, payment.Note)
	i18n.RespondOK(c, i18n.SuccessPaymentConfirmed, gin.H{"invoice": view, "payment": payment})
}

func (h *Handler) DeleteInvoice(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	inv, err := h.billing.DeleteInvoice(c.Request.Context(), actor, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.recordActivity(c, actor.UserID, cnst.ActionDeleteInvoice, cnst.EntityInvoice, inv.ID, inv.InvoiceNumber)
	i18n.RespondOK(c, i18n.SuccessInvoiceDeleted, gin.H{"invoice": inv})
}

func meter(m dto.MeterRequest) billing.Meter {
	return billing.Meter{
		PreviousReading: m.PreviousReading,
		CurrentReading:  m.CurrentReading,
		Usage:           m.Usage,
		UnitPrice:       m.UnitPrice,
	}
}

func invoiceInput(r *dto.CreateInvoiceRequest) billing.CreateInput {
	return billing.CreateInput{
		ContractID:  r.ContractID,
		Month:       r.Month,
		Year:        r.Year,
		Electricity: meter(r.Electricity),
		Water:       meter(r.Water),
		Internet:    r.Internet,
		OtherFees:   r.OtherFees,
		DueDate:     r.DueDate.Ptr(),
		Notes:       r.Notes,
		Issue:       r.Issue,
	}
}

func paymentInput(r *dto.ConfirmPaymentRequest) billing.PaymentInput {
	return billing.PaymentInput{
		PaidAmount: *r.PaidAmount,
		Status:     database.InvoiceStatus(r.Status),
		Method:     database.PaymentMethod(r.Method),
		Note:       r.Note,
	}
}
