package handler

import (
	"github.com/amoylab/phongtro/internal/apiserver/database"
	"github.com/amoylab/phongtro/internal/common/cnst"
	"github.com/amoylab/phongtro/internal/common/dto"
	"github.com/amoylab/phongtro/internal/i18n"
	"github.com/amoylab/phongtro/internal/lease"
	"github.com/gin-gonic/gin"
)

// CreateTenant attaches a renting profile to a tenant account and
// optionally moves it into a unit
func (h *Handler) CreateTenant(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req dto.CreateTenantRequest
	if !h.bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	tenant, err := h.lease.CreateTenant(ctx, actor, tenantInput(&req))
	if err != nil {
		h.fail(c, err)
		return
	}
	view, err := h.tenantView(ctx, tenant)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.recordActivity(c, actor.UserID, cnst.ActionCreateTenant, cnst.EntityTenant, tenant.ID, tenant.IdentityCard)
	i18n.RespondCreated(c, i18n.SuccessTenantCreated, gin.H{"tenant": view})
}

func (h *Handler) ListTenants(c *gin.Context) {
	var q dto.TenantQuery
	if !h.bindQuery(c, &q) {
		return
	}
	filter := database.TenantFilter{Status: database.TenantStatus(q.Status)}
	if filter.Status != "" && !filter.Status.Valid() {
		h.fail(c, i18n.ErrorInvalidTenantStatus)
		return
	}

	ctx := c.Request.Context()
	page := q.ToPage()
	tenants, total, err := h.db.ListTenants(ctx, filter, page)
	if err != nil {
		h.fail(c, err)
		return
	}
	views, err := h.tenantViews(ctx, tenants)
	if err != nil {
		h.fail(c, err)
		return
	}
	i18n.RespondOK(c, i18n.SuccessTenantList, gin.H{
		"tenants":    views,
		"pagination": dto.NewPagination(total, page),
	})
}

func (h *Handler) GetTenant(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	tenant, err := h.db.GetTenantByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			h.fail(c, i18n.ErrorTenantNotFound)
			return
		}
		h.fail(c, err)
		return
	}
	view, err := h.tenantView(ctx, tenant)
	if err != nil {
		h.fail(c, err)
		return
	}
	i18n.RespondOK(c, i18n.SuccessTenantInfo, gin.H{"tenant": view})
}

// MyTenant returns the caller's own renting profile
func (h *Handler) MyTenant(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	tenant, err := h.ownTenant(ctx, actor)
	if err != nil {
		h.fail(c, err)
		return
	}
	view, err := h.tenantView(ctx, tenant)
	if err != nil {
		h.fail(c, err)
		return
	}
	i18n.RespondOK(c, i18n.SuccessTenantInfo, gin.H{"tenant": view})
}

func (h *Handler) UpdateTenant(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTenantRequest
	if !h.bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	tenant, err := h.lease.UpdateTenant(ctx, actor, id, tenantPatch(&req))
	if err != nil {
		h.fail(c, err)
		return
	}
	view, err := h.tenantView(ctx, tenant)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.recordActivity(c, actor.UserID, cnst.ActionUpdateTenant, cnst.EntityTenant, tenant.ID, string(tenant.Status))
	i18n.RespondOK(c, i18n.SuccessTenantUpdated, gin.H{"tenant": view})
}

// MarkMovedOut moves the tenant out, freeing the unit and ending the lease
func (h *Handler) MarkMovedOut(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	var req dto.MovedOutRequest
	if c.Request.ContentLength > 0 && !h.bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	tenant, err := h.lease.MarkMovedOut(ctx, actor, id, req.MoveOutDate.Ptr())
	if err != nil {
		h.fail(c, err)
		return
	}
	view, err := h.tenantView(ctx, tenant)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.recordActivity(c, actor.UserID, cnst.ActionMoveOutTenant, cnst.EntityTenant, tenant.ID, "")
	i18n.RespondOK(c, i18n.SuccessTenantMovedOut, gin.H{"tenant": view})
}

func (h *Handler) DeleteTenant(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	tenant, err := h.lease.DeleteTenant(c.Request.Context(), actor, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.recordActivity(c, actor.UserID, cnst.ActionDeleteTenant, cnst.EntityTenant, tenant.ID, tenant.IdentityCard)
	i18n.RespondOK(c, i18n.SuccessTenantDeleted, gin.H{"tenant": tenant})
}

func tenantInput(r *dto.CreateTenantRequest) lease.CreateTenantInput {
	return lease.CreateTenantInput{
		UserID:           r.UserID,
		IdentityCard:     r.IdentityCard,
		Phone:            r.Phone,
		EmergencyContact: r.EmergencyContact,
		Documents:        r.Documents,
		CurrentUnitID:    r.CurrentUnitID,
		MoveInDate:       r.MoveInDate.Ptr(),
	}
}

func tenantPatch(r *dto.UpdateTenantRequest) lease.TenantPatch {
	p := lease.TenantPatch{
		IdentityCard:     r.IdentityCard,
		Phone:            r.Phone,
		EmergencyContact: r.EmergencyContact,
		Documents:        r.Documents,
		CurrentUnitID:    r.CurrentUnitID,
		MoveInDate:       r.MoveInDate.Ptr(),
		MoveOutDate:      r.MoveOutDate.Ptr(),
	}
	if r.Status != nil {
		st := database.TenantStatus(*r.Status)
		p.Status = &st
	}
	return p
}
