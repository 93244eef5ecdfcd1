package handler

import (
	"time"

	"github.com/amoylab/phongtro/internal/apiserver/database"
	"github.com/amoylab/phongtro/internal/common/cnst"
	"github.com/amoylab/phongtro/internal/common/dto"
	"github.com/amoylab/phongtro/internal/i18n"
	"github.com/gin-gonic/gin"
)

// CreateMaintenance opens a ticket. Tenants file against the unit they live
// in; console users name the unit.
func (h *Handler) CreateMaintenance(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req dto.CreateMaintenanceRequest
	if !h.bindJSON(c, &req) {
		return
	}
	priority := database.PriorityMedium
	if req.Priority != "" {
		priority = database.MaintenancePriority(req.Priority)
		if !priority.Valid() {
			h.fail(c, i18n.ErrorInvalidPriority)
			return
		}
	}

	ctx := c.Request.Context()
	ticket := &database.MaintenanceRequest{
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		Status:      database.MaintenancePending,
		Images:      req.Images,
	}
	if actor.Role == database.RoleTenant {
		tenant, err := h.ownTenant(ctx, actor)
		if err != nil {
			h.fail(c, err)
			return
		}
		if tenant.CurrentUnitID == nil || (req.UnitID != 0 && req.UnitID != *tenant.CurrentUnitID) {
			h.fail(c, i18n.ErrorUnitPermission)
			return
		}
		ticket.UnitID = *tenant.CurrentUnitID
		ticket.TenantID = tenant.ID
	} else {
		if req.UnitID == 0 {
			h.fail(c, i18n.ErrorInvalidRequest.WithDetail("unitId"))
			return
		}
		unit, err := h.db.GetUnitByID(ctx, req.UnitID)
		if err != nil {
			if database.IsNotFound(err) {
				h.fail(c, i18n.ErrorUnitNotFound)
				return
			}
			h.fail(c, err)
			return
		}
		if !actor.CanManage(unit.LandlordID) {
			h.fail(c, i18n.ErrorUnitPermission)
			return
		}
		ticket.UnitID = unit.ID
		if unit.CurrentTenantID != nil {
			ticket.TenantID = *unit.CurrentTenantID
		}
	}

	if err := h.db.CreateMaintenanceRequest(ctx, ticket); err != nil {
		h.fail(c, err)
		return
	}
	h.recordActivity(c, actor.UserID, cnst.ActionCreateMaintenance, cnst.EntityMaintenance, ticket.ID, ticket.Title)
	i18n.RespondCreated(c, i18n.SuccessMaintenanceCreated, gin.H{"maintenance": ticket})
}

func (h *Handler) ListMaintenance(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var q dto.MaintenanceQuery
	if !h.bindQuery(c, &q) {
		return
	}
	filter, ok := h.maintenanceFilter(c, q)
	if !ok {
		return
	}
	filter.LandlordID = actor.LandlordScope()
	h.respondMaintenance(c, filter, q.PageQuery)
}

// MyMaintenance lists the calling tenant's tickets
func (h *Handler) MyMaintenance(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var q dto.MaintenanceQuery
	if !h.bindQuery(c, &q) {
		return
	}
	filter, ok := h.maintenanceFilter(c, q)
	if !ok {
		return
	}
	tenant, err := h.ownTenant(c.Request.Context(), actor)
	if err != nil {
		h.fail(c, err)
		return
	}
	filter.TenantID = tenant.ID
	h.respondMaintenance(c, filter, q.PageQuery)
}

func (h *Handler) maintenanceFilter(c *gin.Context, q dto.MaintenanceQuery) (database.MaintenanceFilter, bool) {
	filter := database.MaintenanceFilter{
		Status:   database.MaintenanceStatus(q.Status),
		Priority: database.MaintenancePriority(q.Priority),
		UnitID:   q.UnitID,
	}
	if filter.Status != "" && !filter.Status.Valid() {
		h.fail(c, i18n.ErrorInvalidMaintenanceStatus)
		return filter, false
	}
	if filter.Priority != "" && !filter.Priority.Valid() {
		h.fail(c, i18n.ErrorInvalidPriority)
		return filter, false
	}
	return filter, true
}

func (h *Handler) respondMaintenance(c *gin.Context, filter database.MaintenanceFilter, q dto.PageQuery) {
	ctx := c.Request.Context()
	page := q.ToPage()
	tickets, total, err := h.db.ListMaintenanceRequests(ctx, filter, page)
	if err != nil {
		h.fail(c, err)
		return
	}
	views, err := h.maintenanceViews(ctx, tickets)
	if err != nil {
		h.fail(c, err)
		return
	}
	i18n.RespondOK(c, i18n.SuccessMaintenanceList, gin.H{
		"maintenance": views,
		"pagination":  dto.NewPagination(total, page),
	})
}

// UpdateMaintenanceStatus moves a ticket along and tells the tenant
func (h *Handler) UpdateMaintenanceStatus(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateMaintenanceStatusRequest
	if !h.bindJSON(c, &req) {
		return
	}
	status := database.MaintenanceStatus(req.Status)
	if !status.Valid() {
		h.fail(c, i18n.ErrorInvalidMaintenanceStatus)
		return
	}

	ctx := c.Request.Context()
	ticket, err := h.db.GetMaintenanceRequestByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			h.fail(c, i18n.ErrorMaintenanceNotFound)
			return
		}
		h.fail(c, err)
		return
	}
	unit, err := h.db.GetUnitByID(ctx, ticket.UnitID)
	if err != nil && !database.IsNotFound(err) {
		h.fail(c, err)
		return
	}
	if unit != nil && !actor.CanManage(unit.LandlordID) {
		h.fail(c, i18n.ErrorUnitPermission)
		return
	}

	ticket.Status = status
	if req.AssignedTo != nil {
		ticket.AssignedTo = req.AssignedTo
	}
	if req.Resolution != "" {
		ticket.Resolution = req.Resolution
	}
	switch status {
	case database.MaintenanceCompleted:
		now := time.Now().UTC()
		ticket.ResolvedAt = &now
	case database.MaintenancePending, database.MaintenanceInProgress:
		ticket.ResolvedAt = nil
	}
	if err := h.db.UpdateMaintenanceRequest(ctx, ticket); err != nil {
		h.fail(c, err)
		return
	}

	h.recordActivity(c, actor.UserID, cnst.ActionUpdateMaintenance, cnst.EntityMaintenance, ticket.ID, string(status))
	if ticket.TenantID != 0 {
		h.notify(c, h.tenantUserID(ctx, ticket.TenantID), cnst.NotifyTypeMaintenance, ticket.ID,
			i18n.NotifyMaintenanceUpdated, map[string]any{"Title": ticket.Title, "Status": ticket.Status}, ticket.Resolution)
	}
	i18n.RespondOK(c, i18n.SuccessMaintenanceUpdated, gin.H{"maintenance": ticket})
}
