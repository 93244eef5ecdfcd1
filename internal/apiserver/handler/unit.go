package handler

import (
	"fmt"
	"strconv"

	"github.com/amoylab/phongtro/internal/apiserver/database"
	"github.com/amoylab/phongtro/internal/common/cnst"
	"github.com/amoylab/phongtro/internal/common/dto"
	"github.com/amoylab/phongtro/internal/i18n"
	"github.com/amoylab/phongtro/internal/lease"
	"github.com/gin-gonic/gin"
)

// CreateUnit adds an available unit. Landlords own the units they create;
// admin and staff may name the owning landlord.
func (h *Handler) CreateUnit(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req dto.CreateUnitRequest
	if !h.bindJSON(c, &req) {
		return
	}
	roomType := database.RoomType(req.RoomType)
	if !roomType.Valid() {
		h.fail(c, i18n.ErrorInvalidRoomType)
		return
	}

	ctx := c.Request.Context()
	landlordID := actor.UserID
	if actor.IsStaff() && req.LandlordID != 0 {
		owner, err := h.db.GetUserByID(ctx, req.LandlordID)
		if err != nil {
			if database.IsNotFound(err) {
				h.fail(c, i18n.ErrorUserNotFound)
				return
			}
			h.fail(c, err)
			return
		}
		if owner.Role != database.RoleLandlord && owner.Role != database.RoleAdmin {
			h.fail(c, i18n.ErrorInvalidRole)
			return
		}
		landlordID = owner.ID
	}

	unit := &database.Unit{
		UnitNumber:    req.UnitNumber,
		Building:      req.Building,
		Floor:         req.Floor,
		SquareMeters:  req.SquareMeters,
		RoomType:      roomType,
		RentPrice:     req.RentPrice,
		DepositAmount: req.DepositAmount,
		Amenities:     req.Amenities,
		Status:        database.UnitAvailable,
		LandlordID:    landlordID,
		Description:   req.Description,
	}
	if err := h.db.CreateUnit(ctx, unit); err != nil {
		if database.IsDuplicate(err) {
			h.fail(c, i18n.ErrorUnitExists)
			return
		}
		h.fail(c, err)
		return
	}

	h.recordActivity(c, actor.UserID, cnst.ActionCreateUnit, cnst.EntityUnit, unit.ID,
		fmt.Sprintf("%s-%s", unit.Building, unit.UnitNumber))
	i18n.RespondCreated(c, i18n.SuccessUnitCreated, gin.H{"unit": unit})
}

// ListUnits lists units; landlords only see their own
func (h *Handler) ListUnits(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var q dto.UnitQuery
	if !h.bindQuery(c, &q) {
		return
	}
	filter := database.UnitFilter{
		Status:     database.UnitStatus(q.Status),
		Building:   q.Building,
		RoomType:   database.RoomType(q.RoomType),
		LandlordID: actor.LandlordScope(),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		h.fail(c, i18n.ErrorInvalidUnitStatus)
		return
	}
	if filter.RoomType != "" && !filter.RoomType.Valid() {
		h.fail(c, i18n.ErrorInvalidRoomType)
		return
	}

	page := q.ToPage()
	units, total, err := h.db.ListUnits(c.Request.Context(), filter, page)
	if err != nil {
		h.fail(c, err)
		return
	}
	i18n.RespondOK(c, i18n.SuccessUnitList, gin.H{
		"units":      units,
		"pagination": dto.NewPagination(total, page),
	})
}

// GetUnit returns one unit with its current tenant
func (h *Handler) GetUnit(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	unit, err := h.db.GetUnitByID(ctx, id)
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

	payload := gin.H{"unit": unit}
	if unit.CurrentTenantID != nil {
		var ids refIDs
		ids.tenant(*unit.CurrentTenantID)
		r, err := h.load(ctx, ids)
		if err != nil {
			h.fail(c, err)
			return
		}
		payload["currentTenant"] = r.tenantRef(*unit.CurrentTenantID)
	}
	i18n.RespondOK(c, i18n.SuccessUnitInfo, payload)
}

func (h *Handler) UpdateUnit(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateUnitRequest
	if !h.bindJSON(c, &req) {
		return
	}

	unit, err := h.lease.UpdateUnit(c.Request.Context(), actor, id, unitPatch(&req))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.recordActivity(c, actor.UserID, cnst.ActionUpdateUnit, cnst.EntityUnit, unit.ID, string(unit.Status))
	i18n.RespondOK(c, i18n.SuccessUnitUpdated, gin.H{"unit": unit})
}

// DeleteUnit parks the unit in maintenance, or removes it for good with
// ?hard=true (admin only)
func (h *Handler) DeleteUnit(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	hard, _ := strconv.ParseBool(c.DefaultQuery("hard", "false"))

	unit, err := h.lease.DeleteUnit(c.Request.Context(), actor, id, hard)
	if err != nil {
		h.fail(c, err)
		return
	}
	details := "soft"
	if hard {
		details = "hard"
	}
	h.recordActivity(c, actor.UserID, cnst.ActionDeleteUnit, cnst.EntityUnit, unit.ID, details)
	i18n.RespondOK(c, i18n.SuccessUnitDeleted, gin.H{"unit": unit, "hard": hard})
}

func unitPatch(r *dto.UpdateUnitRequest) lease.UnitPatch {
	p := lease.UnitPatch{
		UnitNumber:    r.UnitNumber,
		Building:      r.Building,
		Floor:         r.Floor,
		SquareMeters:  r.SquareMeters,
		RentPrice:     r.RentPrice,
		DepositAmount: r.DepositAmount,
		Amenities:     r.Amenities,
		Description:   r.Description,
	}
	if r.RoomType != nil {
		rt := database.RoomType(*r.RoomType)
		p.RoomType = &rt
	}
	if r.Status != nil {
		st := database.UnitStatus(*r.Status)
		p.Status = &st
	}
	return p
}
