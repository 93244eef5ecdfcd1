package handler

import (
	"github.com/amoylab/phongtro/internal/apiserver/database"
	"github.com/amoylab/phongtro/internal/common/cnst"
	"github.com/amoylab/phongtro/internal/common/dto"
	"github.com/amoylab/phongtro/internal/i18n"
	"github.com/amoylab/phongtro/internal/lease"
	"github.com/amoylab/phongtro/pkg/utils"
	"github.com/gin-gonic/gin"
)

// CreateContract drafts a lease and moves the tenant into the unit
func (h *Handler) CreateContract(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req dto.CreateContractRequest
	if !h.bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	contract, err := h.lease.CreateContract(ctx, actor, contractInput(&req))
	if err != nil {
		h.fail(c, err)
		return
	}
	view, err := h.contractView(ctx, contract)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.recordActivity(c, actor.UserID, cnst.ActionCreateContract, cnst.EntityContract, contract.ID, contract.ContractNumber)
	h.notify(c, h.tenantUserID(ctx, contract.TenantID), cnst.NotifyTypeContract, contract.ID,
		i18n.NotifyContractCreated, map[string]any{"Number": contract.ContractNumber}, contract.Terms)
	i18n.RespondCreated(c, i18n.SuccessContractCreated, gin.H{"contract": view})
}

func (h *Handler) ListContracts(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var q dto.ContractQuery
	if !h.bindQuery(c, &q) {
		return
	}
	filter := database.ContractFilter{
		UnitID:     q.UnitID,
		TenantID:   q.TenantID,
		LandlordID: actor.LandlordScope(),
	}
	if q.Status != "" {
		status := database.ContractStatus(q.Status)
		if !lease.ContractStatusValid(status) {
			h.fail(c, i18n.ErrorInvalidRequest.WithDetail("status"))
			return
		}
		filter.Statuses = []database.ContractStatus{status}
	}
	h.respondContracts(c, filter, q.PageQuery)
}

// MyContracts lists the calling tenant's contracts
func (h *Handler) MyContracts(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var q dto.PageQuery
	if !h.bindQuery(c, &q) {
		return
	}
	tenant, err := h.ownTenant(c.Request.Context(), actor)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.respondContracts(c, database.ContractFilter{TenantID: tenant.ID}, q)
}

func (h *Handler) respondContracts(c *gin.Context, filter database.ContractFilter, q dto.PageQuery) {
	ctx := c.Request.Context()
	page := q.ToPage()
	contracts, total, err := h.db.ListContracts(ctx, filter, page)
	if err != nil {
		h.fail(c, err)
		return
	}
	views, err := h.contractViews(ctx, contracts)
	if err != nil {
		h.fail(c, err)
		return
	}
	i18n.RespondOK(c, i18n.SuccessContractList, gin.H{
		"contracts":  views,
		"pagination": dto.NewPagination(total, page),
	})
}

// GetContract returns one contract. Tenants can read their own.
func (h *Handler) GetContract(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	contract, err := h.db.GetContractByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			h.fail(c, i18n.ErrorContractNotFound)
			return
		}
		h.fail(c, err)
		return
	}
	if actor.Role == database.RoleTenant {
		tenant, err := h.ownTenant(ctx, actor)
		if err != nil {
			h.fail(c, err)
			return
		}
		if tenant.ID != contract.TenantID {
			h.fail(c, i18n.ErrorContractPermission)
			return
		}
	} else if !actor.CanManage(contract.LandlordID) {
		h.fail(c, i18n.ErrorContractPermission)
		return
	}

	view, err := h.contractView(ctx, contract)
	if err != nil {
		h.fail(c, err)
		return
	}
	i18n.RespondOK(c, i18n.SuccessContractInfo, gin.H{"contract": view})
}

// SignContract activates a draft contract
func (h *Handler) SignContract(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	contract, changed, err := h.lease.SignContract(ctx, actor, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	view, err := h.contractView(ctx, contract)
	if err != nil {
		h.fail(c, err)
		return
	}
	if changed {
		h.recordActivity(c, actor.UserID, cnst.ActionSignContract, cnst.EntityContract, contract.ID, contract.ContractNumber)
		h.notify(c, h.tenantUserID(ctx, contract.TenantID), cnst.NotifyTypeContract, contract.ID,
			i18n.NotifyContractSigned, map[string]any{"Number": contract.ContractNumber}, "")
	}
	i18n.RespondOK(c, i18n.SuccessContractSigned, gin.H{"contract": view})
}

// TerminateContract ends a contract and frees its unit. Repeating the call
// returns the terminated contract.
func (h *Handler) TerminateContract(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	var req dto.TerminateContractRequest
	if c.Request.ContentLength > 0 && !h.bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	contract, changed, err := h.lease.TerminateContract(ctx, actor, id, req.Reason)
	if err != nil {
		h.fail(c, err)
		return
	}
	view, err := h.contractView(ctx, contract)
	if err != nil {
		h.fail(c, err)
		return
	}
	if changed {
		h.recordActivity(c, actor.UserID, cnst.ActionTerminateContract, cnst.EntityContract, contract.ID,
			utils.FirstNonEmpty(req.Reason, contract.ContractNumber))
		h.notify(c, h.tenantUserID(ctx, contract.TenantID), cnst.NotifyTypeContract, contract.ID,
			i18n.NotifyContractTerminated, map[string]any{"Number": contract.ContractNumber}, req.Reason)
	}
	i18n.RespondOK(c, i18n.SuccessContractTerminated, gin.H{"contract": view})
}

func contractInput(r *dto.CreateContractRequest) lease.CreateContractInput {
	return lease.CreateContractInput{
		UnitID:        r.UnitID,
		TenantID:      r.TenantID,
		StartDate:     r.StartDate.Time,
		EndDate:       r.EndDate.Time,
		RentAmount:    r.RentAmount,
		DepositAmount: r.DepositAmount,
		Utilities:     r.Utilities,
		Terms:         r.Terms,
	}
}
