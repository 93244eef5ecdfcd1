package handler

import (
	"context"

	"github.com/amoylab/phongtro/internal/apiserver/database"
	"github.com/amoylab/phongtro/internal/billing"
	"github.com/amoylab/phongtro/internal/common/dto"
)

// refs holds the records read models point at, loaded in one query per table
type refs struct {
	units     map[uint]*database.Unit
	tenants   map[uint]*database.Tenant
	users     map[uint]*database.User
	contracts map[uint]*database.Contract
}

type refIDs struct {
	units, tenants, users, contracts []uint
}

func (r *refIDs) unit(id uint)     { r.units = appendID(r.units, id) }
func (r *refIDs) tenant(id uint)   { r.tenants = appendID(r.tenants, id) }
func (r *refIDs) user(id uint)     { r.users = appendID(r.users, id) }
func (r *refIDs) contract(id uint) { r.contracts = appendID(r.contracts, id) }

func appendID(ids []uint, id uint) []uint {
	if id == 0 {
		return ids
	}
	for _, v := range ids {
		if v == id {
			return ids
		}
	}
	return append(ids, id)
}

// load fetches the referenced records. Tenant accounts are added to the
// user lookup so tenant refs carry names.
func (h *Handler) load(ctx context.Context, ids refIDs) (*refs, error) {
	var (
		r   refs
		err error
	)
	if r.contracts, err = h.db.GetContractsByIDs(ctx, ids.contracts); err != nil {
		return nil, err
	}
	if r.units, err = h.db.GetUnitsByIDs(ctx, ids.units); err != nil {
		return nil, err
	}
	if r.tenants, err = h.db.GetTenantsByIDs(ctx, ids.tenants); err != nil {
		return nil, err
	}
	for _, t := range r.tenants {
		ids.user(t.UserID)
	}
	if r.users, err = h.db.GetUsersByIDs(ctx, ids.users); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *refs) tenantRef(id uint) *dto.TenantRef {
	t, ok := r.tenants[id]
	if !ok {
		return nil
	}
	return dto.NewTenantRef(t, r.users[t.UserID])
}

func (r *refs) unitRef(id uint) *dto.UnitRef {
	return dto.NewUnitRef(r.units[id])
}

func (h *Handler) contractViews(ctx context.Context, contracts []*database.Contract) ([]*dto.ContractView, error) {
	var ids refIDs
	for _, c := range contracts {
		ids.unit(c.UnitID)
		ids.tenant(c.TenantID)
		ids.user(c.LandlordID)
	}
	r, err := h.load(ctx, ids)
	if err != nil {
		return nil, err
	}
	views := make([]*dto.ContractView, 0, len(contracts))
	for _, c := range contracts {
		views = append(views, &dto.ContractView{
			Contract: c,
			Unit:     r.unitRef(c.UnitID),
			Tenant:   r.tenantRef(c.TenantID),
			Landlord: dto.NewUserInfo(r.users[c.LandlordID]),
		})
	}
	return views, nil
}

func (h *Handler) contractView(ctx context.Context, c *database.Contract) (*dto.ContractView, error) {
	views, err := h.contractViews(ctx, []*database.Contract{c})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (h *Handler) invoiceViews(ctx context.Context, invoices []*database.Invoice) ([]*dto.InvoiceView, error) {
	var ids refIDs
	for _, inv := range invoices {
		ids.unit(inv.UnitID)
		ids.tenant(inv.TenantID)
		ids.contract(inv.ContractID)
	}
	r, err := h.load(ctx, ids)
	if err != nil {
		return nil, err
	}
	now := h.billing.Now()
	views := make([]*dto.InvoiceView, 0, len(invoices))
	for _, inv := range invoices {
		v := &dto.InvoiceView{
			Invoice:     inv,
			IsOverdue:   billing.IsOverdue(inv, now),
			Outstanding: max(inv.TotalAmount-inv.PaidAmount, 0),
			Unit:        r.unitRef(inv.UnitID),
			Tenant:      r.tenantRef(inv.TenantID),
		}
		if c, ok := r.contracts[inv.ContractID]; ok {
			v.ContractNumber = c.ContractNumber
		}
		views = append(views, v)
	}
	return views, nil
}

func (h *Handler) invoiceView(ctx context.Context, inv *database.Invoice) (*dto.InvoiceView, error) {
	views, err := h.invoiceViews(ctx, []*database.Invoice{inv})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (h *Handler) tenantViews(ctx context.Context, tenants []*database.Tenant) ([]*dto.TenantView, error) {
	var ids refIDs
	for _, t := range tenants {
		ids.user(t.UserID)
		if t.CurrentUnitID != nil {
			ids.unit(*t.CurrentUnitID)
		}
	}
	r, err := h.load(ctx, ids)
	if err != nil {
		return nil, err
	}
	views := make([]*dto.TenantView, 0, len(tenants))
	for _, t := range tenants {
		v := &dto.TenantView{Tenant: t, User: dto.NewUserInfo(r.users[t.UserID])}
		if t.CurrentUnitID != nil {
			v.Unit = r.unitRef(*t.CurrentUnitID)
		}
		views = append(views, v)
	}
	return views, nil
}

func (h *Handler) tenantView(ctx context.Context, t *database.Tenant) (*dto.TenantView, error) {
	views, err := h.tenantViews(ctx, []*database.Tenant{t})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (h *Handler) maintenanceViews(ctx context.Context, reqs []*database.MaintenanceRequest) ([]*dto.MaintenanceView, error) {
	var ids refIDs
	for _, m := range reqs {
		ids.unit(m.UnitID)
		ids.tenant(m.TenantID)
	}
	r, err := h.load(ctx, ids)
	if err != nil {
		return nil, err
	}
	views := make([]*dto.MaintenanceView, 0, len(reqs))
	for _, m := range reqs {
		views = append(views, &dto.MaintenanceView{
			MaintenanceRequest: m,
			Unit:               r.unitRef(m.UnitID),
			Tenant:             r.tenantRef(m.TenantID),
		})
	}
	return views, nil
}
