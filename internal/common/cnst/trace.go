package cnst

// Tracer names
const (
	TraceLease   = "phongtro/lease"
	TraceBilling = "phongtro/billing"
)

// Span attribute keys
const (
	AttrUnitID     = "unit.id"
	AttrTenantID   = "tenant.id"
	AttrContractID = "contract.id"
	AttrInvoiceID  = "invoice.id"
	AttrActorID    = "actor.id"
)
