package dto

import "github.com/amoylab/phongtro/internal/apiserver/database"

// CreateMaintenanceRequest opens a ticket. Tenants file against their own
// unit and may omit unitId.
type CreateMaintenanceRequest struct {
	UnitID      uint     `json:"unitId"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	Images      []string `json:"images"`
}

type UpdateMaintenanceStatusRequest struct {
	Status     string `json:"status" binding:"required"`
	AssignedTo *uint  `json:"assignedTo"`
	Resolution string `json:"resolution"`
}

type MaintenanceQuery struct {
	PageQuery
	Status   string `form:"status"`
	Priority string `form:"priority"`
	UnitID   uint   `form:"unitId"`
}

type MaintenanceView struct {
	*database.MaintenanceRequest
	Unit   *UnitRef   `json:"unit,omitempty"`
	Tenant *TenantRef `json:"tenant,omitempty"`
}
