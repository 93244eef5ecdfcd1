package dto

import (
	"github.com/amoylab/phongtro/internal/apiserver/database"
)

type CreateContractRequest struct {
	UnitID        uint                       `json:"unitId" binding:"required"`
	TenantID      uint                       `json:"tenantId" binding:"required"`
	StartDate     Date                       `json:"startDate"`
	EndDate       Date                       `json:"endDate"`
	RentAmount    *int64                     `json:"rentAmount"`
	DepositAmount *int64                     `json:"depositAmount"`
	Utilities     database.ContractUtilities `json:"utilities"`
	Terms         string                     `json:"terms"`
}

type TerminateContractRequest struct {
	Reason string `json:"reason"`
}

type ContractQuery struct {
	PageQuery
	Status   string `form:"status"`
	UnitID   uint   `form:"unitId"`
	TenantID uint   `form:"tenantId"`
}

// ContractView is a contract with its unit, tenant and landlord hydrated
type ContractView struct {
	*database.Contract
	Unit     *UnitRef   `json:"unit,omitempty"`
	Tenant   *TenantRef `json:"tenant,omitempty"`
	Landlord *UserInfo  `json:"landlord,omitempty"`
}
