package dto

import (
	"github.com/amoylab/phongtro/internal/apiserver/database"
)

type CreateTenantRequest struct {
	UserID           uint                      `json:"userId" binding:"required"`
	IdentityCard     string                    `json:"identityCard" binding:"required"`
	Phone            string                    `json:"phone" binding:"omitempty,phone"`
	EmergencyContact database.EmergencyContact `json:"emergencyContact"`
	Documents        []string                  `json:"documents"`
	CurrentUnitID    uint                      `json:"currentUnitId"`
	MoveInDate       *Date                     `json:"moveInDate"`
}

// UpdateTenantRequest patches a tenant. A currentUnitId of 0 unassigns the
// tenant from their unit.
type UpdateTenantRequest struct {
	IdentityCard     *string                    `json:"identityCard"`
	Phone            *string                    `json:"phone" binding:"omitempty,phone"`
	EmergencyContact *database.EmergencyContact `json:"emergencyContact"`
	Documents        *[]string                  `json:"documents"`
	Status           *string                    `json:"status"`
	CurrentUnitID    *uint                      `json:"currentUnitId"`
	MoveInDate       *Date                      `json:"moveInDate"`
	MoveOutDate      *Date                      `json:"moveOutDate"`
}

type MovedOutRequest struct {
	MoveOutDate *Date `json:"moveOutDate"`
}

type TenantQuery struct {
	PageQuery
	Status string `form:"status"`
}

// TenantView is a tenant with its user account and unit
type TenantView struct {
	*database.Tenant
	User *UserInfo `json:"user,omitempty"`
	Unit *UnitRef  `json:"unit,omitempty"`
}

// TenantRef is the short form of a tenant embedded in other read models
type TenantRef struct {
	ID           uint   `json:"id"`
	UserID       uint   `json:"userId"`
	FullName     string `json:"fullName,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	IdentityCard string `json:"identityCard"`
}

func NewTenantRef(t *database.Tenant, u *database.User) *TenantRef {
	if t == nil {
		return nil
	}
	ref := &TenantRef{ID: t.ID, UserID: t.UserID, Phone: t.Phone, IdentityCard: t.IdentityCard}
	if u != nil {
		ref.FullName = u.FullName
		ref.Email = u.Email
		if ref.Phone == "" {
			ref.Phone = u.Phone
		}
	}
	return ref
}
