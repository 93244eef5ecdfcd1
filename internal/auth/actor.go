package auth

import (
	"github.com/amoylab/phongtro/internal/apiserver/database"
)

// Actor is the authenticated caller of an operation
type Actor struct {
	UserID uint
	Role   database.UserRole
}

func (a Actor) IsAdmin() bool {
	return a.Role == database.RoleAdmin
}

// IsStaff reports whether the caller works the console for every building
func (a Actor) IsStaff() bool {
	return a.Role == database.RoleAdmin || a.Role == database.RoleStaff
}

// CanManage reports whether the caller may manage a unit or contract owned
// by landlordID. Admin and staff manage everything, landlords their own.
func (a Actor) CanManage(landlordID uint) bool {
	if a.IsStaff() {
		return true
	}
	return a.Role == database.RoleLandlord && a.UserID == landlordID
}

// LandlordScope returns the landlord id list queries must be restricted to,
// zero when the caller sees every landlord's data.
func (a Actor) LandlordScope() uint {
	if a.Role == database.RoleLandlord {
		return a.UserID
	}
	return 0
}
