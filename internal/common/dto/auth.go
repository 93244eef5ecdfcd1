package dto

import "github.com/amoylab/phongtro/internal/apiserver/database"

// SignupRequest registers an account. Only tenant accounts may self-register;
// other roles need an admin caller.
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"fullName" binding:"required"`
	Phone    string `json:"phone" binding:"omitempty,phone"`
	Role     string `json:"role"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest represents a request to change password
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// UserInfo is the public part of a user
type UserInfo struct {
	ID       uint              `json:"id"`
	Email    string            `json:"email"`
	FullName string            `json:"fullName"`
	Phone    string            `json:"phone,omitempty"`
	Role     database.UserRole `json:"role"`
	IsActive bool              `json:"isActive"`
}

func NewUserInfo(u *database.User) *UserInfo {
	if u == nil {
		return nil
	}
	return &UserInfo{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Phone:    u.Phone,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}
