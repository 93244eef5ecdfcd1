package handler

import (
	"errors"
	"strings"

	"github.com/amoylab/phongtro/internal/apiserver/database"
	"github.com/amoylab/phongtro/internal/apiserver/middleware"
	"github.com/amoylab/phongtro/internal/auth"
	"github.com/amoylab/phongtro/internal/common/cnst"
	"github.com/amoylab/phongtro/internal/common/dto"
	"github.com/amoylab/phongtro/internal/i18n"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Signup registers an account. Anonymous callers can only create tenant
// accounts; an admin token allows any role.
func (h *Handler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !h.bindJSON(c, &req) {
		return
	}

	role := database.RoleTenant
	if req.Role != "" {
		role = database.UserRole(req.Role)
		if !role.Valid() {
			h.fail(c, i18n.ErrorInvalidRole)
			return
		}
	}
	if role != database.RoleTenant {
		caller, ok := middleware.Actor(c)
		if !ok || !caller.IsAdmin() {
			h.fail(c, i18n.ErrorRoleNotAllowed)
			return
		}
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooShort) {
			h.fail(c, i18n.ErrorWeakPassword)
			return
		}
		h.fail(c, err)
		return
	}

	user := &database.User{
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: hashed,
		FullName: req.FullName,
		Phone:    req.Phone,
		Role:     role,
		IsActive: true,
	}
	if err := h.db.CreateUser(c.Request.Context(), user); err != nil {
		if database.IsDuplicate(err) {
			h.fail(c, i18n.ErrorEmailExists)
			return
		}
		h.fail(c, err)
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		h.fail(c, err)
		return
	}

	h.recordActivity(c, user.ID, cnst.ActionSignup, cnst.EntityUser, user.ID, user.Email)
	i18n.RespondCreated(c, i18n.SuccessSignup, gin.H{
		"token": token,
		"user":  dto.NewUserInfo(user),
	})
}

// Login handles user login
func (h *Handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.bindJSON(c, &req) {
		return
	}

	user, err := h.db.GetUserByEmail(c.Request.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if database.IsNotFound(err) {
			h.fail(c, i18n.ErrorInvalidCredentials)
			return
		}
		h.fail(c, err)
		return
	}
	if !auth.CheckPassword(user.Password, req.Password) {
		middleware.Logger(c, h.logger).Info("login rejected", zap.Uint("user_id", user.ID))
		h.fail(c, i18n.ErrorInvalidCredentials)
		return
	}
	if !user.IsActive {
		h.fail(c, i18n.ErrorUserDisabled)
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		h.fail(c, err)
		return
	}

	h.recordActivity(c, user.ID, cnst.ActionLogin, cnst.EntityUser, user.ID, "")
	i18n.RespondOK(c, i18n.SuccessLogin, gin.H{
		"token": token,
		"user":  dto.NewUserInfo(user),
	})
}

// Me returns the caller's account, and the tenant profile for tenants
func (h *Handler) Me(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	user, err := h.db.GetUserByID(ctx, actor.UserID)
	if err != nil {
		if database.IsNotFound(err) {
			h.fail(c, i18n.ErrorUserNotFound)
			return
		}
		h.fail(c, err)
		return
	}

	payload := gin.H{"user": dto.NewUserInfo(user)}
	if user.Role == database.RoleTenant {
		if t, err := h.db.GetTenantByUserID(ctx, user.ID); err == nil {
			payload["tenant"] = t
		}
	}
	i18n.RespondOK(c, i18n.SuccessUserInfo, payload)
}

// ChangePassword replaces the caller's password after checking the old one
func (h *Handler) ChangePassword(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req dto.ChangePasswordRequest
	if !h.bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	user, err := h.db.GetUserByID(ctx, actor.UserID)
	if err != nil {
		if database.IsNotFound(err) {
			h.fail(c, i18n.ErrorUserNotFound)
			return
		}
		h.fail(c, err)
		return
	}
	if !auth.CheckPassword(user.Password, req.OldPassword) {
		h.fail(c, i18n.ErrorInvalidOldPassword)
		return
	}

	hashed, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooShort) {
			h.fail(c, i18n.ErrorWeakPassword)
			return
		}
		h.fail(c, err)
		return
	}
	user.Password = hashed
	if err := h.db.UpdateUser(ctx, user); err != nil {
		h.fail(c, err)
		return
	}

	h.recordActivity(c, user.ID, cnst.ActionChangePassword, cnst.EntityUser, user.ID, "")
	i18n.RespondOK(c, i18n.SuccessPasswordChanged, nil)
}
