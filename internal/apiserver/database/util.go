package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/amoylab/phongtro/internal/common/config"
	"golang.org/x/crypto/bcrypt"
)

// InitSuperAdmin creates the configured admin account when no user with
// that email exists yet. It returns true when an account was created.
func InitSuperAdmin(ctx context.Context, db Database, cfg *config.SuperAdminConfig) (bool, error) {
	if cfg == nil || cfg.Email == "" || cfg.Password == "" {
		return false, nil
	}

	_, err := db.GetUserByEmail(ctx, cfg.Email)
	if err == nil {
		return false, nil
	}
	if !IsNotFound(err) {
		return false, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}
	name := cfg.FullName
	if name == "" {
		name = "Administrator"
	}
	admin := &User{
		Email:    cfg.Email,
		Password: string(hashed),
		FullName: name,
		Role:     RoleAdmin,
		IsActive: true,
	}
	if err := db.CreateUser(ctx, admin); err != nil {
		if IsDuplicate(err) {
			return false, nil
		}
		return false, errors.Join(errors.New("failed to create super admin"), err)
	}
	return true, nil
}
