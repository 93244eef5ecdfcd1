package middleware

import (
	"errors"
	"strings"

	"github.com/amoylab/phongtro/internal/apiserver/database"
	"github.com/amoylab/phongtro/internal/auth"
	"github.com/amoylab/phongtro/internal/auth/jwt"
	"github.com/amoylab/phongtro/internal/common/cnst"
	"github.com/amoylab/phongtro/internal/i18n"
	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware creates a middleware that validates JWT tokens
func JWTAuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			i18n.RespondWithError(c, i18n.ErrorMissingToken)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			i18n.RespondWithError(c, i18n.ErrorInvalidToken)
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				i18n.RespondWithError(c, i18n.ErrorInvalidToken.WithDetail(err.Error()))
				return
			}
			i18n.RespondWithError(c, i18n.ErrorInvalidToken)
			return
		}

		c.Set(cnst.CtxKeyClaims, claims)
		c.Next()
	}
}

// OptionalAuth stores the claims of a valid bearer token and lets
// anonymous requests through
func OptionalAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && parts[1] != "" {
			if claims, err := jwtService.ValidateToken(parts[1]); err == nil {
				c.Set(cnst.CtxKeyClaims, claims)
			}
		}
		c.Next()
	}
}

// RequireRoles rejects callers whose token role is not listed
func RequireRoles(roles ...database.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := Claims(c)
		if !ok {
			i18n.RespondWithError(c, i18n.ErrorMissingToken)
			return
		}
		for _, r := range roles {
			if string(r) == claims.Role {
				c.Next()
				return
			}
		}
		i18n.RespondWithError(c, i18n.ErrorRoleNotAllowed)
	}
}

// Claims returns the verified token claims of the request
func Claims(c *gin.Context) (*jwt.Claims, bool) {
	v, ok := c.Get(cnst.CtxKeyClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	return claims, ok && claims != nil
}

// Actor returns the authenticated caller of the request
func Actor(c *gin.Context) (auth.Actor, bool) {
	claims, ok := Claims(c)
	if !ok {
		return auth.Actor{}, false
	}
	return auth.Actor{UserID: claims.UserID, Role: database.UserRole(claims.Role)}, true
}
