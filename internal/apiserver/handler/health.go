package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/amoylab/phongtro/internal/apiserver/middleware"
	"github.com/amoylab/phongtro/internal/common/cnst"
	"github.com/amoylab/phongtro/pkg/version"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// Health reports the service identity and whether the database answers
func (h *Handler) Health(c *gin.Context) {
	status, code := "ok", http.StatusOK
	if p, ok := h.db.(pinger); ok {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			middleware.Logger(c, h.logger).Warn("database ping failed", zap.Error(err))
			status, code = "degraded", http.StatusServiceUnavailable
		}
	}
	c.JSON(code, gin.H{
		"name":    cnst.AppName,
		"version": version.Get(),
		"status":  status,
	})
}
