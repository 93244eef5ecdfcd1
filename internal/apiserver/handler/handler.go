package handler

import (
	"context"
	"strconv"

	"github.com/amoylab/phongtro/internal/apiserver/database"
	"github.com/amoylab/phongtro/internal/apiserver/middleware"
	"github.com/amoylab/phongtro/internal/auth"
	"github.com/amoylab/phongtro/internal/auth/jwt"
	"github.com/amoylab/phongtro/internal/billing"
	"github.com/amoylab/phongtro/internal/common/cnst"
	"github.com/amoylab/phongtro/internal/i18n"
	"github.com/amoylab/phongtro/internal/lease"
	"github.com/amoylab/phongtro/internal/notifier"
	"github.com/amoylab/phongtro/pkg/metrics"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves the REST API
type Handler struct {
	db         database.Database
	jwtService *jwt.Service
	lease      *lease.Service
	billing    *billing.Service
	notifier   notifier.Notifier
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewHandler creates a new handler. A nil notifier drops notifications
// after they are stored.
func NewHandler(db database.Database, jwtService *jwt.Service, leaseSvc *lease.Service, billingSvc *billing.Service,
	n notifier.Notifier, m *metrics.Metrics, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if n == nil {
		n = notifier.NewNoopNotifier(logger)
	}
	return &Handler{
		db:         db,
		jwtService: jwtService,
		lease:      leaseSvc,
		billing:    billingSvc,
		notifier:   n,
		metrics:    m,
		logger:     logger.Named("handler"),
	}
}

// fail writes the error response. Errors without a message code are
// unexpected and get logged before they are hidden behind a 500.
func (h *Handler) fail(c *gin.Context, err error) {
	if _, ok := i18n.AsErrorWithCode(err); !ok {
		middleware.Logger(c, h.logger).Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.Error(err))
	}
	i18n.RespondWithError(c, err)
}

func (h *Handler) bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		i18n.RespondWithError(c, i18n.ErrorInvalidRequest.WithDetail(err.Error()))
		return false
	}
	return true
}

func (h *Handler) bindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		i18n.RespondWithError(c, i18n.ErrorInvalidRequest.WithDetail(err.Error()))
		return false
	}
	return true
}

func (h *Handler) actor(c *gin.Context) (auth.Actor, bool) {
	a, ok := middleware.Actor(c)
	if !ok {
		i18n.RespondWithError(c, i18n.ErrorMissingToken)
	}
	return a, ok
}

// idParam parses a positive numeric path parameter
func (h *Handler) idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		i18n.RespondWithError(c, i18n.ErrorInvalidID.WithDetail(name))
		return 0, false
	}
	return uint(id), true
}

// recordActivity appends to the activity log. Failures are logged only.
func (h *Handler) recordActivity(c *gin.Context, userID uint, action cnst.ActionType, entityType string, entityID uint, details string) {
	entry := &database.ActivityLog{
		UserID:     userID,
		Action:     action.String(),
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
		IP:         c.ClientIP(),
	}
	if err := h.db.CreateActivityLog(c.Request.Context(), entry); err != nil {
		middleware.Logger(c, h.logger).Warn("failed to record activity",
			zap.String("action", action.String()),
			zap.Uint("entity_id", entityID),
			zap.Error(err))
	}
}

// notify stores a notification for userID and publishes it. Failures are
// logged and counted, never returned.
func (h *Handler) notify(c *gin.Context, userID uint, typ string, relatedID uint, msgID string, data map[string]any, content string) {
	if userID == 0 {
		return
	}
	lg := middleware.Logger(c, h.logger)
	n := &database.Notification{
		UserID:    userID,
		Type:      typ,
		Title:     i18n.Render(msgID, data),
		Content:   content,
		RelatedID: relatedID,
	}
	ctx := c.Request.Context()
	if err := h.db.CreateNotification(ctx, n); err != nil {
		h.metrics.NotificationFailed()
		lg.Warn("failed to store notification", zap.Uint("user_id", userID), zap.String("type", typ), zap.Error(err))
		return
	}
	if err := h.notifier.Publish(ctx, n); err != nil {
		h.metrics.NotificationFailed()
		lg.Warn("failed to publish notification", zap.Uint("notification_id", n.ID), zap.Error(err))
	}
}

// tenantUserID resolves the account behind a tenant profile, 0 when unknown
func (h *Handler) tenantUserID(ctx context.Context, tenantID uint) uint {
	t, err := h.db.GetTenantByID(ctx, tenantID)
	if err != nil {
		return 0
	}
	return t.UserID
}

// ownTenant returns the tenant profile of a tenant-role caller
func (h *Handler) ownTenant(ctx context.Context, actor auth.Actor) (*database.Tenant, error) {
	t, err := h.db.GetTenantByUserID(ctx, actor.UserID)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, i18n.ErrorTenantProfileMissing
		}
		return nil, err
	}
	return t, nil
}
