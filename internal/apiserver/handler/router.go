package handler

import (
	"github.com/amoylab/phongtro/internal/apiserver/database"
	"github.com/amoylab/phongtro/internal/apiserver/middleware"
	"github.com/amoylab/phongtro/internal/common/config"
	"github.com/amoylab/phongtro/internal/validator"
	"github.com/amoylab/phongtro/pkg/trace"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter builds the gin engine with the middleware chain and every route
func NewRouter(h *Handler, cfg *config.APIServerConfig) *gin.Engine {
	if err := validator.Register(); err != nil {
		h.logger.Warn("failed to register binding rules", zap.Error(err))
	}

	r := gin.New()
	r.Use(middleware.Recovery(h.logger), middleware.RequestID(h.logger))
	if cfg.Tracing.Enabled {
		r.Use(trace.Middleware(cfg.Tracing.ServiceName))
	}
	r.Use(
		middleware.RequestLogger(h.logger),
		middleware.Lang(),
		middleware.CORS(cfg.Server.CORS),
		h.metrics.Middleware(),
	)

	r.GET("/health", h.Health)
	if cfg.Metrics.Enabled && h.metrics != nil {
		r.GET("/metrics", gin.WrapH(h.metrics.Handler()))
	}

	h.RegisterRoutes(r.Group("/api"))
	return r
}

// RegisterRoutes mounts the REST API on api
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	console := middleware.RequireRoles(database.RoleAdmin, database.RoleStaff, database.RoleLandlord)
	tenantOnly := middleware.RequireRoles(database.RoleTenant)
	adminOnly := middleware.RequireRoles(database.RoleAdmin)

	api.GET("/health", h.Health)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", middleware.OptionalAuth(h.jwtService), h.Signup)
		authGroup.POST("/login", h.Login)
	}

	protected := api.Group("")
	protected.Use(middleware.JWTAuthMiddleware(h.jwtService))

	protected.GET("/auth/me", h.Me)
	protected.PUT("/auth/password", h.ChangePassword)

	units := protected.Group("/units", console)
	{
		units.POST("", h.CreateUnit)
		units.GET("", h.ListUnits)
		units.GET("/:id", h.GetUnit)
		units.PUT("/:id", h.UpdateUnit)
		units.DELETE("/:id", h.DeleteUnit)
	}

	tenants := protected.Group("/tenants")
	{
		tenants.GET("/me", tenantOnly, h.MyTenant)
		tenants.POST("", console, h.CreateTenant)
		tenants.GET("", console, h.ListTenants)
		tenants.GET("/:id", console, h.GetTenant)
		tenants.PUT("/:id", console, h.UpdateTenant)
		tenants.PUT("/:id/moved-out", console, h.MarkMovedOut)
		tenants.DELETE("/:id", console, h.DeleteTenant)
	}

	contracts := protected.Group("/contracts")
	{
		contracts.GET("/my/list", tenantOnly, h.MyContracts)
		contracts.POST("", console, h.CreateContract)
		contracts.GET("", console, h.ListContracts)
		contracts.GET("/:id", h.GetContract)
		contracts.PUT("/:id/sign", console, h.SignContract)
		contracts.PUT("/:id/terminate", console, h.TerminateContract)
	}

	invoices := protected.Group("/invoices")
	{
		invoices.GET("/my/list", tenantOnly, h.MyInvoices)
		invoices.GET("/report/payment-status", console, h.PaymentStatusReport)
		invoices.POST("", console, h.CreateInvoice)
		invoices.GET("", console, h.ListInvoices)
		invoices.GET("/:id", h.GetInvoice)
		invoices.GET("/:id/payments", h.ListPayments)
		invoices.PUT("/:id/status", console, h.UpdateInvoiceStatus)
		invoices.PUT("/:id/confirm-payment", console, h.ConfirmPayment)
		invoices.DELETE("/:id", console, h.DeleteInvoice)
	}

	maintenance := protected.Group("/maintenance")
	{
		maintenance.POST("", h.CreateMaintenance)
		maintenance.GET("", console, h.ListMaintenance)
		maintenance.GET("/my/list", tenantOnly, h.MyMaintenance)
		maintenance.PUT("/:id/status", console, h.UpdateMaintenanceStatus)
	}

	messages := protected.Group("/messages")
	{
		messages.POST("", h.SendMessage)
		messages.GET("/conversations/:userId", h.Conversation)
		messages.GET("/unread-count", h.UnreadCount)
		messages.PUT("/:id/read", h.MarkMessageRead)
	}

	notifications := protected.Group("/notifications")
	{
		notifications.GET("", h.ListNotifications)
		notifications.PUT("/read-all", h.MarkAllNotificationsRead)
		notifications.PUT("/:id/read", h.MarkNotificationRead)
	}

	protected.GET("/activity-logs", adminOnly, h.ListActivityLogs)
}
