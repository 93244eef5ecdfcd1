package middleware

import (
	"time"

	"github.com/amoylab/phongtro/internal/common/cnst"
	"github.com/amoylab/phongtro/internal/i18n"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestID tags the request with an id, taken from X-Request-ID when the
// caller sends one, and stores a logger carrying it.
func RequestID(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(cnst.XRequestID)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Set(cnst.XRequestID, id)
		c.Header(cnst.XRequestID, id)
		c.Set(cnst.CtxKeyLogger, logger.With(zap.String("request_id", id)))
		c.Next()
	}
}

// Logger returns the request-scoped logger, or fallback outside a request
func Logger(c *gin.Context, fallback *zap.Logger) *zap.Logger {
	if v, ok := c.Get(cnst.CtxKeyLogger); ok {
		if l, ok := v.(*zap.Logger); ok {
			return l
		}
	}
	return fallback
}

// RequestLogger logs one line per completed request
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Int("size", c.Writer.Size()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if claims, ok := Claims(c); ok {
			fields = append(fields, zap.Uint("user_id", claims.UserID))
		}
		lg := Logger(c, logger)
		switch status := c.Writer.Status(); {
		case status >= 500:
			lg.Error("request", fields...)
		case status >= 400:
			lg.Warn("request", fields...)
		default:
			lg.Info("request", fields...)
		}
	}
}

// Recovery turns a panic into a 500 response
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger(c, logger).Error("panic recovered",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
					zap.Stack("stack"))
				i18n.RespondWithError(c, i18n.ErrInternalServer)
			}
		}()
		c.Next()
	}
}
