package middleware

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// RequestLogger logs every request through zap
func RequestLogger(log *zap.Logger) echo.MiddlewareFunc {
	httpLog := log.Named("http")
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogUserAgent: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("remote_ip", v.RemoteIP),
			}
			switch {
			case v.Error != nil:
				httpLog.Error("Request failed", append(fields, zap.Error(v.Error))...)
			case v.Status >= 500:
				httpLog.Error("Request failed", fields...)
			case v.Status >= 400:
				httpLog.Warn("Request rejected", fields...)
			default:
				httpLog.Info("Request", fields...)
			}
			return nil
		},
	})
}
