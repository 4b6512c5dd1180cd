package middleware

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const ContextKeyAuditContext = "audit_context"

// AuditInfo identifies who performed an admin action
type AuditInfo struct {
	UserID    string
	UserName  string
	UserRole  string
	IPAddress string
	UserAgent string
}

// Fields renders the audit info as structured log fields
func (a AuditInfo) Fields() []zap.Field {
	return []zap.Field{
		zap.String("actor_id", a.UserID),
		zap.String("actor_name", a.UserName),
		zap.String("actor_role", a.UserRole),
		zap.String("ip", a.IPAddress),
	}
}

// AuditContext is middleware that extracts user info for audit logging
func AuditContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			info := AuditInfo{
				IPAddress: c.RealIP(),
				UserAgent: c.Request().UserAgent(),
			}

			if user := GetCurrentUser(c); user != nil {
				info.UserID = user.ID
				info.UserName = user.Name
				info.UserRole = user.Role
			}

			c.Set(ContextKeyAuditContext, info)
			return next(c)
		}
	}
}

// GetAuditContext retrieves the audit info from the request
func GetAuditContext(c echo.Context) AuditInfo {
	if info, ok := c.Get(ContextKeyAuditContext).(AuditInfo); ok {
		return info
	}
	return AuditInfo{IPAddress: c.RealIP()}
}
