package middleware

import (
	"net/http"
	"strings"

	"product_slider_app_go/config"
	"product_slider_app_go/models"
	"product_slider_app_go/services"

	"github.com/labstack/echo/v4"
)

const (
	// SessionCookieName is the name of the session cookie
	SessionCookieName = "slider_session"
	// ContextKeyUser is the context key for the authenticated user
	ContextKeyUser = "user"
	// ContextKeySession is the context key for the session
	ContextKeySession = "session"
	// LoginPath is where unauthenticated page requests are sent
	LoginPath = "/admin/login"
)

// RequireAuth is middleware that requires a valid session.
// AJAX requests get a JSON 401, page requests are redirected to the login page.
func RequireAuth(auth *services.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Get session cookie
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return unauthenticated(c)
			}

			// Validate session
			session, err := auth.ValidateSession(c.Request().Context(), cookie.Value)
			if err != nil {
				// Invalid or expired session, clear cookie
				ClearSessionCookie(c)
				return unauthenticated(c)
			}

			// Check if user is active
			if !session.User.IsActive {
				ClearSessionCookie(c)
				return unauthenticated(c)
			}

			c.Set(ContextKeyUser, &session.User)
			c.Set(ContextKeySession, session)

			return next(c)
		}
	}
}

// RequireCapability is middleware that requires the user's role to grant capability
func RequireCapability(capability string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := GetCurrentUser(c)
			if user == nil {
				return unauthenticated(c)
			}

			if !user.Can(capability) {
				if IsAJAX(c) {
					return c.JSON(http.StatusForbidden, ajaxFailure("You do not have permission to do this."))
				}
				return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions")
			}

			return next(c)
		}
	}
}

// GetCurrentUser retrieves the current user from context
func GetCurrentUser(c echo.Context) *models.User {
	user, ok := c.Get(ContextKeyUser).(*models.User)
	if !ok {
		return nil
	}
	return user
}

// GetCurrentSession retrieves the current session from context
func GetCurrentSession(c echo.Context) *models.Session {
	session, ok := c.Get(ContextKeySession).(*models.Session)
	if !ok {
		return nil
	}
	return session
}

// IsAJAX reports whether the request expects a JSON answer
func IsAJAX(c echo.Context) bool {
	req := c.Request()
	if req.URL.Path == "/admin-ajax" {
		return true
	}
	if req.Header.Get("X-Requested-With") == "XMLHttpRequest" {
		return true
	}
	return strings.Contains(req.Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}

// SetSessionCookie stores the session token in the browser
func SetSessionCookie(c echo.Context, session *models.Session) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   isProduction(c),
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie clears the session cookie
func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isProduction(c),
		SameSite: http.SameSiteLaxMode,
	})
}

func isProduction(c echo.Context) bool {
	if cfg, ok := c.Get("config").(*config.Config); ok {
		return cfg.IsProduction()
	}
	return false
}

func unauthenticated(c echo.Context) error {
	if IsAJAX(c) {
		return c.JSON(http.StatusUnauthorized, ajaxFailure("Your session has expired. Please log in again."))
	}
	return c.Redirect(http.StatusSeeOther, LoginPath)
}

// ajaxFailure matches the {success, data} envelope of the admin-ajax endpoint
func ajaxFailure(message string) map[string]interface{} {
	return map[string]interface{}{
		"success": false,
		"data":    map[string]string{"message": message},
	}
}
