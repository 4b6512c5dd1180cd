package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

const (
	// CSRFContextKey is where echo stores the token for the current request
	CSRFContextKey = "csrf"
	// CSRFFormField is the form field AJAX calls send the token in
	CSRFFormField = "nonce"
	// CSRFHeader is the header fetch calls send the token in
	CSRFHeader = "X-CSRF-Token"
)

// CSRF protects every state changing request. The token is read from the
// X-CSRF-Token header or the nonce form field.
func CSRF(secureCookie bool) echo.MiddlewareFunc {
	return echomiddleware.CSRFWithConfig(echomiddleware.CSRFConfig{
		TokenLookup:    "header:" + CSRFHeader + ",form:" + CSRFFormField,
		ContextKey:     CSRFContextKey,
		CookieName:     "_csrf",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   secureCookie,
		CookieSameSite: http.SameSiteLaxMode,
		ErrorHandler: func(err error, c echo.Context) error {
			if IsAJAX(c) {
				return c.JSON(http.StatusForbidden, ajaxFailure("Security check failed. Please reload the page."))
			}
			return echo.NewHTTPError(http.StatusForbidden, "Security check failed")
		},
	})
}

// GetCSRFToken retrieves the CSRF token from the Echo context
// This token should be included in forms and AJAX requests
func GetCSRFToken(c echo.Context) string {
	token := c.Get(CSRFContextKey)
	if token == nil {
		return ""
	}
	if tokenStr, ok := token.(string); ok {
		return tokenStr
	}
	return ""
}
