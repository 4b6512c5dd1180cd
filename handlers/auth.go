package handlers

import (
	"errors"
	"net/http"
	"strings"

	"product_slider_app_go/middleware"
	"product_slider_app_go/models"
	"product_slider_app_go/services"
	"product_slider_app_go/templates/pages"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// dummyHash keeps failed lookups as slow as failed password checks
var dummyHash string

func init() {
	dummyHash, _ = services.HashPassword("dummy_password_for_timing_mitigation")
}

// LoginPage renders the login form, or sends an existing session to the admin
func (h *Handler) LoginPage(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
		if _, err := h.auth.ValidateSession(c.Request().Context(), cookie.Value); err == nil {
			return c.Redirect(http.StatusSeeOther, "/admin/categories")
		}
	}
	return render(c, http.StatusOK, pages.Login(pages.LoginPage{CSRFToken: middleware.GetCSRFToken(c)}))
}

// Login handles the login form submission
func (h *Handler) Login(c echo.Context) error {
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")
	ctx := c.Request().Context()

	fail := func(status int, message string) error {
		return render(c, status, pages.Login(pages.LoginPage{
			CSRFToken: middleware.GetCSRFToken(c),
			Email:     email,
			Error:     message,
		}))
	}

	if email == "" || password == "" {
		return fail(http.StatusUnprocessableEntity, "Email and password are required")
	}

	user, err := h.auth.Authenticate(ctx, email, password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		services.CheckPassword(password, dummyHash)
		h.log.Warn("Failed login", zap.String("ip", c.RealIP()))
		h.monitor.TrackFailedLogin(c.RealIP())
		return fail(http.StatusUnauthorized, "Invalid email or password")
	}
	if err != nil {
		h.log.Error("Login failed", zap.Error(err))
		return fail(http.StatusInternalServerError, genericFailure)
	}

	if !user.Can(models.CapabilityManageStore) {
		h.log.Warn("Login without admin capability", zap.String("user_id", user.ID), zap.String("role", user.Role))
		return fail(http.StatusForbidden, "Your account cannot manage the store")
	}

	session, err := h.auth.CreateSession(ctx, user.ID, c.RealIP(), c.Request().UserAgent())
	if err != nil {
		h.log.Error("Failed to create session", zap.String("user_id", user.ID), zap.Error(err))
		return fail(http.StatusInternalServerError, genericFailure)
	}
	middleware.SetSessionCookie(c, session)
	h.monitor.ResetFailedLogins(c.RealIP())

	h.log.Info("User logged in",
		zap.String("actor_id", user.ID),
		zap.String("actor_role", user.Role),
		zap.String("ip", c.RealIP()),
	)
	return c.Redirect(http.StatusSeeOther, "/admin/categories")
}

// Logout deletes the session and clears the cookie
func (h *Handler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
		if err := h.auth.DeleteSession(c.Request().Context(), cookie.Value); err != nil {
			h.log.Warn("Failed to delete session", zap.Error(err))
		}
	}
	if user := middleware.GetCurrentUser(c); user != nil {
		h.log.Info("User logged out", zap.String("actor_id", user.ID))
	}

	middleware.ClearSessionCookie(c)
	return c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}
