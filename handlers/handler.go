package handlers

import (
	"net/http"

	"product_slider_app_go/config"
	"product_slider_app_go/middleware"
	"product_slider_app_go/services"
	"product_slider_app_go/templates/layouts"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Handler serves the storefront and the admin screens
type Handler struct {
	cfg        *config.Config
	log        *zap.Logger
	catalog    *services.Catalog
	categories *services.CategoryStore
	settings   *services.SettingsService
	slider     *services.SliderService
	auth       *services.AuthService
	storage    services.ArchiveStorage
	monitor    *services.SecurityMonitor
}

// Deps are the services a Handler needs
type Deps struct {
	Config     *config.Config
	Log        *zap.Logger
	Catalog    *services.Catalog
	Categories *services.CategoryStore
	Settings   *services.SettingsService
	Slider     *services.SliderService
	Auth       *services.AuthService
	Storage    services.ArchiveStorage
	Monitor    *services.SecurityMonitor
}

// New creates a handler from its dependencies
func New(deps Deps) *Handler {
	monitor := deps.Monitor
	if monitor == nil {
		monitor = services.NewSecurityMonitor(deps.Log)
	}
	return &Handler{
		cfg:        deps.Config,
		log:        deps.Log.Named("http"),
		catalog:    deps.Catalog,
		categories: deps.Categories,
		settings:   deps.Settings,
		slider:     deps.Slider,
		auth:       deps.Auth,
		storage:    deps.Storage,
		monitor:    monitor,
	}
}

// render writes a component with the given status
func render(c echo.Context, status int, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return component.Render(c.Request().Context(), c.Response().Writer)
}

// adminPage fills the chrome shared by every admin screen
func adminPage(c echo.Context) layouts.AdminPage {
	return layouts.AdminPage{
		User:      middleware.GetCurrentUser(c),
		CSRFToken: middleware.GetCSRFToken(c),
	}
}

// Healthz reports liveness
func (h *Handler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
