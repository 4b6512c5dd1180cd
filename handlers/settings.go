package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"product_slider_app_go/middleware"
	"product_slider_app_go/models"
	"product_slider_app_go/services"
	"product_slider_app_go/templates/pages"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SettingsRequest is the settings form. Unchecked checkboxes are simply absent.
type SettingsRequest struct {
	ProductsPerRow string `form:"products_per_row"`
	ProductLimit   string `form:"product_limit"`
	ShowArrows     string `form:"show_arrows"`
	EnableSwipe    string `form:"enable_swipe"`
	Autoplay       string `form:"autoplay"`
	AccentColor    string `form:"accent_color"`
	NewBadgeDays   string `form:"new_badge_days"`
	HomeContent    string `form:"home_content"`
}

// Settings converts the form into slider settings
func (r SettingsRequest) Settings() models.SliderSettings {
	atoi := func(s string) int {
		n, _ := strconv.Atoi(strings.TrimSpace(s))
		return n
	}
	return models.SliderSettings{
		ProductsPerRow: atoi(r.ProductsPerRow),
		ProductLimit:   atoi(r.ProductLimit),
		ShowArrows:     services.ParseBool(r.ShowArrows),
		EnableSwipe:    services.ParseBool(r.EnableSwipe),
		Autoplay:       services.ParseBool(r.Autoplay),
		AccentColor:    strings.TrimSpace(r.AccentColor),
		NewBadgeDays:   atoi(r.NewBadgeDays),
		HomeContent:    r.HomeContent,
	}
}

// SettingsPage renders the slider settings form
func (h *Handler) SettingsPage(c echo.Context) error {
	settings, err := h.settings.Get(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load settings")
	}
	return render(c, http.StatusOK, pages.Settings(pages.SettingsPage{
		AdminPage: adminPage(c),
		Settings:  settings,
		Saved:     c.QueryParam("saved") == "1",
	}))
}

// SaveSettings validates and stores the settings form
func (h *Handler) SaveSettings(c echo.Context) error {
	var req SettingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form data")
	}
	settings := req.Settings()

	problems, err := h.settings.Save(c.Request().Context(), settings)
	if err != nil {
		h.log.Error("Failed to save settings", zap.Error(err))
		problems = []string{genericFailure}
	}
	if len(problems) > 0 {
		status := http.StatusUnprocessableEntity
		if err != nil {
			status = http.StatusInternalServerError
		}
		return render(c, status, pages.Settings(pages.SettingsPage{
			AdminPage: adminPage(c),
			Settings:  settings,
			Errors:    problems,
		}))
	}

	h.log.Info("Slider settings saved", middleware.GetAuditContext(c).Fields()...)
	return c.Redirect(http.StatusSeeOther, "/admin/settings?saved=1")
}
