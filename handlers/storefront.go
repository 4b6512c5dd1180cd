package handlers

import (
	"net/http"

	"product_slider_app_go/services"
	"product_slider_app_go/templates/pages"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Home renders the configured home content with its embedded sliders
func (h *Handler) Home(c echo.Context) error {
	ctx := c.Request().Context()
	settings, defaults, err := h.slider.Defaults(ctx)
	if err != nil {
		h.log.Error("Failed to load slider settings", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load the storefront")
	}

	var segments []pages.HomeSegment
	for _, segment := range services.SplitContent(settings.HomeContent, defaults) {
		if segment.Slider == nil {
			segments = append(segments, pages.HomeSegment{Text: segment.Text})
			continue
		}
		view, err := h.slider.Resolve(ctx, *segment.Slider)
		if err != nil {
			// A failing slider is left out rather than failing the page
			h.log.Error("Failed to resolve slider", zap.Error(err))
			continue
		}
		segments = append(segments, pages.HomeSegment{Slider: view})
	}

	return render(c, http.StatusOK, pages.Home(pages.HomePage{Settings: settings, Segments: segments}))
}

// Slider renders one slider configured by query parameters
func (h *Handler) Slider(c echo.Context) error {
	ctx := c.Request().Context()
	settings, defaults, err := h.slider.Defaults(ctx)
	if err != nil {
		h.log.Error("Failed to load slider settings", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load the slider")
	}

	attrs := services.SliderAttributesFromQuery(c.QueryParams(), defaults)
	view, err := h.slider.Resolve(ctx, attrs)
	if err != nil {
		h.log.Error("Failed to resolve slider", zap.String("type", attrs.Type), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load products")
	}
	return render(c, http.StatusOK, pages.SliderPage(settings, view))
}
