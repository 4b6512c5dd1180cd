package layouts

import (
	"context"
	"io"

	"product_slider_app_go/middleware"
	"product_slider_app_go/models"
	"product_slider_app_go/templates/components"

	"github.com/a-h/templ"
)

// Storefront wraps body in the public page shell with the slider assets
func Storefront(title string, settings models.SliderSettings, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := components.NewHTML(w)
		h.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.Text(title)
		h.Raw(`</title><link rel="stylesheet"`)
		h.Attr("href", middleware.AssetURL("css/slider.css"))
		h.Raw(`></head><body class="storefront"`)
		h.Attr("style", "--slider-accent: "+settings.AccentColor)
		h.Raw(`><main class="storefront-main">`)
		h.Component(ctx, body)
		h.Raw(`</main>`)
		h.Component(ctx, components.Script(middleware.AssetURL("js/slider.js")))
		h.Raw(`</body></html>`)
		return h.Err()
	})
}
