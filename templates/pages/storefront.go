package pages

import (
	"context"
	"io"
	"strings"

	"product_slider_app_go/models"
	"product_slider_app_go/services"
	"product_slider_app_go/templates/components"
	"product_slider_app_go/templates/layouts"
	"product_slider_app_go/templates/partials"

	"github.com/a-h/templ"
)

// Home renders the storefront content with every embedded slider expanded
func Home(page HomePage) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := components.NewHTML(w)
		h.Raw(`<div class="storefront-content">`)
		for _, segment := range page.Segments {
			if segment.Slider != nil {
				h.Component(ctx, partials.Slider(segment.Slider))
				continue
			}
			writeText(h, segment.Text)
		}
		h.Raw(`</div>`)
		return h.Err()
	})
	return layouts.Storefront("Shop", page.Settings, body)
}

// SliderPage renders a single slider on its own
func SliderPage(settings models.SliderSettings, view *services.SliderView) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := components.NewHTML(w)
		h.Raw(`<div class="storefront-content">`)
		if view == nil || len(view.Sections) == 0 {
			h.Raw(`<p class="slider-empty">Nothing to show.</p>`)
		} else {
			h.Component(ctx, partials.Slider(view))
		}
		h.Raw(`</div>`)
		return h.Err()
	})
	title := "Products"
	if view != nil && view.Attributes.Title != "" {
		title = view.Attributes.Title
	}
	return layouts.Storefront(title, settings, body)
}

// writeText escapes content text and turns blank lines into paragraphs
func writeText(h *components.HTML, text string) {
	for _, para := range strings.Split(strings.TrimSpace(text), "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		h.Raw(`<p class="storefront-text">`)
		h.Text(para)
		h.Raw(`</p>`)
	}
}
