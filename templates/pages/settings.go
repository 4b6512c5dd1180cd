package pages

import (
	"context"
	"io"
	"strconv"

	"product_slider_app_go/templates/components"
	"product_slider_app_go/templates/layouts"

	"github.com/a-h/templ"
)

// Settings renders the slider settings form
func Settings(page SettingsPage) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		s := page.Settings
		h := components.NewHTML(w)
		h.Raw(`<h1>Slider Settings</h1>`)
		if page.Saved {
			h.Component(ctx, components.Flash(components.FlashMessage{Kind: components.FlashSuccess, Messages: []string{"Settings saved."}}))
		}
		h.Component(ctx, components.Flash(components.FlashMessage{Kind: components.FlashError, Messages: page.Errors}))

		h.Raw(`<form method="post" action="/admin/settings" class="settings-form">`)
		h.Component(ctx, components.CSRFField(page.CSRFToken))

		numberField(h, "products_per_row", "Products per row", s.ProductsPerRow, 1, 8)
		numberField(h, "product_limit", "Products per slider", s.ProductLimit, 1, 100)
		numberField(h, "new_badge_days", "Days a product counts as new", s.NewBadgeDays, 1, 365)

		checkboxField(h, "show_arrows", "Show navigation arrows", s.ShowArrows)
		checkboxField(h, "enable_swipe", "Enable touch swipe", s.EnableSwipe)
		checkboxField(h, "autoplay", "Autoplay sliders", s.Autoplay)

		h.Raw(`<p class="field"><label for="accent_color">Accent color</label><input type="color" id="accent_color" name="accent_color"`)
		h.Attr("value", s.AccentColor)
		h.Raw(`></p>`)

		h.Raw(`<p class="field"><label for="home_content">Home page content</label>`)
		h.Raw(`<textarea id="home_content" name="home_content" rows="8">`)
		h.Text(s.HomeContent)
		h.Raw(`</textarea><small>Embed sliders with [netflix_slider type="sale" limit="8"].</small></p>`)

		h.Raw(`<button type="submit" class="button button-primary">Save settings</button></form>`)
		return h.Err()
	})
	page.Title = "Slider Settings"
	page.Active = "settings"
	return layouts.Admin(page.AdminPage, body)
}

func numberField(h *components.HTML, name, label string, value, min, max int) {
	h.Raw(`<p class="field"><label`)
	h.Attr("for", name)
	h.Raw(`>`)
	h.Text(label)
	h.Raw(`</label><input type="number"`)
	h.Attr("id", name)
	h.Attr("name", name)
	h.Attr("value", strconv.Itoa(value))
	h.Attr("min", strconv.Itoa(min))
	h.Attr("max", strconv.Itoa(max))
	h.Raw(`></p>`)
}

func checkboxField(h *components.HTML, name, label string, checked bool) {
	h.Raw(`<p class="field field-checkbox"><label><input type="checkbox" value="1"`)
	h.Attr("name", name)
	h.BoolAttr("checked", checked)
	h.Raw(`> `)
	h.Text(label)
	h.Raw(`</label></p>`)
}
